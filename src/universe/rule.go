package universe

//Neighbours holds the 8 neighbours of a cell in NW, N, NE, E, W, SW, S, SE order
type Neighbours [8]Cell

//Sample materializes the neighbours of cell i, positions outside the grid are Dead
func Sample(i int, g Grid) (n Neighbours) {
	t := g.Topology()
	for k, d := range Directions {
		if j, ok := t.Neighbour(i, d); ok {
			n[k] = g.At(j)
		} else {
			n[k] = Dead
		}
	}
	return
}

//Alive returns the count of live neighbours
func (n Neighbours) Alive() int {
	count := 0
	for _, c := range n {
		if c.IsAlive() {
			count++
		}
	}
	return count
}

//Transition calculates the next state of the cell with liveNeighbours live neighbours
//a surviving cell ages by one, a born cell starts at age 0
func Transition(c Cell, liveNeighbours int) Cell {
	if c.IsAlive() {
		if liveNeighbours == 2 || liveNeighbours == 3 {
			return Alive(c.Age() + 1)
		}
		return Dead
	}
	if liveNeighbours == 3 {
		return Alive(0)
	}
	return Dead
}

//cellNextState calculates the next state for the cell at index i
func cellNextState(g Grid, i int) Cell {
	return Transition(g.At(i), Sample(i, g).Alive())
}
