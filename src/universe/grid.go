package universe

//Grid is one generation of the universe: side*side cells in row-major order
//a Grid is never modified after it has been built, so it is safe to share between goroutines
type Grid struct {
	side  int
	cells []Cell
}

//NewGrid builds the grid by calling build for every index in order
//the grid always holds exactly side*side cells
func NewGrid(side int, build func(i int) Cell) Grid {
	if side < 1 {
		side = 1
	}
	g := Grid{side: side, cells: make([]Cell, side*side)}
	if build != nil {
		for i := range g.cells {
			g.cells[i] = build(i)
		}
	}
	return g
}

//EmptyGrid returns the grid with all cells dead
func EmptyGrid(side int) Grid {
	return NewGrid(side, nil)
}

//Side returns the grid's side length
func (g Grid) Side() int {
	return g.side
}

//Len returns the number of cells, always Side()*Side()
func (g Grid) Len() int {
	return len(g.cells)
}

//Topology returns the neighbour resolver for this grid
func (g Grid) Topology() Topology {
	return Topology{Side: g.side}
}

//At returns the cell at linear index i
func (g Grid) At(i int) Cell {
	return g.cells[i]
}

//AtXY returns the cell at column x, row y; positions outside the grid are dead
func (g Grid) AtXY(x int, y int) Cell {
	if x < 0 || y < 0 || x >= g.side || y >= g.side {
		return Dead
	}
	return g.cells[y*g.side+x]
}

//Cells returns a copy of the cells
func (g Grid) Cells() []Cell {
	c := make([]Cell, len(g.cells))
	copy(c, g.cells)
	return c
}

//Walk calls the cb function for each cell, row by row
func (g Grid) Walk(cb func(x int, y int, c Cell)) {
	for i, c := range g.cells {
		cb(i%g.side, i/g.side, c)
	}
}

//LiveCells calculates the count of live cells
func (g Grid) LiveCells() int {
	n := 0
	for _, c := range g.cells {
		if c.IsAlive() {
			n++
		}
	}
	return n
}

//Equal reports whether both grids have the same side and cells
func (g Grid) Equal(o Grid) bool {
	if g.side != o.side || len(g.cells) != len(o.cells) {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

//Settle returns a copy of the grid with live cells placed at the [x,y] coordinates
//coordinates outside the grid are skipped
func (g Grid) Settle(vc [][]int) Grid {
	lives := make(map[int]bool, len(vc))
	for _, v := range vc {
		if len(v) < 2 || v[0] < 0 || v[1] < 0 || v[0] >= g.side || v[1] >= g.side {
			continue
		}
		lives[v[1]*g.side+v[0]] = true
	}
	return NewGrid(g.side, func(i int) Cell {
		if lives[i] {
			return Alive(0)
		}
		return g.cells[i]
	})
}
