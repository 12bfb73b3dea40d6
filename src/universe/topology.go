package universe

//Direction is one of the 8 neighbour directions
type Direction int

//Directions in the sampling order
const (
	NorthWest Direction = iota
	North
	NorthEast
	East
	West
	SouthWest
	South
	SouthEast
)

//Directions lists all directions in the order the sampler uses
var Directions = [8]Direction{NorthWest, North, NorthEast, East, West, SouthWest, South, SouthEast}

var directionNames = [8]string{"NW", "N", "NE", "E", "W", "SW", "S", "SE"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "?"
	}
	return directionNames[d]
}

//Topology resolves linear cell indexes of a square side x side grid to their neighbours
//the grid has no wraparound, positions across an edge do not exist
type Topology struct {
	Side int
}

//Neighbour returns the index of the neighbour of cell i in direction d
//ok is false when the neighbour lies outside the grid
func (t Topology) Neighbour(i int, d Direction) (n int, ok bool) {
	switch d {
	case NorthWest:
		return t.NorthWest(i)
	case North:
		return t.North(i)
	case NorthEast:
		return t.NorthEast(i)
	case East:
		return t.East(i)
	case West:
		return t.West(i)
	case SouthWest:
		return t.SouthWest(i)
	case South:
		return t.South(i)
	case SouthEast:
		return t.SouthEast(i)
	}
	return 0, false
}

func (t Topology) leftEdge(i int) bool   { return i%t.Side == 0 }
func (t Topology) rightEdge(i int) bool  { return i%t.Side == t.Side-1 }
func (t Topology) topEdge(i int) bool    { return i < t.Side }
func (t Topology) bottomEdge(i int) bool { return i >= t.Side*(t.Side-1) }

func (t Topology) NorthWest(i int) (int, bool) {
	if t.leftEdge(i) || t.topEdge(i) {
		return 0, false
	}
	return i - (t.Side + 1), true
}

func (t Topology) North(i int) (int, bool) {
	if t.topEdge(i) {
		return 0, false
	}
	return i - t.Side, true
}

func (t Topology) NorthEast(i int) (int, bool) {
	if t.topEdge(i) || t.rightEdge(i) {
		return 0, false
	}
	return i - (t.Side - 1), true
}

func (t Topology) West(i int) (int, bool) {
	if t.leftEdge(i) {
		return 0, false
	}
	return i - 1, true
}

func (t Topology) East(i int) (int, bool) {
	if t.rightEdge(i) {
		return 0, false
	}
	return i + 1, true
}

func (t Topology) SouthWest(i int) (int, bool) {
	if t.leftEdge(i) || t.bottomEdge(i) {
		return 0, false
	}
	return i + (t.Side - 1), true
}

func (t Topology) South(i int) (int, bool) {
	if t.bottomEdge(i) {
		return 0, false
	}
	return i + t.Side, true
}

func (t Topology) SouthEast(i int) (int, bool) {
	if t.rightEdge(i) || t.bottomEdge(i) {
		return 0, false
	}
	return i + t.Side + 1, true
}
