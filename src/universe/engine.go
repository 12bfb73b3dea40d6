package universe

import "math/rand/v2"

//Engine calculates the next generation of a grid
//implementations must be deterministic and must not modify the input grid
type Engine interface {
	Name() string
	Step(current Grid) Grid
}

//Engines is the table of available engines by name
var Engines = map[string]func() Engine{
	"base":          NewBaseEngine,
	"multithreaded": func() Engine { return NewMultithreadedEngine(DefWorkers) },
}

//Seed creates a fresh random grid
//each cell is alive when the drawn value in [0,1) is greater than ratio,
//so a higher ratio gives fewer live cells
func Seed(side int, ratio float64, rng *rand.Rand) Grid {
	return NewGrid(side, func(int) Cell {
		if rng.Float64() > ratio {
			return Alive(0)
		}
		return Dead
	})
}

//NewRand creates the random source used for seeding
//the same non zero seed always gives the same sequence of grids
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

//BaseEngine is the simplest engine: walks the grid and builds the new one cell by cell
type BaseEngine struct{}

func NewBaseEngine() Engine {
	return BaseEngine{}
}

func (BaseEngine) Name() string {
	return "base"
}

//Step applies the transition rule to every cell, the result is a new grid
func (BaseEngine) Step(current Grid) Grid {
	return NewGrid(current.Side(), func(i int) Cell {
		return cellNextState(current, i)
	})
}

//Step advances the grid by one generation with the base engine
func Step(current Grid) Grid {
	return BaseEngine{}.Step(current)
}
