package universe

import "fmt"

//Cell is the state of one grid position: dead, or alive with an age
//the zero value is a dead cell
type Cell struct {
	alive bool
	age   uint
}

//Dead is the dead cell, also used for positions outside the grid
var Dead = Cell{}

//Alive returns a live cell which has survived age generations
func Alive(age uint) Cell {
	return Cell{alive: true, age: age}
}

//IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c.alive
}

//Age returns the number of generations the cell has survived, 0 for dead cells
func (c Cell) Age() uint {
	if !c.alive {
		return 0
	}
	return c.age
}

func (c Cell) String() string {
	if !c.alive {
		return "Dead"
	}
	return fmt.Sprintf("Alive(%d)", c.age)
}
