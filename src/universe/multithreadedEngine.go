package universe

import (
	"golang.org/x/sync/errgroup"
)

/*
	Engine implementation with multithreaded computation algorithm
	the field is splitted into row bands each of which is computed by individual goroutine
	every band writes to its own part of the new grid, so no locking is needed
*/

const (
	DefWorkers          = 10 //default workers
	DefMinRowsPerWorker = 3  //minimum rows for one worker
)

type MultithreadedEngine struct {
	workers int
}

//workArea describes the rows [y1, y2] for the worker
type workArea struct {
	y1 int
	y2 int
}

func NewMultithreadedEngine(workers int) Engine {
	if workers < 1 {
		workers = 1
	}
	return &MultithreadedEngine{workers: workers}
}

func (me *MultithreadedEngine) Name() string {
	return "multithreaded"
}

//workAreas splits the grid rows between workers
func (me *MultithreadedEngine) workAreas(height int) []workArea {
	linesPerWorker := height / me.workers
	if linesPerWorker < DefMinRowsPerWorker {
		linesPerWorker = DefMinRowsPerWorker
	} else if linesPerWorker*me.workers < height {
		linesPerWorker++
	}
	areas := make([]workArea, 0, me.workers)
	for y1 := 0; y1 < height; y1 += linesPerWorker {
		y2 := y1 + linesPerWorker - 1
		if y2 > height-1 {
			y2 = height - 1
		}
		areas = append(areas, workArea{y1, y2})
	}
	return areas
}

//Step calculates the next generation, starts goroutines and waits for them
func (me *MultithreadedEngine) Step(current Grid) Grid {
	side := current.Side()
	next := EmptyGrid(side)
	var eg errgroup.Group
	for _, wa := range me.workAreas(side) {
		wa := wa
		eg.Go(func() error {
			me.calcArea(current, next.cells, wa)
			return nil
		})
	}
	_ = eg.Wait()
	return next
}

//calcArea calculates new states for the cells inside workArea
func (me *MultithreadedEngine) calcArea(current Grid, dst []Cell, wa workArea) {
	side := current.Side()
	for i := wa.y1 * side; i < (wa.y2+1)*side; i++ {
		dst[i] = cellNextState(current, i)
	}
}
