package universe

import "testing"

func TestNewGridSize(t *testing.T) {
	for _, s := range []int{-1, 0, 1, 5, testSide} {
		g := NewGrid(s, nil)
		want := s * s
		if s < 1 {
			want = 1
		}
		if g.Len() != want || g.Side()*g.Side() != g.Len() {
			t.Errorf("NewGrid(%d): len %d side %d, want len %d", s, g.Len(), g.Side(), want)
		}
	}
}

func TestGridBuildByIndex(t *testing.T) {
	g := NewGrid(4, func(i int) Cell { return Alive(uint(i)) })
	g.Walk(func(x int, y int, c Cell) {
		if c.Age() != uint(y*4+x) {
			t.Fatalf("cell (%d,%d) = %v", x, y, c)
		}
		if g.AtXY(x, y) != c {
			t.Fatalf("AtXY(%d,%d) = %v, want %v", x, y, g.AtXY(x, y), c)
		}
	})
	if g.AtXY(-1, 0) != Dead || g.AtXY(4, 0) != Dead || g.AtXY(0, 4) != Dead {
		t.Fatal("positions outside the grid must be dead")
	}
}

func TestGridSettle(t *testing.T) {
	empty := EmptyGrid(5)
	g := empty.Settle([][]int{{1, 2}, {4, 4}, {5, 0}, {0, -1}, {3}})
	if g.LiveCells() != 2 {
		t.Fatalf("live cells = %d, want 2", g.LiveCells())
	}
	if !g.AtXY(1, 2).IsAlive() || !g.AtXY(4, 4).IsAlive() {
		t.Fatal("settled cells are not alive")
	}
	if empty.LiveCells() != 0 {
		t.Fatal("Settle modified the source grid")
	}
}

func TestGridCellsIsCopy(t *testing.T) {
	g := EmptyGrid(3)
	c := g.Cells()
	c[0] = Alive(0)
	if g.At(0) != Dead {
		t.Fatal("Cells exposed the backing slice")
	}
}

func TestGridEqual(t *testing.T) {
	a := EmptyGrid(3).Settle([][]int{{1, 1}})
	b := EmptyGrid(3).Settle([][]int{{1, 1}})
	if !a.Equal(b) {
		t.Fatal("equal grids are not Equal")
	}
	if a.Equal(EmptyGrid(3)) || a.Equal(EmptyGrid(4)) {
		t.Fatal("different grids are Equal")
	}
}
