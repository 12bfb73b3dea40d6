package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"agelife/src/universe"

	"github.com/logrusorgru/aurora"
)

const clearScreen = "\x1B[2J\x1B[1;1H"

var helpLines = []string{
	"commands:",
	"r - redraw, m - increase ratio, l - lower ratio",
	"z - slower, x - faster, p - pause, q - quit",
	"you have to press enter for commands to work!",
}

//ConsoleOut prints every frame to the writer: the header, the bordered field and the help
type ConsoleOut struct {
	w     io.Writer
	au    aurora.Aurora
	clear bool
}

//NewConsoleOut creates the printer, colors enables the age tier colors,
//clear wipes the screen before each frame
func NewConsoleOut(w io.Writer, colors bool, clear bool) *ConsoleOut {
	return &ConsoleOut{w: w, au: aurora.NewAurora(colors), clear: clear}
}

func (c *ConsoleOut) Refresh(f universe.Frame) {
	b := bufio.NewWriter(c.w)
	if c.clear {
		b.WriteString(clearScreen)
	}
	fmt.Fprintf(b, "frame: %v - ratio: %.2f - sleep duration(ms): %v\n", f.Number, f.Ratio, f.Interval.Milliseconds())
	c.writeField(b, f.Grid)
	fmt.Fprintf(b, "live cells: %v - step time: %v\n", f.LiveCells, f.StepTime)
	for _, l := range helpLines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	_ = b.Flush()
}

func (c *ConsoleOut) writeField(b *bufio.Writer, g universe.Grid) {
	side := g.Side()
	border := " " + strings.Repeat("--", side) + "\n"
	b.WriteString(border)
	for y := 0; y < side; y++ {
		b.WriteByte('|')
		for x := 0; x < side; x++ {
			b.WriteString(symbol(c.au, g.AtXY(x, y)))
			b.WriteByte(' ')
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
}
