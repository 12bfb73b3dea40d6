package view

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"agelife/src/universe"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type keyBindings struct {
	key     interface{}
	name    string
	descr   string
	handler func(v *gocui.View) error
}

//ConsoleUI is the interactive terminal view: draws the frames and turns key presses into commands
type ConsoleUI struct {
	g        *gocui.Gui
	k        []keyBindings
	au       aurora.Aurora
	commands *universe.Commands
	ctx      context.Context

	mu     sync.Mutex
	frame  universe.Frame
	paused bool
}

func NewViewTerminal(commands *universe.Commands) *ConsoleUI {

	var err error
	t := ConsoleUI{
		au:       aurora.NewAurora(true),
		commands: commands,
		ctx:      context.Background(),
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.k = []keyBindings{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit},
		{'q', "Q", "Exit", t.cmdQuit},
		{'p', "P", "Pause", t.cmdSend(universe.TogglePause)},
		{'r', "R", "Redraw", t.cmdSend(universe.Reseed)},
		{'m', "M", "Increase ratio", t.cmdSend(universe.IncreaseDensity)},
		{'l', "L", "Lower ratio", t.cmdSend(universe.DecreaseDensity)},
		{'z', "Z", "Slower", t.cmdSend(universe.SlowDown)},
		{'x', "X", "Faster", t.cmdSend(universe.SpeedUp)},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding("", kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

//Start runs the terminal main loop until the user quits, the command queue is closed on return
func (t *ConsoleUI) Start(ctx context.Context) error {
	t.ctx = ctx
	defer t.commands.Close()
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return ErrQuit
}

//Refresh is called from the simulation goroutine
func (t *ConsoleUI) Refresh(f universe.Frame) {
	t.mu.Lock()
	t.frame = f
	t.mu.Unlock()
	t.g.Update(func(g *gocui.Gui) error {
		t.renderField(g)
		t.renderConfiguration(g)
		t.renderStatus(g)
		return nil
	})
}

func (t *ConsoleUI) current() (universe.Frame, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frame, t.paused
}

func (t *ConsoleUI) renderField(g *gocui.Gui) {
	v, e := g.View("battlefield")
	if e != nil {
		return
	}
	f, _ := t.current()
	v.Clear()
	maxW, maxH := v.Size()
	_, _ = fmt.Fprint(v, fieldText(t.au, f.Grid, maxW, maxH))
}

//fieldText renders the grid cropped to the view size, two columns per cell
func fieldText(au aurora.Aurora, grid universe.Grid, maxW int, maxH int) string {
	side := grid.Side()
	crop := side*2 > maxW || side > maxH

	var b bytes.Buffer
	for y := 0; y < side; y++ {
		//discard the data outside the view area
		if y >= maxH {
			break
		}
		//line feed char
		if y != 0 {
			b.WriteByte(10)
		}
		if crop && y == (maxH-1) {
			b.WriteString(au.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		for x := 0; x < side && (x+1)*2 <= maxW; x++ {
			b.WriteString(symbol(au, grid.AtXY(x, y)))
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func (t *ConsoleUI) renderStatus(g *gocui.Gui) {
	f, paused := t.current()
	mode := t.au.Colorize("running", aurora.CyanFg).String()
	if paused {
		mode = t.au.Colorize("paused", aurora.BlueFg).String()
	}
	if v, e := g.View("status"); e == nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Frame", "%v", f.Number))
		_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", f.LiveCells))
		_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", f.StepTime.Round(time.Microsecond)))
		_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
	}
}

func (t *ConsoleUI) renderConfiguration(g *gocui.Gui) {
	f, _ := t.current()
	if v, e := g.View("configuration"); e == nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", f.Grid.Side(), f.Grid.Side()))
		_, _ = fmt.Fprintln(v, t.renderProp("Ratio", "%.2f", f.Ratio))
		_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", f.Interval))
	}
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+t.au.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "This is \"The Life\" game simulation, cells age as they survive"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration(g)
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus(g)
	}

	if v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Battle Field"
		v.Frame = true
	}
	t.renderField(g)

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprintln(v, helpText(t.au, t.k))
	}

	return nil
}

func helpText(au aurora.Aurora, k []keyBindings) string {
	b := bytes.Buffer{}
	b.WriteString("KEYBINDINGS: ")
	for i, kb := range k {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(au.Green(kb.name).String())
		b.WriteString(": ")
		b.WriteString(kb.descr)
	}
	return b.String()
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

//cmdSend returns the key handler which queues the command
func (t *ConsoleUI) cmdSend(c universe.Command) func(v *gocui.View) error {
	return func(_ *gocui.View) error {
		if c == universe.TogglePause {
			t.mu.Lock()
			t.paused = !t.paused
			t.mu.Unlock()
			t.renderStatus(t.g)
		}
		return t.commands.Send(t.ctx, c)
	}
}
