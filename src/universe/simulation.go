package universe

import (
	"context"
	"io"
	"log"
	"math/rand/v2"
	"time"
)

//Frame is what the simulation shows to viewers once per running tick
type Frame struct {
	Grid      Grid
	Number    int           //frame counter, starts from 1
	Ratio     float64       //current seed ratio
	Interval  time.Duration //current sleep between ticks
	LiveCells int
	StepTime  time.Duration //time spent calculating the previous generation
}

//Viewer is the interface to any Viewer - the object who can display simulation frames
type Viewer interface {
	Refresh(f Frame)
}

//Simulation owns the grid and the simulation parameters
//nothing but its own loop touches them; outside influence arrives only as Commands
type Simulation struct {
	options  Options
	engine   Engine
	rng      *rand.Rand
	commands *Commands
	views    []Viewer
	logger   *log.Logger

	grid     Grid
	running  bool
	frame    int
	ratio    float64
	interval time.Duration
	stepTime time.Duration
}

//NewSimulation creates the simulation in running state with the first grid seeded
//from o.Pattern, or randomly when there is no pattern
func NewSimulation(o Options, engine Engine, commands *Commands) *Simulation {
	if engine == nil {
		engine = NewBaseEngine()
	}
	if o.Side < 1 {
		o.Side = DefSide
	}
	s := &Simulation{
		options:  o,
		engine:   engine,
		rng:      NewRand(o.Seed),
		commands: commands,
		logger:   log.New(io.Discard, "", 0),
		running:  true,
		ratio:    o.Ratio,
		interval: o.Interval,
	}
	if len(o.Pattern) > 0 {
		s.grid = EmptyGrid(o.Side).Settle(o.Pattern)
	} else {
		s.grid = Seed(o.Side, s.ratio, s.rng)
	}
	return s
}

//RegisterViewer registers the viewer - the simulation will call it on every running tick
//must be called before Run
func (s *Simulation) RegisterViewer(v Viewer) {
	s.views = append(s.views, v)
}

//SetLogger sets the logger for applied commands, nil discards the output
func (s *Simulation) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	s.logger = l
}

//Run is the main cycle: renders, steps, applies at most one command and sleeps
//it only returns when ctx is done; an empty or closed command queue does not stop it
func (s *Simulation) Run(ctx context.Context) error {
	for {
		s.tick()
		if err := s.sleep(ctx); err != nil {
			return err
		}
	}
}

//tick does one loop iteration without the sleep
func (s *Simulation) tick() {
	if s.running {
		s.frame++
		s.refreshView()
		start := time.Now()
		s.grid = s.engine.Step(s.grid)
		s.stepTime = time.Since(start)
	}
	if s.commands == nil {
		return
	}
	if c, ok := s.commands.Poll(); ok {
		s.apply(c)
	}
}

//apply changes the simulation parameters according to the command
func (s *Simulation) apply(c Command) {
	switch c {
	case TogglePause:
		s.running = !s.running
	case Reseed:
		s.grid = Seed(s.grid.Side(), s.ratio, s.rng)
	case IncreaseDensity:
		s.ratio += s.options.RatioStep
	case DecreaseDensity:
		s.ratio -= s.options.RatioStep
	case SpeedUp:
		s.interval -= s.options.IntervalStep
		if s.interval < s.options.MinInterval {
			s.interval = s.options.MinInterval
		}
	case SlowDown:
		s.interval += s.options.IntervalStep
	default:
		return
	}
	s.logger.Printf("frame %d: %v applied (running: %v, ratio: %.2f, interval: %v)", s.frame, c, s.running, s.ratio, s.interval)
}

func (s *Simulation) sleep(ctx context.Context) error {
	if err := ctx.Err(); err != nil || s.interval <= 0 {
		return err
	}
	t := time.NewTimer(s.interval)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

//snapshot returns the current frame
func (s *Simulation) snapshot() Frame {
	return Frame{
		Grid:      s.grid,
		Number:    s.frame,
		Ratio:     s.ratio,
		Interval:  s.interval,
		LiveCells: s.grid.LiveCells(),
		StepTime:  s.stepTime,
	}
}

//refreshView calls Refresh for all registered views
func (s *Simulation) refreshView() {
	f := s.snapshot()
	for _, v := range s.views {
		v.Refresh(f)
	}
}
