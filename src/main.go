package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"agelife/src/universe"
	"agelife/src/view"

	"github.com/integrii/flaggy"
	"golang.org/x/sync/errgroup"
)

//EnvOptions are the process options which are not part of the simulation
type EnvOptions struct {
	config      string
	interactive bool
	noColor     bool
	frames      int
	logFile     string
}

//cliOptions holds the simulation flags, zero values mean "not set"
type cliOptions struct {
	side     int
	ratio    float64
	interval time.Duration
	engine   string
	seed     int64
}

func main() {
	eo, uo, err := initOptions()
	if err != nil {
		log.Fatalf("agelife: %v", err)
	}
	closeLog, err := initLog(eo.logFile)
	if err != nil {
		log.Fatalf("agelife: %v", err)
	}

	err = run(context.Background(), eo, uo, os.Stdin, os.Stdout)
	closeLog()
	if err != nil {
		log.Fatalf("agelife: %v", err)
	}
}

//run wires the simulation loop with its input and rendering collaborators
//returns nil when the user quits or the frame limit is reached
func run(ctx context.Context, eo *EnvOptions, uo universe.Options, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	commands := universe.NewCommands(uo.QueueSize)
	sim := universe.NewSimulation(uo, universe.Engines[uo.Engine](), commands)
	sim.SetLogger(log.Default())
	if eo.frames > 0 {
		sim.RegisterViewer(&frameLimit{max: eo.frames, cancel: cancel})
	}

	eg, ctx := errgroup.WithContext(ctx)
	var start func() error
	if eo.interactive {
		v := view.NewViewTerminal(commands)
		sim.RegisterViewer(v)
		start = func() error {
			return v.Start(ctx)
		}
	} else {
		sim.RegisterViewer(view.NewConsoleOut(out, !eo.noColor, true))
		//the blocking read can not be interrupted, so the reader is not waited for
		readerDone := make(chan error, 1)
		go func() {
			readerDone <- view.NewLineInput(in, commands).Run(ctx)
		}()
		start = func() error {
			select {
			case err := <-readerDone:
				if err == nil {
					//end of input: no more commands, the simulation keeps going
					<-ctx.Done()
				}
				return err
			case <-ctx.Done():
				return nil
			}
		}
	}
	eg.Go(start)
	eg.Go(func() error {
		return sim.Run(ctx)
	})

	err := eg.Wait()
	if errors.Is(err, view.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

//frameLimit cancels the run after max frames
type frameLimit struct {
	max    int
	cancel context.CancelFunc
}

func (f *frameLimit) Refresh(fr universe.Frame) {
	if fr.Number >= f.max {
		f.cancel()
	}
}

func initLog(path string) (func(), error) {
	if path == "" {
		//stdout is the simulation display
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

func engineNames() []string {
	engineNames := make([]string, 0, len(universe.Engines))
	for k := range universe.Engines {
		engineNames = append(engineNames, k)
	}
	sort.Strings(engineNames)
	return engineNames
}

func initOptions() (eo *EnvOptions, uo universe.Options, err error) {
	eo = &EnvOptions{}
	cli := &cliOptions{}
	flaggy.SetName("agelife")
	flaggy.SetDescription("\"The Life\" game simulation where cells age as they survive")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&eo.config, "c", "config", "Path to the yaml configuration file")
	flaggy.Int(&cli.side, "s", "side", "Side of the square simulation field")
	flaggy.Float64(&cli.ratio, "r", "ratio", "Seed ratio: a cell is seeded alive when a random number in [0,1) is greater than it")
	flaggy.Duration(&cli.interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.String(&cli.engine, "e", "engine", "Engine to use ["+strings.Join(engineNames(), "|")+"]")
	flaggy.Int64(&cli.seed, "", "seed", "Random seed, 0 seeds from the clock")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.noColor, "", "nocolor", "Disable the cell colors")
	flaggy.Int(&eo.frames, "f", "frames", "Stop after the number of frames, 0 runs until quit")
	flaggy.String(&eo.logFile, "", "log", "Write the log to the file")

	flaggy.Parse()

	uo, err = buildOptions(eo.config, cli)
	return
}

//buildOptions loads the config file (or the defaults) and applies the flags on top
func buildOptions(config string, cli *cliOptions) (universe.Options, error) {
	uo := universe.DefaultOptions
	if config != "" {
		var err error
		if uo, err = universe.LoadOptions(config); err != nil {
			return uo, err
		}
	}
	if cli.side != 0 {
		uo.Side = cli.side
	}
	if cli.ratio != 0 {
		uo.Ratio = cli.ratio
	}
	if cli.interval != 0 {
		uo.Interval = cli.interval
	}
	if cli.engine != "" {
		uo.Engine = cli.engine
	}
	if cli.seed != 0 {
		uo.Seed = cli.seed
	}
	return uo, uo.Validate()
}
