package universe

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//default options
const (
	DefSide         = 20
	DefRatio        = 0.7
	DefInterval     = time.Millisecond * 700
	DefRatioStep    = 0.05
	DefIntervalStep = time.Millisecond * 50
	DefQueueSize    = 64
	DefEngine       = "base"
)

var ErrInvalidOptions = errors.New("invalid options")

//Options represents the simulation's configurable options
type Options struct {
	Side         int           `yaml:"side"`
	Ratio        float64       `yaml:"ratio"`         //deadness threshold used on seeding
	Interval     time.Duration `yaml:"interval"`      //sleep at the end of every tick
	RatioStep    float64       `yaml:"ratio_step"`    //ratio change per density command
	IntervalStep time.Duration `yaml:"interval_step"` //interval change per speed command
	MinInterval  time.Duration `yaml:"min_interval"`  //SpeedUp never goes below it
	Seed         int64         `yaml:"seed"`          //0 means time based
	QueueSize    int           `yaml:"queue_size"`
	Engine       string        `yaml:"engine"`
	Pattern      [][]int       `yaml:"pattern"` //array of [x,y] coordinates for the first grid
}

var DefaultOptions = Options{
	Side:         DefSide,
	Ratio:        DefRatio,
	Interval:     DefInterval,
	RatioStep:    DefRatioStep,
	IntervalStep: DefIntervalStep,
	QueueSize:    DefQueueSize,
	Engine:       DefEngine,
}

//LoadOptions reads the yaml file on top of DefaultOptions
func LoadOptions(path string) (Options, error) {
	o := DefaultOptions
	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("read options %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("parse options %s: %w", path, err)
	}
	return o, o.Validate()
}

//Validate checks the options, the error wraps ErrInvalidOptions
func (o Options) Validate() error {
	switch {
	case o.Side < 1:
		return fmt.Errorf("%w: side %d must be positive", ErrInvalidOptions, o.Side)
	case o.QueueSize < 0:
		return fmt.Errorf("%w: queue size %d is negative", ErrInvalidOptions, o.QueueSize)
	case o.RatioStep < 0:
		return fmt.Errorf("%w: ratio step %v is negative", ErrInvalidOptions, o.RatioStep)
	case o.IntervalStep < 0 || o.MinInterval < 0:
		return fmt.Errorf("%w: interval steps must not be negative", ErrInvalidOptions)
	}
	if _, ok := Engines[o.Engine]; !ok {
		return fmt.Errorf("%w: unknown engine %q", ErrInvalidOptions, o.Engine)
	}
	return nil
}
