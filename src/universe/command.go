package universe

import (
	"context"
	"sync"
)

//Command is a user intent delivered to the simulation
type Command int

const (
	TogglePause Command = iota
	Reseed
	IncreaseDensity
	DecreaseDensity
	SpeedUp
	SlowDown
)

var commandNames = map[Command]string{
	TogglePause:     "pause",
	Reseed:          "reseed",
	IncreaseDensity: "increase ratio",
	DecreaseDensity: "lower ratio",
	SpeedUp:         "faster",
	SlowDown:        "slower",
}

//commandCodes maps the single letter input codes to commands
var commandCodes = map[string]Command{
	"p": TogglePause,
	"r": Reseed,
	"m": IncreaseDensity,
	"l": DecreaseDensity,
	"x": SpeedUp,
	"z": SlowDown,
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "unknown"
}

//ParseCommand maps an input code to the command, ok is false for unknown codes
func ParseCommand(code string) (c Command, ok bool) {
	c, ok = commandCodes[code]
	return
}

//Commands is the FIFO queue carrying commands from one producer to the simulation
//the consumer side never blocks: see Poll
type Commands struct {
	ch        chan Command
	closeOnce sync.Once
}

//NewCommands creates the queue, size is the number of commands buffered before Send blocks
func NewCommands(size int) *Commands {
	if size < 0 {
		size = 0
	}
	return &Commands{ch: make(chan Command, size)}
}

//Send queues the command, waits while the queue is full
//must not be called after Close
func (q *Commands) Send(ctx context.Context, c Command) error {
	select {
	case q.ch <- c:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

//Poll takes one pending command without waiting
//ok is false when nothing is queued or the producer has closed the queue,
//which is the normal outcome for most ticks
func (q *Commands) Poll() (c Command, ok bool) {
	select {
	case c, ok = <-q.ch:
		return
	default:
		return 0, false
	}
}

//Close disconnects the producer side, commands already queued are still delivered
func (q *Commands) Close() {
	q.closeOnce.Do(func() {
		close(q.ch)
	})
}
