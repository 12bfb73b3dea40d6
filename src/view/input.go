package view

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"agelife/src/universe"
)

//ErrQuit is returned when the user asks to quit
var ErrQuit = errors.New("quit")

const quitCode = "q"

//LineInput reads one command code per line and forwards the commands to the simulation
type LineInput struct {
	r        io.Reader
	commands *universe.Commands
}

func NewLineInput(r io.Reader, commands *universe.Commands) *LineInput {
	return &LineInput{r: r, commands: commands}
}

//Run reads lines until quit, the end of input or ctx is done
//unknown lines are ignored; the command queue is closed on return
func (l *LineInput) Run(ctx context.Context) error {
	defer l.commands.Close()
	s := bufio.NewScanner(l.r)
	for s.Scan() {
		code := strings.TrimSpace(s.Text())
		if code == quitCode {
			return ErrQuit
		}
		c, ok := universe.ParseCommand(code)
		if !ok {
			continue
		}
		if err := l.commands.Send(ctx, c); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}
