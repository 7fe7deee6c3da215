package action

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/workshop/internal/logging"
	"github.com/aretw0/workshop/pkg/greeting"
)

// InputName is the input the greeter reads.
const InputName = "name"

// Exit codes returned by Greeter.Run.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ErrInputRequired is returned by Inputs implementations when a required input is empty.
var ErrInputRequired = errors.New("input required and not supplied")

// Greeter prints a greeting for the "name" input.
type Greeter struct {
	Inputs   Inputs
	Reporter Reporter
	Out      io.Writer
	Logger   *slog.Logger
}

// NewGreeter creates a Greeter writing to os.Stdout.
func NewGreeter(inputs Inputs, reporter Reporter) *Greeter {
	return &Greeter{
		Inputs:   inputs,
		Reporter: reporter,
		Out:      os.Stdout,
		Logger:   logging.NewNop(),
	}
}

// Run reads the name input and writes "Hello, <name>!" to Out.
// Any failure, including a panic raised while reading inputs, is handed to the
// Reporter and turned into ExitFailure; nothing is written to Out in that case.
func (g *Greeter) Run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			code = g.fail(err)
		}
	}()

	name, err := g.Inputs.Input(InputName)
	if err != nil {
		return g.fail(err)
	}
	g.logger().Debug("Input read", "input", InputName, "value", name)

	if _, err := io.WriteString(g.Out, greeting.For(name)+"\n"); err != nil {
		return g.fail(fmt.Errorf("failed to write greeting: %w", err))
	}
	return ExitSuccess
}

func (g *Greeter) fail(err error) int {
	g.logger().Debug("Greeter failed", "error", err)
	g.Reporter.Fail(err.Error())
	return ExitFailure
}

func (g *Greeter) logger() *slog.Logger {
	if g.Logger == nil {
		return logging.NewNop()
	}
	return g.Logger
}
