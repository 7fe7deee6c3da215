package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/workshop/internal/logging"
)

// ExitError carries a process exit code out of a command whose failure has
// already been reported to the user.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewLogger builds the application logger from the --log-level and --log-format flag values.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	f, err := logging.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, f, lvl), nil
}

// StaticInputs serves action inputs from a fixed map, e.g. values given as flags.
type StaticInputs map[string]string

func (s StaticInputs) Input(name string) (string, error) {
	return s[name], nil
}
