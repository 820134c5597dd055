// Package logging builds the hclog logger shared by the CLI, the validators
// and the HTTP server.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Name is the root logger name.
const Name = "brandlint"

// Options configures New.
type Options struct {
	// Level is an hclog level name: trace, debug, info, warn, error or off.
	// Empty means info.
	Level string
	JSON  bool
	// Output defaults to stderr.
	Output io.Writer
	// Colour enables coloured level names when Output is a terminal.
	Colour bool
}

// ParseLevel converts a level name, rejecting anything hclog does not know.
func ParseLevel(name string) (hclog.Level, error) {
	if name == "" {
		return hclog.Info, nil
	}
	level := hclog.LevelFromString(name)
	if level == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("invalid log level %q (valid: trace, debug, info, warn, error, off)", name)
	}
	return level, nil
}

// New creates the root logger.
func New(opts Options) (hclog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	colour := hclog.ColorOff
	if opts.Colour && !opts.JSON {
		colour = hclog.AutoColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       Name,
		Level:      level,
		Output:     output,
		JSONFormat: opts.JSON,
		Color:      colour,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Output: io.Discard,
		Level:  hclog.Off,
	})
}
