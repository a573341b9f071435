// Package cli implements the salesman command-line interface.
//
// The CLI generates (or loads) a city layout, solves it exactly with
// Held–Karp, prints a summary and optionally writes a PNG of the instance and
// the tour. It is built on cobra; logging goes through charmbracelet/log.
//
// # Commands
//
//   - solve:  generate/load cities, solve, print the tour, optionally render
//   - render: draw the instance (complete graph or points) without solving
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried in context.Context so commands and helpers share one instance.
//
// # Configuration
//
// --config points at a TOML file (see config.go). Flags given explicitly on
// the command line override values from the file.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps writing to w at
// the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of one step with its elapsed time.
// Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time and returns that duration.
// Example output: "Solved 12 cities (84ms)"
func (p *progress) done(msg string, keyvals ...interface{}) time.Duration {
	elapsed := time.Since(p.start)
	p.logger.Info(msg, append([]interface{}{"elapsed", elapsed.Round(time.Microsecond)}, keyvals...)...)

	return elapsed
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
