// Package logs builds the structured logger of the moonlet command.
package logs

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

type Options struct {
	Level slog.Leveler
	// Writer receives human readable records. Defaults to os.Stderr.
	Writer io.Writer
	// JSON, if not nil, also receives every record as a JSON line.
	JSON io.Writer
}

func New(opts Options) *slog.Logger {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	handlers := []slog.Handler{
		slog.NewTextHandler(writer, handlerOpts),
	}
	if opts.JSON != nil {
		handlers = append(handlers, slog.NewJSONHandler(opts.JSON, handlerOpts))
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// Discard is a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
