// Package xlog holds the loggers the command line switches between.
package xlog

import (
	"context"
	"io"
	"log/slog"
)

// DisabledLogger drops every record. It is installed by --quiet.
var DisabledLogger = slog.New(DisabledLogHandler{})

type DisabledLogHandler struct{}

func (d DisabledLogHandler) Enabled(context.Context, slog.Level) bool {
	return false
}

func (d DisabledLogHandler) Handle(context.Context, slog.Record) error {
	return nil
}

func (d DisabledLogHandler) WithAttrs([]slog.Attr) slog.Handler {
	return d
}

func (d DisabledLogHandler) WithGroup(string) slog.Handler {
	return d
}

// NewDebugLogger logs every record down to debug level to w. It is
// installed by --debug.
func NewDebugLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
