package logger

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that discards all records.
type nopHandler struct{}

func (n nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (n nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (n nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return n }
func (n nopHandler) WithGroup(string) slog.Handler             { return n }

// NewNop returns a logger that discards everything. Packages use it when the
// caller does not supply a logger.
func NewNop() *slog.Logger {
	return slog.New(nopHandler{})
}
