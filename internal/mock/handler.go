// Package mock provides a recording slog.Handler for assertions on diagnostic output.
package mock

import (
	"context"
	"log/slog"
)

// NewHandler returns a new [Handler] that records into log.
func NewHandler(log *CallLog) *Handler {
	return &Handler{log: log}
}

// ---

// Handler is a [slog.Handler] that records every handled record at any level.
type Handler struct {
	log   *CallLog
	attrs []slog.Attr
}

// Enabled returns true.
func (h *Handler) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle records the call.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	attrs := make([]slog.Attr, 0, len(h.attrs)+record.NumAttrs())
	attrs = append(attrs, h.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)

		return true
	})

	h.log.append(Record{
		Level:   record.Level,
		Message: record.Message,
		Attrs:   NewAttrs(attrs),
	})

	return nil
}

// WithAttrs returns a new [Handler] that adds attrs to every recorded record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		log:   h.log,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

// WithGroup returns the handler itself, groups are not recorded.
func (h *Handler) WithGroup(string) slog.Handler {
	return h
}

// ---

// Record is a comparable representation of a handled [slog.Record] without time and source.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   []Attr
}

// Attr returns the value of the first attribute with the given key.
func (r Record) Attr(key string) (any, bool) {
	for _, a := range r.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}

	return nil, false
}

// ---

// NewAttrs returns a new slice of [Attr] based on the given slice of [slog.Attr].
func NewAttrs(attrs []slog.Attr) []Attr {
	if len(attrs) == 0 {
		return nil
	}

	result := make([]Attr, 0, len(attrs))
	for _, a := range attrs {
		result = append(result, Attr{
			Key:   a.Key,
			Value: a.Value.Resolve().Any(),
		})
	}

	return result
}

// Attr is a comparable representation of [slog.Attr].
type Attr struct {
	Key   string
	Value any
}

// ---

var _ slog.Handler = (*Handler)(nil)
