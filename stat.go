package linerec

import "log/slog"

// Stat holds counters collected by a [Parser].
type Stat struct {
	LinesTotal    int64
	LinesInvalid  int64
	RecordsParsed int64
}

// IsZero returns true if nothing has been counted.
func (s Stat) IsZero() bool {
	return s == Stat{}
}

// LogValue implements [slog.LogValuer].
func (s Stat) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Group("lines",
			slog.Int64("total", s.LinesTotal),
			slog.Int64("invalid", s.LinesInvalid),
		),
		slog.Group("records",
			slog.Int64("parsed", s.RecordsParsed),
		),
	)
}
