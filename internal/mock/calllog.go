package mock

import (
	"slices"
	"sync"
)

// NewCallLog returns a new [CallLog].
func NewCallLog() *CallLog {
	return &CallLog{}
}

// CallLog is a log of handled records that can be used to build assertions.
type CallLog struct {
	mu      sync.Mutex
	records []Record
}

// Records returns all recorded log records.
func (l *CallLog) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Clone(l.records)
}

func (l *CallLog) append(record Record) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, record)
}
