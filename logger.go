package tiercache

import "sort"

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Keys returns the field names in sorted order so adapters emit stable output.
func (f Fields) Keys() []string {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Logger is a tiny leveled logger. Provide an adapter around your logging stack
// (see the log/ packages). Combinators log each branch at Debug and absorbed
// write failures at Warn.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}
