package logging

import "sync"

// Entry is a log call captured by RecordingLogger.
type Entry struct {
	Level   LogLevel
	Message string
	Fields  map[string]any
}

// RecordingLogger keeps every entry in memory so tests can assert on
// what was logged. Loggers derived with WithFields share the same
// entry list.
type RecordingLogger struct {
	mu      *sync.Mutex
	entries *[]Entry
	fields  map[string]any
}

// NewRecordingLogger creates an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{
		mu:      &sync.Mutex{},
		entries: &[]Entry{},
		fields:  map[string]any{},
	}
}

func (r *RecordingLogger) record(
	level LogLevel, msg string, fields []Field,
) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.entries = append(*r.entries, Entry{
		Level:   level,
		Message: msg,
		Fields:  mergeFields(r.fields, fields),
	})
}

// Info records an informational message.
func (r *RecordingLogger) Info(msg string, fields ...Field) {
	r.record(LevelInfo, msg, fields)
}

// Warn records a warning message.
func (r *RecordingLogger) Warn(msg string, fields ...Field) {
	r.record(LevelWarn, msg, fields)
}

// Error records an error message.
func (r *RecordingLogger) Error(msg string, fields ...Field) {
	r.record(LevelError, msg, fields)
}

// Debug records a debug message.
func (r *RecordingLogger) Debug(msg string, fields ...Field) {
	r.record(LevelDebug, msg, fields)
}

// WithFields returns a RecordingLogger sharing this logger's entries.
func (r *RecordingLogger) WithFields(fields ...Field) Logger {
	return &RecordingLogger{
		mu:      r.mu,
		entries: r.entries,
		fields:  mergeFields(r.fields, fields),
	}
}

// Close is a no-op.
func (r *RecordingLogger) Close() error { return nil }

// Entries returns a copy of the recorded entries.
func (r *RecordingLogger) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(*r.entries))
	copy(out, *r.entries)
	return out
}

// ByLevel returns the recorded entries at the given level.
func (r *RecordingLogger) ByLevel(level LogLevel) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Reset discards all recorded entries.
func (r *RecordingLogger) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.entries = (*r.entries)[:0]
}
