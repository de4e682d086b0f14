package logger

import "sync"

// Entry is a single record captured by Recorder.
type Entry struct {
	Level         string
	Msg           string
	KeysAndValues []interface{}
}

// Recorder keeps log records in memory. It is meant for tests.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(level, msg string, kv []interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, KeysAndValues: kv})
}

// Debug records a debug message.
func (r *Recorder) Debug(msg string, kv ...interface{}) { r.add("debug", msg, kv) }

// Info records an info message.
func (r *Recorder) Info(msg string, kv ...interface{}) { r.add("info", msg, kv) }

// Warn records a warning message.
func (r *Recorder) Warn(msg string, kv ...interface{}) { r.add("warn", msg, kv) }

// Error records an error message.
func (r *Recorder) Error(msg string, kv ...interface{}) { r.add("error", msg, kv) }

// Close is a no-op.
func (r *Recorder) Close() error { return nil }

// Entries returns a copy of the recorded entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Count returns how many entries were recorded at level.
func (r *Recorder) Count(level string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Level == level {
			n++
		}
	}
	return n
}
