package utils

import (
	"fmt"
	"strings"
	"sync"
)

// RecordingT satisfies assert.TestingT and require.TestingT and keeps every
// reported failure instead of failing the surrounding test. FailNow only
// counts; it does not stop the calling goroutine.
type RecordingT struct {
	mu       sync.Mutex
	errors   []string
	failNows int
}

func (r *RecordingT) Helper() {}

func (r *RecordingT) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *RecordingT) FailNow() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failNows++
}

func (r *RecordingT) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errors) > 0
}

func (r *RecordingT) FailNowCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failNows
}

func (r *RecordingT) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}

// Output joins all reported failures.
func (r *RecordingT) Output() string {
	return strings.Join(r.Errors(), "\n")
}
