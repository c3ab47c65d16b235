package assertions

import (
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type tHelper interface {
	Helper()
}

// reporter routes failures to testify. failNow is set for the Require
// variants and runs after every reported failure.
type reporter struct {
	t       assert.TestingT
	failNow func()
}

func (r reporter) helper() {
	if h, ok := r.t.(tHelper); ok {
		h.Helper()
	}
}

func (r reporter) fail(message string, msgAndArgs ...any) bool {
	r.helper()
	zap.S().Debugw("Assertion failed", "message", message)
	assert.Fail(r.t, message, msgAndArgs...)
	r.halt()
	return false
}

// check halts when a delegated assertion already reported a failure.
func (r reporter) check(ok bool) bool {
	if !ok {
		r.halt()
	}
	return ok
}

func (r reporter) halt() {
	if r.failNow != nil {
		r.failNow()
	}
}
