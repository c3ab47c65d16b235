// Package assertions provides fluent testify assertions for h.Opt and
// h.Result values.
//
//	assertions.Should(t, h.Some("test")).HaveSome().Which
//	assertions.Require(t, h.None[string]()).BeNone()
//	assertions.ShouldResult(t, res).HasExceptionEquivalentTo(expectedErr)
//
// Should and ShouldResult report failures and let the test continue.
// Require and RequireResult stop the test after the first failure.
package assertions

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"optassert/constants"
	"optassert/equivalency"
	"optassert/h"
)

type OptionAssertions[T any] struct {
	reporter
	subject h.Opt[T]
}

func Should[T any](t assert.TestingT, subject h.Opt[T]) *OptionAssertions[T] {
	return &OptionAssertions[T]{
		reporter: reporter{t: t},
		subject:  subject,
	}
}

func Require[T any](t require.TestingT, subject h.Opt[T]) *OptionAssertions[T] {
	return &OptionAssertions[T]{
		reporter: reporter{t: t, failNow: t.FailNow},
		subject:  subject,
	}
}

func (a *OptionAssertions[T]) Subject() h.Opt[T] {
	return a.subject
}

func (a *OptionAssertions[T]) HaveSome(msgAndArgs ...any) AndWhichConstraint[*OptionAssertions[T], T] {
	a.helper()

	value, ok := a.subject.Get()
	if !ok {
		a.fail(constants.MessageOptionHasNoValue, msgAndArgs...)
	}
	return AndWhichConstraint[*OptionAssertions[T], T]{And: a, Which: value}
}

func (a *OptionAssertions[T]) BeNone(msgAndArgs ...any) AndConstraint[*OptionAssertions[T]] {
	a.helper()

	if a.subject.IsSome() {
		a.fail(constants.MessageOptionHasValue, msgAndArgs...)
	}
	return AndConstraint[*OptionAssertions[T]]{And: a}
}

// HasValueEquivalentTo compares the value with the default equivalency options.
func (a *OptionAssertions[T]) HasValueEquivalentTo(expected any, msgAndArgs ...any) bool {
	a.helper()
	return a.HasValueEquivalentToUsing(expected, equivalency.Identity, msgAndArgs...)
}

func (a *OptionAssertions[T]) HasValueEquivalentToUsing(expected any, config equivalency.Config, msgAndArgs ...any) bool {
	a.helper()

	value, ok := a.subject.Get()
	if !ok {
		return a.fail(constants.MessageOptionHasNoValue, msgAndArgs...)
	}
	return a.check(equivalency.AssertEquality(a.t, value, expected, config, msgAndArgs...))
}
