package assertions

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"optassert/constants"
	"optassert/equivalency"
	"optassert/h"
)

type ResultAssertions[T any, E any] struct {
	reporter
	subject h.Result[T, E]
}

func ShouldResult[T any, E any](t assert.TestingT, subject h.Result[T, E]) *ResultAssertions[T, E] {
	return &ResultAssertions[T, E]{
		reporter: reporter{t: t},
		subject:  subject,
	}
}

func RequireResult[T any, E any](t require.TestingT, subject h.Result[T, E]) *ResultAssertions[T, E] {
	return &ResultAssertions[T, E]{
		reporter: reporter{t: t, failNow: t.FailNow},
		subject:  subject,
	}
}

func (a *ResultAssertions[T, E]) Subject() h.Result[T, E] {
	return a.subject
}

func (a *ResultAssertions[T, E]) HaveSome(msgAndArgs ...any) AndWhichConstraint[*ResultAssertions[T, E], T] {
	a.helper()

	value, ok := a.subject.Get()
	if !ok {
		a.fail(constants.MessageOptionHasNoValue, msgAndArgs...)
	}
	return AndWhichConstraint[*ResultAssertions[T, E], T]{And: a, Which: value}
}

// BeNone passes for the error branch and exposes the error value as Which.
func (a *ResultAssertions[T, E]) BeNone(msgAndArgs ...any) AndWhichConstraint[*ResultAssertions[T, E], E] {
	a.helper()

	errValue, ok := a.subject.GetErr()
	if !ok {
		a.fail(constants.MessageOptionHasValue, msgAndArgs...)
	}
	return AndWhichConstraint[*ResultAssertions[T, E], E]{And: a, Which: errValue}
}

func (a *ResultAssertions[T, E]) HasValueEquivalentTo(expected any, msgAndArgs ...any) bool {
	a.helper()
	return a.HasValueEquivalentToUsing(expected, equivalency.Identity, msgAndArgs...)
}

func (a *ResultAssertions[T, E]) HasValueEquivalentToUsing(expected any, config equivalency.Config, msgAndArgs ...any) bool {
	a.helper()

	value, ok := a.subject.Get()
	if !ok {
		return a.fail(constants.MessageOptionHasNoValue, msgAndArgs...)
	}
	return a.check(equivalency.AssertEquality(a.t, value, expected, config, msgAndArgs...))
}

func (a *ResultAssertions[T, E]) HasExceptionEquivalentTo(expected any, msgAndArgs ...any) bool {
	a.helper()
	return a.HasExceptionEquivalentToUsing(expected, equivalency.Identity, msgAndArgs...)
}

func (a *ResultAssertions[T, E]) HasExceptionEquivalentToUsing(expected any, config equivalency.Config, msgAndArgs ...any) bool {
	a.helper()

	errValue, ok := a.subject.GetErr()
	if !ok {
		return a.fail(constants.MessageOptionHasValue, msgAndArgs...)
	}
	return a.check(equivalency.AssertEquality(a.t, errValue, expected, config, msgAndArgs...))
}

// HasErrorMatching passes when the error value is an error whose chain
// contains target, as reported by errors.Is.
func (a *ResultAssertions[T, E]) HasErrorMatching(target error, msgAndArgs ...any) bool {
	a.helper()

	errValue, ok := a.subject.GetErr()
	if !ok {
		return a.fail(constants.MessageOptionHasValue, msgAndArgs...)
	}
	err, isError := any(errValue).(error)
	if !isError {
		return a.fail(fmt.Sprintf("Expected an error matching %v, but the error value of type %T is not an error.", target, errValue), msgAndArgs...)
	}
	return a.check(assert.ErrorIs(a.t, err, target, msgAndArgs...))
}
