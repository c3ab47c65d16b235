package h

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"strconv"
	"testing"
)

func Test_Ok(t *testing.T) {
	// act
	out := Ok[int, string](3)

	// assert
	assert.True(t, out.IsOk())
	assert.False(t, out.IsErr())
	assert.Equal(t, 3, out.Unwrap())
	assert.Equal(t, 3, out.UnwrapOr(5))
	assert.Panics(t, func() {
		out.UnwrapErr()
	})

	v, ok := out.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = out.GetErr()
	assert.False(t, ok)
}

func Test_Err(t *testing.T) {
	// act
	out := Err[int]("boom")

	// assert
	assert.False(t, out.IsOk())
	assert.True(t, out.IsErr())
	assert.Equal(t, "boom", out.UnwrapErr())
	assert.Equal(t, 5, out.UnwrapOr(5))
	assert.Panics(t, func() {
		out.Unwrap()
	})
	assert.Equal(t, "Err(boom)", out.String())
}

func Test_Err_ZeroErrorIsStillErr(t *testing.T) {
	// act
	out := Err[string, error](nil)

	// assert
	assert.True(t, out.IsErr())
	e, ok := out.GetErr()
	assert.True(t, ok)
	assert.Nil(t, e)
}

func Test_FromPair(t *testing.T) {
	// act
	ok := FromPair(strconv.Atoi("12"))
	failed := FromPair(strconv.Atoi("x"))

	// assert
	assert.Equal(t, 12, ok.Unwrap())
	assert.True(t, failed.IsErr())

	var numErr *strconv.NumError
	assert.True(t, errors.As(failed.UnwrapErr(), &numErr))
}

func Test_Unwrap_WrapsErrorValue(t *testing.T) {
	// arrange
	cause := errors.New("cause")
	out := Err[int](cause)

	// act
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		out.Unwrap()
	}()

	// assert
	err, ok := recovered.(error)
	assert.True(t, ok)
	assert.ErrorIs(t, err, cause)
}

func Test_Result_Match(t *testing.T) {
	// arrange
	var oks, errs int

	// act
	Ok[string, int]("x").Match(func(string) { oks++ }, func(int) { errs++ })
	Err[string](1).Match(func(string) { oks++ }, func(int) { errs++ })

	// assert
	assert.Equal(t, 1, oks)
	assert.Equal(t, 1, errs)
}

func Test_MapErr_SetErr(t *testing.T) {
	// arrange
	failed := Err[int]("a")
	succeeded := Ok[int, string](1)

	// act + assert
	assert.Equal(t, "ab", failed.MapErr(func(s string) string { return s + "b" }).UnwrapErr())
	assert.Equal(t, "c", failed.SetErr("c").UnwrapErr())
	assert.Equal(t, succeeded, succeeded.SetErr("c"))
}

func Test_MapResult(t *testing.T) {
	// act
	mapped := MapResult(Ok[int, string](2), strconv.Itoa)
	failed := MapResult(Err[int]("no"), strconv.Itoa)

	// assert
	assert.Equal(t, "2", mapped.Unwrap())
	assert.Equal(t, "no", failed.UnwrapErr())
}

func Test_UErrIf(t *testing.T) {
	assert.True(t, UErrIf(true, errors.New("x")).IsErr())
	assert.True(t, UErrIf(false, errors.New("x")).IsOk())
}
