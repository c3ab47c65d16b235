package h

import "fmt"

type Unit struct{}

// Result holds either a value or an error value of an arbitrary type.
// The state is tracked explicitly, so an Err carrying a zero E is still an error.
type Result[T any, E any] struct {
	value T
	err   E
	isErr bool
}

type UResult = Result[Unit, error]

func UOk() UResult {
	return Ok[Unit, error](Unit{})
}

func Ok[T any, E any](value T) Result[T, E] {
	return Result[T, E]{
		value: value,
	}
}

func UErr(err error) UResult {
	return Err[Unit](err)
}

func UErrIf(cond bool, err error) UResult {
	if cond {
		return UErr(err)
	}
	return UOk()
}

func Err[T any, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:   err,
		isErr: true,
	}
}

// FromPair adapts the usual (value, error) return pair.
func FromPair[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

func (r Result[T, E]) String() string {
	if r.isErr {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

func (r Result[T, E]) IsOk() bool {
	return !r.isErr
}

func (r Result[T, E]) IsErr() bool {
	return r.isErr
}

func (r Result[T, E]) Get() (T, bool) {
	if r.isErr {
		var zero T
		return zero, false
	}
	return r.value, true
}

func (r Result[T, E]) GetErr() (E, bool) {
	if !r.isErr {
		var zero E
		return zero, false
	}
	return r.err, true
}

func (r Result[T, E]) Unwrap() T {
	if r.isErr {
		if err, ok := any(r.err).(error); ok {
			panic(unwrapErr("called Unwrap on a failed Result", err))
		}
		panic(unwrapErr(fmt.Sprintf("called Unwrap on a failed Result: %v", r.err), nil))
	}
	return r.value
}

func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if r.isErr {
		return defaultValue
	}
	return r.value
}

func (r Result[T, E]) UnwrapErr() E {
	if !r.isErr {
		panic(unwrapErr("called UnwrapErr on a successful Result", nil))
	}
	return r.err
}

// Match calls exactly one of the two branches.
func (r Result[T, E]) Match(ok func(T), err func(E)) {
	if r.isErr {
		err(r.err)
	} else {
		ok(r.value)
	}
}

func (r Result[T, E]) MapErr(err func(E) E) Result[T, E] {
	if r.isErr {
		return Err[T](err(r.err))
	}
	return r
}

func (r Result[T, E]) SetErr(err E) Result[T, E] {
	if r.isErr {
		return Err[T](err)
	}
	return r
}

func MapResult[T1 any, T2 any, E any](result Result[T1, E], mapping func(T1) T2) Result[T2, E] {
	if result.isErr {
		return Err[T2](result.err)
	}
	return Ok[T2, E](mapping(result.value))
}
