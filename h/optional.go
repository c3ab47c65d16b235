package h

import (
	"fmt"
)

type Opt[T any] struct {
	value *T
}

func (o Opt[T]) String() string {
	if o.value == nil {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", *o.value)
}

func Some[T any](v T) Opt[T] {
	return Opt[T]{
		value: &v,
	}
}

func None[T any]() Opt[T] {
	return Opt[T]{}
}

func SomeIf[T any](cond bool, t T) Opt[T] {
	if cond {
		return Some(t)
	}
	return None[T]()
}

// FromPtr copies the pointee so the option cannot be changed through p afterwards.
func FromPtr[T any](p *T) Opt[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func FromDefault[T comparable](v T) Opt[T] {
	var zero T
	if v == zero {
		return Opt[T]{}
	}
	return Opt[T]{value: &v}
}

func (o Opt[T]) IsNone() bool {
	return o.value == nil
}

func (o Opt[T]) IsSome() bool {
	return o.value != nil
}

func (o Opt[T]) Get() (T, bool) {
	if o.IsNone() {
		var zero T
		return zero, false
	}
	return *o.value, true
}

// Match calls exactly one of the two branches.
func (o Opt[T]) Match(some func(T), none func()) {
	if o.value == nil {
		none()
		return
	}
	some(*o.value)
}

func (o Opt[T]) Or(other Opt[T]) Opt[T] {
	if o.value == nil {
		return other
	}
	return o
}

func (o Opt[T]) OrElse(fn func() Opt[T]) Opt[T] {
	if o.value != nil {
		return o
	}
	return fn()
}

func (o Opt[T]) Expect(msg string) T {
	return o.UnwrapErr(unwrapErr(fmt.Sprintf("tried to unwrap an empty option: %s", msg), nil))
}

func (o Opt[T]) Unwrap() T {
	return o.UnwrapErr(unwrapErr("tried to unwrap an empty option", nil))
}

func (o Opt[T]) UnwrapErr(e error) T {
	if o.value == nil {
		panic(e)
	}
	return *o.value
}

func (o Opt[T]) UnwrapOr(d T) T {
	if o.value == nil {
		return d
	}
	return *o.value
}

func (o Opt[T]) UnwrapOrElse(f func() T) T {
	if o.value == nil {
		return f()
	}
	return *o.value
}

func (o Opt[T]) UnwrapOrEmpty() T {
	if o.value == nil {
		var zero T
		return zero
	}
	return *o.value
}

func (o Opt[T]) Map(m func(T) T) Opt[T] {
	if o.value == nil {
		return o
	}
	return Some(m(*o.value))
}

func MapOpt[From any, To any](from Opt[From], m func(From) To) Opt[To] {
	if from.value == nil {
		return Opt[To]{}
	}
	return Some(m(*from.value))
}

func (o Opt[T]) IfSome(f func(T)) {
	if o.value == nil {
		return
	}
	f(*o.value)
}
