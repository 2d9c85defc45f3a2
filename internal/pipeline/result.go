// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

// Result is either a success carrying Value or a failure carrying Err.
type Result[T any] struct {
	Value T
	Err   error
}

func Success[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

func Failure[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// Ok reports whether r is a success.
func (r Result[T]) Ok() bool {
	return r.Err == nil
}
