// Package aoc holds the small helpers shared by the Advent of Code 2025
// solvers in this module: integer points, overflow-checked arithmetic and
// a fan-out/fold for splitting CPU-bound work across goroutines.
package aoc

import "sync"

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Parallel calls f on every element of in, each in its own goroutine, and
// returns the results in input order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

// Fold reduces in from left to right, starting at defVal.
func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

// ParallelMapFold maps in with f concurrently and then folds the results in
// input order with f2. The fold is sequential, so f2 needs no locking.
func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}
