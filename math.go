package aoc

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// MinMax returns a and b in ascending order.
func MinMax[T constraints.Ordered](a, b T) (lo, hi T) {
	if a <= b {
		return a, b
	}
	return b, a
}

// CheckedMul returns a*b. It panics if either operand is negative or the
// product does not fit in an int64; callers validate their inputs so that
// this never happens.
func CheckedMul(a, b int64) int64 {
	if a < 0 || b < 0 {
		panic(fmt.Sprintf("CheckedMul(%d, %d): negative operand", a, b))
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > 1<<63-1 {
		panic(fmt.Sprintf("CheckedMul(%d, %d): overflows int64", a, b))
	}
	return int64(lo)
}
