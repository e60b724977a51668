// Package arith provides generic numeric helpers.
package arith

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is the set of built-in numeric kinds accepted by Add and Halve.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Add returns num1 + num2. Both operands share one type; use a float
// type to get fractional results.
func Add[T Number](num1, num2 T) T {
	return num1 + num2
}

// Halve returns number / 2 as a float64. The result is fractional even
// for even integers.
func Halve[T Number](number T) float64 {
	return float64(number) / 2
}

// ParseOperand parses s as a decimal or integer number. Infinities and
// NaN are rejected.
func ParseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q: %w", s, err)
	}
	if !IsFinite(v) {
		return 0, fmt.Errorf("invalid operand %q: not a finite number", s)
	}
	return v, nil
}

// IsFinite reports whether v is neither infinite nor NaN.
func IsFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
