package yumi

import "golang.org/x/exp/constraints"

func absDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// between lo <= v <= hi
func between[T constraints.Integer](v, lo, hi T) bool {
	return v >= lo && v <= hi
}
