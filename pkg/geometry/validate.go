package geometry

import (
	"fmt"
	"sort"
)

// CheckTriangleInequality verifies that three side lengths satisfy the
// strict triangle inequality: the two shorter sides must sum to more than
// the longest. Equality counts as degenerate (collinear, zero area).
func CheckTriangleInequality(a, b, c float64) error {
	s := []float64{a, b, c}
	sort.Float64s(s)
	if !(s[0]+s[1] > s[2]) {
		return fmt.Errorf("%w: sides %g, %g, %g", ErrDegenerate, a, b, c)
	}
	return nil
}

// CheckAngleRange verifies that an angle in degrees lies strictly between
// 0 and 180.
func CheckAngleRange(degrees float64) error {
	if !(degrees > 0 && degrees < 180) {
		return fmt.Errorf("%w: %g degrees", ErrInvalidAngle, degrees)
	}
	return nil
}

// CheckPositiveLength verifies that a side length is strictly positive.
func CheckPositiveLength(length float64) error {
	if !(length > 0) {
		return fmt.Errorf("%w: %g", ErrInvalidLength, length)
	}
	return nil
}
