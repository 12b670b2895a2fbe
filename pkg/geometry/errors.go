package geometry

import "errors"

// Sentinel errors for geometric impossibilities. Callers match them with
// errors.Is after the failure site wraps them with context.
var (
	// ErrDegenerate is returned when lengths or positions admit no valid
	// triangle: the strict triangle inequality fails, the points are
	// collinear, or a circle-circle construction has no intersection.
	ErrDegenerate = errors.New("degenerate triangle")

	// ErrInvalidAngle is returned for angles outside the open interval
	// (0, 180) degrees, including angle pairs that leave no room for a
	// third angle.
	ErrInvalidAngle = errors.New("invalid angle")

	// ErrInvalidLength is returned for side lengths that are not strictly
	// positive, and for a hypotenuse that does not exceed its leg.
	ErrInvalidLength = errors.New("invalid length")

	// ErrDegenerateLine is returned when a reflection axis has both of
	// its direction coefficients equal to zero.
	ErrDegenerateLine = errors.New("degenerate line")
)
