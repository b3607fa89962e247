package weierstrass

import "errors"

// The failure kinds surfaced by this package. Every error returned by a
// constructor or operation wraps exactly one of these; callers discriminate
// with [errors.Is].
var (
	// ErrInvalidCoefficient reports a curve coefficient that is NaN or infinite.
	ErrInvalidCoefficient = errors.New("weierstrass: coefficient is not a finite real number")
	// ErrInvalidAbscissa reports an ordinate query at a NaN or infinite abscissa.
	ErrInvalidAbscissa = errors.New("weierstrass: abscissa is not a finite real number")
	// ErrNoRealImage reports a negative discriminant in the ordinate solver:
	// the curve has no real point at the queried abscissa.
	ErrNoRealImage = errors.New("weierstrass: no real ordinate at abscissa")
	// ErrCurveMismatch reports an operation across points bound to different curves.
	ErrCurveMismatch = errors.New("weierstrass: points lie on different curves")
	// ErrPointNotOnCurve reports a coordinate pair that fails the membership
	// tolerance, either at construction or after a chord/tangent construction
	// whose floating-point drift exceeded it.
	ErrPointNotOnCurve = errors.New("weierstrass: point does not satisfy the curve equation")
	// ErrDivisionByZero reports an undefined slope: a vertical tangent or a
	// vertical chord.
	ErrDivisionByZero = errors.New("weierstrass: vertical slope")
)
