// Package weierstrass models cubic curves in general Weierstrass form over
// real coordinates,
//
//	Y² + a1·XY + a3·Y = X³ + a2·X² + a4·X + a6,
//
// and the affine arithmetic of points on them: membership testing, solving
// for the ordinates at an abscissa, tangent lines, and the chord and tangent
// constructions behind point addition and point doubling.
//
// All arithmetic is plain float64 arithmetic. This is an educational
// geometry package, not a cryptographic one: there is no finite-field
// reduction, no point at infinity, no scalar multiplication, and no
// constant-time guarantee. Membership is decided under a fixed two-decimal
// rounding tolerance that absorbs the floating-point noise of the chord and
// tangent constructions.
//
// A [Curve] is constructed first; [CurvePoint] values are constructed
// against it and validated to lie on it, so every point a caller can hold
// is on-curve for its entire lifetime. Operations that would need a
// vertical line (a tangent at a ramification point, or a chord through two
// distinct points sharing an abscissa) fail with [ErrDivisionByZero]
// rather than producing a point at infinity.
//
// Curve and CurvePoint are immutable values and every operation returns a
// fresh value, so the package is safe for concurrent use without
// synchronization.
package weierstrass
