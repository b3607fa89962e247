package weierstrass

import (
	"fmt"

	"github.com/DanielArian/elliptic-curves-in-real-set/logger"
)

// A CurvePoint is a coordinate pair bound to a [Curve]. Construction is the
// sole validation gate: every CurvePoint that exists satisfies its curve's
// equation within the membership tolerance. CurvePoints are immutable; all
// operations return new, independently re-validated points.
type CurvePoint struct {
	curve Curve
	x, y  float64
}

var _ Point = CurvePoint{}

// NewCurvePoint returns the point (x, y) bound to curve. It fails with
// [ErrPointNotOnCurve] when (x, y) does not satisfy the curve equation
// within the membership tolerance.
func NewCurvePoint(curve Curve, x, y float64) (CurvePoint, error) {
	if !curve.Contains(x, y) {
		return CurvePoint{}, fmt.Errorf("%w: (%g, %g) on %v", ErrPointNotOnCurve, x, y, curve)
	}
	return CurvePoint{curve: curve, x: x, y: y}, nil
}

func (p CurvePoint) X() float64 { return p.x }
func (p CurvePoint) Y() float64 { return p.y }

// Curve returns the curve the point is bound to.
func (p CurvePoint) Curve() Curve {
	return p.curve
}

func (p CurvePoint) String() string {
	return fmt.Sprintf("(%g, %g)", p.x, p.y)
}

// Equal reports whether both points have the same coordinates and lie on
// the same curve. Curves are compared coefficient-wise, so points on
// separately constructed but identical curves compare equal.
func (p CurvePoint) Equal(o CurvePoint) bool {
	return p.x == o.x && p.y == o.y && p.curve.Equal(o.curve)
}

// Tangent returns the tangent line at p, obtained by implicit
// differentiation of the curve equation. It fails with [ErrDivisionByZero]
// when the tangent is vertical, i.e. 2y + a1·x + a3 = 0.
func (p CurvePoint) Tangent() (Line, error) {
	c := p.curve
	den := 2*p.y + c.a1*p.x + c.a3
	if den == 0 {
		return Line{}, fmt.Errorf("%w: vertical tangent at %v", ErrDivisionByZero, p)
	}
	g := (3*p.x*p.x + 2*c.a2*p.x - c.a1*p.y + c.a4) / den
	return Line{Gradient: g, Intercept: -g*p.x + p.y}, nil
}

// Add returns the chord construction p + o: the chord through p and o meets
// the curve in a third point, which is reflected to give the sum. A
// coincident addend routes to [CurvePoint.Double], since the chord
// degenerates to the tangent there. Add fails with [ErrCurveMismatch] when
// o is bound to a different curve, with [ErrDivisionByZero] when the chord
// is vertical (equal abscissas, distinct points), and with
// [ErrPointNotOnCurve] when the floating-point drift of the construction
// exceeds the membership tolerance.
func (p CurvePoint) Add(o CurvePoint) (CurvePoint, error) {
	if !p.curve.Equal(o.curve) {
		return CurvePoint{}, fmt.Errorf("%w: %v vs %v", ErrCurveMismatch, p.curve, o.curve)
	}
	if p.Equal(o) {
		log := logger.Logger()
		log.Debug().Stringer("point", p).Msg("coincident addends, doubling instead")
		return p.Double()
	}
	if p.x == o.x {
		return CurvePoint{}, fmt.Errorf("%w: vertical chord at x = %g", ErrDivisionByZero, p.x)
	}
	c := p.curve
	g := (o.y - p.y) / (o.x - p.x)
	x3 := g*g + c.a1*g - c.a2 - p.x - o.x
	y3 := -c.a1*x3 - c.a3 - g*x3 + g*p.x - p.y
	return NewCurvePoint(c, x3, y3)
}

// Double returns the tangent construction 2p: the tangent at p meets the
// curve in one further point, which is reflected to give the double. It
// propagates [ErrDivisionByZero] from [CurvePoint.Tangent] unchanged, and
// the result is re-validated like any other point.
func (p CurvePoint) Double() (CurvePoint, error) {
	tan, err := p.Tangent()
	if err != nil {
		return CurvePoint{}, err
	}
	c := p.curve
	g := tan.Gradient
	x3 := g*g + c.a1*g - c.a2 - 2*p.x
	y3 := -c.a1*x3 - c.a3 - g*x3 + g*p.x - p.y
	return NewCurvePoint(c, x3, y3)
}

// Neg returns the reflection of p: the second intersection of the vertical
// line through p with the curve, at ordinate −y − a1·x − a3.
func (p CurvePoint) Neg() (CurvePoint, error) {
	c := p.curve
	return NewCurvePoint(c, p.x, -p.y-c.a1*p.x-c.a3)
}
