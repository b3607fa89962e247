package weierstrass

import (
	"fmt"
	"math"
)

// MembershipEpsilon biases a value away from zero before membership
// rounding to counter float64 representation error: a value that is
// mathematically on a rounding boundary but stored just inside it still
// rounds away from zero.
const MembershipEpsilon = 0x1p-52

// membershipScale fixes the membership tolerance at two decimal digits.
const membershipScale = 100

// roundCoord rounds half away from zero to two decimal digits, biased by
// MembershipEpsilon. Both sides of the curve equation go through this
// before they are compared.
func roundCoord(v float64) float64 {
	return math.Round((v+math.Copysign(MembershipEpsilon, v))*membershipScale) / membershipScale
}

// A Curve is a cubic curve in general Weierstrass form over the reals:
//
//	Y² + a1·XY + a3·Y = X³ + a2·X² + a4·X + a6
//
// Curves are immutable; the zero value is the (singular) curve Y² = X³.
// Degenerate and singular curves are accepted, see [Curve.IsSingular].
type Curve struct {
	a1, a3, a2, a4, a6 float64
}

// NewCurve returns the curve with the given coefficients. Every coefficient
// must be a finite real number; otherwise NewCurve fails with
// [ErrInvalidCoefficient].
func NewCurve(a1, a3, a2, a4, a6 float64) (Curve, error) {
	for _, c := range [...]struct {
		name  string
		value float64
	}{
		{"a1", a1}, {"a3", a3}, {"a2", a2}, {"a4", a4}, {"a6", a6},
	} {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return Curve{}, fmt.Errorf("%w: %s = %v", ErrInvalidCoefficient, c.name, c.value)
		}
	}
	return Curve{a1: a1, a3: a3, a2: a2, a4: a4, a6: a6}, nil
}

func (c Curve) A1() float64 { return c.a1 }
func (c Curve) A3() float64 { return c.a3 }
func (c Curve) A2() float64 { return c.a2 }
func (c Curve) A4() float64 { return c.a4 }
func (c Curve) A6() float64 { return c.a6 }

// Equal reports whether both curves have the same coefficients. This is the
// curve-sameness relation used by [CurvePoint.Equal] and [CurvePoint.Add].
func (c Curve) Equal(o Curve) bool {
	return c == o
}

// lhs evaluates Y² + a1·XY + a3·Y.
func (c Curve) lhs(x, y float64) float64 {
	return y*y + c.a1*x*y + c.a3*y
}

// rhs evaluates X³ + a2·X² + a4·X + a6.
func (c Curve) rhs(x float64) float64 {
	return x*x*x + c.a2*x*x + c.a4*x + c.a6
}

// Contains reports whether (x, y) satisfies the curve equation within the
// two-decimal membership tolerance. Non-finite coordinates are never
// members.
func (c Curve) Contains(x, y float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return false
	}
	return roundCoord(c.lhs(x, y)) == roundCoord(c.rhs(x))
}

// YFromX solves the curve equation for the ordinates at the abscissa x,
// i.e. the quadratic Y² + (a1·x + a3)·Y − (x³ + a2·x² + a4·x + a6) = 0.
// The "−" root is returned first. YFromX fails with [ErrInvalidAbscissa]
// when x is not a finite real, and with [ErrNoRealImage] when the
// discriminant is negative and the curve has no real point at x.
func (c Curve) YFromX(x float64) (yMinus, yPlus float64, err error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, 0, fmt.Errorf("%w: x = %v", ErrInvalidAbscissa, x)
	}
	b := c.a1*x + c.a3
	disc := b*b + 4*c.rhs(x)
	if disc < 0 {
		return 0, 0, fmt.Errorf("%w: discriminant %g at x = %g", ErrNoRealImage, disc, x)
	}
	root := math.Sqrt(disc)
	return (-b - root) / 2, (-b + root) / 2, nil
}

// Discriminant returns the discriminant of the curve,
//
//	Δ = −b2²·b8 − 8·b4³ − 27·b6² + 9·b2·b4·b6
//
// with the usual b-invariants of the Weierstrass form. The curve is smooth
// iff Δ ≠ 0. The discriminant is advisory; construction never rejects
// singular curves.
func (c Curve) Discriminant() float64 {
	b2 := c.a1*c.a1 + 4*c.a2
	b4 := 2*c.a4 + c.a1*c.a3
	b6 := c.a3*c.a3 + 4*c.a6
	b8 := c.a1*c.a1*c.a6 + 4*c.a2*c.a6 - c.a1*c.a3*c.a4 + c.a2*c.a3*c.a3 - c.a4*c.a4
	return -b2*b2*b8 - 8*b4*b4*b4 - 27*b6*b6 + 9*b2*b4*b6
}

// IsSingular reports whether the discriminant vanishes, in which case the
// curve has a cusp or node and the group law degenerates there.
func (c Curve) IsSingular() bool {
	return c.Discriminant() == 0
}

func (c Curve) String() string {
	return fmt.Sprintf("Y² + %g·XY + %g·Y = X³ + %g·X² + %g·X + %g",
		c.a1, c.a3, c.a2, c.a4, c.a6)
}
