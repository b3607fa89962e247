package weierstrass

import "fmt"

// Line is a non-vertical line in slope/intercept form,
//
//	Y = Gradient·X + Intercept.
//
// [CurvePoint.Tangent] returns tangent lines in this form. Vertical lines
// are not representable; operations that would need one fail with
// [ErrDivisionByZero] instead.
type Line struct {
	Gradient  float64
	Intercept float64
}

// Eval returns the ordinate of the line at x.
func (l Line) Eval(x float64) float64 {
	return l.Gradient*x + l.Intercept
}

func (l Line) String() string {
	if l.Intercept < 0 {
		return fmt.Sprintf("Y = %g·X - %g", l.Gradient, -l.Intercept)
	}
	return fmt.Sprintf("Y = %g·X + %g", l.Gradient, l.Intercept)
}
