package weierstrass

import (
	"errors"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func coeffGen() gopter.Gen {
	return gen.Float64Range(-5, 5)
}

func TestSolverMembershipRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("solved ordinates satisfy the curve equation", prop.ForAll(
		func(a1, a3, a2, a4, a6, x float64) bool {
			c, err := NewCurve(a1, a3, a2, a4, a6)
			if err != nil {
				return false
			}
			yMinus, yPlus, err := c.YFromX(x)
			if errors.Is(err, ErrNoRealImage) {
				// The curve has no real point at this abscissa.
				return true
			}
			if err != nil {
				return false
			}
			return c.Contains(x, yMinus) && c.Contains(x, yPlus)
		},
		coeffGen(), coeffGen(), coeffGen(), coeffGen(), coeffGen(),
		gen.Float64Range(-3, 3),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestAddCommutativeProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	// The abscissa generators keep the two points at least half a unit
	// apart, so the chord slope stays tame and the constructed sum stays
	// well inside the membership tolerance.
	properties.Property("chord addition is commutative", prop.ForAll(
		func(a1, a3, a2, a4, a6, x1, x2 float64) bool {
			c, err := NewCurve(a1, a3, a2, a4, a6)
			if err != nil {
				return false
			}
			y1, _, err := c.YFromX(x1)
			if err != nil {
				return true
			}
			_, y2, err := c.YFromX(x2)
			if err != nil {
				return true
			}
			p, err := NewCurvePoint(c, x1, y1)
			if err != nil {
				return false
			}
			q, err := NewCurvePoint(c, x2, y2)
			if err != nil {
				return false
			}
			pq, err1 := p.Add(q)
			qp, err2 := q.Add(p)
			if err1 != nil || err2 != nil {
				// Drift past the membership tolerance surfaces as
				// ErrPointNotOnCurve; right on the rounding boundary the two
				// directions may disagree about it.
				return errors.Is(err1, ErrPointNotOnCurve) || errors.Is(err2, ErrPointNotOnCurve)
			}
			return math.Abs(pq.X()-qp.X()) < 1e-6 && math.Abs(pq.Y()-qp.Y()) < 1e-6
		},
		gen.Float64Range(-2, 2), gen.Float64Range(-2, 2), gen.Float64Range(-3, 3),
		gen.Float64Range(-3, 3), gen.Float64Range(-3, 3),
		gen.Float64Range(-2, 0), gen.Float64Range(0.5, 2),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestAddSelfDoublesProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("adding a point to itself doubles it", prop.ForAll(
		func(a1, a3, a2, a4, a6, x float64) bool {
			c, err := NewCurve(a1, a3, a2, a4, a6)
			if err != nil {
				return false
			}
			y, _, err := c.YFromX(x)
			if err != nil {
				return true
			}
			p, err := NewCurvePoint(c, x, y)
			if err != nil {
				return false
			}
			sum, err1 := p.Add(p)
			dbl, err2 := p.Double()
			if err1 != nil || err2 != nil {
				return (err1 != nil) == (err2 != nil)
			}
			return sum.Equal(dbl)
		},
		coeffGen(), coeffGen(), coeffGen(), coeffGen(), coeffGen(),
		gen.Float64Range(-3, 3),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
