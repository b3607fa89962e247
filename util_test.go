package weierstrass

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxEqual(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
}

// coordsEqual compares two points under the membership rounding, the
// package's own notion of coordinate equality.
func coordsEqual(p, q CurvePoint) bool {
	return roundCoord(p.X()) == roundCoord(q.X()) && roundCoord(p.Y()) == roundCoord(q.Y())
}

func mustCurve(t *testing.T, a1, a3, a2, a4, a6 float64) Curve {
	t.Helper()
	c, err := NewCurve(a1, a3, a2, a4, a6)
	require.NoError(t, err)
	return c
}

func mustPoint(t *testing.T, c Curve, x, y float64) CurvePoint {
	t.Helper()
	p, err := NewCurvePoint(c, x, y)
	require.NoError(t, err)
	return p
}
