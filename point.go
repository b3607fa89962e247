package weierstrass

// Point describes a 2D coordinate pair. It is the capability shared with
// collaborating packages; this package's [CurvePoint] implements it, and
// consumers that only need coordinates can accept it instead of the
// concrete type.
type Point interface {
	X() float64
	Y() float64
}
