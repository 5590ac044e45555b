package curve

import (
	"fmt"

	"github.com/smallyu/go-weierstrass/pkg/field"
	"github.com/smallyu/go-weierstrass/pkg/integer"
)

// Curve is the curve y² = x³ + a·x + b, used as a factory for its points.
type Curve[T integer.Integer[T]] struct {
	a, b field.Element[T]
}

// NewCurve returns the curve with coefficients a and b. It panics if they
// belong to different fields.
func NewCurve[T integer.Integer[T]](a, b field.Element[T]) Curve[T] {
	mustShareField(a, b)
	return Curve[T]{a: a, b: b}
}

// A returns the linear coefficient.
func (c Curve[T]) A() field.Element[T] { return c.a }

// B returns the constant coefficient.
func (c Curve[T]) B() field.Element[T] { return c.b }

// Field returns the field the curve is defined over.
func (c Curve[T]) Field() field.Field[T] { return field.NewField(c.a.Prime()) }

// Equal reports whether c and o have the same coefficients.
func (c Curve[T]) Equal(o Curve[T]) bool {
	return c.a.Equal(o.a) && c.b.Equal(o.b)
}

// Point returns the finite point (x, y) of c.
func (c Curve[T]) Point(x, y field.Element[T]) (Point[T], error) {
	return New(x, y, c.a, c.b)
}

// PointInt64 is Point with machine-integer coordinates, reduced into the field.
func (c Curve[T]) PointInt64(x, y int64) (Point[T], error) {
	f := c.Field()
	return New(f.Int64(x), f.Int64(y), c.a, c.b)
}

// Infinity returns the identity of c.
func (c Curve[T]) Infinity() Point[T] {
	return Infinity(c.a, c.b)
}

// Contains reports whether (x, y) satisfies the equation of c.
func (c Curve[T]) Contains(x, y field.Element[T]) bool {
	if !c.a.SameField(x) || !c.a.SameField(y) {
		return false
	}
	return onCurve(x, y, c.a, c.b)
}

func (c Curve[T]) String() string {
	return fmt.Sprintf("y^2 = x^3 + %sx + %s mod %s", c.a.Num(), c.b.Num(), c.a.Prime())
}
