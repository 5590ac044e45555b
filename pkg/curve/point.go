// Package curve implements the group law of short-Weierstrass curves
// y² = x³ + a·x + b over the prime fields of package field.
//
// Points are immutable. Adding points of different curves panics; building a
// finite point that does not satisfy the curve equation returns
// ErrPointNotOnCurve.
//
// Addition and scalar multiplication branch on their inputs and are not
// constant time. They must not be used directly with secret scalars.
package curve

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-weierstrass/pkg/field"
	"github.com/smallyu/go-weierstrass/pkg/integer"
)

// ErrPointNotOnCurve is returned when (x, y) does not satisfy the curve equation.
var ErrPointNotOnCurve = errors.New("curve: point not on curve")

// Point is either a finite point (x, y) of the curve (a, b) or the point
// at infinity of that curve. The zero value is not a valid point.
type Point[T integer.Integer[T]] struct {
	a, b   field.Element[T]
	x, y   field.Element[T]
	finite bool
}

// New returns the finite point (x, y) of the curve y² = x³ + a·x + b.
// All four elements must belong to one field.
func New[T integer.Integer[T]](x, y, a, b field.Element[T]) (Point[T], error) {
	mustShareField(a, b, x, y)
	if !onCurve(x, y, a, b) {
		return Point[T]{}, fmt.Errorf("%w: (%s, %s) on y^2 = x^3 + %sx + %s",
			ErrPointNotOnCurve, x.Num(), y.Num(), a.Num(), b.Num())
	}
	return Point[T]{a: a, b: b, x: x, y: y, finite: true}, nil
}

// Infinity returns the identity of the curve (a, b).
func Infinity[T integer.Integer[T]](a, b field.Element[T]) Point[T] {
	mustShareField(a, b)
	return Point[T]{a: a, b: b}
}

func mustShareField[T integer.Integer[T]](first field.Element[T], rest ...field.Element[T]) {
	for _, e := range rest {
		if !first.SameField(e) {
			panic(fmt.Sprintf("curve: elements of different fields (%s != %s)", first.Prime(), e.Prime()))
		}
	}
}

func onCurve[T integer.Integer[T]](x, y, a, b field.Element[T]) bool {
	lhs := y.Mul(y)
	rhs := x.Mul(x).Mul(x).Add(a.Mul(x)).Add(b)
	return lhs.Equal(rhs)
}

// IsInfinity reports whether p is the identity.
func (p Point[T]) IsInfinity() bool { return !p.finite }

// X returns the x coordinate; ok is false at infinity.
func (p Point[T]) X() (x field.Element[T], ok bool) { return p.x, p.finite }

// Y returns the y coordinate; ok is false at infinity.
func (p Point[T]) Y() (y field.Element[T], ok bool) { return p.y, p.finite }

// A returns the linear coefficient of the curve.
func (p Point[T]) A() field.Element[T] { return p.a }

// B returns the constant coefficient of the curve.
func (p Point[T]) B() field.Element[T] { return p.b }

// Curve returns the curve p lies on.
func (p Point[T]) Curve() Curve[T] { return Curve[T]{a: p.a, b: p.b} }

func (p Point[T]) sameCurve(o Point[T]) bool {
	return p.a.Equal(o.a) && p.b.Equal(o.b)
}

func (p Point[T]) mustMatch(o Point[T]) {
	if !p.sameCurve(o) {
		panic(fmt.Sprintf("curve: points on different curves (%s, %s)", p.Curve(), o.Curve()))
	}
}

// Equal reports whether p and o lie on the same curve and are both
// infinity or have identical coordinates.
func (p Point[T]) Equal(o Point[T]) bool {
	if !p.sameCurve(o) || p.finite != o.finite {
		return false
	}
	return !p.finite || (p.x.Equal(o.x) && p.y.Equal(o.y))
}

// NotEqual is !Equal.
func (p Point[T]) NotEqual(o Point[T]) bool {
	return !p.Equal(o)
}

// Neg returns -p, the reflection (x, -y).
func (p Point[T]) Neg() Point[T] {
	if !p.finite {
		return p
	}
	p.y = p.y.Neg()
	return p
}

// Add returns p + o under the chord-and-tangent law.
func (p Point[T]) Add(o Point[T]) Point[T] {
	p.mustMatch(o)

	if !p.finite {
		return o
	}
	if !o.finite {
		return p
	}

	// Vertical chord: o = -p.
	if p.x.Equal(o.x) && p.y.NotEqual(o.y) {
		return Infinity(p.a, p.b)
	}

	var slope field.Element[T]
	if p.x.Equal(o.x) {
		// p == o: tangent, vertical when y = 0.
		if p.y.IsZero() {
			return Infinity(p.a, p.b)
		}
		slope = p.x.Mul(p.x).MulInt64(3).Add(p.a).Div(p.y.MulInt64(2))
	} else {
		slope = o.y.Sub(p.y).Div(o.x.Sub(p.x))
	}

	x3 := slope.Mul(slope).Sub(p.x).Sub(o.x)
	y3 := slope.Mul(p.x.Sub(x3)).Sub(p.y)
	return Point[T]{a: p.a, b: p.b, x: x3, y: y3, finite: true}
}

// Double returns p + p.
func (p Point[T]) Double() Point[T] {
	return p.Add(p)
}

// ScalarMul returns k·p by double-and-add over the bits of k, lowest first.
// A negative k yields |k|·(-p).
func (p Point[T]) ScalarMul(k T) Point[T] {
	if k.Sign() < 0 {
		return p.Neg().ScalarMul(k.Neg())
	}

	result := Infinity(p.a, p.b)
	current := p
	for k.Sign() > 0 {
		if k.IsOdd() {
			result = result.Add(current)
		}
		current = current.Add(current)
		k = k.Rsh(1)
	}
	return result
}

// ScalarMulInt64 is ScalarMul with a machine-integer scalar.
func (p Point[T]) ScalarMulInt64(k int64) Point[T] {
	return p.ScalarMul(integer.FromInt64[T](k))
}

func (p Point[T]) String() string {
	if !p.finite {
		return fmt.Sprintf("Point(infinity)_%s_%s", p.a.Num(), p.b.Num())
	}
	return fmt.Sprintf("Point(%s, %s)_%s_%s", p.x.Num(), p.y.Num(), p.a.Num(), p.b.Num())
}
