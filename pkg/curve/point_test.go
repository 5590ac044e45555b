package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-weierstrass/pkg/field"
	"github.com/smallyu/go-weierstrass/pkg/integer"
)

const prime = 223

var (
	f223 = field.NewField[integer.Word](prime)
	c223 = NewCurve(f223.Int64(0), f223.Int64(7))
)

func pt(t *testing.T, x, y int64) Point[integer.Word] {
	t.Helper()
	p, err := c223.PointInt64(x, y)
	require.NoError(t, err)
	return p
}

// allPoints enumerates the finite points of y² = x³ + 7 over F_223.
func allPoints(t *testing.T) []Point[integer.Word] {
	var points []Point[integer.Word]
	for x := int64(0); x < prime; x++ {
		for y := int64(0); y < prime; y++ {
			if c223.Contains(f223.Int64(x), f223.Int64(y)) {
				points = append(points, pt(t, x, y))
			}
		}
	}
	return points
}

func TestNew(t *testing.T) {
	valid := [][2]int64{{192, 105}, {17, 56}, {1, 193}}
	invalid := [][2]int64{{200, 119}, {42, 99}, {192, 106}}

	for _, v := range valid {
		_, err := c223.PointInt64(v[0], v[1])
		assert.NoError(t, err, "(%d, %d)", v[0], v[1])
	}
	for _, v := range invalid {
		_, err := c223.PointInt64(v[0], v[1])
		assert.ErrorIs(t, err, ErrPointNotOnCurve, "(%d, %d)", v[0], v[1])
	}
}

func TestNewMixedFields(t *testing.T) {
	f31 := field.NewField[integer.Word](31)
	assert.Panics(t, func() {
		_, _ = New(f31.Int64(1), f223.Int64(1), f223.Int64(0), f223.Int64(7))
	})
	assert.Panics(t, func() { Infinity(f31.Int64(0), f223.Int64(7)) })
	assert.Panics(t, func() { NewCurve(f31.Int64(0), f223.Int64(7)) })
}

func TestEqual(t *testing.T) {
	a := pt(t, 192, 105)
	b := pt(t, 17, 56)
	other := NewCurve(f223.Int64(0), f223.Int64(5)).Infinity()

	assert.True(t, a.Equal(a))
	assert.True(t, a.NotEqual(b))
	assert.True(t, c223.Infinity().Equal(c223.Infinity()))
	assert.False(t, c223.Infinity().Equal(other))
	assert.False(t, a.Equal(c223.Infinity()))
}

func TestAdd(t *testing.T) {
	tests := []struct {
		x1, y1, x2, y2, x3, y3 int64
	}{
		{192, 105, 17, 56, 170, 142},
		{47, 71, 117, 141, 60, 139},
		{143, 98, 76, 66, 47, 71},
	}
	for _, tt := range tests {
		got := pt(t, tt.x1, tt.y1).Add(pt(t, tt.x2, tt.y2))
		assert.Equal(t, pt(t, tt.x3, tt.y3), got)
	}
}

func TestAddIdentity(t *testing.T) {
	inf := c223.Infinity()
	for _, p := range allPoints(t) {
		assert.Equal(t, p, p.Add(inf))
		assert.Equal(t, p, inf.Add(p))
	}
	assert.True(t, inf.Add(inf).IsInfinity())
}

func TestAddInverse(t *testing.T) {
	for _, p := range allPoints(t) {
		x, _ := p.X()
		y, _ := p.Y()

		neg, err := c223.Point(x, y.Neg())
		require.NoError(t, err)
		assert.Equal(t, neg, p.Neg())
		assert.True(t, p.Add(neg).IsInfinity(), "%s", p)
	}
}

func TestDoubleVerticalTangent(t *testing.T) {
	for _, x := range []int64{6, 11, 206} {
		p := pt(t, x, 0)
		assert.True(t, p.Double().IsInfinity())
		assert.True(t, p.ScalarMulInt64(2).IsInfinity())
	}
}

func TestDouble(t *testing.T) {
	assert.Equal(t, pt(t, 49, 71), pt(t, 192, 105).Double())
	assert.Equal(t, pt(t, 64, 168), pt(t, 143, 98).Double())
	assert.Equal(t, pt(t, 36, 111), pt(t, 47, 71).Double())
}

func TestGroupLaws(t *testing.T) {
	points := allPoints(t)
	// A stride keeps the triple loop small while still covering the group.
	for i := 0; i < len(points); i += 7 {
		for j := 0; j < len(points); j += 11 {
			p, q := points[i], points[j]
			sum := p.Add(q)

			x, ok := sum.X()
			if ok {
				y, _ := sum.Y()
				assert.True(t, c223.Contains(x, y), "%s + %s off curve", p, q)
			}
			assert.Equal(t, sum, q.Add(p))

			for k := 0; k < len(points); k += 37 {
				r := points[k]
				assert.Equal(t, sum.Add(r), p.Add(q.Add(r)), "(%s + %s) + %s", p, q, r)
			}
		}
	}
}

func TestScalarMul(t *testing.T) {
	g := pt(t, 47, 71)

	assert.True(t, g.ScalarMulInt64(0).IsInfinity())
	assert.Equal(t, g, g.ScalarMulInt64(1))
	assert.Equal(t, g.Add(g), g.ScalarMulInt64(2))
	assert.Equal(t, g.ScalarMulInt64(2).Add(g), g.ScalarMulInt64(3))
	assert.Equal(t, pt(t, 194, 51), g.ScalarMulInt64(4))
	assert.Equal(t, pt(t, 116, 55), g.ScalarMulInt64(8))
	assert.Equal(t, pt(t, 154, 150), g.ScalarMulInt64(10))
	assert.Equal(t, pt(t, 47, 152), g.ScalarMulInt64(20))
	assert.True(t, g.ScalarMulInt64(21).IsInfinity())
	assert.Equal(t, g, g.ScalarMulInt64(22))

	assert.True(t, pt(t, 15, 86).ScalarMulInt64(7).IsInfinity())
	assert.True(t, c223.Infinity().ScalarMulInt64(5).IsInfinity())
}

func TestScalarMulMatchesRepeatedAddition(t *testing.T) {
	for _, p := range allPoints(t)[:20] {
		acc := c223.Infinity()
		for k := int64(0); k < 30; k++ {
			assert.Equal(t, acc, p.ScalarMulInt64(k), "%d * %s", k, p)
			acc = acc.Add(p)
		}
	}
}

func TestScalarMulNegative(t *testing.T) {
	g := pt(t, 47, 71)
	assert.Equal(t, g.Neg(), g.ScalarMulInt64(-1))
	assert.Equal(t, g.ScalarMulInt64(20), g.ScalarMulInt64(-1))
	assert.Equal(t, g.ScalarMulInt64(3).Neg(), g.ScalarMulInt64(-3))
}

func TestDifferentCurvesPanic(t *testing.T) {
	other := NewCurve(f223.Int64(0), f223.Int64(5))
	p := pt(t, 192, 105)
	assert.Panics(t, func() { p.Add(other.Infinity()) })
	assert.Panics(t, func() { other.Infinity().Add(p) })
}

func TestAccessors(t *testing.T) {
	p := pt(t, 192, 105)
	x, ok := p.X()
	assert.True(t, ok)
	assert.Equal(t, f223.Int64(192), x)
	y, ok := p.Y()
	assert.True(t, ok)
	assert.Equal(t, f223.Int64(105), y)
	assert.Equal(t, f223.Int64(0), p.A())
	assert.Equal(t, f223.Int64(7), p.B())
	assert.True(t, p.Curve().Equal(c223))

	_, ok = c223.Infinity().X()
	assert.False(t, ok)
	_, ok = c223.Infinity().Y()
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Point(192, 105)_0_7", pt(t, 192, 105).String())
	assert.Equal(t, "Point(infinity)_0_7", c223.Infinity().String())
	assert.Equal(t, "y^2 = x^3 + 0x + 7 mod 223", c223.String())
}

func TestImmutable(t *testing.T) {
	p := pt(t, 192, 105)
	q := pt(t, 17, 56)
	_ = p.Add(q).Double().Neg().ScalarMulInt64(5)
	assert.Equal(t, pt(t, 192, 105), p)
	assert.Equal(t, pt(t, 17, 56), q)
}
