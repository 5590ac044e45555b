package field

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-weierstrass/pkg/integer"
)

func fe(num, prime integer.Word) Element[integer.Word] {
	e, err := New(num, prime)
	if err != nil {
		panic(err)
	}
	return e
}

func TestNew(t *testing.T) {
	_, err := New[integer.Word](31, 31)
	assert.True(t, errors.Is(err, ErrNumberOutOfRange))

	_, err = New[integer.Word](-1, 31)
	assert.ErrorIs(t, err, ErrNumberOutOfRange)

	e, err := New[integer.Word](30, 31)
	require.NoError(t, err)
	assert.Equal(t, integer.Word(30), e.Num())
	assert.Equal(t, integer.Word(31), e.Prime())
}

func TestEqual(t *testing.T) {
	a := fe(2, 31)
	b := fe(2, 31)
	c := fe(15, 31)
	d := fe(2, 37)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.NotEqual(b))
	assert.True(t, a.NotEqual(c))
	assert.True(t, a.NotEqual(d))
}

func TestAdd(t *testing.T) {
	assert.Equal(t, fe(17, 31), fe(2, 31).Add(fe(15, 31)))
	assert.Equal(t, fe(7, 31), fe(17, 31).Add(fe(21, 31)))
}

func TestSub(t *testing.T) {
	assert.Equal(t, fe(25, 31), fe(29, 31).Sub(fe(4, 31)))
	assert.Equal(t, fe(16, 31), fe(15, 31).Sub(fe(30, 31)))
}

func TestMul(t *testing.T) {
	assert.Equal(t, fe(22, 31), fe(24, 31).Mul(fe(19, 31)))
	assert.Equal(t, fe(8, 31), fe(17, 31).MulInt64(-5))
}

func TestPow(t *testing.T) {
	assert.Equal(t, fe(15, 31), fe(17, 31).PowInt64(3))
	assert.Equal(t, fe(16, 31), fe(5, 31).PowInt64(5).Mul(fe(18, 31)))
	assert.Equal(t, fe(1, 31), fe(5, 31).PowInt64(0))
}

func TestDiv(t *testing.T) {
	assert.Equal(t, fe(4, 31), fe(3, 31).Div(fe(24, 31)))
	assert.Equal(t, fe(29, 31), fe(17, 31).PowInt64(-3))
	assert.Equal(t, fe(13, 31), fe(4, 31).PowInt64(-4).Mul(fe(11, 31)))
}

func TestPowZero(t *testing.T) {
	zero := fe(0, 31)
	assert.Equal(t, zero, zero.PowInt64(3))
	assert.Equal(t, fe(1, 31), zero.PowInt64(0))
	// Exponents reduce mod p-1 for zero as well.
	assert.Equal(t, fe(1, 31), zero.PowInt64(30))
	assert.Equal(t, zero, zero.PowInt64(-1))
	assert.Equal(t, zero, zero.PowInt64(-29))
	assert.Equal(t, fe(1, 31), zero.PowInt64(-30))
	assert.NotPanics(t, func() { zero.Pow(integer.FromInt64[integer.Word](-1000)) })
}

func TestPreconditions(t *testing.T) {
	a := fe(2, 31)
	b := fe(2, 37)

	assert.PanicsWithValue(t, "field: prime mismatch (31 != 37)", func() { a.Add(b) })
	assert.Panics(t, func() { a.Sub(b) })
	assert.Panics(t, func() { a.Mul(b) })
	assert.Panics(t, func() { a.Div(b) })
	assert.PanicsWithValue(t, "field: division by zero", func() { a.Div(fe(0, 31)) })
}

func TestImmutable(t *testing.T) {
	a := fe(20, 31)
	b := fe(15, 31)
	_ = a.Add(b).Mul(b).Sub(a).Div(b)
	assert.Equal(t, fe(20, 31), a)
	assert.Equal(t, fe(15, 31), b)
}

func TestString(t *testing.T) {
	assert.Equal(t, "FieldElement_31(17)", fe(17, 31).String())
}

func TestFieldAxioms(t *testing.T) {
	const p = 31
	for x := integer.Word(0); x < p; x++ {
		for y := integer.Word(0); y < p; y++ {
			a, b := fe(x, p), fe(y, p)

			for _, r := range []Element[integer.Word]{a.Add(b), a.Sub(b), a.Mul(b)} {
				assert.GreaterOrEqual(t, r.Num(), integer.Word(0))
				assert.Less(t, r.Num(), integer.Word(p))
			}
			assert.True(t, a.Add(b).Equal(b.Add(a)))
			assert.True(t, a.Mul(b).Equal(b.Mul(a)))
			assert.True(t, a.Sub(b).Add(b).Equal(a))

			if !b.IsZero() {
				q := a.Div(b)
				assert.Less(t, q.Num(), integer.Word(p))
				assert.True(t, q.Mul(b).Equal(a))
			}
		}

		a := fe(x, p)
		assert.True(t, a.Add(fe((p-x)%p, p)).IsZero())
		assert.True(t, a.Add(a.Neg()).IsZero())
		if !a.IsZero() {
			assert.Equal(t, fe(1, p), a.Mul(a.PowInt64(p-2)))
			assert.Equal(t, fe(1, p), a.Mul(a.Inverse()))
		}
	}
}

func TestAssociativity(t *testing.T) {
	const p = 223
	for _, v := range [][3]integer.Word{{1, 2, 3}, {192, 105, 17}, {222, 221, 220}, {0, 56, 141}} {
		a, b, c := fe(v[0], p), fe(v[1], p), fe(v[2], p)
		assert.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)))
		assert.Equal(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)))
		assert.Equal(t, a.Mul(b.Add(c)), a.Mul(b).Add(a.Mul(c)))
	}
}

func TestExponentReduction(t *testing.T) {
	const p = 31
	for x := integer.Word(0); x < p; x++ {
		a := fe(x, p)
		for e := int64(-70); e <= 70; e++ {
			r := ((e % (p - 1)) + (p - 1)) % (p - 1)
			assert.Equal(t, a.PowInt64(r), a.PowInt64(e), "%d^%d", x, e)
		}
	}
}

func TestBigBackend(t *testing.T) {
	p := integer.MustParseBig("0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	f := NewField(p)

	x, err := f.Element(integer.MustParseBig("0x79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"))
	require.NoError(t, err)

	assert.True(t, x.Mul(x.Inverse()).Equal(f.One()))
	assert.True(t, x.Div(x).Equal(f.One()))
	assert.True(t, x.Sub(x).Equal(f.Zero()))
	assert.True(t, x.Pow(integer.FromInt64[integer.Big](-1)).Equal(x.Inverse()))
	assert.True(t, f.Int64(7).Sub(f.Int64(8)).Equal(f.Reduce(p.Sub(integer.One[integer.Big]()))))

	_, err = f.Element(p)
	assert.ErrorIs(t, err, ErrNumberOutOfRange)
}

func TestNewField(t *testing.T) {
	assert.Panics(t, func() { NewField[integer.Word](1) })

	f := NewField[integer.Word](31)
	assert.Equal(t, fe(30, 31), f.Int64(-1))
	assert.True(t, f.Contains(fe(3, 31)))
	assert.False(t, f.Contains(fe(3, 37)))
	assert.Equal(t, integer.Word(31), f.Prime())
}
