// Package field implements arithmetic modulo a prime over any integer backend.
//
// Elements are immutable values. Combining elements of different primes, or
// dividing by zero, is a programming error and panics; only construction
// from out-of-range input reports an error.
package field

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-weierstrass/pkg/integer"
)

// ErrNumberOutOfRange is returned when a residue is negative or not below the prime.
var ErrNumberOutOfRange = errors.New("field: number out of range")

// Element is a residue num in [0, prime).
// Primality of prime is a precondition and is not checked.
type Element[T integer.Integer[T]] struct {
	num   T
	prime T
}

// New returns the element num of the field of order prime.
func New[T integer.Integer[T]](num, prime T) (Element[T], error) {
	if num.Sign() < 0 || num.Cmp(prime) >= 0 {
		return Element[T]{}, fmt.Errorf("%w: %s not in [0, %s)", ErrNumberOutOfRange, num, prime)
	}
	return Element[T]{num: num, prime: prime}, nil
}

// reduce builds an element from an arbitrary integer, taking the
// non-negative remainder.
func reduce[T integer.Integer[T]](v, prime T) Element[T] {
	return Element[T]{num: v.Mod(prime), prime: prime}
}

// Num returns the residue.
func (e Element[T]) Num() T { return e.num }

// Prime returns the field order.
func (e Element[T]) Prime() T { return e.prime }

// IsZero reports whether e is the additive identity.
func (e Element[T]) IsZero() bool { return e.num.Sign() == 0 }

// SameField reports whether e and o share a prime.
func (e Element[T]) SameField(o Element[T]) bool {
	return e.prime.Cmp(o.prime) == 0
}

func (e Element[T]) mustMatch(o Element[T]) {
	if !e.SameField(o) {
		panic(fmt.Sprintf("field: prime mismatch (%s != %s)", e.prime, o.prime))
	}
}

// Equal reports whether e and o have the same residue and prime.
func (e Element[T]) Equal(o Element[T]) bool {
	return e.SameField(o) && e.num.Cmp(o.num) == 0
}

// NotEqual is !Equal.
func (e Element[T]) NotEqual(o Element[T]) bool {
	return !e.Equal(o)
}

// Add returns e + o.
func (e Element[T]) Add(o Element[T]) Element[T] {
	e.mustMatch(o)
	return reduce(e.num.Add(o.num), e.prime)
}

// Sub returns e - o.
func (e Element[T]) Sub(o Element[T]) Element[T] {
	e.mustMatch(o)
	return reduce(e.num.Sub(o.num), e.prime)
}

// Mul returns e * o.
func (e Element[T]) Mul(o Element[T]) Element[T] {
	e.mustMatch(o)
	return reduce(e.num.Mul(o.num), e.prime)
}

// MulInt64 returns k * e with k reduced into the field first.
func (e Element[T]) MulInt64(k int64) Element[T] {
	kk := integer.FromInt64[T](k).Mod(e.prime)
	return reduce(e.num.Mul(kk), e.prime)
}

// Neg returns -e.
func (e Element[T]) Neg() Element[T] {
	return reduce(e.num.Neg(), e.prime)
}

// Div returns e / o, computed as e * o^(p-2).
func (e Element[T]) Div(o Element[T]) Element[T] {
	e.mustMatch(o)
	return e.Mul(o.Inverse())
}

// Inverse returns e⁻¹ by Fermat's little theorem. Panics on zero.
func (e Element[T]) Inverse() Element[T] {
	if e.IsZero() {
		panic("field: division by zero")
	}
	two := integer.FromInt64[T](2)
	return Element[T]{num: integer.ModPow(e.num, e.prime.Sub(two), e.prime), prime: e.prime}
}

// Pow returns e^exponent. The exponent may be negative and is reduced
// modulo p-1 into a non-negative value before exponentiating, for every
// base including zero: 0^(p-1) = 0^0 = 1 and 0^-1 = 0^(p-2) = 0.
func (e Element[T]) Pow(exponent T) Element[T] {
	order := e.prime.Sub(integer.One[T]())
	n := exponent.Mod(order)
	return Element[T]{num: integer.ModPow(e.num, n, e.prime), prime: e.prime}
}

// PowInt64 is Pow with a machine-integer exponent.
func (e Element[T]) PowInt64(exponent int64) Element[T] {
	return e.Pow(integer.FromInt64[T](exponent))
}

func (e Element[T]) String() string {
	return fmt.Sprintf("FieldElement_%s(%s)", e.prime, e.num)
}
