// Package integer defines the integer capability the field and curve layers
// are generic over, with a fixed-width and an arbitrary-precision backend.
package integer

import (
	"math/big"
)

// Integer is the arithmetic a field backend has to supply.
// Implementations are values: every method returns a new T and leaves the
// receiver and arguments untouched.
type Integer[T any] interface {
	// Add returns x + y.
	Add(y T) T

	// Sub returns x - y.
	Sub(y T) T

	// Mul returns x * y.
	Mul(y T) T

	// Neg returns -x.
	Neg() T

	// DivMod returns the Euclidean quotient and remainder of x / y.
	// The remainder is always in [0, |y|). Panics if y is zero.
	DivMod(y T) (T, T)

	// Mod returns the Euclidean remainder of x / y.
	Mod(y T) T

	// Cmp returns -1, 0 or +1 depending on whether x < y, x == y or x > y.
	Cmp(y T) int

	// Sign returns -1, 0 or +1 depending on the sign of x.
	Sign() int

	// IsOdd reports whether the lowest bit of |x| is set.
	IsOdd() bool

	// Rsh returns x >> n (arithmetic shift).
	Rsh(n uint) T

	// SetInt64 returns v as a T. The receiver is ignored.
	SetInt64(v int64) T

	// BigInt returns the value as a newly allocated big.Int.
	BigInt() *big.Int

	// String returns the decimal representation.
	String() string
}

// FromInt64 constructs a T holding v.
func FromInt64[T Integer[T]](v int64) T {
	var x T
	return x.SetInt64(v)
}

// Zero constructs a T holding 0.
func Zero[T Integer[T]]() T {
	return FromInt64[T](0)
}

// One constructs a T holding 1.
func One[T Integer[T]]() T {
	return FromInt64[T](1)
}

// IsZero reports whether x == 0.
func IsZero[T Integer[T]](x T) bool {
	return x.Sign() == 0
}

// Equal reports whether x == y.
func Equal[T Integer[T]](x, y T) bool {
	return x.Cmp(y) == 0
}
