package field

import (
	"fmt"

	"github.com/smallyu/go-weierstrass/pkg/integer"
)

// Field is a prime field, used as a factory for its elements.
type Field[T integer.Integer[T]] struct {
	prime T
}

// NewField returns the field of order prime. It panics if prime < 2.
func NewField[T integer.Integer[T]](prime T) Field[T] {
	if prime.Cmp(integer.FromInt64[T](2)) < 0 {
		panic(fmt.Sprintf("field: invalid prime %s", prime))
	}
	return Field[T]{prime: prime}
}

// Prime returns the order of f.
func (f Field[T]) Prime() T { return f.prime }

// Element returns num as an element of f.
func (f Field[T]) Element(num T) (Element[T], error) {
	return New(num, f.prime)
}

// Int64 returns v reduced into f. Unlike Element it accepts any v,
// including negative ones.
func (f Field[T]) Int64(v int64) Element[T] {
	return reduce(integer.FromInt64[T](v), f.prime)
}

// Reduce returns v mod prime as an element of f.
func (f Field[T]) Reduce(v T) Element[T] {
	return reduce(v, f.prime)
}

// Zero returns the additive identity of f.
func (f Field[T]) Zero() Element[T] {
	return Element[T]{num: integer.Zero[T](), prime: f.prime}
}

// One returns the multiplicative identity of f.
func (f Field[T]) One() Element[T] {
	return f.Int64(1)
}

// Contains reports whether e belongs to f.
func (f Field[T]) Contains(e Element[T]) bool {
	return e.prime.Cmp(f.prime) == 0
}
