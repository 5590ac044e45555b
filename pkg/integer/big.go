package integer

import (
	"fmt"
	"math/big"
	"strings"
)

// Big is an immutable arbitrary-precision integer. The zero value is 0.
type Big struct {
	v *big.Int
}

// NewBig returns a Big holding a copy of v. A nil v is treated as 0.
func NewBig(v *big.Int) Big {
	if v == nil {
		return Big{}
	}
	return Big{v: new(big.Int).Set(v)}
}

// ParseBig parses s as a decimal or 0x-prefixed hexadecimal integer with an
// optional leading minus sign. Other prefixes and digit separators are
// rejected.
func ParseBig(s string) (Big, error) {
	digits, neg := strings.CutPrefix(s, "-")
	base := 10
	if rest, ok := strings.CutPrefix(digits, "0x"); ok {
		digits, base = rest, 16
	} else if rest, ok := strings.CutPrefix(digits, "0X"); ok {
		digits, base = rest, 16
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok || strings.ContainsAny(digits, "+-") {
		return Big{}, fmt.Errorf("integer: cannot parse %q", s)
	}
	if neg {
		v.Neg(v)
	}
	return Big{v: v}, nil
}

// MustParseBig is like ParseBig but panics on malformed input.
// It is meant for package-level constants.
func MustParseBig(s string) Big {
	b, err := ParseBig(s)
	if err != nil {
		panic(err)
	}
	return b
}

func (x Big) int() *big.Int {
	if x.v == nil {
		return new(big.Int)
	}
	return x.v
}

func (x Big) Add(y Big) Big {
	return Big{v: new(big.Int).Add(x.int(), y.int())}
}

func (x Big) Sub(y Big) Big {
	return Big{v: new(big.Int).Sub(x.int(), y.int())}
}

func (x Big) Mul(y Big) Big {
	return Big{v: new(big.Int).Mul(x.int(), y.int())}
}

func (x Big) Neg() Big {
	return Big{v: new(big.Int).Neg(x.int())}
}

func (x Big) DivMod(y Big) (Big, Big) {
	if y.Sign() == 0 {
		panic("integer: division by zero")
	}
	q, m := new(big.Int).DivMod(x.int(), y.int(), new(big.Int))
	return Big{v: q}, Big{v: m}
}

func (x Big) Mod(y Big) Big {
	_, m := x.DivMod(y)
	return m
}

func (x Big) Cmp(y Big) int {
	return x.int().Cmp(y.int())
}

func (x Big) Sign() int {
	return x.int().Sign()
}

func (x Big) IsOdd() bool {
	return x.int().Bit(0) == 1
}

func (x Big) Rsh(n uint) Big {
	return Big{v: new(big.Int).Rsh(x.int(), n)}
}

func (Big) SetInt64(v int64) Big {
	return Big{v: big.NewInt(v)}
}

func (x Big) BigInt() *big.Int {
	return new(big.Int).Set(x.int())
}

func (x Big) String() string {
	return x.int().String()
}

// Text returns the representation of x in the given base.
func (x Big) Text(base int) string {
	return x.int().Text(base)
}
