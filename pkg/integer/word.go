package integer

import (
	"math"
	"math/big"
	"strconv"
)

// Word is a fixed-width backend on int64, for small demonstration fields.
// Field residues must stay below 2³¹ so products fit; Add, Sub, Mul and Neg
// panic instead of wrapping.
type Word int64

func (x Word) Add(y Word) Word {
	r := x + y
	if (x > 0 && y > 0 && r < 0) || (x < 0 && y < 0 && r >= 0) {
		panic("integer: word overflow in add")
	}
	return r
}

func (x Word) Sub(y Word) Word {
	r := x - y
	if (x >= 0 && y < 0 && r < 0) || (x < 0 && y > 0 && r >= 0) {
		panic("integer: word overflow in sub")
	}
	return r
}

func (x Word) Mul(y Word) Word {
	if x == 0 || y == 0 {
		return 0
	}
	r := x * y
	if r/y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		panic("integer: word overflow in mul")
	}
	return r
}

func (x Word) Neg() Word {
	if x == math.MinInt64 {
		panic("integer: word overflow in neg")
	}
	return -x
}

func (x Word) DivMod(y Word) (Word, Word) {
	if y == 0 {
		panic("integer: division by zero")
	}
	q, m := x/y, x%y
	// Go truncates toward zero; shift to the Euclidean convention.
	if m < 0 {
		if y > 0 {
			q--
			m += y
		} else {
			q++
			m -= y
		}
	}
	return q, m
}

func (x Word) Mod(y Word) Word {
	_, m := x.DivMod(y)
	return m
}

func (x Word) Cmp(y Word) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func (x Word) Sign() int {
	return x.Cmp(0)
}

func (x Word) IsOdd() bool {
	return x&1 == 1
}

func (x Word) Rsh(n uint) Word {
	return x >> n
}

func (Word) SetInt64(v int64) Word {
	return Word(v)
}

func (x Word) BigInt() *big.Int {
	return big.NewInt(int64(x))
}

func (x Word) String() string {
	return strconv.FormatInt(int64(x), 10)
}
