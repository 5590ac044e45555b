package curves

import (
	"crypto/elliptic"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Secp256k1 is the decred implementation of the secp256k1 group.
type Secp256k1 struct{}

// NewSecp256k1 returns the secp256k1 group oracle.
func NewSecp256k1() GroupOracle {
	return &Secp256k1{}
}

func (c *Secp256k1) Name() string {
	return "secp256k1"
}

func (c *Secp256k1) Params() *elliptic.CurveParams {
	return secp256k1.S256().Params()
}

func (c *Secp256k1) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	return secp256k1.S256().ScalarBaseMult(k.Bytes())
}

func (c *Secp256k1) ScalarMult(px, py, k *big.Int) (*big.Int, *big.Int) {
	return secp256k1.S256().ScalarMult(px, py, k.Bytes())
}

func (c *Secp256k1) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	return secp256k1.S256().Add(x1, y1, x2, y2)
}

// Secp256k1Fn is arithmetic modulo the secp256k1 group order, backed by
// decred's ModNScalar.
type Secp256k1Fn struct{}

// NewSecp256k1Fn returns the scalar field oracle of secp256k1.
func NewSecp256k1Fn() FieldOracle {
	return &Secp256k1Fn{}
}

func (s *Secp256k1Fn) Name() string {
	return "secp256k1/fn"
}

func (s *Secp256k1Fn) Modulus() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().N)
}

func toModN(x *big.Int) *secp256k1.ModNScalar {
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(x.Bytes()); overflow {
		panic("secp256k1/fn: value not reduced")
	}
	return &s
}

func fromModN(s *secp256k1.ModNScalar) *big.Int {
	b := s.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func (s *Secp256k1Fn) Add(x, y *big.Int) *big.Int {
	var r secp256k1.ModNScalar
	return fromModN(r.Add2(toModN(x), toModN(y)))
}

func (s *Secp256k1Fn) Sub(x, y *big.Int) *big.Int {
	var neg, r secp256k1.ModNScalar
	neg.NegateVal(toModN(y))
	return fromModN(r.Add2(toModN(x), &neg))
}

func (s *Secp256k1Fn) Mul(x, y *big.Int) *big.Int {
	var r secp256k1.ModNScalar
	return fromModN(r.Mul2(toModN(x), toModN(y)))
}

func (s *Secp256k1Fn) Inverse(x *big.Int) *big.Int {
	var r secp256k1.ModNScalar
	return fromModN(r.InverseValNonConst(toModN(x)))
}
