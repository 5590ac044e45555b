package curves

import (
	"math/big"

	"filippo.io/edwards25519"
)

// Ed25519Scalar is arithmetic modulo the ed25519 group order
// l = 2^252 + 27742317777372353535851937790883648493.
type Ed25519Scalar struct{}

// NewEd25519Scalar returns the ed25519 scalar field oracle.
func NewEd25519Scalar() FieldOracle {
	return &Ed25519Scalar{}
}

func (c *Ed25519Scalar) Name() string {
	return "ed25519/scalar"
}

func (c *Ed25519Scalar) Modulus() *big.Int {
	l, _ := new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)
	return l
}

// edwards25519 scalars are little-endian, big.Int bytes are big-endian.
func toScalar(n *big.Int) *edwards25519.Scalar {
	var buf [32]byte
	n.FillBytes(buf[:])
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(buf[:])
	if err != nil {
		panic("ed25519/scalar: " + err.Error())
	}
	return s
}

func fromScalar(s *edwards25519.Scalar) *big.Int {
	b := s.Bytes()
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return new(big.Int).SetBytes(b)
}

func (c *Ed25519Scalar) Add(x, y *big.Int) *big.Int {
	return fromScalar(edwards25519.NewScalar().Add(toScalar(x), toScalar(y)))
}

func (c *Ed25519Scalar) Sub(x, y *big.Int) *big.Int {
	return fromScalar(edwards25519.NewScalar().Subtract(toScalar(x), toScalar(y)))
}

func (c *Ed25519Scalar) Mul(x, y *big.Int) *big.Int {
	return fromScalar(edwards25519.NewScalar().Multiply(toScalar(x), toScalar(y)))
}

func (c *Ed25519Scalar) Inverse(x *big.Int) *big.Int {
	return fromScalar(edwards25519.NewScalar().Invert(toScalar(x)))
}
