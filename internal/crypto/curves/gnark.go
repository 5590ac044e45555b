package curves

import (
	"math/big"

	fr377 "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
)

// gnarkElement is the method set shared by gnark-crypto's generated
// Montgomery field elements.
type gnarkElement[E any] interface {
	*E
	SetBigInt(v *big.Int) *E
	Add(x, y *E) *E
	Sub(x, y *E) *E
	Mul(x, y *E) *E
	Inverse(x *E) *E
	BigInt(res *big.Int) *big.Int
}

// gnarkField adapts a gnark-crypto field to FieldOracle.
type gnarkField[E any, P gnarkElement[E]] struct {
	name    string
	modulus *big.Int
}

// NewSecp256k1Fp returns the secp256k1 base field oracle.
func NewSecp256k1Fp() FieldOracle {
	return &gnarkField[fp.Element, *fp.Element]{name: "secp256k1/fp", modulus: fp.Modulus()}
}

// NewBLS12377Fr returns the BLS12-377 scalar field oracle.
func NewBLS12377Fr() FieldOracle {
	return &gnarkField[fr377.Element, *fr377.Element]{name: "bls12-377/fr", modulus: fr377.Modulus()}
}

func (g *gnarkField[E, P]) Name() string {
	return g.name
}

func (g *gnarkField[E, P]) Modulus() *big.Int {
	return new(big.Int).Set(g.modulus)
}

func (g *gnarkField[E, P]) binary(x, y *big.Int, op func(r, a, b P) *E) *big.Int {
	var a, b, r E
	P(&a).SetBigInt(x)
	P(&b).SetBigInt(y)
	op(P(&r), P(&a), P(&b))
	return P(&r).BigInt(new(big.Int))
}

func (g *gnarkField[E, P]) Add(x, y *big.Int) *big.Int {
	return g.binary(x, y, func(r, a, b P) *E { return r.Add(a, b) })
}

func (g *gnarkField[E, P]) Sub(x, y *big.Int) *big.Int {
	return g.binary(x, y, func(r, a, b P) *E { return r.Sub(a, b) })
}

func (g *gnarkField[E, P]) Mul(x, y *big.Int) *big.Int {
	return g.binary(x, y, func(r, a, b P) *E { return r.Mul(a, b) })
}

func (g *gnarkField[E, P]) Inverse(x *big.Int) *big.Int {
	var a, r E
	P(&a).SetBigInt(x)
	P(&r).Inverse(&a)
	return P(&r).BigInt(new(big.Int))
}
