// Package curves binds third-party field and curve implementations behind
// small interfaces so the generic arithmetic can be checked against them.
package curves

import (
	"crypto/elliptic"
	"crypto/rand"
	"math/big"
)

// FieldOracle performs arithmetic modulo a fixed prime using an independent
// implementation. Inputs must already be reduced; outputs are in [0, Modulus).
type FieldOracle interface {
	// Name identifies the field, e.g. "secp256k1/fp".
	Name() string

	// Modulus returns the prime.
	Modulus() *big.Int

	// Add returns x + y.
	Add(x, y *big.Int) *big.Int

	// Sub returns x - y.
	Sub(x, y *big.Int) *big.Int

	// Mul returns x * y.
	Mul(x, y *big.Int) *big.Int

	// Inverse returns x⁻¹. x must be non-zero.
	Inverse(x *big.Int) *big.Int
}

// GroupOracle performs point arithmetic on a named short-Weierstrass curve.
// The point at infinity is reported as (0, 0).
type GroupOracle interface {
	// Name identifies the curve.
	Name() string

	// Params returns the curve parameters (P, N, B, Gx, Gy).
	Params() *elliptic.CurveParams

	// ScalarBaseMult computes k * G.
	ScalarBaseMult(k *big.Int) (*big.Int, *big.Int)

	// ScalarMult computes k * P.
	ScalarMult(px, py, k *big.Int) (*big.Int, *big.Int)

	// Add combines two points.
	Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int)
}

// Fields returns every available field oracle.
func Fields() []FieldOracle {
	return []FieldOracle{
		NewSecp256k1Fp(),
		NewSecp256k1Fn(),
		NewBLS12377Fr(),
		NewEd25519Scalar(),
	}
}

// Groups returns every available group oracle.
func Groups() []GroupOracle {
	return []GroupOracle{NewSecp256k1()}
}

// RandomResidue returns a uniform value in [0, m).
func RandomResidue(m *big.Int) (*big.Int, error) {
	return rand.Int(rand.Reader, m)
}

// RandomNonZero returns a uniform value in [1, m).
func RandomNonZero(m *big.Int) (*big.Int, error) {
	k, err := rand.Int(rand.Reader, new(big.Int).Sub(m, big.NewInt(1)))
	if err != nil {
		return nil, err
	}
	return k.Add(k, big.NewInt(1)), nil
}
