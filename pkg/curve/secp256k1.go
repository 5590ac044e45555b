package curve

import (
	"github.com/smallyu/go-weierstrass/pkg/field"
	"github.com/smallyu/go-weierstrass/pkg/integer"
)

// secp256k1 domain parameters (SEC 2, section 2.4.1).
var (
	secp256k1P  = integer.MustParseBig("0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	secp256k1N  = integer.MustParseBig("0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	secp256k1Gx = integer.MustParseBig("0x79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	secp256k1Gy = integer.MustParseBig("0x483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")
)

// Secp256k1 returns the curve y² = x³ + 7 over the secp256k1 base field.
func Secp256k1() Curve[integer.Big] {
	f := field.NewField(secp256k1P)
	return NewCurve(f.Int64(0), f.Int64(7))
}

// Secp256k1Generator returns the standard base point G.
func Secp256k1Generator() Point[integer.Big] {
	c := Secp256k1()
	f := c.Field()
	g, err := c.Point(f.Reduce(secp256k1Gx), f.Reduce(secp256k1Gy))
	if err != nil {
		panic(err)
	}
	return g
}

// Secp256k1Order returns n, the order of G.
func Secp256k1Order() integer.Big {
	return secp256k1N
}
