package integer

// ModPow returns base^exponent mod modulus for a non-negative exponent, with
// the result in [0, modulus). A modulus of 1 always yields 0.
//
// The loop branches on exponent bits and is not constant time.
func ModPow[T Integer[T]](base, exponent, modulus T) T {
	if modulus.Sign() <= 0 {
		panic("integer: non-positive modulus")
	}
	if exponent.Sign() < 0 {
		panic("integer: negative exponent")
	}
	one := One[T]()
	if modulus.Cmp(one) == 0 {
		return Zero[T]()
	}

	result := one
	base = base.Mod(modulus)
	for exponent.Sign() > 0 {
		if exponent.IsOdd() {
			result = result.Mul(base).Mod(modulus)
		}
		exponent = exponent.Rsh(1)
		if exponent.Sign() > 0 {
			base = base.Mul(base).Mod(modulus)
		}
	}
	return result
}
