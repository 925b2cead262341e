package edwards25519

// MontgomeryScalarMult returns the u coordinate of scalar*P on the
// Montgomery curve v^2 = u^3 + 486662u^2 + u, where P is the point with
// the given u coordinate. The scalar is clamped before use. Constant
// time.
//
// One ladder step per scalar bit maintains (U:Z) fractions for the pair
// kP, (k+1)P, swapping the pair according to the bit without branching.
func MontgomeryScalarMult(scalar, point *[32]byte) [32]byte {
	e := *scalar
	e[0] &= 248
	e[31] &= 127
	e[31] |= 64

	x1 := feFromBytes(point)
	x2, z2 := feOne, fieldElement{}
	x3, z3 := x1, feOne

	swap := int32(0)
	for pos := 254; pos >= 0; pos-- {
		b := int32(e[pos/8]>>uint(pos&7)) & 1
		swap ^= b
		x2, x3 = feSwap(x2, x3, swap)
		z2, z3 = feSwap(z2, z3, swap)
		swap = b

		tmp0 := x3.sub(z3)
		tmp1 := x2.sub(z2)
		x2 = x2.add(z2)
		z2 = x3.add(z3)
		z3 = tmp0.mul(x2)
		z2 = z2.mul(tmp1)
		tmp0 = tmp1.square()
		tmp1 = x2.square()
		x3 = z3.add(z2)
		z2 = z3.sub(z2)
		x2 = tmp1.mul(tmp0)
		tmp1 = tmp1.sub(tmp0)
		z2 = z2.square()
		z3 = tmp1.mul121666()
		x3 = x3.square()
		tmp0 = tmp0.add(z3)
		z3 = x1.mul(z2)
		z2 = tmp1.mul(tmp0)
	}

	x2, _ = feSwap(x2, x3, swap)
	z2, _ = feSwap(z2, z3, swap)

	return x2.mul(z2.invert()).bytes()
}

// MontgomeryUFromEdwardsY maps a point encoding on the Edwards curve to
// the u coordinate of the corresponding point on the Montgomery curve,
// u = (1+y)/(1-y). The sign bit of the encoding is ignored, as the map
// does not depend on x.
func MontgomeryUFromEdwardsY(s *[32]byte) [32]byte {
	y := feFromBytes(s)
	u := feOne.add(y).mul(feOne.sub(y).invert())
	return u.bytes()
}
