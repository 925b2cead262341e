// Package edwards25519 implements the arithmetic underlying Ed25519 and
// X25519: the prime field GF(2^255-19), the twisted Edwards curve
// -x^2 + y^2 = 1 + d*x^2*y^2 over it, scalar arithmetic modulo the group
// order, and the Montgomery ladder on the birationally equivalent curve.
//
// The algorithms follow the public domain "ref10" implementation from
// SUPERCOP, reworked into value semantics: every operation returns a new
// value and never mutates an operand, so values can be shared freely
// between goroutines.
package edwards25519

// fieldElement is an integer modulo 2^255 - 19. An element t represents
// the integer t[0] + t[1]*2^26 + t[2]*2^51 + t[3]*2^77 + t[4]*2^102 + ...
// + t[9]*2^230. Limbs stay small enough between operations that any
// following operation fits its int64 accumulators; only bytes produces the
// canonical representative.
type fieldElement [10]int32

// Curve constants as field elements: the equation parameter
// d = -121665/121666, its double, and a square root of -1.
var (
	feD = fieldElement{
		-10913610, 13857413, -15372611, 6949391, 114729,
		-8787816, -6275908, -3247719, -18696448, -12055116,
	}
	feD2 = fieldElement{
		-21827239, -5839606, -30745221, 13898782, 229458,
		15978800, -12551817, -6495438, 29715968, 9444199,
	}
	feSqrtM1 = fieldElement{
		-32595792, -7943725, 9377950, 3500415, 12389472,
		-272473, -25146209, -2005654, 326686, 11406482,
	}
	feOne = fieldElement{1}
)

func load3(in []byte) int64 {
	r := int64(in[0])
	r |= int64(in[1]) << 8
	r |= int64(in[2]) << 16
	return r
}

func load4(in []byte) int64 {
	r := int64(in[0])
	r |= int64(in[1]) << 8
	r |= int64(in[2]) << 16
	r |= int64(in[3]) << 24
	return r
}

// feFromBytes decodes a little-endian 32-byte buffer. The top bit of the
// last byte is ignored, and values in [p, 2^255) are accepted without
// reduction; bytes undoes both. Callers that need canonical input check it
// themselves.
func feFromBytes(src *[32]byte) fieldElement {
	h0 := load4(src[0:])
	h1 := load3(src[4:]) << 6
	h2 := load3(src[7:]) << 5
	h3 := load3(src[10:]) << 3
	h4 := load3(src[13:]) << 2
	h5 := load4(src[16:])
	h6 := load3(src[20:]) << 7
	h7 := load3(src[23:]) << 5
	h8 := load3(src[26:]) << 4
	h9 := (load3(src[29:]) & 8388607) << 2

	return feCombine(h0, h1, h2, h3, h4, h5, h6, h7, h8, h9)
}

// bytes returns the canonical little-endian encoding, fully reducing the
// value into [0, p) first.
//
// The reduction computes q = floor(h/p) from the limbs alone:
// q = floor(2^-255 * (h + 19*2^-25*h9 + 2^-1)), then outputs h - q*p by
// adding 19q and rippling carries so 2^255 falls off the top.
func (f fieldElement) bytes() [32]byte {
	h := f

	q := (19*h[9] + (1 << 24)) >> 25
	q = (h[0] + q) >> 26
	q = (h[1] + q) >> 25
	q = (h[2] + q) >> 26
	q = (h[3] + q) >> 25
	q = (h[4] + q) >> 26
	q = (h[5] + q) >> 25
	q = (h[6] + q) >> 26
	q = (h[7] + q) >> 25
	q = (h[8] + q) >> 26
	q = (h[9] + q) >> 25

	h[0] += 19 * q

	var carry int32
	carry = h[0] >> 26
	h[1] += carry
	h[0] -= carry << 26
	carry = h[1] >> 25
	h[2] += carry
	h[1] -= carry << 25
	carry = h[2] >> 26
	h[3] += carry
	h[2] -= carry << 26
	carry = h[3] >> 25
	h[4] += carry
	h[3] -= carry << 25
	carry = h[4] >> 26
	h[5] += carry
	h[4] -= carry << 26
	carry = h[5] >> 25
	h[6] += carry
	h[5] -= carry << 25
	carry = h[6] >> 26
	h[7] += carry
	h[6] -= carry << 26
	carry = h[7] >> 25
	h[8] += carry
	h[7] -= carry << 25
	carry = h[8] >> 26
	h[9] += carry
	h[8] -= carry << 26
	carry = h[9] >> 25
	h[9] -= carry << 25

	var s [32]byte
	s[0] = byte(h[0] >> 0)
	s[1] = byte(h[0] >> 8)
	s[2] = byte(h[0] >> 16)
	s[3] = byte((h[0] >> 24) | (h[1] << 2))
	s[4] = byte(h[1] >> 6)
	s[5] = byte(h[1] >> 14)
	s[6] = byte((h[1] >> 22) | (h[2] << 3))
	s[7] = byte(h[2] >> 5)
	s[8] = byte(h[2] >> 13)
	s[9] = byte((h[2] >> 21) | (h[3] << 5))
	s[10] = byte(h[3] >> 3)
	s[11] = byte(h[3] >> 11)
	s[12] = byte((h[3] >> 19) | (h[4] << 6))
	s[13] = byte(h[4] >> 2)
	s[14] = byte(h[4] >> 10)
	s[15] = byte(h[4] >> 18)
	s[16] = byte(h[5] >> 0)
	s[17] = byte(h[5] >> 8)
	s[18] = byte(h[5] >> 16)
	s[19] = byte((h[5] >> 24) | (h[6] << 1))
	s[20] = byte(h[6] >> 7)
	s[21] = byte(h[6] >> 15)
	s[22] = byte((h[6] >> 23) | (h[7] << 3))
	s[23] = byte(h[7] >> 5)
	s[24] = byte(h[7] >> 13)
	s[25] = byte((h[7] >> 21) | (h[8] << 4))
	s[26] = byte(h[8] >> 4)
	s[27] = byte(h[8] >> 12)
	s[28] = byte((h[8] >> 20) | (h[9] << 6))
	s[29] = byte(h[9] >> 2)
	s[30] = byte(h[9] >> 10)
	s[31] = byte(h[9] >> 18)
	return s
}

// add returns f + g.
func (f fieldElement) add(g fieldElement) fieldElement {
	var h fieldElement
	for i := range h {
		h[i] = f[i] + g[i]
	}
	return h
}

// sub returns f - g.
func (f fieldElement) sub(g fieldElement) fieldElement {
	var h fieldElement
	for i := range h {
		h[i] = f[i] - g[i]
	}
	return h
}

// neg returns -f.
func (f fieldElement) neg() fieldElement {
	var h fieldElement
	for i := range h {
		h[i] = -f[i]
	}
	return h
}

// feCombine reduces the wide int64 coefficients of a product to limb form,
// carrying across all limbs with the final 2^255 = 19 wrap folded back
// into h0.
func feCombine(h0, h1, h2, h3, h4, h5, h6, h7, h8, h9 int64) fieldElement {
	var c0, c1, c2, c3, c4, c5, c6, c7, c8, c9 int64

	c0 = (h0 + (1 << 25)) >> 26
	h1 += c0
	h0 -= c0 << 26
	c4 = (h4 + (1 << 25)) >> 26
	h5 += c4
	h4 -= c4 << 26

	c1 = (h1 + (1 << 24)) >> 25
	h2 += c1
	h1 -= c1 << 25
	c5 = (h5 + (1 << 24)) >> 25
	h6 += c5
	h5 -= c5 << 25

	c2 = (h2 + (1 << 25)) >> 26
	h3 += c2
	h2 -= c2 << 26
	c6 = (h6 + (1 << 25)) >> 26
	h7 += c6
	h6 -= c6 << 26

	c3 = (h3 + (1 << 24)) >> 25
	h4 += c3
	h3 -= c3 << 25
	c7 = (h7 + (1 << 24)) >> 25
	h8 += c7
	h7 -= c7 << 25

	c4 = (h4 + (1 << 25)) >> 26
	h5 += c4
	h4 -= c4 << 26
	c8 = (h8 + (1 << 25)) >> 26
	h9 += c8
	h8 -= c8 << 26

	c9 = (h9 + (1 << 24)) >> 25
	h0 += c9 * 19
	h9 -= c9 << 25

	c0 = (h0 + (1 << 25)) >> 26
	h1 += c0
	h0 -= c0 << 26

	return fieldElement{
		int32(h0), int32(h1), int32(h2), int32(h3), int32(h4),
		int32(h5), int32(h6), int32(h7), int32(h8), int32(h9),
	}
}

// mul returns f * g.
//
// Schoolbook multiplication over the ten-limb representation. Products
// that spill past 2^255 re-enter at the bottom multiplied by 19; cross
// terms between two odd-position limbs pick up a factor of 2 from the
// mixed 26/25-bit radix.
func (f fieldElement) mul(g fieldElement) fieldElement {
	f0 := int64(f[0])
	f1 := int64(f[1])
	f2 := int64(f[2])
	f3 := int64(f[3])
	f4 := int64(f[4])
	f5 := int64(f[5])
	f6 := int64(f[6])
	f7 := int64(f[7])
	f8 := int64(f[8])
	f9 := int64(f[9])

	f1_2 := int64(2 * f[1])
	f3_2 := int64(2 * f[3])
	f5_2 := int64(2 * f[5])
	f7_2 := int64(2 * f[7])
	f9_2 := int64(2 * f[9])

	g0 := int64(g[0])
	g1 := int64(g[1])
	g2 := int64(g[2])
	g3 := int64(g[3])
	g4 := int64(g[4])
	g5 := int64(g[5])
	g6 := int64(g[6])
	g7 := int64(g[7])
	g8 := int64(g[8])
	g9 := int64(g[9])

	g1_19 := int64(19 * g[1])
	g2_19 := int64(19 * g[2])
	g3_19 := int64(19 * g[3])
	g4_19 := int64(19 * g[4])
	g5_19 := int64(19 * g[5])
	g6_19 := int64(19 * g[6])
	g7_19 := int64(19 * g[7])
	g8_19 := int64(19 * g[8])
	g9_19 := int64(19 * g[9])

	h0 := f0*g0 + f1_2*g9_19 + f2*g8_19 + f3_2*g7_19 + f4*g6_19 + f5_2*g5_19 + f6*g4_19 + f7_2*g3_19 + f8*g2_19 + f9_2*g1_19
	h1 := f0*g1 + f1*g0 + f2*g9_19 + f3*g8_19 + f4*g7_19 + f5*g6_19 + f6*g5_19 + f7*g4_19 + f8*g3_19 + f9*g2_19
	h2 := f0*g2 + f1_2*g1 + f2*g0 + f3_2*g9_19 + f4*g8_19 + f5_2*g7_19 + f6*g6_19 + f7_2*g5_19 + f8*g4_19 + f9_2*g3_19
	h3 := f0*g3 + f1*g2 + f2*g1 + f3*g0 + f4*g9_19 + f5*g8_19 + f6*g7_19 + f7*g6_19 + f8*g5_19 + f9*g4_19
	h4 := f0*g4 + f1_2*g3 + f2*g2 + f3_2*g1 + f4*g0 + f5_2*g9_19 + f6*g8_19 + f7_2*g7_19 + f8*g6_19 + f9_2*g5_19
	h5 := f0*g5 + f1*g4 + f2*g3 + f3*g2 + f4*g1 + f5*g0 + f6*g9_19 + f7*g8_19 + f8*g7_19 + f9*g6_19
	h6 := f0*g6 + f1_2*g5 + f2*g4 + f3_2*g3 + f4*g2 + f5_2*g1 + f6*g0 + f7_2*g9_19 + f8*g8_19 + f9_2*g7_19
	h7 := f0*g7 + f1*g6 + f2*g5 + f3*g4 + f4*g3 + f5*g2 + f6*g1 + f7*g0 + f8*g9_19 + f9*g8_19
	h8 := f0*g8 + f1_2*g7 + f2*g6 + f3_2*g5 + f4*g4 + f5_2*g3 + f6*g2 + f7_2*g1 + f8*g0 + f9_2*g9_19
	h9 := f0*g9 + f1*g8 + f2*g7 + f3*g6 + f4*g5 + f5*g4 + f6*g3 + f7*g2 + f8*g1 + f9*g0

	return feCombine(h0, h1, h2, h3, h4, h5, h6, h7, h8, h9)
}

func (f fieldElement) squareWide() (h0, h1, h2, h3, h4, h5, h6, h7, h8, h9 int64) {
	f0 := int64(f[0])
	f1 := int64(f[1])
	f2 := int64(f[2])
	f3 := int64(f[3])
	f4 := int64(f[4])
	f5 := int64(f[5])
	f6 := int64(f[6])
	f7 := int64(f[7])
	f8 := int64(f[8])
	f9 := int64(f[9])
	f0_2 := int64(2 * f[0])
	f1_2 := int64(2 * f[1])
	f2_2 := int64(2 * f[2])
	f3_2 := int64(2 * f[3])
	f4_2 := int64(2 * f[4])
	f5_2 := int64(2 * f[5])
	f6_2 := int64(2 * f[6])
	f7_2 := int64(2 * f[7])
	f5_38 := 38 * f5
	f6_19 := 19 * f6
	f7_38 := 38 * f7
	f8_19 := 19 * f8
	f9_38 := 38 * f9

	h0 = f0*f0 + f1_2*f9_38 + f2_2*f8_19 + f3_2*f7_38 + f4_2*f6_19 + f5*f5_38
	h1 = f0_2*f1 + f2*f9_38 + f3_2*f8_19 + f4*f7_38 + f5_2*f6_19
	h2 = f0_2*f2 + f1_2*f1 + f3_2*f9_38 + f4_2*f8_19 + f5_2*f7_38 + f6*f6_19
	h3 = f0_2*f3 + f1_2*f2 + f4*f9_38 + f5_2*f8_19 + f6*f7_38
	h4 = f0_2*f4 + f1_2*f3_2 + f2*f2 + f5_2*f9_38 + f6_2*f8_19 + f7*f7_38
	h5 = f0_2*f5 + f1_2*f4 + f2_2*f3 + f6*f9_38 + f7_2*f8_19
	h6 = f0_2*f6 + f1_2*f5_2 + f2_2*f4 + f3_2*f3 + f7_2*f9_38 + f8*f8_19
	h7 = f0_2*f7 + f1_2*f6 + f2_2*f5 + f3_2*f4 + f8*f9_38
	h8 = f0_2*f8 + f1_2*f7_2 + f2_2*f6 + f3_2*f5_2 + f4*f4 + f9*f9_38
	h9 = f0_2*f9 + f1_2*f8 + f2_2*f7 + f3_2*f6 + f4_2*f5

	return
}

// square returns f * f.
func (f fieldElement) square() fieldElement {
	return feCombine(f.squareWide())
}

// square2 returns 2 * f * f.
func (f fieldElement) square2() fieldElement {
	h0, h1, h2, h3, h4, h5, h6, h7, h8, h9 := f.squareWide()
	h0 += h0
	h1 += h1
	h2 += h2
	h3 += h3
	h4 += h4
	h5 += h5
	h6 += h6
	h7 += h7
	h8 += h8
	h9 += h9
	return feCombine(h0, h1, h2, h3, h4, h5, h6, h7, h8, h9)
}

// mul121666 returns f * 121666, the (A+2)/4 constant of the Montgomery
// curve used by the ladder.
func (f fieldElement) mul121666() fieldElement {
	var h [10]int64
	for i := range f {
		h[i] = int64(f[i]) * 121666
	}
	return feCombine(h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7], h[8], h[9])
}

// invert returns f^-1 = f^(p-2), computed with the fixed chain of 254
// squarings and 11 multiplications, so the operation count never depends
// on the value. invert(0) returns 0.
func (f fieldElement) invert() fieldElement {
	z2 := f.square()	// 2
	t := z2.square()	// 4
	t = t.square()		// 8
	z9 := t.mul(f)		// 9
	z11 := z9.mul(z2)	// 11
	t = z11.square()	// 22
	z2_5_0 := t.mul(z9)	// 2^5 - 2^0

	t = z2_5_0.square() // 2^6 - 2^1
	for i := 0; i < 4; i++ {
		t = t.square() // 2^10 - 2^5
	}
	z2_10_0 := t.mul(z2_5_0) // 2^10 - 2^0

	t = z2_10_0.square() // 2^11 - 2^1
	for i := 0; i < 9; i++ {
		t = t.square() // 2^20 - 2^10
	}
	z2_20_0 := t.mul(z2_10_0) // 2^20 - 2^0

	t = z2_20_0.square() // 2^21 - 2^1
	for i := 0; i < 19; i++ {
		t = t.square() // 2^40 - 2^20
	}
	t = t.mul(z2_20_0) // 2^40 - 2^0

	t = t.square() // 2^41 - 2^1
	for i := 0; i < 9; i++ {
		t = t.square() // 2^50 - 2^10
	}
	z2_50_0 := t.mul(z2_10_0) // 2^50 - 2^0

	t = z2_50_0.square() // 2^51 - 2^1
	for i := 0; i < 49; i++ {
		t = t.square() // 2^100 - 2^50
	}
	z2_100_0 := t.mul(z2_50_0) // 2^100 - 2^0

	t = z2_100_0.square() // 2^101 - 2^1
	for i := 0; i < 99; i++ {
		t = t.square() // 2^200 - 2^100
	}
	t = t.mul(z2_100_0) // 2^200 - 2^0

	t = t.square() // 2^201 - 2^1
	for i := 0; i < 49; i++ {
		t = t.square() // 2^250 - 2^50
	}
	t = t.mul(z2_50_0) // 2^250 - 2^0

	t = t.square()	// 2^251 - 2^1
	t = t.square()	// 2^252 - 2^2
	t = t.square()	// 2^253 - 2^3
	t = t.square()	// 2^254 - 2^4
	t = t.square()	// 2^255 - 2^5

	return t.mul(z11) // 2^255 - 21
}

// pow22523 returns f^((p-5)/8), the exponentiation used to take square
// roots during point decoding.
func (f fieldElement) pow22523() fieldElement {
	t0 := f.square()	// 2
	t1 := t0.square()	// 4
	t1 = t1.square()	// 8
	t1 = f.mul(t1)		// 9
	t0 = t0.mul(t1)		// 11
	t0 = t0.square()	// 22
	t0 = t1.mul(t0)		// 2^5 - 2^0

	t1 = t0.square() // 2^6 - 2^1
	for i := 0; i < 4; i++ {
		t1 = t1.square() // 2^10 - 2^5
	}
	t0 = t1.mul(t0) // 2^10 - 2^0

	t1 = t0.square() // 2^11 - 2^1
	for i := 0; i < 9; i++ {
		t1 = t1.square() // 2^20 - 2^10
	}
	t1 = t1.mul(t0) // 2^20 - 2^0

	t2 := t1.square() // 2^21 - 2^1
	for i := 0; i < 19; i++ {
		t2 = t2.square() // 2^40 - 2^20
	}
	t1 = t2.mul(t1) // 2^40 - 2^0

	t1 = t1.square() // 2^41 - 2^1
	for i := 0; i < 9; i++ {
		t1 = t1.square() // 2^50 - 2^10
	}
	t0 = t1.mul(t0) // 2^50 - 2^0

	t1 = t0.square() // 2^51 - 2^1
	for i := 0; i < 49; i++ {
		t1 = t1.square() // 2^100 - 2^50
	}
	t1 = t1.mul(t0) // 2^100 - 2^0

	t2 = t1.square() // 2^101 - 2^1
	for i := 0; i < 99; i++ {
		t2 = t2.square() // 2^200 - 2^100
	}
	t1 = t2.mul(t1) // 2^200 - 2^0

	t1 = t1.square() // 2^201 - 2^1
	for i := 0; i < 49; i++ {
		t1 = t1.square() // 2^250 - 2^50
	}
	t0 = t1.mul(t0) // 2^250 - 2^0

	t0 = t0.square()	// 2^251 - 2^1
	t0 = t0.square()	// 2^252 - 2^2

	return t0.mul(f) // 2^252 - 3
}

// isNegative returns 1 if f's canonical encoding has its low bit set, the
// curve's convention for the "sign" of a coordinate.
func (f fieldElement) isNegative() byte {
	s := f.bytes()
	return s[0] & 1
}

// isNonZero returns 1 if f != 0 and 0 otherwise, comparing the canonical
// encoding against zero bytewise.
func (f fieldElement) isNonZero() int32 {
	s := f.bytes()
	var x byte
	for _, b := range s {
		x |= b
	}
	x |= x >> 4
	x |= x >> 2
	x |= x >> 1
	return int32(x & 1)
}

// feSelect returns a if cond == 1 and b if cond == 0, without branching on
// cond. cond must be 0 or 1.
func feSelect(a, b fieldElement, cond int32) fieldElement {
	m := -cond
	var h fieldElement
	for i := range h {
		h[i] = b[i] ^ (m & (a[i] ^ b[i]))
	}
	return h
}

// feSwap returns (g, f) if swap == 1 and (f, g) if swap == 0, without
// branching on swap. swap must be 0 or 1.
func feSwap(f, g fieldElement, swap int32) (fieldElement, fieldElement) {
	m := -swap
	for i := range f {
		t := m & (f[i] ^ g[i])
		f[i] ^= t
		g[i] ^= t
	}
	return f, g
}
