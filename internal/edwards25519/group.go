package edwards25519

// The group arithmetic switches between point representations to save
// field operations, following the extended coordinates of Hisil, Wong,
// Carter and Dawson. ProjectivePoint is (X:Y:Z) with x = X/Z, y = Y/Z.
// ExtendedPoint carries the extra coordinate T with X*Y = Z*T, which the
// addition formulas consume. completedPoint is the ((X:Z), (Y:T)) output
// of an addition or doubling before renormalization, and cachedPoint and
// precomputedPoint hold the derived values (Y+X, Y-X, Z, 2dT) and
// (y+x, y-x, 2dxy) that let repeated additions of the same point skip
// work. precomputedPoint requires Z = 1 and is the form stored in the
// generator tables.

// ProjectivePoint is a group element in projective coordinates.
type ProjectivePoint struct {
	x, y, z fieldElement
}

// ExtendedPoint is a group element in extended coordinates.
type ExtendedPoint struct {
	x, y, z, t fieldElement
}

type completedPoint struct {
	x, y, z, t fieldElement
}

type precomputedPoint struct {
	yPlusX, yMinusX, xy2d fieldElement
}

type cachedPoint struct {
	yPlusX, yMinusX, z, t2d fieldElement
}

func projectiveIdentity() ProjectivePoint {
	return ProjectivePoint{y: feOne, z: feOne}
}

func extendedIdentity() ExtendedPoint {
	return ExtendedPoint{y: feOne, z: feOne}
}

func (p ProjectivePoint) double() completedPoint {
	xx := p.x.square()
	yy := p.y.square()
	zz2 := p.z.square2()
	xPlusYSq := p.x.add(p.y).square()

	yPlus := yy.add(xx)
	yMinus := yy.sub(xx)
	return completedPoint{
		x: xPlusYSq.sub(yPlus),
		y: yPlus,
		z: yMinus,
		t: zz2.sub(yMinus),
	}
}

func (p ExtendedPoint) double() completedPoint {
	return p.toProjective().double()
}

func (p ExtendedPoint) neg() ExtendedPoint {
	return ExtendedPoint{x: p.x.neg(), y: p.y, z: p.z, t: p.t.neg()}
}

func (p ExtendedPoint) toProjective() ProjectivePoint {
	return ProjectivePoint{x: p.x, y: p.y, z: p.z}
}

func (p ExtendedPoint) toCached() cachedPoint {
	return cachedPoint{
		yPlusX:  p.y.add(p.x),
		yMinusX: p.y.sub(p.x),
		z:       p.z,
		t2d:     p.t.mul(feD2),
	}
}

// toPrecomputed normalizes p to Z = 1, so it costs a field inversion.
// Only the table construction uses it.
func (p ExtendedPoint) toPrecomputed() precomputedPoint {
	invZ := p.z.invert()
	x := p.x.mul(invZ)
	y := p.y.mul(invZ)
	return precomputedPoint{
		yPlusX:  y.add(x),
		yMinusX: y.sub(x),
		xy2d:    x.mul(y).mul(feD2),
	}
}

func (p completedPoint) toProjective() ProjectivePoint {
	return ProjectivePoint{
		x: p.x.mul(p.t),
		y: p.y.mul(p.z),
		z: p.z.mul(p.t),
	}
}

func (p completedPoint) toExtended() ExtendedPoint {
	return ExtendedPoint{
		x: p.x.mul(p.t),
		y: p.y.mul(p.z),
		z: p.z.mul(p.t),
		t: p.x.mul(p.y),
	}
}

func (p ExtendedPoint) addCached(q cachedPoint) completedPoint {
	pp := p.y.add(p.x).mul(q.yPlusX)
	mm := p.y.sub(p.x).mul(q.yMinusX)
	tt2d := q.t2d.mul(p.t)
	zz := p.z.mul(q.z)
	zz2 := zz.add(zz)

	return completedPoint{
		x: pp.sub(mm),
		y: pp.add(mm),
		z: zz2.add(tt2d),
		t: zz2.sub(tt2d),
	}
}

func (p ExtendedPoint) subCached(q cachedPoint) completedPoint {
	pp := p.y.add(p.x).mul(q.yMinusX)
	mm := p.y.sub(p.x).mul(q.yPlusX)
	tt2d := q.t2d.mul(p.t)
	zz := p.z.mul(q.z)
	zz2 := zz.add(zz)

	return completedPoint{
		x: pp.sub(mm),
		y: pp.add(mm),
		z: zz2.sub(tt2d),
		t: zz2.add(tt2d),
	}
}

func (p ExtendedPoint) addPrecomputed(q precomputedPoint) completedPoint {
	pp := p.y.add(p.x).mul(q.yPlusX)
	mm := p.y.sub(p.x).mul(q.yMinusX)
	txy2d := q.xy2d.mul(p.t)
	z2 := p.z.add(p.z)

	return completedPoint{
		x: pp.sub(mm),
		y: pp.add(mm),
		z: z2.add(txy2d),
		t: z2.sub(txy2d),
	}
}

func (p ExtendedPoint) subPrecomputed(q precomputedPoint) completedPoint {
	pp := p.y.add(p.x).mul(q.yMinusX)
	mm := p.y.sub(p.x).mul(q.yPlusX)
	txy2d := q.xy2d.mul(p.t)
	z2 := p.z.add(p.z)

	return completedPoint{
		x: pp.sub(mm),
		y: pp.add(mm),
		z: z2.sub(txy2d),
		t: z2.add(txy2d),
	}
}

// Bytes returns the 32-byte encoding of p: the y coordinate in little
// endian, with the sign of the x coordinate stored in the top bit.
func (p ProjectivePoint) Bytes() [32]byte {
	recip := p.z.invert()
	x := p.x.mul(recip)
	y := p.y.mul(recip)

	s := y.bytes()
	s[31] ^= x.isNegative() << 7
	return s
}

// Bytes returns the 32-byte encoding of p.
func (p ExtendedPoint) Bytes() [32]byte {
	recip := p.z.invert()
	x := p.x.mul(recip)
	y := p.y.mul(recip)

	s := y.bytes()
	s[31] ^= x.isNegative() << 7
	return s
}

// ExtendedFromBytesNegateVartime decodes a point encoding and returns the
// negative of the encoded point. It reports failure if the y coordinate
// is not canonically reduced or if x^2 = (y^2-1)/(dy^2+1) has no root in
// the field. Not constant time; callers pass only public data.
func ExtendedFromBytesNegateVartime(s *[32]byte) (ExtendedPoint, bool) {
	y := feFromBytes(s)

	// A value of y at or above the field order would decode to the same
	// element as a smaller one; reject by round-tripping the encoding.
	canonical := y.bytes()
	canonical[31] |= s[31] & 0x80
	if canonical != *s {
		return ExtendedPoint{}, false
	}

	u := y.square()
	v := u.mul(feD)
	u = u.sub(feOne) // y^2 - 1
	v = v.add(feOne) // dy^2 + 1

	// Compute the candidate root x = (u/v)^((p+3)/8) as uv^3(uv^7)^((p-5)/8).
	v3 := v.square().mul(v)
	x := v3.square().mul(v).mul(u)
	x = x.pow22523()
	x = x.mul(v3).mul(u)

	vxx := x.square().mul(v)
	if vxx.sub(u).isNonZero() == 1 {
		if vxx.add(u).isNonZero() == 1 {
			return ExtendedPoint{}, false
		}
		x = x.mul(feSqrtM1)
	}

	if x.isNegative() == s[31]>>7 {
		x = x.neg()
	}

	return ExtendedPoint{x: x, y: y, z: feOne, t: x.mul(y)}, true
}

// slide recodes a little-endian scalar into 256 signed digits in
// {0, ±1, ±3, ..., ±15}, at most one nonzero in any window of five, so a
// double-and-add loop over the digits can index a table of small odd
// multiples.
func slide(a *[32]byte) [256]int8 {
	var r [256]int8
	for i := range r {
		r[i] = int8(1 & (a[i>>3] >> uint(i&7)))
	}

	for i := range r {
		if r[i] == 0 {
			continue
		}
		for b := 1; b <= 6 && i+b < 256; b++ {
			if r[i+b] == 0 {
				continue
			}
			if r[i]+(r[i+b]<<uint(b)) <= 15 {
				r[i] += r[i+b] << uint(b)
				r[i+b] = 0
			} else if r[i]-(r[i+b]<<uint(b)) >= -15 {
				r[i] -= r[i+b] << uint(b)
				for k := i + b; k < 256; k++ {
					if r[k] == 0 {
						r[k] = 1
						break
					}
					r[k] = 0
				}
			} else {
				break
			}
		}
	}
	return r
}

// DoubleScalarMultVartime returns a*A + b*B, where B is the group
// generator. Runtime depends on the inputs, so this is suitable only for
// operations over public values, such as signature verification.
func DoubleScalarMultVartime(a *[32]byte, pointA ExtendedPoint, b *[32]byte) ProjectivePoint {
	aSlide := slide(a)
	bSlide := slide(b)

	// Odd multiples A, 3A, 5A, ..., 15A.
	var multA [8]cachedPoint
	multA[0] = pointA.toCached()
	a2 := pointA.double().toExtended()
	for i := 0; i < 7; i++ {
		multA[i+1] = a2.addCached(multA[i]).toExtended().toCached()
	}

	multB := &basepointTables().bi

	i := 255
	for ; i >= 0; i-- {
		if aSlide[i] != 0 || bSlide[i] != 0 {
			break
		}
	}

	r := projectiveIdentity()
	for ; i >= 0; i-- {
		t := r.double()

		if aSlide[i] > 0 {
			t = t.toExtended().addCached(multA[aSlide[i]/2])
		} else if aSlide[i] < 0 {
			t = t.toExtended().subCached(multA[(-aSlide[i])/2])
		}

		if bSlide[i] > 0 {
			t = t.toExtended().addPrecomputed(multB[bSlide[i]/2])
		} else if bSlide[i] < 0 {
			t = t.toExtended().subPrecomputed(multB[(-bSlide[i])/2])
		}

		r = t.toProjective()
	}
	return r
}

// equal returns 1 if b == c and 0 otherwise, without branching.
func equal(b, c int32) int32 {
	x := uint32(b ^ c)
	x--
	return int32(x >> 31)
}

// negative returns 1 if b < 0 and 0 otherwise.
func negative(b int32) int32 {
	return (b >> 31) & 1
}

func (p precomputedPoint) cMove(q precomputedPoint, b int32) precomputedPoint {
	return precomputedPoint{
		yPlusX:  feSelect(q.yPlusX, p.yPlusX, b),
		yMinusX: feSelect(q.yMinusX, p.yMinusX, b),
		xy2d:    feSelect(q.xy2d, p.xy2d, b),
	}
}

// selectPoint returns the multiple |b| from a table row in constant time,
// negated when b is negative. b must be in [-8, 8]; b == 0 yields the
// neutral element.
func selectPoint(row *[8]precomputedPoint, b int32) precomputedPoint {
	bNegative := negative(b)
	bAbs := b - (((-bNegative) & b) << 1)

	t := precomputedPoint{yPlusX: feOne, yMinusX: feOne}
	for i := int32(0); i < 8; i++ {
		t = t.cMove(row[i], equal(bAbs, i+1))
	}
	minusT := precomputedPoint{
		yPlusX:  t.yMinusX,
		yMinusX: t.yPlusX,
		xy2d:    t.xy2d.neg(),
	}
	return t.cMove(minusT, bNegative)
}

// ScalarMultBase returns a*B, where B is the group generator and a is a
// little-endian scalar with a[31] <= 127. Constant time.
//
// The scalar is split into 64 signed 4-bit digits. Multiples for the 32
// odd digit positions are added from the precomputed table, the result is
// multiplied by 16 with four doublings, and the even positions are added.
func ScalarMultBase(a *[32]byte) ExtendedPoint {
	var e [64]int8
	for i, v := range a {
		e[2*i] = int8(v & 15)
		e[2*i+1] = int8((v >> 4) & 15)
	}

	// Recode the digits to [-8, 8]. The final carry stays in range
	// because the top bit of the scalar is clear.
	carry := int8(0)
	for i := 0; i < 63; i++ {
		e[i] += carry
		carry = (e[i] + 8) >> 4
		e[i] -= carry << 4
	}
	e[63] += carry

	tab := basepointTables()

	h := extendedIdentity()
	for i := 1; i < 64; i += 2 {
		t := selectPoint(&tab.base[i/2], int32(e[i]))
		h = h.addPrecomputed(t).toExtended()
	}

	s := h.double().toProjective()
	s = s.double().toProjective()
	s = s.double().toProjective()
	h = s.double().toExtended()

	for i := 0; i < 64; i += 2 {
		t := selectPoint(&tab.base[i/2], int32(e[i]))
		h = h.addPrecomputed(t).toExtended()
	}
	return h
}
