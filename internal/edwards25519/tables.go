package edwards25519

import "sync"

// basepointTable holds multiples of the generator B. base[i][j] is
// (j+1)*16^(2i)*B, one row of eight multiples per even 4-bit digit
// position of a 256-bit scalar; ScalarMultBase covers the odd positions
// with the same rows before its four doublings. bi holds the small odd
// multiples B, 3B, ..., 15B used by the sliding window in
// DoubleScalarMultVartime.
type basepointTable struct {
	base [32][8]precomputedPoint
	bi   [8]precomputedPoint
}

var (
	tables     *basepointTable
	tablesOnce sync.Once
)

// basepointTables returns the shared generator tables, building them on
// first use. The tables are never written after that, so they are safe
// for concurrent readers.
func basepointTables() *basepointTable {
	tablesOnce.Do(func() {
		tables = newBasepointTable()
	})
	return tables
}

func newBasepointTable() *basepointTable {
	t := new(basepointTable)

	p := Generator()
	for i := range t.base {
		pCached := p.toCached()
		q := p
		for j := range t.base[i] {
			t.base[i][j] = q.toPrecomputed()
			q = q.addCached(pCached).toExtended()
		}
		for j := 0; j < 8; j++ {
			p = p.double().toExtended()
		}
	}

	b := Generator()
	b2 := b.double().toExtended().toCached()
	q := b
	for i := range t.bi {
		t.bi[i] = q.toPrecomputed()
		q = q.addCached(b2).toExtended()
	}
	return t
}

// Generator returns the group generator, the point with y = 4/5 and
// positive x.
func Generator() ExtendedPoint {
	s := [32]byte{0x58}
	for i := 1; i < len(s); i++ {
		s[i] = 0x66
	}
	p, ok := ExtendedFromBytesNegateVartime(&s)
	if !ok {
		panic("edwards25519: generator encoding did not decode")
	}
	return p.neg()
}
