package edwards25519

import (
	"math/rand"
	"testing"

	filippo "filippo.io/edwards25519"
	"github.com/stretchr/testify/require"
)

// reducedScalar returns a uniformly distributed canonical scalar.
func reducedScalar(rng *rand.Rand) [32]byte {
	var wide [64]byte
	rng.Read(wide[:])
	return ScReduce(&wide)
}

func TestScReduce(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	for i := 0; i < 256; i++ {
		var wide [64]byte
		rng.Read(wide[:])

		got := ScReduce(&wide)
		want, err := filippo.NewScalar().SetUniformBytes(wide[:])
		require.NoError(t, err)
		require.Equal(t, want.Bytes(), got[:])
	}
}

func TestScReduceEdges(t *testing.T) {
	var zero [64]byte
	if got := ScReduce(&zero); got != [32]byte{} {
		t.Errorf("ScReduce(0) = %x, want 0", got)
	}

	var ones [64]byte
	for i := range ones {
		ones[i] = 0xff
	}
	got := ScReduce(&ones)
	want, err := filippo.NewScalar().SetUniformBytes(ones[:])
	require.NoError(t, err)
	require.Equal(t, want.Bytes(), got[:])
}

func TestScReduceBelowOrder(t *testing.T) {
	// Values already below the order pass through unchanged.
	rng := rand.New(rand.NewSource(21))
	for i := 0; i < 64; i++ {
		a := reducedScalar(rng)
		var wide [64]byte
		copy(wide[:32], a[:])
		if got := ScReduce(&wide); got != a {
			t.Errorf("ScReduce changed reduced value %x to %x", a, got)
		}
	}
}

func TestScMulAdd(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	for i := 0; i < 256; i++ {
		a := reducedScalar(rng)
		b := reducedScalar(rng)
		c := reducedScalar(rng)

		got := ScMulAdd(&a, &b, &c)

		sa, err := filippo.NewScalar().SetCanonicalBytes(a[:])
		require.NoError(t, err)
		sb, err := filippo.NewScalar().SetCanonicalBytes(b[:])
		require.NoError(t, err)
		sc, err := filippo.NewScalar().SetCanonicalBytes(c[:])
		require.NoError(t, err)

		want := filippo.NewScalar().MultiplyAdd(sa, sb, sc)
		require.Equal(t, want.Bytes(), got[:])
	}
}

func TestScMulAddIdentities(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	one := [32]byte{1}
	var zero [32]byte

	for i := 0; i < 32; i++ {
		a := reducedScalar(rng)

		if got := ScMulAdd(&a, &one, &zero); got != a {
			t.Errorf("a*1+0 = %x, want %x", got, a)
		}
		if got := ScMulAdd(&zero, &a, &a); got != a {
			t.Errorf("0*a+a = %x, want %x", got, a)
		}
	}
}
