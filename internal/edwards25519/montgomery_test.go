package edwards25519

import (
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/curve25519"
)

func mustDecodeHex32(t *testing.T, s string) [32]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		t.Fatalf("bad test vector %q", s)
	}
	var out [32]byte
	copy(out[:], b)
	return out
}

func TestMontgomeryScalarMultVectors(t *testing.T) {
	// RFC 7748, section 5.2. The second input u has its top bit set,
	// which the ladder must ignore.
	vectors := []struct{ scalar, point, want string }{
		{
			"a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac4",
			"e6db6867583030db3594c1a424b15f7c726624ec26b3353b10a903a6d0ab1c4c",
			"c3da55379de9c6908e94ea4df28d084f32eccf03491c71f754b4075577a28552",
		},
		{
			"4b66e9d4d1b4673c5ad22691957d6af5c11b6421e0ea01d42ca4169e7918ba0d",
			"e5210f12786811d3f4b7959d0538ae2c31dbe7106fc03c3efc4cd549c715a493",
			"95cbde9476e8907d7aade45cb4b873f88b595a68799fa152e6f8f7647aac7957",
		},
	}
	for _, v := range vectors {
		scalar := mustDecodeHex32(t, v.scalar)
		point := mustDecodeHex32(t, v.point)
		want := mustDecodeHex32(t, v.want)

		if got := MontgomeryScalarMult(&scalar, &point); got != want {
			t.Errorf("got %x, want %x", got, want)
		}
	}
}

func TestMontgomeryScalarMultMatchesXCrypto(t *testing.T) {
	rng := rand.New(rand.NewSource(40))
	for i := 0; i < 64; i++ {
		var scalar, point [32]byte
		rng.Read(scalar[:])
		rng.Read(point[:])

		got := MontgomeryScalarMult(&scalar, &point)
		want, err := curve25519.X25519(scalar[:], point[:])
		require.NoError(t, err)
		require.Equal(t, want, got[:])
	}
}

func TestMontgomeryBasepoint(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	base := [32]byte{9}
	for i := 0; i < 16; i++ {
		var k [32]byte
		rng.Read(k[:])

		got := MontgomeryScalarMult(&k, &base)
		want, err := curve25519.X25519(k[:], curve25519.Basepoint)
		require.NoError(t, err)
		require.Equal(t, want, got[:])
	}
}

func TestLadderMatchesEdwards(t *testing.T) {
	// For a clamped scalar k, the u coordinate of k*9 on the Montgomery
	// curve equals the image of the Edwards point k*B under the
	// birational map.
	rng := rand.New(rand.NewSource(42))
	base := [32]byte{9}
	for i := 0; i < 32; i++ {
		var k [32]byte
		rng.Read(k[:])
		k[0] &= 248
		k[31] &= 127
		k[31] |= 64

		viaLadder := MontgomeryScalarMult(&k, &base)

		ed := ScalarMultBase(&k).Bytes()
		if viaMap := MontgomeryUFromEdwardsY(&ed); viaLadder != viaMap {
			t.Fatalf("ladder %x, map %x", viaLadder, viaMap)
		}
	}
}

func TestMontgomeryUFromEdwardsY(t *testing.T) {
	// The Edwards generator maps to u = 9.
	g := Generator().Bytes()
	nine := [32]byte{9}
	if got := MontgomeryUFromEdwardsY(&g); got != nine {
		t.Errorf("generator maps to %x, want 9", got)
	}

	// The sign bit of the encoding does not affect the result.
	g[31] |= 0x80
	if got := MontgomeryUFromEdwardsY(&g); got != nine {
		t.Errorf("sign flipped generator maps to %x, want 9", got)
	}
}
