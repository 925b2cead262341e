package hmac

import (
	"bytes"
	stdhmac "crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"math/rand"
	"testing"

	"golang.org/x/crypto/blake2b"
)

func fromHex(tb testing.TB, s string) []byte {
	tb.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		tb.Fatalf("bad hex in test vector: %v", err)
	}
	return b
}

// Vectors from RFC 4231. An empty tag means the case is not checked for
// that hash.
var rfc4231Cases = []struct {
	key, data string
	sha256Tag string
	sha512Tag string
}{
	{
		"0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b",
		"4869205468657265", // "Hi There"
		"b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
		"87aa7cdea5ef619d4ff0b4241a1d6cb02379f4e2ce4ec2787ad0b30545e17cde" +
			"daa833b7d6b8a702038b274eaea3f4e4be9d914eeb61f1702e696c203a126854",
	},
	{
		"4a656665", // "Jefe"
		"7768617420646f2079612077616e7420666f72206e6f7468696e673f",
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		"164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea250554" +
			"9758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737",
	},
	{
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"dddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddd" +
			"dddddddddddddddddddddddddddddddddddd",
		"773ea91e36800e46854db8ebd09181a72959098b3ef8c122d9635514ced565fe",
		"fa73b0089d56a284efb0f0756c890be9b1b5dbdd8ee81a3655f83e33b2279d39" +
			"bf3e848279a722c806b485a47e67c807b946a337bee8942674278859e13292fb",
	},
	{
		"0102030405060708090a0b0c0d0e0f10111213141516171819",
		"cdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcd" +
			"cdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcd",
		"82558a389a443c0ea4cc819899f2083a85f0faa3e578f8077a2e3ff46729665b",
		"",
	},
	{
		// 131-byte key, hashed before padding.
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" +
			"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" +
			"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" +
			"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" +
			"aaaaaa",
		"54657374205573696e67204c6172676572205468616e20426c6f636b2d53697a" +
			"65204b6579202d2048617368204b6579204669727374",
		"60e431591ee0b67f0d8a26aacbf5b77f8e0bc6213728c5140546040f0ee37f54",
		"",
	},
}

func TestRFC4231Vectors(t *testing.T) {
	for i, tc := range rfc4231Cases {
		key := fromHex(t, tc.key)
		data := fromHex(t, tc.data)

		if tc.sha256Tag != "" {
			mac := New(sha256.New, key)
			mac.Write(data)
			if tag := mac.Sum(nil); !bytes.Equal(tag, fromHex(t, tc.sha256Tag)) {
				t.Errorf("case %d: HMAC-SHA-256: got %x, want %s", i, tag, tc.sha256Tag)
			}
		}
		if tc.sha512Tag != "" {
			mac := New(sha512.New, key)
			mac.Write(data)
			if tag := mac.Sum(nil); !bytes.Equal(tag, fromHex(t, tc.sha512Tag)) {
				t.Errorf("case %d: HMAC-SHA-512: got %x, want %s", i, tag, tc.sha512Tag)
			}
		}
	}
}

func TestMatchesCryptoHmac(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	newBlake2b := func() hash.Hash {
		h, err := blake2b.New512(nil)
		if err != nil {
			t.Fatalf("blake2b.New512 failed: %v", err)
		}
		return h
	}

	hashes := []struct {
		name string
		ctor func() hash.Hash
	}{
		{"sha256", sha256.New},
		{"sha512", sha512.New},
		{"blake2b", newBlake2b},
	}

	// Key lengths straddle the block sizes to cover both the padded and
	// the hashed key paths.
	for _, keyLen := range []int{0, 1, 16, 64, 100, 128, 200} {
		for _, h := range hashes {
			key := make([]byte, keyLen)
			message := make([]byte, 1+rng.Intn(300))
			rng.Read(key)
			rng.Read(message)

			mac := New(h.ctor, key)
			mac.Write(message)
			got := mac.Sum(nil)

			ref := stdhmac.New(h.ctor, key)
			ref.Write(message)
			want := ref.Sum(nil)

			if !bytes.Equal(got, want) {
				t.Errorf("%s, key length %d: got %x, want %x", h.name, keyLen, got, want)
			}
		}
	}
}

func TestIncrementalWrites(t *testing.T) {
	key := []byte("incremental key")
	message := []byte("a message delivered in several pieces")

	oneShot := New(sha512.New, key)
	oneShot.Write(message)
	want := oneShot.Sum(nil)

	mac := New(sha512.New, key)
	mac.Write(message[:7])
	mac.Write(message[7:20])
	mac.Write(message[20:])
	if got := mac.Sum(nil); !bytes.Equal(got, want) {
		t.Errorf("incremental writes: got %x, want %x", got, want)
	}
}

func TestSumPreservesState(t *testing.T) {
	mac := New(sha256.New, []byte("key"))
	mac.Write([]byte("partial"))
	first := mac.Sum(nil)
	second := mac.Sum(nil)
	if !bytes.Equal(first, second) {
		t.Error("Sum changed the hash state")
	}

	mac.Write([]byte(" message"))
	extended := mac.Sum(nil)

	ref := New(sha256.New, []byte("key"))
	ref.Write([]byte("partial message"))
	if want := ref.Sum(nil); !bytes.Equal(extended, want) {
		t.Errorf("writes after Sum: got %x, want %x", extended, want)
	}
}

func TestReset(t *testing.T) {
	mac := New(sha256.New, []byte("key"))
	mac.Write([]byte("first message"))
	first := mac.Sum(nil)

	mac.Reset()
	mac.Write([]byte("first message"))
	if got := mac.Sum(nil); !bytes.Equal(got, first) {
		t.Errorf("tag after Reset: got %x, want %x", got, first)
	}

	mac.Reset()
	mac.Write([]byte("second message"))
	if got := mac.Sum(nil); bytes.Equal(got, first) {
		t.Error("different messages produced the same tag")
	}
}

func TestEqual(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	b := []byte{1, 2, 3, 4}
	c := []byte{1, 2, 3, 5}

	if !Equal(a, b) {
		t.Error("Equal returned false for equal tags")
	}
	if Equal(a, c) {
		t.Error("Equal returned true for different tags")
	}
	if Equal(a, a[:3]) {
		t.Error("Equal returned true for tags of different lengths")
	}
}

func BenchmarkHMACSHA512(b *testing.B) {
	key := make([]byte, 32)
	message := make([]byte, 1024)
	b.SetBytes(int64(len(message)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mac := New(sha512.New, key)
		mac.Write(message)
		mac.Sum(nil)
	}
}
