package pbkdf2

import (
	"bytes"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"golang.org/x/crypto/blake2b"
	xpbkdf2 "golang.org/x/crypto/pbkdf2"

	"github.com/mzabaluev/cryptoxide/hmac"
)

func fromHex(tb testing.TB, s string) []byte {
	tb.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		tb.Fatalf("bad hex in test vector: %v", err)
	}
	return b
}

// Vectors from RFC 6070 (PBKDF2-HMAC-SHA1). The 16777216-iteration case
// is omitted for time.
func TestRFC6070Vectors(t *testing.T) {
	cases := []struct {
		password, salt string
		iter, keyLen   int
		want           string
	}{
		{"password", "salt", 1, 20, "0c60c80f961f0e71f3a9b524af6012062fe037a6"},
		{"password", "salt", 2, 20, "ea6c014dc72d6f8ccd1ed92ace1d41f0d8de8957"},
		{"password", "salt", 4096, 20, "4b007901b765489abead49d926f721d065a429c1"},
		{
			"passwordPASSWORDpassword", "saltSALTsaltSALTsaltSALTsaltSALTsalt",
			4096, 25, "3d2eec4fe41c849b80c8d83662c0e44a8b291a964cf2f07038",
		},
		{"pass\x00word", "sa\x00lt", 4096, 16, "56fa6aa75548099dcc37d7f03425e0c3"},
	}

	for i, tc := range cases {
		prf := hmac.New(sha1.New, []byte(tc.password))
		got := Key(prf, []byte(tc.salt), tc.iter, tc.keyLen)
		if !bytes.Equal(got, fromHex(t, tc.want)) {
			t.Errorf("case %d: got %x, want %s", i, got, tc.want)
		}
	}
}

func TestSHA256Vectors(t *testing.T) {
	cases := []struct {
		password, salt string
		iter, keyLen   int
		want           string
	}{
		{"password", "salt", 1, 32, "120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b"},
		{"password", "salt", 2, 32, "ae4d0c95af6b46d32d0adff928f06dd02a303f8ef3c251dfd6e2d85a95474c43"},
		{"password", "salt", 4096, 32, "c5e478d59288c841aa530db6845c4c8d962893a001ce4e11a4963873aa98134a"},
		{
			// Spans two PRF blocks and truncates the second.
			"passwordPASSWORDpassword", "saltSALTsaltSALTsaltSALTsaltSALTsalt",
			4096, 40, "348c89dbcbd32b2f32d814b8116e84cf2b17347ebc1800181c4e2a1fb8dd53e1c635518c7dac47e9",
		},
	}

	for i, tc := range cases {
		prf := hmac.New(sha256.New, []byte(tc.password))
		got := Key(prf, []byte(tc.salt), tc.iter, tc.keyLen)
		if !bytes.Equal(got, fromHex(t, tc.want)) {
			t.Errorf("case %d: got %x, want %s", i, got, tc.want)
		}
	}
}

func TestMatchesXCryptoPBKDF2(t *testing.T) {
	password := []byte("differential password")
	salt := []byte("differential salt")

	for _, iter := range []int{1, 2, 3, 64} {
		for _, keyLen := range []int{1, 16, 64, 100, 200} {
			prf := hmac.New(sha512.New, password)
			got := Key(prf, salt, iter, keyLen)
			want := xpbkdf2.Key(password, salt, iter, keyLen, sha512.New)
			if !bytes.Equal(got, want) {
				t.Errorf("iter %d, keyLen %d: got %x, want %x", iter, keyLen, got, want)
			}
		}
	}
}

func TestKeyedBlake2bPRF(t *testing.T) {
	prf, err := blake2b.New256([]byte("blake2b key material"))
	if err != nil {
		t.Fatalf("blake2b.New256 failed: %v", err)
	}

	key1 := Key(prf, []byte("salt one"), 16, 48)
	if len(key1) != 48 {
		t.Fatalf("derived key length: got %d, want 48", len(key1))
	}

	// Reset must restore the keyed state, so a second derivation with the
	// same PRF instance agrees with the first.
	again := Key(prf, []byte("salt one"), 16, 48)
	if !bytes.Equal(key1, again) {
		t.Error("repeated derivation with the same PRF instance differs")
	}

	key2 := Key(prf, []byte("salt two"), 16, 48)
	if bytes.Equal(key1, key2) {
		t.Error("different salts derived the same key")
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestKeyParameterChecks(t *testing.T) {
	prf := hmac.New(sha256.New, []byte("password"))
	mustPanic(t, "zero iterations", func() { Key(prf, []byte("salt"), 0, 32) })
	mustPanic(t, "zero key length", func() { Key(prf, []byte("salt"), 1, 0) })
}

func BenchmarkKeySHA512(b *testing.B) {
	password := []byte("benchmark password")
	salt := []byte("benchmark salt")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		prf := hmac.New(sha512.New, password)
		Key(prf, salt, 1024, 64)
	}
}
