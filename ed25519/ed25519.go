// Package ed25519 implements the Ed25519 signature scheme along with key
// exchange between Ed25519 keys over the birationally equivalent Montgomery
// curve.
//
// Secret keys are 64 bytes laid out as the 32-byte seed followed by the
// derived public key. SignExtended and ToPublic instead operate on an
// extended secret key, the clamped scalar followed by the 32-byte nonce
// prefix, for callers that derive keys through schemes where the seed is
// never materialized.
//
// Verify rejects signatures whose scalar half is not fully reduced below
// the group order, so a third party cannot produce a second valid encoding
// of an existing signature.
package ed25519

import (
	"crypto/sha512"
	"crypto/subtle"
	"strconv"

	"github.com/mzabaluev/cryptoxide/internal/edwards25519"
)

const (
	// SeedSize is the size, in bytes, of the seed a keypair is derived from.
	SeedSize = 32
	// PublicKeySize is the size, in bytes, of an encoded public key.
	PublicKeySize = 32
	// PrivateKeySize is the size, in bytes, of a secret key, and also of an
	// extended secret key.
	PrivateKeySize = 64
	// SignatureSize is the size, in bytes, of a signature.
	SignatureSize = 64
)

// order is the prime order of the Ed25519 group, little endian.
var order = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// Keypair derives a secret key and the matching public key from a 32-byte
// seed. The secret key is the seed followed by the public key, so the seed
// can be recovered from it.
//
// Panics if the seed is not SeedSize bytes.
func Keypair(seed []byte) (secretKey [PrivateKeySize]byte, publicKey [PublicKeySize]byte) {
	if l := len(seed); l != SeedSize {
		panic("ed25519: bad seed length: " + strconv.Itoa(l))
	}

	az := sha512.Sum512(seed)
	az[0] &= 248
	az[31] &= 63
	az[31] |= 64

	var scalar [32]byte
	copy(scalar[:], az[:32])
	publicKey = edwards25519.ScalarMultBase(&scalar).Bytes()

	copy(secretKey[:SeedSize], seed)
	copy(secretKey[SeedSize:], publicKey[:])
	return
}

// ToPublic recovers the public key from an extended secret key.
//
// Panics if the extended secret key is not PrivateKeySize bytes.
func ToPublic(extendedSecret []byte) [PublicKeySize]byte {
	if l := len(extendedSecret); l != PrivateKeySize {
		panic("ed25519: bad extended secret key length: " + strconv.Itoa(l))
	}

	var scalar [32]byte
	copy(scalar[:], extendedSecret[:32])
	return edwards25519.ScalarMultBase(&scalar).Bytes()
}

// Sign produces a deterministic signature of message with a secret key
// produced by Keypair.
//
// Panics if the secret key is not PrivateKeySize bytes.
func Sign(message, secretKey []byte) [SignatureSize]byte {
	if l := len(secretKey); l != PrivateKeySize {
		panic("ed25519: bad secret key length: " + strconv.Itoa(l))
	}

	az := sha512.Sum512(secretKey[:SeedSize])
	az[0] &= 248
	az[31] &= 63
	az[31] |= 64

	return sign(message, az[:32], az[32:], secretKey[SeedSize:])
}

// SignExtended produces a deterministic signature of message with an
// extended secret key, the clamped scalar followed by the nonce prefix.
// Signing with the extended form of a secret key yields the same signature
// Sign does.
//
// Panics if the extended secret key is not PrivateKeySize bytes.
func SignExtended(message, extendedSecret []byte) [SignatureSize]byte {
	if l := len(extendedSecret); l != PrivateKeySize {
		panic("ed25519: bad extended secret key length: " + strconv.Itoa(l))
	}

	publicKey := ToPublic(extendedSecret)
	return sign(message, extendedSecret[:32], extendedSecret[32:], publicKey[:])
}

// sign assembles a signature from the already separated scalar, nonce
// prefix and public key.
func sign(message, scalar, prefix, publicKey []byte) [SignatureSize]byte {
	var wide [64]byte

	h := sha512.New()
	h.Write(prefix)
	h.Write(message)
	h.Sum(wide[:0])
	nonce := edwards25519.ScReduce(&wide)

	encR := edwards25519.ScalarMultBase(&nonce).Bytes()

	h.Reset()
	h.Write(encR[:])
	h.Write(publicKey)
	h.Write(message)
	h.Sum(wide[:0])
	hram := edwards25519.ScReduce(&wide)

	var a [32]byte
	copy(a[:], scalar)
	s := edwards25519.ScMulAdd(&hram, &a, &nonce)

	var sig [SignatureSize]byte
	copy(sig[:32], encR[:])
	copy(sig[32:], s[:])
	return sig
}

// Verify reports whether signature is a valid signature of message by
// publicKey. Signatures with a non-canonical scalar, a malformed point
// encoding, or the all-zero public key are rejected.
//
// Panics if the public key is not PublicKeySize bytes or the signature is
// not SignatureSize bytes.
func Verify(message, publicKey, signature []byte) bool {
	if l := len(publicKey); l != PublicKeySize {
		panic("ed25519: bad public key length: " + strconv.Itoa(l))
	}
	if l := len(signature); l != SignatureSize {
		panic("ed25519: bad signature length: " + strconv.Itoa(l))
	}

	if !scalarIsCanonical(signature[32:]) {
		return false
	}

	var enc [PublicKeySize]byte
	copy(enc[:], publicKey)
	negA, ok := edwards25519.ExtendedFromBytesNegateVartime(&enc)
	if !ok {
		return false
	}
	if enc == [PublicKeySize]byte{} {
		return false
	}

	var wide [64]byte
	h := sha512.New()
	h.Write(signature[:32])
	h.Write(publicKey)
	h.Write(message)
	h.Sum(wide[:0])
	hram := edwards25519.ScReduce(&wide)

	var s [32]byte
	copy(s[:], signature[32:])
	checkR := edwards25519.DoubleScalarMultVartime(&hram, negA, &s).Bytes()

	return subtle.ConstantTimeCompare(checkR[:], signature[:32]) == 1
}

// Exchange computes the X25519 shared secret between an Ed25519 public key
// and the seed half of an Ed25519 secret key. The public key is mapped to
// the Montgomery curve and multiplied by the same clamped scalar the
// signing operations derive from the seed.
//
// Panics if the public key is not PublicKeySize bytes or the secret key is
// not PrivateKeySize bytes.
func Exchange(publicKey, secretKey []byte) [32]byte {
	if l := len(publicKey); l != PublicKeySize {
		panic("ed25519: bad public key length: " + strconv.Itoa(l))
	}
	if l := len(secretKey); l != PrivateKeySize {
		panic("ed25519: bad secret key length: " + strconv.Itoa(l))
	}

	var enc [PublicKeySize]byte
	copy(enc[:], publicKey)
	u := edwards25519.MontgomeryUFromEdwardsY(&enc)

	az := sha512.Sum512(secretKey[:SeedSize])
	az[0] &= 248
	az[31] &= 127
	az[31] |= 64

	var scalar [32]byte
	copy(scalar[:], az[:32])
	return edwards25519.MontgomeryScalarMult(&scalar, &u)
}

// scalarIsCanonical reports whether the 32-byte little-endian scalar is
// strictly below the group order.
func scalarIsCanonical(s []byte) bool {
	var c, n byte = 0, 1
	for i := 31; i >= 0; i-- {
		diff := int(s[i]) - int(order[i])
		c |= byte(diff>>8) & n
		eq := int(s[i]) ^ int(order[i])
		n &= byte((eq - 1) >> 8)
	}
	return c != 0
}
