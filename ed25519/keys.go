package ed25519

import (
	"crypto"
	cryptorand "crypto/rand"
	"crypto/subtle"
	"errors"
	"io"
)

// PublicKey is an encoded Ed25519 public key usable with the crypto
// package interfaces.
type PublicKey [PublicKeySize]byte

// PrivateKey is an Ed25519 secret key, the seed followed by the public
// key, usable with the crypto package interfaces.
type PrivateKey [PrivateKeySize]byte

// Compile-time interface assertion for crypto.Signer.
var _ crypto.Signer = PrivateKey{}

// GenerateKey reads a seed from rand and returns the keypair derived from
// it. If rand is nil, crypto/rand.Reader is used.
func GenerateKey(rand io.Reader) (PublicKey, PrivateKey, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}

	var seed [SeedSize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return PublicKey{}, PrivateKey{}, err
	}

	secret, public := Keypair(seed[:])
	return PublicKey(public), PrivateKey(secret), nil
}

// Seed returns the seed the key was derived from.
func (priv PrivateKey) Seed() []byte {
	seed := make([]byte, SeedSize)
	copy(seed, priv[:SeedSize])
	return seed
}

// Public returns the PublicKey half of the key.
func (priv PrivateKey) Public() crypto.PublicKey {
	var pub PublicKey
	copy(pub[:], priv[SeedSize:])
	return pub
}

// Equal reports whether priv and x are the same key. The comparison runs
// in constant time.
func (priv PrivateKey) Equal(x crypto.PrivateKey) bool {
	xx, ok := x.(PrivateKey)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare(priv[:], xx[:]) == 1
}

// Sign signs message with priv. Ed25519 signs the message itself rather
// than a digest, so opts must not specify a hash function.
// This implements the crypto.Signer interface.
func (priv PrivateKey) Sign(rand io.Reader, message []byte, opts crypto.SignerOpts) ([]byte, error) {
	return priv.SignMessage(rand, message, opts)
}

// SignMessage signs message with priv. Signatures are deterministic, so
// rand is unused. Returns an error if opts specifies a hash function, as
// Ed25519 signs messages directly.
func (priv PrivateKey) SignMessage(_ io.Reader, message []byte, opts crypto.SignerOpts) ([]byte, error) {
	if opts != nil && opts.HashFunc() != 0 {
		return nil, errors.New("ed25519: cannot sign pre-hashed messages")
	}
	sig := Sign(message, priv[:])
	return sig[:], nil
}

// Equal reports whether pub and x are the same key.
func (pub PublicKey) Equal(x crypto.PublicKey) bool {
	xx, ok := x.(PublicKey)
	if !ok {
		return false
	}
	return pub == xx
}

// Verify reports whether sig is a valid signature of message by pub.
func (pub PublicKey) Verify(message, sig []byte) bool {
	return Verify(message, pub[:], sig)
}
