// Package curve25519 implements the X25519 function over Curve25519, the
// elliptic curve known for its use in Diffie-Hellman key agreement.
package curve25519

import (
	"crypto/subtle"
	"errors"
	"strconv"

	"github.com/mzabaluev/cryptoxide/internal/edwards25519"
)

const (
	// ScalarSize is the size, in bytes, of the scalar input to X25519.
	ScalarSize = 32
	// PointSize is the size, in bytes, of the point input to X25519.
	PointSize = 32
)

// Basepoint is the canonical Curve25519 generator, u = 9.
var Basepoint []byte

var basePoint = [32]byte{9}

func init() { Basepoint = basePoint[:] }

// ScalarMult sets dst to the product scalar * point.
//
// Deprecated: when point is the all-zero value or another low-order point,
// dst ends up all zero and the scalar is leaked. Use X25519 instead.
func ScalarMult(dst, scalar, point *[32]byte) {
	*dst = edwards25519.MontgomeryScalarMult(scalar, point)
}

// ScalarBaseMult sets dst to the product scalar * basepoint.
//
// It is recommended to use X25519 with Basepoint instead.
func ScalarBaseMult(dst, scalar *[32]byte) {
	*dst = edwards25519.MontgomeryScalarMult(scalar, &basePoint)
}

// X25519 returns the shared secret scalar * point according to RFC 7748,
// Section 5. scalar, point and the return value are all 32 bytes.
//
// scalar can be generated at random, for example with crypto/rand. point
// is either the peer's public value, or Basepoint to produce one's own
// public value from scalar.
//
// If point is a low-order point the result is the all-zero value and an
// error is returned.
func X25519(scalar, point []byte) ([]byte, error) {
	if l := len(scalar); l != ScalarSize {
		return nil, errors.New("curve25519: bad scalar length: " + strconv.Itoa(l))
	}
	if l := len(point); l != PointSize {
		return nil, errors.New("curve25519: bad point length: " + strconv.Itoa(l))
	}

	var in, base [32]byte
	copy(in[:], scalar)
	copy(base[:], point)
	dst := edwards25519.MontgomeryScalarMult(&in, &base)

	var zero [32]byte
	if subtle.ConstantTimeCompare(dst[:], zero[:]) == 1 {
		return nil, errors.New("curve25519: bad input point: low order point")
	}
	return dst[:], nil
}
