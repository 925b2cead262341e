// Package hmac implements the keyed-hash message authentication code
// defined in RFC 2104 over any hash.Hash implementation.
//
// An HMAC is constructed from a hash function and a secret key:
//
//	mac := hmac.New(sha512.New, key)
//	mac.Write(message)
//	tag := mac.Sum(nil)
//
// Tags must be compared with Equal to avoid leaking their contents
// through timing side channels.
package hmac

import (
	"crypto/subtle"
	"hash"
)

// Keys are processed at the block size of the underlying hash. A shorter
// key is zero padded, a longer one is hashed first. The two pad values
// derive the inner and outer keys from the processed key.
type hmac struct {
	opad, ipad   []byte
	outer, inner hash.Hash
	size         int
	blocksize    int
}

// New returns a new HMAC hash using the given hash.Hash constructor and
// key. The constructor must return a fresh hash state on every call.
func New(h func() hash.Hash, key []byte) hash.Hash {
	hm := new(hmac)
	hm.outer = h()
	hm.inner = h()
	hm.size = hm.inner.Size()
	hm.blocksize = hm.inner.BlockSize()
	hm.ipad = make([]byte, hm.blocksize)
	hm.opad = make([]byte, hm.blocksize)
	if len(key) > hm.blocksize {
		hm.outer.Write(key)
		key = hm.outer.Sum(nil)
		hm.outer.Reset()
	}
	copy(hm.ipad, key)
	copy(hm.opad, key)
	for i := range hm.ipad {
		hm.ipad[i] ^= 0x36
	}
	for i := range hm.opad {
		hm.opad[i] ^= 0x5c
	}
	hm.inner.Write(hm.ipad)
	return hm
}

func (h *hmac) Write(p []byte) (int, error) {
	return h.inner.Write(p)
}

func (h *hmac) Sum(in []byte) []byte {
	origLen := len(in)
	in = h.inner.Sum(in)
	h.outer.Reset()
	h.outer.Write(h.opad)
	h.outer.Write(in[origLen:])
	return h.outer.Sum(in[:origLen])
}

func (h *hmac) Size() int { return h.size }

func (h *hmac) BlockSize() int { return h.blocksize }

// Reset restores the keyed inner state, discarding any written message.
func (h *hmac) Reset() {
	h.inner.Reset()
	h.inner.Write(h.ipad)
}

// Equal compares two MAC tags in constant time without leaking their
// contents. It is still important that both tags are of the same, fixed
// length to avoid leaking the length.
func Equal(mac1, mac2 []byte) bool {
	return subtle.ConstantTimeCompare(mac1, mac2) == 1
}
