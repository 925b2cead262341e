// Package pbkdf2 implements the password-based key derivation function
// PBKDF2 as defined in RFC 2898.
//
// The pseudorandom function is passed in as an already keyed hash.Hash
// rather than derived internally from a password, so any MAC can serve:
//
//	prf := hmac.New(sha512.New, password)
//	key := pbkdf2.Key(prf, salt, 4096, 32)
//
// A keyed BLAKE2b instance works the same way.
package pbkdf2

import "hash"

// Key derives a key of keyLen bytes from the keyed pseudorandom function
// prf and the salt, chaining iter applications of the PRF per output
// block. prf.Reset must restore the keyed state, as hmac.New and keyed
// BLAKE2b instances do.
//
// Panics if iter or keyLen is less than 1.
func Key(prf hash.Hash, salt []byte, iter, keyLen int) []byte {
	if iter < 1 {
		panic("pbkdf2: iteration count out of range")
	}
	if keyLen < 1 {
		panic("pbkdf2: key length out of range")
	}

	hashLen := prf.Size()
	numBlocks := (keyLen + hashLen - 1) / hashLen

	var buf [4]byte
	dk := make([]byte, 0, numBlocks*hashLen)
	U := make([]byte, hashLen)
	for block := 1; block <= numBlocks; block++ {
		// T starts as U_1 = PRF(salt || INT_32_BE(block)) and accumulates
		// the XOR of the chained iterations.
		prf.Reset()
		prf.Write(salt)
		buf[0] = byte(block >> 24)
		buf[1] = byte(block >> 16)
		buf[2] = byte(block >> 8)
		buf[3] = byte(block)
		prf.Write(buf[:4])
		dk = prf.Sum(dk)
		T := dk[len(dk)-hashLen:]
		copy(U, T)

		// U_n = PRF(U_(n-1))
		for n := 2; n <= iter; n++ {
			prf.Reset()
			prf.Write(U)
			U = U[:0]
			U = prf.Sum(U)
			for x := range U {
				T[x] ^= U[x]
			}
		}
	}
	return dk[:keyLen]
}
