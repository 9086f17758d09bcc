package otcore

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"
)

// HashInt renders its arguments as a length-prefixed concatenation (a fixed
// 8-byte big-endian length header followed by the part's raw bytes, itself
// prefixed by the part count) and feeds the result through SHA-256. This
// framing keeps adjacent parts from being ambiguous under plain
// concatenation (e.g. "ab","c" vs "a","bc"). The digest is read back as a
// big-endian unsigned integer. Integer arguments (a poly index, a modulus)
// are rendered as their decimal ASCII string before being passed in here —
// this function only ever sees byte strings.
func HashInt(parts ...string) *big.Int {
	h := sha256.New()
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(parts)))
	h.Write(lenBuf[:])
	for _, p := range parts {
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(p)))
		h.Write(lenBuf[:])
		h.Write([]byte(p))
	}
	digest := h.Sum(nil)
	return new(big.Int).SetBytes(digest)
}
