package modarith

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// RandomBigInt draws a uniform value in [0, max) using reader, defaulting to
// crypto/rand.Reader when reader is nil. Protocol code must always use a
// cryptographically strong source here; tests may substitute a fixed byte
// stream to pin deterministic fixtures, but never math/rand.
func RandomBigInt(reader io.Reader, max *big.Int) (*big.Int, error) {
	if max == nil || max.Sign() <= 0 {
		return nil, errors.New("modarith: RandomBigInt requires max > 0")
	}
	if reader == nil {
		reader = rand.Reader
	}
	return rand.Int(reader, max)
}
