package otcore

import (
	"errors"
	"fmt"
	"math/bits"
)

// Params holds the bit-width and count configuration of one OT instance.
// Derived quantities (SigBuffBits, Pow2Bits, Pow2SigBits) are computed on
// demand rather than stored, so a Params value is always internally
// consistent.
type Params struct {
	PrimeBits             int
	ModulusBits           int
	BlockCount            int
	PolyCount             int
	BraidElementCount     int
	SigCoefficientMaxBits int
}

// DefaultParams returns the reference demo's defaults.
func DefaultParams() Params {
	return Params{
		PrimeBits:             128,
		ModulusBits:           8320,
		BlockCount:            1000,
		PolyCount:             12,
		BraidElementCount:     3,
		SigCoefficientMaxBits: 12,
	}
}

// NewParams validates p and returns a usable copy.
func NewParams(p Params) (Params, error) {
	if p.PrimeBits < 1 {
		return Params{}, errors.New("otcore: PrimeBits must be >= 1")
	}
	if p.ModulusBits <= p.PrimeBits {
		return Params{}, fmt.Errorf("otcore: ModulusBits (%d) must exceed PrimeBits (%d)", p.ModulusBits, p.PrimeBits)
	}
	if p.BlockCount < 1 {
		return Params{}, errors.New("otcore: BlockCount must be >= 1")
	}
	if p.PolyCount < 2 || p.PolyCount%2 != 0 {
		return Params{}, errors.New("otcore: PolyCount must be a positive even number")
	}
	if p.BraidElementCount < 1 {
		return Params{}, errors.New("otcore: BraidElementCount must be >= 1")
	}
	if p.SigCoefficientMaxBits < 1 {
		return Params{}, errors.New("otcore: SigCoefficientMaxBits must be >= 1")
	}
	return p, nil
}

func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// SigBuffBits is ⌈log2(blockcount+braid_element_count)⌉ + sigcoefficientmaxbits + 26.
func (p Params) SigBuffBits() int {
	return ceilLog2(p.BlockCount+p.BraidElementCount) + p.SigCoefficientMaxBits + 26
}

// Pow2Bits is the bit-width of the S3 primary-carry modulus; equal to ModulusBits.
func (p Params) Pow2Bits() int { return p.ModulusBits }

// Pow2SigBits is Pow2Bits + SigBuffBits.
func (p Params) Pow2SigBits() int { return p.Pow2Bits() + p.SigBuffBits() }
