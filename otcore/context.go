package otcore

import "math/big"

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Context bundles the fixed-bit-width quantities a request depends on
// (sigbuffbits, pow2, pow2sig, MASKH) together with the Params and Moduli
// they were derived from, so they are threaded explicitly through every
// component instead of living as package-level globals. It is built once
// and never mutated afterwards.
type Context struct {
	Params      Params
	Moduli      *Moduli
	Pow2Bits    int
	Pow2SigBits int
	SigBuffBits int
	Pow2        *big.Int
	Pow2Sig     *big.Int
	MaskH       *big.Int
	SanityCheck bool
}

// NewContext derives the fixed-bit-width quantities from params and moduli.
// moduli must be non-nil; passing nil indicates a programmer error in the
// caller, not a data-dependent failure, so NewContext panics rather than
// returning an error.
func NewContext(params Params, moduli *Moduli, sanityCheck bool) *Context {
	if moduli == nil {
		panic("otcore: NewContext: nil Moduli")
	}
	pow2Bits := params.Pow2Bits()
	pow2SigBits := params.Pow2SigBits()
	sigBuffBits := params.SigBuffBits()

	pow2 := new(big.Int).Lsh(one, uint(pow2Bits))
	pow2sig := new(big.Int).Lsh(one, uint(pow2SigBits))

	// MaskH clears the low PrimeBits bits of (pow2sig-1) via a bitwise
	// AndNot so the masked fractional terms never alias into the carry
	// region, rather than via an arithmetic subtraction that could borrow
	// across that boundary.
	lowMask := new(big.Int).Sub(new(big.Int).Lsh(one, uint(params.PrimeBits)), one)
	maskH := new(big.Int).Sub(pow2sig, one)
	maskH.AndNot(maskH, lowMask)

	return &Context{
		Params:      params,
		Moduli:      moduli,
		Pow2Bits:    pow2Bits,
		Pow2SigBits: pow2SigBits,
		SigBuffBits: sigBuffBits,
		Pow2:        pow2,
		Pow2Sig:     pow2sig,
		MaskH:       maskH,
		SanityCheck: sanityCheck,
	}
}

func sigpad(ctx *Context, x *big.Int) *big.Int {
	return new(big.Int).Lsh(x, uint(ctx.SigBuffBits))
}

func sigunpad(ctx *Context, x *big.Int) *big.Int {
	return new(big.Int).Rsh(x, uint(ctx.SigBuffBits))
}
