package otcore

import (
	"math/big"

	"github.com/neopeer/neopeer/internal/modarith"
)

// S3Carry is the per-request carry/fractional split precompute: B0..B2 are
// the low-carry coefficients mod pow2, F0..F2 are the MASKH-masked
// truncated binary fractions of b0/n, b1/n, b2/n.
type S3Carry struct {
	B0, B1, B2 *big.Int
	F0, F1, F2 *big.Int
}

// NewS3Carry computes the carry/fractional split from the S2-style
// randomised blinding coefficients. When ctx.SanityCheck is set it
// recomputes F0..F2 via an independent big.Float division and fails with
// KindSanityCheckDivergence on any mismatch, recovering the original
// source's sanitycheck path. B0..B2 are not cross-checked.
func NewS3Carry(ctx *Context, m *Moduli, r *Randomisers) (*S3Carry, error) {
	negN := new(big.Int).Neg(m.N)
	inn, err := modarith.Inverse(negN, ctx.Pow2)
	if err != nil {
		return nil, &ProtocolError{Kind: KindInverseFailure, BlockIndex: -1, Msg: "inverse(-n, pow2): " + err.Error()}
	}

	pow2Mask := new(big.Int).Sub(ctx.Pow2, one)

	mkB := func(b *big.Int) *big.Int {
		v := new(big.Int).Mul(b, inn)
		v.And(v, pow2Mask)
		return v
	}
	mkF := func(b *big.Int) *big.Int {
		v := new(big.Int).Lsh(b, uint(ctx.Pow2SigBits))
		v.Div(v, m.N)
		v.And(v, ctx.MaskH)
		return v
	}

	b0 := mkB(r.B0)
	b1 := mkB(r.B1)
	b2 := mkB(r.B2)
	f0 := mkF(r.B0)
	f1 := mkF(r.B1)
	f2 := mkF(r.B2)

	carry := &S3Carry{B0: b0, B1: b1, B2: b2, F0: f0, F1: f1, F2: f2}

	if ctx.SanityCheck {
		if err := carry.sanityCheck(ctx, m, r); err != nil {
			return nil, err
		}
	}
	return carry, nil
}

// sanityCheck recomputes the carry/fractional split using big.Float
// division, as an independent cross-check of the fast bit-shift form.
func (c *S3Carry) sanityCheck(ctx *Context, m *Moduli, r *Randomisers) error {
	prec := uint(ctx.Pow2SigBits + 64)
	nFloat := new(big.Float).SetPrec(prec).SetInt(m.N)
	pow2sigFloat := new(big.Float).SetPrec(prec).SetInt(ctx.Pow2Sig)

	check := func(name string, b, want *big.Int) error {
		bf := new(big.Float).SetPrec(prec).SetInt(b)
		frac := new(big.Float).SetPrec(prec).Quo(bf, nFloat)
		frac.Mul(frac, pow2sigFloat)
		whole, _ := frac.Int(nil)
		whole.And(whole, ctx.MaskH)
		if whole.Cmp(want) != 0 {
			return &ProtocolError{
				Kind: KindSanityCheckDivergence, BlockIndex: -1,
				Left: whole, Right: want,
				Msg: "S3 carry sanity check failed for " + name,
			}
		}
		return nil
	}
	if err := check("F0", r.B0, c.F0); err != nil {
		return err
	}
	if err := check("F1", r.B1, c.F1); err != nil {
		return err
	}
	if err := check("F2", r.B2, c.F2); err != nil {
		return err
	}
	return nil
}

// ResponseS3 computes the packed (Bp, Bf) -> B response for one block.
func ResponseS3(ctx *Context, carry *S3Carry, blk Block) *big.Int {
	pow2Mask := new(big.Int).Sub(ctx.Pow2, one)
	pow2SigMask := new(big.Int).Sub(ctx.Pow2Sig, one)

	bp := new(big.Int).Mul(carry.B0, blk.SUM)
	bp.Add(bp, new(big.Int).Mul(carry.B1, blk.D1))
	bp.Add(bp, new(big.Int).Mul(carry.B2, blk.D2))
	bp.And(bp, pow2Mask)

	bf := new(big.Int).Mul(carry.F0, blk.SUM)
	bf.Add(bf, new(big.Int).Mul(carry.F1, blk.D1))
	bf.Add(bf, new(big.Int).Mul(carry.F2, blk.D2))
	bf.Rsh(bf, uint(ctx.Pow2Bits))
	bf.And(bf, pow2SigMask)

	b := sigpad(ctx, bp)
	b.Add(b, bf)
	b.And(b, pow2SigMask)
	return b
}

