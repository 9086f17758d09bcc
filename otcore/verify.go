package otcore

import (
	"io"
	"math/big"

	"github.com/neopeer/neopeer/internal/modarith"
)

// ChooseIndices draws vcount distinct polynomial indices from [0, polyCount)
// without replacement via rejection sampling, mirroring the reference's
// vpolys selection loop.
func ChooseIndices(reader io.Reader, polyCount, vcount int) ([]int, error) {
	chosen := make([]int, 0, vcount)
	seen := make(map[int]bool, vcount)
	bound := big.NewInt(int64(polyCount))
	for len(chosen) < vcount {
		idx, err := modarith.RandomBigInt(reader, bound)
		if err != nil {
			return nil, err
		}
		pi := int(idx.Int64())
		if !seen[pi] {
			seen[pi] = true
			chosen = append(chosen, pi)
		}
	}
	return chosen, nil
}

// VerifyRound runs Verifier: given the stored Sample-3 responses, the full
// polynomial set, the chosen subset of polynomial indices, and the current
// request's carry/fractional split, it recomputes the accumulator over
// storedB in ascending block order and checks it against each chosen
// polynomial's signed image.
func VerifyRound(ctx *Context, storedB []*big.Int, polys []Poly, vpolys []int, carry *S3Carry) error {
	pow2SigMask := new(big.Int).Sub(ctx.Pow2Sig, one)
	pow2Mask := new(big.Int).Sub(ctx.Pow2, one)

	vcount := len(vpolys)
	X := make([]*big.Int, vcount)
	bacc := make([]*big.Int, vcount)
	for i := range X {
		X[i] = big.NewInt(1)
		bacc[i] = big.NewInt(0)
	}

	for _, b := range storedB {
		for pi := 0; pi < vcount; pi++ {
			p := polys[vpolys[pi]]
			X[pi].Mul(X[pi], p.XValue)
			X[pi].Mod(X[pi], p.Modulus)

			term := new(big.Int).Mul(b, X[pi])
			bacc[pi].Add(bacc[pi], term)
			bacc[pi].And(bacc[pi], pow2SigMask)
		}
	}

	for pi := 0; pi < vcount; pi++ {
		p := polys[vpolys[pi]]

		btestC := new(big.Int).Mul(carry.B0, p.SUMPoly)
		btestC.Add(btestC, new(big.Int).Mul(carry.B1, p.D1Poly))
		btestC.Add(btestC, new(big.Int).Mul(carry.B2, p.D2Poly))

		btestF := new(big.Int).Mul(carry.F0, p.SUMPoly)
		btestF.Add(btestF, new(big.Int).Mul(carry.F1, p.D1Poly))
		btestF.Add(btestF, new(big.Int).Mul(carry.F2, p.D2Poly))
		btestF.Rsh(btestF, uint(ctx.Pow2Bits))

		btest := new(big.Int).Add(btestC, sigunpad(ctx, btestF))
		btest.And(btest, pow2Mask)

		expect := sigunpad(ctx, bacc[pi])
		if btest.Cmp(expect) != 0 {
			return &ProtocolError{
				Kind: KindVerifierMismatch, BlockIndex: -1,
				Left: btest, Right: expect,
				Msg: "polynomial verification failed for chosen index",
			}
		}
	}
	return nil
}
