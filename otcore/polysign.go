package otcore

import (
	"math/big"
	"strconv"

	"github.com/neopeer/neopeer/internal/modarith"
)

// Poly is one publisher-signed Horner polynomial digest over the dataset's
// (SUM, D1, D2) triples, keyed by a domain string.
type Poly struct {
	Modulus *big.Int
	XValue  *big.Int
	SUMPoly *big.Int
	D1Poly  *big.Int
	D2Poly  *big.Int
}

func getRangedPrime(hashInt, roof *big.Int) *big.Int {
	v := new(big.Int).Mod(hashInt, roof)
	for !modarith.IsProbablePrime(v) {
		v.Add(v, one)
		v.Mod(v, roof)
	}
	return v
}

// GeneratePolynomials runs PolySigner: it produces polyCount Horner
// polynomial digests over the dataset's per-block (SUM, D1, D2) triples,
// keyed by decodeKeys.
func GeneratePolynomials(ctx *Context, decodeKeys string, blocks []Block) ([]Poly, error) {
	polyCount := ctx.Params.PolyCount
	sigCoeffMax := new(big.Int).Lsh(one, uint(ctx.Params.SigCoefficientMaxBits))
	polys := make([]Poly, polyCount)

	for pindex := 0; pindex < polyCount; pindex++ {
		pstr := strconv.Itoa(pindex)
		hm := HashInt(decodeKeys, pstr)
		m := getRangedPrime(hm, sigCoeffMax)
		hx := HashInt(decodeKeys, pstr, m.String())
		x := new(big.Int).Mod(hx, m)

		sumPoly := new(big.Int)
		d1Poly := new(big.Int)
		d2Poly := new(big.Int)
		X := new(big.Int).Set(x)

		for _, blk := range blocks {
			sumPoly.Add(sumPoly, new(big.Int).Mul(X, blk.SUM))
			d1Poly.Add(d1Poly, new(big.Int).Mul(X, blk.D1))
			d2Poly.Add(d2Poly, new(big.Int).Mul(X, blk.D2))
			X.Mul(X, x)
			X.Mod(X, m)
		}

		if sumPoly.Cmp(ctx.Pow2Sig) > 0 {
			return nil, &ProtocolError{Kind: KindPolyOverflow, BlockIndex: -1, Left: sumPoly, Right: ctx.Pow2Sig, Msg: "SUMPOLY overflow"}
		}
		if d1Poly.Cmp(ctx.Pow2Sig) > 0 {
			return nil, &ProtocolError{Kind: KindPolyOverflow, BlockIndex: -1, Left: d1Poly, Right: ctx.Pow2Sig, Msg: "D1POLY overflow"}
		}
		if d2Poly.Cmp(ctx.Pow2Sig) > 0 {
			return nil, &ProtocolError{Kind: KindPolyOverflow, BlockIndex: -1, Left: d2Poly, Right: ctx.Pow2Sig, Msg: "D2POLY overflow"}
		}

		polys[pindex] = Poly{Modulus: m, XValue: x, SUMPoly: sumPoly, D1Poly: d1Poly, D2Poly: d2Poly}
	}
	return polys, nil
}
