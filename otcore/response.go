package otcore

import "math/big"

// ResponseS1 computes the Sample-1 prover response mod primes.
func ResponseS1(m *Moduli, bs *BlindingState, sel *Selection, blk Block) *big.Int {
	b1 := new(big.Int).Mul(bs.Blind, sel.S1)
	b1.Mod(b1, m.Primes)
	b2 := new(big.Int).Mul(bs.Blind, sel.S2)
	b2.Mod(b2, m.Primes)

	resp := new(big.Int).Mul(bs.Blind, blk.SUM)
	resp.Add(resp, new(big.Int).Mul(b1, blk.D1))
	resp.Add(resp, new(big.Int).Mul(b2, blk.D2))
	resp.Mod(resp, m.Primes)
	return resp
}

// ResponseS2 computes the Sample-2 prover response mod n using the
// randomised blinding coefficients.
func ResponseS2(m *Moduli, r *Randomisers, blk Block) *big.Int {
	resp := new(big.Int).Mul(r.B0, blk.SUM)
	resp.Add(resp, new(big.Int).Mul(r.B1, blk.D1))
	resp.Add(resp, new(big.Int).Mul(r.B2, blk.D2))
	resp.Mod(resp, m.N)
	return resp
}
