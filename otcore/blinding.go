package otcore

import (
	"io"
	"math/big"

	"github.com/neopeer/neopeer/internal/modarith"
)

// BlindingState is the per-request CRT-accelerated blinding material drawn
// by BlindingEngine: a single random exponent b and the powers/inverses of
// 2^b and 3 it implies.
type BlindingState struct {
	B       *big.Int
	Blind   *big.Int
	IBlind  *big.Int
	I3      *big.Int
	Unblind *big.Int
}

// NewBlindingState draws b uniformly in [0, coset) and computes blind,
// iblind, i3 and unblind via CRT acceleration over m.PrimeList.
func NewBlindingState(reader io.Reader, m *Moduli) (*BlindingState, error) {
	b, err := modarith.RandomBigInt(reader, m.Coset)
	if err != nil {
		return nil, err
	}
	blind, err := modarith.PowModCRT(two, b, m.PrimeList)
	if err != nil {
		return nil, &ProtocolError{Kind: KindInverseFailure, BlockIndex: -1, Msg: "powmodCRT(2,b): " + err.Error()}
	}
	iblind, err := modarith.InverseCRT(blind, m.PrimeList)
	if err != nil {
		return nil, &ProtocolError{Kind: KindInverseFailure, BlockIndex: -1, Msg: "inverseCRT(blind): " + err.Error()}
	}
	i3, err := modarith.InverseCRT(three, m.PrimeList)
	if err != nil {
		return nil, &ProtocolError{Kind: KindInverseFailure, BlockIndex: -1, Msg: "inverseCRT(3): " + err.Error()}
	}
	unblind := new(big.Int).Mul(iblind, i3)
	unblind.Mod(unblind, m.Primes)

	return &BlindingState{B: b, Blind: blind, IBlind: iblind, I3: i3, Unblind: unblind}, nil
}

// Selection is the requester's choice of which of the three block values to
// retrieve, and the derived (s1, s2) sign pattern that hides it.
type Selection struct {
	SIndex int
	S1, S2 *big.Int
}

// NewSelection draws a uniform index in {0,1,2} and derives (s1,s2).
func NewSelection(reader io.Reader) (*Selection, error) {
	idx, err := modarith.RandomBigInt(reader, big.NewInt(3))
	if err != nil {
		return nil, err
	}
	sindex := int(idx.Int64())
	s1 := big.NewInt(1)
	s2 := big.NewInt(1)
	switch sindex {
	case 1:
		s1 = big.NewInt(-2)
	case 2:
		s2 = big.NewInt(-2)
	}
	return &Selection{SIndex: sindex, S1: s1, S2: s2}, nil
}

// Randomisers holds the S2/S3 blinding coefficients b0,b1,b2 — congruent
// to BlindingState.Blind, Blind·s1 and Blind·s2 modulo primes, but
// scrambled modulo qprime by riqpow, and combined modulo n via CRT.
type Randomisers struct {
	B0, B1, B2 *big.Int
}

// NewRandomisers draws r0q,r1q,r2q in [0,qspace) and builds b0,b1,b2 by
// CRT-combining the Primes-side blinding value with a qprime-side power
// scrambled by each draw, applying the selection signs to b1 and b2.
func NewRandomisers(reader io.Reader, m *Moduli, bs *BlindingState, sel *Selection) (*Randomisers, error) {
	qpm1 := new(big.Int).Sub(m.QPrime, one)

	riqpow := func() (*big.Int, error) {
		rq, err := modarith.RandomBigInt(reader, m.QSpace)
		if err != nil {
			return nil, err
		}
		e := new(big.Int).Mul(m.Coset, rq)
		e.Add(e, bs.B)
		e.Mod(e, qpm1)
		return modarith.PowMod(two, e, m.QPrime), nil
	}

	r0qpow, err := riqpow()
	if err != nil {
		return nil, err
	}
	r1qpow, err := riqpow()
	if err != nil {
		return nil, err
	}
	r2qpow, err := riqpow()
	if err != nil {
		return nil, err
	}

	b0, err := modarith.CRT([]*big.Int{bs.Blind, r0qpow}, []*big.Int{m.Primes, m.QPrime})
	if err != nil {
		return nil, &ProtocolError{Kind: KindInverseFailure, BlockIndex: -1, Msg: "CRT(b0): " + err.Error()}
	}
	b1c, err := modarith.CRT([]*big.Int{bs.Blind, r1qpow}, []*big.Int{m.Primes, m.QPrime})
	if err != nil {
		return nil, &ProtocolError{Kind: KindInverseFailure, BlockIndex: -1, Msg: "CRT(b1): " + err.Error()}
	}
	b2c, err := modarith.CRT([]*big.Int{bs.Blind, r2qpow}, []*big.Int{m.Primes, m.QPrime})
	if err != nil {
		return nil, &ProtocolError{Kind: KindInverseFailure, BlockIndex: -1, Msg: "CRT(b2): " + err.Error()}
	}

	b1 := new(big.Int).Mul(b1c, sel.S1)
	b1.Mod(b1, m.N)
	b2 := new(big.Int).Mul(b2c, sel.S2)
	b2.Mod(b2, m.N)

	return &Randomisers{B0: b0, B1: b1, B2: b2}, nil
}
