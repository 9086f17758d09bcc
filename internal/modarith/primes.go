package modarith

import (
	"io"
	"math/big"
)

var two = big.NewInt(2)

// IsProbablePrime mirrors the reference's isprime(p) = powmod(2,p,p)==2,
// a bare Fermat base-2 test, except that 2 itself (for which
// powmod(2,2,2) is 0) is accepted directly. It is adequate for this demo's
// prime generation and is not a cryptographic-grade primality proof.
func IsProbablePrime(p *big.Int) bool {
	if p.Cmp(two) < 0 {
		return false
	}
	if p.Cmp(two) == 0 {
		return true
	}
	r := PowMod(two, p, p)
	return r.Cmp(two) == 0
}

// NextProbablePrime advances from candidate (inclusive) to the first value
// passing IsProbablePrime.
func NextProbablePrime(candidate *big.Int) *big.Int {
	p := new(big.Int).Set(candidate)
	if p.Sign() < 0 {
		p.SetInt64(0)
	}
	for !IsProbablePrime(p) {
		p.Add(p, big.NewInt(1))
	}
	return p
}

// RandomProbablePrime draws a uniform candidate in [0, 2^bits) and advances
// it to the next probable prime.
func RandomProbablePrime(reader io.Reader, bits int) (*big.Int, error) {
	bound := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	cand, err := RandomBigInt(reader, bound)
	if err != nil {
		return nil, err
	}
	return NextProbablePrime(cand), nil
}

// GenPrimeList draws primeBits-bit probable primes and appends them while
// the accumulated bit-length of the list stays within ceilBits, mirroring
// the reference's genprimes(ceilbits, primebits).
func GenPrimeList(reader io.Reader, ceilBits, primeBits int) ([]*big.Int, error) {
	var primes []*big.Int
	totalBits := 0
	for {
		p, err := RandomProbablePrime(reader, primeBits)
		if err != nil {
			return nil, err
		}
		pbits := p.BitLen()
		if totalBits+pbits > ceilBits {
			break
		}
		totalBits += pbits
		primes = append(primes, p)
	}
	return primes, nil
}
