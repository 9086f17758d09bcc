package modarith

import (
	"errors"
	"math/big"
)

// PowMod returns base^exp mod m. exp must be non-negative; m must be > 0.
func PowMod(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}

// LCM returns the least common multiple of a and b. If either argument is
// zero, the other one is returned.
func LCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int).Set(b)
	}
	if b.Sign() == 0 {
		return new(big.Int).Set(a)
	}
	g := GCD(a, b)
	l := new(big.Int).Mul(a, b)
	l.Div(l, g)
	return new(big.Int).Abs(l)
}

// Inverse returns a^-1 mod m, erroring when a and m are not coprime.
func Inverse(a, m *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, errors.New("modarith: inverse does not exist (gcd != 1)")
	}
	return inv, nil
}

// CRT performs Garner recomposition of residues given pairwise-coprime
// moduli: it returns the unique x in [0, prod(moduli)) with
// x ≡ residues[i] (mod moduli[i]) for every i.
func CRT(residues, moduli []*big.Int) (*big.Int, error) {
	if len(residues) == 0 || len(residues) != len(moduli) {
		return nil, errors.New("modarith: CRT requires matching non-empty residues/moduli")
	}
	x := new(big.Int).Mod(residues[0], moduli[0])
	M := new(big.Int).Set(moduli[0])
	for i := 1; i < len(residues); i++ {
		t := new(big.Int).Sub(residues[i], x)
		t.Mod(t, moduli[i])
		inv, err := Inverse(M, moduli[i])
		if err != nil {
			return nil, err
		}
		t.Mul(t, inv)
		t.Mod(t, moduli[i])
		t.Mul(t, M)
		x.Add(x, t)
		M.Mul(M, moduli[i])
	}
	return x, nil
}

// PowModCRT computes base^exp mod prod(primelist) by reducing the exponent
// modulo each (p-1), raising per-prime, then CRT-combining — the
// acceleration the blinding engine relies on instead of one huge modexp.
func PowModCRT(base, exp *big.Int, primelist []*big.Int) (*big.Int, error) {
	residues := make([]*big.Int, len(primelist))
	for i, p := range primelist {
		pm1 := new(big.Int).Sub(p, big.NewInt(1))
		se := new(big.Int).Mod(exp, pm1)
		residues[i] = PowMod(base, se, p)
	}
	return CRT(residues, primelist)
}

// InverseCRT computes v^-1 mod prod(primelist) via per-prime inverses
// combined by CRT.
func InverseCRT(v *big.Int, primelist []*big.Int) (*big.Int, error) {
	residues := make([]*big.Int, len(primelist))
	for i, p := range primelist {
		inv, err := Inverse(v, p)
		if err != nil {
			return nil, err
		}
		residues[i] = inv
	}
	return CRT(residues, primelist)
}
