package modarith

import (
	"math/big"
	"testing"
)

func TestCRTSmallExample(t *testing.T) {
	x, err := CRT([]*big.Int{big.NewInt(2), big.NewInt(3)}, []*big.Int{big.NewInt(5), big.NewInt(7)})
	if err != nil {
		t.Fatalf("CRT: %v", err)
	}
	if x.Cmp(big.NewInt(17)) != 0 {
		t.Fatalf("CRT([2,3],[5,7]) = %s, want 17", x)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	a := big.NewInt(17)
	m := big.NewInt(3233)
	inv, err := Inverse(a, m)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	prod := new(big.Int).Mul(a, inv)
	prod.Mod(prod, m)
	if prod.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("a*inv mod m = %s, want 1", prod)
	}
}

func TestInverseRejectsNonCoprime(t *testing.T) {
	if _, err := Inverse(big.NewInt(4), big.NewInt(8)); err == nil {
		t.Fatalf("Inverse(4,8) should fail: gcd is 4")
	}
}

func TestLCMAndGCD(t *testing.T) {
	if got := GCD(big.NewInt(24), big.NewInt(36)); got.Cmp(big.NewInt(12)) != 0 {
		t.Fatalf("GCD(24,36) = %s, want 12", got)
	}
	if got := LCM(big.NewInt(4), big.NewInt(6)); got.Cmp(big.NewInt(12)) != 0 {
		t.Fatalf("LCM(4,6) = %s, want 12", got)
	}
}

func TestPowModCRTMatchesDirectExponentiation(t *testing.T) {
	primelist := []*big.Int{big.NewInt(11), big.NewInt(13), big.NewInt(17)}
	base := big.NewInt(5)
	exp := big.NewInt(1234567)

	got, err := PowModCRT(base, exp, primelist)
	if err != nil {
		t.Fatalf("PowModCRT: %v", err)
	}

	n := big.NewInt(1)
	for _, p := range primelist {
		n.Mul(n, p)
	}
	want := PowMod(base, exp, n)
	if got.Cmp(want) != 0 {
		t.Fatalf("PowModCRT = %s, want %s", got, want)
	}
}

func TestInverseCRTMatchesDirectInverse(t *testing.T) {
	primelist := []*big.Int{big.NewInt(11), big.NewInt(13), big.NewInt(17)}
	v := big.NewInt(37)

	got, err := InverseCRT(v, primelist)
	if err != nil {
		t.Fatalf("InverseCRT: %v", err)
	}

	n := big.NewInt(1)
	for _, p := range primelist {
		n.Mul(n, p)
	}
	want, err := Inverse(v, n)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	if got.Cmp(want) != 0 {
		t.Fatalf("InverseCRT = %s, want %s", got, want)
	}
}
