package modarith

import (
	"math/big"
	"testing"
)

func TestRandomBigIntInRange(t *testing.T) {
	r := &detReader{seed: 3}
	max := big.NewInt(1000)
	for i := 0; i < 20; i++ {
		v, err := RandomBigInt(r, max)
		if err != nil {
			t.Fatalf("RandomBigInt: %v", err)
		}
		if v.Sign() < 0 || v.Cmp(max) >= 0 {
			t.Fatalf("RandomBigInt returned %s, out of [0,%s)", v, max)
		}
	}
}

func TestRandomBigIntRejectsNonPositiveMax(t *testing.T) {
	if _, err := RandomBigInt(nil, big.NewInt(0)); err == nil {
		t.Fatalf("RandomBigInt(max=0) should fail")
	}
	if _, err := RandomBigInt(nil, big.NewInt(-5)); err == nil {
		t.Fatalf("RandomBigInt(max=-5) should fail")
	}
}
