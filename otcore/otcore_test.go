package otcore

import (
	"math/big"
	"testing"
)

func setupModuli(t *testing.T, seed uint64) (Params, *Moduli) {
	t.Helper()
	params := smallParams()
	moduli, err := NewModuli(newDetReader(seed), params)
	if err != nil {
		t.Fatalf("NewModuli: %v", err)
	}
	return params, moduli
}

func TestBlindInverseIdentity(t *testing.T) {
	_, m := setupModuli(t, 1)
	bs, err := NewBlindingState(newDetReader(2), m)
	if err != nil {
		t.Fatalf("NewBlindingState: %v", err)
	}
	for _, p := range m.PrimeList {
		prod := new(big.Int).Mul(bs.Blind, bs.IBlind)
		prod.Mod(prod, p)
		if prod.Cmp(one) != 0 {
			t.Fatalf("blind*iblind != 1 mod %s: got %s", p, prod)
		}
		prod3 := new(big.Int).Mul(three, bs.I3)
		prod3.Mod(prod3, p)
		if prod3.Cmp(one) != 0 {
			t.Fatalf("3*i3 != 1 mod %s: got %s", p, prod3)
		}
	}
}

func TestDecodeS1RoundTrip(t *testing.T) {
	_, m := setupModuli(t, 10)
	blocks, err := GenerateBlocks(newDetReader(11), m, 5)
	if err != nil {
		t.Fatalf("GenerateBlocks: %v", err)
	}
	bs, err := NewBlindingState(newDetReader(12), m)
	if err != nil {
		t.Fatalf("NewBlindingState: %v", err)
	}
	sel, err := NewSelection(newDetReader(13))
	if err != nil {
		t.Fatalf("NewSelection: %v", err)
	}
	for i, blk := range blocks {
		resp := ResponseS1(m, bs, sel, blk)
		got := DecodeS1S2(m, bs, resp)
		want := new(big.Int).Mod(blk.Value(sel.SIndex), m.Primes)
		if got.Cmp(want) != 0 {
			t.Fatalf("block %d: got %s want %s", i, got, want)
		}
	}
}

func TestDecodeS2RoundTrip(t *testing.T) {
	_, m := setupModuli(t, 20)
	blocks, err := GenerateBlocks(newDetReader(21), m, 5)
	if err != nil {
		t.Fatalf("GenerateBlocks: %v", err)
	}
	bs, err := NewBlindingState(newDetReader(22), m)
	if err != nil {
		t.Fatalf("NewBlindingState: %v", err)
	}
	sel, err := NewSelection(newDetReader(23))
	if err != nil {
		t.Fatalf("NewSelection: %v", err)
	}
	rs, err := NewRandomisers(newDetReader(24), m, bs, sel)
	if err != nil {
		t.Fatalf("NewRandomisers: %v", err)
	}
	for i, blk := range blocks {
		resp := ResponseS2(m, rs, blk)
		got := DecodeS1S2(m, bs, resp)
		want := new(big.Int).Mod(blk.Value(sel.SIndex), m.Primes)
		if got.Cmp(want) != 0 {
			t.Fatalf("block %d: got %s want %s", i, got, want)
		}
	}
}

func TestDecodeS3MatchesS1(t *testing.T) {
	params, m := setupModuli(t, 30)
	blocks, err := GenerateBlocks(newDetReader(31), m, 5)
	if err != nil {
		t.Fatalf("GenerateBlocks: %v", err)
	}
	bs, err := NewBlindingState(newDetReader(32), m)
	if err != nil {
		t.Fatalf("NewBlindingState: %v", err)
	}
	sel, err := NewSelection(newDetReader(33))
	if err != nil {
		t.Fatalf("NewSelection: %v", err)
	}
	rs, err := NewRandomisers(newDetReader(34), m, bs, sel)
	if err != nil {
		t.Fatalf("NewRandomisers: %v", err)
	}
	ctx := NewContext(params, m, true)
	carry, err := NewS3Carry(ctx, m, rs)
	if err != nil {
		t.Fatalf("NewS3Carry: %v", err)
	}

	s1resp := ResponseS1(m, bs, sel, blocks[0])
	s1decode := DecodeS1S2(m, bs, s1resp)

	for i, blk := range blocks {
		b := ResponseS3(ctx, carry, blk)
		got := DecodeS3(ctx, m, bs, b)
		want := new(big.Int).Mod(blk.Value(sel.SIndex), m.Primes)
		if got.Cmp(want) != 0 {
			t.Fatalf("block %d: got %s want %s", i, got, want)
		}
	}

	want0 := new(big.Int).Mod(blocks[0].Value(sel.SIndex), m.Primes)
	if s1decode.Cmp(want0) != 0 {
		t.Fatalf("sample1 sanity decode mismatch: got %s want %s", s1decode, want0)
	}
}

func TestSigPadUnpadRoundTrip(t *testing.T) {
	params, m := setupModuli(t, 40)
	ctx := NewContext(params, m, false)
	x := big.NewInt(123456789)
	padded := sigpad(ctx, x)
	unpadded := sigunpad(ctx, padded)
	if unpadded.Cmp(x) != 0 {
		t.Fatalf("sigunpad(sigpad(x)) = %s, want %s", unpadded, x)
	}
}

func TestChooseIndicesDistinct(t *testing.T) {
	idx, err := ChooseIndices(newDetReader(50), 8, 4)
	if err != nil {
		t.Fatalf("ChooseIndices: %v", err)
	}
	if len(idx) != 4 {
		t.Fatalf("got %d indices, want 4", len(idx))
	}
	seen := map[int]bool{}
	for _, i := range idx {
		if i < 0 || i >= 8 {
			t.Fatalf("index %d out of range", i)
		}
		if seen[i] {
			t.Fatalf("duplicate index %d", i)
		}
		seen[i] = true
	}
}

func TestVerifyRoundAcceptsHonestTranscript(t *testing.T) {
	params, m := setupModuli(t, 60)
	blocks, err := GenerateBlocks(newDetReader(61), m, params.BlockCount)
	if err != nil {
		t.Fatalf("GenerateBlocks: %v", err)
	}
	bs, err := NewBlindingState(newDetReader(62), m)
	if err != nil {
		t.Fatalf("NewBlindingState: %v", err)
	}
	sel, err := NewSelection(newDetReader(63))
	if err != nil {
		t.Fatalf("NewSelection: %v", err)
	}
	rs, err := NewRandomisers(newDetReader(64), m, bs, sel)
	if err != nil {
		t.Fatalf("NewRandomisers: %v", err)
	}
	ctx := NewContext(params, m, false)
	carry, err := NewS3Carry(ctx, m, rs)
	if err != nil {
		t.Fatalf("NewS3Carry: %v", err)
	}
	polys, err := GeneratePolynomials(ctx, "test-domain", blocks)
	if err != nil {
		t.Fatalf("GeneratePolynomials: %v", err)
	}

	storedB := ResponseAllBlocksS3Sequential(ctx, carry, blocks)
	vpolys, err := ChooseIndices(newDetReader(65), params.PolyCount, params.PolyCount/2)
	if err != nil {
		t.Fatalf("ChooseIndices: %v", err)
	}
	if err := VerifyRound(ctx, storedB, polys, vpolys, carry); err != nil {
		t.Fatalf("VerifyRound rejected an honest transcript: %v", err)
	}
}

func TestVerifyRoundRejectsMutatedResponse(t *testing.T) {
	params, m := setupModuli(t, 70)
	blocks, err := GenerateBlocks(newDetReader(71), m, params.BlockCount)
	if err != nil {
		t.Fatalf("GenerateBlocks: %v", err)
	}
	bs, err := NewBlindingState(newDetReader(72), m)
	if err != nil {
		t.Fatalf("NewBlindingState: %v", err)
	}
	sel, err := NewSelection(newDetReader(73))
	if err != nil {
		t.Fatalf("NewSelection: %v", err)
	}
	rs, err := NewRandomisers(newDetReader(74), m, bs, sel)
	if err != nil {
		t.Fatalf("NewRandomisers: %v", err)
	}
	ctx := NewContext(params, m, false)
	carry, err := NewS3Carry(ctx, m, rs)
	if err != nil {
		t.Fatalf("NewS3Carry: %v", err)
	}
	polys, err := GeneratePolynomials(ctx, "test-domain", blocks)
	if err != nil {
		t.Fatalf("GeneratePolynomials: %v", err)
	}

	storedB := ResponseAllBlocksS3Sequential(ctx, carry, blocks)
	storedB[0] = new(big.Int).Xor(storedB[0], one)

	vpolys, err := ChooseIndices(newDetReader(75), params.PolyCount, params.PolyCount/2)
	if err != nil {
		t.Fatalf("ChooseIndices: %v", err)
	}
	err = VerifyRound(ctx, storedB, polys, vpolys, carry)
	if err == nil {
		t.Fatalf("VerifyRound accepted a tampered response")
	}
	pe, ok := err.(*ProtocolError)
	if !ok {
		t.Fatalf("expected *ProtocolError, got %T", err)
	}
	if pe.Kind != KindVerifierMismatch {
		t.Fatalf("expected KindVerifierMismatch, got %v", pe.Kind)
	}
}

func TestParallelResponseMatchesSequential(t *testing.T) {
	params, m := setupModuli(t, 80)
	blocks, err := GenerateBlocks(newDetReader(81), m, params.BlockCount)
	if err != nil {
		t.Fatalf("GenerateBlocks: %v", err)
	}
	bs, err := NewBlindingState(newDetReader(82), m)
	if err != nil {
		t.Fatalf("NewBlindingState: %v", err)
	}
	sel, err := NewSelection(newDetReader(83))
	if err != nil {
		t.Fatalf("NewSelection: %v", err)
	}
	rs, err := NewRandomisers(newDetReader(84), m, bs, sel)
	if err != nil {
		t.Fatalf("NewRandomisers: %v", err)
	}
	ctx := NewContext(params, m, false)
	carry, err := NewS3Carry(ctx, m, rs)
	if err != nil {
		t.Fatalf("NewS3Carry: %v", err)
	}

	seq := ResponseAllBlocksS3Sequential(ctx, carry, blocks)
	par := ResponseAllBlocksS3(ctx, carry, blocks)
	if len(seq) != len(par) {
		t.Fatalf("length mismatch: seq=%d par=%d", len(seq), len(par))
	}
	for i := range seq {
		if seq[i].Cmp(par[i]) != 0 {
			t.Fatalf("block %d: sequential %s != parallel %s", i, seq[i], par[i])
		}
	}
}

func TestCheckDecode(t *testing.T) {
	if err := CheckDecode(3, big.NewInt(42), big.NewInt(42)); err != nil {
		t.Fatalf("CheckDecode on matching values returned %v, want nil", err)
	}

	err := CheckDecode(3, big.NewInt(42), big.NewInt(41))
	if err == nil {
		t.Fatalf("CheckDecode on mismatching values returned nil, want an error")
	}
	pe, ok := err.(*ProtocolError)
	if !ok {
		t.Fatalf("expected *ProtocolError, got %T", err)
	}
	if pe.Kind != KindDecodeMismatch {
		t.Fatalf("expected KindDecodeMismatch, got %v", pe.Kind)
	}
	if pe.BlockIndex != 3 {
		t.Fatalf("expected BlockIndex 3, got %d", pe.BlockIndex)
	}
}

func TestHashIntFramingAvoidsConcatenationAmbiguity(t *testing.T) {
	a := HashInt("ab", "c")
	b := HashInt("a", "bc")
	if a.Cmp(b) == 0 {
		t.Fatalf("HashInt(\"ab\",\"c\") collided with HashInt(\"a\",\"bc\")")
	}
	if HashInt("x", "y").Cmp(HashInt("x", "y")) != 0 {
		t.Fatalf("HashInt is not deterministic")
	}
}
