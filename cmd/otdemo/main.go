// Command otdemo runs the three oblivious-transfer samples (S1, S2, S3)
// end to end over a freshly generated parameter set, reporting bit-sizes,
// per-sample timing, and pass/fail. It exits non-zero on any fatal
// protocol error.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strconv"
	"time"

	"github.com/neopeer/neopeer/internal/otprof"
	"github.com/neopeer/neopeer/otcore"
)

func envInt(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("otdemo: invalid %s=%q: %v", name, v, err)
	}
	return n
}

func main() {
	defaults := otcore.DefaultParams()

	primeBits := flag.Int("primebits", envInt("OT_PRIMEBITS", defaults.PrimeBits), "bits per primelist entry and qprime")
	modulusBits := flag.Int("modulusbits", envInt("OT_MODULUSBITS", defaults.ModulusBits), "target bit-width of n")
	blockCount := flag.Int("blockcount", envInt("OT_BLOCKCOUNT", defaults.BlockCount), "number of data blocks")
	polyCount := flag.Int("polycount", envInt("OT_POLYCOUNT", defaults.PolyCount), "number of signature polynomials (even)")
	sigCoeffMaxBits := flag.Int("sigcoefficientmaxbits", envInt("OT_SIGCOEFFICIENTMAXBITS", defaults.SigCoefficientMaxBits), "max bits for a signature polynomial modulus")
	braidCount := flag.Int("braidcount", envInt("OT_BRAIDCOUNT", defaults.BraidElementCount), "braid element count")
	decodeKeys := flag.String("decodekeys", envString("OT_DECODEKEYS", "abc"), "polynomial signature domain key")
	sanityCheck := flag.Bool("sanitycheck", false, "cross-check S3 carry/fractional split against an independent big.Float computation")
	flag.Parse()

	params, err := otcore.NewParams(otcore.Params{
		PrimeBits:             *primeBits,
		ModulusBits:           *modulusBits,
		BlockCount:            *blockCount,
		PolyCount:             *polyCount,
		BraidElementCount:     *braidCount,
		SigCoefficientMaxBits: *sigCoeffMaxBits,
	})
	if err != nil {
		log.Fatalf("otdemo: params: %v", err)
	}

	fmt.Println("Generating secure primes. Please wait.")
	moduli, err := otcore.NewModuli(rand.Reader, params)
	if err != nil {
		log.Fatalf("otdemo: modulus setup: %v", err)
	}

	fmt.Println("n-size in bits:", moduli.N.BitLen())
	fmt.Println("q-space in bits:", moduli.QSpace.BitLen())
	fmt.Println("coset size in bits:", moduli.Coset.BitLen())

	fmt.Println("Generating blocks. Please wait.")
	blocks, err := otcore.GenerateBlocks(rand.Reader, moduli, params.BlockCount)
	if err != nil {
		log.Fatalf("otdemo: encoding: %v", err)
	}

	runSample1(moduli, blocks)
	runSample2(moduli, blocks)
	runSample3(params, moduli, blocks, *decodeKeys, *sanityCheck)

	for _, e := range otprof.SnapshotAndReset() {
		fmt.Printf("%-12s %s\n", e.Label, e.Total)
	}
}

func envString(name, def string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return def
}

func runSample1(m *otcore.Moduli, blocks []otcore.Block) {
	fmt.Println()
	fmt.Println("Sample 1 -", len(blocks), "blocks... initializing request...")
	bs, err := otcore.NewBlindingState(rand.Reader, m)
	if err != nil {
		log.Fatalf("otdemo: sample1 blinding: %v", err)
	}
	sel, err := otcore.NewSelection(rand.Reader)
	if err != nil {
		log.Fatalf("otdemo: sample1 selection: %v", err)
	}

	fmt.Println("Sample 1 -", len(blocks), "blocks... executing...")
	start := time.Now()
	for i, blk := range blocks {
		resp := otcore.ResponseS1(m, bs, sel, blk)
		decode := otcore.DecodeS1S2(m, bs, resp)
		if err := otcore.CheckDecode(i, decode, blk.Value(sel.SIndex)); err != nil {
			log.Fatalf("otdemo: sample1: %v", err)
		}
	}
	otprof.Track(start, "sample1")
	fmt.Println("Sample 1 -", len(blocks), "blocks... completed in", time.Since(start))
}

func runSample2(m *otcore.Moduli, blocks []otcore.Block) {
	fmt.Println()
	fmt.Println("Sample 2 -", len(blocks), "blocks... initializing request...")
	bs, err := otcore.NewBlindingState(rand.Reader, m)
	if err != nil {
		log.Fatalf("otdemo: sample2 blinding: %v", err)
	}
	sel, err := otcore.NewSelection(rand.Reader)
	if err != nil {
		log.Fatalf("otdemo: sample2 selection: %v", err)
	}
	rs, err := otcore.NewRandomisers(rand.Reader, m, bs, sel)
	if err != nil {
		log.Fatalf("otdemo: sample2 randomisers: %v", err)
	}

	fmt.Println("Sample 2 -", len(blocks), "blocks... executing...")
	start := time.Now()
	for i, blk := range blocks {
		resp := otcore.ResponseS2(m, rs, blk)
		decode := otcore.DecodeS1S2(m, bs, resp)
		if err := otcore.CheckDecode(i, decode, blk.Value(sel.SIndex)); err != nil {
			log.Fatalf("otdemo: sample2: %v", err)
		}
	}
	otprof.Track(start, "sample2")
	fmt.Println("Sample 2 -", len(blocks), "blocks... completed in", time.Since(start))
}

func runSample3(params otcore.Params, m *otcore.Moduli, blocks []otcore.Block, decodeKeys string, sanityCheck bool) {
	fmt.Println()
	fmt.Println("Sample 3 -", len(blocks), "blocks... initializing request and preparing signatures...")
	ctx := otcore.NewContext(params, m, sanityCheck)

	polys, err := otcore.GeneratePolynomials(ctx, decodeKeys, blocks)
	if err != nil {
		log.Fatalf("otdemo: sample3 polysign: %v", err)
	}

	bs, err := otcore.NewBlindingState(rand.Reader, m)
	if err != nil {
		log.Fatalf("otdemo: sample3 blinding: %v", err)
	}
	sel, err := otcore.NewSelection(rand.Reader)
	if err != nil {
		log.Fatalf("otdemo: sample3 selection: %v", err)
	}
	rs, err := otcore.NewRandomisers(rand.Reader, m, bs, sel)
	if err != nil {
		log.Fatalf("otdemo: sample3 randomisers: %v", err)
	}
	carry, err := otcore.NewS3Carry(ctx, m, rs)
	if err != nil {
		log.Fatalf("otdemo: sample3 carry precompute: %v", err)
	}

	fmt.Println("Sample 3 -", len(blocks), "blocks... executing...")
	start := time.Now()
	storedB := make([]*big.Int, len(blocks))
	for i, blk := range blocks {
		b := otcore.ResponseS3(ctx, carry, blk)
		storedB[i] = b
		decode := otcore.DecodeS3(ctx, m, bs, b)
		if err := otcore.CheckDecode(i, decode, blk.Value(sel.SIndex)); err != nil {
			log.Fatalf("otdemo: sample3: %v", err)
		}
	}
	otprof.Track(start, "sample3")
	fmt.Println("Sample 3 -", len(blocks), "blocks... completed in", time.Since(start))

	fmt.Println("Sample 3 -", len(blocks), "verification... executing...")
	vstart := time.Now()
	vcount := params.PolyCount / 2
	vpolys, err := otcore.ChooseIndices(rand.Reader, params.PolyCount, vcount)
	if err != nil {
		log.Fatalf("otdemo: sample3 choosing verification indices: %v", err)
	}
	if err := otcore.VerifyRound(ctx, storedB, polys, vpolys, carry); err != nil {
		log.Fatalf("otdemo: sample3 verification: %v", err)
	}
	otprof.Track(vstart, "verify")
	fmt.Println("Sample 3 -", len(blocks), "verification... completed in", time.Since(vstart))

	fp := otcore.NewTranscript().
		Fold("blockcount", []byte(fmt.Sprint(len(blocks)))).
		Fold("vpolys", []byte(fmt.Sprint(vpolys))).
		Fingerprint(16)
	fmt.Println("transcript fingerprint:", fp)
}
