package otcore

import "crypto/sha256"

// detReader is a deterministic byte stream used only to pin test fixtures;
// protocol code always draws from crypto/rand.Reader. It is a SHA-256
// counter-mode stream, never math/rand.
type detReader struct {
	seed    uint64
	counter uint64
	buf     []byte
}

func newDetReader(seed uint64) *detReader {
	return &detReader{seed: seed}
}

func (r *detReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.buf) == 0 {
			var in [16]byte
			for i := 0; i < 8; i++ {
				in[i] = byte(r.seed >> (8 * i))
				in[8+i] = byte(r.counter >> (8 * i))
			}
			sum := sha256.Sum256(in[:])
			r.buf = append([]byte(nil), sum[:]...)
			r.counter++
		}
		c := copy(p[n:], r.buf)
		r.buf = r.buf[c:]
		n += c
	}
	return n, nil
}

func smallParams() Params {
	p, err := NewParams(Params{
		PrimeBits:             16,
		ModulusBits:           160,
		BlockCount:            6,
		PolyCount:             4,
		BraidElementCount:     3,
		SigCoefficientMaxBits: 10,
	})
	if err != nil {
		panic(err)
	}
	return p
}
