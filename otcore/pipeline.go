package otcore

import (
	"math/big"
	"runtime"
	"sync"
)

// ResponseAllBlocksS3Sequential computes the Sample-3 response for every
// block in ascending index order. cmd/otdemo does not call it; it runs the
// same per-block ResponseS3 loop inline. cmd/otsweep uses
// ResponseAllBlocksS3.
func ResponseAllBlocksS3Sequential(ctx *Context, carry *S3Carry, blocks []Block) []*big.Int {
	out := make([]*big.Int, len(blocks))
	for i, blk := range blocks {
		out[i] = ResponseS3(ctx, carry, blk)
	}
	return out
}

// ResponseAllBlocksS3 fans per-block ResponseS3 calls out across a bounded
// worker pool. Each worker writes directly into out[i] by index, so the
// result is bit-for-bit identical to ResponseAllBlocksS3Sequential — the
// ascending block-index accumulation order the Verifier's Horner
// accumulator depends on is preserved regardless of scheduling order.
func ResponseAllBlocksS3(ctx *Context, carry *S3Carry, blocks []Block) []*big.Int {
	n := len(blocks)
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return ResponseAllBlocksS3Sequential(ctx, carry, blocks)
	}

	out := make([]*big.Int, n)
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = ResponseS3(ctx, carry, blocks[i])
			}
		}(start, end)
	}
	wg.Wait()
	return out
}
