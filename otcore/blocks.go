package otcore

import (
	"io"
	"math/big"

	"github.com/neopeer/neopeer/internal/modarith"
)

// Block is one immutable unit of publisher data: three drawn values with
// d0 boosted by +encodingrange so that d0 > d1, d0 > d2, plus the derived
// (SUM, D1, D2) triple the rest of the pipeline actually operates on.
type Block struct {
	D0, D1Raw, D2Raw *big.Int
	SUM, D1, D2      *big.Int
}

// Value returns the raw plaintext the requester obtains for selection
// sindex in {0,1,2}.
func (b Block) Value(sindex int) *big.Int {
	switch sindex {
	case 0:
		return b.D0
	case 1:
		return b.D1Raw
	case 2:
		return b.D2Raw
	default:
		panic("otcore: Block.Value: sindex must be 0, 1, or 2")
	}
}

// GenerateBlocks runs DataEncoder: it draws count independent triples and
// publishes their derived (SUM, D1, D2) form.
func GenerateBlocks(reader io.Reader, m *Moduli, count int) ([]Block, error) {
	blocks := make([]Block, count)
	for i := 0; i < count; i++ {
		d0Raw, err := modarith.RandomBigInt(reader, m.EncodingRange)
		if err != nil {
			return nil, err
		}
		d0 := new(big.Int).Add(d0Raw, m.EncodingRange)
		d1, err := modarith.RandomBigInt(reader, m.EncodingRange)
		if err != nil {
			return nil, err
		}
		d2, err := modarith.RandomBigInt(reader, m.EncodingRange)
		if err != nil {
			return nil, err
		}
		if d0.Cmp(m.Primes) > 0 {
			return nil, &ProtocolError{
				Kind:       KindEncodingOverflow,
				BlockIndex: i,
				Left:       d0,
				Right:      m.Primes,
				Msg:        "d0 exceeds private modulus",
			}
		}

		sum := new(big.Int).Add(d0, d1)
		sum.Add(sum, d2)
		diff1 := new(big.Int).Sub(d0, d1)
		diff2 := new(big.Int).Sub(d0, d2)

		blocks[i] = Block{
			D0: d0, D1Raw: d1, D2Raw: d2,
			SUM: sum, D1: diff1, D2: diff2,
		}
	}
	return blocks, nil
}
