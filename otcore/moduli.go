package otcore

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/neopeer/neopeer/internal/modarith"
)

// Moduli is the read-only output of PrimeSetup: the prime list, the extra
// prime qprime, and every quantity derived from them.
type Moduli struct {
	PrimeList     []*big.Int
	QPrime        *big.Int
	Primes        *big.Int
	N             *big.Int
	Coset         *big.Int
	QSpace        *big.Int
	EncodingRange *big.Int
}

// NewModuli runs PrimeSetup: it draws primelist and qprime from reader
// (crypto/rand.Reader in production) and derives the composite modulus n,
// the coset and qspace lifetimes, and the encoding range.
func NewModuli(reader io.Reader, params Params) (*Moduli, error) {
	primelist, err := modarith.GenPrimeList(reader, params.ModulusBits-params.PrimeBits, params.PrimeBits)
	if err != nil {
		return nil, fmt.Errorf("otcore: generating primelist: %w", err)
	}
	if len(primelist) == 0 {
		return nil, errors.New("otcore: primelist generation produced no primes; ModulusBits too close to PrimeBits")
	}
	qprime, err := modarith.RandomProbablePrime(reader, params.PrimeBits)
	if err != nil {
		return nil, fmt.Errorf("otcore: generating qprime: %w", err)
	}

	coset := new(big.Int).Sub(primelist[0], one)
	for i := 1; i < len(primelist); i++ {
		pm1 := new(big.Int).Sub(primelist[i], one)
		coset = modarith.LCM(coset, pm1)
	}

	qpm1 := new(big.Int).Sub(qprime, one)
	lcmAll := modarith.LCM(coset, qpm1)
	qspace := new(big.Int).Div(lcmAll, coset) // floor division keeps qspace*coset from overshooting lcmAll

	primes := big.NewInt(1)
	for _, p := range primelist {
		primes.Mul(primes, p)
	}
	n := new(big.Int).Mul(primes, qprime)

	diff := params.ModulusBits - params.PrimeBits
	encExp := diff - 2*(diff/params.PrimeBits)
	if encExp < 0 {
		encExp = 0
	}
	encodingRange := new(big.Int).Lsh(one, uint(encExp))

	if n.BitLen() > params.ModulusBits {
		return nil, &ProtocolError{
			Kind:       KindModulusOverflow,
			BlockIndex: -1,
			Left:       n,
			Right:      new(big.Int).Lsh(one, uint(params.ModulusBits)),
			Msg:        "n = primes*qprime exceeds 2^ModulusBits",
		}
	}

	return &Moduli{
		PrimeList:     primelist,
		QPrime:        qprime,
		Primes:        primes,
		N:             n,
		Coset:         coset,
		QSpace:        qspace,
		EncodingRange: encodingRange,
	}, nil
}
