package otcore

import "math/big"

// DecodeS1S2 unblinds a Sample-1 or Sample-2 response.
func DecodeS1S2(m *Moduli, bs *BlindingState, response *big.Int) *big.Int {
	decode := new(big.Int).Mul(response, bs.Unblind)
	decode.Mod(decode, m.Primes)
	return decode
}

// DecodeS3 unblinds a Sample-3 packed response B.
func DecodeS3(ctx *Context, m *Moduli, bs *BlindingState, b *big.Int) *big.Int {
	pow2Mask := new(big.Int).Sub(ctx.Pow2, one)

	decode := sigunpad(ctx, b)
	pow2MinusN := new(big.Int).Sub(ctx.Pow2, m.N)
	decode.Mul(decode, pow2MinusN)
	decode.And(decode, pow2Mask)

	decode.Mul(decode, bs.Unblind)
	decode.Mod(decode, m.Primes)
	return decode
}

// CheckDecode compares a decoded value against the requester's expected
// plaintext and raises a tagged ProtocolError on mismatch, giving callers a
// single typed self-test instead of each re-deriving the comparison.
func CheckDecode(blockIndex int, got, want *big.Int) error {
	if got.Cmp(want) == 0 {
		return nil
	}
	return &ProtocolError{
		Kind:       KindDecodeMismatch,
		BlockIndex: blockIndex,
		Left:       got,
		Right:      want,
		Msg:        "decoded value does not match the expected plaintext",
	}
}
