package otcore

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Transcript folds a request's public shape into a SHAKE-256 digest for use
// as a human debug correlation id. It never touches the protocol's own
// SHA-256 hash boundary and never folds in a selection index or plaintext
// value — it is observability only.
type Transcript struct {
	h sha3.ShakeHash
}

// NewTranscript starts a fresh transcript.
func NewTranscript() *Transcript {
	return &Transcript{h: sha3.NewShake256()}
}

// Fold mixes a labelled part into the transcript.
func (t *Transcript) Fold(label string, part []byte) *Transcript {
	t.h.Write([]byte(label))
	t.h.Write(part)
	return t
}

// Fingerprint squeezes n bytes and renders them as hex.
func (t *Transcript) Fingerprint(n int) string {
	out := make([]byte, n)
	t.h.Read(out)
	return hex.EncodeToString(out)
}
