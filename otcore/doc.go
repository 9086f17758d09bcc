// Package otcore implements the cryptographic core of the neopeer
// oblivious-transfer demo: parameter and modulus construction, the
// blinding/response/decode pipeline for samples 1-3, and the polynomial
// signature and verification scheme that lets a third party confirm a
// prover's responses were derived from the publisher-signed dataset.
//
// The package is single-threaded and synchronous by default (see
// ResponseAllBlocksS3 for the optional bounded worker-pool variant) and
// never calls os.Exit or log.Fatal — every invariant violation is returned
// as a *ProtocolError for the caller to act on.
package otcore
