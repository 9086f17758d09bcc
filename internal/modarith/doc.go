// Package modarith implements the small number-theoretic primitives the
// oblivious-transfer core is built from: modular exponentiation, extended
// Euclidean inverse, gcd/lcm, Garner's CRT reconstruction, and Fermat-base-2
// probable-prime generation. These are standard utilities; callers in
// package otcore treat them as contract-level building blocks, not as part
// of the protocol's own design surface.
package modarith
