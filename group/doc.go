// Package group implements fixed-width modular arithmetic over the two
// prime fields used by the encryption core: a large prime field P (for
// group elements) and a prime-order subgroup Q (for exponents). It exposes
// ElementModP and ElementModQ as semantic, bounds-checked value types, a
// BigNum-style arithmetic facade with a Montgomery acceleration context, a
// fixed-base exponent lookup table used by PowModP, and a memoized
// discrete-log search.
package group
