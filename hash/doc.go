// Package hash implements the Fiat-Shamir oracle shared by every proof and
// derived-hash computation in the core: a SHA-256 streaming hash over a
// tagged, delimited, heterogeneous sequence of values, reduced into the
// subgroup order Q. Every challenge value in C8 and every derived hash in
// the ballot pipeline (C9) depends on this package producing byte-identical
// output across implementations.
package hash
