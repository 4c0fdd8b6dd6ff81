// Package precompute implements the producer/consumer buffer of
// pre-generated exponentiation values described in §4.7: a context (one per
// New call) bound to a single public key, holding two bounded FIFO queues —
// one of encryption triples, one of disjunctive-proof quadruples (bundled
// with their companion triples into a PrecomputedSelection) — so the ballot
// pipeline can encrypt selections without performing modular
// exponentiations on the critical path.
package precompute
