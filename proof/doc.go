// Package proof implements the NIZK proof machinery of §4.8: Disjunctive
// Chaum-Pedersen (0-or-1 selection proofs), Ranged Chaum-Pedersen (0..L
// contest-tally proofs), Constant Chaum-Pedersen (known-constant proofs),
// and the generic Chaum-Pedersen equality-of-discrete-logs proof used during
// guardian decryption. Every proof follows the same Fiat-Shamir template:
// pick randomness, form a commitment, hash the transcript for a challenge,
// derive a response. Deterministic constructors draw randomness from a
// rand.Nonces stream; non-deterministic constructors draw from rand.GetBytes.
package proof
