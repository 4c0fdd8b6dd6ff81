// Package rand provides the two entropy primitives the core depends on:
// Random, a one-shot HMAC-DRBG-backed secure byte generator seeded from the
// OS entropy source, and Nonces, a deterministic, restartable sequence of
// ElementModQ values derived from a seed (§4.4).
package rand
