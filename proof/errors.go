package proof

import "errors"

// ErrInvalidPlaintext is returned by disjunctive proof construction when the
// witnessed plaintext is not 0 or 1 (§7, "vote outside {0,1}").
var ErrInvalidPlaintext = errors.New("proof: disjunctive proof plaintext must be 0 or 1")

// ErrWitnessOutOfRange is returned by ranged proof construction when the
// witnessed count falls outside [0, L].
var ErrWitnessOutOfRange = errors.New("proof: ranged proof witness out of [0, L]")
