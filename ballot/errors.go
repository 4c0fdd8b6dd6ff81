package ballot

import "errors"

// ErrUnknownBallotStyle is returned when encryptBallot is given a ballot
// whose style does not exist in the internal manifest (§4.9, "Errors when
// the ballot style is unknown").
var ErrUnknownBallotStyle = errors.New("ballot: unknown ballot style")

// ErrNonceWithPrecompute is returned when a caller-supplied nonce is
// combined with usePrecompute=true: precomputed values are independent of
// the nonce tree and would silently break determinism (§9, "Deterministic
// precompute conflict").
var ErrNonceWithPrecompute = errors.New("ballot: cannot combine a caller-supplied nonce with usePrecompute")

// ErrOvervote is returned when a contest exceeds its selection limit and
// allowOvervotes is false (§4.9, "Overvote handling").
var ErrOvervote = errors.New("ballot: contest exceeds its selection limit")

// ErrInvalidEncryption is returned when verifyProofs is set and the
// assembled ballot fails self-validation (§4.9, step 9; §7).
var ErrInvalidEncryption = errors.New("ballot: assembled ballot failed self-validation")

// ErrAlreadyFinalized is returned by Cast/Spoil/Challenge when the ballot is
// already in a terminal state (§3, §8 invariant 12).
var ErrAlreadyFinalized = errors.New("ballot: ballot is already in a terminal state")
