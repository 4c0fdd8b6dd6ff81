package elgamal

import "errors"

// ErrZeroNonce is returned by Encrypt/EncryptBaseG when given a zero nonce
// (§4.6, "Fails when the nonce is zero").
var ErrZeroNonce = errors.New("elgamal: encryption nonce must be nonzero")

// ErrEmptyCiphertextList is returned by Add when given no ciphertexts to
// combine.
var ErrEmptyCiphertextList = errors.New("elgamal: cannot add an empty ciphertext list")

// ErrMessageTooLarge is returned by HashedEncrypt when the message exceeds
// maxLen and truncation was not allowed (§4.6).
var ErrMessageTooLarge = errors.New("elgamal: message exceeds maxLen and truncation is not allowed")

// ErrMacMismatch is returned by DecryptHashedWithSecret when the recomputed
// mac does not match the ciphertext's mac (§7, "Cryptographic failure").
var ErrMacMismatch = errors.New("elgamal: mac verification failed")

// ErrPaddingInvalid is returned by DecryptHashedWithSecret when the decoded
// body is shorter than its 2-byte length field or the length field exceeds
// the remaining bytes; with expectPadding set, also when it exceeds maxLen.
var ErrPaddingInvalid = errors.New("elgamal: invalid message padding")
