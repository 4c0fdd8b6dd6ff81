// Package ballot implements the ballot encryption pipeline (C9, §4.9): the
// plaintext/ciphertext ballot data model, the derived-hash election context,
// normalization of a ballot against its manifest-described style, the
// deterministic nonce tree, per-selection and per-contest encryption, and
// the recursive isValidEncryption check. It is the top of the dependency
// stack — it orchestrates group, hash, rand, elgamal, proof, and
// precompute.
package ballot
