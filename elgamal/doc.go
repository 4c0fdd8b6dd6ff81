// Package elgamal implements exponential ElGamal encryption of small
// integers (votes) over the group package's prime fields, plus
// Hashed-ElGamal encryption of arbitrary-length byte payloads (write-ins and
// contest extended data). Both support homomorphic addition and the four
// decryption paths named in §4.6 (by secret, by nonce, by product, partial
// share).
package elgamal
