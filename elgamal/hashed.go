package elgamal

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"

	"github.com/davinci-labs/egcore/group"
	"github.com/davinci-labs/egcore/hash"
)

const blockSize = 32

// HashedElGamalCiphertext is a keyed-XOR ciphertext with HMAC integrity over
// an arbitrary-length payload (§3, "HashedElGamalCiphertext"); its block and
// mac keys are HMAC outputs keyed by a hash-derived session key.
type HashedElGamalCiphertext struct {
	Pad  group.ElementModP
	Data []byte
	Mac  [32]byte
}

// HashedEncrypt implements §4.6's HashedElGamal construction: derive (α, β)
// from nonce, derive the session key κ = H(hashPrefix ∥ seed ∥ K ∥ α ∥ β),
// pad the message to a 32-byte boundary, XOR each block against a per-block
// key derived from the session key, and authenticate the whole ciphertext
// with an HMAC mac.
func HashedEncrypt(message []byte, nonce group.ElementModQ, hashPrefix string, publicKey group.ElementModP, seed group.ElementModQ, maxLen int, allowTruncation bool) (HashedElGamalCiphertext, error) {
	if nonce.IsZero() {
		return HashedElGamalCiphertext{}, ErrZeroNonce
	}

	alpha := group.GPowP(nonce)
	beta := group.PowModP(publicKey, nonce)

	body, err := padMessage(message, maxLen, allowTruncation)
	if err != nil {
		return HashedElGamalCiphertext{}, err
	}
	n := len(body) / blockSize

	sessionKey := deriveSessionKey(hashPrefix, seed, publicKey, alpha, beta)
	defer zeroize(sessionKey)

	ciphertext := make([]byte, len(body))
	for i := 1; i <= n; i++ {
		block := body[(i-1)*blockSize : i*blockSize]
		xorKey := hmacSum(sessionKey, blockLabel(seed, n, i))
		xorBlock(ciphertext[(i-1)*blockSize:i*blockSize], block, xorKey)
	}

	macKey := hmacSum(sessionKey, blockLabel(seed, n, 0))
	defer zeroize(macKey)

	mac := hmacSum(macKey, append(alpha.ToBytes(), ciphertext...))

	var macArr [32]byte
	copy(macArr[:], mac)
	return HashedElGamalCiphertext{Pad: alpha, Data: ciphertext, Mac: macArr}, nil
}

// DecryptHashedWithSecret inverts HashedEncrypt given the secret key s
// corresponding to publicKey: β is recomputed as α^s, and the rest of the
// construction is run in reverse.
func DecryptHashedWithSecret(ct HashedElGamalCiphertext, secret group.ElementModQ, hashPrefix string, publicKey group.ElementModP, seed group.ElementModQ, maxLen int, expectPadding bool) ([]byte, error) {
	beta := group.PowModP(ct.Pad, secret)
	n := len(ct.Data) / blockSize

	sessionKey := deriveSessionKey(hashPrefix, seed, publicKey, ct.Pad, beta)
	defer zeroize(sessionKey)

	macKey := hmacSum(sessionKey, blockLabel(seed, n, 0))
	defer zeroize(macKey)
	expectedMac := hmacSum(macKey, append(ct.Pad.ToBytes(), ct.Data...))
	if !hmac.Equal(expectedMac, ct.Mac[:]) {
		return nil, ErrMacMismatch
	}

	body := make([]byte, len(ct.Data))
	for i := 1; i <= n; i++ {
		block := ct.Data[(i-1)*blockSize : i*blockSize]
		xorKey := hmacSum(sessionKey, blockLabel(seed, n, i))
		xorBlock(body[(i-1)*blockSize:i*blockSize], block, xorKey)
	}

	return unpadMessage(body, maxLen, expectPadding)
}

func deriveSessionKey(hashPrefix string, seed group.ElementModQ, publicKey, alpha, beta group.ElementModP) []byte {
	return hash.Elems(hashPrefix, seed, publicKey, alpha, beta).ToBytes()
}

func blockLabel(seed group.ElementModQ, n, i int) []byte {
	label := make([]byte, 0, len(seed.ToBytes())+8)
	label = append(label, seed.ToBytes()...)
	var nBuf, iBuf [4]byte
	binary.BigEndian.PutUint32(nBuf[:], uint32(n*256))
	binary.BigEndian.PutUint32(iBuf[:], uint32(i))
	label = append(label, nBuf[:]...)
	label = append(label, iBuf[:]...)
	return label
}

func hmacSum(key, msg []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

func xorBlock(dst, a, b []byte) {
	for i := range a {
		dst[i] = a[i] ^ b[i]
	}
}

func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// padMessage builds [padLenBE(2 bytes)][message][zero fill to maxLen][zero
// fill to the next 32-byte boundary] (§4.6). Oversized messages are
// truncated with the length field zeroed when allowTruncation is set;
// otherwise they fail.
func padMessage(message []byte, maxLen int, allowTruncation bool) ([]byte, error) {
	padLen := uint16(len(message))
	msg := message
	if len(message) > maxLen {
		if !allowTruncation {
			return nil, ErrMessageTooLarge
		}
		msg = message[:maxLen]
		padLen = 0
	}

	body := make([]byte, 2, 2+maxLen)
	binary.BigEndian.PutUint16(body, padLen)
	body = append(body, msg...)
	if fill := maxLen - len(msg); fill > 0 {
		body = append(body, make([]byte, fill)...)
	}
	if rem := len(body) % blockSize; rem != 0 {
		body = append(body, make([]byte, blockSize-rem)...)
	}
	return body, nil
}

func unpadMessage(body []byte, maxLen int, expectPadding bool) ([]byte, error) {
	if len(body) < 2 {
		return nil, ErrPaddingInvalid
	}
	padLen := binary.BigEndian.Uint16(body[:2])
	rest := body[2:]
	if expectPadding {
		if int(padLen) > maxLen || int(padLen) > len(rest) {
			return nil, ErrPaddingInvalid
		}
	}
	if padLen == 0 {
		// Either an originally empty message or a truncated one; the
		// remaining bytes (sans zero fill) are the truncated payload and
		// cannot be distinguished from padding, matching the original's
		// lossy truncation contract.
		return trimTrailingZeros(rest), nil
	}
	if int(padLen) > len(rest) {
		return nil, ErrPaddingInvalid
	}
	return rest[:padLen], nil
}

func trimTrailingZeros(b []byte) []byte {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return b[:end]
}
