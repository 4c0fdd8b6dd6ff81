package rand

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"
)

// ErrOutOfEntropy is returned when the OS entropy source yields fewer bytes
// than requested (§4.4, §7 "Exhaustion").
var ErrOutOfEntropy = errors.New("rand: out of entropy")

const seedLen = 32 // sha256.Size

// GetBytes returns size cryptographically secure bytes, generated by an
// ephemeral HMAC-DRBG-SHA256 instance seeded from the OS entropy source, a
// clock-derived personalization string, and a secondary entropy draw used
// as the DRBG nonce (§4.4). The instance is discarded after this call; there
// is no reseed contract.
func GetBytes(size int) ([]byte, error) {
	entropy := make([]byte, seedLen)
	if n, err := rand.Read(entropy); err != nil || n != seedLen {
		return nil, fmt.Errorf("%w: primary entropy draw: %v", ErrOutOfEntropy, err)
	}
	nonce := make([]byte, seedLen/2)
	if n, err := rand.Read(nonce); err != nil || n != seedLen/2 {
		return nil, fmt.Errorf("%w: secondary entropy draw: %v", ErrOutOfEntropy, err)
	}
	personalization := []byte(fmt.Sprintf("egcore-drbg-%d", time.Now().UnixNano()))

	d := newDRBG(entropy, nonce, personalization)
	return d.generate(size), nil
}

// drbg is a minimal, non-reseeding HMAC-DRBG-SHA256 instance (NIST SP
// 800-90A §10.1.2), sized for exactly the single Generate call this package
// needs.
type drbg struct {
	k []byte
	v []byte
}

func newDRBG(entropy, nonce, personalization []byte) *drbg {
	d := &drbg{
		k: make([]byte, seedLen),
		v: bytesOf(0x01, seedLen),
	}
	seedMaterial := concat(entropy, nonce, personalization)
	d.update(seedMaterial)
	return d
}

func (d *drbg) update(providedData []byte) {
	mac := hmac.New(sha256.New, d.k)
	mac.Write(d.v)
	mac.Write([]byte{0x00})
	mac.Write(providedData)
	d.k = mac.Sum(nil)

	mac = hmac.New(sha256.New, d.k)
	mac.Write(d.v)
	d.v = mac.Sum(nil)

	if len(providedData) == 0 {
		return
	}

	mac = hmac.New(sha256.New, d.k)
	mac.Write(d.v)
	mac.Write([]byte{0x01})
	mac.Write(providedData)
	d.k = mac.Sum(nil)

	mac = hmac.New(sha256.New, d.k)
	mac.Write(d.v)
	d.v = mac.Sum(nil)
}

func (d *drbg) generate(size int) []byte {
	out := make([]byte, 0, size)
	for len(out) < size {
		mac := hmac.New(sha256.New, d.k)
		mac.Write(d.v)
		d.v = mac.Sum(nil)
		out = append(out, d.v...)
	}
	d.update(nil)
	return out[:size]
}

func bytesOf(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func concat(parts ...[]byte) []byte {
	var total int
	for _, p := range parts {
		total += len(p)
	}
	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
