package elgamal

import (
	"github.com/davinci-labs/egcore/group"
)

// Ciphertext is an exponential ElGamal ciphertext (pad, data) ∈ ElementModP
// × ElementModP (§3, "ElGamalCiphertext").
type Ciphertext struct {
	Pad  group.ElementModP
	Data group.ElementModP
}

// Encrypt encrypts m ∈ {0, 1, ...} under nonce r against publicKey K using
// base-K encoding (EG 2.0 default): pad = g^r, data = K^(m+r) (§4.6),
// collapsed to the K^r / K·K^r special cases for m ∈ {0, 1}.
func Encrypt(m uint64, nonce group.ElementModQ, publicKey group.ElementModP) (Ciphertext, error) {
	if nonce.IsZero() {
		return Ciphertext{}, ErrZeroNonce
	}
	pad := group.GPowP(nonce)
	kr := group.PowModP(publicKey, nonce)

	var data group.ElementModP
	switch m {
	case 0:
		data = kr
	case 1:
		data = group.MulModP(publicKey, kr)
	default:
		exp := group.AddModQ(group.FromUint64(m), nonce)
		data = group.PowModP(publicKey, exp)
	}
	return Ciphertext{Pad: pad, Data: data}, nil
}

// EncryptBaseG encrypts m under nonce r in EG 1.0 compatibility mode: pad =
// g^r, data = g^m · K^r (§4.6, "Base-g encryption").
func EncryptBaseG(m uint64, nonce group.ElementModQ, publicKey group.ElementModP) (Ciphertext, error) {
	if nonce.IsZero() {
		return Ciphertext{}, ErrZeroNonce
	}
	pad := group.GPowP(nonce)
	gm := group.GPowP(group.FromUint64(m))
	kr := group.PowModP(publicKey, nonce)
	return Ciphertext{Pad: pad, Data: group.MulModP(gm, kr)}, nil
}

// Add combines ciphertexts homomorphically: (a1,b1) ⊞ (a2,b2) =
// (a1·a2, b1·b2) mod P, generalized to a nonempty list (§4.6).
func Add(cts ...Ciphertext) (Ciphertext, error) {
	if len(cts) == 0 {
		return Ciphertext{}, ErrEmptyCiphertextList
	}
	pads := make([]group.ElementModP, len(cts))
	datas := make([]group.ElementModP, len(cts))
	for i, c := range cts {
		pads[i] = c.Pad
		datas[i] = c.Data
	}
	return Ciphertext{
		Pad:  group.MulModPFrom(pads...),
		Data: group.MulModPFrom(datas...),
	}, nil
}

// DecryptWithSecret recovers m from data · (pad^s)⁻¹ via discrete log
// against base (§4.6, "Known secret s").
func DecryptWithSecret(ct Ciphertext, secret group.ElementModQ, base group.ElementModP, bound uint64) (uint64, error) {
	padToS := group.PowModP(ct.Pad, secret)
	invPadToS, err := group.InvertModP(padToS)
	if err != nil {
		return 0, err
	}
	target := group.MulModP(ct.Data, invPadToS)
	return group.DiscreteLog(target, base, bound)
}

// DecryptWithNonce recovers m from data · K⁻ʳ, where K is the public key
// under which ct was encrypted (§4.6, "Known nonce r").
func DecryptWithNonce(ct Ciphertext, nonce group.ElementModQ, publicKey group.ElementModP, bound uint64) (uint64, error) {
	kr := group.PowModP(publicKey, nonce)
	invKr, err := group.InvertModP(kr)
	if err != nil {
		return 0, err
	}
	target := group.MulModP(ct.Data, invKr)
	return group.DiscreteLog(target, publicKey, bound)
}

// DecryptWithProduct recovers m from data · product⁻¹, where product is the
// blinding factor assembled from threshold decryption shares (§4.6, "Known
// product").
func DecryptWithProduct(ct Ciphertext, product group.ElementModP, base group.ElementModP, bound uint64) (uint64, error) {
	invProduct, err := group.InvertModP(product)
	if err != nil {
		return 0, err
	}
	target := group.MulModP(ct.Data, invProduct)
	return group.DiscreteLog(target, base, bound)
}

// PartialDecrypt returns pad^(s_i), a guardian's partial decryption share
// (§4.6, "Partial decrypt with share s_i").
func PartialDecrypt(ct Ciphertext, share group.ElementModQ) group.ElementModP {
	return group.PowModP(ct.Pad, share)
}
