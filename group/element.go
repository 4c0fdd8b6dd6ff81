package group

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// ElementModP is a nonnegative integer strictly less than the group's large
// prime P. It is immutable after construction except for the IsFixedBase
// advisory flag (§3, §4.2.2).
type ElementModP struct {
	v           *big.Int
	isFixedBase bool
}

// ElementModQ is a nonnegative integer strictly less than the subgroup
// order Q.
type ElementModQ struct {
	v *big.Int
}

// ZeroModP / OneModP / ZeroModQ / OneModQ are the frequently used constants.
func ZeroModP() ElementModP { return ElementModP{v: big.NewInt(0)} }
func OneModP() ElementModP  { return ElementModP{v: big.NewInt(1)} }
func ZeroModQ() ElementModQ { return ElementModQ{v: big.NewInt(0)} }
func OneModQ() ElementModQ  { return ElementModQ{v: big.NewInt(1)} }

// GModP returns the generator as a fixed-base ElementModP (§4.6 "mark K as
// fixed-base" applies the same way to the generator itself).
func GModP() ElementModP {
	return ElementModP{v: new(big.Int).Set(Current.G), isFixedBase: true}
}

// NewElementModP builds an ElementModP from a big.Int, failing if it is out
// of [0, P).
func NewElementModP(v *big.Int) (ElementModP, error) {
	if v.Sign() < 0 || v.Cmp(Current.P) >= 0 {
		return ElementModP{}, fmt.Errorf("group: value out of bounds for ElementModP")
	}
	return ElementModP{v: new(big.Int).Set(v)}, nil
}

// NewElementModQ builds an ElementModQ from a big.Int, failing if it is out
// of [0, Q).
func NewElementModQ(v *big.Int) (ElementModQ, error) {
	if v.Sign() < 0 || v.Cmp(Current.Q) >= 0 {
		return ElementModQ{}, fmt.Errorf("group: value out of bounds for ElementModQ")
	}
	return ElementModQ{v: new(big.Int).Set(v)}, nil
}

// BigInt returns the underlying value. Callers must not mutate it.
func (e ElementModP) BigInt() *big.Int { return e.v }
func (e ElementModQ) BigInt() *big.Int { return e.v }

// IsFixedBase reports whether this element has been marked as a candidate
// for fixed-base exponentiation acceleration (§4.2.2).
func (e ElementModP) IsFixedBase() bool { return e.isFixedBase }

// WithFixedBase returns a copy of e with the IsFixedBase advisory flag set.
func (e ElementModP) WithFixedBase() ElementModP {
	return ElementModP{v: e.v, isFixedBase: true}
}

// IsInBounds reports 0 < e < P (§4.2, strict interval).
func (e ElementModP) IsInBounds() bool {
	return e.v != nil && e.v.Sign() > 0 && e.v.Cmp(Current.P) < 0
}

// IsInBounds reports 0 < e < Q.
func (e ElementModQ) IsInBounds() bool {
	return e.v != nil && e.v.Sign() > 0 && e.v.Cmp(Current.Q) < 0
}

// IsValidResidue reports whether e is in bounds and e^Q mod P == 1, i.e. e
// lies in the order-Q subgroup (§4.2).
func (e ElementModP) IsValidResidue() bool {
	if e.v == nil || e.v.Sign() < 0 || e.v.Cmp(Current.P) >= 0 {
		return false
	}
	r := new(big.Int).Exp(e.v, Current.Q, Current.P)
	return r.Cmp(big.NewInt(1)) == 0
}

// Equal compares by limb/value equality.
func (e ElementModP) Equal(o ElementModP) bool { return e.v.Cmp(o.v) == 0 }
func (e ElementModQ) Equal(o ElementModQ) bool { return e.v.Cmp(o.v) == 0 }

// Less implements multi-precision ordering.
func (e ElementModP) Less(o ElementModP) bool { return e.v.Cmp(o.v) < 0 }
func (e ElementModQ) Less(o ElementModQ) bool { return e.v.Cmp(o.v) < 0 }

// IsZero reports whether the element is the additive identity.
func (e ElementModQ) IsZero() bool { return e.v.Sign() == 0 }

// ToBytes encodes e as a fixed-length, big-endian byte slice, zero-padded
// to PByteLen (§6).
func (e ElementModP) ToBytes() []byte {
	return leftPad(e.v.Bytes(), Current.PByteLen)
}

// ToBytes encodes e as a fixed-length, big-endian byte slice, zero-padded
// to QByteLen.
func (e ElementModQ) ToBytes() []byte {
	return leftPad(e.v.Bytes(), Current.QByteLen)
}

func leftPad(b []byte, n int) []byte {
	if len(b) >= n {
		return b
	}
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	return out
}

// ElementModPFromBytes decodes a fixed-width big-endian byte slice. It fails
// if the length does not match PByteLen or the decoded value is out of
// bounds.
func ElementModPFromBytes(b []byte) (ElementModP, error) {
	if len(b) != Current.PByteLen {
		return ElementModP{}, fmt.Errorf("group: expected %d bytes for ElementModP, got %d", Current.PByteLen, len(b))
	}
	return NewElementModP(new(big.Int).SetBytes(b))
}

// ElementModQFromBytes decodes a fixed-width big-endian byte slice.
func ElementModQFromBytes(b []byte) (ElementModQ, error) {
	if len(b) != Current.QByteLen {
		return ElementModQ{}, fmt.Errorf("group: expected %d bytes for ElementModQ, got %d", Current.QByteLen, len(b))
	}
	return NewElementModQ(new(big.Int).SetBytes(b))
}

// ToHex renders the canonical uppercase, zero-padded, full-width hex form
// (§6, "Hex forms: uppercase, full width, no 0x prefix").
func (e ElementModP) ToHex() string {
	return toCanonicalHex(e.v, Current.PByteLen)
}

// ToHex renders the canonical uppercase, zero-padded, full-width hex form.
func (e ElementModQ) ToHex() string {
	return toCanonicalHex(e.v, Current.QByteLen)
}

func toCanonicalHex(v *big.Int, byteLen int) string {
	padded := fmt.Sprintf("%0*s", byteLen*2, hex.EncodeToString(v.Bytes()))
	return strings.ToUpper(padded)
}

// ElementModPFromHex parses a canonical hex string (case-insensitive on
// input, though ToHex always produces uppercase).
func ElementModPFromHex(s string) (ElementModP, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return ElementModP{}, fmt.Errorf("group: invalid hex: %w", err)
	}
	return NewElementModP(new(big.Int).SetBytes(b))
}

// ElementModQFromHex parses a canonical hex string.
func ElementModQFromHex(s string) (ElementModQ, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return ElementModQ{}, fmt.Errorf("group: invalid hex: %w", err)
	}
	return NewElementModQ(new(big.Int).SetBytes(b))
}

// ToElementModP zero-extends a Q-element into the P field (§3, "Conversion
// to ElementModP zero-extends").
func (e ElementModQ) ToElementModP() ElementModP {
	return ElementModP{v: new(big.Int).Set(e.v)}
}

// FromUint64 builds an ElementModQ from a small nonnegative integer,
// primarily used for sequence orders and vote counts in proof algebra.
func FromUint64(n uint64) ElementModQ {
	return ElementModQ{v: new(big.Int).SetUint64(n)}
}

// Zeroize overwrites the backing limbs in place, matching §5's
// "sensitive-data zeroization" requirement for nonces and secret keys.
func (e *ElementModQ) Zeroize() {
	if e.v != nil {
		e.v.SetInt64(0)
	}
}

func (e *ElementModP) Zeroize() {
	if e.v != nil {
		e.v.SetInt64(0)
	}
}
