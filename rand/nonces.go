package rand

import (
	"github.com/davinci-labs/egcore/group"
	"github.com/davinci-labs/egcore/hash"
)

// Nonces is a restartable, lazy sequence of ElementModQ values derived
// deterministically from a seed and an optional header (§4.4). It underlies
// every deterministic proof/encryption construction path in the core: given
// the same seed, the same sequence of values is always produced, which is
// what makes ballot encryption reproducible from a single root nonce.
type Nonces struct {
	seed    group.ElementModQ
	header  any
	counter uint64
}

// NewNonces constructs a sequence from a seed with no header.
func NewNonces(seed group.ElementModQ) *Nonces {
	return &Nonces{seed: seed}
}

// NewNoncesWithHeader constructs a sequence from a seed and a fixed header,
// mixed into every derived value. header may be an ElementModP, ElementModQ,
// or string (§4.4's "with_p_header" / "with_q_header" / "with_string_header"
// constructors).
func NewNoncesWithHeader(seed group.ElementModQ, header any) *Nonces {
	return &Nonces{seed: seed, header: header}
}

// Get returns H(seed || header? || i).
func (n *Nonces) Get(i uint64) group.ElementModQ {
	items := n.baseItems(i)
	return hash.Elems(items...)
}

// GetWithExtraHeader returns H(seed || header? || i || extraHeader).
func (n *Nonces) GetWithExtraHeader(i uint64, extraHeader any) group.ElementModQ {
	items := append(n.baseItems(i), extraHeader)
	return hash.Elems(items...)
}

func (n *Nonces) baseItems(i uint64) []any {
	items := []any{n.seed}
	if n.header != nil {
		items = append(items, n.header)
	}
	items = append(items, i)
	return items
}

// Next advances the internal counter and returns Get(counter) for the
// pre-advance counter value, mirroring the original's `next()`.
func (n *Nonces) Next() group.ElementModQ {
	v := n.Get(n.counter)
	n.counter++
	return v
}
