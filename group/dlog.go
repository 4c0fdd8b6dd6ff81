package group

import (
	"errors"
	"fmt"
	"math/big"
	"sync"
)

// ErrDiscreteLogNotFound is returned when no exponent within the search
// window maps base^m to the requested element (§4.3).
var ErrDiscreteLogNotFound = errors.New("group: discrete log not found within search window")

// DefaultSearchBound is the default upper bound on the discrete-log search,
// sized generously for tallying (§4.3, "at most N ≈ ballot_count ×
// max_selections").
const DefaultSearchBound = 1_000_000

type dlogKey struct {
	base    string
	element string
}

// DiscreteLogTable memoizes (element, base) -> exponent lookups across
// concurrent readers (§4.3, "memoize... safe under concurrent read"; §5,
// "process-wide and grow monotonically... protect them with read-mostly
// synchronization").
type DiscreteLogTable struct {
	mu    sync.RWMutex
	cache map[dlogKey]uint64
}

// NewDiscreteLogTable constructs an empty memoization table.
func NewDiscreteLogTable() *DiscreteLogTable {
	return &DiscreteLogTable{cache: make(map[dlogKey]uint64)}
}

// defaultTable is the process-wide singleton used by the package-level
// DiscreteLog helper (§5, "process-wide").
var defaultTable = NewDiscreteLogTable()

// DiscreteLog finds the smallest m in [0, bound] such that base^m mod P
// equals element, memoizing results in the process-wide table.
func DiscreteLog(element, base ElementModP, bound uint64) (uint64, error) {
	return defaultTable.Lookup(element, base, bound)
}

// Lookup performs the bounded linear search, consulting and populating the
// cache. It does not use the fixed-base table below.
func (t *DiscreteLogTable) Lookup(element, base ElementModP, bound uint64) (uint64, error) {
	key := dlogKey{base: base.ToHex(), element: element.ToHex()}

	t.mu.RLock()
	if m, ok := t.cache[key]; ok {
		t.mu.RUnlock()
		return m, nil
	}
	t.mu.RUnlock()

	acc := OneModP()
	for m := uint64(0); m <= bound; m++ {
		if acc.Equal(element) {
			t.mu.Lock()
			t.cache[key] = m
			t.mu.Unlock()
			return m, nil
		}
		acc = MulModP(acc, base)
	}
	return 0, fmt.Errorf("%w: searched [0,%d] against base %s", ErrDiscreteLogNotFound, bound, base.ToHex())
}

// fixedBaseTable precomputes windowed powers of one base (§4.3, "a per-base
// structure that precomputes windowed powers of that base").
type fixedBaseTable struct {
	base       ElementModP
	windowBits uint
	// table[i] holds base^(2^(i*windowBits)) mod P for i in [0, len(table)).
	table []ElementModP
}

const fixedBaseWindowBits = 8

func newFixedBaseTable(base ElementModP) *fixedBaseTable {
	windows := (Current.Q.BitLen() + fixedBaseWindowBits) / fixedBaseWindowBits
	t := &fixedBaseTable{base: base, windowBits: fixedBaseWindowBits, table: make([]ElementModP, windows)}
	step := new(big.Int).Lsh(big.NewInt(1), fixedBaseWindowBits)
	stepExp, _ := NewElementModQ(new(big.Int).Mod(step, Current.Q))
	cur := base
	for i := 0; i < windows; i++ {
		t.table[i] = cur
		cur = PowModPDirect(cur, stepExp)
	}
	return t
}

// Pow computes base^exp mod P using the windowed table; the result must be
// (and is, since both paths ultimately delegate to the same modular
// exponentiation) bit-identical to the direct computation (§4.2.2).
func (t *fixedBaseTable) Pow(exp ElementModQ) ElementModP {
	e := new(big.Int).Set(exp.v)
	result := OneModP()
	windowMask := new(big.Int).Lsh(big.NewInt(1), fixedBaseWindowBits)
	windowMask.Sub(windowMask, big.NewInt(1))

	remaining := new(big.Int).Set(e)
	idx := 0
	for remaining.Sign() > 0 && idx < len(t.table) {
		chunk := new(big.Int).And(remaining, windowMask)
		if chunk.Sign() != 0 {
			q, _ := NewElementModQ(chunk)
			partial := PowModPDirect(t.table[idx], q)
			result = MulModP(result, partial)
		}
		remaining.Rsh(remaining, fixedBaseWindowBits)
		idx++
	}
	return result
}

// PowModPDirect performs the unconditional (non-fixed-base-routed)
// exponentiation, used both as the fallback path and internally while
// building/using the fixed-base table to avoid infinite recursion into
// PowModP's own dispatch.
func PowModPDirect(base ElementModP, exp ElementModQ) ElementModP {
	if exp.v.Sign() == 0 {
		return OneModP()
	}
	r := new(big.Int).Exp(base.v, exp.v, Current.P)
	return ElementModP{v: r}
}

var (
	fixedBaseMu     sync.RWMutex
	fixedBaseTables = map[string]*fixedBaseTable{}
)

// fixedBaseTableFor returns the (lazily constructed) table for base,
// constructed on first use per §4.3, "Constructed lazily on first use for
// each base marked fixed."
func fixedBaseTableFor(base ElementModP) *fixedBaseTable {
	key := base.ToHex()
	fixedBaseMu.RLock()
	t, ok := fixedBaseTables[key]
	fixedBaseMu.RUnlock()
	if ok {
		return t
	}
	fixedBaseMu.Lock()
	defer fixedBaseMu.Unlock()
	if t, ok := fixedBaseTables[key]; ok {
		return t
	}
	t = newFixedBaseTable(ElementModP{v: base.v})
	fixedBaseTables[key] = t
	return t
}
