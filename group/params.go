package group

import (
	"fmt"
	"math/big"

	"github.com/davinci-labs/egcore/log"
)

// Params holds the published election-record group constants: the large
// prime P, the prime subgroup order Q, the generator G of the order-Q
// subgroup, and the cofactor R such that P = Q*R + 1.
type Params struct {
	P *big.Int
	Q *big.Int
	G *big.Int
	R *big.Int

	// PByteLen / QByteLen are the fixed widths used by the canonical
	// big-endian byte and hex encodings (§6).
	PByteLen int
	QByteLen int
}

// VersionCode identifies the constant set in use; it is hashed, right-padded
// with NUL bytes to 32 bytes, as the first input to parameterHash (§6).
const VersionCode = "v2.0.0"

// Current is the group parameter set this build was compiled against,
// selected by build tag: the default build uses the published test-sized
// constant set (§6, "test-sized constant set selectable via a compile-time
// flag"); the `egfull` build tag selects the published EG 2.0 4096-bit P /
// 256-bit Q constants. Both sets are the literal hex constants from the
// election-record constant table, not derived at runtime — parameterHash
// must equal the fixed value published for the active set (§6), which only
// holds if P/Q/G/R are transcribed, not searched for.
var Current = mustParse()

func mustParse() *Params {
	p, err := parseParams(pHex, qHex, rHex, gHex)
	if err != nil {
		panic(fmt.Sprintf("group: failed to parse published constants: %v", err))
	}
	log.Debugw("group parameters loaded", "pBits", p.P.BitLen(), "qBits", p.Q.BitLen())
	return p
}

// parseParams decodes the published (P, Q, G, R) hex constants and derives
// the fixed canonical encoding widths from their hex string lengths, so a
// cofactor or generator encoded with leading zero bytes keeps them.
func parseParams(pHex, qHex, rHex, gHex string) (*Params, error) {
	p, ok := new(big.Int).SetString(pHex, 16)
	if !ok {
		return nil, fmt.Errorf("group: invalid P constant")
	}
	q, ok := new(big.Int).SetString(qHex, 16)
	if !ok {
		return nil, fmt.Errorf("group: invalid Q constant")
	}
	r, ok := new(big.Int).SetString(rHex, 16)
	if !ok {
		return nil, fmt.Errorf("group: invalid R constant")
	}
	g, ok := new(big.Int).SetString(gHex, 16)
	if !ok {
		return nil, fmt.Errorf("group: invalid G constant")
	}

	check := new(big.Int).Mul(q, r)
	check.Add(check, big.NewInt(1))
	if check.Cmp(p) != 0 {
		return nil, fmt.Errorf("group: published constants fail P = Q*R + 1")
	}
	if new(big.Int).Exp(g, q, p).Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("group: published generator does not have order Q")
	}

	return &Params{
		P:        p,
		Q:        q,
		G:        g,
		R:        r,
		PByteLen: len(pHex) / 2,
		QByteLen: len(qHex) / 2,
	}, nil
}
