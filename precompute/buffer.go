package precompute

import (
	"context"
	"errors"
	"sync"

	"github.com/davinci-labs/egcore/group"
	"github.com/davinci-labs/egcore/log"
	"github.com/davinci-labs/egcore/rand"
)

// ErrNotBound is returned by operations attempted before Initialize has
// bound the context to a public key.
var ErrNotBound = errors.New("precompute: buffer not bound to a public key")

// Triple is a PrecomputedEncryption record: (r, g^r, K^r), r drawn uniformly
// at random (§3, "PrecomputedEncryption").
type Triple struct {
	Exp         group.ElementModQ
	GToExp      group.ElementModP
	PubkeyToExp group.ElementModP
}

// Quadruple is a PrecomputedFakeDisjunctiveCommitments record:
// (r1, r2, g^r1, g^r2 · K^r1) (§3, "PrecomputedFakeDisjunctiveCommitments").
type Quadruple struct {
	Exp1 group.ElementModQ
	Exp2 group.ElementModQ
	G1   group.ElementModP
	G2K1 group.ElementModP
}

// Selection bundles one real-branch triple with one fake-branch quadruple,
// the unit the disjunctive proof consumes per selection (§3,
// "PrecomputedSelection").
type Selection struct {
	RealBranch Triple
	FakeBranch Quadruple
}

func generateTriple(publicKey group.ElementModP) (Triple, error) {
	b, err := rand.GetBytes(32)
	if err != nil {
		return Triple{}, err
	}
	exp, err := group.NewElementModQ(bytesToBigIntModQ(b))
	if err != nil {
		return Triple{}, err
	}
	return Triple{
		Exp:         exp,
		GToExp:      group.GPowP(exp),
		PubkeyToExp: group.PowModP(publicKey, exp),
	}, nil
}

func generateQuadruple(publicKey group.ElementModP) (Quadruple, error) {
	b1, err := rand.GetBytes(32)
	if err != nil {
		return Quadruple{}, err
	}
	b2, err := rand.GetBytes(32)
	if err != nil {
		return Quadruple{}, err
	}
	exp1, err := group.NewElementModQ(bytesToBigIntModQ(b1))
	if err != nil {
		return Quadruple{}, err
	}
	exp2, err := group.NewElementModQ(bytesToBigIntModQ(b2))
	if err != nil {
		return Quadruple{}, err
	}
	g1 := group.GPowP(exp1)
	g2 := group.GPowP(exp2)
	k1 := group.PowModP(publicKey, exp1)
	return Quadruple{
		Exp1: exp1,
		Exp2: exp2,
		G1:   g1,
		G2K1: group.MulModP(g2, k1),
	}, nil
}

// Buffer is the bound, bounded-FIFO precompute context (§4.7). Two
// independent mutexes guard the triple and quadruple queues so producers and
// consumers on the triple side never block the quadruple side.
type Buffer struct {
	triplesMu sync.Mutex
	triples   []Triple

	quadsMu sync.Mutex
	quads   []Selection

	bindMu    sync.Mutex
	publicKey group.ElementModP
	bound     bool
	maxSize   int

	stopCh chan struct{}
	doneCh chan struct{}
}

// New constructs an unbound buffer; call Initialize before Start.
func New() *Buffer {
	return &Buffer{}
}

// Initialize resets both queues and binds the context to publicKey (§4.7,
// "initialize(K, maxQueueSize)"). Any producer loop already running against
// the previous key is stopped first.
func (b *Buffer) Initialize(publicKey group.ElementModP, maxQueueSize int) {
	b.Stop()

	b.bindMu.Lock()
	b.publicKey = publicKey
	b.bound = true
	b.maxSize = maxQueueSize
	b.bindMu.Unlock()

	b.drainBoth()
	log.Debugw("precompute buffer initialized", "maxQueueSize", maxQueueSize)
}

func (b *Buffer) drainBoth() {
	b.triplesMu.Lock()
	b.triples = nil
	b.triplesMu.Unlock()

	b.quadsMu.Lock()
	b.quads = nil
	b.quadsMu.Unlock()
}

func (b *Buffer) boundKey() (group.ElementModP, bool) {
	b.bindMu.Lock()
	defer b.bindMu.Unlock()
	return b.publicKey, b.bound
}

// Start synchronously fills both queues up to maxQueueSize quadruples; every
// third iteration it also produces two extra triples, matching the
// original's documented cadence for hashed-ElGamal and contest-level proof
// consumption (§4.7).
func (b *Buffer) Start() error {
	publicKey, bound := b.boundKey()
	if !bound {
		return ErrNotBound
	}

	const iterationsForTwoExtraTriples = 3
	for i := 0; i < b.maxSize; i++ {
		sel, err := b.generateSelection(publicKey)
		if err != nil {
			return err
		}
		b.quadsMu.Lock()
		b.quads = append(b.quads, sel)
		b.quadsMu.Unlock()

		if i%iterationsForTwoExtraTriples == 0 {
			for j := 0; j < 2; j++ {
				t, err := generateTriple(publicKey)
				if err != nil {
					return err
				}
				b.triplesMu.Lock()
				b.triples = append(b.triples, t)
				b.triplesMu.Unlock()
			}
		}
	}
	return nil
}

func (b *Buffer) generateSelection(publicKey group.ElementModP) (Selection, error) {
	real, err := generateTriple(publicKey)
	if err != nil {
		return Selection{}, err
	}
	fake, err := generateQuadruple(publicKey)
	if err != nil {
		return Selection{}, err
	}
	return Selection{RealBranch: real, FakeBranch: fake}, nil
}

// StartAsync schedules Start's work on a background goroutine and returns
// immediately (§4.7, "startAsync"). The goroutine exits early if Stop is
// called mid-run.
func (b *Buffer) StartAsync(ctx context.Context) {
	b.stopCh = make(chan struct{})
	b.doneCh = make(chan struct{})
	publicKey, bound := b.boundKey()
	if !bound {
		close(b.doneCh)
		return
	}

	go func() {
		defer close(b.doneCh)
		const iterationsForTwoExtraTriples = 3
		for i := 0; i < b.maxSize; i++ {
			select {
			case <-b.stopCh:
				return
			case <-ctx.Done():
				return
			default:
			}

			sel, err := b.generateSelection(publicKey)
			if err != nil {
				log.Errorw(err, "precompute: background generation failed")
				return
			}
			b.quadsMu.Lock()
			b.quads = append(b.quads, sel)
			b.quadsMu.Unlock()

			if i%iterationsForTwoExtraTriples == 0 {
				for j := 0; j < 2; j++ {
					t, err := generateTriple(publicKey)
					if err != nil {
						log.Errorw(err, "precompute: background triple generation failed")
						return
					}
					b.triplesMu.Lock()
					b.triples = append(b.triples, t)
					b.triplesMu.Unlock()
				}
			}
		}
	}()
}

// Stop signals a running StartAsync producer to halt at the next safe
// point (§4.7, "stop"); in-flight generation completes first. Safe to call
// even if no producer is running.
func (b *Buffer) Stop() {
	if b.stopCh == nil {
		return
	}
	select {
	case <-b.stopCh:
	default:
		close(b.stopCh)
	}
	if b.doneCh != nil {
		<-b.doneCh
	}
}

// PopTriple returns the next queued triple, or ok=false if the queue is
// drained (§4.7, "pop_triple").
func (b *Buffer) PopTriple() (Triple, bool) {
	b.triplesMu.Lock()
	defer b.triplesMu.Unlock()
	if len(b.triples) == 0 {
		return Triple{}, false
	}
	t := b.triples[0]
	b.triples = b.triples[1:]
	return t, true
}

// PopSelection returns the next queued selection bundle, or ok=false if the
// queue is drained (§4.7, "pop_quad").
func (b *Buffer) PopSelection() (Selection, bool) {
	b.quadsMu.Lock()
	defer b.quadsMu.Unlock()
	if len(b.quads) == 0 {
		return Selection{}, false
	}
	s := b.quads[0]
	b.quads = b.quads[1:]
	return s, true
}

// GetTriple behaves like PopTriple but falls back to synchronous generation
// when the queue is drained (§4.7, "get_triple").
func (b *Buffer) GetTriple() (Triple, error) {
	if t, ok := b.PopTriple(); ok {
		return t, nil
	}
	publicKey, bound := b.boundKey()
	if !bound {
		return Triple{}, ErrNotBound
	}
	return generateTriple(publicKey)
}

// GetSelection behaves like PopSelection but falls back to synchronous
// generation when the queue is drained (§4.7, "get_quad").
func (b *Buffer) GetSelection() (Selection, error) {
	if s, ok := b.PopSelection(); ok {
		return s, nil
	}
	publicKey, bound := b.boundKey()
	if !bound {
		return Selection{}, ErrNotBound
	}
	return b.generateSelection(publicKey)
}

// BoundTo reports whether the buffer is currently bound to publicKey,
// letting callers (e.g. the ballot pipeline's usePrecompute path) decide
// whether precomputed values are usable without popping one.
func (b *Buffer) BoundTo(publicKey group.ElementModP) bool {
	cur, bound := b.boundKey()
	return bound && cur.Equal(publicKey)
}
