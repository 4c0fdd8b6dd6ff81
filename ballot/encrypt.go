package ballot

import (
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/davinci-labs/egcore/elgamal"
	"github.com/davinci-labs/egcore/group"
	"github.com/davinci-labs/egcore/hash"
	"github.com/davinci-labs/egcore/log"
	"github.com/davinci-labs/egcore/precompute"
	"github.com/davinci-labs/egcore/proof"
	egrand "github.com/davinci-labs/egcore/rand"
)

// extendedDataMaxLen bounds the write-in/overvote payload a contest's
// hashed-ElGamal extended data may carry before truncation kicks in.
const extendedDataMaxLen = 512

// overvoteRecord mirrors the JSON shape §4.9's overvote handling describes:
// the offending selections, reported by object id.
type overvoteRecord struct {
	Error     string   `json:"error"`
	ErrorData []string `json:"error_data"`
}

// contestExtendedPayload is the CBOR envelope carried inside a contest's
// extended data: write-in text keyed by selection id, plus an optional
// JSON-encoded overvote record (§4.9 step 7).
type contestExtendedPayload struct {
	WriteIns map[string]string `cbor:"write_ins,omitempty"`
	Overvote string            `cbor:"overvote,omitempty"`
}

func (p contestExtendedPayload) isEmpty() bool {
	return len(p.WriteIns) == 0 && p.Overvote == ""
}

func randomElementModQ() (group.ElementModQ, error) {
	b, err := egrand.GetBytes(32)
	if err != nil {
		return group.ElementModQ{}, err
	}
	v := new(big.Int).SetBytes(b)
	v.Mod(v, group.Current.Q)
	return group.NewElementModQ(v)
}

// EncryptBallot runs the full ballot encryption pipeline (§4.9): it looks up
// the voter's ballot style, derives a nonce tree from a root nonce, normalizes
// every contest and selection against the style, encrypts each selection
// real-time or from precomputed values, accumulates and proves each contest,
// and chains the assembled ballot into ballotCodeSeed's hash (§8 invariants
// 13-14). Errors when the ballot style is unknown, when a caller-supplied
// nonce is combined with usePrecompute, or (when verifyProofs is set) when
// the assembled ballot fails self-validation.
func EncryptBallot(
	plaintext PlaintextBallot,
	manifest InternalManifest,
	context CiphertextElectionContext,
	ballotCodeSeed group.ElementModQ,
	nonce *group.ElementModQ,
	timestamp *int64,
	verifyProofs bool,
	usePrecompute bool,
	allowOvervotes bool,
	precomputeBuffer *precompute.Buffer,
) (*CiphertextBallot, error) {
	style, ok := manifest.Style(plaintext.BallotStyleID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBallotStyle, plaintext.BallotStyleID)
	}
	if nonce != nil && usePrecompute {
		return nil, ErrNonceWithPrecompute
	}
	if usePrecompute && (precomputeBuffer == nil || !precomputeBuffer.BoundTo(context.K)) {
		return nil, fmt.Errorf("ballot: usePrecompute requested but the precompute buffer is not bound to the election key")
	}

	rootNonce := nonce
	if rootNonce == nil {
		drawn, err := randomElementModQ()
		if err != nil {
			return nil, err
		}
		rootNonce = &drawn
	}

	nonceSeed := hash.Elems(manifest.ManifestHash, plaintext.ObjectID, *rootNonce)

	ts := time.Now().Unix()
	if timestamp != nil {
		ts = *timestamp
	}

	contests := make([]CiphertextBallotContest, len(style.Contests))
	for i, contestDesc := range style.Contests {
		contest, err := encryptContest(contestDesc, plaintext, nonceSeed, context, usePrecompute, allowOvervotes, precomputeBuffer)
		if err != nil {
			return nil, err
		}
		contests[i] = contest
	}

	cryptoHash := ballotCryptoHash(context.CryptoExtendedBaseHash, ballotCodeSeed, plaintext.ObjectID, ts, contests)

	b := &CiphertextBallot{
		ObjectID:       plaintext.ObjectID,
		BallotStyleID:  plaintext.BallotStyleID,
		ManifestHash:   manifest.ManifestHash,
		BallotCodeSeed: ballotCodeSeed,
		Contests:       contests,
		BallotCode:     cryptoHash,
		Timestamp:      ts,
		Nonce:          rootNonce,
		CryptoHash:     cryptoHash,
		State:          StateUnknown,
	}

	if verifyProofs {
		if ok, failures := b.IsValidEncryption(context.CryptoExtendedBaseHash, context.K); !ok {
			log.Errorw(fmt.Errorf("ballot %s: %v", b.ObjectID, failures), "assembled ballot failed self-validation")
			return nil, fmt.Errorf("%w: %v", ErrInvalidEncryption, failures)
		}
	}

	return b, nil
}

// encryptContest normalizes one contest against its style description
// (missing selections default to unvoted), applies overvote handling, and
// encrypts and proves the result (§4.9 steps 4-7).
func encryptContest(
	contestDesc ContestDescription,
	plaintext PlaintextBallot,
	nonceSeed group.ElementModQ,
	context CiphertextElectionContext,
	usePrecompute bool,
	allowOvervotes bool,
	precomputeBuffer *precompute.Buffer,
) (CiphertextBallotContest, error) {
	plaintextContest, _ := plaintext.Contest(contestDesc.ObjectID)

	contestNonce := hash.Elems(context.CryptoExtendedBaseHash, hash.PrefixSelectionNoncePrefix, nonceSeed, contestDesc.SequenceOrder)

	var totalVotes uint64
	for _, s := range plaintextContest.Selections {
		if !s.IsPlaceholder {
			totalVotes += s.Vote
		}
	}
	overvoted := totalVotes > contestDesc.NumberElected
	var overvotedIDs []string
	if overvoted {
		if !allowOvervotes {
			return CiphertextBallotContest{}, fmt.Errorf("%w: contest %s", ErrOvervote, contestDesc.ObjectID)
		}
		for _, s := range plaintextContest.Selections {
			if !s.IsPlaceholder && s.Vote != 0 {
				overvotedIDs = append(overvotedIDs, s.ObjectID)
			}
		}
	}

	selections := make([]CiphertextBallotSelection, len(contestDesc.Selections))
	selectionNonces := make([]group.ElementModQ, len(contestDesc.Selections))
	writeIns := make(map[string]string)

	for j, selDesc := range contestDesc.Selections {
		plaintextSel, found := plaintextContest.Selection(selDesc.ObjectID)
		vote := plaintextSel.Vote
		if !found || overvoted {
			vote = 0
		}
		if found && !overvoted && plaintextSel.WriteIn != "" {
			writeIns[selDesc.ObjectID] = plaintextSel.WriteIn
		}

		selectionNonce := hash.Elems(contestNonce, selDesc.SequenceOrder)
		selectionNonces[j] = selectionNonce

		sel, err := encryptSelection(selDesc, vote, selectionNonce, context, usePrecompute, precomputeBuffer)
		if err != nil {
			return CiphertextBallotContest{}, fmt.Errorf("ballot: encrypt selection %s: %w", selDesc.ObjectID, err)
		}
		selections[j] = sel
	}

	cts := make([]elgamal.Ciphertext, len(selections))
	for j, s := range selections {
		cts[j] = s.Ciphertext
	}
	accumulation, err := elgamal.Add(cts...)
	if err != nil {
		return CiphertextBallotContest{}, fmt.Errorf("ballot: accumulate contest %s: %w", contestDesc.ObjectID, err)
	}
	aggregateNonce := group.AddModQFrom(selectionNonces...)

	m := totalVotes
	if overvoted {
		m = 0
	}
	rangedSeed := egrand.NewNoncesWithHeader(contestNonce, "ranged-chaum-pedersen-proof")
	rangedProof, err := proof.NewRangedDeterministic(m, contestDesc.NumberElected, accumulation, aggregateNonce, context.K, context.CryptoExtendedBaseHash, rangedSeed)
	if err != nil {
		return CiphertextBallotContest{}, fmt.Errorf("ballot: ranged proof contest %s: %w", contestDesc.ObjectID, err)
	}

	extendedData, err := encryptContestExtendedData(writeIns, overvotedIDs, contestNonce, context)
	if err != nil {
		return CiphertextBallotContest{}, fmt.Errorf("ballot: contest %s: %w", contestDesc.ObjectID, err)
	}

	return CiphertextBallotContest{
		ObjectID:               contestDesc.ObjectID,
		SequenceOrder:          contestDesc.SequenceOrder,
		DescriptionHash:        contestDesc.DescriptionHash,
		Selections:             selections,
		Nonce:                  &aggregateNonce,
		CiphertextAccumulation: accumulation,
		CryptoHash:             contestCryptoHash(context.CryptoExtendedBaseHash, contestDesc.SequenceOrder, context.K, selections),
		Proof:                  rangedProof,
		ExtendedData:           extendedData,
	}, nil
}

// encryptContestExtendedData assembles and hashed-ElGamal-encrypts the
// contest's write-ins and overvote record (§4.9 step 7). Returns the zero
// ciphertext when there is nothing to carry.
func encryptContestExtendedData(writeIns map[string]string, overvotedIDs []string, contestNonce group.ElementModQ, context CiphertextElectionContext) (elgamal.HashedElGamalCiphertext, error) {
	payload := contestExtendedPayload{WriteIns: writeIns}
	if overvotedIDs != nil {
		record, err := json.Marshal(overvoteRecord{Error: "overvote", ErrorData: overvotedIDs})
		if err != nil {
			return elgamal.HashedElGamalCiphertext{}, fmt.Errorf("encode overvote record: %w", err)
		}
		payload.Overvote = string(record)
	}
	if payload.isEmpty() {
		return elgamal.HashedElGamalCiphertext{}, nil
	}

	encoded, err := cbor.Marshal(payload)
	if err != nil {
		return elgamal.HashedElGamalCiphertext{}, fmt.Errorf("encode extended data: %w", err)
	}
	extendedDataNonce := hash.Elems(contestNonce, "extended-data")
	ct, err := elgamal.HashedEncrypt(encoded, extendedDataNonce, hash.PrefixContestDataSecret, context.K, context.CryptoExtendedBaseHash, extendedDataMaxLen, true)
	if err != nil {
		return elgamal.HashedElGamalCiphertext{}, fmt.Errorf("encrypt extended data: %w", err)
	}
	return ct, nil
}

// encryptSelection encrypts a single selection (§4.9.1). When usePrecompute
// is set and the buffer is bound, it pops a PrecomputedSelection and builds
// the ciphertext and disjunctive proof from its real/fake branches, bypassing
// the nonce tree entirely; otherwise it encrypts against selectionNonce and
// derives the proof deterministically from the same nonce.
func encryptSelection(
	desc SelectionDescription,
	vote uint64,
	selectionNonce group.ElementModQ,
	context CiphertextElectionContext,
	usePrecompute bool,
	precomputeBuffer *precompute.Buffer,
) (CiphertextBallotSelection, error) {
	var ct elgamal.Ciphertext
	var disjProof proof.Disjunctive
	var actualNonce group.ElementModQ

	if usePrecompute {
		precomp, err := precomputeBuffer.GetSelection()
		if err != nil {
			return CiphertextBallotSelection{}, err
		}
		actualNonce = precomp.RealBranch.Exp
		ct.Pad = precomp.RealBranch.GToExp
		if vote == 0 {
			ct.Data = precomp.RealBranch.PubkeyToExp
		} else {
			ct.Data = group.MulModP(context.K, precomp.RealBranch.PubkeyToExp)
		}

		u0, u1 := precomp.RealBranch.Exp, precomp.FakeBranch.Exp1
		if vote != 0 {
			u0, u1 = precomp.FakeBranch.Exp1, precomp.RealBranch.Exp
		}
		disjProof, err = proof.NewDisjunctiveFromCommitments(vote, ct, actualNonce, context.K, context.CryptoExtendedBaseHash, u0, u1, precomp.FakeBranch.Exp2)
		if err != nil {
			return CiphertextBallotSelection{}, err
		}
	} else {
		var err error
		actualNonce = selectionNonce
		ct, err = elgamal.Encrypt(vote, actualNonce, context.K)
		if err != nil {
			return CiphertextBallotSelection{}, err
		}
		proofSeed := egrand.NewNoncesWithHeader(selectionNonce, "disjunctive-chaum-pedersen-proof")
		disjProof, err = proof.NewDisjunctiveDeterministic(vote, ct, actualNonce, context.K, context.CryptoExtendedBaseHash, proofSeed)
		if err != nil {
			return CiphertextBallotSelection{}, err
		}
	}

	nonceCopy := actualNonce
	return CiphertextBallotSelection{
		ObjectID:        desc.ObjectID,
		SequenceOrder:   desc.SequenceOrder,
		DescriptionHash: desc.DescriptionHash,
		Ciphertext:      ct,
		IsPlaceholder:   desc.IsPlaceholder,
		Nonce:           &nonceCopy,
		CryptoHash:      selectionCryptoHash(ct),
		Proof:           disjProof,
	}, nil
}
