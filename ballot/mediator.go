package ballot

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/davinci-labs/egcore/group"
	"github.com/davinci-labs/egcore/hash"
	"github.com/davinci-labs/egcore/precompute"
)

// EncryptionMediator is a convenience wrapper around EncryptBallot that
// chains ballot codes across a device's session: each ballot's ballotCode
// becomes the ballotCodeSeed for the next (§4.9, "Ballot code chaining").
// This behavior is optional and external to the core encryption operation
// itself; nothing in EncryptBallot depends on it.
type EncryptionMediator struct {
	manifest       InternalManifest
	context        CiphertextElectionContext
	precompute     *precompute.Buffer
	ballotCodeSeed group.ElementModQ
}

// NewEncryptionMediator derives the initial ballotCodeSeed as the device
// hash H(deviceUUID, sessionUUID, launchCode, location) and returns a
// mediator ready to encrypt a sequence of ballots for that device session.
// deviceUUID and sessionUUID are parsed as RFC 4122 UUID strings; launchCode
// and location are caller-chosen opaque strings (e.g. a poll-book-issued
// code and a precinct identifier).
func NewEncryptionMediator(manifest InternalManifest, context CiphertextElectionContext, precomputeBuffer *precompute.Buffer, deviceUUID, sessionUUID, launchCode, location string) (*EncryptionMediator, error) {
	device, err := uuid.Parse(deviceUUID)
	if err != nil {
		return nil, fmt.Errorf("ballot: parse device uuid: %w", err)
	}
	session, err := uuid.Parse(sessionUUID)
	if err != nil {
		return nil, fmt.Errorf("ballot: parse session uuid: %w", err)
	}

	deviceHash := hash.Elems(device.String(), session.String(), launchCode, location)

	return &EncryptionMediator{
		manifest:       manifest,
		context:        context,
		precompute:     precomputeBuffer,
		ballotCodeSeed: deviceHash,
	}, nil
}

// BallotCodeSeed returns the seed the next Encrypt call will chain from.
func (m *EncryptionMediator) BallotCodeSeed() group.ElementModQ {
	return m.ballotCodeSeed
}

// Encrypt runs EncryptBallot against the mediator's chained seed and, on
// success, advances the seed to the new ballot's ballot code so the next
// call in this session chains from it (§4.9, "Ballot code chaining").
func (m *EncryptionMediator) Encrypt(plaintext PlaintextBallot, nonce *group.ElementModQ, timestamp *int64, verifyProofs, usePrecompute, allowOvervotes bool) (*CiphertextBallot, error) {
	b, err := EncryptBallot(plaintext, m.manifest, m.context, m.ballotCodeSeed, nonce, timestamp, verifyProofs, usePrecompute, allowOvervotes, m.precompute)
	if err != nil {
		return nil, err
	}
	m.ballotCodeSeed = b.BallotCode
	return b, nil
}
