package ballot

import (
	"github.com/davinci-labs/egcore/config"
	"github.com/davinci-labs/egcore/group"
	"github.com/davinci-labs/egcore/hash"
)

// CiphertextElectionContext carries the published election parameters and
// their derived hash chain (§3, "CiphertextElectionContext"). ExtendedData
// is an opaque string map the caller may attach (e.g. spoiled-ballot audit
// metadata); the core never inspects its contents. CompatibilityMode records
// which ElGamal encoding the election publishes (§9, "EG 1.0 vs 2.0 dual
// support"); EncryptBallot always builds base-K ciphertexts regardless of
// this field's value — it exists so a caller decrypting or auditing
// published material knows which base to use, and so direct C1/C2 callers
// using the `config` package can key off the same context.
type CiphertextElectionContext struct {
	NumberOfGuardians      uint64
	Quorum                 uint64
	K                      group.ElementModP
	ManifestHash           group.ElementModQ
	ParameterHash          group.ElementModQ
	CommitmentHash         group.ElementModQ
	CryptoBaseHash         group.ElementModQ
	CryptoExtendedBaseHash group.ElementModQ
	CompatibilityMode      config.CompatibilityMode
	ExtendedData           map[string]string
}

// versionCode32 is "v2.0.0" right-padded with NUL bytes to 32 bytes (§6).
var versionCode32 = rightPadVersionCode(group.VersionCode, 32)

func rightPadVersionCode(s string, n int) []byte {
	b := make([]byte, n)
	copy(b, s)
	return b
}

// ComputeParameterHash derives parameterHash = H(versionCode ∥ "00" ∥ P ∥ Q ∥ g)
// (§3, §6). The result must equal the fixed value published for the active
// constant set; callers that load a constant set from an election record
// should compare against this before trusting it.
func ComputeParameterHash(p group.ElementModP, q group.ElementModQ, g group.ElementModP) group.ElementModQ {
	return hash.Elems(versionCode32, hash.PrefixParameterHash, p, q, g)
}

// ComputeManifestDigest derives manifestDigest = H(parameterHash ∥ "01" ∥ manifestHash).
func ComputeManifestDigest(parameterHash, manifestHash group.ElementModQ) group.ElementModQ {
	return hash.Elems(parameterHash, hash.PrefixManifestDigest, manifestHash)
}

// ComputeCryptoBaseHash derives HB = H(parameterHash ∥ "02" ∥ manifestDigest ∥ n ∥ k).
func ComputeCryptoBaseHash(parameterHash, manifestDigest group.ElementModQ, numberOfGuardians, quorum uint64) group.ElementModQ {
	return hash.Elems(parameterHash, hash.PrefixCryptoBaseHash, manifestDigest, numberOfGuardians, quorum)
}

// ComputeCryptoExtendedBaseHash derives Q̂ = H(HB ∥ "12" ∥ K ∥ commitmentHash).
func ComputeCryptoExtendedBaseHash(cryptoBaseHash group.ElementModQ, publicKey group.ElementModP, commitmentHash group.ElementModQ) group.ElementModQ {
	return hash.Elems(cryptoBaseHash, hash.PrefixExtendedBaseHash, publicKey, commitmentHash)
}

// NewContext assembles a CiphertextElectionContext, deriving the full hash
// chain from the active group parameters, the manifest hash, the election
// public key, and the guardians' published commitment hash.
func NewContext(numberOfGuardians, quorum uint64, publicKey group.ElementModP, manifestHash, commitmentHash group.ElementModQ, mode config.CompatibilityMode) (CiphertextElectionContext, error) {
	p, err := group.NewElementModP(group.Current.P)
	if err != nil {
		return CiphertextElectionContext{}, err
	}
	q, err := group.NewElementModQ(group.Current.Q)
	if err != nil {
		return CiphertextElectionContext{}, err
	}
	g := group.GModP()

	parameterHash := ComputeParameterHash(p, q, g)
	manifestDigest := ComputeManifestDigest(parameterHash, manifestHash)
	cryptoBaseHash := ComputeCryptoBaseHash(parameterHash, manifestDigest, numberOfGuardians, quorum)
	cryptoExtendedBaseHash := ComputeCryptoExtendedBaseHash(cryptoBaseHash, publicKey, commitmentHash)

	return CiphertextElectionContext{
		NumberOfGuardians:      numberOfGuardians,
		Quorum:                 quorum,
		K:                      publicKey,
		ManifestHash:           manifestHash,
		ParameterHash:          parameterHash,
		CommitmentHash:         commitmentHash,
		CryptoBaseHash:         cryptoBaseHash,
		CryptoExtendedBaseHash: cryptoExtendedBaseHash,
		CompatibilityMode:      mode,
	}, nil
}
