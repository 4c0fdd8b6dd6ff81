package ballot

import "github.com/davinci-labs/egcore/group"

// SelectionDescription is the minimal manifest fragment encryption needs for
// one selection: its identity, its position within the contest, and the hash
// of its full manifest description (§6, "Manifest loader" collaborator
// interface). The rest of the manifest data model — candidate names,
// parties, ballot layout — belongs to the manifest loader, which is
// explicitly out of scope (§1).
type SelectionDescription struct {
	ObjectID        string
	SequenceOrder   uint64
	DescriptionHash group.ElementModQ
	IsPlaceholder   bool
}

// ContestDescription is the minimal manifest fragment for one contest. The
// ranged proof (§4.8.2) witnesses 0 ≤ Σvotes ≤ NumberElected directly, so
// placeholder selections carried here are encrypted like any other
// selection rather than vote-padded to a fixed total.
type ContestDescription struct {
	ObjectID        string
	SequenceOrder   uint64
	DescriptionHash group.ElementModQ
	Selections      []SelectionDescription
	NumberElected   uint64 // L, §4.8.2
}

// Selection looks up a selection description by object id.
func (c ContestDescription) Selection(objectID string) (SelectionDescription, bool) {
	for _, s := range c.Selections {
		if s.ObjectID == objectID {
			return s, true
		}
	}
	return SelectionDescription{}, false
}

// BallotStyle names the contests a ballot of this style must contain.
type BallotStyle struct {
	ObjectID string
	Contests []ContestDescription
}

// Contest looks up a contest description by object id.
func (s BallotStyle) Contest(objectID string) (ContestDescription, bool) {
	for _, c := range s.Contests {
		if c.ObjectID == objectID {
			return c, true
		}
	}
	return ContestDescription{}, false
}

// InternalManifest indexes ballot styles by object id, the shape the
// encryption pipeline looks them up by (§4.9, step 1).
type InternalManifest struct {
	ManifestHash group.ElementModQ
	Styles       map[string]BallotStyle
}

// Style looks up a ballot style by object id.
func (m InternalManifest) Style(ballotStyleID string) (BallotStyle, bool) {
	s, ok := m.Styles[ballotStyleID]
	return s, ok
}
