package ballot

// PlaintextBallotSelection is a voter's raw selection before encryption
// (§3). Vote must be 0 or 1 on the core encryption path.
type PlaintextBallotSelection struct {
	ObjectID      string
	Vote          uint64
	IsPlaceholder bool
	WriteIn       string
}

// PlaintextBallotContest groups the selections a voter made within one
// contest.
type PlaintextBallotContest struct {
	ObjectID   string
	Selections []PlaintextBallotSelection
}

// Selection looks up a selection by object id.
func (c PlaintextBallotContest) Selection(objectID string) (PlaintextBallotSelection, bool) {
	for _, s := range c.Selections {
		if s.ObjectID == objectID {
			return s, true
		}
	}
	return PlaintextBallotSelection{}, false
}

// PlaintextBallot is the voter-facing ballot submitted for encryption.
type PlaintextBallot struct {
	ObjectID      string
	BallotStyleID string
	Contests      []PlaintextBallotContest
}

// Contest looks up a contest by object id.
func (b PlaintextBallot) Contest(objectID string) (PlaintextBallotContest, bool) {
	for _, c := range b.Contests {
		if c.ObjectID == objectID {
			return c, true
		}
	}
	return PlaintextBallotContest{}, false
}
