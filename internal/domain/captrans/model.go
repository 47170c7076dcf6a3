package captrans

import (
	"fmt"
	"time"
)

// Kind is the mutating operation a transaction records.
type Kind string

const (
	KindSign        Kind = "SIGN"
	KindRestructure Kind = "RESTRUCTURE"
	KindRelease     Kind = "RELEASE"
	KindTag         Kind = "TAG"
	KindTender      Kind = "TENDER"
)

var AllKinds = map[Kind]struct{}{
	KindSign:        {},
	KindRestructure: {},
	KindRelease:     {},
	KindTag:         {},
	KindTender:      {},
}

// Transaction is one append-only audit row with before/after cap-space
// snapshots. It exists for review only; calculations never re-derive state
// from it.
type Transaction struct {
	ID         string
	DynastyID  string
	TeamID     string
	PlayerID   string
	ContractID string
	Kind       Kind
	Season     int

	// Amount is the headline figure of the operation: first-year cap hit for
	// a signing, converted amount for a restructure, total dead money for a
	// release, tag salary for a tag.
	Amount int64

	CapSpaceBefore int64
	CapSpaceAfter  int64

	Note      string
	CreatedAt time.Time
}

func (t Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction id is required")
	}
	if t.DynastyID == "" {
		return fmt.Errorf("dynasty id is required")
	}
	if t.TeamID == "" {
		return fmt.Errorf("team id is required")
	}
	if _, ok := AllKinds[t.Kind]; !ok {
		return fmt.Errorf("unknown transaction kind: %s", t.Kind)
	}
	if t.Season <= 0 {
		return fmt.Errorf("season is required")
	}

	return nil
}
