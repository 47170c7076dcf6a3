package tag

import (
	"fmt"
	"time"
)

// Kind distinguishes the two tag flavors. Exclusive and non-exclusive
// franchise tags price identically under our rulebook, so one kind covers
// both.
type Kind string

const (
	KindFranchise  Kind = "FRANCHISE"
	KindTransition Kind = "TRANSITION"
)

var AllKinds = map[Kind]struct{}{
	KindFranchise:  {},
	KindTransition: {},
}

// FranchiseTag records a tag applied to a player for one season. The
// consecutive count is tracked per player across the dynasty lifetime and
// resets only when a multi-year contract supersedes the tag.
type FranchiseTag struct {
	ID        string
	DynastyID string
	TeamID    string
	PlayerID  string
	Season    int
	Kind      Kind

	ConsecutiveCount int
	Salary           int64

	CreatedAt time.Time
}

func (t FranchiseTag) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tag id is required")
	}
	if t.DynastyID == "" {
		return fmt.Errorf("dynasty id is required")
	}
	if t.PlayerID == "" || t.TeamID == "" {
		return fmt.Errorf("player id and team id are required")
	}
	if _, ok := AllKinds[t.Kind]; !ok {
		return fmt.Errorf("unknown tag kind: %s", t.Kind)
	}
	if t.ConsecutiveCount < 1 {
		return fmt.Errorf("consecutive count must be at least 1")
	}
	if t.Salary <= 0 {
		return fmt.Errorf("tag salary must be positive")
	}

	return nil
}

// TenderLevel is the compensation level attached to a restricted free agent
// tender.
type TenderLevel string

const (
	TenderFirstRound     TenderLevel = "FIRST_ROUND"
	TenderSecondRound    TenderLevel = "SECOND_ROUND"
	TenderOriginalRound  TenderLevel = "ORIGINAL_ROUND"
	TenderRightOfRefusal TenderLevel = "RIGHT_OF_FIRST_REFUSAL"
)

var AllTenderLevels = map[TenderLevel]struct{}{
	TenderFirstRound:     {},
	TenderSecondRound:    {},
	TenderOriginalRound:  {},
	TenderRightOfRefusal: {},
}

type RFATender struct {
	ID        string
	DynastyID string
	TeamID    string
	PlayerID  string
	Season    int
	Level     TenderLevel
	Salary    int64

	CreatedAt time.Time
}

func (t RFATender) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tender id is required")
	}
	if t.DynastyID == "" {
		return fmt.Errorf("dynasty id is required")
	}
	if t.PlayerID == "" || t.TeamID == "" {
		return fmt.Errorf("player id and team id are required")
	}
	if _, ok := AllTenderLevels[t.Level]; !ok {
		return fmt.Errorf("unknown tender level: %s", t.Level)
	}
	if t.Salary <= 0 {
		return fmt.Errorf("tender salary must be positive")
	}

	return nil
}
