package capspace

import (
	"fmt"
	"time"
)

// RosterMode selects which contracts count toward the committed total.
type RosterMode string

const (
	// ModeTop51 is offseason accounting: only the 51 highest cap hits count.
	ModeTop51 RosterMode = "TOP51"
	// ModeFull53 is in-season accounting: every active roster contract counts.
	ModeFull53 RosterMode = "FULL53"
)

var AllModes = map[RosterMode]struct{}{
	ModeTop51:  {},
	ModeFull53: {},
}

// Sheet is one team's cap position for a season, derived on demand from the
// underlying contract and dead-money rows. All money values are cents.
type Sheet struct {
	DynastyID string
	TeamID    string
	Season    int
	Mode      RosterMode

	CapLimit  int64
	Carryover int64

	ActiveContractsTotal int64
	DeadMoneyTotal       int64
	LTBEIncentivesTotal  int64
	PracticeSquadTotal   int64

	CapSpaceAvailable int64

	// CountedContracts is how many roster contracts made the committed
	// total (at most 51 in Top51 mode).
	CountedContracts int

	ComputedAt time.Time
}

// CommittedTotal is everything charged against the adjusted cap.
func (s Sheet) CommittedTotal() int64 {
	return s.ActiveContractsTotal + s.DeadMoneyTotal + s.LTBEIncentivesTotal + s.PracticeSquadTotal
}

// AdjustedCap is the league limit plus the team's carryover from last season.
func (s Sheet) AdjustedCap() int64 {
	return s.CapLimit + s.Carryover
}

func (s Sheet) Validate() error {
	if s.DynastyID == "" || s.TeamID == "" {
		return fmt.Errorf("dynasty id and team id are required")
	}
	if s.Season <= 0 {
		return fmt.Errorf("season is required")
	}
	if _, ok := AllModes[s.Mode]; !ok {
		return fmt.Errorf("unknown roster mode: %s", s.Mode)
	}
	if s.CapSpaceAvailable != s.AdjustedCap()-s.CommittedTotal() {
		return fmt.Errorf("cap space drifted from its inputs")
	}

	return nil
}

// SeasonCap is one season's league-wide cap limit within a dynasty.
type SeasonCap struct {
	DynastyID string
	Season    int
	CapLimit  int64
}
