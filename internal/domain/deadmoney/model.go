package deadmoney

import (
	"fmt"
	"time"
)

// Entry is the cap charge left behind by a release, linked to the voided
// contract. NextYearCharge is zero unless the release carried a June-1
// designation. All money values are cents.
type Entry struct {
	ID         string
	DynastyID  string
	ContractID string
	TeamID     string
	PlayerID   string

	ReleaseSeason     int
	JuneOneDesignated bool

	CurrentYearCharge int64
	NextYearCharge    int64

	// Charge components, kept separate for audit display.
	RemainingProration   int64
	AcceleratedGuarantee int64

	CreatedAt time.Time
}

func (e Entry) Total() int64 {
	return e.CurrentYearCharge + e.NextYearCharge
}

// ChargeForSeason maps the entry onto one capped season: the release season
// takes the current charge, the following season takes the deferred piece.
func (e Entry) ChargeForSeason(season int) int64 {
	switch season {
	case e.ReleaseSeason:
		return e.CurrentYearCharge
	case e.ReleaseSeason + 1:
		return e.NextYearCharge
	default:
		return 0
	}
}

func (e Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("dead money id is required")
	}
	if e.DynastyID == "" {
		return fmt.Errorf("dynasty id is required")
	}
	if e.ContractID == "" {
		return fmt.Errorf("contract id is required")
	}
	if e.CurrentYearCharge < 0 || e.NextYearCharge < 0 {
		return fmt.Errorf("dead money charges cannot be negative")
	}
	if !e.JuneOneDesignated && e.NextYearCharge != 0 {
		return fmt.Errorf("standard release cannot defer dead money")
	}
	if e.CurrentYearCharge+e.NextYearCharge != e.RemainingProration+e.AcceleratedGuarantee {
		return fmt.Errorf("dead money charges do not match components")
	}

	return nil
}
