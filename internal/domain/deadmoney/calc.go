package deadmoney

import (
	"errors"
	"fmt"

	"github.com/gridironsim/capengine/internal/domain/contract"
)

var (
	ErrJuneOneLimitExceeded   = errors.New("june 1 designation limit exceeded")
	ErrReleaseOutsideContract = errors.New("release season outside contract years")
)

// ReleaseInput carries everything a release charge depends on. Years must be
// the full detail set for the contract being released.
type ReleaseInput struct {
	Contract      contract.Contract
	Years         []contract.YearDetail
	ReleaseSeason int
	JuneOne       bool
}

// CalculateRelease computes the dead-money entry for cutting a player and
// returns the remaining year rows voided. It never persists anything; the
// caller owns the write.
//
// Standard release: every remaining year's proration collapses into the
// release season, plus base salary guaranteed at signing for seasons after
// the release. June-1 designation keeps only the release season's own
// proration on the current year and defers the entire remaining balance to
// the next season; the total is identical either way.
func CalculateRelease(in ReleaseInput) (Entry, []contract.YearDetail, error) {
	if in.Contract.IsVoided {
		return Entry{}, nil, fmt.Errorf("contract %s is already voided", in.Contract.ID)
	}
	if !in.Contract.CoversSeason(in.ReleaseSeason) {
		return Entry{}, nil, fmt.Errorf("%w: season=%d contract runs %d-%d",
			ErrReleaseOutsideContract, in.ReleaseSeason, in.Contract.StartYear, in.Contract.EndYear)
	}

	var (
		remainingProration int64
		currentProration   int64
		acceleratedBase    int64
	)
	voided := make([]contract.YearDetail, 0, len(in.Years))
	for _, year := range in.Years {
		if year.IsVoided || year.Season < in.ReleaseSeason {
			continue
		}

		if _, err := contract.CapHit(year); err != nil {
			return Entry{}, nil, fmt.Errorf("year %d: %w", year.Season, err)
		}

		remainingProration += year.Proration()
		if year.Season == in.ReleaseSeason {
			currentProration = year.Proration()
		}
		if year.Season > in.ReleaseSeason {
			acceleratedBase += year.GuaranteedBase
		}

		year.IsVoided = true
		voided = append(voided, year)
	}

	total := remainingProration + acceleratedBase
	entry := Entry{
		DynastyID:            in.Contract.DynastyID,
		ContractID:           in.Contract.ID,
		TeamID:               in.Contract.TeamID,
		PlayerID:             in.Contract.PlayerID,
		ReleaseSeason:        in.ReleaseSeason,
		JuneOneDesignated:    in.JuneOne,
		RemainingProration:   remainingProration,
		AcceleratedGuarantee: acceleratedBase,
	}

	if in.JuneOne {
		entry.CurrentYearCharge = currentProration
		entry.NextYearCharge = total - currentProration
	} else {
		entry.CurrentYearCharge = total
	}

	return entry, voided, nil
}

// TotalForSeason sums the charges a set of entries puts on one team season.
func TotalForSeason(entries []Entry, season int) int64 {
	var total int64
	for _, e := range entries {
		total += e.ChargeForSeason(season)
	}
	return total
}
