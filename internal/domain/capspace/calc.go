package capspace

import (
	"fmt"
	"sort"
	"time"

	"github.com/gridironsim/capengine/internal/domain/contract"
	"github.com/gridironsim/capengine/internal/domain/deadmoney"
	"github.com/gridironsim/capengine/internal/domain/rulebook"
)

// Inputs carries the raw rows a sheet is derived from. RosterYears are the
// active (non-voided, non-practice-squad) year details for the team and
// season; PracticeSquadYears the practice squad pool for the same season.
type Inputs struct {
	DynastyID string
	TeamID    string
	Season    int
	Mode      RosterMode

	CapLimit  int64
	Carryover int64

	RosterYears        []contract.YearDetail
	PracticeSquadYears []contract.YearDetail
	DeadMoney          []deadmoney.Entry
}

// BuildSheet aggregates a team's cap position. Top51 mode ranks roster
// contracts by full cap hit and counts only the highest 51; Full53 counts
// them all. LTBE incentives are carved out of each hit into their own bucket
// so the sheet's totals line up with how league reports break them out; the
// committed grand total is unchanged by the split.
func BuildSheet(in Inputs, rb rulebook.Rulebook, now time.Time) (Sheet, error) {
	if _, ok := AllModes[in.Mode]; !ok {
		return Sheet{}, fmt.Errorf("unknown roster mode: %s", in.Mode)
	}

	type rankedHit struct {
		hit  int64
		ltbe int64
	}

	ranked := make([]rankedHit, 0, len(in.RosterYears))
	for _, year := range in.RosterYears {
		if year.IsVoided {
			continue
		}
		hit, err := contract.CapHit(year)
		if err != nil {
			return Sheet{}, fmt.Errorf("contract %s season %d: %w", year.ContractID, year.Season, err)
		}
		ranked = append(ranked, rankedHit{hit: hit, ltbe: year.LTBEIncentive})
	}

	// Highest cap hits first; signing order is irrelevant to Top51.
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].hit > ranked[j].hit })

	counted := len(ranked)
	if in.Mode == ModeTop51 && counted > rb.Top51Count {
		counted = rb.Top51Count
	}

	var activeTotal, ltbeTotal int64
	for i := 0; i < counted; i++ {
		activeTotal += ranked[i].hit - ranked[i].ltbe
		ltbeTotal += ranked[i].ltbe
	}

	var psTotal int64
	for _, year := range in.PracticeSquadYears {
		if year.IsVoided {
			continue
		}
		hit, err := contract.CapHit(year)
		if err != nil {
			return Sheet{}, fmt.Errorf("practice squad contract %s: %w", year.ContractID, err)
		}
		psTotal += hit
	}

	sheet := Sheet{
		DynastyID:            in.DynastyID,
		TeamID:               in.TeamID,
		Season:               in.Season,
		Mode:                 in.Mode,
		CapLimit:             in.CapLimit,
		Carryover:            in.Carryover,
		ActiveContractsTotal: activeTotal,
		DeadMoneyTotal:       deadmoney.TotalForSeason(in.DeadMoney, in.Season),
		LTBEIncentivesTotal:  ltbeTotal,
		PracticeSquadTotal:   psTotal,
		CountedContracts:     counted,
		ComputedAt:           now,
	}
	sheet.CapSpaceAvailable = sheet.AdjustedCap() - sheet.CommittedTotal()

	return sheet, nil
}
