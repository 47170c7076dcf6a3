package compliance

import (
	"fmt"

	"github.com/gridironsim/capengine/internal/domain/capspace"
	"github.com/gridironsim/capengine/internal/domain/rulebook"
)

// InsufficientCapSpaceError rejects a transaction whose cap-hit delta does
// not fit under the team's available space. Shortfall is how far over the
// transaction would land, in cents.
type InsufficientCapSpaceError struct {
	Shortfall int64
}

func (e *InsufficientCapSpaceError) Error() string {
	return fmt.Sprintf("insufficient cap space: short by %d", e.Shortfall)
}

// PrecheckTransaction validates a proposed increase in current-year
// commitment against available space. Deltas that free space always pass.
func PrecheckTransaction(capHitDelta, capSpaceAvailable int64) error {
	if capHitDelta <= capSpaceAvailable {
		return nil
	}
	return &InsufficientCapSpaceError{Shortfall: capHitDelta - capSpaceAvailable}
}

// LeagueYearFindings checks every team sheet for the start-of-league-year
// rule: cap space must be non-negative under full-roster accounting.
// Violations come back as findings rather than errors; the figures still stand.
func LeagueYearFindings(sheets []capspace.Sheet) []Finding {
	var findings []Finding
	for _, sheet := range sheets {
		if sheet.CapSpaceAvailable >= 0 {
			continue
		}
		findings = append(findings, Finding{
			Kind:      FindingCapOverage,
			DynastyID: sheet.DynastyID,
			TeamID:    sheet.TeamID,
			Season:    sheet.Season,
			Amount:    -sheet.CapSpaceAvailable,
			Detail: fmt.Sprintf("committed %d against adjusted cap %d under %s accounting",
				sheet.CommittedTotal(), sheet.AdjustedCap(), sheet.Mode),
		})
	}
	return findings
}

// SpendingFloorInput is one team's cash and cap figures over a floor window.
// Both slices are per season and must align with Seasons.
type SpendingFloorInput struct {
	DynastyID string
	TeamID    string
	Seasons   []int
	CashPaid  []int64
	CapLimits []int64
}

// SpendingFloorFinding checks the rolling-window spending floor: cumulative
// cash over the window must reach the rulebook share of the cumulative cap.
// It returns at most one finding, attributed to the window's closing season.
func SpendingFloorFinding(in SpendingFloorInput, rb rulebook.Rulebook) (Finding, bool, error) {
	if len(in.Seasons) != rb.SpendingFloorSeasons {
		return Finding{}, false, fmt.Errorf("spending floor window needs %d seasons, got %d",
			rb.SpendingFloorSeasons, len(in.Seasons))
	}
	if len(in.CashPaid) != len(in.Seasons) || len(in.CapLimits) != len(in.Seasons) {
		return Finding{}, false, fmt.Errorf("cash and cap series must align with seasons")
	}

	var totalCash, totalCap int64
	for i := range in.Seasons {
		totalCash += in.CashPaid[i]
		totalCap += in.CapLimits[i]
	}

	required := rulebook.ApplyBps(totalCap, rb.SpendingFloorBps)
	if totalCash >= required {
		return Finding{}, false, nil
	}

	closing := in.Seasons[len(in.Seasons)-1]
	return Finding{
		Kind:      FindingSpendingFloorShortage,
		DynastyID: in.DynastyID,
		TeamID:    in.TeamID,
		Season:    closing,
		Amount:    required - totalCash,
		Detail: fmt.Sprintf("spent %d of required %d over %d-%d",
			totalCash, required, in.Seasons[0], closing),
	}, true, nil
}
