package contract

import (
	"errors"
	"fmt"

	"github.com/gridironsim/capengine/internal/domain/rulebook"
)

var (
	ErrRestructureBelowMinimum = errors.New("converted base salary would fall below league minimum")
	ErrNoRemainingYears        = errors.New("no remaining contract years to prorate into")
)

// RestructureResult describes one base-to-bonus conversion. Updated holds
// every year row the conversion touched, already adjusted; CurrentYearSavings
// is how much cap space the team frees in the conversion season.
type RestructureResult struct {
	Updated             []YearDetail
	CurrentYearSavings  int64
	NewProrationPerYear int64
}

// Restructure converts part of one season's base salary into a new bonus
// tranche spread over the contract's remaining years. The tranche gets its
// own proration window, capped at the rulebook maximum just like a fresh
// signing bonus; it does not reopen the original bonus schedule. The
// converted amount becomes fully guaranteed.
func Restructure(c Contract, details []YearDetail, season int, amount int64, rb rulebook.Rulebook) (RestructureResult, error) {
	if amount <= 0 {
		return RestructureResult{}, fmt.Errorf("conversion amount must be positive, got %d", amount)
	}
	if c.IsVoided {
		return RestructureResult{}, fmt.Errorf("contract %s is voided", c.ID)
	}
	if !c.CoversSeason(season) {
		return RestructureResult{}, fmt.Errorf("season %d outside contract years %d-%d", season, c.StartYear, c.EndYear)
	}

	remainingYears := c.EndYear - season + 1
	if remainingYears < 1 {
		return RestructureResult{}, ErrNoRemainingYears
	}

	var current *YearDetail
	bySeason := make(map[int]int, len(details))
	for i := range details {
		if details[i].IsVoided {
			continue
		}
		bySeason[details[i].Season] = i
		if details[i].Season == season {
			current = &details[i]
		}
	}
	if current == nil {
		return RestructureResult{}, fmt.Errorf("no year detail for season %d on contract %s", season, c.ID)
	}
	if current.BaseSalary-amount < rb.MinimumSalary {
		return RestructureResult{}, fmt.Errorf("%w: base %d minus %d is under %d",
			ErrRestructureBelowMinimum, current.BaseSalary, amount, rb.MinimumSalary)
	}

	schedule, err := ProrateBonus(amount, remainingYears, rb.MaxProrationYears)
	if err != nil {
		return RestructureResult{}, err
	}

	updated := make([]YearDetail, 0, len(schedule))
	for offset, tranche := range schedule {
		idx, ok := bySeason[season+offset]
		if !ok {
			return RestructureResult{}, fmt.Errorf("missing year detail for season %d on contract %s", season+offset, c.ID)
		}
		d := details[idx]
		d.SigningBonusProration += tranche
		if d.Season == season {
			d.BaseSalary -= amount
			d.GuaranteedBase -= min(amount, d.GuaranteedBase)
		}
		updated = append(updated, d)
	}

	// Cash timing is unchanged: the player still receives the converted
	// amount in the conversion season, now as bonus instead of salary.
	return RestructureResult{
		Updated:             updated,
		CurrentYearSavings:  amount - schedule[0],
		NewProrationPerYear: schedule[0],
	}, nil
}
