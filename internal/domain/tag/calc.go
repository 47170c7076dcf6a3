package tag

import (
	"errors"
	"fmt"

	"github.com/gridironsim/capengine/internal/domain/rulebook"
)

var ErrTagLimitExceeded = errors.New("tag limit exceeded")

// FranchiseSalary prices a franchise tag. The base figure is the average of
// the top positional cap hits; a second consecutive tag escalates to 120% of
// the player's prior-year cap hit if that is greater, a third to 144%.
// Averages floor toward zero so results stay exact cents.
func FranchiseSalary(topSalaries []int64, priorCapHit int64, consecutiveCount int, rb rulebook.Rulebook) (int64, error) {
	if consecutiveCount < 1 {
		return 0, fmt.Errorf("consecutive count must be at least 1, got %d", consecutiveCount)
	}

	base, err := averageTop(topSalaries, rb.FranchiseTopSalaries)
	if err != nil {
		return 0, err
	}

	var escalated int64
	switch {
	case consecutiveCount >= 3:
		escalated = rulebook.ApplyBps(priorCapHit, rb.ThirdTagEscalatorBps)
	case consecutiveCount == 2:
		escalated = rulebook.ApplyBps(priorCapHit, rb.SecondTagEscalatorBps)
	}

	if escalated > base {
		return escalated, nil
	}
	return base, nil
}

// TransitionSalary is the average of the top positional cap hits, with no
// escalator.
func TransitionSalary(topSalaries []int64, rb rulebook.Rulebook) (int64, error) {
	return averageTop(topSalaries, rb.TransitionTopSalaries)
}

// TenderSalary prices an RFA tender: the rulebook amount for the level, or
// 110% of the player's prior-year base salary when that is greater.
func TenderSalary(level TenderLevel, priorBaseSalary int64, rb rulebook.Rulebook) (int64, error) {
	var amount int64
	switch level {
	case TenderFirstRound:
		amount = rb.TenderFirstRound
	case TenderSecondRound:
		amount = rb.TenderSecondRound
	case TenderOriginalRound:
		amount = rb.TenderOriginalRound
	case TenderRightOfRefusal:
		amount = rb.TenderRightOfRefusal
	default:
		return 0, fmt.Errorf("unknown tender level: %s", level)
	}

	if priorBaseSalary > 0 {
		escalated := rulebook.ApplyBps(priorBaseSalary, rb.TenderPriorSalaryBps)
		if escalated > amount {
			return escalated, nil
		}
	}

	return amount, nil
}

// averageTop averages at most n salaries. Fewer comparables than n is fine
// (early dynasty seasons have thin positional markets); an empty table is
// not.
func averageTop(salaries []int64, n int) (int64, error) {
	if len(salaries) == 0 {
		return 0, fmt.Errorf("no comparable salaries available")
	}
	if n < 1 {
		return 0, fmt.Errorf("comparable count must be at least 1")
	}

	count := len(salaries)
	if count > n {
		count = n
	}

	var sum int64
	for i := 0; i < count; i++ {
		if salaries[i] < 0 {
			return 0, fmt.Errorf("comparable salary cannot be negative: %d", salaries[i])
		}
		sum += salaries[i]
	}

	return sum / int64(count), nil
}
