package contract

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidContractLength   = errors.New("invalid contract length")
	ErrNegativeSalaryComponent = errors.New("negative salary component")
)

// ProrateBonus amortizes one bonus tranche over the contract years. The
// window is min(contractYears, maxYears): a bonus never prorates past
// maxYears, so years beyond the window carry zero from this tranche.
//
// Annual amounts are floor(bonus/window); the integer remainder lands on the
// final prorated year so the schedule always sums back to the bonus exactly.
// The returned slice has one entry per contract year, index 0 = year one.
func ProrateBonus(bonus int64, contractYears, maxYears int) ([]int64, error) {
	if contractYears < 1 {
		return nil, fmt.Errorf("%w: %d years", ErrInvalidContractLength, contractYears)
	}
	if maxYears < 1 {
		return nil, fmt.Errorf("%w: proration window must be at least 1 year", ErrInvalidContractLength)
	}
	if bonus < 0 {
		return nil, fmt.Errorf("%w: bonus=%d", ErrNegativeSalaryComponent, bonus)
	}

	window := contractYears
	if window > maxYears {
		window = maxYears
	}

	schedule := make([]int64, contractYears)
	if bonus == 0 {
		return schedule, nil
	}

	annual := bonus / int64(window)
	remainder := bonus % int64(window)
	for i := 0; i < window; i++ {
		schedule[i] = annual
	}
	schedule[window-1] += remainder

	return schedule, nil
}

// CapHit derives the season's total cap figure from one YearDetail. It is a
// pure summation: base salary, roster/workout/per-game bonuses, the likely
// incentive bucket, and both proration streams. Option bonus cash and NLTBE
// incentives hit the books elsewhere, not here.
func CapHit(d YearDetail) (int64, error) {
	components := []struct {
		name  string
		value int64
	}{
		{"base_salary", d.BaseSalary},
		{"roster_bonus", d.RosterBonus},
		{"workout_bonus", d.WorkoutBonus},
		{"per_game_bonus", d.PerGameBonus},
		{"ltbe_incentive", d.LTBEIncentive},
		{"signing_bonus_proration", d.SigningBonusProration},
		{"option_bonus_proration", d.OptionBonusProration},
	}

	var total int64
	for _, c := range components {
		if c.value < 0 {
			return 0, fmt.Errorf("%w: %s=%d", ErrNegativeSalaryComponent, c.name, c.value)
		}
		total += c.value
	}

	return total, nil
}

// Proration returns the combined signing and option bonus proration charged
// to this year.
func (d YearDetail) Proration() int64 {
	return d.SigningBonusProration + d.OptionBonusProration
}
