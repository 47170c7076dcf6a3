package rulebook

import "fmt"

// Rulebook stores the league accounting rules one rule-era is governed by.
// Calculators take it as an explicit argument so several eras (different
// seasons' CBAs) can coexist in one process. All money values are cents.
type Rulebook struct {
	// MaxProrationYears caps the amortization window for any bonus tranche,
	// regardless of how long the contract itself runs.
	MaxProrationYears int
	MaxContractYears  int

	// JuneOneLimitPerTeam is how many June-1 release designations a team may
	// use per season.
	JuneOneLimitPerTeam int

	// Top51Count is the number of highest cap hits counted in offseason mode.
	Top51Count int

	// Franchise/transition tag parameters. Percentages are basis points so
	// escalators stay in integer math (12000 = 120%).
	FranchiseTopSalaries  int
	TransitionTopSalaries int
	SecondTagEscalatorBps int64
	ThirdTagEscalatorBps  int64
	TagsPerTeamPerSeason  int

	// RFA tender amounts and the prior-salary escalator floor.
	TenderFirstRound      int64
	TenderSecondRound     int64
	TenderOriginalRound   int64
	TenderRightOfRefusal  int64
	TenderPriorSalaryBps  int64

	// Spending floor: cumulative cash over the window must reach
	// SpendingFloorBps of the cumulative cap.
	SpendingFloorBps     int64
	SpendingFloorSeasons int

	// MinimumSalary is the league-minimum base salary a restructure can
	// never convert below.
	MinimumSalary int64
}

func Default() Rulebook {
	return Rulebook{
		MaxProrationYears:     5,
		MaxContractYears:      7,
		JuneOneLimitPerTeam:   2,
		Top51Count:            51,
		FranchiseTopSalaries:  5,
		TransitionTopSalaries: 10,
		SecondTagEscalatorBps: 12000,
		ThirdTagEscalatorBps:  14400,
		TagsPerTeamPerSeason:  1,
		TenderFirstRound:      6_822_000_00,
		TenderSecondRound:     4_891_000_00,
		TenderOriginalRound:   3_116_000_00,
		TenderRightOfRefusal:  2_985_000_00,
		TenderPriorSalaryBps:  11000,
		SpendingFloorBps:      8900,
		SpendingFloorSeasons:  4,
		MinimumSalary:         795_000_00,
	}
}

func (r Rulebook) Validate() error {
	if r.MaxProrationYears < 1 {
		return fmt.Errorf("max proration years must be at least 1")
	}
	if r.MaxContractYears < 1 {
		return fmt.Errorf("max contract years must be at least 1")
	}
	if r.JuneOneLimitPerTeam < 0 {
		return fmt.Errorf("june 1 limit cannot be negative")
	}
	if r.Top51Count < 1 {
		return fmt.Errorf("top-51 count must be at least 1")
	}
	if r.FranchiseTopSalaries < 1 || r.TransitionTopSalaries < 1 {
		return fmt.Errorf("tag comparable-salary counts must be at least 1")
	}
	if r.SpendingFloorSeasons < 1 {
		return fmt.Errorf("spending floor window must be at least 1 season")
	}
	if r.SpendingFloorBps < 0 || r.SpendingFloorBps > 10000 {
		return fmt.Errorf("spending floor must be between 0 and 10000 bps")
	}
	if r.MinimumSalary < 0 {
		return fmt.Errorf("minimum salary cannot be negative")
	}

	return nil
}

// ApplyBps scales a cents amount by a basis-point multiplier, flooring the
// result so dollar figures stay exact integers.
func ApplyBps(amount int64, bps int64) int64 {
	return amount * bps / 10000
}
