package memory

import (
	"time"

	"github.com/gridironsim/capengine/internal/domain/capspace"
	"github.com/gridironsim/capengine/internal/domain/contract"
)

const (
	DynastyIDGridiron = "dyn-gridiron-2026"

	TeamIDIronhawks = "tm-ironhawks"
	TeamIDMonarchs  = "tm-monarchs"
)

func SeedSeasonCaps() []capspace.SeasonCap {
	return []capspace.SeasonCap{
		{DynastyID: DynastyIDGridiron, Season: 2023, CapLimit: 224_800_000_00},
		{DynastyID: DynastyIDGridiron, Season: 2024, CapLimit: 255_400_000_00},
		{DynastyID: DynastyIDGridiron, Season: 2025, CapLimit: 267_000_000_00},
		{DynastyID: DynastyIDGridiron, Season: 2026, CapLimit: 279_200_000_00},
	}
}

func SeedCarryovers() []TeamCarryover {
	return []TeamCarryover{
		{DynastyID: DynastyIDGridiron, TeamID: TeamIDIronhawks, Season: 2026, Amount: 3_400_000_00},
		{DynastyID: DynastyIDGridiron, TeamID: TeamIDMonarchs, Season: 2026, Amount: 0},
	}
}

// SeedPositionSalaries backs the tag comparables table. The top five
// quarterback hits average out to $28M even.
func SeedPositionSalaries() []PositionSalary {
	return []PositionSalary{
		{DynastyID: DynastyIDGridiron, Position: "QB", Season: 2026, CapHit: 31_000_000_00},
		{DynastyID: DynastyIDGridiron, Position: "QB", Season: 2026, CapHit: 29_000_000_00},
		{DynastyID: DynastyIDGridiron, Position: "QB", Season: 2026, CapHit: 28_000_000_00},
		{DynastyID: DynastyIDGridiron, Position: "QB", Season: 2026, CapHit: 27_000_000_00},
		{DynastyID: DynastyIDGridiron, Position: "QB", Season: 2026, CapHit: 25_000_000_00},
		{DynastyID: DynastyIDGridiron, Position: "QB", Season: 2026, CapHit: 22_500_000_00},
		{DynastyID: DynastyIDGridiron, Position: "WR", Season: 2026, CapHit: 24_000_000_00},
		{DynastyID: DynastyIDGridiron, Position: "WR", Season: 2026, CapHit: 21_000_000_00},
		{DynastyID: DynastyIDGridiron, Position: "WR", Season: 2026, CapHit: 18_500_000_00},
		{DynastyID: DynastyIDGridiron, Position: "WR", Season: 2026, CapHit: 17_000_000_00},
		{DynastyID: DynastyIDGridiron, Position: "WR", Season: 2026, CapHit: 16_250_000_00},
		{DynastyID: DynastyIDGridiron, Position: "EDGE", Season: 2026, CapHit: 26_000_000_00},
		{DynastyID: DynastyIDGridiron, Position: "EDGE", Season: 2026, CapHit: 23_750_000_00},
		{DynastyID: DynastyIDGridiron, Position: "EDGE", Season: 2026, CapHit: 21_000_000_00},
	}
}

func SeedContracts() []contract.Contract {
	return []contract.Contract{
		{
			ID:              "ct-qb-01",
			DynastyID:       DynastyIDGridiron,
			PlayerID:        "pl-qb-01",
			TeamID:          TeamIDIronhawks,
			Type:            contract.TypeVeteran,
			SignedAt:        time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			StartYear:       2025,
			EndYear:         2028,
			TotalValue:      48_000_000_00,
			SigningBonus:    20_000_000_00,
			GuaranteedTotal: 30_000_000_00,
		},
		{
			ID:              "ct-wr-01",
			DynastyID:       DynastyIDGridiron,
			PlayerID:        "pl-wr-01",
			TeamID:          TeamIDIronhawks,
			Type:            contract.TypeVeteran,
			SignedAt:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			StartYear:       2024,
			EndYear:         2026,
			TotalValue:      24_000_000_00,
			SigningBonus:    9_000_000_00,
			GuaranteedTotal: 15_000_000_00,
		},
		{
			ID:              "ct-rb-01",
			DynastyID:       DynastyIDGridiron,
			PlayerID:        "pl-rb-01",
			TeamID:          TeamIDMonarchs,
			Type:            contract.TypeRookie,
			SignedAt:        time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			StartYear:       2024,
			EndYear:         2027,
			TotalValue:      8_400_000_00,
			SigningBonus:    2_800_000_00,
			GuaranteedTotal: 8_400_000_00,
		},
	}
}

func SeedYearDetails() []contract.YearDetail {
	return []contract.YearDetail{
		{
			ContractID:            "ct-qb-01",
			DynastyID:             DynastyIDGridiron,
			TeamID:                TeamIDIronhawks,
			PlayerID:              "pl-qb-01",
			Season:                2025,
			BaseSalary:            3_000_000_00,
			SigningBonusProration: 5_000_000_00,
			GuaranteedBase:        3_000_000_00,
			CashPaid:              23_000_000_00,
		},
		{
			ContractID:            "ct-qb-01",
			DynastyID:             DynastyIDGridiron,
			TeamID:                TeamIDIronhawks,
			PlayerID:              "pl-qb-01",
			Season:                2026,
			BaseSalary:            7_000_000_00,
			RosterBonus:           1_000_000_00,
			LTBEIncentive:         500_000_00,
			SigningBonusProration: 5_000_000_00,
			GuaranteedBase:        3_000_000_00,
			CashPaid:              8_000_000_00,
		},
		{
			ContractID:            "ct-qb-01",
			DynastyID:             DynastyIDGridiron,
			TeamID:                TeamIDIronhawks,
			PlayerID:              "pl-qb-01",
			Season:                2027,
			BaseSalary:            8_500_000_00,
			SigningBonusProration: 5_000_000_00,
			CashPaid:              8_500_000_00,
		},
		{
			ContractID:            "ct-qb-01",
			DynastyID:             DynastyIDGridiron,
			TeamID:                TeamIDIronhawks,
			PlayerID:              "pl-qb-01",
			Season:                2028,
			BaseSalary:            9_500_000_00,
			SigningBonusProration: 5_000_000_00,
			CashPaid:              9_500_000_00,
		},
		{
			ContractID:            "ct-wr-01",
			DynastyID:             DynastyIDGridiron,
			TeamID:                TeamIDIronhawks,
			PlayerID:              "pl-wr-01",
			Season:                2024,
			BaseSalary:            4_000_000_00,
			SigningBonusProration: 3_000_000_00,
			GuaranteedBase:        4_000_000_00,
			CashPaid:              13_000_000_00,
		},
		{
			ContractID:            "ct-wr-01",
			DynastyID:             DynastyIDGridiron,
			TeamID:                TeamIDIronhawks,
			PlayerID:              "pl-wr-01",
			Season:                2025,
			BaseSalary:            5_000_000_00,
			SigningBonusProration: 3_000_000_00,
			GuaranteedBase:        2_000_000_00,
			CashPaid:              5_000_000_00,
		},
		{
			ContractID:            "ct-wr-01",
			DynastyID:             DynastyIDGridiron,
			TeamID:                TeamIDIronhawks,
			PlayerID:              "pl-wr-01",
			Season:                2026,
			BaseSalary:            6_000_000_00,
			WorkoutBonus:          250_000_00,
			SigningBonusProration: 3_000_000_00,
			CashPaid:              6_250_000_00,
		},
		{
			ContractID:            "ct-rb-01",
			DynastyID:             DynastyIDGridiron,
			TeamID:                TeamIDMonarchs,
			PlayerID:              "pl-rb-01",
			Season:                2024,
			BaseSalary:            900_000_00,
			SigningBonusProration: 700_000_00,
			GuaranteedBase:        900_000_00,
			CashPaid:              3_700_000_00,
		},
		{
			ContractID:            "ct-rb-01",
			DynastyID:             DynastyIDGridiron,
			TeamID:                TeamIDMonarchs,
			PlayerID:              "pl-rb-01",
			Season:                2025,
			BaseSalary:            1_100_000_00,
			SigningBonusProration: 700_000_00,
			GuaranteedBase:        1_100_000_00,
			CashPaid:              1_100_000_00,
		},
		{
			ContractID:            "ct-rb-01",
			DynastyID:             DynastyIDGridiron,
			TeamID:                TeamIDMonarchs,
			PlayerID:              "pl-rb-01",
			Season:                2026,
			BaseSalary:            1_400_000_00,
			SigningBonusProration: 700_000_00,
			GuaranteedBase:        1_400_000_00,
			CashPaid:              1_400_000_00,
		},
		{
			ContractID:            "ct-rb-01",
			DynastyID:             DynastyIDGridiron,
			TeamID:                TeamIDMonarchs,
			PlayerID:              "pl-rb-01",
			Season:                2027,
			BaseSalary:            1_800_000_00,
			SigningBonusProration: 700_000_00,
			GuaranteedBase:        1_800_000_00,
			CashPaid:              1_800_000_00,
		},
	}
}
