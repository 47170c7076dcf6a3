package capspace

import (
	"fmt"
	"testing"
	"time"

	"github.com/gridironsim/capengine/internal/domain/contract"
	"github.com/gridironsim/capengine/internal/domain/deadmoney"
	"github.com/gridironsim/capengine/internal/domain/rulebook"
)

func rosterYear(contractID string, base int64) contract.YearDetail {
	return contract.YearDetail{
		ContractID: contractID,
		DynastyID:  "dyn-1",
		TeamID:     "tm-1",
		Season:     2026,
		BaseSalary: base,
	}
}

func TestBuildSheetScenario(t *testing.T) {
	// Team with a $279.2M cap, $245M active, $8.5M dead, $2.2M LTBE and
	// $3.9M practice squad leaves $19.6M of space.
	in := Inputs{
		DynastyID: "dyn-1",
		TeamID:    "tm-1",
		Season:    2026,
		Mode:      ModeFull53,
		CapLimit:  279_200_000_00,
		RosterYears: []contract.YearDetail{
			func() contract.YearDetail {
				d := rosterYear("ct-1", 245_000_000_00)
				d.LTBEIncentive = 2_200_000_00
				return d
			}(),
		},
		PracticeSquadYears: []contract.YearDetail{
			rosterYear("ps-1", 3_900_000_00),
		},
		DeadMoney: []deadmoney.Entry{
			{
				ID:                 "dm-1",
				DynastyID:          "dyn-1",
				ContractID:         "ct-x",
				TeamID:             "tm-1",
				ReleaseSeason:      2026,
				CurrentYearCharge:  8_500_000_00,
				RemainingProration: 8_500_000_00,
			},
		},
	}

	sheet, err := BuildSheet(in, rulebook.Default(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sheet.ActiveContractsTotal != 245_000_000_00 {
		t.Fatalf("expected active total 245M, got %d", sheet.ActiveContractsTotal)
	}
	if sheet.LTBEIncentivesTotal != 2_200_000_00 {
		t.Fatalf("expected ltbe total 2.2M, got %d", sheet.LTBEIncentivesTotal)
	}
	if sheet.DeadMoneyTotal != 8_500_000_00 {
		t.Fatalf("expected dead money 8.5M, got %d", sheet.DeadMoneyTotal)
	}
	if sheet.PracticeSquadTotal != 3_900_000_00 {
		t.Fatalf("expected practice squad 3.9M, got %d", sheet.PracticeSquadTotal)
	}
	if sheet.CapSpaceAvailable != 19_600_000_00 {
		t.Fatalf("expected cap space 19.6M, got %d", sheet.CapSpaceAvailable)
	}
	if err := sheet.Validate(); err != nil {
		t.Fatalf("sheet failed its own invariant: %v", err)
	}
}

func TestBuildSheetTop51(t *testing.T) {
	// 55 contracts with strictly decreasing hits: only the top 51 count in
	// offseason mode, regardless of slice order.
	years := make([]contract.YearDetail, 0, 55)
	var top51Sum int64
	for i := 0; i < 55; i++ {
		base := int64(55-i) * 100_000_00
		years = append(years, rosterYear(fmt.Sprintf("ct-%02d", i), base))
		if i < 51 {
			top51Sum += base
		}
	}
	// Reverse so the cheapest contracts come first; ranking must not care.
	for i, j := 0, len(years)-1; i < j; i, j = i+1, j-1 {
		years[i], years[j] = years[j], years[i]
	}

	in := Inputs{
		DynastyID:   "dyn-1",
		TeamID:      "tm-1",
		Season:      2026,
		Mode:        ModeTop51,
		CapLimit:    279_200_000_00,
		RosterYears: years,
	}

	sheet, err := BuildSheet(in, rulebook.Default(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet.CountedContracts != 51 {
		t.Fatalf("expected 51 counted contracts, got %d", sheet.CountedContracts)
	}
	if sheet.ActiveContractsTotal != top51Sum {
		t.Fatalf("expected top-51 total %d, got %d", top51Sum, sheet.ActiveContractsTotal)
	}

	in.Mode = ModeFull53
	full, err := BuildSheet(in, rulebook.Default(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if full.CountedContracts != 55 {
		t.Fatalf("expected all 55 contracts counted, got %d", full.CountedContracts)
	}
	if full.ActiveContractsTotal <= sheet.ActiveContractsTotal {
		t.Fatal("full roster total should exceed top-51 total")
	}
}

func TestBuildSheetCarryoverAndVoids(t *testing.T) {
	voided := rosterYear("ct-2", 9_000_000_00)
	voided.IsVoided = true

	in := Inputs{
		DynastyID:   "dyn-1",
		TeamID:      "tm-1",
		Season:      2026,
		Mode:        ModeFull53,
		CapLimit:    279_200_000_00,
		Carryover:   5_000_000_00,
		RosterYears: []contract.YearDetail{rosterYear("ct-1", 10_000_000_00), voided},
	}

	sheet, err := BuildSheet(in, rulebook.Default(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet.ActiveContractsTotal != 10_000_000_00 {
		t.Fatalf("voided year counted: %d", sheet.ActiveContractsTotal)
	}
	if sheet.CapSpaceAvailable != 279_200_000_00+5_000_000_00-10_000_000_00 {
		t.Fatalf("carryover not applied: %d", sheet.CapSpaceAvailable)
	}
}

func TestBuildSheetJuneOneDeferral(t *testing.T) {
	entry := deadmoney.Entry{
		ID:                 "dm-1",
		DynastyID:          "dyn-1",
		ContractID:         "ct-x",
		TeamID:             "tm-1",
		ReleaseSeason:      2025,
		JuneOneDesignated:  true,
		CurrentYearCharge:  5_000_000_00,
		NextYearCharge:     10_000_000_00,
		RemainingProration: 15_000_000_00,
	}

	in := Inputs{
		DynastyID: "dyn-1",
		TeamID:    "tm-1",
		Season:    2026,
		Mode:      ModeFull53,
		CapLimit:  279_200_000_00,
		DeadMoney: []deadmoney.Entry{entry},
	}

	sheet, err := BuildSheet(in, rulebook.Default(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Only the deferred piece lands on 2026.
	if sheet.DeadMoneyTotal != 10_000_000_00 {
		t.Fatalf("expected deferred charge only, got %d", sheet.DeadMoneyTotal)
	}
}

func TestBuildSheetUnknownMode(t *testing.T) {
	_, err := BuildSheet(Inputs{Mode: RosterMode("TOP90")}, rulebook.Default(), time.Now())
	if err == nil {
		t.Fatal("expected error for unknown roster mode")
	}
}
