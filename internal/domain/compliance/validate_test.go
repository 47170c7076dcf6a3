package compliance

import (
	"errors"
	"testing"

	"github.com/gridironsim/capengine/internal/domain/capspace"
	"github.com/gridironsim/capengine/internal/domain/rulebook"
)

func TestPrecheckTransaction(t *testing.T) {
	if err := PrecheckTransaction(5_000_000_00, 5_000_000_00); err != nil {
		t.Fatalf("exact fit must pass: %v", err)
	}
	if err := PrecheckTransaction(-2_000_000_00, -1); err != nil {
		t.Fatalf("space-freeing delta must pass even when over the cap: %v", err)
	}

	err := PrecheckTransaction(10_000_000_00, 6_800_000_00)
	var insufficient *InsufficientCapSpaceError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientCapSpaceError, got %v", err)
	}
	if insufficient.Shortfall != 3_200_000_00 {
		t.Fatalf("expected shortfall 3.2M, got %d", insufficient.Shortfall)
	}
}

func TestLeagueYearFindings(t *testing.T) {
	sheets := []capspace.Sheet{
		{
			DynastyID:         "dyn-1",
			TeamID:            "tm-ok",
			Season:            2026,
			Mode:              capspace.ModeFull53,
			CapSpaceAvailable: 12_000_000_00,
		},
		{
			DynastyID:            "dyn-1",
			TeamID:               "tm-over",
			Season:               2026,
			Mode:                 capspace.ModeFull53,
			CapLimit:             279_200_000_00,
			ActiveContractsTotal: 283_000_000_00,
			CapSpaceAvailable:    -3_800_000_00,
		},
	}

	findings := LeagueYearFindings(sheets)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.Kind != FindingCapOverage {
		t.Fatalf("expected cap overage, got %s", f.Kind)
	}
	if f.TeamID != "tm-over" {
		t.Fatalf("finding attributed to wrong team: %s", f.TeamID)
	}
	if f.Amount != 3_800_000_00 {
		t.Fatalf("expected overage 3.8M, got %d", f.Amount)
	}
}

func TestSpendingFloorFinding(t *testing.T) {
	rb := rulebook.Default()
	caps := []int64{255_000_000_00, 263_000_000_00, 271_000_000_00, 279_200_000_00}
	seasons := []int{2023, 2024, 2025, 2026}

	// Total cap 1068.2M; floor at 89% = 950.698M.
	in := SpendingFloorInput{
		DynastyID: "dyn-1",
		TeamID:    "tm-1",
		Seasons:   seasons,
		CapLimits: caps,
		CashPaid:  []int64{240_000_000_00, 240_000_000_00, 240_000_000_00, 240_000_000_00},
	}

	finding, violated, err := SpendingFloorFinding(in, rb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if violated {
		t.Fatalf("960M in cash clears the floor, got finding %v", finding)
	}

	in.CashPaid = []int64{200_000_000_00, 200_000_000_00, 200_000_000_00, 200_000_000_00}
	finding, violated, err = SpendingFloorFinding(in, rb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !violated {
		t.Fatal("800M in cash misses the floor")
	}
	if finding.Kind != FindingSpendingFloorShortage {
		t.Fatalf("expected floor shortage, got %s", finding.Kind)
	}
	if finding.Season != 2026 {
		t.Fatalf("finding must land on the window's closing season, got %d", finding.Season)
	}
	wantShortfall := rulebook.ApplyBps(1_068_200_000_00, rb.SpendingFloorBps) - 800_000_000_00
	if finding.Amount != wantShortfall {
		t.Fatalf("expected shortfall %d, got %d", wantShortfall, finding.Amount)
	}
}

func TestSpendingFloorWindowSize(t *testing.T) {
	_, _, err := SpendingFloorFinding(SpendingFloorInput{
		Seasons:   []int{2025, 2026},
		CashPaid:  []int64{1, 1},
		CapLimits: []int64{1, 1},
	}, rulebook.Default())
	if err == nil {
		t.Fatal("expected error for wrong window size")
	}
}
