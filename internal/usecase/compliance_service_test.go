package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/gridironsim/capengine/internal/domain/compliance"
	"github.com/gridironsim/capengine/internal/domain/deadmoney"
	"github.com/gridironsim/capengine/internal/infrastructure/repository/memory"
)

func newComplianceService(env *capTestEnv) *ComplianceService {
	return NewComplianceService(
		env.details,
		env.history,
		env.sheets,
		env.rules,
		env.logger,
	)
}

func TestComplianceService_Precheck(t *testing.T) {
	env := newCapTestEnv()
	service := newComplianceService(env)
	ctx := t.Context()

	if err := service.Precheck(ctx, memory.DynastyIDGridiron, memory.TeamIDIronhawks, 2026, 259_850_000_00); err != nil {
		t.Fatalf("expected delta equal to space to pass, got %v", err)
	}

	err := service.Precheck(ctx, memory.DynastyIDGridiron, memory.TeamIDIronhawks, 2026, 259_850_000_01)
	var shortfall *compliance.InsufficientCapSpaceError
	if !errors.As(err, &shortfall) {
		t.Fatalf("expected InsufficientCapSpaceError, got %v", err)
	}
	if shortfall.Shortfall != 1 {
		t.Fatalf("expected one-cent shortfall, got %d", shortfall.Shortfall)
	}
}

func TestComplianceService_LeagueYearAudit(t *testing.T) {
	env := newCapTestEnv()
	service := newComplianceService(env)
	ctx := t.Context()

	// Push the Ironhawks over the cap with a massive dead-money entry so the
	// sweep reports an overage alongside the spending-floor shortfalls the
	// lightly spending seed teams already have.
	if err := env.dead.Insert(ctx, deadmoney.Entry{
		ID:                 "dm-huge",
		DynastyID:          memory.DynastyIDGridiron,
		ContractID:         "ct-cut-01",
		TeamID:             memory.TeamIDIronhawks,
		PlayerID:           "pl-cut-01",
		ReleaseSeason:      2026,
		CurrentYearCharge:  300_000_000_00,
		RemainingProration: 300_000_000_00,
		CreatedAt:          time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("seed dead money failed: %v", err)
	}

	result, err := service.LeagueYearAudit(ctx, LeagueAuditInput{
		DynastyID: memory.DynastyIDGridiron,
		TeamIDs:   []string{memory.TeamIDIronhawks, memory.TeamIDMonarchs},
		Season:    2026,
	})
	if err != nil {
		t.Fatalf("league year audit failed: %v", err)
	}

	if len(result.Sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(result.Sheets))
	}

	var overages, floors []compliance.Finding
	for _, finding := range result.Findings {
		switch finding.Kind {
		case compliance.FindingCapOverage:
			overages = append(overages, finding)
		case compliance.FindingSpendingFloorShortage:
			floors = append(floors, finding)
		}
	}

	if len(overages) != 1 || overages[0].TeamID != memory.TeamIDIronhawks {
		t.Fatalf("expected one ironhawks overage, got %+v", overages)
	}
	// Committed 322.75M against a 282.6M adjusted cap.
	if overages[0].Amount != 40_150_000_00 {
		t.Fatalf("expected 40.15M overage, got %d", overages[0].Amount)
	}

	// 2026 closes the 2023-2026 floor window: 89% of the 1,026.4M cumulative
	// cap is 913.496M, far above what either seed team has paid out.
	if len(floors) != 2 {
		t.Fatalf("expected floor shortfalls for both teams, got %+v", floors)
	}
	for _, finding := range floors {
		if finding.Season != 2026 {
			t.Fatalf("expected finding on the closing season, got %d", finding.Season)
		}
	}
	if floors[0].TeamID != memory.TeamIDIronhawks || floors[0].Amount != 858_246_000_00 {
		t.Fatalf("expected 858.246M ironhawks shortfall, got %+v", floors[0])
	}
	if floors[1].TeamID != memory.TeamIDMonarchs || floors[1].Amount != 907_296_000_00 {
		t.Fatalf("expected 907.296M monarchs shortfall, got %+v", floors[1])
	}
}

func TestComplianceService_LeagueYearAudit_NoWindowBeforeHistory(t *testing.T) {
	env := newCapTestEnv()
	service := newComplianceService(env)

	// 2025 would need cap history back to 2022, which the dynasty does not
	// have, so no floor check runs.
	result, err := service.LeagueYearAudit(t.Context(), LeagueAuditInput{
		DynastyID: memory.DynastyIDGridiron,
		TeamIDs:   []string{memory.TeamIDIronhawks, memory.TeamIDMonarchs},
		Season:    2025,
	})
	if err != nil {
		t.Fatalf("league year audit failed: %v", err)
	}

	for _, finding := range result.Findings {
		if finding.Kind == compliance.FindingSpendingFloorShortage {
			t.Fatalf("expected no floor findings without a full window, got %+v", finding)
		}
	}
}
