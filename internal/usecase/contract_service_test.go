package usecase

import (
	"errors"
	"testing"

	"github.com/gridironsim/capengine/internal/domain/capspace"
	"github.com/gridironsim/capengine/internal/domain/captrans"
	"github.com/gridironsim/capengine/internal/domain/compliance"
	"github.com/gridironsim/capengine/internal/domain/contract"
	"github.com/gridironsim/capengine/internal/infrastructure/repository/memory"
)

func newContractService(env *capTestEnv) *ContractService {
	return NewContractService(
		env.contracts,
		env.details,
		env.txs,
		env.sheets,
		env.idGen,
		env.rules,
		env.logger,
	)
}

func TestContractService_SignContract(t *testing.T) {
	env := newCapTestEnv()
	service := newContractService(env)
	ctx := t.Context()

	result, err := service.SignContract(ctx, SignContractInput{
		DynastyID:       memory.DynastyIDGridiron,
		TeamID:          memory.TeamIDMonarchs,
		PlayerID:        "pl-te-01",
		Type:            contract.TypeVeteran,
		StartYear:       2026,
		TotalValue:      30_000_000_00,
		SigningBonus:    20_000_000_00,
		GuaranteedTotal: 20_000_000_00,
		Years: []YearTermInput{
			{BaseSalary: 1_000_000_00},
			{BaseSalary: 2_000_000_00},
			{BaseSalary: 3_000_000_00},
			{BaseSalary: 4_000_000_00},
		},
	})
	if err != nil {
		t.Fatalf("sign contract failed: %v", err)
	}

	// $20M over 4 years prorates at $5M flat; first-year hit is base + tranche.
	for i, year := range result.Years {
		if year.SigningBonusProration != 5_000_000_00 {
			t.Fatalf("year %d: expected 5M proration, got %d", i, year.SigningBonusProration)
		}
	}
	if result.FirstYearCapHit != 6_000_000_00 {
		t.Fatalf("expected 6M first-year cap hit, got %d", result.FirstYearCapHit)
	}
	if result.CapSpaceBefore != 277_100_000_00 {
		t.Fatalf("expected 277.1M cap space before, got %d", result.CapSpaceBefore)
	}
	if result.CapSpaceAfter != 271_100_000_00 {
		t.Fatalf("expected 271.1M cap space after, got %d", result.CapSpaceAfter)
	}
	if result.Years[0].CashPaid != 21_000_000_00 {
		t.Fatalf("expected signing bonus in first-year cash, got %d", result.Years[0].CashPaid)
	}

	sheet, err := env.sheets.TeamSheet(ctx, memory.DynastyIDGridiron, memory.TeamIDMonarchs, 2026, capspace.ModeTop51)
	if err != nil {
		t.Fatalf("team sheet failed: %v", err)
	}
	if sheet.CapSpaceAvailable != 271_100_000_00 {
		t.Fatalf("expected sheet invalidated after signing, got %d", sheet.CapSpaceAvailable)
	}

	txs, err := env.txs.ListByTeamSeason(ctx, memory.DynastyIDGridiron, memory.TeamIDMonarchs, 2026)
	if err != nil {
		t.Fatalf("list transactions failed: %v", err)
	}
	if len(txs) != 1 || txs[0].Kind != captrans.KindSign {
		t.Fatalf("expected one SIGN transaction, got %+v", txs)
	}
	if txs[0].Amount != 6_000_000_00 {
		t.Fatalf("expected 6M transaction amount, got %d", txs[0].Amount)
	}
}

func TestContractService_SignContract_InsufficientCapSpace(t *testing.T) {
	env := newCapTestEnv()
	service := newContractService(env)

	_, err := service.SignContract(t.Context(), SignContractInput{
		DynastyID:       memory.DynastyIDGridiron,
		TeamID:          memory.TeamIDMonarchs,
		PlayerID:        "pl-te-01",
		Type:            contract.TypeVeteran,
		StartYear:       2026,
		TotalValue:      300_000_000_00,
		GuaranteedTotal: 300_000_000_00,
		Years:           []YearTermInput{{BaseSalary: 300_000_000_00}},
	})

	var shortfall *compliance.InsufficientCapSpaceError
	if !errors.As(err, &shortfall) {
		t.Fatalf("expected InsufficientCapSpaceError, got %v", err)
	}
	// 300M against 277.1M of room.
	if shortfall.Shortfall != 22_900_000_00 {
		t.Fatalf("expected 22.9M shortfall, got %d", shortfall.Shortfall)
	}
}

func TestContractService_SignContract_InvalidInput(t *testing.T) {
	env := newCapTestEnv()
	service := newContractService(env)

	_, err := service.SignContract(t.Context(), SignContractInput{
		DynastyID: memory.DynastyIDGridiron,
		TeamID:    memory.TeamIDMonarchs,
		PlayerID:  "pl-te-01",
		Type:      contract.TypeRookie,
		StartYear: 2026,
		Years: []YearTermInput{
			{BaseSalary: 1_000_000_00},
			{BaseSalary: 1_000_000_00},
			{BaseSalary: 1_000_000_00},
			{BaseSalary: 1_000_000_00},
			{BaseSalary: 1_000_000_00},
		},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for 5-year rookie deal, got %v", err)
	}

	_, err = service.SignContract(t.Context(), SignContractInput{
		DynastyID: memory.DynastyIDGridiron,
		TeamID:    memory.TeamIDMonarchs,
		PlayerID:  "pl-te-01",
		Type:      contract.TypeVeteran,
		StartYear: 2026,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero contract years, got %v", err)
	}
}

func TestContractService_GetContract_NotFound(t *testing.T) {
	env := newCapTestEnv()
	service := newContractService(env)

	_, _, err := service.GetContract(t.Context(), memory.DynastyIDGridiron, "ct-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
