package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/gridironsim/capengine/internal/domain/capspace"
	"github.com/gridironsim/capengine/internal/domain/captrans"
	"github.com/gridironsim/capengine/internal/domain/deadmoney"
	"github.com/gridironsim/capengine/internal/infrastructure/repository/memory"
)

func newReleaseService(env *capTestEnv) *ReleaseService {
	return NewReleaseService(
		env.contracts,
		env.details,
		env.dead,
		env.txs,
		env.sheets,
		env.idGen,
		env.rules,
		env.logger,
	)
}

func TestReleaseService_ReleasePlayer_Standard(t *testing.T) {
	env := newCapTestEnv()
	service := newReleaseService(env)
	ctx := t.Context()

	// The seeded WR deal ends in 2026: one season of proration remains and no
	// future guarantees, so cutting him costs $3M against a $6.25M hit.
	result, err := service.ReleasePlayer(ctx, ReleasePlayerInput{
		DynastyID:  memory.DynastyIDGridiron,
		ContractID: "ct-wr-01",
		Season:     2026,
	})
	if err != nil {
		t.Fatalf("release failed: %v", err)
	}

	if result.DeadMoney.CurrentYearCharge != 3_000_000_00 {
		t.Fatalf("expected 3M current-year charge, got %d", result.DeadMoney.CurrentYearCharge)
	}
	if result.DeadMoney.NextYearCharge != 0 {
		t.Fatalf("expected no deferred charge on standard release, got %d", result.DeadMoney.NextYearCharge)
	}
	if len(result.VoidedYears) != 1 || !result.VoidedYears[0].IsVoided {
		t.Fatalf("expected the 2026 row voided, got %+v", result.VoidedYears)
	}
	if !result.Contract.IsVoided {
		t.Fatalf("expected contract voided")
	}

	if result.CapSpaceBefore != 259_850_000_00 {
		t.Fatalf("expected 259.85M before, got %d", result.CapSpaceBefore)
	}
	if result.CapSpaceAfter != 266_100_000_00 {
		t.Fatalf("expected 266.1M after, got %d", result.CapSpaceAfter)
	}

	txs, err := env.txs.ListByTeamSeason(ctx, memory.DynastyIDGridiron, memory.TeamIDIronhawks, 2026)
	if err != nil {
		t.Fatalf("list transactions failed: %v", err)
	}
	if len(txs) != 1 || txs[0].Kind != captrans.KindRelease || txs[0].Amount != 3_000_000_00 {
		t.Fatalf("expected one 3M RELEASE transaction, got %+v", txs)
	}
}

func TestReleaseService_ReleasePlayer_JuneOneSplit(t *testing.T) {
	env := newCapTestEnv()
	service := newReleaseService(env)

	// QB deal runs through 2028 at $5M proration a year. June 1 keeps one
	// year's proration in 2026 and defers the other two years to 2027.
	result, err := service.ReleasePlayer(t.Context(), ReleasePlayerInput{
		DynastyID:  memory.DynastyIDGridiron,
		ContractID: "ct-qb-01",
		Season:     2026,
		JuneOne:    true,
	})
	if err != nil {
		t.Fatalf("june 1 release failed: %v", err)
	}

	if result.DeadMoney.CurrentYearCharge != 5_000_000_00 {
		t.Fatalf("expected 5M current-year charge, got %d", result.DeadMoney.CurrentYearCharge)
	}
	if result.DeadMoney.NextYearCharge != 10_000_000_00 {
		t.Fatalf("expected 10M deferred charge, got %d", result.DeadMoney.NextYearCharge)
	}
	if result.DeadMoney.Total() != 15_000_000_00 {
		t.Fatalf("expected 15M total either way, got %d", result.DeadMoney.Total())
	}

	// The deferral lands on the 2027 sheet.
	sheet, err := env.sheets.TeamSheet(t.Context(), memory.DynastyIDGridiron, memory.TeamIDIronhawks, 2027, capspace.ModeTop51)
	if err != nil {
		t.Fatalf("team sheet failed: %v", err)
	}
	if sheet.DeadMoneyTotal != 10_000_000_00 {
		t.Fatalf("expected 10M dead money in 2027, got %d", sheet.DeadMoneyTotal)
	}
}

func TestReleaseService_ReleasePlayer_JuneOneLimit(t *testing.T) {
	env := newCapTestEnv()
	service := newReleaseService(env)
	ctx := t.Context()

	for i, id := range []string{"dm-prior-1", "dm-prior-2"} {
		err := env.dead.Insert(ctx, deadmoney.Entry{
			ID:                "entry-" + id,
			DynastyID:         memory.DynastyIDGridiron,
			ContractID:        id,
			TeamID:            memory.TeamIDIronhawks,
			PlayerID:          "pl-cut",
			ReleaseSeason:     2026,
			JuneOneDesignated: true,
			CurrentYearCharge: int64(i+1) * 100_000_00,
			CreatedAt:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("seed june 1 entry failed: %v", err)
		}
	}

	_, err := service.ReleasePlayer(ctx, ReleasePlayerInput{
		DynastyID:  memory.DynastyIDGridiron,
		ContractID: "ct-qb-01",
		Season:     2026,
		JuneOne:    true,
	})
	if !errors.Is(err, deadmoney.ErrJuneOneLimitExceeded) {
		t.Fatalf("expected ErrJuneOneLimitExceeded, got %v", err)
	}
}
