package deadmoney

import (
	"errors"
	"testing"
	"time"

	"github.com/gridironsim/capengine/internal/domain/contract"
)

// fiveYearDeal mirrors the classic case: 5 years, $25M bonus, $5M/year
// proration, $4M base each year with the first three guaranteed.
func fiveYearDeal() (contract.Contract, []contract.YearDetail) {
	c := contract.Contract{
		ID:              "ct-1",
		DynastyID:       "dyn-1",
		PlayerID:        "pl-1",
		TeamID:          "tm-1",
		Type:            contract.TypeVeteran,
		SignedAt:        time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		StartYear:       2024,
		EndYear:         2028,
		TotalValue:      45_000_000_00,
		SigningBonus:    25_000_000_00,
		GuaranteedTotal: 37_000_000_00,
	}

	years := make([]contract.YearDetail, 0, 5)
	for i := 0; i < 5; i++ {
		detail := contract.YearDetail{
			ContractID:            c.ID,
			DynastyID:             c.DynastyID,
			TeamID:                c.TeamID,
			PlayerID:              c.PlayerID,
			Season:                c.StartYear + i,
			BaseSalary:            4_000_000_00,
			SigningBonusProration: 5_000_000_00,
		}
		if i < 3 {
			detail.GuaranteedBase = 4_000_000_00
		}
		years = append(years, detail)
	}

	return c, years
}

func TestCalculateReleaseStandard(t *testing.T) {
	c, years := fiveYearDeal()

	// Released entering year 3: seasons 2026-2028 still carry proration, so
	// the charge is 3 x $5M, all landing in 2026.
	entry, voided, err := CalculateRelease(ReleaseInput{
		Contract:      c,
		Years:         years,
		ReleaseSeason: 2026,
		JuneOne:       false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantProration := int64(15_000_000_00)
	if entry.RemainingProration != wantProration {
		t.Fatalf("expected remaining proration %d, got %d", wantProration, entry.RemainingProration)
	}
	// 2026 base was guaranteed but 2026 is the release season; only future
	// guaranteed base accelerates, and 2027/2028 carry no guarantees.
	if entry.AcceleratedGuarantee != 0 {
		t.Fatalf("expected no accelerated guarantee, got %d", entry.AcceleratedGuarantee)
	}
	if entry.CurrentYearCharge != wantProration {
		t.Fatalf("expected current charge %d, got %d", wantProration, entry.CurrentYearCharge)
	}
	if entry.NextYearCharge != 0 {
		t.Fatalf("standard release must not defer, got %d", entry.NextYearCharge)
	}
	if len(voided) != 3 {
		t.Fatalf("expected 3 voided years, got %d", len(voided))
	}
	for _, year := range voided {
		if !year.IsVoided {
			t.Fatalf("season %d not marked voided", year.Season)
		}
	}
}

func TestCalculateReleaseJuneOneSplit(t *testing.T) {
	c, years := fiveYearDeal()

	standard, _, err := CalculateRelease(ReleaseInput{Contract: c, Years: years, ReleaseSeason: 2026})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	split, _, err := CalculateRelease(ReleaseInput{Contract: c, Years: years, ReleaseSeason: 2026, JuneOne: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if split.CurrentYearCharge != 5_000_000_00 {
		t.Fatalf("expected one year of proration now, got %d", split.CurrentYearCharge)
	}
	if split.NextYearCharge != 10_000_000_00 {
		t.Fatalf("expected deferred charge 10M, got %d", split.NextYearCharge)
	}
	if split.Total() != standard.Total() {
		t.Fatalf("june 1 split changed the total: %d vs %d", split.Total(), standard.Total())
	}
	if split.ChargeForSeason(2026) != split.CurrentYearCharge {
		t.Fatal("release season charge mismatch")
	}
	if split.ChargeForSeason(2027) != split.NextYearCharge {
		t.Fatal("deferred season charge mismatch")
	}
	if split.ChargeForSeason(2028) != 0 {
		t.Fatal("charge leaked past deferred season")
	}
}

func TestCalculateReleaseGuaranteeAcceleration(t *testing.T) {
	c, years := fiveYearDeal()

	// Release before the guaranteed seasons have played out.
	entry, _, err := CalculateRelease(ReleaseInput{Contract: c, Years: years, ReleaseSeason: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Remaining proration 4 x $5M, plus 2026's guaranteed $4M base.
	if entry.RemainingProration != 20_000_000_00 {
		t.Fatalf("expected remaining proration 20M, got %d", entry.RemainingProration)
	}
	if entry.AcceleratedGuarantee != 4_000_000_00 {
		t.Fatalf("expected accelerated guarantee 4M, got %d", entry.AcceleratedGuarantee)
	}
	if entry.CurrentYearCharge != 24_000_000_00 {
		t.Fatalf("expected total charge 24M, got %d", entry.CurrentYearCharge)
	}
}

func TestCalculateReleaseSkipsVoidedYears(t *testing.T) {
	c, years := fiveYearDeal()
	years[4].IsVoided = true

	entry, voided, err := CalculateRelease(ReleaseInput{Contract: c, Years: years, ReleaseSeason: 2027})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.RemainingProration != 5_000_000_00 {
		t.Fatalf("voided year leaked into proration: %d", entry.RemainingProration)
	}
	if len(voided) != 1 {
		t.Fatalf("expected 1 newly voided year, got %d", len(voided))
	}
}

func TestCalculateReleaseOutsideContract(t *testing.T) {
	c, years := fiveYearDeal()

	_, _, err := CalculateRelease(ReleaseInput{Contract: c, Years: years, ReleaseSeason: 2031})
	if !errors.Is(err, ErrReleaseOutsideContract) {
		t.Fatalf("expected ErrReleaseOutsideContract, got %v", err)
	}
}

func TestEntryValidate(t *testing.T) {
	entry := Entry{
		ID:                 "dm-1",
		DynastyID:          "dyn-1",
		ContractID:         "ct-1",
		ReleaseSeason:      2026,
		CurrentYearCharge:  15_000_000_00,
		RemainingProration: 15_000_000_00,
	}
	if err := entry.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry.NextYearCharge = 1
	if err := entry.Validate(); err == nil {
		t.Fatal("standard entry with deferral must fail validation")
	}
}
