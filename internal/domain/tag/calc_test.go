package tag

import (
	"testing"

	"github.com/gridironsim/capengine/internal/domain/rulebook"
)

func TestFranchiseSalary(t *testing.T) {
	rb := rulebook.Default()
	topFive := []int64{
		32_000_000_00,
		30_000_000_00,
		28_000_000_00,
		26_000_000_00,
		24_000_000_00,
	}
	// avg of top 5 = 28M

	tests := []struct {
		name        string
		top         []int64
		priorCapHit int64
		consecutive int
		want        int64
	}{
		{
			name:        "first tag uses positional average",
			top:         topFive,
			priorCapHit: 40_000_000_00,
			consecutive: 1,
			want:        28_000_000_00,
		},
		{
			name:        "second tag takes 120 percent when greater",
			top:         topFive,
			priorCapHit: 28_000_000_00,
			consecutive: 2,
			want:        33_600_000_00,
		},
		{
			name:        "second tag keeps average when escalator is lower",
			top:         topFive,
			priorCapHit: 10_000_000_00,
			consecutive: 2,
			want:        28_000_000_00,
		},
		{
			name:        "third tag takes 144 percent",
			top:         topFive,
			priorCapHit: 28_000_000_00,
			consecutive: 3,
			want:        40_320_000_00,
		},
		{
			name:        "thin market averages what exists",
			top:         []int64{10_000_000_00, 8_000_000_00},
			priorCapHit: 0,
			consecutive: 1,
			want:        9_000_000_00,
		},
		{
			name:        "only top five count",
			top:         append(append([]int64{}, topFive...), 1_00),
			priorCapHit: 0,
			consecutive: 1,
			want:        28_000_000_00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FranchiseSalary(tt.top, tt.priorCapHit, tt.consecutive, rb)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestFranchiseSalaryErrors(t *testing.T) {
	rb := rulebook.Default()

	if _, err := FranchiseSalary(nil, 0, 1, rb); err == nil {
		t.Fatal("expected error for empty comparables")
	}
	if _, err := FranchiseSalary([]int64{1_00}, 0, 0, rb); err == nil {
		t.Fatal("expected error for zero consecutive count")
	}
	if _, err := FranchiseSalary([]int64{-1}, 0, 1, rb); err == nil {
		t.Fatal("expected error for negative comparable")
	}
}

func TestTransitionSalary(t *testing.T) {
	rb := rulebook.Default()
	top := make([]int64, 0, 12)
	for i := 0; i < 12; i++ {
		top = append(top, int64(20-i)*1_000_000_00)
	}
	// top 10: 20M..11M, avg 15.5M

	got, err := TransitionSalary(top, rb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 15_500_000_00 {
		t.Fatalf("expected 15.5M, got %d", got)
	}
}

func TestTenderSalary(t *testing.T) {
	rb := rulebook.Default()

	tests := []struct {
		name      string
		level     TenderLevel
		priorBase int64
		want      int64
	}{
		{"first round floor", TenderFirstRound, 0, rb.TenderFirstRound},
		{"second round floor", TenderSecondRound, 1_000_000_00, rb.TenderSecondRound},
		{"prior salary escalator wins", TenderOriginalRound, 10_000_000_00, 11_000_000_00},
		{"right of refusal", TenderRightOfRefusal, 0, rb.TenderRightOfRefusal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TenderSalary(tt.level, tt.priorBase, rb)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}

	if _, err := TenderSalary(TenderLevel("UNDRAFTED"), 0, rb); err == nil {
		t.Fatal("expected error for unknown tender level")
	}
}
