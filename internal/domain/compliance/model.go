package compliance

import "fmt"

// FindingKind classifies a compliance finding. Findings are reported, never
// acted on by the engine: the caller decides remediation.
type FindingKind string

const (
	FindingCapOverage            FindingKind = "CAP_OVERAGE"
	FindingSpendingFloorShortage FindingKind = "SPENDING_FLOOR_SHORTAGE"
)

// Finding is one reported violation. Amount is the size of the problem in
// cents: the overage for a cap violation, the shortfall for a floor miss.
type Finding struct {
	Kind      FindingKind
	DynastyID string
	TeamID    string
	Season    int
	Amount    int64
	Detail    string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s team=%s season=%d amount=%d: %s", f.Kind, f.TeamID, f.Season, f.Amount, f.Detail)
}
