package contract

import (
	"fmt"
	"time"

	"github.com/gridironsim/capengine/internal/domain/rulebook"
)

// Type is the closed set of contract variants the engine accounts for.
type Type string

const (
	TypeRookie        Type = "ROOKIE"
	TypeVeteran       Type = "VETERAN"
	TypeFranchiseTag  Type = "FRANCHISE_TAG"
	TypeTransitionTag Type = "TRANSITION_TAG"
	TypeExtension     Type = "EXTENSION"
)

var AllTypes = map[Type]struct{}{
	TypeRookie:        {},
	TypeVeteran:       {},
	TypeFranchiseTag:  {},
	TypeTransitionTag: {},
	TypeExtension:     {},
}

// Contract is the immutable signing record. A restructure never mutates it:
// the old record is voided and superseded by a fresh one. All money fields
// are cents.
type Contract struct {
	ID        string
	DynastyID string
	PlayerID  string
	TeamID    string
	Type      Type

	SignedAt  time.Time
	StartYear int
	EndYear   int

	TotalValue      int64
	SigningBonus    int64
	GuaranteedTotal int64

	PracticeSquad bool

	IsVoided       bool
	VoidedAt       *time.Time
	SupersededByID string
}

func (c Contract) Years() int {
	return c.EndYear - c.StartYear + 1
}

// CoversSeason reports whether season falls inside the contract term.
func (c Contract) CoversSeason(season int) bool {
	return season >= c.StartYear && season <= c.EndYear
}

func (c Contract) Validate(rb rulebook.Rulebook) error {
	if c.ID == "" {
		return fmt.Errorf("contract id is required")
	}
	if c.DynastyID == "" {
		return fmt.Errorf("dynasty id is required")
	}
	if c.PlayerID == "" {
		return fmt.Errorf("player id is required")
	}
	if c.TeamID == "" {
		return fmt.Errorf("team id is required")
	}
	if _, ok := AllTypes[c.Type]; !ok {
		return fmt.Errorf("unknown contract type: %s", c.Type)
	}
	if c.Years() < 1 {
		return fmt.Errorf("%w: start=%d end=%d", ErrInvalidContractLength, c.StartYear, c.EndYear)
	}
	if c.Years() > rb.MaxContractYears {
		return fmt.Errorf("%w: %d years exceeds max %d", ErrInvalidContractLength, c.Years(), rb.MaxContractYears)
	}
	if c.TotalValue < 0 || c.SigningBonus < 0 || c.GuaranteedTotal < 0 {
		return fmt.Errorf("%w: contract totals cannot be negative", ErrNegativeSalaryComponent)
	}

	rule, ok := typeRules[c.Type]
	if !ok {
		return fmt.Errorf("unknown contract type: %s", c.Type)
	}

	return rule.validate(c)
}

// typeRule attaches variant-specific validation to each contract type.
type typeRule interface {
	validate(Contract) error
}

var typeRules = map[Type]typeRule{
	TypeRookie:        rookieRule{},
	TypeVeteran:       veteranRule{},
	TypeFranchiseTag:  tagRule{kind: "franchise"},
	TypeTransitionTag: tagRule{kind: "transition"},
	TypeExtension:     extensionRule{},
}

type rookieRule struct{}

func (rookieRule) validate(c Contract) error {
	if c.Years() > 4 {
		return fmt.Errorf("%w: rookie contracts run at most 4 years", ErrInvalidContractLength)
	}
	return nil
}

type veteranRule struct{}

func (veteranRule) validate(Contract) error {
	return nil
}

type tagRule struct {
	kind string
}

func (r tagRule) validate(c Contract) error {
	if c.Years() != 1 {
		return fmt.Errorf("%w: %s tag contracts are exactly 1 year", ErrInvalidContractLength, r.kind)
	}
	if c.GuaranteedTotal != c.TotalValue {
		return fmt.Errorf("%s tag salary must be fully guaranteed", r.kind)
	}
	return nil
}

type extensionRule struct{}

func (extensionRule) validate(c Contract) error {
	if c.Years() < 2 {
		return fmt.Errorf("%w: extensions add at least 2 years", ErrInvalidContractLength)
	}
	return nil
}

// YearDetail is one season's accounting row for a contract. total cap hit is
// always derived with CapHit, never stored as independent truth.
type YearDetail struct {
	ContractID string
	DynastyID  string
	TeamID     string
	PlayerID   string
	Season     int

	BaseSalary     int64
	RosterBonus    int64
	WorkoutBonus   int64
	OptionBonus    int64
	PerGameBonus   int64
	LTBEIncentive  int64
	NLTBEIncentive int64

	SigningBonusProration int64
	OptionBonusProration  int64

	// GuaranteedBase is how much of BaseSalary was guaranteed at signing;
	// it accelerates into dead money on release.
	GuaranteedBase int64

	CashPaid int64
	IsVoided bool
}

func (d YearDetail) Validate() error {
	if d.ContractID == "" {
		return fmt.Errorf("contract id is required")
	}
	if d.DynastyID == "" {
		return fmt.Errorf("dynasty id is required")
	}
	if d.Season <= 0 {
		return fmt.Errorf("season is required")
	}
	if d.GuaranteedBase > d.BaseSalary {
		return fmt.Errorf("guaranteed base %d exceeds base salary %d", d.GuaranteedBase, d.BaseSalary)
	}
	_, err := CapHit(d)
	return err
}
