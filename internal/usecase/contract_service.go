package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gridironsim/capengine/internal/domain/capspace"
	"github.com/gridironsim/capengine/internal/domain/captrans"
	"github.com/gridironsim/capengine/internal/domain/compliance"
	"github.com/gridironsim/capengine/internal/domain/contract"
	"github.com/gridironsim/capengine/internal/domain/rulebook"
	"github.com/gridironsim/capengine/internal/platform/id"
)

// YearTermInput is one season's negotiated components on a new deal. Money
// values are cents; proration is computed, never supplied.
type YearTermInput struct {
	BaseSalary     int64
	RosterBonus    int64
	WorkoutBonus   int64
	PerGameBonus   int64
	LTBEIncentive  int64
	NLTBEIncentive int64
	GuaranteedBase int64
}

type SignContractInput struct {
	DynastyID string
	TeamID    string
	PlayerID  string
	Type      contract.Type
	StartYear int

	TotalValue      int64
	SigningBonus    int64
	GuaranteedTotal int64
	PracticeSquad   bool

	// Years covers every contract season in order from StartYear.
	Years []YearTermInput
}

type SignContractResult struct {
	Contract        contract.Contract
	Years           []contract.YearDetail
	FirstYearCapHit int64
	CapSpaceBefore  int64
	CapSpaceAfter   int64
}

// ContractService owns the signing path: it prorates the bonus, prechecks the
// first-year hit against available space, and persists the contract with its
// per-season accounting rows.
type ContractService struct {
	contractRepo contract.Repository
	detailRepo   contract.YearDetailRepository
	txRepo       captrans.Repository
	sheets       capSheetReader
	idGen        id.Generator
	rules        rulebook.Rulebook
	logger       *slog.Logger
	now          func() time.Time
}

func NewContractService(
	contractRepo contract.Repository,
	detailRepo contract.YearDetailRepository,
	txRepo captrans.Repository,
	sheets capSheetReader,
	idGen id.Generator,
	rules rulebook.Rulebook,
	logger *slog.Logger,
) *ContractService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContractService{
		contractRepo: contractRepo,
		detailRepo:   detailRepo,
		txRepo:       txRepo,
		sheets:       sheets,
		idGen:        idGen,
		rules:        rules,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *ContractService) SignContract(ctx context.Context, input SignContractInput) (SignContractResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContractService.SignContract")
	defer span.End()

	input.DynastyID = strings.TrimSpace(input.DynastyID)
	input.TeamID = strings.TrimSpace(input.TeamID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)
	if input.DynastyID == "" || input.TeamID == "" || input.PlayerID == "" {
		return SignContractResult{}, fmt.Errorf("%w: dynasty_id, team_id and player_id are required", ErrInvalidInput)
	}
	if len(input.Years) == 0 {
		return SignContractResult{}, fmt.Errorf("%w: at least one contract year is required", ErrInvalidInput)
	}

	contractID, err := s.idGen.NewID()
	if err != nil {
		return SignContractResult{}, fmt.Errorf("generate contract id: %w", err)
	}

	now := s.now().UTC()
	c := contract.Contract{
		ID:              contractID,
		DynastyID:       input.DynastyID,
		PlayerID:        input.PlayerID,
		TeamID:          input.TeamID,
		Type:            input.Type,
		SignedAt:        now,
		StartYear:       input.StartYear,
		EndYear:         input.StartYear + len(input.Years) - 1,
		TotalValue:      input.TotalValue,
		SigningBonus:    input.SigningBonus,
		GuaranteedTotal: input.GuaranteedTotal,
		PracticeSquad:   input.PracticeSquad,
	}
	if err := c.Validate(s.rules); err != nil {
		return SignContractResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	schedule, err := contract.ProrateBonus(input.SigningBonus, len(input.Years), s.rules.MaxProrationYears)
	if err != nil {
		return SignContractResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	details := make([]contract.YearDetail, 0, len(input.Years))
	for i, term := range input.Years {
		detail := contract.YearDetail{
			ContractID:            contractID,
			DynastyID:             input.DynastyID,
			TeamID:                input.TeamID,
			PlayerID:              input.PlayerID,
			Season:                input.StartYear + i,
			BaseSalary:            term.BaseSalary,
			RosterBonus:           term.RosterBonus,
			WorkoutBonus:          term.WorkoutBonus,
			PerGameBonus:          term.PerGameBonus,
			LTBEIncentive:         term.LTBEIncentive,
			NLTBEIncentive:        term.NLTBEIncentive,
			SigningBonusProration: schedule[i],
			GuaranteedBase:        term.GuaranteedBase,
			CashPaid:              term.BaseSalary + term.RosterBonus + term.WorkoutBonus + term.PerGameBonus,
		}
		if i == 0 {
			// Signing bonus is paid up front even though its cap impact is
			// spread across the proration window.
			detail.CashPaid += input.SigningBonus
		}
		if err := detail.Validate(); err != nil {
			return SignContractResult{}, fmt.Errorf("%w: year %d: %v", ErrInvalidInput, detail.Season, err)
		}
		details = append(details, detail)
	}

	firstYearHit, err := contract.CapHit(details[0])
	if err != nil {
		return SignContractResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sheet, err := s.sheets.TeamSheet(ctx, input.DynastyID, input.TeamID, input.StartYear, capspace.ModeTop51)
	if err != nil {
		return SignContractResult{}, fmt.Errorf("get cap sheet before signing: %w", err)
	}
	if err := compliance.PrecheckTransaction(firstYearHit, sheet.CapSpaceAvailable); err != nil {
		return SignContractResult{}, err
	}

	if err := s.contractRepo.Upsert(ctx, c); err != nil {
		return SignContractResult{}, fmt.Errorf("save contract: %w", err)
	}
	if err := s.detailRepo.UpsertMany(ctx, details); err != nil {
		return SignContractResult{}, fmt.Errorf("save contract year details: %w", err)
	}
	s.sheets.InvalidateTeam(ctx, input.DynastyID, input.TeamID)

	if err := appendCapTransaction(ctx, s.txRepo, s.idGen, s.now().UTC(), captrans.Transaction{
		DynastyID:      input.DynastyID,
		TeamID:         input.TeamID,
		PlayerID:       input.PlayerID,
		ContractID:     contractID,
		Kind:           captrans.KindSign,
		Season:         input.StartYear,
		Amount:         firstYearHit,
		CapSpaceBefore: sheet.CapSpaceAvailable,
		CapSpaceAfter:  sheet.CapSpaceAvailable - firstYearHit,
	}); err != nil {
		return SignContractResult{}, err
	}

	s.logger.InfoContext(ctx, "contract signed",
		slog.String("contract_id", contractID),
		slog.String("team_id", input.TeamID),
		slog.String("player_id", input.PlayerID),
		slog.Int("years", len(input.Years)),
		slog.Int64("first_year_cap_hit", firstYearHit),
	)

	return SignContractResult{
		Contract:        c,
		Years:           details,
		FirstYearCapHit: firstYearHit,
		CapSpaceBefore:  sheet.CapSpaceAvailable,
		CapSpaceAfter:   sheet.CapSpaceAvailable - firstYearHit,
	}, nil
}

// GetContract returns one contract with its year rows, voided ones included.
func (s *ContractService) GetContract(ctx context.Context, dynastyID, contractID string) (contract.Contract, []contract.YearDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContractService.GetContract")
	defer span.End()

	dynastyID = strings.TrimSpace(dynastyID)
	contractID = strings.TrimSpace(contractID)
	if dynastyID == "" || contractID == "" {
		return contract.Contract{}, nil, fmt.Errorf("%w: dynasty_id and contract_id are required", ErrInvalidInput)
	}

	c, exists, err := s.contractRepo.GetByID(ctx, dynastyID, contractID)
	if err != nil {
		return contract.Contract{}, nil, fmt.Errorf("get contract by id: %w", err)
	}
	if !exists {
		return contract.Contract{}, nil, fmt.Errorf("%w: contract=%s", ErrNotFound, contractID)
	}

	details, err := s.detailRepo.ListByContract(ctx, dynastyID, contractID)
	if err != nil {
		return contract.Contract{}, nil, fmt.Errorf("list contract year details: %w", err)
	}

	return c, details, nil
}

func (s *ContractService) ListTeamContracts(ctx context.Context, dynastyID, teamID string, season int) ([]contract.Contract, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContractService.ListTeamContracts")
	defer span.End()

	dynastyID = strings.TrimSpace(dynastyID)
	teamID = strings.TrimSpace(teamID)
	if dynastyID == "" || teamID == "" {
		return nil, fmt.Errorf("%w: dynasty_id and team_id are required", ErrInvalidInput)
	}
	if season <= 0 {
		return nil, fmt.Errorf("%w: season must be positive", ErrInvalidInput)
	}

	items, err := s.contractRepo.ListActiveByTeam(ctx, dynastyID, teamID, season)
	if err != nil {
		return nil, fmt.Errorf("list active contracts: %w", err)
	}
	return items, nil
}
