package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gridironsim/capengine/internal/domain/capspace"
	"github.com/gridironsim/capengine/internal/domain/captrans"
	"github.com/gridironsim/capengine/internal/domain/contract"
	"github.com/gridironsim/capengine/internal/domain/deadmoney"
	"github.com/gridironsim/capengine/internal/domain/rulebook"
	"github.com/gridironsim/capengine/internal/platform/id"
)

type RestructureInput struct {
	DynastyID  string
	ContractID string
	Season     int

	// AmountToConvert is how much of the season's base salary becomes a new
	// bonus tranche, in cents.
	AmountToConvert int64
}

type RestructureResult struct {
	// OldContract is the superseded record, voided as of the restructure.
	OldContract contract.Contract
	// NewContract carries the converted bonus and all year rows forward.
	NewContract contract.Contract
	Years       []contract.YearDetail

	CurrentYearSavings int64
	// DeadMoneyIfReleasedNow is the standard-release charge the team would
	// absorb if it cut the player immediately after this conversion. It
	// always rises with a restructure; callers present it as the risk side
	// of the trade.
	DeadMoneyIfReleasedNow int64

	CapSpaceBefore int64
	CapSpaceAfter  int64
}

// RestructureService converts base salary to bonus money. A restructure
// supersedes the contract: the old record is voided and a new one, with the
// converted amount folded into its signing bonus, takes over the year rows.
type RestructureService struct {
	contractRepo contract.Repository
	detailRepo   contract.YearDetailRepository
	txRepo       captrans.Repository
	sheets       capSheetReader
	idGen        id.Generator
	rules        rulebook.Rulebook
	logger       *slog.Logger
	now          func() time.Time
}

func NewRestructureService(
	contractRepo contract.Repository,
	detailRepo contract.YearDetailRepository,
	txRepo captrans.Repository,
	sheets capSheetReader,
	idGen id.Generator,
	rules rulebook.Rulebook,
	logger *slog.Logger,
) *RestructureService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RestructureService{
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

func (s *RestructureService) Restructure(ctx context.Context, input RestructureInput) (RestructureResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RestructureService.Restructure")
	defer span.End()

	input.DynastyID = strings.TrimSpace(input.DynastyID)
	input.ContractID = strings.TrimSpace(input.ContractID)
	if input.DynastyID == "" || input.ContractID == "" {
		return RestructureResult{}, fmt.Errorf("%w: dynasty_id and contract_id are required", ErrInvalidInput)
	}
	if input.Season <= 0 {
		return RestructureResult{}, fmt.Errorf("%w: season must be positive", ErrInvalidInput)
	}

	old, exists, err := s.contractRepo.GetByID(ctx, input.DynastyID, input.ContractID)
	if err != nil {
		return RestructureResult{}, fmt.Errorf("get contract by id: %w", err)
	}
	if !exists {
		return RestructureResult{}, fmt.Errorf("%w: contract=%s", ErrNotFound, input.ContractID)
	}

	details, err := s.detailRepo.ListByContract(ctx, input.DynastyID, input.ContractID)
	if err != nil {
		return RestructureResult{}, fmt.Errorf("list contract year details: %w", err)
	}

	conversion, err := contract.Restructure(old, details, input.Season, input.AmountToConvert, s.rules)
	if err != nil {
		return RestructureResult{}, fmt.Errorf("restructure contract %s: %w", input.ContractID, err)
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return RestructureResult{}, fmt.Errorf("generate contract id: %w", err)
	}

	now := s.now().UTC()
	successor := old
	successor.ID = newID
	successor.SignedAt = now
	successor.SigningBonus += input.AmountToConvert
	successor.GuaranteedTotal += input.AmountToConvert

	// Carry every live year row over to the successor, with the converted
	// rows replacing their originals.
	updatedBySeason := make(map[int]contract.YearDetail, len(conversion.Updated))
	for _, d := range conversion.Updated {
		updatedBySeason[d.Season] = d
	}
	carried := make([]contract.YearDetail, 0, len(details))
	voided := make([]contract.YearDetail, 0, len(details))
	for _, d := range details {
		if d.IsVoided {
			continue
		}
		if updated, ok := updatedBySeason[d.Season]; ok {
			d = updated
		}
		retired := d
		retired.IsVoided = true
		voided = append(voided, retired)

		d.ContractID = newID
		carried = append(carried, d)
	}

	release, _, err := deadmoney.CalculateRelease(deadmoney.ReleaseInput{
		Contract:      successor,
		Years:         carried,
		ReleaseSeason: input.Season,
	})
	if err != nil {
		return RestructureResult{}, fmt.Errorf("compute post-restructure release exposure: %w", err)
	}

	sheet, err := s.sheets.TeamSheet(ctx, input.DynastyID, old.TeamID, input.Season, capspace.ModeTop51)
	if err != nil {
		return RestructureResult{}, fmt.Errorf("get cap sheet before restructure: %w", err)
	}

	old.IsVoided = true
	old.VoidedAt = &now
	old.SupersededByID = newID

	if err := s.contractRepo.Upsert(ctx, successor); err != nil {
		return RestructureResult{}, fmt.Errorf("save successor contract: %w", err)
	}
	if err := s.contractRepo.Upsert(ctx, old); err != nil {
		return RestructureResult{}, fmt.Errorf("void superseded contract: %w", err)
	}
	if err := s.detailRepo.UpsertMany(ctx, voided); err != nil {
		return RestructureResult{}, fmt.Errorf("void superseded year details: %w", err)
	}
	if err := s.detailRepo.UpsertMany(ctx, carried); err != nil {
		return RestructureResult{}, fmt.Errorf("save restructured year details: %w", err)
	}
	s.sheets.InvalidateTeam(ctx, input.DynastyID, old.TeamID)

	if err := appendCapTransaction(ctx, s.txRepo, s.idGen, now, captrans.Transaction{
		DynastyID:      input.DynastyID,
		TeamID:         old.TeamID,
		PlayerID:       old.PlayerID,
		ContractID:     newID,
		Kind:           captrans.KindRestructure,
		Season:         input.Season,
		Amount:         input.AmountToConvert,
		CapSpaceBefore: sheet.CapSpaceAvailable,
		CapSpaceAfter:  sheet.CapSpaceAvailable + conversion.CurrentYearSavings,
		Note:           fmt.Sprintf("supersedes %s", input.ContractID),
	}); err != nil {
		return RestructureResult{}, err
	}

	s.logger.InfoContext(ctx, "contract restructured",
		slog.String("contract_id", input.ContractID),
		slog.String("successor_id", newID),
		slog.Int("season", input.Season),
		slog.Int64("converted", input.AmountToConvert),
		slog.Int64("current_year_savings", conversion.CurrentYearSavings),
	)

	return RestructureResult{
		OldContract:            old,
		NewContract:            successor,
		Years:                  carried,
		CurrentYearSavings:     conversion.CurrentYearSavings,
		DeadMoneyIfReleasedNow: release.Total(),
		CapSpaceBefore:         sheet.CapSpaceAvailable,
		CapSpaceAfter:          sheet.CapSpaceAvailable + conversion.CurrentYearSavings,
	}, nil
}
