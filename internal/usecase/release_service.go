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

type ReleasePlayerInput struct {
	DynastyID  string
	ContractID string
	Season     int

	// JuneOne defers the bulk of the dead money to the following season.
	// Designations are limited per team per season.
	JuneOne bool
}

type ReleasePlayerResult struct {
	Contract    contract.Contract
	DeadMoney   deadmoney.Entry
	VoidedYears []contract.YearDetail

	CapSpaceBefore int64
	CapSpaceAfter  int64
}

// ReleaseService terminates contracts: remaining years are voided, the
// unamortized bonus and accelerated guarantees become a dead-money entry.
type ReleaseService struct {
	contractRepo contract.Repository
	detailRepo   contract.YearDetailRepository
	deadRepo     deadmoney.Repository
	txRepo       captrans.Repository
	sheets       capSheetReader
	idGen        id.Generator
	rules        rulebook.Rulebook
	logger       *slog.Logger
	now          func() time.Time
}

func NewReleaseService(
	contractRepo contract.Repository,
	detailRepo contract.YearDetailRepository,
	deadRepo deadmoney.Repository,
	txRepo captrans.Repository,
	sheets capSheetReader,
	idGen id.Generator,
	rules rulebook.Rulebook,
	logger *slog.Logger,
) *ReleaseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReleaseService{
		contractRepo: contractRepo,
		detailRepo:   detailRepo,
		deadRepo:     deadRepo,
		txRepo:       txRepo,
		sheets:       sheets,
		idGen:        idGen,
		rules:        rules,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *ReleaseService) ReleasePlayer(ctx context.Context, input ReleasePlayerInput) (ReleasePlayerResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReleaseService.ReleasePlayer")
	defer span.End()

	input.DynastyID = strings.TrimSpace(input.DynastyID)
	input.ContractID = strings.TrimSpace(input.ContractID)
	if input.DynastyID == "" || input.ContractID == "" {
		return ReleasePlayerResult{}, fmt.Errorf("%w: dynasty_id and contract_id are required", ErrInvalidInput)
	}
	if input.Season <= 0 {
		return ReleasePlayerResult{}, fmt.Errorf("%w: season must be positive", ErrInvalidInput)
	}

	c, exists, err := s.contractRepo.GetByID(ctx, input.DynastyID, input.ContractID)
	if err != nil {
		return ReleasePlayerResult{}, fmt.Errorf("get contract by id: %w", err)
	}
	if !exists {
		return ReleasePlayerResult{}, fmt.Errorf("%w: contract=%s", ErrNotFound, input.ContractID)
	}

	if input.JuneOne {
		used, err := s.deadRepo.CountJuneOneByTeamSeason(ctx, input.DynastyID, c.TeamID, input.Season)
		if err != nil {
			return ReleasePlayerResult{}, fmt.Errorf("count june 1 designations: %w", err)
		}
		if used >= s.rules.JuneOneLimitPerTeam {
			return ReleasePlayerResult{}, fmt.Errorf("%w: team %s already used %d this season",
				deadmoney.ErrJuneOneLimitExceeded, c.TeamID, used)
		}
	}

	details, err := s.detailRepo.ListByContract(ctx, input.DynastyID, input.ContractID)
	if err != nil {
		return ReleasePlayerResult{}, fmt.Errorf("list contract year details: %w", err)
	}

	entry, voided, err := deadmoney.CalculateRelease(deadmoney.ReleaseInput{
		Contract:      c,
		Years:         details,
		ReleaseSeason: input.Season,
		JuneOne:       input.JuneOne,
	})
	if err != nil {
		return ReleasePlayerResult{}, fmt.Errorf("release contract %s: %w", input.ContractID, err)
	}

	entryID, err := s.idGen.NewID()
	if err != nil {
		return ReleasePlayerResult{}, fmt.Errorf("generate dead money id: %w", err)
	}
	now := s.now().UTC()
	entry.ID = entryID
	entry.CreatedAt = now

	before, err := s.sheets.TeamSheet(ctx, input.DynastyID, c.TeamID, input.Season, capspace.ModeTop51)
	if err != nil {
		return ReleasePlayerResult{}, fmt.Errorf("get cap sheet before release: %w", err)
	}

	c.IsVoided = true
	c.VoidedAt = &now
	if err := s.contractRepo.Upsert(ctx, c); err != nil {
		return ReleasePlayerResult{}, fmt.Errorf("void contract: %w", err)
	}
	if err := s.detailRepo.UpsertMany(ctx, voided); err != nil {
		return ReleasePlayerResult{}, fmt.Errorf("void contract year details: %w", err)
	}
	if err := s.deadRepo.Insert(ctx, entry); err != nil {
		return ReleasePlayerResult{}, fmt.Errorf("save dead money entry: %w", err)
	}
	s.sheets.InvalidateTeam(ctx, input.DynastyID, c.TeamID)

	after, err := s.sheets.TeamSheet(ctx, input.DynastyID, c.TeamID, input.Season, capspace.ModeTop51)
	if err != nil {
		return ReleasePlayerResult{}, fmt.Errorf("get cap sheet after release: %w", err)
	}

	if err := appendCapTransaction(ctx, s.txRepo, s.idGen, now, captrans.Transaction{
		DynastyID:      input.DynastyID,
		TeamID:         c.TeamID,
		PlayerID:       c.PlayerID,
		ContractID:     c.ID,
		Kind:           captrans.KindRelease,
		Season:         input.Season,
		Amount:         entry.Total(),
		CapSpaceBefore: before.CapSpaceAvailable,
		CapSpaceAfter:  after.CapSpaceAvailable,
		Note:           releaseNote(input.JuneOne),
	}); err != nil {
		return ReleasePlayerResult{}, err
	}

	s.logger.InfoContext(ctx, "player released",
		slog.String("contract_id", c.ID),
		slog.String("team_id", c.TeamID),
		slog.String("player_id", c.PlayerID),
		slog.Int("season", input.Season),
		slog.Bool("june_one", input.JuneOne),
		slog.Int64("dead_money_total", entry.Total()),
	)

	return ReleasePlayerResult{
		Contract:       c,
		DeadMoney:      entry,
		VoidedYears:    voided,
		CapSpaceBefore: before.CapSpaceAvailable,
		CapSpaceAfter:  after.CapSpaceAvailable,
	}, nil
}

func releaseNote(juneOne bool) string {
	if juneOne {
		return "june 1 designation"
	}
	return "standard release"
}
