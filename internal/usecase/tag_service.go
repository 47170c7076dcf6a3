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
	"github.com/gridironsim/capengine/internal/domain/tag"
	"github.com/gridironsim/capengine/internal/platform/id"
)

type ApplyTagInput struct {
	DynastyID string
	TeamID    string
	PlayerID  string
	Position  string
	Season    int
	Kind      tag.Kind
}

type ApplyTagResult struct {
	Tag      tag.FranchiseTag
	Contract contract.Contract
	Year     contract.YearDetail

	CapSpaceBefore int64
	CapSpaceAfter  int64
}

type TenderPlayerInput struct {
	DynastyID string
	TeamID    string
	PlayerID  string
	Season    int
	Level     tag.TenderLevel
}

// TagService prices and applies franchise/transition tags and RFA tenders. A
// tag immediately becomes a one-year, fully guaranteed contract; a tender is
// recorded as an offer and only turns into a contract once accepted, which is
// a plain signing.
type TagService struct {
	tagRepo      tag.Repository
	compRepo     tag.CompRepository
	contractRepo contract.Repository
	detailRepo   contract.YearDetailRepository
	txRepo       captrans.Repository
	sheets       capSheetReader
	idGen        id.Generator
	rules        rulebook.Rulebook
	logger       *slog.Logger
	now          func() time.Time
}

func NewTagService(
	tagRepo tag.Repository,
	compRepo tag.CompRepository,
	contractRepo contract.Repository,
	detailRepo contract.YearDetailRepository,
	txRepo captrans.Repository,
	sheets capSheetReader,
	idGen id.Generator,
	rules rulebook.Rulebook,
	logger *slog.Logger,
) *TagService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TagService{
		tagRepo:      tagRepo,
		compRepo:     compRepo,
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

func (s *TagService) ApplyTag(ctx context.Context, input ApplyTagInput) (ApplyTagResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TagService.ApplyTag")
	defer span.End()

	input.DynastyID = strings.TrimSpace(input.DynastyID)
	input.TeamID = strings.TrimSpace(input.TeamID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)
	input.Position = strings.TrimSpace(input.Position)
	if input.DynastyID == "" || input.TeamID == "" || input.PlayerID == "" {
		return ApplyTagResult{}, fmt.Errorf("%w: dynasty_id, team_id and player_id are required", ErrInvalidInput)
	}
	if input.Position == "" {
		return ApplyTagResult{}, fmt.Errorf("%w: position is required", ErrInvalidInput)
	}
	if input.Season <= 0 {
		return ApplyTagResult{}, fmt.Errorf("%w: season must be positive", ErrInvalidInput)
	}
	if _, ok := tag.AllKinds[input.Kind]; !ok {
		return ApplyTagResult{}, fmt.Errorf("%w: unknown tag kind %q", ErrInvalidInput, input.Kind)
	}

	used, err := s.tagRepo.CountByTeamSeason(ctx, input.DynastyID, input.TeamID, input.Season)
	if err != nil {
		return ApplyTagResult{}, fmt.Errorf("count team tags: %w", err)
	}
	if used >= s.rules.TagsPerTeamPerSeason {
		return ApplyTagResult{}, fmt.Errorf("%w: team %s already tagged a player in %d",
			tag.ErrTagLimitExceeded, input.TeamID, input.Season)
	}

	consecutive, err := s.consecutiveCount(ctx, input.DynastyID, input.PlayerID, input.Season)
	if err != nil {
		return ApplyTagResult{}, err
	}

	priorCapHit, _, err := s.priorYearFigures(ctx, input.DynastyID, input.PlayerID, input.Season-1)
	if err != nil {
		return ApplyTagResult{}, err
	}

	var salary int64
	switch input.Kind {
	case tag.KindFranchise:
		top, err := s.compRepo.TopPositionCapHits(ctx, input.DynastyID, input.Position, input.Season, s.rules.FranchiseTopSalaries)
		if err != nil {
			return ApplyTagResult{}, fmt.Errorf("list positional comparables: %w", err)
		}
		salary, err = tag.FranchiseSalary(top, priorCapHit, consecutive, s.rules)
		if err != nil {
			return ApplyTagResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	case tag.KindTransition:
		top, err := s.compRepo.TopPositionCapHits(ctx, input.DynastyID, input.Position, input.Season, s.rules.TransitionTopSalaries)
		if err != nil {
			return ApplyTagResult{}, fmt.Errorf("list positional comparables: %w", err)
		}
		salary, err = tag.TransitionSalary(top, s.rules)
		if err != nil {
			return ApplyTagResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	sheet, err := s.sheets.TeamSheet(ctx, input.DynastyID, input.TeamID, input.Season, capspace.ModeTop51)
	if err != nil {
		return ApplyTagResult{}, fmt.Errorf("get cap sheet before tag: %w", err)
	}
	if err := compliance.PrecheckTransaction(salary, sheet.CapSpaceAvailable); err != nil {
		return ApplyTagResult{}, err
	}

	contractID, err := s.idGen.NewID()
	if err != nil {
		return ApplyTagResult{}, fmt.Errorf("generate contract id: %w", err)
	}
	tagID, err := s.idGen.NewID()
	if err != nil {
		return ApplyTagResult{}, fmt.Errorf("generate tag id: %w", err)
	}

	now := s.now().UTC()
	contractType := contract.TypeFranchiseTag
	if input.Kind == tag.KindTransition {
		contractType = contract.TypeTransitionTag
	}
	c := contract.Contract{
		ID:              contractID,
		DynastyID:       input.DynastyID,
		PlayerID:        input.PlayerID,
		TeamID:          input.TeamID,
		Type:            contractType,
		SignedAt:        now,
		StartYear:       input.Season,
		EndYear:         input.Season,
		TotalValue:      salary,
		GuaranteedTotal: salary,
	}
	if err := c.Validate(s.rules); err != nil {
		return ApplyTagResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	year := contract.YearDetail{
		ContractID:     contractID,
		DynastyID:      input.DynastyID,
		TeamID:         input.TeamID,
		PlayerID:       input.PlayerID,
		Season:         input.Season,
		BaseSalary:     salary,
		GuaranteedBase: salary,
		CashPaid:       salary,
	}

	applied := tag.FranchiseTag{
		ID:               tagID,
		DynastyID:        input.DynastyID,
		TeamID:           input.TeamID,
		PlayerID:         input.PlayerID,
		Season:           input.Season,
		Kind:             input.Kind,
		ConsecutiveCount: consecutive,
		Salary:           salary,
		CreatedAt:        now,
	}
	if err := applied.Validate(); err != nil {
		return ApplyTagResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.tagRepo.InsertTag(ctx, applied); err != nil {
		return ApplyTagResult{}, fmt.Errorf("save tag: %w", err)
	}
	if err := s.contractRepo.Upsert(ctx, c); err != nil {
		return ApplyTagResult{}, fmt.Errorf("save tag contract: %w", err)
	}
	if err := s.detailRepo.UpsertMany(ctx, []contract.YearDetail{year}); err != nil {
		return ApplyTagResult{}, fmt.Errorf("save tag year detail: %w", err)
	}
	s.sheets.InvalidateTeam(ctx, input.DynastyID, input.TeamID)

	if err := appendCapTransaction(ctx, s.txRepo, s.idGen, now, captrans.Transaction{
		DynastyID:      input.DynastyID,
		TeamID:         input.TeamID,
		PlayerID:       input.PlayerID,
		ContractID:     contractID,
		Kind:           captrans.KindTag,
		Season:         input.Season,
		Amount:         salary,
		CapSpaceBefore: sheet.CapSpaceAvailable,
		CapSpaceAfter:  sheet.CapSpaceAvailable - salary,
		Note:           fmt.Sprintf("%s tag, consecutive %d", strings.ToLower(string(input.Kind)), consecutive),
	}); err != nil {
		return ApplyTagResult{}, err
	}

	s.logger.InfoContext(ctx, "tag applied",
		slog.String("team_id", input.TeamID),
		slog.String("player_id", input.PlayerID),
		slog.String("kind", string(input.Kind)),
		slog.Int("consecutive", consecutive),
		slog.Int64("salary", salary),
	)

	return ApplyTagResult{
		Tag:            applied,
		Contract:       c,
		Year:           year,
		CapSpaceBefore: sheet.CapSpaceAvailable,
		CapSpaceAfter:  sheet.CapSpaceAvailable - salary,
	}, nil
}

func (s *TagService) TenderPlayer(ctx context.Context, input TenderPlayerInput) (tag.RFATender, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TagService.TenderPlayer")
	defer span.End()

	input.DynastyID = strings.TrimSpace(input.DynastyID)
	input.TeamID = strings.TrimSpace(input.TeamID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)
	if input.DynastyID == "" || input.TeamID == "" || input.PlayerID == "" {
		return tag.RFATender{}, fmt.Errorf("%w: dynasty_id, team_id and player_id are required", ErrInvalidInput)
	}
	if input.Season <= 0 {
		return tag.RFATender{}, fmt.Errorf("%w: season must be positive", ErrInvalidInput)
	}
	if _, ok := tag.AllTenderLevels[input.Level]; !ok {
		return tag.RFATender{}, fmt.Errorf("%w: unknown tender level %q", ErrInvalidInput, input.Level)
	}

	_, priorBase, err := s.priorYearFigures(ctx, input.DynastyID, input.PlayerID, input.Season-1)
	if err != nil {
		return tag.RFATender{}, err
	}

	salary, err := tag.TenderSalary(input.Level, priorBase, s.rules)
	if err != nil {
		return tag.RFATender{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sheet, err := s.sheets.TeamSheet(ctx, input.DynastyID, input.TeamID, input.Season, capspace.ModeTop51)
	if err != nil {
		return tag.RFATender{}, fmt.Errorf("get cap sheet before tender: %w", err)
	}
	if err := compliance.PrecheckTransaction(salary, sheet.CapSpaceAvailable); err != nil {
		return tag.RFATender{}, err
	}

	tenderID, err := s.idGen.NewID()
	if err != nil {
		return tag.RFATender{}, fmt.Errorf("generate tender id: %w", err)
	}
	now := s.now().UTC()
	tender := tag.RFATender{
		ID:        tenderID,
		DynastyID: input.DynastyID,
		TeamID:    input.TeamID,
		PlayerID:  input.PlayerID,
		Season:    input.Season,
		Level:     input.Level,
		Salary:    salary,
		CreatedAt: now,
	}
	if err := tender.Validate(); err != nil {
		return tag.RFATender{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.tagRepo.InsertTender(ctx, tender); err != nil {
		return tag.RFATender{}, fmt.Errorf("save tender: %w", err)
	}

	if err := appendCapTransaction(ctx, s.txRepo, s.idGen, now, captrans.Transaction{
		DynastyID:      input.DynastyID,
		TeamID:         input.TeamID,
		PlayerID:       input.PlayerID,
		Kind:           captrans.KindTender,
		Season:         input.Season,
		Amount:         salary,
		CapSpaceBefore: sheet.CapSpaceAvailable,
		CapSpaceAfter:  sheet.CapSpaceAvailable,
		Note:           fmt.Sprintf("%s tender offered", strings.ToLower(string(input.Level))),
	}); err != nil {
		return tag.RFATender{}, err
	}

	s.logger.InfoContext(ctx, "rfa tender offered",
		slog.String("team_id", input.TeamID),
		slog.String("player_id", input.PlayerID),
		slog.String("level", string(input.Level)),
		slog.Int64("salary", salary),
	)
	return tender, nil
}

// consecutiveCount resolves the escalator chain for a player. The chain
// continues only when the player was tagged the season before and no
// multi-year contract landed in between; otherwise a new chain starts at 1.
func (s *TagService) consecutiveCount(ctx context.Context, dynastyID, playerID string, season int) (int, error) {
	latest, exists, err := s.tagRepo.LatestByPlayer(ctx, dynastyID, playerID)
	if err != nil {
		return 0, fmt.Errorf("get latest tag for player: %w", err)
	}
	if !exists || latest.Season != season-1 {
		return 1, nil
	}

	contracts, err := s.contractRepo.ListByPlayer(ctx, dynastyID, playerID)
	if err != nil {
		return 0, fmt.Errorf("list player contracts: %w", err)
	}
	for _, c := range contracts {
		if c.IsVoided {
			continue
		}
		if c.Years() > 1 && c.StartYear >= latest.Season {
			return 1, nil
		}
	}

	return latest.ConsecutiveCount + 1, nil
}

// priorYearFigures returns the player's cap hit and base salary for a season,
// zero when the player had no accounting row (league entrants, missed years).
func (s *TagService) priorYearFigures(ctx context.Context, dynastyID, playerID string, season int) (int64, int64, error) {
	if season <= 0 {
		return 0, 0, nil
	}

	contracts, err := s.contractRepo.ListByPlayer(ctx, dynastyID, playerID)
	if err != nil {
		return 0, 0, fmt.Errorf("list player contracts: %w", err)
	}

	for _, c := range contracts {
		if !c.CoversSeason(season) {
			continue
		}
		details, err := s.detailRepo.ListByContract(ctx, dynastyID, c.ID)
		if err != nil {
			return 0, 0, fmt.Errorf("list contract year details: %w", err)
		}
		for _, d := range details {
			if d.Season != season || d.IsVoided {
				continue
			}
			hit, err := contract.CapHit(d)
			if err != nil {
				return 0, 0, fmt.Errorf("cap hit for season %d: %w", season, err)
			}
			return hit, d.BaseSalary, nil
		}
	}

	return 0, 0, nil
}
