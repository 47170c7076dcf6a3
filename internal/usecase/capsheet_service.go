package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/gridironsim/capengine/internal/domain/capspace"
	"github.com/gridironsim/capengine/internal/domain/contract"
	"github.com/gridironsim/capengine/internal/domain/deadmoney"
	"github.com/gridironsim/capengine/internal/domain/rulebook"
	"github.com/gridironsim/capengine/internal/platform/cache"
)

const leagueSheetMaxWorkers = 8

// capSheetReader is the slice of CapSheetService the mutating services need:
// a current sheet for prechecks and invalidation after writes.
type capSheetReader interface {
	TeamSheet(ctx context.Context, dynastyID, teamID string, season int, mode capspace.RosterMode) (capspace.Sheet, error)
	InvalidateTeam(ctx context.Context, dynastyID, teamID string)
}

// CapSheetService derives team cap sheets on demand. Sheets are cached per
// (team, season, mode); any contract or dead-money mutation for a team must
// invalidate that team's entries, the cache is never the source of truth.
type CapSheetService struct {
	contractRepo contract.Repository
	detailRepo   contract.YearDetailRepository
	deadRepo     deadmoney.Repository
	historyRepo  capspace.HistoryRepository
	rules        rulebook.Rulebook
	sheets       *cache.Store
	logger       *slog.Logger
	now          func() time.Time
}

func NewCapSheetService(
	contractRepo contract.Repository,
	detailRepo contract.YearDetailRepository,
	deadRepo deadmoney.Repository,
	historyRepo capspace.HistoryRepository,
	rules rulebook.Rulebook,
	sheets *cache.Store,
	logger *slog.Logger,
) *CapSheetService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CapSheetService{
		contractRepo: contractRepo,
		detailRepo:   detailRepo,
		deadRepo:     deadRepo,
		historyRepo:  historyRepo,
		rules:        rules,
		sheets:       sheets,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *CapSheetService) TeamSheet(ctx context.Context, dynastyID, teamID string, season int, mode capspace.RosterMode) (capspace.Sheet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CapSheetService.TeamSheet")
	defer span.End()

	dynastyID = strings.TrimSpace(dynastyID)
	teamID = strings.TrimSpace(teamID)
	if dynastyID == "" || teamID == "" {
		return capspace.Sheet{}, fmt.Errorf("%w: dynasty_id and team_id are required", ErrInvalidInput)
	}
	if season <= 0 {
		return capspace.Sheet{}, fmt.Errorf("%w: season must be positive", ErrInvalidInput)
	}
	if _, ok := capspace.AllModes[mode]; !ok {
		return capspace.Sheet{}, fmt.Errorf("%w: unknown roster mode %q", ErrInvalidInput, mode)
	}

	if s.sheets == nil {
		return s.buildSheet(ctx, dynastyID, teamID, season, mode)
	}

	key := sheetCacheKey(dynastyID, teamID, season, mode)
	value, err := s.sheets.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.buildSheet(ctx, dynastyID, teamID, season, mode)
	})
	if err != nil {
		return capspace.Sheet{}, err
	}

	sheet, ok := value.(capspace.Sheet)
	if !ok {
		return capspace.Sheet{}, fmt.Errorf("unexpected cached sheet type %T for key %s", value, key)
	}
	return sheet, nil
}

// LeagueSheets computes every listed team's sheet for one season, fanning out
// across a bounded goroutine pool. Results come back sorted by team id.
func (s *CapSheetService) LeagueSheets(ctx context.Context, dynastyID string, teamIDs []string, season int, mode capspace.RosterMode) ([]capspace.Sheet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CapSheetService.LeagueSheets")
	defer span.End()

	dynastyID = strings.TrimSpace(dynastyID)
	if dynastyID == "" {
		return nil, fmt.Errorf("%w: dynasty_id is required", ErrInvalidInput)
	}
	if len(teamIDs) == 0 {
		return nil, fmt.Errorf("%w: team_ids are required", ErrInvalidInput)
	}

	workers := pool.NewWithResults[capspace.Sheet]().
		WithContext(ctx).
		WithMaxGoroutines(leagueSheetMaxWorkers)
	for _, teamID := range teamIDs {
		teamID := teamID
		workers.Go(func(ctx context.Context) (capspace.Sheet, error) {
			return s.TeamSheet(ctx, dynastyID, teamID, season, mode)
		})
	}

	results, err := workers.Wait()
	if err != nil {
		return nil, fmt.Errorf("build league sheets season=%d: %w", season, err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].TeamID < results[j].TeamID })
	return results, nil
}

// InvalidateTeam drops every cached sheet for a team across seasons and
// modes. Mutating services call it after any write that changes the inputs.
func (s *CapSheetService) InvalidateTeam(ctx context.Context, dynastyID, teamID string) {
	if s.sheets == nil {
		return
	}
	s.sheets.DeletePrefix(ctx, sheetCachePrefix(dynastyID, teamID))
}

func (s *CapSheetService) buildSheet(ctx context.Context, dynastyID, teamID string, season int, mode capspace.RosterMode) (capspace.Sheet, error) {
	capLimit, exists, err := s.historyRepo.CapLimit(ctx, dynastyID, season)
	if err != nil {
		return capspace.Sheet{}, fmt.Errorf("get cap limit season=%d: %w", season, err)
	}
	if !exists {
		return capspace.Sheet{}, fmt.Errorf("%w: no cap limit recorded for season %d", ErrNotFound, season)
	}

	carryover, err := s.historyRepo.Carryover(ctx, dynastyID, teamID, season)
	if err != nil {
		return capspace.Sheet{}, fmt.Errorf("get carryover team=%s season=%d: %w", teamID, season, err)
	}

	contracts, err := s.contractRepo.ListActiveByTeam(ctx, dynastyID, teamID, season)
	if err != nil {
		return capspace.Sheet{}, fmt.Errorf("list active contracts team=%s season=%d: %w", teamID, season, err)
	}
	practiceSquad := make(map[string]struct{}, len(contracts))
	for _, c := range contracts {
		if c.PracticeSquad {
			practiceSquad[c.ID] = struct{}{}
		}
	}

	details, err := s.detailRepo.ListActiveByTeamSeason(ctx, dynastyID, teamID, season)
	if err != nil {
		return capspace.Sheet{}, fmt.Errorf("list year details team=%s season=%d: %w", teamID, season, err)
	}

	roster := make([]contract.YearDetail, 0, len(details))
	squad := make([]contract.YearDetail, 0)
	for _, d := range details {
		if _, ok := practiceSquad[d.ContractID]; ok {
			squad = append(squad, d)
			continue
		}
		roster = append(roster, d)
	}

	dead, err := s.deadRepo.ListChargedToSeason(ctx, dynastyID, teamID, season)
	if err != nil {
		return capspace.Sheet{}, fmt.Errorf("list dead money team=%s season=%d: %w", teamID, season, err)
	}

	sheet, err := capspace.BuildSheet(capspace.Inputs{
		DynastyID:          dynastyID,
		TeamID:             teamID,
		Season:             season,
		Mode:               mode,
		CapLimit:           capLimit,
		Carryover:          carryover,
		RosterYears:        roster,
		PracticeSquadYears: squad,
		DeadMoney:          dead,
	}, s.rules, s.now().UTC())
	if err != nil {
		return capspace.Sheet{}, fmt.Errorf("build sheet team=%s season=%d: %w", teamID, season, err)
	}

	s.logger.DebugContext(ctx, "cap sheet computed",
		slog.String("team_id", teamID),
		slog.Int("season", season),
		slog.String("mode", string(mode)),
		slog.Int64("cap_space", sheet.CapSpaceAvailable),
	)
	return sheet, nil
}

func sheetCacheKey(dynastyID, teamID string, season int, mode capspace.RosterMode) string {
	return fmt.Sprintf("%s%d:%s", sheetCachePrefix(dynastyID, teamID), season, mode)
}

func sheetCachePrefix(dynastyID, teamID string) string {
	return fmt.Sprintf("capsheet:%s:%s:", dynastyID, teamID)
}
