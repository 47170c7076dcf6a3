package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/gridironsim/capengine/internal/domain/capspace"
	"github.com/gridironsim/capengine/internal/domain/compliance"
	"github.com/gridironsim/capengine/internal/domain/contract"
	"github.com/gridironsim/capengine/internal/domain/rulebook"
)

const auditMaxWorkers = 8

type LeagueAuditInput struct {
	DynastyID string
	TeamIDs   []string
	Season    int

	// MaxWorkers bounds the sweep's concurrency; zero picks a sane default.
	MaxWorkers int
}

type LeagueAuditResult struct {
	Season      int
	WorkerCount int
	Sheets      []capspace.Sheet
	Findings    []compliance.Finding
}

type teamAuditRow struct {
	sheet    capspace.Sheet
	findings []compliance.Finding
	err      error
}

// ComplianceService runs the league-wide checks: start-of-league-year cap
// compliance under full-roster accounting and the rolling spending floor.
// Violations come back as findings for the commissioner to act on; the sweep
// itself never corrects anything.
type ComplianceService struct {
	detailRepo  contract.YearDetailRepository
	historyRepo capspace.HistoryRepository
	sheets      capSheetReader
	rules       rulebook.Rulebook
	logger      *slog.Logger
	now         func() time.Time
}

func NewComplianceService(
	detailRepo contract.YearDetailRepository,
	historyRepo capspace.HistoryRepository,
	sheets capSheetReader,
	rules rulebook.Rulebook,
	logger *slog.Logger,
) *ComplianceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ComplianceService{
		detailRepo:  detailRepo,
		historyRepo: historyRepo,
		sheets:      sheets,
		rules:       rules,
		logger:      logger,
		now:         time.Now,
	}
}

// Precheck validates a proposed current-year cap-hit increase for a team.
// A typed InsufficientCapSpaceError carries the exact shortfall back.
func (s *ComplianceService) Precheck(ctx context.Context, dynastyID, teamID string, season int, capHitDelta int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ComplianceService.Precheck")
	defer span.End()

	dynastyID = strings.TrimSpace(dynastyID)
	teamID = strings.TrimSpace(teamID)
	if dynastyID == "" || teamID == "" {
		return fmt.Errorf("%w: dynasty_id and team_id are required", ErrInvalidInput)
	}
	if season <= 0 {
		return fmt.Errorf("%w: season must be positive", ErrInvalidInput)
	}

	sheet, err := s.sheets.TeamSheet(ctx, dynastyID, teamID, season, capspace.ModeTop51)
	if err != nil {
		return fmt.Errorf("get cap sheet for precheck: %w", err)
	}
	return compliance.PrecheckTransaction(capHitDelta, sheet.CapSpaceAvailable)
}

// LeagueYearAudit sweeps every team in parallel: each team's Full53 sheet is
// rebuilt and checked, and the spending floor window closing at the audit
// season is evaluated when enough history exists.
func (s *ComplianceService) LeagueYearAudit(ctx context.Context, input LeagueAuditInput) (LeagueAuditResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ComplianceService.LeagueYearAudit")
	defer span.End()

	input.DynastyID = strings.TrimSpace(input.DynastyID)
	if input.DynastyID == "" {
		return LeagueAuditResult{}, fmt.Errorf("%w: dynasty_id is required", ErrInvalidInput)
	}
	if len(input.TeamIDs) == 0 {
		return LeagueAuditResult{}, fmt.Errorf("%w: team_ids are required", ErrInvalidInput)
	}
	if input.Season <= 0 {
		return LeagueAuditResult{}, fmt.Errorf("%w: season must be positive", ErrInvalidInput)
	}

	workerCount := normalizeAuditWorkerCount(input.MaxWorkers, len(input.TeamIDs))
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return LeagueAuditResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	rows := make(chan teamAuditRow, len(input.TeamIDs))
	var workers sync.WaitGroup
	for _, teamID := range input.TeamIDs {
		teamID := strings.TrimSpace(teamID)
		if teamID == "" {
			return LeagueAuditResult{}, fmt.Errorf("%w: team id cannot be empty", ErrInvalidInput)
		}
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			rows <- s.auditTeam(ctx, input.DynastyID, teamID, input.Season)
		}); err != nil {
			workers.Done()
			return LeagueAuditResult{}, fmt.Errorf("submit audit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	result := LeagueAuditResult{
		Season:      input.Season,
		WorkerCount: workerCount,
		Sheets:      make([]capspace.Sheet, 0, len(input.TeamIDs)),
	}
	for row := range rows {
		if row.err != nil {
			return LeagueAuditResult{}, row.err
		}
		result.Sheets = append(result.Sheets, row.sheet)
		result.Findings = append(result.Findings, row.findings...)
	}

	sort.Slice(result.Sheets, func(i, j int) bool { return result.Sheets[i].TeamID < result.Sheets[j].TeamID })
	sort.Slice(result.Findings, func(i, j int) bool {
		if result.Findings[i].TeamID != result.Findings[j].TeamID {
			return result.Findings[i].TeamID < result.Findings[j].TeamID
		}
		return result.Findings[i].Kind < result.Findings[j].Kind
	})

	s.logger.InfoContext(ctx, "league year audit complete",
		slog.Int("season", input.Season),
		slog.Int("teams", len(input.TeamIDs)),
		slog.Int("findings", len(result.Findings)),
	)
	return result, nil
}

func (s *ComplianceService) auditTeam(ctx context.Context, dynastyID, teamID string, season int) teamAuditRow {
	sheet, err := s.sheets.TeamSheet(ctx, dynastyID, teamID, season, capspace.ModeFull53)
	if err != nil {
		return teamAuditRow{err: fmt.Errorf("audit team %s: %w", teamID, err)}
	}

	row := teamAuditRow{
		sheet:    sheet,
		findings: compliance.LeagueYearFindings([]capspace.Sheet{sheet}),
	}

	finding, found, err := s.spendingFloorCheck(ctx, dynastyID, teamID, season)
	if err != nil {
		return teamAuditRow{err: fmt.Errorf("spending floor team %s: %w", teamID, err)}
	}
	if found {
		row.findings = append(row.findings, finding)
	}
	return row
}

// spendingFloorCheck evaluates the floor window closing at season. Seasons
// before a full window of cap history exists are not window boundaries, so
// they produce no finding.
func (s *ComplianceService) spendingFloorCheck(ctx context.Context, dynastyID, teamID string, season int) (compliance.Finding, bool, error) {
	window := s.rules.SpendingFloorSeasons
	from := season - window + 1

	caps, err := s.historyRepo.ListSeasonCaps(ctx, dynastyID, from, season)
	if err != nil {
		return compliance.Finding{}, false, fmt.Errorf("list season caps: %w", err)
	}
	if len(caps) < window {
		return compliance.Finding{}, false, nil
	}

	details, err := s.detailRepo.ListByTeamSeasonRange(ctx, dynastyID, teamID, from, season)
	if err != nil {
		return compliance.Finding{}, false, fmt.Errorf("list year details: %w", err)
	}

	cashBySeason := make(map[int]int64, window)
	for _, d := range details {
		if d.IsVoided {
			continue
		}
		cashBySeason[d.Season] += d.CashPaid
	}

	in := compliance.SpendingFloorInput{
		DynastyID: dynastyID,
		TeamID:    teamID,
		Seasons:   make([]int, 0, window),
		CashPaid:  make([]int64, 0, window),
		CapLimits: make([]int64, 0, window),
	}
	for _, sc := range caps {
		in.Seasons = append(in.Seasons, sc.Season)
		in.CashPaid = append(in.CashPaid, cashBySeason[sc.Season])
		in.CapLimits = append(in.CapLimits, sc.CapLimit)
	}

	return compliance.SpendingFloorFinding(in, s.rules)
}

func normalizeAuditWorkerCount(value, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = auditMaxWorkers
	}
	if value > auditMaxWorkers {
		value = auditMaxWorkers
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
