package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironsim/capengine/internal/domain/tag"
	qb "github.com/gridironsim/capengine/internal/platform/querybuilder"
)

type TagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) CountByTeamSeason(ctx context.Context, dynastyID, teamID string, season int) (int, error) {
	query, args, err := qb.Select("COUNT(1)").
		From("franchise_tags").
		Where(
			qb.Eq("dynasty_id", dynastyID),
			qb.Eq("team_id", teamID),
			qb.Eq("season", season),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count tags query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count tags: %w", err)
	}
	return count, nil
}

func (r *TagRepository) LatestByPlayer(ctx context.Context, dynastyID, playerID string) (tag.FranchiseTag, bool, error) {
	query, args, err := qb.Select("*").
		From("franchise_tags").
		Where(
			qb.Eq("dynasty_id", dynastyID),
			qb.Eq("player_id", playerID),
		).
		OrderBy("season DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return tag.FranchiseTag{}, false, fmt.Errorf("build latest tag query: %w", err)
	}

	var row franchiseTagTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tag.FranchiseTag{}, false, nil
		}
		return tag.FranchiseTag{}, false, fmt.Errorf("get latest tag: %w", err)
	}
	return franchiseTagFromRow(row), true, nil
}

func (r *TagRepository) InsertTag(ctx context.Context, t tag.FranchiseTag) error {
	query, args, err := qb.InsertModel("franchise_tags", franchiseTagToRow(t), "")
	if err != nil {
		return fmt.Errorf("build insert tag query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert tag %s: %w", t.ID, err)
	}
	return nil
}

func (r *TagRepository) InsertTender(ctx context.Context, t tag.RFATender) error {
	query, args, err := qb.InsertModel("rfa_tenders", rfaTenderToRow(t), "")
	if err != nil {
		return fmt.Errorf("build insert tender query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert tender %s: %w", t.ID, err)
	}
	return nil
}

// CompRepository reads the positional comparable table the league office
// refreshes each offseason.
type CompRepository struct {
	db *sqlx.DB
}

func NewCompRepository(db *sqlx.DB) *CompRepository {
	return &CompRepository{db: db}
}

func (r *CompRepository) TopPositionCapHits(ctx context.Context, dynastyID, position string, season, limit int) ([]int64, error) {
	query, args, err := qb.Select("cap_hit").
		From("position_salaries").
		Where(
			qb.Eq("dynasty_id", dynastyID),
			qb.Eq("position", position),
			qb.Eq("season", season),
		).
		OrderBy("cap_hit DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build top position cap hits query: %w", err)
	}

	var hits []int64
	if err := r.db.SelectContext(ctx, &hits, query, args...); err != nil {
		return nil, fmt.Errorf("list top position cap hits: %w", err)
	}
	return hits, nil
}
