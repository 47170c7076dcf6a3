package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironsim/capengine/internal/domain/capspace"
	qb "github.com/gridironsim/capengine/internal/platform/querybuilder"
)

type HistoryRepository struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) CapLimit(ctx context.Context, dynastyID string, season int) (int64, bool, error) {
	query, args, err := qb.Select("*").
		From("league_salary_caps").
		Where(
			qb.Eq("dynasty_id", dynastyID),
			qb.Eq("season", season),
		).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build cap limit query: %w", err)
	}

	var row seasonCapTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get cap limit: %w", err)
	}
	return row.CapLimit, true, nil
}

// Carryover returns zero for teams with no rolled-forward space on record.
func (r *HistoryRepository) Carryover(ctx context.Context, dynastyID, teamID string, season int) (int64, error) {
	query, args, err := qb.Select("*").
		From("team_carryovers").
		Where(
			qb.Eq("dynasty_id", dynastyID),
			qb.Eq("team_id", teamID),
			qb.Eq("season", season),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build carryover query: %w", err)
	}

	var row carryoverTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("get carryover: %w", err)
	}
	return row.Amount, nil
}

func (r *HistoryRepository) ListSeasonCaps(ctx context.Context, dynastyID string, fromSeason, toSeason int) ([]capspace.SeasonCap, error) {
	query, args, err := qb.Select("*").
		From("league_salary_caps").
		Where(
			qb.Eq("dynasty_id", dynastyID),
			qb.Gte("season", fromSeason),
			qb.Lte("season", toSeason),
		).
		OrderBy("season").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list season caps query: %w", err)
	}

	var rows []seasonCapTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list season caps: %w", err)
	}

	out := make([]capspace.SeasonCap, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonCapFromRow(row))
	}
	return out, nil
}
