package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironsim/capengine/internal/domain/deadmoney"
	qb "github.com/gridironsim/capengine/internal/platform/querybuilder"
)

type DeadMoneyRepository struct {
	db *sqlx.DB
}

func NewDeadMoneyRepository(db *sqlx.DB) *DeadMoneyRepository {
	return &DeadMoneyRepository{db: db}
}

// ListChargedToSeason matches entries charging the season directly and
// June-1 deferrals landing from the prior season's releases.
func (r *DeadMoneyRepository) ListChargedToSeason(ctx context.Context, dynastyID, teamID string, season int) ([]deadmoney.Entry, error) {
	query, args, err := qb.Select("*").
		From("dead_money").
		Where(
			qb.Eq("dynasty_id", dynastyID),
			qb.Eq("team_id", teamID),
			qb.Expr("((release_season = ? AND current_year_charge <> 0) OR (release_season + 1 = ? AND next_year_charge <> 0))", season, season),
		).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list dead money query: %w", err)
	}

	var rows []deadMoneyTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list dead money: %w", err)
	}

	out := make([]deadmoney.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, deadMoneyFromRow(row))
	}
	return out, nil
}

func (r *DeadMoneyRepository) CountJuneOneByTeamSeason(ctx context.Context, dynastyID, teamID string, season int) (int, error) {
	query, args, err := qb.Select("COUNT(1)").
		From("dead_money").
		Where(
			qb.Eq("dynasty_id", dynastyID),
			qb.Eq("team_id", teamID),
			qb.Eq("release_season", season),
			qb.Eq("june_one_designated", true),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count june one query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count june one designations: %w", err)
	}
	return count, nil
}

func (r *DeadMoneyRepository) Insert(ctx context.Context, entry deadmoney.Entry) error {
	query, args, err := qb.InsertModel("dead_money", deadMoneyToRow(entry), "")
	if err != nil {
		return fmt.Errorf("build insert dead money query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert dead money %s: %w", entry.ID, err)
	}
	return nil
}
