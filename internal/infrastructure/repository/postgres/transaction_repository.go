package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironsim/capengine/internal/domain/captrans"
	qb "github.com/gridironsim/capengine/internal/platform/querybuilder"
)

// TransactionRepository is append-only; rows are never updated or deleted.
type TransactionRepository struct {
	db *sqlx.DB
}

func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Append(ctx context.Context, t captrans.Transaction) error {
	query, args, err := qb.InsertModel("cap_transactions", transactionToRow(t), "")
	if err != nil {
		return fmt.Errorf("build append transaction query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append transaction %s: %w", t.ID, err)
	}
	return nil
}

func (r *TransactionRepository) ListByTeamSeason(ctx context.Context, dynastyID, teamID string, season int) ([]captrans.Transaction, error) {
	query, args, err := qb.Select("*").
		From("cap_transactions").
		Where(
			qb.Eq("dynasty_id", dynastyID),
			qb.Eq("team_id", teamID),
			qb.Eq("season", season),
		).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list transactions query: %w", err)
	}

	var rows []transactionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	out := make([]captrans.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, transactionFromRow(row))
	}
	return out, nil
}
