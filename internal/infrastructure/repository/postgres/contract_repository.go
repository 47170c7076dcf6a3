package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironsim/capengine/internal/domain/contract"
	qb "github.com/gridironsim/capengine/internal/platform/querybuilder"
)

type ContractRepository struct {
	db *sqlx.DB
}

func NewContractRepository(db *sqlx.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func contractBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("player_contracts")
}

func (r *ContractRepository) GetByID(ctx context.Context, dynastyID, contractID string) (contract.Contract, bool, error) {
	query, args, err := contractBaseSelectBuilder().
		Where(
			qb.Eq("dynasty_id", dynastyID),
			qb.Eq("id", contractID),
		).
		ToSQL()
	if err != nil {
		return contract.Contract{}, false, fmt.Errorf("build get contract query: %w", err)
	}

	var row contractTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return contract.Contract{}, false, nil
		}
		return contract.Contract{}, false, fmt.Errorf("get contract: %w", err)
	}

	return contractFromRow(row), true, nil
}

func (r *ContractRepository) ListActiveByTeam(ctx context.Context, dynastyID, teamID string, season int) ([]contract.Contract, error) {
	query, args, err := contractBaseSelectBuilder().
		Where(
			qb.Eq("dynasty_id", dynastyID),
			qb.Eq("team_id", teamID),
			qb.Eq("is_voided", false),
			qb.Lte("start_year", season),
			qb.Gte("end_year", season),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list active contracts query: %w", err)
	}

	var rows []contractTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list active contracts: %w", err)
	}

	out := make([]contract.Contract, 0, len(rows))
	for _, row := range rows {
		out = append(out, contractFromRow(row))
	}
	return out, nil
}

func (r *ContractRepository) ListByPlayer(ctx context.Context, dynastyID, playerID string) ([]contract.Contract, error) {
	query, args, err := contractBaseSelectBuilder().
		Where(
			qb.Eq("dynasty_id", dynastyID),
			qb.Eq("player_id", playerID),
		).
		OrderBy("signed_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list contracts by player query: %w", err)
	}

	var rows []contractTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list contracts by player: %w", err)
	}

	out := make([]contract.Contract, 0, len(rows))
	for _, row := range rows {
		out = append(out, contractFromRow(row))
	}
	return out, nil
}

func (r *ContractRepository) Upsert(ctx context.Context, c contract.Contract) error {
	query, args, err := qb.InsertModel("player_contracts", contractToRow(c), `
ON CONFLICT (dynasty_id, id) DO UPDATE SET
	player_id = EXCLUDED.player_id,
	team_id = EXCLUDED.team_id,
	contract_type = EXCLUDED.contract_type,
	signed_at = EXCLUDED.signed_at,
	start_year = EXCLUDED.start_year,
	end_year = EXCLUDED.end_year,
	total_value = EXCLUDED.total_value,
	signing_bonus = EXCLUDED.signing_bonus,
	guaranteed_total = EXCLUDED.guaranteed_total,
	practice_squad = EXCLUDED.practice_squad,
	is_voided = EXCLUDED.is_voided,
	voided_at = EXCLUDED.voided_at,
	superseded_by_id = EXCLUDED.superseded_by_id`)
	if err != nil {
		return fmt.Errorf("build upsert contract query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert contract %s: %w", c.ID, err)
	}
	return nil
}

type YearDetailRepository struct {
	db *sqlx.DB
}

func NewYearDetailRepository(db *sqlx.DB) *YearDetailRepository {
	return &YearDetailRepository{db: db}
}

func yearDetailBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("contract_year_details")
}

func (r *YearDetailRepository) ListByContract(ctx context.Context, dynastyID, contractID string) ([]contract.YearDetail, error) {
	query, args, err := yearDetailBaseSelectBuilder().
		Where(
			qb.Eq("dynasty_id", dynastyID),
			qb.Eq("contract_id", contractID),
		).
		OrderBy("season").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list year details query: %w", err)
	}

	var rows []yearDetailTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list year details: %w", err)
	}

	return yearDetailsFromRows(rows), nil
}

func (r *YearDetailRepository) ListActiveByTeamSeason(ctx context.Context, dynastyID, teamID string, season int) ([]contract.YearDetail, error) {
	query, args, err := yearDetailBaseSelectBuilder().
		Where(
			qb.Eq("dynasty_id", dynastyID),
			qb.Eq("team_id", teamID),
			qb.Eq("season", season),
			qb.Eq("is_voided", false),
		).
		OrderBy("contract_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team season details query: %w", err)
	}

	var rows []yearDetailTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team season details: %w", err)
	}

	return yearDetailsFromRows(rows), nil
}

func (r *YearDetailRepository) ListByTeamSeasonRange(ctx context.Context, dynastyID, teamID string, fromSeason, toSeason int) ([]contract.YearDetail, error) {
	query, args, err := yearDetailBaseSelectBuilder().
		Where(
			qb.Eq("dynasty_id", dynastyID),
			qb.Eq("team_id", teamID),
			qb.Gte("season", fromSeason),
			qb.Lte("season", toSeason),
		).
		OrderBy("season", "contract_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list season range details query: %w", err)
	}

	var rows []yearDetailTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list season range details: %w", err)
	}

	return yearDetailsFromRows(rows), nil
}

func (r *YearDetailRepository) UpsertMany(ctx context.Context, details []contract.YearDetail) error {
	if len(details) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin year detail tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, d := range details {
		query, args, err := qb.InsertModel("contract_year_details", yearDetailToRow(d), `
ON CONFLICT (dynasty_id, contract_id, season) DO UPDATE SET
	base_salary = EXCLUDED.base_salary,
	roster_bonus = EXCLUDED.roster_bonus,
	workout_bonus = EXCLUDED.workout_bonus,
	option_bonus = EXCLUDED.option_bonus,
	per_game_bonus = EXCLUDED.per_game_bonus,
	ltbe_incentive = EXCLUDED.ltbe_incentive,
	nltbe_incentive = EXCLUDED.nltbe_incentive,
	signing_bonus_proration = EXCLUDED.signing_bonus_proration,
	option_bonus_proration = EXCLUDED.option_bonus_proration,
	guaranteed_base = EXCLUDED.guaranteed_base,
	cash_paid = EXCLUDED.cash_paid,
	is_voided = EXCLUDED.is_voided`)
		if err != nil {
			return fmt.Errorf("build upsert year detail query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert year detail %s/%d: %w", d.ContractID, d.Season, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit year detail tx: %w", err)
	}
	return nil
}

func yearDetailsFromRows(rows []yearDetailTableModel) []contract.YearDetail {
	out := make([]contract.YearDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, yearDetailFromRow(row))
	}
	return out
}
