package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironsim/capengine/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo dynasty into an empty database. It is a no-op
// once any league cap rows exist, so restarting the server never duplicates
// data.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM league_salary_caps`); err != nil {
		return fmt.Errorf("count season caps for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, c := range memory.SeedSeasonCaps() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO league_salary_caps (dynasty_id, season, cap_limit)
VALUES (:dynasty_id, :season, :cap_limit)
ON CONFLICT (dynasty_id, season) DO NOTHING`, map[string]any{
			"dynasty_id": c.DynastyID,
			"season":     c.Season,
			"cap_limit":  c.CapLimit,
		})
		if err != nil {
			return fmt.Errorf("bind seed season cap %d query: %w", c.Season, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed season cap %d: %w", c.Season, err)
		}
	}

	for _, c := range memory.SeedCarryovers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO team_carryovers (dynasty_id, team_id, season, amount)
VALUES (:dynasty_id, :team_id, :season, :amount)
ON CONFLICT (dynasty_id, team_id, season) DO NOTHING`, map[string]any{
			"dynasty_id": c.DynastyID,
			"team_id":    c.TeamID,
			"season":     c.Season,
			"amount":     c.Amount,
		})
		if err != nil {
			return fmt.Errorf("bind seed carryover %s query: %w", c.TeamID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed carryover %s: %w", c.TeamID, err)
		}
	}

	for _, p := range memory.SeedPositionSalaries() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO position_salaries (dynasty_id, position, season, cap_hit)
VALUES (:dynasty_id, :position, :season, :cap_hit)`, map[string]any{
			"dynasty_id": p.DynastyID,
			"position":   p.Position,
			"season":     p.Season,
			"cap_hit":    p.CapHit,
		})
		if err != nil {
			return fmt.Errorf("bind seed position salary %s query: %w", p.Position, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed position salary %s: %w", p.Position, err)
		}
	}

	for _, c := range memory.SeedContracts() {
		row := contractToRow(c)
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO player_contracts (
	id, dynasty_id, player_id, team_id, contract_type, signed_at,
	start_year, end_year, total_value, signing_bonus, guaranteed_total,
	practice_squad, is_voided, voided_at, superseded_by_id
) VALUES (
	:id, :dynasty_id, :player_id, :team_id, :contract_type, :signed_at,
	:start_year, :end_year, :total_value, :signing_bonus, :guaranteed_total,
	:practice_squad, :is_voided, :voided_at, :superseded_by_id
)
ON CONFLICT (dynasty_id, id) DO NOTHING`, row)
		if err != nil {
			return fmt.Errorf("bind seed contract %s query: %w", c.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed contract %s: %w", c.ID, err)
		}
	}

	for _, d := range memory.SeedYearDetails() {
		row := yearDetailToRow(d)
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO contract_year_details (
	contract_id, dynasty_id, team_id, player_id, season,
	base_salary, roster_bonus, workout_bonus, option_bonus, per_game_bonus,
	ltbe_incentive, nltbe_incentive, signing_bonus_proration,
	option_bonus_proration, guaranteed_base, cash_paid, is_voided
) VALUES (
	:contract_id, :dynasty_id, :team_id, :player_id, :season,
	:base_salary, :roster_bonus, :workout_bonus, :option_bonus, :per_game_bonus,
	:ltbe_incentive, :nltbe_incentive, :signing_bonus_proration,
	:option_bonus_proration, :guaranteed_base, :cash_paid, :is_voided
)
ON CONFLICT (dynasty_id, contract_id, season) DO NOTHING`, row)
		if err != nil {
			return fmt.Errorf("bind seed year detail %s/%d query: %w", d.ContractID, d.Season, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed year detail %s/%d: %w", d.ContractID, d.Season, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
