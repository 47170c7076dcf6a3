package postgres

import (
	"database/sql"
	"time"

	"github.com/gridironsim/capengine/internal/domain/contract"
)

type contractTableModel struct {
	ID        string `db:"id"`
	DynastyID string `db:"dynasty_id"`
	PlayerID  string `db:"player_id"`
	TeamID    string `db:"team_id"`
	Type      string `db:"contract_type"`

	SignedAt  time.Time `db:"signed_at"`
	StartYear int       `db:"start_year"`
	EndYear   int       `db:"end_year"`

	TotalValue      int64 `db:"total_value"`
	SigningBonus    int64 `db:"signing_bonus"`
	GuaranteedTotal int64 `db:"guaranteed_total"`

	PracticeSquad bool `db:"practice_squad"`

	IsVoided       bool           `db:"is_voided"`
	VoidedAt       *time.Time     `db:"voided_at"`
	SupersededByID sql.NullString `db:"superseded_by_id"`
}

func contractToRow(c contract.Contract) contractTableModel {
	return contractTableModel{
		ID:              c.ID,
		DynastyID:       c.DynastyID,
		PlayerID:        c.PlayerID,
		TeamID:          c.TeamID,
		Type:            string(c.Type),
		SignedAt:        c.SignedAt,
		StartYear:       c.StartYear,
		EndYear:         c.EndYear,
		TotalValue:      c.TotalValue,
		SigningBonus:    c.SigningBonus,
		GuaranteedTotal: c.GuaranteedTotal,
		PracticeSquad:   c.PracticeSquad,
		IsVoided:        c.IsVoided,
		VoidedAt:        c.VoidedAt,
		SupersededByID:  sql.NullString{String: c.SupersededByID, Valid: c.SupersededByID != ""},
	}
}

func contractFromRow(row contractTableModel) contract.Contract {
	return contract.Contract{
		ID:              row.ID,
		DynastyID:       row.DynastyID,
		PlayerID:        row.PlayerID,
		TeamID:          row.TeamID,
		Type:            contract.Type(row.Type),
		SignedAt:        row.SignedAt,
		StartYear:       row.StartYear,
		EndYear:         row.EndYear,
		TotalValue:      row.TotalValue,
		SigningBonus:    row.SigningBonus,
		GuaranteedTotal: row.GuaranteedTotal,
		PracticeSquad:   row.PracticeSquad,
		IsVoided:        row.IsVoided,
		VoidedAt:        row.VoidedAt,
		SupersededByID:  row.SupersededByID.String,
	}
}

type yearDetailTableModel struct {
	ContractID string `db:"contract_id"`
	DynastyID  string `db:"dynasty_id"`
	TeamID     string `db:"team_id"`
	PlayerID   string `db:"player_id"`
	Season     int    `db:"season"`

	BaseSalary     int64 `db:"base_salary"`
	RosterBonus    int64 `db:"roster_bonus"`
	WorkoutBonus   int64 `db:"workout_bonus"`
	OptionBonus    int64 `db:"option_bonus"`
	PerGameBonus   int64 `db:"per_game_bonus"`
	LTBEIncentive  int64 `db:"ltbe_incentive"`
	NLTBEIncentive int64 `db:"nltbe_incentive"`

	SigningBonusProration int64 `db:"signing_bonus_proration"`
	OptionBonusProration  int64 `db:"option_bonus_proration"`

	GuaranteedBase int64 `db:"guaranteed_base"`
	CashPaid       int64 `db:"cash_paid"`
	IsVoided       bool  `db:"is_voided"`
}

func yearDetailToRow(d contract.YearDetail) yearDetailTableModel {
	return yearDetailTableModel{
		ContractID:            d.ContractID,
		DynastyID:             d.DynastyID,
		TeamID:                d.TeamID,
		PlayerID:              d.PlayerID,
		Season:                d.Season,
		BaseSalary:            d.BaseSalary,
		RosterBonus:           d.RosterBonus,
		WorkoutBonus:          d.WorkoutBonus,
		OptionBonus:           d.OptionBonus,
		PerGameBonus:          d.PerGameBonus,
		LTBEIncentive:         d.LTBEIncentive,
		NLTBEIncentive:        d.NLTBEIncentive,
		SigningBonusProration: d.SigningBonusProration,
		OptionBonusProration:  d.OptionBonusProration,
		GuaranteedBase:        d.GuaranteedBase,
		CashPaid:              d.CashPaid,
		IsVoided:              d.IsVoided,
	}
}

func yearDetailFromRow(row yearDetailTableModel) contract.YearDetail {
	return contract.YearDetail{
		ContractID:            row.ContractID,
		DynastyID:             row.DynastyID,
		TeamID:                row.TeamID,
		PlayerID:              row.PlayerID,
		Season:                row.Season,
		BaseSalary:            row.BaseSalary,
		RosterBonus:           row.RosterBonus,
		WorkoutBonus:          row.WorkoutBonus,
		OptionBonus:           row.OptionBonus,
		PerGameBonus:          row.PerGameBonus,
		LTBEIncentive:         row.LTBEIncentive,
		NLTBEIncentive:        row.NLTBEIncentive,
		SigningBonusProration: row.SigningBonusProration,
		OptionBonusProration:  row.OptionBonusProration,
		GuaranteedBase:        row.GuaranteedBase,
		CashPaid:              row.CashPaid,
		IsVoided:              row.IsVoided,
	}
}
