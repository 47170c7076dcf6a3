package postgres

import (
	"time"

	"github.com/gridironsim/capengine/internal/domain/deadmoney"
)

type deadMoneyTableModel struct {
	ID         string `db:"id"`
	DynastyID  string `db:"dynasty_id"`
	ContractID string `db:"contract_id"`
	TeamID     string `db:"team_id"`
	PlayerID   string `db:"player_id"`

	ReleaseSeason     int  `db:"release_season"`
	JuneOneDesignated bool `db:"june_one_designated"`

	CurrentYearCharge int64 `db:"current_year_charge"`
	NextYearCharge    int64 `db:"next_year_charge"`

	RemainingProration   int64 `db:"remaining_proration"`
	AcceleratedGuarantee int64 `db:"accelerated_guarantee"`

	CreatedAt time.Time `db:"created_at"`
}

func deadMoneyToRow(e deadmoney.Entry) deadMoneyTableModel {
	return deadMoneyTableModel{
		ID:                   e.ID,
		DynastyID:            e.DynastyID,
		ContractID:           e.ContractID,
		TeamID:               e.TeamID,
		PlayerID:             e.PlayerID,
		ReleaseSeason:        e.ReleaseSeason,
		JuneOneDesignated:    e.JuneOneDesignated,
		CurrentYearCharge:    e.CurrentYearCharge,
		NextYearCharge:       e.NextYearCharge,
		RemainingProration:   e.RemainingProration,
		AcceleratedGuarantee: e.AcceleratedGuarantee,
		CreatedAt:            e.CreatedAt,
	}
}

func deadMoneyFromRow(row deadMoneyTableModel) deadmoney.Entry {
	return deadmoney.Entry{
		ID:                   row.ID,
		DynastyID:            row.DynastyID,
		ContractID:           row.ContractID,
		TeamID:               row.TeamID,
		PlayerID:             row.PlayerID,
		ReleaseSeason:        row.ReleaseSeason,
		JuneOneDesignated:    row.JuneOneDesignated,
		CurrentYearCharge:    row.CurrentYearCharge,
		NextYearCharge:       row.NextYearCharge,
		RemainingProration:   row.RemainingProration,
		AcceleratedGuarantee: row.AcceleratedGuarantee,
		CreatedAt:            row.CreatedAt,
	}
}
