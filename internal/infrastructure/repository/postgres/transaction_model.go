package postgres

import (
	"time"

	"github.com/gridironsim/capengine/internal/domain/captrans"
)

type transactionTableModel struct {
	ID         string `db:"id"`
	DynastyID  string `db:"dynasty_id"`
	TeamID     string `db:"team_id"`
	PlayerID   string `db:"player_id"`
	ContractID string `db:"contract_id"`
	Kind       string `db:"kind"`
	Season     int    `db:"season"`

	Amount         int64 `db:"amount"`
	CapSpaceBefore int64 `db:"cap_space_before"`
	CapSpaceAfter  int64 `db:"cap_space_after"`

	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}

func transactionToRow(t captrans.Transaction) transactionTableModel {
	return transactionTableModel{
		ID:             t.ID,
		DynastyID:      t.DynastyID,
		TeamID:         t.TeamID,
		PlayerID:       t.PlayerID,
		ContractID:     t.ContractID,
		Kind:           string(t.Kind),
		Season:         t.Season,
		Amount:         t.Amount,
		CapSpaceBefore: t.CapSpaceBefore,
		CapSpaceAfter:  t.CapSpaceAfter,
		Note:           t.Note,
		CreatedAt:      t.CreatedAt,
	}
}

func transactionFromRow(row transactionTableModel) captrans.Transaction {
	return captrans.Transaction{
		ID:             row.ID,
		DynastyID:      row.DynastyID,
		TeamID:         row.TeamID,
		PlayerID:       row.PlayerID,
		ContractID:     row.ContractID,
		Kind:           captrans.Kind(row.Kind),
		Season:         row.Season,
		Amount:         row.Amount,
		CapSpaceBefore: row.CapSpaceBefore,
		CapSpaceAfter:  row.CapSpaceAfter,
		Note:           row.Note,
		CreatedAt:      row.CreatedAt,
	}
}
