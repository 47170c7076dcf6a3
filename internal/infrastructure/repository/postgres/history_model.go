package postgres

import "github.com/gridironsim/capengine/internal/domain/capspace"

type seasonCapTableModel struct {
	DynastyID string `db:"dynasty_id"`
	Season    int    `db:"season"`
	CapLimit  int64  `db:"cap_limit"`
}

func seasonCapFromRow(row seasonCapTableModel) capspace.SeasonCap {
	return capspace.SeasonCap{
		DynastyID: row.DynastyID,
		Season:    row.Season,
		CapLimit:  row.CapLimit,
	}
}

type carryoverTableModel struct {
	DynastyID string `db:"dynasty_id"`
	TeamID    string `db:"team_id"`
	Season    int    `db:"season"`
	Amount    int64  `db:"amount"`
}
