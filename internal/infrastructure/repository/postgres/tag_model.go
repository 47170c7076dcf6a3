package postgres

import (
	"time"

	"github.com/gridironsim/capengine/internal/domain/tag"
)

type franchiseTagTableModel struct {
	ID        string `db:"id"`
	DynastyID string `db:"dynasty_id"`
	TeamID    string `db:"team_id"`
	PlayerID  string `db:"player_id"`
	Season    int    `db:"season"`
	Kind      string `db:"kind"`

	ConsecutiveCount int   `db:"consecutive_count"`
	Salary           int64 `db:"salary"`

	CreatedAt time.Time `db:"created_at"`
}

func franchiseTagToRow(t tag.FranchiseTag) franchiseTagTableModel {
	return franchiseTagTableModel{
		ID:               t.ID,
		DynastyID:        t.DynastyID,
		TeamID:           t.TeamID,
		PlayerID:         t.PlayerID,
		Season:           t.Season,
		Kind:             string(t.Kind),
		ConsecutiveCount: t.ConsecutiveCount,
		Salary:           t.Salary,
		CreatedAt:        t.CreatedAt,
	}
}

func franchiseTagFromRow(row franchiseTagTableModel) tag.FranchiseTag {
	return tag.FranchiseTag{
		ID:               row.ID,
		DynastyID:        row.DynastyID,
		TeamID:           row.TeamID,
		PlayerID:         row.PlayerID,
		Season:           row.Season,
		Kind:             tag.Kind(row.Kind),
		ConsecutiveCount: row.ConsecutiveCount,
		Salary:           row.Salary,
		CreatedAt:        row.CreatedAt,
	}
}

type rfaTenderTableModel struct {
	ID        string `db:"id"`
	DynastyID string `db:"dynasty_id"`
	TeamID    string `db:"team_id"`
	PlayerID  string `db:"player_id"`
	Season    int    `db:"season"`
	Level     string `db:"level"`
	Salary    int64  `db:"salary"`

	CreatedAt time.Time `db:"created_at"`
}

func rfaTenderToRow(t tag.RFATender) rfaTenderTableModel {
	return rfaTenderTableModel{
		ID:        t.ID,
		DynastyID: t.DynastyID,
		TeamID:    t.TeamID,
		PlayerID:  t.PlayerID,
		Season:    t.Season,
		Level:     string(t.Level),
		Salary:    t.Salary,
		CreatedAt: t.CreatedAt,
	}
}

type positionSalaryTableModel struct {
	DynastyID string `db:"dynasty_id"`
	Position  string `db:"position"`
	Season    int    `db:"season"`
	CapHit    int64  `db:"cap_hit"`
}
