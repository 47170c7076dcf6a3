package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironsim/capengine/internal/domain/contract"
	qb "github.com/gridironsim/capengine/internal/platform/querybuilder"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(sql.ErrNoRows))
	assert.False(t, isNotFound(fmt.Errorf("pq: relation player_contracts does not exist")))
}

func TestContractRowRoundTrip(t *testing.T) {
	voidedAt := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	c := contract.Contract{
		ID:              "ct-rt-01",
		DynastyID:       "dyn-rt",
		PlayerID:        "pl-rt-01",
		TeamID:          "tm-rt",
		Type:            contract.TypeVeteran,
		SignedAt:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		StartYear:       2025,
		EndYear:         2027,
		TotalValue:      30_000_000_00,
		SigningBonus:    12_000_000_00,
		GuaranteedTotal: 18_000_000_00,
		IsVoided:        true,
		VoidedAt:        &voidedAt,
		SupersededByID:  "ct-rt-02",
	}

	got := contractFromRow(contractToRow(c))
	assert.Equal(t, c, got)
}

func TestContractRowRoundTrip_EmptySupersededBy(t *testing.T) {
	c := contract.Contract{
		ID:        "ct-rt-03",
		DynastyID: "dyn-rt",
		PlayerID:  "pl-rt-03",
		TeamID:    "tm-rt",
		Type:      contract.TypeRookie,
		SignedAt:  time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		StartYear: 2026,
		EndYear:   2029,
	}

	row := contractToRow(c)
	assert.False(t, row.SupersededByID.Valid)
	assert.Equal(t, c, contractFromRow(row))
}

func TestContractInsertModelColumns(t *testing.T) {
	query, args, err := qb.InsertModel("player_contracts", contractToRow(contract.Contract{ID: "ct-x", DynastyID: "dyn-x"}), "")
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO player_contracts")
	assert.Contains(t, query, "superseded_by_id")
	assert.Len(t, args, 15)
}

func TestDeadMoneyChargeFilterSQL(t *testing.T) {
	query, args, err := qb.Select("*").
		From("dead_money").
		Where(
			qb.Eq("dynasty_id", "dyn-x"),
			qb.Eq("team_id", "tm-x"),
			qb.Expr("((release_season = ? AND current_year_charge <> 0) OR (release_season + 1 = ? AND next_year_charge <> 0))", 2026, 2026),
		).
		ToSQL()
	require.NoError(t, err)

	assert.Contains(t, query, "release_season = $3")
	assert.Contains(t, query, "release_season + 1 = $4")
	assert.Equal(t, []any{"dyn-x", "tm-x", 2026, 2026}, args)
}
