package capspace

import "context"

// HistoryRepository supplies the league cap limits and per-team carryover a
// sheet needs. Cap limits are league-wide per season; carryover is the unused
// space a team rolled forward from the prior season.
type HistoryRepository interface {
	CapLimit(ctx context.Context, dynastyID string, season int) (int64, bool, error)
	Carryover(ctx context.Context, dynastyID, teamID string, season int) (int64, error)
	ListSeasonCaps(ctx context.Context, dynastyID string, fromSeason, toSeason int) ([]SeasonCap, error)
}
