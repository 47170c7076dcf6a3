package deadmoney

import "context"

// Repository persists dead-money entries. ListChargedToSeason must return
// every entry charging the given season, including June-1 deferrals landing
// from the prior season's releases.
type Repository interface {
	ListChargedToSeason(ctx context.Context, dynastyID, teamID string, season int) ([]Entry, error)
	CountJuneOneByTeamSeason(ctx context.Context, dynastyID, teamID string, season int) (int, error)
	Insert(ctx context.Context, entry Entry) error
}
