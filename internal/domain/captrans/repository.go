package captrans

import "context"

// Repository is the append-only audit log.
type Repository interface {
	Append(ctx context.Context, t Transaction) error
	ListByTeamSeason(ctx context.Context, dynastyID, teamID string, season int) ([]Transaction, error)
}
