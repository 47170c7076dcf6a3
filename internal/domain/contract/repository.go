package contract

import "context"

// Repository describes contract persistence needs from use cases. All reads
// are scoped by dynasty id; records from one league save never leak into
// another.
type Repository interface {
	GetByID(ctx context.Context, dynastyID, contractID string) (Contract, bool, error)
	ListActiveByTeam(ctx context.Context, dynastyID, teamID string, season int) ([]Contract, error)
	ListByPlayer(ctx context.Context, dynastyID, playerID string) ([]Contract, error)
	Upsert(ctx context.Context, c Contract) error
}

// YearDetailRepository persists the per-season accounting rows.
type YearDetailRepository interface {
	ListByContract(ctx context.Context, dynastyID, contractID string) ([]YearDetail, error)
	ListActiveByTeamSeason(ctx context.Context, dynastyID, teamID string, season int) ([]YearDetail, error)
	ListByTeamSeasonRange(ctx context.Context, dynastyID, teamID string, fromSeason, toSeason int) ([]YearDetail, error)
	UpsertMany(ctx context.Context, details []YearDetail) error
}
