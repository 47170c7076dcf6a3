package tag

import "context"

// Repository persists tags and tenders.
type Repository interface {
	CountByTeamSeason(ctx context.Context, dynastyID, teamID string, season int) (int, error)
	LatestByPlayer(ctx context.Context, dynastyID, playerID string) (FranchiseTag, bool, error)
	InsertTag(ctx context.Context, t FranchiseTag) error
	InsertTender(ctx context.Context, t RFATender) error
}

// CompRepository supplies the positional salary comparables tag pricing
// needs. The backing store ranks active cap hits at a position for a season,
// highest first.
type CompRepository interface {
	TopPositionCapHits(ctx context.Context, dynastyID, position string, season, limit int) ([]int64, error)
}
