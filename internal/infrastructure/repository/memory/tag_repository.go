package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gridironsim/capengine/internal/domain/tag"
)

type TagRepository struct {
	mu      sync.RWMutex
	tags    []tag.FranchiseTag
	tenders []tag.RFATender
}

func NewTagRepository() *TagRepository {
	return &TagRepository{}
}

func (r *TagRepository) CountByTeamSeason(_ context.Context, dynastyID, teamID string, season int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, t := range r.tags {
		if t.DynastyID == dynastyID && t.TeamID == teamID && t.Season == season {
			count++
		}
	}
	return count, nil
}

func (r *TagRepository) LatestByPlayer(_ context.Context, dynastyID, playerID string) (tag.FranchiseTag, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		latest tag.FranchiseTag
		found  bool
	)
	for _, t := range r.tags {
		if t.DynastyID != dynastyID || t.PlayerID != playerID {
			continue
		}
		if !found || t.Season > latest.Season {
			latest = t
			found = true
		}
	}
	return latest, found, nil
}

func (r *TagRepository) InsertTag(_ context.Context, t tag.FranchiseTag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tags = append(r.tags, t)
	return nil
}

func (r *TagRepository) InsertTender(_ context.Context, t tag.RFATender) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tenders = append(r.tenders, t)
	return nil
}

// PositionSalary is one row of the positional comparable table feeding tag
// pricing.
type PositionSalary struct {
	DynastyID string
	Position  string
	Season    int
	CapHit    int64
}

// CompRepository serves positional top-salary lookups from a seeded table.
// The postgres implementation reads the same table shape from
// position_salaries.
type CompRepository struct {
	mu   sync.RWMutex
	rows []PositionSalary
}

func NewCompRepository(seed []PositionSalary) *CompRepository {
	return &CompRepository{rows: append([]PositionSalary(nil), seed...)}
}

func (r *CompRepository) TopPositionCapHits(_ context.Context, dynastyID, position string, season, limit int) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var hits []int64
	for _, row := range r.rows {
		if row.DynastyID == dynastyID && row.Position == position && row.Season == season {
			hits = append(hits, row.CapHit)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i] > hits[j] })
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}
