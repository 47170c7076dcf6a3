package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gridironsim/capengine/internal/domain/capspace"
)

// TeamCarryover is unused cap space a team rolled into a season.
type TeamCarryover struct {
	DynastyID string
	TeamID    string
	Season    int
	Amount    int64
}

type HistoryRepository struct {
	mu         sync.RWMutex
	caps       []capspace.SeasonCap
	carryovers []TeamCarryover
}

func NewHistoryRepository(caps []capspace.SeasonCap, carryovers []TeamCarryover) *HistoryRepository {
	return &HistoryRepository{
		caps:       append([]capspace.SeasonCap(nil), caps...),
		carryovers: append([]TeamCarryover(nil), carryovers...),
	}
}

func (r *HistoryRepository) CapLimit(_ context.Context, dynastyID string, season int) (int64, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.caps {
		if c.DynastyID == dynastyID && c.Season == season {
			return c.CapLimit, true, nil
		}
	}
	return 0, false, nil
}

func (r *HistoryRepository) Carryover(_ context.Context, dynastyID, teamID string, season int) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.carryovers {
		if c.DynastyID == dynastyID && c.TeamID == teamID && c.Season == season {
			return c.Amount, nil
		}
	}
	return 0, nil
}

func (r *HistoryRepository) ListSeasonCaps(_ context.Context, dynastyID string, fromSeason, toSeason int) ([]capspace.SeasonCap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []capspace.SeasonCap
	for _, c := range r.caps {
		if c.DynastyID == dynastyID && c.Season >= fromSeason && c.Season <= toSeason {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out, nil
}
