package memory

import (
	"context"
	"sync"

	"github.com/gridironsim/capengine/internal/domain/deadmoney"
)

type DeadMoneyRepository struct {
	mu    sync.RWMutex
	items []deadmoney.Entry
}

func NewDeadMoneyRepository(seed []deadmoney.Entry) *DeadMoneyRepository {
	return &DeadMoneyRepository{items: append([]deadmoney.Entry(nil), seed...)}
}

func (r *DeadMoneyRepository) ListChargedToSeason(_ context.Context, dynastyID, teamID string, season int) ([]deadmoney.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []deadmoney.Entry
	for _, e := range r.items {
		if e.DynastyID != dynastyID || e.TeamID != teamID {
			continue
		}
		if e.ChargeForSeason(season) == 0 {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *DeadMoneyRepository) CountJuneOneByTeamSeason(_ context.Context, dynastyID, teamID string, season int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, e := range r.items {
		if e.DynastyID == dynastyID && e.TeamID == teamID && e.ReleaseSeason == season && e.JuneOneDesignated {
			count++
		}
	}
	return count, nil
}

func (r *DeadMoneyRepository) Insert(_ context.Context, entry deadmoney.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, entry)
	return nil
}
