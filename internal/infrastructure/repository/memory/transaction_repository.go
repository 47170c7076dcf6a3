package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gridironsim/capengine/internal/domain/captrans"
)

type TransactionRepository struct {
	mu    sync.RWMutex
	items []captrans.Transaction
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

func (r *TransactionRepository) Append(_ context.Context, t captrans.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, t)
	return nil
}

func (r *TransactionRepository) ListByTeamSeason(_ context.Context, dynastyID, teamID string, season int) ([]captrans.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []captrans.Transaction
	for _, t := range r.items {
		if t.DynastyID == dynastyID && t.TeamID == teamID && t.Season == season {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
