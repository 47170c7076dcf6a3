package memory

import (
	"context"
	"sync"

	"github.com/gridironsim/capengine/internal/domain/contract"
)

type ContractRepository struct {
	mu    sync.RWMutex
	items map[string]contract.Contract
}

func NewContractRepository(seed []contract.Contract) *ContractRepository {
	items := make(map[string]contract.Contract, len(seed))
	for _, c := range seed {
		items[contractKey(c.DynastyID, c.ID)] = c
	}
	return &ContractRepository{items: items}
}

func (r *ContractRepository) GetByID(_ context.Context, dynastyID, contractID string) (contract.Contract, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[contractKey(dynastyID, contractID)]
	if !ok {
		return contract.Contract{}, false, nil
	}
	return c, true, nil
}

func (r *ContractRepository) ListActiveByTeam(_ context.Context, dynastyID, teamID string, season int) ([]contract.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []contract.Contract
	for _, c := range r.items {
		if c.DynastyID != dynastyID || c.TeamID != teamID {
			continue
		}
		if c.IsVoided || !c.CoversSeason(season) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *ContractRepository) ListByPlayer(_ context.Context, dynastyID, playerID string) ([]contract.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []contract.Contract
	for _, c := range r.items {
		if c.DynastyID == dynastyID && c.PlayerID == playerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *ContractRepository) Upsert(_ context.Context, c contract.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[contractKey(c.DynastyID, c.ID)] = c
	return nil
}

func contractKey(dynastyID, contractID string) string {
	return dynastyID + "::" + contractID
}

type YearDetailRepository struct {
	mu    sync.RWMutex
	items map[string][]contract.YearDetail
}

func NewYearDetailRepository(seed []contract.YearDetail) *YearDetailRepository {
	repo := &YearDetailRepository{items: make(map[string][]contract.YearDetail)}
	for _, d := range seed {
		key := contractKey(d.DynastyID, d.ContractID)
		repo.items[key] = append(repo.items[key], d)
	}
	return repo
}

func (r *YearDetailRepository) ListByContract(_ context.Context, dynastyID, contractID string) ([]contract.YearDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneDetails(r.items[contractKey(dynastyID, contractID)]), nil
}

func (r *YearDetailRepository) ListActiveByTeamSeason(_ context.Context, dynastyID, teamID string, season int) ([]contract.YearDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []contract.YearDetail
	for _, details := range r.items {
		for _, d := range details {
			if d.DynastyID != dynastyID || d.TeamID != teamID {
				continue
			}
			if d.Season != season || d.IsVoided {
				continue
			}
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *YearDetailRepository) ListByTeamSeasonRange(_ context.Context, dynastyID, teamID string, fromSeason, toSeason int) ([]contract.YearDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []contract.YearDetail
	for _, details := range r.items {
		for _, d := range details {
			if d.DynastyID != dynastyID || d.TeamID != teamID {
				continue
			}
			if d.Season < fromSeason || d.Season > toSeason {
				continue
			}
			out = append(out, d)
		}
	}
	return out, nil
}

// UpsertMany replaces rows keyed by (contract, season) and appends the rest.
func (r *YearDetailRepository) UpsertMany(_ context.Context, details []contract.YearDetail) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range details {
		key := contractKey(d.DynastyID, d.ContractID)
		existing := r.items[key]
		replaced := false
		for i := range existing {
			if existing[i].Season == d.Season {
				existing[i] = d
				replaced = true
				break
			}
		}
		if !replaced {
			existing = append(existing, d)
		}
		r.items[key] = existing
	}
	return nil
}

func cloneDetails(details []contract.YearDetail) []contract.YearDetail {
	return append([]contract.YearDetail(nil), details...)
}
