package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gridironsim/capengine/internal/domain/captrans"
	"github.com/gridironsim/capengine/internal/platform/id"
)

// appendCapTransaction stamps identity and time onto an audit row and writes
// it. Every mutating service records exactly one row per operation.
func appendCapTransaction(ctx context.Context, repo captrans.Repository, gen id.Generator, at time.Time, t captrans.Transaction) error {
	txID, err := gen.NewID()
	if err != nil {
		return fmt.Errorf("generate transaction id: %w", err)
	}
	t.ID = txID
	t.CreatedAt = at

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validate cap transaction: %w", err)
	}
	if err := repo.Append(ctx, t); err != nil {
		return fmt.Errorf("append cap transaction: %w", err)
	}
	return nil
}

// LedgerService reads the append-only audit trail back out for review.
type LedgerService struct {
	txRepo captrans.Repository
}

func NewLedgerService(txRepo captrans.Repository) *LedgerService {
	return &LedgerService{txRepo: txRepo}
}

func (s *LedgerService) ListTeamTransactions(ctx context.Context, dynastyID, teamID string, season int) ([]captrans.Transaction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LedgerService.ListTeamTransactions")
	defer span.End()

	dynastyID = strings.TrimSpace(dynastyID)
	teamID = strings.TrimSpace(teamID)
	if dynastyID == "" || teamID == "" {
		return nil, fmt.Errorf("%w: dynasty_id and team_id are required", ErrInvalidInput)
	}
	if season <= 0 {
		return nil, fmt.Errorf("%w: season must be positive", ErrInvalidInput)
	}

	items, err := s.txRepo.ListByTeamSeason(ctx, dynastyID, teamID, season)
	if err != nil {
		return nil, fmt.Errorf("list cap transactions: %w", err)
	}
	return items, nil
}
