package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gridironsim/capengine/internal/domain/captrans"
	"github.com/gridironsim/capengine/internal/domain/compliance"
	"github.com/gridironsim/capengine/internal/domain/deadmoney"
	"github.com/gridironsim/capengine/internal/usecase"
)

func (h *Handler) ListTeamTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamTransactions")
	defer span.End()

	dynastyID := r.PathValue("dynastyID")
	teamID := r.PathValue("teamID")
	season, err := seasonFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	transactions, err := h.ledgerService.ListTeamTransactions(ctx, dynastyID, teamID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list transactions failed", "team_id", teamID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]transactionDTO, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, transactionToDTO(ctx, t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RunLeagueYearAudit(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunLeagueYearAudit")
	defer span.End()

	dynastyID := r.PathValue("dynastyID")
	var req leagueAuditRequest
	if err := h.decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.complianceService.LeagueYearAudit(ctx, usecase.LeagueAuditInput{
		DynastyID:  dynastyID,
		TeamIDs:    req.TeamIDs,
		Season:     req.Season,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "league year audit failed", "dynasty_id", dynastyID, "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	sheets := make([]capSheetDTO, 0, len(result.Sheets))
	for _, sheet := range result.Sheets {
		sheets = append(sheets, sheetToDTO(ctx, sheet))
	}
	findings := make([]findingDTO, 0, len(result.Findings))
	for _, finding := range result.Findings {
		findings = append(findings, findingToDTO(ctx, finding))
	}

	writeSuccess(ctx, w, http.StatusOK, leagueAuditDTO{
		Season:      result.Season,
		WorkerCount: result.WorkerCount,
		Sheets:      sheets,
		Findings:    findings,
	})
}

type leagueAuditRequest struct {
	TeamIDs    []string `json:"teamIds" validate:"required,min=1,dive,required"`
	Season     int      `json:"season" validate:"required,gt=0"`
	MaxWorkers int      `json:"maxWorkers" validate:"gte=0"`
}

type transactionDTO struct {
	ID         string `json:"id"`
	DynastyID  string `json:"dynastyId"`
	TeamID     string `json:"teamId"`
	PlayerID   string `json:"playerId,omitempty"`
	ContractID string `json:"contractId,omitempty"`
	Kind       string `json:"kind"`
	Season     int    `json:"season"`

	Amount         int64 `json:"amount"`
	CapSpaceBefore int64 `json:"capSpaceBefore"`
	CapSpaceAfter  int64 `json:"capSpaceAfter"`

	Note         string `json:"note,omitempty"`
	CreatedAtUTC string `json:"createdAtUtc"`
}

type findingDTO struct {
	Kind      string `json:"kind"`
	DynastyID string `json:"dynastyId"`
	TeamID    string `json:"teamId"`
	Season    int    `json:"season"`
	Amount    int64  `json:"amount"`
	Detail    string `json:"detail"`
}

type leagueAuditDTO struct {
	Season      int           `json:"season"`
	WorkerCount int           `json:"workerCount"`
	Sheets      []capSheetDTO `json:"sheets"`
	Findings    []findingDTO  `json:"findings"`
}

type deadMoneyDTO struct {
	ID         string `json:"id"`
	ContractID string `json:"contractId"`
	TeamID     string `json:"teamId"`
	PlayerID   string `json:"playerId"`

	ReleaseSeason     int  `json:"releaseSeason"`
	JuneOneDesignated bool `json:"juneOneDesignated"`

	CurrentYearCharge int64 `json:"currentYearCharge"`
	NextYearCharge    int64 `json:"nextYearCharge"`
	Total             int64 `json:"total"`

	RemainingProration   int64 `json:"remainingProration"`
	AcceleratedGuarantee int64 `json:"acceleratedGuarantee"`

	CreatedAtUTC string `json:"createdAtUtc"`
}

func transactionToDTO(ctx context.Context, v captrans.Transaction) transactionDTO {
	ctx, span := startSpan(ctx, "httpapi.transactionToDTO")
	defer span.End()

	return transactionDTO{
		ID:             v.ID,
		DynastyID:      v.DynastyID,
		TeamID:         v.TeamID,
		PlayerID:       v.PlayerID,
		ContractID:     v.ContractID,
		Kind:           string(v.Kind),
		Season:         v.Season,
		Amount:         v.Amount,
		CapSpaceBefore: v.CapSpaceBefore,
		CapSpaceAfter:  v.CapSpaceAfter,
		Note:           v.Note,
		CreatedAtUTC:   v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func findingToDTO(ctx context.Context, v compliance.Finding) findingDTO {
	ctx, span := startSpan(ctx, "httpapi.findingToDTO")
	defer span.End()

	return findingDTO{
		Kind:      string(v.Kind),
		DynastyID: v.DynastyID,
		TeamID:    v.TeamID,
		Season:    v.Season,
		Amount:    v.Amount,
		Detail:    v.Detail,
	}
}

func deadMoneyToDTO(ctx context.Context, v deadmoney.Entry) deadMoneyDTO {
	ctx, span := startSpan(ctx, "httpapi.deadMoneyToDTO")
	defer span.End()

	return deadMoneyDTO{
		ID:                   v.ID,
		ContractID:           v.ContractID,
		TeamID:               v.TeamID,
		PlayerID:             v.PlayerID,
		ReleaseSeason:        v.ReleaseSeason,
		JuneOneDesignated:    v.JuneOneDesignated,
		CurrentYearCharge:    v.CurrentYearCharge,
		NextYearCharge:       v.NextYearCharge,
		Total:                v.Total(),
		RemainingProration:   v.RemainingProration,
		AcceleratedGuarantee: v.AcceleratedGuarantee,
		CreatedAtUTC:         v.CreatedAt.UTC().Format(time.RFC3339),
	}
}
