package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gridironsim/capengine/internal/domain/capspace"
)

func (h *Handler) GetTeamCapSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamCapSheet")
	defer span.End()

	dynastyID := r.PathValue("dynastyID")
	teamID := r.PathValue("teamID")
	season, err := seasonFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	sheet, err := h.capSheetService.TeamSheet(ctx, dynastyID, teamID, season, rosterModeFromQuery(r))
	if err != nil {
		h.logger.WarnContext(ctx, "get cap sheet failed", "team_id", teamID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sheetToDTO(ctx, sheet))
}

func (h *Handler) ListLeagueCapSheets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueCapSheets")
	defer span.End()

	dynastyID := r.PathValue("dynastyID")
	season, err := seasonFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamIDs := splitCSV(r.URL.Query().Get("team_ids"))
	sheets, err := h.capSheetService.LeagueSheets(ctx, dynastyID, teamIDs, season, rosterModeFromQuery(r))
	if err != nil {
		h.logger.WarnContext(ctx, "list league cap sheets failed", "dynasty_id", dynastyID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]capSheetDTO, 0, len(sheets))
	for _, sheet := range sheets {
		items = append(items, sheetToDTO(ctx, sheet))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func rosterModeFromQuery(r *http.Request) capspace.RosterMode {
	raw := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("mode")))
	if raw == "" {
		return capspace.ModeTop51
	}
	return capspace.RosterMode(raw)
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

type capSheetDTO struct {
	DynastyID string `json:"dynastyId"`
	TeamID    string `json:"teamId"`
	Season    int    `json:"season"`
	Mode      string `json:"mode"`

	CapLimit    int64 `json:"capLimit"`
	Carryover   int64 `json:"carryover"`
	AdjustedCap int64 `json:"adjustedCap"`

	ActiveContractsTotal int64 `json:"activeContractsTotal"`
	DeadMoneyTotal       int64 `json:"deadMoneyTotal"`
	LTBEIncentivesTotal  int64 `json:"ltbeIncentivesTotal"`
	PracticeSquadTotal   int64 `json:"practiceSquadTotal"`
	CommittedTotal       int64 `json:"committedTotal"`

	CapSpaceAvailable int64 `json:"capSpaceAvailable"`
	CountedContracts  int   `json:"countedContracts"`

	ComputedAtUTC string `json:"computedAtUtc"`
}

func sheetToDTO(ctx context.Context, v capspace.Sheet) capSheetDTO {
	ctx, span := startSpan(ctx, "httpapi.sheetToDTO")
	defer span.End()

	return capSheetDTO{
		DynastyID:            v.DynastyID,
		TeamID:               v.TeamID,
		Season:               v.Season,
		Mode:                 string(v.Mode),
		CapLimit:             v.CapLimit,
		Carryover:            v.Carryover,
		AdjustedCap:          v.AdjustedCap(),
		ActiveContractsTotal: v.ActiveContractsTotal,
		DeadMoneyTotal:       v.DeadMoneyTotal,
		LTBEIncentivesTotal:  v.LTBEIncentivesTotal,
		PracticeSquadTotal:   v.PracticeSquadTotal,
		CommittedTotal:       v.CommittedTotal(),
		CapSpaceAvailable:    v.CapSpaceAvailable,
		CountedContracts:     v.CountedContracts,
		ComputedAtUTC:        v.ComputedAt.UTC().Format(time.RFC3339),
	}
}
