package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gridironsim/capengine/internal/domain/contract"
	"github.com/gridironsim/capengine/internal/domain/tag"
	"github.com/gridironsim/capengine/internal/usecase"
)

func (h *Handler) ApplyTag(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyTag")
	defer span.End()

	dynastyID := r.PathValue("dynastyID")
	var req applyTagRequest
	if err := h.decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.tagService.ApplyTag(ctx, usecase.ApplyTagInput{
		DynastyID: dynastyID,
		TeamID:    req.TeamID,
		PlayerID:  req.PlayerID,
		Position:  req.Position,
		Season:    req.Season,
		Kind:      tag.Kind(req.Kind),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "apply tag failed", "team_id", req.TeamID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, applyTagDTO{
		Tag:            tagToDTO(ctx, result.Tag),
		Contract:       contractToDTO(ctx, result.Contract),
		Year:           yearDetailsToDTO(ctx, []contract.YearDetail{result.Year})[0],
		CapSpaceBefore: result.CapSpaceBefore,
		CapSpaceAfter:  result.CapSpaceAfter,
	})
}

func (h *Handler) TenderPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TenderPlayer")
	defer span.End()

	dynastyID := r.PathValue("dynastyID")
	var req tenderRequest
	if err := h.decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	tender, err := h.tagService.TenderPlayer(ctx, usecase.TenderPlayerInput{
		DynastyID: dynastyID,
		TeamID:    req.TeamID,
		PlayerID:  req.PlayerID,
		Season:    req.Season,
		Level:     tag.TenderLevel(req.Level),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "tender failed", "team_id", req.TeamID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, tenderToDTO(ctx, tender))
}

type applyTagRequest struct {
	TeamID   string `json:"teamId" validate:"required"`
	PlayerID string `json:"playerId" validate:"required"`
	Position string `json:"position" validate:"required"`
	Season   int    `json:"season" validate:"required,gt=0"`
	Kind     string `json:"kind" validate:"required,oneof=FRANCHISE TRANSITION"`
}

type tenderRequest struct {
	TeamID   string `json:"teamId" validate:"required"`
	PlayerID string `json:"playerId" validate:"required"`
	Season   int    `json:"season" validate:"required,gt=0"`
	Level    string `json:"level" validate:"required,oneof=FIRST_ROUND SECOND_ROUND ORIGINAL_ROUND RIGHT_OF_FIRST_REFUSAL"`
}

type tagDTO struct {
	ID               string `json:"id"`
	DynastyID        string `json:"dynastyId"`
	TeamID           string `json:"teamId"`
	PlayerID         string `json:"playerId"`
	Season           int    `json:"season"`
	Kind             string `json:"kind"`
	ConsecutiveCount int    `json:"consecutiveCount"`
	Salary           int64  `json:"salary"`
	CreatedAtUTC     string `json:"createdAtUtc"`
}

type tenderDTO struct {
	ID           string `json:"id"`
	DynastyID    string `json:"dynastyId"`
	TeamID       string `json:"teamId"`
	PlayerID     string `json:"playerId"`
	Season       int    `json:"season"`
	Level        string `json:"level"`
	Salary       int64  `json:"salary"`
	CreatedAtUTC string `json:"createdAtUtc"`
}

type applyTagDTO struct {
	Tag            tagDTO        `json:"tag"`
	Contract       contractDTO   `json:"contract"`
	Year           yearDetailDTO `json:"year"`
	CapSpaceBefore int64         `json:"capSpaceBefore"`
	CapSpaceAfter  int64         `json:"capSpaceAfter"`
}

func tagToDTO(ctx context.Context, v tag.FranchiseTag) tagDTO {
	ctx, span := startSpan(ctx, "httpapi.tagToDTO")
	defer span.End()

	return tagDTO{
		ID:               v.ID,
		DynastyID:        v.DynastyID,
		TeamID:           v.TeamID,
		PlayerID:         v.PlayerID,
		Season:           v.Season,
		Kind:             string(v.Kind),
		ConsecutiveCount: v.ConsecutiveCount,
		Salary:           v.Salary,
		CreatedAtUTC:     v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func tenderToDTO(ctx context.Context, v tag.RFATender) tenderDTO {
	ctx, span := startSpan(ctx, "httpapi.tenderToDTO")
	defer span.End()

	return tenderDTO{
		ID:           v.ID,
		DynastyID:    v.DynastyID,
		TeamID:       v.TeamID,
		PlayerID:     v.PlayerID,
		Season:       v.Season,
		Level:        string(v.Level),
		Salary:       v.Salary,
		CreatedAtUTC: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}
