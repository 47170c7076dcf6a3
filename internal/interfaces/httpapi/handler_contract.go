package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gridironsim/capengine/internal/domain/contract"
	"github.com/gridironsim/capengine/internal/usecase"
)

func (h *Handler) SignContract(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SignContract")
	defer span.End()

	dynastyID := r.PathValue("dynastyID")
	var req signContractRequest
	if err := h.decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	years := make([]usecase.YearTermInput, 0, len(req.Years))
	for _, year := range req.Years {
		years = append(years, usecase.YearTermInput{
			BaseSalary:     year.BaseSalary,
			RosterBonus:    year.RosterBonus,
			WorkoutBonus:   year.WorkoutBonus,
			PerGameBonus:   year.PerGameBonus,
			LTBEIncentive:  year.LTBEIncentive,
			NLTBEIncentive: year.NLTBEIncentive,
			GuaranteedBase: year.GuaranteedBase,
		})
	}

	result, err := h.contractService.SignContract(ctx, usecase.SignContractInput{
		DynastyID:       dynastyID,
		TeamID:          req.TeamID,
		PlayerID:        req.PlayerID,
		Type:            contract.Type(req.Type),
		StartYear:       req.StartYear,
		TotalValue:      req.TotalValue,
		SigningBonus:    req.SigningBonus,
		GuaranteedTotal: req.GuaranteedTotal,
		PracticeSquad:   req.PracticeSquad,
		Years:           years,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "sign contract failed", "team_id", req.TeamID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, signContractDTO{
		Contract:        contractToDTO(ctx, result.Contract),
		Years:           yearDetailsToDTO(ctx, result.Years),
		FirstYearCapHit: result.FirstYearCapHit,
		CapSpaceBefore:  result.CapSpaceBefore,
		CapSpaceAfter:   result.CapSpaceAfter,
	})
}

func (h *Handler) GetContract(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetContract")
	defer span.End()

	dynastyID := r.PathValue("dynastyID")
	contractID := r.PathValue("contractID")
	c, details, err := h.contractService.GetContract(ctx, dynastyID, contractID)
	if err != nil {
		h.logger.WarnContext(ctx, "get contract failed", "contract_id", contractID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, contractWithYearsDTO{
		Contract: contractToDTO(ctx, c),
		Years:    yearDetailsToDTO(ctx, details),
	})
}

func (h *Handler) ListTeamContracts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamContracts")
	defer span.End()

	dynastyID := r.PathValue("dynastyID")
	teamID := r.PathValue("teamID")
	season, err := seasonFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	contracts, err := h.contractService.ListTeamContracts(ctx, dynastyID, teamID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list team contracts failed", "team_id", teamID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]contractDTO, 0, len(contracts))
	for _, c := range contracts {
		items = append(items, contractToDTO(ctx, c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RestructureContract(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RestructureContract")
	defer span.End()

	dynastyID := r.PathValue("dynastyID")
	contractID := r.PathValue("contractID")
	var req restructureRequest
	if err := h.decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.restructureService.Restructure(ctx, usecase.RestructureInput{
		DynastyID:       dynastyID,
		ContractID:      contractID,
		Season:          req.Season,
		AmountToConvert: req.AmountToConvert,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "restructure failed", "contract_id", contractID, "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, restructureDTO{
		OldContract:            contractToDTO(ctx, result.OldContract),
		NewContract:            contractToDTO(ctx, result.NewContract),
		Years:                  yearDetailsToDTO(ctx, result.Years),
		CurrentYearSavings:     result.CurrentYearSavings,
		DeadMoneyIfReleasedNow: result.DeadMoneyIfReleasedNow,
		CapSpaceBefore:         result.CapSpaceBefore,
		CapSpaceAfter:          result.CapSpaceAfter,
	})
}

func (h *Handler) ReleasePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReleasePlayer")
	defer span.End()

	dynastyID := r.PathValue("dynastyID")
	contractID := r.PathValue("contractID")
	var req releaseRequest
	if err := h.decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.releaseService.ReleasePlayer(ctx, usecase.ReleasePlayerInput{
		DynastyID:  dynastyID,
		ContractID: contractID,
		Season:     req.Season,
		JuneOne:    req.JuneOne,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "release failed", "contract_id", contractID, "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, releaseDTO{
		Contract:       contractToDTO(ctx, result.Contract),
		DeadMoney:      deadMoneyToDTO(ctx, result.DeadMoney),
		VoidedYears:    yearDetailsToDTO(ctx, result.VoidedYears),
		CapSpaceBefore: result.CapSpaceBefore,
		CapSpaceAfter:  result.CapSpaceAfter,
	})
}

type signContractRequest struct {
	TeamID          string                    `json:"teamId" validate:"required"`
	PlayerID        string                    `json:"playerId" validate:"required"`
	Type            string                    `json:"type" validate:"required"`
	StartYear       int                       `json:"startYear" validate:"required,gt=0"`
	TotalValue      int64                     `json:"totalValue" validate:"gte=0"`
	SigningBonus    int64                     `json:"signingBonus" validate:"gte=0"`
	GuaranteedTotal int64                     `json:"guaranteedTotal" validate:"gte=0"`
	PracticeSquad   bool                      `json:"practiceSquad"`
	Years           []signContractYearRequest `json:"years" validate:"required,min=1,dive"`
}

type signContractYearRequest struct {
	BaseSalary     int64 `json:"baseSalary" validate:"gte=0"`
	RosterBonus    int64 `json:"rosterBonus" validate:"gte=0"`
	WorkoutBonus   int64 `json:"workoutBonus" validate:"gte=0"`
	PerGameBonus   int64 `json:"perGameBonus" validate:"gte=0"`
	LTBEIncentive  int64 `json:"ltbeIncentive" validate:"gte=0"`
	NLTBEIncentive int64 `json:"nltbeIncentive" validate:"gte=0"`
	GuaranteedBase int64 `json:"guaranteedBase" validate:"gte=0"`
}

type restructureRequest struct {
	Season          int   `json:"season" validate:"required,gt=0"`
	AmountToConvert int64 `json:"amountToConvert" validate:"required,gt=0"`
}

type releaseRequest struct {
	Season  int  `json:"season" validate:"required,gt=0"`
	JuneOne bool `json:"juneOne"`
}

type contractDTO struct {
	ID        string `json:"id"`
	DynastyID string `json:"dynastyId"`
	PlayerID  string `json:"playerId"`
	TeamID    string `json:"teamId"`
	Type      string `json:"type"`

	SignedAtUTC string `json:"signedAtUtc"`
	StartYear   int    `json:"startYear"`
	EndYear     int    `json:"endYear"`

	TotalValue      int64 `json:"totalValue"`
	SigningBonus    int64 `json:"signingBonus"`
	GuaranteedTotal int64 `json:"guaranteedTotal"`
	PracticeSquad   bool  `json:"practiceSquad"`

	IsVoided       bool   `json:"isVoided"`
	VoidedAtUTC    string `json:"voidedAtUtc,omitempty"`
	SupersededByID string `json:"supersededById,omitempty"`
}

type yearDetailDTO struct {
	ContractID string `json:"contractId"`
	Season     int    `json:"season"`

	BaseSalary     int64 `json:"baseSalary"`
	RosterBonus    int64 `json:"rosterBonus"`
	WorkoutBonus   int64 `json:"workoutBonus"`
	OptionBonus    int64 `json:"optionBonus"`
	PerGameBonus   int64 `json:"perGameBonus"`
	LTBEIncentive  int64 `json:"ltbeIncentive"`
	NLTBEIncentive int64 `json:"nltbeIncentive"`

	SigningBonusProration int64 `json:"signingBonusProration"`
	OptionBonusProration  int64 `json:"optionBonusProration"`
	GuaranteedBase        int64 `json:"guaranteedBase"`

	CapHit   int64 `json:"capHit"`
	CashPaid int64 `json:"cashPaid"`
	IsVoided bool  `json:"isVoided"`
}

type contractWithYearsDTO struct {
	Contract contractDTO     `json:"contract"`
	Years    []yearDetailDTO `json:"years"`
}

type signContractDTO struct {
	Contract        contractDTO     `json:"contract"`
	Years           []yearDetailDTO `json:"years"`
	FirstYearCapHit int64           `json:"firstYearCapHit"`
	CapSpaceBefore  int64           `json:"capSpaceBefore"`
	CapSpaceAfter   int64           `json:"capSpaceAfter"`
}

type restructureDTO struct {
	OldContract            contractDTO     `json:"oldContract"`
	NewContract            contractDTO     `json:"newContract"`
	Years                  []yearDetailDTO `json:"years"`
	CurrentYearSavings     int64           `json:"currentYearSavings"`
	DeadMoneyIfReleasedNow int64           `json:"deadMoneyIfReleasedNow"`
	CapSpaceBefore         int64           `json:"capSpaceBefore"`
	CapSpaceAfter          int64           `json:"capSpaceAfter"`
}

type releaseDTO struct {
	Contract       contractDTO     `json:"contract"`
	DeadMoney      deadMoneyDTO    `json:"deadMoney"`
	VoidedYears    []yearDetailDTO `json:"voidedYears"`
	CapSpaceBefore int64           `json:"capSpaceBefore"`
	CapSpaceAfter  int64           `json:"capSpaceAfter"`
}

func contractToDTO(ctx context.Context, v contract.Contract) contractDTO {
	ctx, span := startSpan(ctx, "httpapi.contractToDTO")
	defer span.End()

	voidedAt := ""
	if v.VoidedAt != nil {
		voidedAt = v.VoidedAt.UTC().Format(time.RFC3339)
	}

	return contractDTO{
		ID:              v.ID,
		DynastyID:       v.DynastyID,
		PlayerID:        v.PlayerID,
		TeamID:          v.TeamID,
		Type:            string(v.Type),
		SignedAtUTC:     v.SignedAt.UTC().Format(time.RFC3339),
		StartYear:       v.StartYear,
		EndYear:         v.EndYear,
		TotalValue:      v.TotalValue,
		SigningBonus:    v.SigningBonus,
		GuaranteedTotal: v.GuaranteedTotal,
		PracticeSquad:   v.PracticeSquad,
		IsVoided:        v.IsVoided,
		VoidedAtUTC:     voidedAt,
		SupersededByID:  v.SupersededByID,
	}
}

func yearDetailsToDTO(ctx context.Context, details []contract.YearDetail) []yearDetailDTO {
	ctx, span := startSpan(ctx, "httpapi.yearDetailsToDTO")
	defer span.End()

	items := make([]yearDetailDTO, 0, len(details))
	for _, d := range details {
		hit, err := contract.CapHit(d)
		if err != nil {
			// Rows were validated on write, so this only trips on corrupt data.
			hit = 0
		}
		items = append(items, yearDetailDTO{
			ContractID:            d.ContractID,
			Season:                d.Season,
			BaseSalary:            d.BaseSalary,
			RosterBonus:           d.RosterBonus,
			WorkoutBonus:          d.WorkoutBonus,
			OptionBonus:           d.OptionBonus,
			PerGameBonus:          d.PerGameBonus,
			LTBEIncentive:         d.LTBEIncentive,
			NLTBEIncentive:        d.NLTBEIncentive,
			SigningBonusProration: d.SigningBonusProration,
			OptionBonusProration:  d.OptionBonusProration,
			GuaranteedBase:        d.GuaranteedBase,
			CapHit:                hit,
			CashPaid:              d.CashPaid,
			IsVoided:              d.IsVoided,
		})
	}
	return items
}
