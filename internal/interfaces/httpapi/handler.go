package httpapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/gridironsim/capengine/internal/usecase"
)

type Handler struct {
	capSheetService    *usecase.CapSheetService
	contractService    *usecase.ContractService
	restructureService *usecase.RestructureService
	releaseService     *usecase.ReleaseService
	tagService         *usecase.TagService
	complianceService  *usecase.ComplianceService
	ledgerService      *usecase.LedgerService
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	capSheetService *usecase.CapSheetService,
	contractService *usecase.ContractService,
	restructureService *usecase.RestructureService,
	releaseService *usecase.ReleaseService,
	tagService *usecase.TagService,
	complianceService *usecase.ComplianceService,
	ledgerService *usecase.LedgerService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		capSheetService:    capSheetService,
		contractService:    contractService,
		restructureService: restructureService,
		releaseService:     releaseService,
		tagService:         tagService,
		complianceService:  complianceService,
		ledgerService:      ledgerService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeBody(ctx context.Context, body io.Reader, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// seasonFromQuery parses the mandatory season query parameter.
func seasonFromQuery(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("season"))
	if raw == "" {
		return 0, fmt.Errorf("%w: season query parameter is required", usecase.ErrInvalidInput)
	}
	season, err := strconv.Atoi(raw)
	if err != nil || season <= 0 {
		return 0, fmt.Errorf("%w: season must be a positive integer", usecase.ErrInvalidInput)
	}
	return season, nil
}
