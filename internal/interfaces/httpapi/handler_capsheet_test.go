package httpapi

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/gridironsim/capengine/internal/domain/rulebook"
	"github.com/gridironsim/capengine/internal/infrastructure/repository/memory"
	"github.com/gridironsim/capengine/internal/platform/cache"
	"github.com/gridironsim/capengine/internal/usecase"
)

const testAdminToken = "it-admin-token"

type seqIDGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("api-id-%03d", g.n), nil
}

// newTestRouter wires the whole stack over seeded in-memory repositories, the
// same composition the app uses minus persistence.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rules := rulebook.Default()
	idGen := &seqIDGenerator{}

	contracts := memory.NewContractRepository(memory.SeedContracts())
	details := memory.NewYearDetailRepository(memory.SeedYearDetails())
	dead := memory.NewDeadMoneyRepository(nil)
	history := memory.NewHistoryRepository(memory.SeedSeasonCaps(), memory.SeedCarryovers())
	tags := memory.NewTagRepository()
	comps := memory.NewCompRepository(memory.SeedPositionSalaries())
	txs := memory.NewTransactionRepository()

	capSheets := usecase.NewCapSheetService(contracts, details, dead, history, rules, cache.NewStore(time.Minute), logger)
	handler := NewHandler(
		capSheets,
		usecase.NewContractService(contracts, details, txs, capSheets, idGen, rules, logger),
		usecase.NewRestructureService(contracts, details, txs, capSheets, idGen, rules, logger),
		usecase.NewReleaseService(contracts, details, dead, txs, capSheets, idGen, rules, logger),
		usecase.NewTagService(tags, comps, contracts, details, txs, capSheets, idGen, rules, logger),
		usecase.NewComplianceService(details, history, capSheets, rules, logger),
		usecase.NewLedgerService(txs),
		logger,
	)

	return NewRouter(handler, logger, false, nil, testAdminToken)
}

func decodeEnvelope(t *testing.T, body []byte) map[string]any {
	t.Helper()

	var envelope map[string]any
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return envelope
}

func TestGetTeamCapSheet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet,
		"/v1/dynasties/"+memory.DynastyIDGridiron+"/teams/"+memory.TeamIDIronhawks+"/cap-sheet?season=2026", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data, ok := decodeEnvelope(t, rec.Body.Bytes())["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object in response")
	}
	if got, _ := data["capSpaceAvailable"].(float64); int64(got) != 259_850_000_00 {
		t.Fatalf("expected 259.85M cap space, got %v", data["capSpaceAvailable"])
	}
	if got, _ := data["mode"].(string); got != "TOP51" {
		t.Fatalf("expected TOP51 default mode, got %v", data["mode"])
	}
}

func TestGetTeamCapSheet_MissingSeason(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet,
		"/v1/dynasties/"+memory.DynastyIDGridiron+"/teams/"+memory.TeamIDIronhawks+"/cap-sheet", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestListLeagueCapSheets(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet,
		"/v1/dynasties/"+memory.DynastyIDGridiron+"/cap-sheets?season=2026&team_ids="+
			memory.TeamIDMonarchs+","+memory.TeamIDIronhawks, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data, ok := decodeEnvelope(t, rec.Body.Bytes())["data"].([]any)
	if !ok || len(data) != 2 {
		t.Fatalf("expected 2 sheets, got %v", data)
	}
	first, _ := data[0].(map[string]any)
	if got, _ := first["teamId"].(string); got != memory.TeamIDIronhawks {
		t.Fatalf("expected sheets sorted by team id, first was %v", first["teamId"])
	}
}

func TestRunLeagueYearAudit_RequiresAdminToken(t *testing.T) {
	router := newTestRouter(t)
	payload := `{"teamIds":["` + memory.TeamIDIronhawks + `","` + memory.TeamIDMonarchs + `"],"season":2026}`

	req := httptest.NewRequest(http.MethodPost,
		"/v1/dynasties/"+memory.DynastyIDGridiron+"/internal/audit/league-year", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost,
		"/v1/dynasties/"+memory.DynastyIDGridiron+"/internal/audit/league-year", strings.NewReader(payload))
	req.Header.Set("X-Internal-Admin-Token", testAdminToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 with token, got %d: %s", rec.Code, rec.Body.String())
	}

	data, ok := decodeEnvelope(t, rec.Body.Bytes())["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object in response")
	}
	sheets, _ := data["sheets"].([]any)
	if len(sheets) != 2 {
		t.Fatalf("expected 2 sheets in audit, got %d", len(sheets))
	}
}
