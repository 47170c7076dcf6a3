// Package app composes the cap engine: repositories (seeded in-memory or
// postgres, picked by DB_URL), the usecase services, and the HTTP router.
package app

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/gridironsim/capengine/internal/config"
	"github.com/gridironsim/capengine/internal/domain/capspace"
	"github.com/gridironsim/capengine/internal/domain/captrans"
	"github.com/gridironsim/capengine/internal/domain/contract"
	"github.com/gridironsim/capengine/internal/domain/deadmoney"
	"github.com/gridironsim/capengine/internal/domain/rulebook"
	"github.com/gridironsim/capengine/internal/domain/tag"
	"github.com/gridironsim/capengine/internal/infrastructure/repository/memory"
	"github.com/gridironsim/capengine/internal/infrastructure/repository/postgres"
	"github.com/gridironsim/capengine/internal/interfaces/httpapi"
	"github.com/gridironsim/capengine/internal/platform/cache"
	idgen "github.com/gridironsim/capengine/internal/platform/id"
	"github.com/gridironsim/capengine/internal/usecase"
)

type repositories struct {
	contracts contract.Repository
	details   contract.YearDetailRepository
	dead      deadmoney.Repository
	history   capspace.HistoryRepository
	tags      tag.Repository
	comps     tag.CompRepository
	txs       captrans.Repository
}

// NewHTTPServer wires the full stack. The returned cleanup releases the
// database pool when postgres is in play and is a no-op otherwise.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = slog.Default()
	}

	repos, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	rules := rulebook.Default()
	idGenerator := idgen.NewRandomGenerator()

	var sheetCache *cache.Store
	if cfg.CacheEnabled {
		sheetCache = cache.NewStore(cfg.CacheTTL)
	}

	capSheets := usecase.NewCapSheetService(
		repos.contracts,
		repos.details,
		repos.dead,
		repos.history,
		rules,
		sheetCache,
		logger,
	)

	handler := httpapi.NewHandler(
		capSheets,
		usecase.NewContractService(repos.contracts, repos.details, repos.txs, capSheets, idGenerator, rules, logger),
		usecase.NewRestructureService(repos.contracts, repos.details, repos.txs, capSheets, idGenerator, rules, logger),
		usecase.NewReleaseService(repos.contracts, repos.details, repos.dead, repos.txs, capSheets, idGenerator, rules, logger),
		usecase.NewTagService(repos.tags, repos.comps, repos.contracts, repos.details, repos.txs, capSheets, idGenerator, rules, logger),
		usecase.NewComplianceService(repos.details, repos.history, capSheets, rules, logger),
		usecase.NewLedgerService(repos.txs),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalAdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, crerr.New("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *slog.Logger) (repositories, func(), error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("repositories ready", "store", "memory", "reason", "DB_URL empty")
		return repositories{
			contracts: memory.NewContractRepository(memory.SeedContracts()),
			details:   memory.NewYearDetailRepository(memory.SeedYearDetails()),
			dead:      memory.NewDeadMoneyRepository(nil),
			history:   memory.NewHistoryRepository(memory.SeedSeasonCaps(), memory.SeedCarryovers()),
			tags:      memory.NewTagRepository(),
			comps:     memory.NewCompRepository(memory.SeedPositionSalaries()),
			txs:       memory.NewTransactionRepository(),
		}, func() {}, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return repositories{}, nil, err
	}
	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		_ = db.Close()
		return repositories{}, nil, crerr.Wrap(err, "bootstrap seed")
	}

	logger.Info("repositories ready", "store", "postgres", "db_name", dbNameFromURL(cfg.DBURL))
	return repositories{
		contracts: postgres.NewContractRepository(db),
		details:   postgres.NewYearDetailRepository(db),
		dead:      postgres.NewDeadMoneyRepository(db),
		history:   postgres.NewHistoryRepository(db),
		tags:      postgres.NewTagRepository(db),
		comps:     postgres.NewCompRepository(db),
		txs:       postgres.NewTransactionRepository(db),
	}, func() { _ = db.Close() }, nil
}
