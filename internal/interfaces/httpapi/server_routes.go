package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerCapRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/dynasties/{dynastyID}/teams/{teamID}/cap-sheet", handler.GetTeamCapSheet)
	mux.HandleFunc("GET /v1/dynasties/{dynastyID}/cap-sheets", handler.ListLeagueCapSheets)

	mux.HandleFunc("POST /v1/dynasties/{dynastyID}/contracts", handler.SignContract)
	mux.HandleFunc("GET /v1/dynasties/{dynastyID}/contracts/{contractID}", handler.GetContract)
	mux.HandleFunc("GET /v1/dynasties/{dynastyID}/teams/{teamID}/contracts", handler.ListTeamContracts)
	mux.HandleFunc("POST /v1/dynasties/{dynastyID}/contracts/{contractID}/restructure", handler.RestructureContract)
	mux.HandleFunc("POST /v1/dynasties/{dynastyID}/contracts/{contractID}/release", handler.ReleasePlayer)

	mux.HandleFunc("POST /v1/dynasties/{dynastyID}/tags", handler.ApplyTag)
	mux.HandleFunc("POST /v1/dynasties/{dynastyID}/tenders", handler.TenderPlayer)

	mux.HandleFunc("GET /v1/dynasties/{dynastyID}/teams/{teamID}/transactions", handler.ListTeamTransactions)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalAdminToken string) {
	mux.Handle("POST /v1/dynasties/{dynastyID}/internal/audit/league-year",
		RequireInternalAdminToken(internalAdminToken, http.HandlerFunc(handler.RunLeagueYearAudit)))
}
