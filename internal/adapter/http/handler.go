package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adspend/internal/core/port"
)

// Handler is the inbound HTTP adapter. Spend events and reporting go to the
// SpendUseCase, provisioning to the CatalogUseCase and manual job runs to
// the JobRunner.
type Handler struct {
	spend   port.SpendUseCase
	catalog port.CatalogUseCase
	jobs    port.JobRunner
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(spend port.SpendUseCase, catalog port.CatalogUseCase, jobs port.JobRunner, logger *slog.Logger) *Handler {
	h := &Handler{spend: spend, catalog: catalog, jobs: jobs, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ads/{adID}/events/{kind}", h.handleAdEvent)
		r.Get("/brands/{brandID}/spend", h.handleBrandSpend)
		r.Get("/brands/{brandID}/transactions", h.handleBrandTransactions)

		r.Get("/jobs", h.handleJobStatus)
		r.Post("/jobs/{job}", h.handleRunJob)

		r.Post("/brands", h.handleCreateBrand)
		r.Put("/brands/{brandID}/budget", h.handleUpdateBudget)
		r.Delete("/brands/{brandID}", h.handleDeactivateBrand)
		r.Post("/brands/{brandID}/payments", h.handleRecordPayment)

		r.Post("/campaigns", h.handleCreateCampaign)
		r.Post("/campaigns/{campaignID}/status", h.handleCampaignStatus)
		r.Put("/campaigns/{campaignID}/daypart", h.handleCampaignDaypart)
		r.Delete("/campaigns/{campaignID}", h.handleDeactivateCampaign)

		r.Post("/ad-sets", h.handleCreateAdSet)
		r.Delete("/ad-sets/{adSetID}", h.handleDeactivateAdSet)
		r.Post("/ads", h.handleCreateAd)
		r.Delete("/ads/{adID}", h.handleDeactivateAd)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
