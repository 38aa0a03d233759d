package httpadapter

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
)

type createBrandRequest struct {
	Name          string          `json:"name"`
	DailyBudget   decimal.Decimal `json:"daily_budget"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	Timezone      string          `json:"timezone"`
	OwnerID       uuid.UUID       `json:"owner_id"`
}

type updateBudgetRequest struct {
	DailyBudget   decimal.Decimal `json:"daily_budget"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
}

type paymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type createCampaignRequest struct {
	BrandID      uuid.UUID         `json:"brand_id"`
	Name         string            `json:"name"`
	Status       string            `json:"status,omitempty"`
	AllowedStart *domain.TimeOfDay `json:"allowed_start,omitempty"`
	AllowedEnd   *domain.TimeOfDay `json:"allowed_end,omitempty"`
}

type campaignStatusRequest struct {
	Status string `json:"status"`
}

type daypartRequest struct {
	AllowedStart *domain.TimeOfDay `json:"allowed_start"`
	AllowedEnd   *domain.TimeOfDay `json:"allowed_end"`
}

type createAdSetRequest struct {
	CampaignID uuid.UUID `json:"campaign_id"`
	Name       string    `json:"name"`
}

type createAdRequest struct {
	AdSetID            uuid.UUID        `json:"ad_set_id"`
	Name               string           `json:"name"`
	Content            *string          `json:"content,omitempty"`
	CostPerClick       *decimal.Decimal `json:"cost_per_click,omitempty"`
	CostPerImpression  *decimal.Decimal `json:"cost_per_impression,omitempty"`
	CostPerView        *decimal.Decimal `json:"cost_per_view,omitempty"`
	CostPerAcquisition *decimal.Decimal `json:"cost_per_acquisition,omitempty"`
}

type brandResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	DailyBudget   decimal.Decimal `json:"daily_budget"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	Timezone      string          `json:"timezone"`
	OwnerID       uuid.UUID       `json:"owner_id"`
	Active        bool            `json:"active"`
}

type campaignResponse struct {
	ID           uuid.UUID         `json:"id"`
	BrandID      uuid.UUID         `json:"brand_id"`
	Name         string            `json:"name"`
	Status       string            `json:"status"`
	AllowedStart *domain.TimeOfDay `json:"allowed_start,omitempty"`
	AllowedEnd   *domain.TimeOfDay `json:"allowed_end,omitempty"`
	Active       bool              `json:"active"`
}

type adSetResponse struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	Name       string    `json:"name"`
	Active     bool      `json:"active"`
}

type adResponse struct {
	ID                 uuid.UUID           `json:"id"`
	AdSetID            uuid.UUID           `json:"ad_set_id"`
	Name               string              `json:"name"`
	Content            *string             `json:"content,omitempty"`
	CostPerClick       decimal.NullDecimal `json:"cost_per_click"`
	CostPerImpression  decimal.NullDecimal `json:"cost_per_impression"`
	CostPerView        decimal.NullDecimal `json:"cost_per_view"`
	CostPerAcquisition decimal.NullDecimal `json:"cost_per_acquisition"`
	Active             bool                `json:"active"`
}

type transactionResponse struct {
	ID        uuid.UUID       `json:"id"`
	BrandID   uuid.UUID       `json:"brand_id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
}

func toBrandResponse(b *domain.Brand) brandResponse {
	return brandResponse{
		ID:            b.ID,
		Name:          b.Name,
		DailyBudget:   b.DailyBudget,
		MonthlyBudget: b.MonthlyBudget,
		Timezone:      b.Timezone,
		OwnerID:       b.OwnerID,
		Active:        b.Active,
	}
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	resp := campaignResponse{
		ID:      c.ID,
		BrandID: c.BrandID,
		Name:    c.Name,
		Status:  string(c.Status),
		Active:  c.Active,
	}
	if c.Daypart != nil {
		start, end := c.Daypart.Start, c.Daypart.End
		resp.AllowedStart, resp.AllowedEnd = &start, &end
	}
	return resp
}

func (h *Handler) handleCreateBrand(w http.ResponseWriter, r *http.Request) {
	var req createBrandRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.catalog.CreateBrand(r.Context(), port.CreateBrandReq{
		Name:          req.Name,
		DailyBudget:   req.DailyBudget,
		MonthlyBudget: req.MonthlyBudget,
		Timezone:      req.Timezone,
		OwnerID:       req.OwnerID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toBrandResponse(b))
}

func (h *Handler) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	brandID, err := pathID(r, "brandID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req updateBudgetRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.catalog.UpdateBrandBudget(r.Context(), brandID, req.DailyBudget, req.MonthlyBudget)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toBrandResponse(b))
}

func (h *Handler) handleDeactivateBrand(w http.ResponseWriter, r *http.Request) {
	h.deactivate(w, r, "brandID", h.catalog.DeactivateBrand)
}

func (h *Handler) handleRecordPayment(w http.ResponseWriter, r *http.Request) {
	brandID, err := pathID(r, "brandID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req paymentRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	tx, err := h.catalog.RecordPayment(r.Context(), brandID, req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, transactionResponse{
		ID:        tx.ID,
		BrandID:   tx.BrandID,
		Amount:    tx.Amount,
		Type:      string(tx.Type),
		CreatedAt: tx.CreatedAt,
	})
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	var status domain.CampaignStatus
	if req.Status != "" {
		s, err := domain.ParseCampaignStatus(req.Status)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		status = s
	}
	c, err := h.catalog.CreateCampaign(r.Context(), port.CreateCampaignReq{
		BrandID:      req.BrandID,
		Name:         req.Name,
		Status:       status,
		AllowedStart: req.AllowedStart,
		AllowedEnd:   req.AllowedEnd,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

func (h *Handler) handleCampaignStatus(w http.ResponseWriter, r *http.Request) {
	campaignID, err := pathID(r, "campaignID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req campaignStatusRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	status, err := domain.ParseCampaignStatus(req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.catalog.ChangeCampaignStatus(r.Context(), campaignID, status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleCampaignDaypart(w http.ResponseWriter, r *http.Request) {
	campaignID, err := pathID(r, "campaignID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req daypartRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.catalog.SetCampaignDaypart(r.Context(), campaignID, req.AllowedStart, req.AllowedEnd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleDeactivateCampaign(w http.ResponseWriter, r *http.Request) {
	h.deactivate(w, r, "campaignID", h.catalog.DeactivateCampaign)
}

func (h *Handler) handleCreateAdSet(w http.ResponseWriter, r *http.Request) {
	var req createAdSetRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	s, err := h.catalog.CreateAdSet(r.Context(), req.CampaignID, req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, adSetResponse{
		ID:         s.ID,
		CampaignID: s.CampaignID,
		Name:       s.Name,
		Active:     s.Active,
	})
}

func (h *Handler) handleDeactivateAdSet(w http.ResponseWriter, r *http.Request) {
	h.deactivate(w, r, "adSetID", h.catalog.DeactivateAdSet)
}

func (h *Handler) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	var req createAdRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	a, err := h.catalog.CreateAd(r.Context(), port.CreateAdReq{
		AdSetID:            req.AdSetID,
		Name:               req.Name,
		Content:            req.Content,
		CostPerClick:       req.CostPerClick,
		CostPerImpression:  req.CostPerImpression,
		CostPerView:        req.CostPerView,
		CostPerAcquisition: req.CostPerAcquisition,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, adResponse{
		ID:                 a.ID,
		AdSetID:            a.AdSetID,
		Name:               a.Name,
		Content:            a.Content,
		CostPerClick:       a.CostPerClick,
		CostPerImpression:  a.CostPerImpression,
		CostPerView:        a.CostPerView,
		CostPerAcquisition: a.CostPerAcquisition,
		Active:             a.Active,
	})
}

func (h *Handler) handleDeactivateAd(w http.ResponseWriter, r *http.Request) {
	h.deactivate(w, r, "adID", h.catalog.DeactivateAd)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request, param string, fn func(ctx context.Context, id uuid.UUID) error) {
	id, err := pathID(r, param)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := fn(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
