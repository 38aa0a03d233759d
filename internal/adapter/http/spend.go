package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
)

type authorizationResponse struct {
	Accepted      bool            `json:"accepted"`
	Message       string          `json:"message"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID *uuid.UUID      `json:"transaction_id,omitempty"`
}

type budgetStatusResponse struct {
	BrandID       uuid.UUID       `json:"brand_id"`
	AsOf          time.Time       `json:"as_of"`
	DailySpend    decimal.Decimal `json:"daily_spend"`
	MonthlySpend  decimal.Decimal `json:"monthly_spend"`
	DailyBudget   decimal.Decimal `json:"daily_budget"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	OverBudget    bool            `json:"over_budget"`
}

type transactionEntry struct {
	ID         uuid.UUID       `json:"id"`
	CampaignID *uuid.UUID      `json:"campaign_id,omitempty"`
	AdID       *uuid.UUID      `json:"ad_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	CostType   *string         `json:"cost_type,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// handleAdEvent charges one serving event. A rejected event is still a
// 200: the caller must not serve the ad and should not retry.
func (h *Handler) handleAdEvent(w http.ResponseWriter, r *http.Request) {
	adID, err := pathID(r, "adID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	kind, err := domain.ParseCostType(chi.URLParam(r, "kind"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	auth, err := h.spend.AuthorizeSpend(r.Context(), adID, kind)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if auth.Accepted {
		h.logger.Debug("spend authorized",
			slog.String("ad_id", adID.String()),
			slog.String("kind", string(kind)),
			slog.String("amount", auth.Amount.String()),
		)
	}

	h.writeJSON(w, http.StatusOK, authorizationResponse{
		Accepted:      auth.Accepted,
		Message:       auth.Message,
		Amount:        auth.Amount,
		TransactionID: auth.TransactionID,
	})
}

func (h *Handler) handleBrandSpend(w http.ResponseWriter, r *http.Request) {
	brandID, err := pathID(r, "brandID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	st, err := h.spend.GetBudgetStatus(r.Context(), brandID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, budgetStatusResponse{
		BrandID:       st.BrandID,
		AsOf:          st.AsOf,
		DailySpend:    st.DailySpend,
		MonthlySpend:  st.MonthlySpend,
		DailyBudget:   st.DailyBudget,
		MonthlyBudget: st.MonthlyBudget,
		OverBudget:    st.OverBudget,
	})
}

// handleBrandTransactions lists ledger entries. from and to are optional
// RFC 3339 instants; without them the brand's current local month is used.
func (h *Handler) handleBrandTransactions(w http.ResponseWriter, r *http.Request) {
	brandID, err := pathID(r, "brandID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	from, err := queryTime(r, "from")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	to, err := queryTime(r, "to")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	txs, err := h.spend.ListTransactions(r.Context(), brandID, from, to)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := make([]transactionEntry, 0, len(txs))
	for _, tx := range txs {
		e := transactionEntry{
			ID:         tx.ID,
			CampaignID: tx.CampaignID,
			AdID:       tx.AdID,
			Amount:     tx.Amount,
			Type:       string(tx.Type),
			CreatedAt:  tx.CreatedAt,
		}
		if tx.CostType != nil {
			ct := string(*tx.CostType)
			e.CostType = &ct
		}
		resp = append(resp, e)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func queryTime(r *http.Request, name string) (time.Time, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, domain.NewValidationError(name, "must be an RFC 3339 time")
	}
	return t, nil
}
