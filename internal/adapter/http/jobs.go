package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type jobRunResponse struct {
	Job     string `json:"job"`
	Summary string `json:"summary"`
}

type jobStatusResponse struct {
	Name            string     `json:"name"`
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	LastSummary     string     `json:"last_summary,omitempty"`
	LastError       string     `json:"last_error,omitempty"`
}

func (h *Handler) handleRunJob(w http.ResponseWriter, r *http.Request) {
	job := chi.URLParam(r, "job")
	summary, err := h.jobs.Trigger(r.Context(), job)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, jobRunResponse{Job: job, Summary: summary})
}

func (h *Handler) handleJobStatus(w http.ResponseWriter, _ *http.Request) {
	statuses := h.jobs.Status()
	resp := make([]jobStatusResponse, 0, len(statuses))
	for _, st := range statuses {
		resp = append(resp, jobStatusResponse{
			Name:            st.Name,
			Running:         st.Running,
			LastStartedAt:   timePtr(st.LastStartedAt),
			LastCompletedAt: timePtr(st.LastCompletedAt),
			LastSummary:     st.LastSummary,
			LastError:       st.LastError,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
