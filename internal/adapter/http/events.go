package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"adcap/internal/core/domain"
	"adcap/internal/core/port"
)

// eventIn is the ingestion payload. The engine assumes well-formed,
// already-validated inputs; only JSON syntax is checked here.
type eventIn struct {
	CampaignID int64            `json:"campaign_id"`
	AdID       *string          `json:"ad_id,omitempty"`
	UserID     string           `json:"user_id"`
	EventType  domain.EventType `json:"event_type"`
}

// eventOut is the recorded event returned on admission. Cost is rendered
// as a decimal string to avoid float rounding on the wire.
type eventOut struct {
	ID         int64     `json:"id"`
	CampaignID int64     `json:"campaign_id"`
	AdID       *string   `json:"ad_id,omitempty"`
	UserID     string    `json:"user_id"`
	EventType  string    `json:"event_type"`
	Cost       string    `json:"cost"`
	Timestamp  time.Time `json:"ts"`
}

// handleIngestEvent admits or rejects a single advertising event. Each
// rejection kind maps to its own status code so callers can distinguish
// them: unknown campaign 404, inactive campaign 403, frequency cap 429,
// budget cap 402. Admission returns 201 with the recorded event. Internal
// errors are logged and produce 500.
func (h *Handler) handleIngestEvent(w http.ResponseWriter, r *http.Request) {
	var in eventIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	adm, err := h.svc.Admit(r.Context(), port.AdmitRequest{
		CampaignID: in.CampaignID,
		UserID:     in.UserID,
		EventType:  in.EventType,
		AdID:       in.AdID,
	})
	if err != nil {
		h.logger.Error("admit error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	switch adm.Outcome {
	case port.OutcomeCampaignNotFound:
		http.NotFound(w, r)
		return
	case port.OutcomeCampaignInactive:
		http.Error(w, adm.Outcome.String(), http.StatusForbidden)
		return
	case port.OutcomeRateLimited:
		http.Error(w, adm.Outcome.String(), http.StatusTooManyRequests)
		return
	case port.OutcomeBudgetExceeded:
		http.Error(w, adm.Outcome.String(), http.StatusPaymentRequired)
		return
	}

	ev := adm.Event
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	out := eventOut{
		ID:         ev.ID,
		CampaignID: ev.CampaignID,
		AdID:       ev.AdID,
		UserID:     ev.UserID,
		EventType:  string(ev.Type),
		Cost:       ev.Cost.String(),
		Timestamp:  ev.CreatedAt,
	}
	if err = json.NewEncoder(w).Encode(out); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
