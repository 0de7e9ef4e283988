package port

import (
	"context"

	"adcap/internal/core/domain"
)

// Outcome classifies the result of an admission attempt. Rejections are
// terminal decisions for the attempt, not errors: transient store failures
// travel separately as ordinary Go errors.
type Outcome int

const (
	OutcomeAdmitted Outcome = iota
	OutcomeCampaignNotFound
	OutcomeCampaignInactive
	OutcomeRateLimited
	OutcomeBudgetExceeded
)

// String returns the wire name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAdmitted:
		return "admitted"
	case OutcomeCampaignNotFound:
		return "campaign_not_found"
	case OutcomeCampaignInactive:
		return "campaign_inactive"
	case OutcomeRateLimited:
		return "rate_limited"
	case OutcomeBudgetExceeded:
		return "budget_exceeded"
	default:
		return "unknown"
	}
}

// AdmitRequest carries one already-validated incoming event.
type AdmitRequest struct {
	CampaignID int64
	UserID     string
	EventType  domain.EventType
	AdID       *string
}

// Admission is the engine's decision for a single event. Event is non-nil
// only when Outcome is OutcomeAdmitted.
type Admission struct {
	Outcome Outcome
	Event   *domain.Event
}

// Enforcer is the primary port into the engine. Mock implementations can
// be generated from this interface for testing.
type Enforcer interface {
	// Admit decides whether the event is admissible under the campaign's
	// frequency cap and budget caps, and records it when admitted. An
	// error indicates a transient failure; the decision itself is always
	// expressed through the Admission outcome.
	Admit(ctx context.Context, req AdmitRequest) (*Admission, error)
}
