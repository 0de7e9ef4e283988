package usecase

import (
	"context"

	"adcap/internal/clock"
	"adcap/internal/core/domain"
	"adcap/internal/core/port"
)

// EnforcementService sequences the frequency limiter and the budget ledger
// for a single incoming event and produces one admission decision. It
// implements the port.Enforcer interface. The cheap cache-resident
// frequency check runs before the transactional ledger so capped traffic
// is rejected without taking a row lock.
type EnforcementService struct {
	repo    port.LedgerRepository
	limiter port.FrequencyLimiter
	clock   clock.Clock
}

// NewEnforcementService creates a new service over the given ports. The
// clock fixes the reference timezone for day boundaries.
func NewEnforcementService(repo port.LedgerRepository, limiter port.FrequencyLimiter, clk clock.Clock) *EnforcementService {
	return &EnforcementService{repo: repo, limiter: limiter, clock: clk}
}

// Admit decides whether the event is admissible and records it when it is.
// Rejections are reported through the Admission outcome; an error means a
// transient store failure and no decision.
func (s *EnforcementService) Admit(ctx context.Context, req port.AdmitRequest) (*port.Admission, error) {
	now := s.clock.Now()

	campaign, err := s.repo.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return &port.Admission{Outcome: port.OutcomeCampaignNotFound}, nil
	}

	if req.EventType == domain.EventImpression && campaign.FreqCapPerDay > 0 {
		ok, err := s.limiter.CheckAndIncrement(ctx, req.CampaignID, req.UserID, req.EventType, campaign.FreqCapPerDay, now)
		if err != nil {
			return nil, err
		}
		if !ok {
			return &port.Admission{Outcome: port.OutcomeRateLimited}, nil
		}
		// The counter is not rolled back if the ledger rejects below; a
		// budget rejection still consumes one frequency slot for the day.
	}

	ev := &domain.Event{
		CampaignID: req.CampaignID,
		AdID:       req.AdID,
		UserID:     req.UserID,
		Type:       req.EventType,
	}
	status, err := s.repo.ReserveSpend(ctx, ev, now)
	if err != nil {
		return nil, err
	}
	switch status {
	case domain.ReserveOK:
		return &port.Admission{Outcome: port.OutcomeAdmitted, Event: ev}, nil
	case domain.ReserveNotFound:
		return &port.Admission{Outcome: port.OutcomeCampaignNotFound}, nil
	case domain.ReserveInactive:
		return &port.Admission{Outcome: port.OutcomeCampaignInactive}, nil
	default:
		return &port.Admission{Outcome: port.OutcomeBudgetExceeded}, nil
	}
}
