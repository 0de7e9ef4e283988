package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType classifies an advertising event.
type EventType string

const (
	EventImpression EventType = "impression"
	EventClick      EventType = "click"
	EventConversion EventType = "conversion"
)

// Event records a single admitted advertising event together with the cost
// it drew from the campaign budget. Immutable once persisted.
type Event struct {
	ID         int64
	CampaignID int64
	AdID       *string
	UserID     string
	Type       EventType
	Cost       decimal.Decimal
	CreatedAt  time.Time
}
