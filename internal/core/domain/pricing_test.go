package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestEventCost(t *testing.T) {
	tests := []struct {
		name      string
		model     PricingModel
		unitPrice string
		eventType EventType
		want      string
	}{
		{"cpm impression", PricingCPM, "10", EventImpression, "0.01"},
		{"cpm fractional price", PricingCPM, "2.50", EventImpression, "0.0025"},
		{"cpm rounds half up", PricingCPM, "0.0015", EventImpression, "0.000002"},
		{"cpc click", PricingCPC, "0.75", EventClick, "0.75"},
		{"cpa conversion", PricingCPA, "12.345678", EventConversion, "12.345678"},
		{"cpm click is free", PricingCPM, "10", EventClick, "0"},
		{"cpm conversion is free", PricingCPM, "10", EventConversion, "0"},
		{"cpc impression is free", PricingCPC, "0.75", EventImpression, "0"},
		{"cpa click is free", PricingCPA, "5", EventClick, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EventCost(tt.model, decimal.RequireFromString(tt.unitPrice), tt.eventType)
			require.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"EventCost(%s, %s, %s) = %s, want %s", tt.model, tt.unitPrice, tt.eventType, got, tt.want)
		})
	}
}
