package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdSet groups ads inside a campaign. It has no budget logic of its own.
type AdSet struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	Name       string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks the ad set invariants.
func (s AdSet) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return NewValidationError("name", "must not be empty")
	}
	if s.CampaignID == uuid.Nil {
		return NewValidationError("campaign_id", "must be set")
	}
	return nil
}

// Ad is a single creative. Unset cost fields fall back to the global
// pricing, field by field. CostPerImpression is priced per 1000
// impressions.
type Ad struct {
	ID                 uuid.UUID
	AdSetID            uuid.UUID
	Name               string
	Active             bool
	Content            *string
	CostPerClick       decimal.NullDecimal
	CostPerImpression  decimal.NullDecimal
	CostPerView        decimal.NullDecimal
	CostPerAcquisition decimal.NullDecimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate checks the ad invariants.
func (a Ad) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return NewValidationError("name", "must not be empty")
	}
	if a.AdSetID == uuid.Nil {
		return NewValidationError("ad_set_id", "must be set")
	}
	overrides := map[string]decimal.NullDecimal{
		"cost_per_click":       a.CostPerClick,
		"cost_per_impression":  a.CostPerImpression,
		"cost_per_view":        a.CostPerView,
		"cost_per_acquisition": a.CostPerAcquisition,
	}
	for field, v := range overrides {
		if v.Valid && v.Decimal.IsNegative() {
			return NewValidationError(field, "must not be negative")
		}
		if v.Valid && !fitsScale(v.Decimal, AmountScale) {
			return NewValidationError(field, fmt.Sprintf("at most %d decimal places", AmountScale))
		}
	}
	return nil
}
