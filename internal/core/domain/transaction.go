package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// AmountScale is the number of decimal places stored for ledger amounts
	// and prices.
	AmountScale = 4
	// BudgetScale is the number of decimal places stored for budgets.
	BudgetScale = 2
)

// fitsScale reports whether d has no digits beyond places.
func fitsScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Round(places))
}

// TransactionType separates charges from credits.
type TransactionType string

const (
	TransactionTypeCost    TransactionType = "cost"
	TransactionTypePayment TransactionType = "payment"
)

// CostType is the ad-serving event a cost was charged for.
type CostType string

const (
	CostTypeClick       CostType = "click"
	CostTypeImpression  CostType = "impression"
	CostTypeView        CostType = "view"
	CostTypeAcquisition CostType = "acquisition"
)

// ParseCostType validates an event kind.
func ParseCostType(s string) (CostType, error) {
	ct := CostType(strings.ToLower(strings.TrimSpace(s)))
	switch ct {
	case CostTypeClick, CostTypeImpression, CostTypeView, CostTypeAcquisition:
		return ct, nil
	default:
		return "", NewValidationError("cost_type", fmt.Sprintf("unknown cost type %q", s))
	}
}

// Transaction is a ledger entry. Entries are append-only: once written
// they are never updated or deleted.
type Transaction struct {
	ID         uuid.UUID
	BrandID    uuid.UUID
	CampaignID *uuid.UUID
	AdID       *uuid.UUID
	Amount     decimal.Decimal
	Type       TransactionType
	CostType   *CostType
	CreatedAt  time.Time
}

// Validate checks the ledger entry invariants.
func (t Transaction) Validate() error {
	if t.BrandID == uuid.Nil {
		return NewValidationError("brand_id", "must be set")
	}
	if !t.Amount.IsPositive() {
		return NewValidationError("amount", "must be positive")
	}
	if !fitsScale(t.Amount, AmountScale) {
		return NewValidationError("amount", fmt.Sprintf("at most %d decimal places", AmountScale))
	}
	switch t.Type {
	case TransactionTypeCost:
		if t.CostType == nil {
			return NewValidationError("cost_type", "required for cost entries")
		}
		if _, err := ParseCostType(string(*t.CostType)); err != nil {
			return err
		}
	case TransactionTypePayment:
		if t.CostType != nil {
			return NewValidationError("cost_type", "must be empty for payments")
		}
	default:
		return NewValidationError("transaction_type", fmt.Sprintf("unknown transaction type %q", t.Type))
	}
	return nil
}
