package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionValidateScale(t *testing.T) {
	click := CostTypeClick
	tx := Transaction{
		BrandID:  uuid.New(),
		Amount:   decimal.RequireFromString("0.0012"),
		Type:     TransactionTypeCost,
		CostType: &click,
	}
	require.NoError(t, tx.Validate())

	tx.Amount = decimal.RequireFromString("0.00123")
	assert.True(t, IsValidation(tx.Validate()), "finer than the ledger scale")

	tx.Amount = decimal.Zero
	assert.True(t, IsValidation(tx.Validate()))

	pay := Transaction{BrandID: uuid.New(), Amount: decimal.RequireFromString("0.00001"), Type: TransactionTypePayment}
	assert.True(t, IsValidation(pay.Validate()))
}

func TestPriceAndBudgetScale(t *testing.T) {
	ad := Ad{AdSetID: uuid.New(), Name: "a", CostPerImpression: decimal.NewNullDecimal(decimal.RequireFromString("0.00005"))}
	assert.True(t, IsValidation(ad.Validate()))
	ad.CostPerImpression = decimal.NewNullDecimal(decimal.RequireFromString("0.0001"))
	assert.NoError(t, ad.Validate())

	p := DefaultPricing()
	p.CostPerView = decimal.RequireFromString("0.12345")
	assert.True(t, IsValidation(p.Validate()))

	b := newBrand()
	b.DailyBudget = decimal.RequireFromString("10.005")
	assert.True(t, IsValidation(b.Validate()))
}
