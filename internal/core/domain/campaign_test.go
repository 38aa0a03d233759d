package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignTransitions(t *testing.T) {
	assert.True(t, CampaignStatusDraft.CanTransition(CampaignStatusScheduled))
	assert.True(t, CampaignStatusScheduled.CanTransition(CampaignStatusRunning))
	assert.True(t, CampaignStatusRunning.CanTransition(CampaignStatusScheduled))
	assert.True(t, CampaignStatusRunning.CanTransition(CampaignStatusBudgetReached))
	assert.True(t, CampaignStatusBudgetReached.CanTransition(CampaignStatusScheduled))
	assert.True(t, CampaignStatusBudgetReached.CanTransition(CampaignStatusRunning))

	assert.False(t, CampaignStatusDraft.CanTransition(CampaignStatusRunning))
	assert.False(t, CampaignStatusCompleted.CanTransition(CampaignStatusRunning))
	assert.False(t, CampaignStatusCompleted.CanTransition(CampaignStatusScheduled))
	assert.False(t, CampaignStatusPaused.CanTransition(CampaignStatusRunning))
}

func TestExplicitTargets(t *testing.T) {
	assert.False(t, CampaignStatusRunning.IsExplicitTarget())
	assert.False(t, CampaignStatusBudgetReached.IsExplicitTarget())
	assert.True(t, CampaignStatusPaused.IsExplicitTarget())
	assert.True(t, CampaignStatusCompleted.IsExplicitTarget())
}

func TestNewDaypart(t *testing.T) {
	start, end := MustTimeOfDay(8, 0), MustTimeOfDay(20, 0)

	d, err := NewDaypart(&start, &end)
	require.NoError(t, err)
	assert.False(t, d.CrossesMidnight())

	d, err = NewDaypart(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = NewDaypart(&start, nil)
	assert.True(t, IsValidation(err))

	_, err = NewDaypart(&start, &start)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "cannot be the same")
}

func TestCampaignValidate(t *testing.T) {
	c := Campaign{BrandID: uuid.New(), Name: "Spring", Status: CampaignStatusDraft}
	require.NoError(t, c.Validate())

	c.Status = "archived"
	assert.True(t, IsValidation(c.Validate()))

	c.Status = CampaignStatusDraft
	c.Daypart = &Daypart{Start: MustTimeOfDay(9, 0), End: MustTimeOfDay(9, 0)}
	assert.True(t, IsValidation(c.Validate()))
}
