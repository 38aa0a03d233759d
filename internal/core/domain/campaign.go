package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the campaign lifecycle state.
type CampaignStatus string

const (
	CampaignStatusDraft         CampaignStatus = "draft"
	CampaignStatusScheduled     CampaignStatus = "scheduled"
	CampaignStatusBudgetReached CampaignStatus = "budget_reached"
	CampaignStatusRunning       CampaignStatus = "running"
	CampaignStatusPaused        CampaignStatus = "paused"
	CampaignStatusCompleted     CampaignStatus = "completed"
)

// campaignTransitions lists every allowed edge. Running and BudgetReached
// are entered only by spend authorization and the scheduler; Draft,
// Paused and Completed only by explicit actions.
var campaignTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignStatusDraft:         {CampaignStatusScheduled, CampaignStatusCompleted},
	CampaignStatusScheduled:     {CampaignStatusRunning, CampaignStatusDraft, CampaignStatusPaused, CampaignStatusCompleted},
	CampaignStatusRunning:       {CampaignStatusScheduled, CampaignStatusBudgetReached, CampaignStatusPaused, CampaignStatusCompleted},
	CampaignStatusBudgetReached: {CampaignStatusScheduled, CampaignStatusRunning, CampaignStatusPaused, CampaignStatusCompleted},
	CampaignStatusPaused:        {CampaignStatusScheduled, CampaignStatusDraft, CampaignStatusCompleted},
	CampaignStatusCompleted:     {CampaignStatusDraft},
}

// ParseCampaignStatus validates a status string.
func ParseCampaignStatus(s string) (CampaignStatus, error) {
	st := CampaignStatus(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := campaignTransitions[st]; !ok {
		return "", NewValidationError("status", fmt.Sprintf("unknown campaign status %q", s))
	}
	return st, nil
}

// CanTransition reports whether s may move to next.
func (s CampaignStatus) CanTransition(next CampaignStatus) bool {
	for _, st := range campaignTransitions[s] {
		if st == next {
			return true
		}
	}
	return false
}

// IsExplicitTarget reports whether s can be requested by an external
// action. Running and BudgetReached are owned by the budget core.
func (s CampaignStatus) IsExplicitTarget() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusScheduled, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	default:
		return false
	}
}

// Daypart is the allowed local time-of-day window of a campaign. Start >
// End means the window crosses midnight.
type Daypart struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Validate rejects equal boundaries: they cannot express either an empty or
// a full-day window unambiguously.
func (d Daypart) Validate() error {
	if time.Duration(d.Start) < 0 || time.Duration(d.Start) >= 24*time.Hour {
		return NewValidationError("allowed_start", "out of range")
	}
	if time.Duration(d.End) < 0 || time.Duration(d.End) >= 24*time.Hour {
		return NewValidationError("allowed_end", "out of range")
	}
	if d.Start == d.End {
		return NewValidationError("allowed_start", "allowed start and end hours cannot be the same")
	}
	return nil
}

// CrossesMidnight reports whether the window wraps to the next day.
func (d Daypart) CrossesMidnight() bool {
	return d.Start > d.End
}

// NewDaypart builds a daypart from optional boundaries. Both or neither
// must be set.
func NewDaypart(start, end *TimeOfDay) (*Daypart, error) {
	if start == nil && end == nil {
		return nil, nil
	}
	if start == nil || end == nil {
		return nil, NewValidationError("allowed_start", "allowed start and end hours must be set together")
	}
	d := Daypart{Start: *start, End: *end}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Campaign groups ad sets under a brand and carries the serving status.
type Campaign struct {
	ID        uuid.UUID
	BrandID   uuid.UUID
	Name      string
	Status    CampaignStatus
	Daypart   *Daypart
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the campaign invariants.
func (c Campaign) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", "must not be empty")
	}
	if c.BrandID == uuid.Nil {
		return NewValidationError("brand_id", "must be set")
	}
	if _, err := ParseCampaignStatus(string(c.Status)); err != nil {
		return err
	}
	if c.Daypart != nil {
		return c.Daypart.Validate()
	}
	return nil
}
