package models

import (
	"time"
)

// StartTimerRequest opens a new entry for the authenticated user. Everything
// is optional: a bare start is a timer with no association yet.
type StartTimerRequest struct {
	Description string      `json:"description"`
	Association Association `json:"association"`
	CompanyID   string      `json:"companyId"`
}

// FinalizeRequest classifies a stopped entry. The pointer makes an omitted
// flag a binding error rather than a silent false.
type FinalizeRequest struct {
	Billable *bool `json:"isBillable" binding:"required"`
}

// ManualEntryRequest carries a fully specified, already-closed entry. The
// same shape is used for create and for full-replace updates.
type ManualEntryRequest struct {
	Description string      `json:"description"`
	StartTime   time.Time   `json:"startTime"`
	EndTime     time.Time   `json:"endTime"`
	Association Association `json:"association"`
	CompanyID   string      `json:"companyId"`
	Billable    bool        `json:"isBillable"`
}

// ConvertToUTC normalizes the request timestamps.
func (r *ManualEntryRequest) ConvertToUTC() {
	r.StartTime = r.StartTime.UTC()
	r.EndTime = r.EndTime.UTC()
}

// EntryFilter selects entries for listing. Nil fields match everything.
type EntryFilter struct {
	UserID     *string
	TaskID     *string
	ProjectID  *string
	CampaignID *string
}
