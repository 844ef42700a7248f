package models

import (
	"time"

	"TimeTrackGo/utils"
)

// TimeEntryResponse is the wire form of an entry. Duration is a formatted
// HH:MM:SS span, present only once the entry is closed.
type TimeEntryResponse struct {
	ID           string      `json:"id"`
	UserID       string      `json:"userId"`
	StartTime    time.Time   `json:"startTime"`
	EndTime      *time.Time  `json:"endTime,omitempty"`
	Duration     string      `json:"duration,omitempty"`
	Description  string      `json:"description"`
	Association  Association `json:"association"`
	CompanyID    string      `json:"companyId,omitempty"`
	Billable     bool        `json:"isBillable"`
	Finalized    bool        `json:"finalized"`
	LastModified time.Time   `json:"lastModified"`
}

// NewTimeEntryResponse converts a stored entry to its wire form.
func NewTimeEntryResponse(e *TimeEntry) TimeEntryResponse {
	resp := TimeEntryResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		Description:  e.Description,
		Association:  e.Association,
		CompanyID:    e.CompanyID,
		Billable:     e.Billable,
		Finalized:    e.Finalized,
		LastModified: e.LastModified,
	}
	if e.EndTime != nil {
		resp.Duration = utils.FormatDuration(e.TrackedDuration())
	}
	return resp
}

// NewTimeEntryResponses converts a listing.
func NewTimeEntryResponses(entries []TimeEntry) []TimeEntryResponse {
	responses := make([]TimeEntryResponse, len(entries))
	for i := range entries {
		responses[i] = NewTimeEntryResponse(&entries[i])
	}
	return responses
}

// ProjectFinancialSummary is derived on every query and never persisted.
type ProjectFinancialSummary struct {
	TotalHours       float64 `json:"totalHours"`
	TotalCost        float64 `json:"totalCost"`
	DirectHours      float64 `json:"directHours"`
	TaskHours        float64 `json:"taskHours"`
	Profit           float64 `json:"profit"`
	ProfitPercentage float64 `json:"profitPercentage"`
}
