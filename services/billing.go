package services

import (
	"TimeTrackGo/models"
)

// BillingBreakdown is the per-project cost picture computed from a snapshot
// of closed entries. Hours are fractional; rounding happens at presentation.
type BillingBreakdown struct {
	TotalHours  float64
	TotalCost   float64
	DirectHours float64
	TaskHours   float64
}

// ComputeBilling sums hours and cost over the given entries. Open entries
// contribute nothing until stopped. Entries whose task belongs to projectID
// count as task-derived; everything else (project, campaign or no
// association) counts as direct, so DirectHours+TaskHours == TotalHours.
// Users missing from rates cost 0 per hour.
func ComputeBilling(entries []models.TimeEntry, rates map[string]float64, projectID string, taskProjects map[string]string) BillingBreakdown {
	var breakdown BillingBreakdown
	for i := range entries {
		entry := &entries[i]
		if entry.IsOpen() {
			continue
		}
		hours := entry.Hours()
		breakdown.TotalHours += hours
		breakdown.TotalCost += hours * rates[entry.UserID]

		if entry.Association.Kind == models.AssocTask && taskProjects[entry.Association.ID] == projectID {
			breakdown.TaskHours += hours
		} else {
			breakdown.DirectHours += hours
		}
	}
	return breakdown
}
