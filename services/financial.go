package services

import (
	"context"

	"TimeTrackGo/models"

	"gorm.io/gorm"
)

// Summarize combines a billing breakdown with the project's contracted value.
// A missing or zero value yields a 0 margin, never NaN.
func Summarize(value *float64, breakdown BillingBreakdown) models.ProjectFinancialSummary {
	contracted := 0.0
	if value != nil {
		contracted = *value
	}
	profit := contracted - breakdown.TotalCost
	percentage := 0.0
	if contracted > 0 {
		percentage = profit / contracted * 100
	}
	return models.ProjectFinancialSummary{
		TotalHours:       breakdown.TotalHours,
		TotalCost:        breakdown.TotalCost,
		DirectHours:      breakdown.DirectHours,
		TaskHours:        breakdown.TaskHours,
		Profit:           profit,
		ProfitPercentage: percentage,
	}
}

// BillingService answers project financial queries from an entry snapshot,
// the employee rate table and the project registry. Summaries are recomputed
// on every call, nothing here is cached or stored.
type BillingService struct {
	db  *gorm.DB
	reg Registries
}

func NewBillingService(db *gorm.DB, reg Registries) *BillingService {
	return &BillingService{db: db, reg: reg}
}

// ProjectFinancials computes the summary for one project. overrideValue, when
// set, replaces the registry's contracted value for this query.
func (s *BillingService) ProjectFinancials(ctx context.Context, projectID string, overrideValue *float64) (*models.ProjectFinancialSummary, error) {
	project, err := s.reg.Projects.Project(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, models.NewNotFound("project not found")
	}

	taskIDs, err := s.reg.Tasks.ProjectTaskIDs(ctx, projectID)
	if err != nil {
		return nil, err
	}
	taskProjects := make(map[string]string, len(taskIDs))
	for _, id := range taskIDs {
		taskProjects[id] = projectID
	}

	entries, err := s.projectEntries(ctx, projectID, taskIDs)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for i := range entries {
		if !seen[entries[i].UserID] {
			seen[entries[i].UserID] = true
			userIDs = append(userIDs, entries[i].UserID)
		}
	}
	rates, err := s.reg.Employees.HourlyRates(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	breakdown := ComputeBilling(entries, rates, projectID, taskProjects)

	value := project.Value
	if overrideValue != nil {
		value = overrideValue
	}
	summary := Summarize(value, breakdown)
	return &summary, nil
}

// projectEntries snapshots the entries attributable to the project: those
// associated with it directly plus those logged against its tasks.
func (s *BillingService) projectEntries(ctx context.Context, projectID string, taskIDs []string) ([]models.TimeEntry, error) {
	q := s.db.WithContext(ctx).Model(&models.TimeEntry{})
	if len(taskIDs) > 0 {
		q = q.Where(
			"(assoc_kind = ? AND assoc_id = ?) OR (assoc_kind = ? AND assoc_id IN ?)",
			models.AssocProject, projectID, models.AssocTask, taskIDs,
		)
	} else {
		q = q.Where("assoc_kind = ? AND assoc_id = ?", models.AssocProject, projectID)
	}

	var entries []models.TimeEntry
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
