package services

import (
	"context"
	"errors"
	"time"

	"TimeTrackGo/config"
	"TimeTrackGo/models"
	"TimeTrackGo/utils"

	"gorm.io/gorm"
)

// EntryService validates and stores manual entries, which arrive already
// closed with explicit start and end times, and answers entry listings.
type EntryService struct {
	db       *gorm.DB
	reg      Registries
	notifier Notifier
}

func NewEntryService(db *gorm.DB, reg Registries, notifier Notifier) *EntryService {
	return &EntryService{db: db, reg: reg, notifier: notifier}
}

// CreateManual inserts a fully specified entry. There is no classification
// step for manual entries, the billable flag is explicit input, so the row
// is stored closed and finalized in one go.
func (s *EntryService) CreateManual(ctx context.Context, userID string, req models.ManualEntryRequest) (*models.TimeEntry, error) {
	req.ConvertToUTC()
	if err := s.validate(ctx, &req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	end := req.EndTime
	entry := models.TimeEntry{
		ID:           utils.GenerateID(),
		UserID:       userID,
		StartTime:    req.StartTime,
		EndTime:      &end,
		Description:  req.Description,
		Association:  req.Association,
		CompanyID:    req.CompanyID,
		Billable:     req.Billable && req.CompanyID != "",
		Finalized:    true,
		CreatedAt:    now,
		LastModified: now,
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}

	config.Logger.Infow("manual entry created", "entryId", entry.ID, "userId", userID)
	s.notifier.Publish(ctx, entryScopes(ctx, s.reg.Tasks, &entry), ChangeEvent{EntryID: entry.ID, Action: ActionCreated})
	return &entry, nil
}

// UpdateManual replaces the mutable fields of a closed entry under the same
// validation rules as creation. It is a full replace, not a patch.
func (s *EntryService) UpdateManual(ctx context.Context, userID, entryID string, req models.ManualEntryRequest) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := s.db.WithContext(ctx).Where("id = ?", entryID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFound("entry not found")
	}
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, models.NewNotFound("entry not found")
	}
	if entry.IsOpen() {
		return nil, models.NewInvalidState("running entries are closed via the timer, not edited")
	}

	req.ConvertToUTC()
	if err := s.validate(ctx, &req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	end := req.EndTime
	billable := req.Billable && req.CompanyID != ""
	updates := map[string]interface{}{
		"description":   req.Description,
		"start_time":    req.StartTime,
		"end_time":      end,
		"assoc_kind":    req.Association.Kind,
		"assoc_id":      req.Association.ID,
		"company_id":    req.CompanyID,
		"billable":      billable,
		"last_modified": now,
	}
	if err := s.db.WithContext(ctx).Model(&entry).Updates(updates).Error; err != nil {
		return nil, err
	}
	entry.Description = req.Description
	entry.StartTime = req.StartTime
	entry.EndTime = &end
	entry.Association = req.Association
	entry.CompanyID = req.CompanyID
	entry.Billable = billable
	entry.LastModified = now

	s.notifier.Publish(ctx, entryScopes(ctx, s.reg.Tasks, &entry), ChangeEvent{EntryID: entry.ID, Action: ActionUpdated})
	return &entry, nil
}

// List returns entries matching the filter, newest first.
func (s *EntryService) List(ctx context.Context, filter models.EntryFilter) ([]models.TimeEntry, error) {
	q := s.db.WithContext(ctx).Model(&models.TimeEntry{})
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.TaskID != nil {
		q = q.Where("assoc_kind = ? AND assoc_id = ?", models.AssocTask, *filter.TaskID)
	}
	if filter.ProjectID != nil {
		q = q.Where("assoc_kind = ? AND assoc_id = ?", models.AssocProject, *filter.ProjectID)
	}
	if filter.CampaignID != nil {
		q = q.Where("assoc_kind = ? AND assoc_id = ?", models.AssocCampaign, *filter.CampaignID)
	}

	var entries []models.TimeEntry
	if err := q.Order("start_time DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// validate applies the manual entry rules: description and both timestamps
// required, end strictly after start, a well-formed existing association,
// and an existing company when one is referenced.
func (s *EntryService) validate(ctx context.Context, req *models.ManualEntryRequest) error {
	if req.Description == "" {
		return models.NewValidation("description", "description is required")
	}
	if req.StartTime.IsZero() {
		return models.NewValidation("startTime", "start time is required")
	}
	if req.EndTime.IsZero() {
		return models.NewValidation("endTime", "end time is required")
	}
	if !req.EndTime.After(req.StartTime) {
		return models.NewValidation("endTime", "end time must be after start time")
	}
	if err := checkAssociation(ctx, s.reg, req.Association); err != nil {
		return err
	}
	return checkCompany(ctx, s.reg, req.CompanyID)
}
