package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"TimeTrackGo/config"
	"TimeTrackGo/models"
	"TimeTrackGo/utils"

	"gorm.io/gorm"
)

// TimerService drives the start/stop/finalize lifecycle of timer entries.
// The per-user state machine (idle, running, pending classification) lives in
// the entries themselves: an open row means running, a closed unfinalized row
// means the classification prompt is still owed.
type TimerService struct {
	db       *gorm.DB
	reg      Registries
	notifier Notifier
}

func NewTimerService(db *gorm.DB, reg Registries, notifier Notifier) *TimerService {
	return &TimerService{db: db, reg: reg, notifier: notifier}
}

// Start opens a new entry for the user. The one-open-timer rule is enforced
// by the (user_id, open) unique index, not by a pre-check, so two concurrent
// starts cannot both slip through; the loser gets a conflict and no row.
func (s *TimerService) Start(ctx context.Context, userID string, req models.StartTimerRequest) (*models.TimeEntry, error) {
	if err := checkAssociation(ctx, s.reg, req.Association); err != nil {
		return nil, err
	}
	if err := checkCompany(ctx, s.reg, req.CompanyID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	open := true
	entry := models.TimeEntry{
		ID:           utils.GenerateID(),
		UserID:       userID,
		StartTime:    now,
		Open:         &open,
		Description:  req.Description,
		Association:  req.Association,
		CompanyID:    req.CompanyID,
		CreatedAt:    now,
		LastModified: now,
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflict("a timer is already running for this user")
		}
		return nil, err
	}

	config.Logger.Infow("timer started", "entryId", entry.ID, "userId", userID)
	s.notifier.Publish(ctx, entryScopes(ctx, s.reg.Tasks, &entry), ChangeEvent{EntryID: entry.ID, Action: ActionCreated})
	return &entry, nil
}

// Stop closes the user's running entry. A blank description is replaced with
// a synthesized one based on what the entry is associated with.
func (s *TimerService) Stop(ctx context.Context, userID, entryID string) (*models.TimeEntry, error) {
	entry, err := s.loadOwned(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	if !entry.IsOpen() {
		return nil, models.NewInvalidState("entry is already stopped")
	}

	now := time.Now().UTC()
	description := entry.Description
	if description == "" {
		description = s.defaultDescription(ctx, entry)
	}

	updates := map[string]interface{}{
		"end_time":      now,
		"open":          nil,
		"description":   description,
		"last_modified": now,
	}
	if err := s.db.WithContext(ctx).Model(entry).Updates(updates).Error; err != nil {
		return nil, err
	}
	entry.EndTime = &now
	entry.Open = nil
	entry.Description = description
	entry.LastModified = now

	config.Logger.Infow("timer stopped", "entryId", entry.ID, "userId", userID)
	s.notifier.Publish(ctx, entryScopes(ctx, s.reg.Tasks, entry), ChangeEvent{EntryID: entry.ID, Action: ActionClosed})
	return entry, nil
}

// Finalize records the billable classification of a stopped entry. It is a
// separate round trip from Stop so the prompt survives being dismissed and
// reopened; an entry that is never finalized simply stays non-billable,
// which is a valid terminal state. Billable without a company is forced off.
func (s *TimerService) Finalize(ctx context.Context, userID, entryID string, billable bool) (*models.TimeEntry, error) {
	entry, err := s.loadOwned(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.IsOpen() {
		return nil, models.NewInvalidState("entry is still running")
	}
	if entry.Finalized {
		return nil, models.NewInvalidState("entry is already finalized")
	}
	if billable && entry.CompanyID == "" {
		billable = false
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"billable":      billable,
		"finalized":     true,
		"last_modified": now,
	}
	if err := s.db.WithContext(ctx).Model(entry).Updates(updates).Error; err != nil {
		return nil, err
	}
	entry.Billable = billable
	entry.Finalized = true
	entry.LastModified = now

	s.notifier.Publish(ctx, entryScopes(ctx, s.reg.Tasks, entry), ChangeEvent{EntryID: entry.ID, Action: ActionFinalized})
	return entry, nil
}

// Running returns the user's open entry, or nil when no timer runs. Clients
// recompute elapsed time from the persisted StartTime after a reconnect; the
// server never carries a separate "running" flag.
func (s *TimerService) Running(ctx context.Context, userID string) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND end_time IS NULL", userID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// loadOwned fetches an entry the caller may mutate. Unknown ids are not
// found; someone else's entry is an invalid state for the caller.
func (s *TimerService) loadOwned(ctx context.Context, userID, entryID string) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := s.db.WithContext(ctx).Where("id = ?", entryID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFound("entry not found")
	}
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, models.NewInvalidState("entry belongs to another user")
	}
	return &entry, nil
}

func (s *TimerService) defaultDescription(ctx context.Context, entry *models.TimeEntry) string {
	switch entry.Association.Kind {
	case models.AssocTask:
		if task, err := s.reg.Tasks.Task(ctx, entry.Association.ID); err == nil && task != nil {
			return fmt.Sprintf("Worked with %s", task.Title)
		}
	case models.AssocProject:
		if project, err := s.reg.Projects.Project(ctx, entry.Association.ID); err == nil && project != nil {
			return fmt.Sprintf("Worked with %s", project.Name)
		}
	case models.AssocCampaign:
		if campaign, err := s.reg.Campaigns.Campaign(ctx, entry.Association.ID); err == nil && campaign != nil {
			return fmt.Sprintf("Worked with %s", campaign.Name)
		}
	}
	return "Time entry"
}

// checkAssociation rejects malformed pairs and unknown targets.
func checkAssociation(ctx context.Context, reg Registries, assoc models.Association) error {
	if !assoc.Valid() {
		return models.NewValidation("association", "exactly one of task, campaign or project may be set")
	}
	switch assoc.Kind {
	case models.AssocTask:
		task, err := reg.Tasks.Task(ctx, assoc.ID)
		if err != nil {
			return err
		}
		if task == nil {
			return models.NewNotFound("task not found")
		}
	case models.AssocCampaign:
		campaign, err := reg.Campaigns.Campaign(ctx, assoc.ID)
		if err != nil {
			return err
		}
		if campaign == nil {
			return models.NewNotFound("campaign not found")
		}
	case models.AssocProject:
		project, err := reg.Projects.Project(ctx, assoc.ID)
		if err != nil {
			return err
		}
		if project == nil {
			return models.NewNotFound("project not found")
		}
	}
	return nil
}

// checkCompany verifies an optional company reference.
func checkCompany(ctx context.Context, reg Registries, companyID string) error {
	if companyID == "" {
		return nil
	}
	exists, err := reg.Companies.CompanyExists(ctx, companyID)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewNotFound("company not found")
	}
	return nil
}
