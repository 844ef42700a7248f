package services

import (
	"context"
	"errors"

	"TimeTrackGo/models"

	"gorm.io/gorm"
)

// Read-only views of records owned by other parts of the system. The core
// consumes them only through these interfaces; tests substitute map-backed
// fakes.

type TaskInfo struct {
	ID        string
	Title     string
	ProjectID string
}

type ProjectInfo struct {
	ID        string
	Name      string
	CompanyID string
	Value     *float64
}

type CampaignInfo struct {
	ID        string
	Name      string
	CompanyID string
}

// TaskRegistry resolves tasks and the project they belong to. Lookups return
// nil without error for unknown ids.
type TaskRegistry interface {
	Task(ctx context.Context, id string) (*TaskInfo, error)
	ProjectTaskIDs(ctx context.Context, projectID string) ([]string, error)
}

type ProjectRegistry interface {
	Project(ctx context.Context, id string) (*ProjectInfo, error)
}

type CampaignRegistry interface {
	Campaign(ctx context.Context, id string) (*CampaignInfo, error)
}

type CompanyRegistry interface {
	CompanyExists(ctx context.Context, id string) (bool, error)
}

// EmployeeRegistry exposes the hourly salary table for cost computation.
// Users without a row cost nothing.
type EmployeeRegistry interface {
	HourlyRates(ctx context.Context, userIDs []string) (map[string]float64, error)
}

// Registries bundles every external read interface the core depends on.
type Registries struct {
	Tasks     TaskRegistry
	Projects  ProjectRegistry
	Campaigns CampaignRegistry
	Companies CompanyRegistry
	Employees EmployeeRegistry
}

// NewGormRegistries reads all registries from the shared database.
func NewGormRegistries(db *gorm.DB) Registries {
	g := &gormRegistries{db: db}
	return Registries{
		Tasks:     g,
		Projects:  g,
		Campaigns: g,
		Companies: g,
		Employees: g,
	}
}

type gormRegistries struct {
	db *gorm.DB
}

func (g *gormRegistries) Task(ctx context.Context, id string) (*TaskInfo, error) {
	var task models.Task
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &TaskInfo{ID: task.ID, Title: task.Title, ProjectID: task.ProjectID}, nil
}

func (g *gormRegistries) ProjectTaskIDs(ctx context.Context, projectID string) ([]string, error) {
	var ids []string
	err := g.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("project_id = ?", projectID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (g *gormRegistries) Project(ctx context.Context, id string) (*ProjectInfo, error) {
	var project models.Project
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ProjectInfo{ID: project.ID, Name: project.Name, CompanyID: project.CompanyID, Value: project.Value}, nil
}

func (g *gormRegistries) Campaign(ctx context.Context, id string) (*CampaignInfo, error) {
	var campaign models.Campaign
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&campaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &CampaignInfo{ID: campaign.ID, Name: campaign.Name, CompanyID: campaign.CompanyID}, nil
}

func (g *gormRegistries) CompanyExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).
		Model(&models.Company{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (g *gormRegistries) HourlyRates(ctx context.Context, userIDs []string) (map[string]float64, error) {
	rates := make(map[string]float64, len(userIDs))
	if len(userIDs) == 0 {
		return rates, nil
	}
	var employees []models.Employee
	err := g.db.WithContext(ctx).
		Where("id IN ?", userIDs).
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	for _, emp := range employees {
		rates[emp.ID] = emp.HourlySalary
	}
	return rates, nil
}
