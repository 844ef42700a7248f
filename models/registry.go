package models

// Registry entities. Companies, projects, campaigns, tasks and employees are
// managed elsewhere; the time-tracking core only reads them, through the
// registry interfaces in the services package.

// Task belongs to a project; task-associated time rolls up to that project.
type Task struct {
	ID        string `gorm:"type:varchar(50);primaryKey" json:"id"`
	Title     string `gorm:"type:varchar(100)" json:"title"`
	ProjectID string `gorm:"type:varchar(50);index:idx_tasks_project" json:"projectId"`
}

// Project carries the contracted value used for profit figures.
type Project struct {
	ID        string   `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name      string   `gorm:"type:varchar(100)" json:"name"`
	CompanyID string   `gorm:"type:varchar(50)" json:"companyId"`
	Value     *float64 `json:"value,omitempty"`
}

type Campaign struct {
	ID        string `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(100)" json:"name"`
	CompanyID string `gorm:"type:varchar(50)" json:"companyId"`
}

type Company struct {
	ID   string `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100)" json:"name"`
}

// Employee maps a user to the hourly salary used for cost computation.
type Employee struct {
	ID           string  `gorm:"type:varchar(50);primaryKey" json:"id"`
	HourlySalary float64 `gorm:"default:0" json:"hourlySalary"`
}
