package models

import (
	"time"
)

// TimeEntry is the system of record for tracked time. An entry with no
// EndTime is open, meaning a timer is running for it.
type TimeEntry struct {
	ID        string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string     `gorm:"type:varchar(50);index:idx_time_entries_user_start;uniqueIndex:idx_one_open_per_user" json:"userId"`
	StartTime time.Time  `gorm:"index:idx_time_entries_user_start" json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	// Open is true while the timer runs and NULL once the entry closes.
	// MySQL and SQLite both allow any number of NULLs under a unique index,
	// so the composite index rejects a second open row per user while leaving
	// closed rows unconstrained.
	Open         *bool       `gorm:"uniqueIndex:idx_one_open_per_user" json:"-"`
	Description  string      `gorm:"type:text" json:"description"`
	Association  Association `gorm:"embedded" json:"association"`
	CompanyID    string      `gorm:"type:varchar(50)" json:"companyId,omitempty"`
	Billable     bool        `gorm:"default:false" json:"isBillable"`
	Finalized    bool        `gorm:"default:false" json:"finalized"`
	CreatedAt    time.Time   `json:"createdAt"`
	LastModified time.Time   `json:"lastModified"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

// IsOpen reports whether the entry still represents a running timer.
func (e *TimeEntry) IsOpen() bool {
	return e.EndTime == nil
}

// TrackedDuration is the recorded span for a closed entry, zero while open.
// Elapsed time of a running timer is a display concern and is always
// recomputed by clients from StartTime.
func (e *TimeEntry) TrackedDuration() time.Duration {
	if e.EndTime == nil {
		return 0
	}
	return e.EndTime.Sub(e.StartTime)
}

// Hours is the fractional hour count of a closed entry.
func (e *TimeEntry) Hours() float64 {
	return e.TrackedDuration().Hours()
}
