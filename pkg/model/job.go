package model

// DefaultStatus is assigned when a job is created without an explicit status.
const DefaultStatus = "applied"

// Job represents a single job application. Every job is owned by exactly one
// user; UserID is fixed at creation and never changes.
type Job struct {
	ID          int64   `gorm:"column:id;primaryKey" json:"id"`
	Title       string  `gorm:"column:title;not null" json:"title"`
	Company     string  `gorm:"column:company;not null" json:"company"`
	Location    *string `gorm:"column:location" json:"location"`
	Status      string  `gorm:"column:status;not null" json:"status"`
	DateApplied *Date   `gorm:"column:date_applied;type:date" json:"date_applied"`
	Notes       *string `gorm:"column:notes" json:"notes"`
	UserID      int64   `gorm:"column:user_id;not null" json:"user_id"`
}

func (Job) TableName() string {
	return "jobs"
}
