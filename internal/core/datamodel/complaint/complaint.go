package complaint

import "time"

type Complaint struct {
	ID          int64      `gorm:"primaryKey"`
	UserID      int64      `gorm:"column:user_id;not null;index"`
	Title       string     `gorm:"column:title;size:255;not null"`
	Description string     `gorm:"column:description;not null"`
	Category    string     `gorm:"column:category;size:100;not null"`
	Location    *string    `gorm:"column:location;size:255"`
	Priority    string     `gorm:"column:priority;size:10;not null;default:Low;index"`
	Status      string     `gorm:"column:status;size:20;not null;default:Pending;index"`
	AssignedTo  *int64     `gorm:"column:assigned_to"`
	SLADeadline *time.Time `gorm:"column:sla_deadline"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt   *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
	ResolvedAt  *time.Time `gorm:"column:resolved_at"`
}

func (Complaint) TableName() string {
	return "complaints"
}

// ComplaintWithSubmitter is a complaint row joined with the submitting user.
type ComplaintWithSubmitter struct {
	Complaint `gorm:"embedded"`
	UserName  string `gorm:"column:user_name"`
	UserEmail string `gorm:"column:user_email"`
	UserPhone string `gorm:"column:user_phone"`
}

// Stats holds the aggregate counters shown on the admin dashboard.
type Stats struct {
	TotalUsers      int64 `db:"total_users"`
	TotalComplaints int64 `db:"total_complaints"`
	Pending         int64 `db:"pending"`
	InProgress      int64 `db:"in_progress"`
	Resolved        int64 `db:"resolved"`
	Escalated       int64 `db:"escalated"`
	HighPriority    int64 `db:"high_priority"`
	MediumPriority  int64 `db:"medium_priority"`
	LowPriority     int64 `db:"low_priority"`
}
