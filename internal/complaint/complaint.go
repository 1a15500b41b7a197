package complaint

import (
	"context"
	"errors"
	"time"

	complaintDatamodel "github.com/frahmantamala/grievance-portal/internal/core/datamodel/complaint"
)

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusClosed     = "Closed"
	StatusEscalated  = "Escalated"
)

var validStatuses = []string{StatusPending, StatusInProgress, StatusResolved, StatusClosed, StatusEscalated}

// ValidStatus reports whether s is one of the five lifecycle statuses.
// Matching is exact; "pending" is not a valid status.
func ValidStatus(s string) bool {
	for _, v := range validStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func Statuses() []string {
	out := make([]string, len(validStatuses))
	copy(out, validStatuses)
	return out
}

type RepositoryAPI interface {
	Create(ctx context.Context, c *complaintDatamodel.Complaint) error
	ListByUser(ctx context.Context, userID int64) ([]*complaintDatamodel.Complaint, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*complaintDatamodel.Complaint, error)
	ListAllWithSubmitter(ctx context.Context) ([]*complaintDatamodel.ComplaintWithSubmitter, error)
	UpdateStatus(ctx context.Context, id int64, status string, updatedAt time.Time) error
}

type StatsRepositoryAPI interface {
	Stats(ctx context.Context) (*complaintDatamodel.Stats, error)
}

type ServiceAPI interface {
	Submit(ctx context.Context, userID int64, dto CreateComplaintDTO) (*Complaint, error)
	ListForUser(ctx context.Context, userID int64) ([]*Complaint, error)
	GetForUser(ctx context.Context, userID, id int64) (*Complaint, error)
	ListAll(ctx context.Context) ([]*AdminComplaint, error)
	UpdateStatus(ctx context.Context, id int64, dto UpdateStatusDTO) error
	Stats(ctx context.Context) (*Stats, error)
}

type Complaint struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Location    *string    `json:"location"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	AssignedTo  *int64     `json:"assigned_to"`
	SLADeadline *time.Time `json:"sla_deadline"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
}

// AdminComplaint is a complaint together with its submitter's contact details.
type AdminComplaint struct {
	Complaint
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserPhone string `json:"user_phone"`
}

type Stats struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalComplaints int64 `json:"totalComplaints"`
	Pending         int64 `json:"pending"`
	InProgress      int64 `json:"inProgress"`
	Resolved        int64 `json:"resolved"`
	Escalated       int64 `json:"escalated"`
	HighPriority    int64 `json:"highPriority"`
	MediumPriority  int64 `json:"mediumPriority"`
	LowPriority     int64 `json:"lowPriority"`
}

var ErrNotFound = errors.New("complaint not found")

func ToDataModel(c *Complaint) *complaintDatamodel.Complaint {
	return &complaintDatamodel.Complaint{
		ID:          c.ID,
		UserID:      c.UserID,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Location:    c.Location,
		Priority:    c.Priority,
		Status:      c.Status,
		AssignedTo:  c.AssignedTo,
		SLADeadline: c.SLADeadline,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		ResolvedAt:  c.ResolvedAt,
	}
}

func FromDataModel(c *complaintDatamodel.Complaint) *Complaint {
	return &Complaint{
		ID:          c.ID,
		UserID:      c.UserID,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Location:    c.Location,
		Priority:    c.Priority,
		Status:      c.Status,
		AssignedTo:  c.AssignedTo,
		SLADeadline: c.SLADeadline,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		ResolvedAt:  c.ResolvedAt,
	}
}

func FromSubmitterModel(c *complaintDatamodel.ComplaintWithSubmitter) *AdminComplaint {
	return &AdminComplaint{
		Complaint: *FromDataModel(&c.Complaint),
		UserName:  c.UserName,
		UserEmail: c.UserEmail,
		UserPhone: c.UserPhone,
	}
}

func FromStatsModel(s *complaintDatamodel.Stats) *Stats {
	return &Stats{
		TotalUsers:      s.TotalUsers,
		TotalComplaints: s.TotalComplaints,
		Pending:         s.Pending,
		InProgress:      s.InProgress,
		Resolved:        s.Resolved,
		Escalated:       s.Escalated,
		HighPriority:    s.HighPriority,
		MediumPriority:  s.MediumPriority,
		LowPriority:     s.LowPriority,
	}
}
