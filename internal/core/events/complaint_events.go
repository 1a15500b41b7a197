package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeComplaintSubmitted     = "complaint.submitted"
	EventTypeComplaintStatusChanged = "complaint.status_changed"
)

type ComplaintSubmittedEvent struct {
	BaseEvent
	ComplaintID int64  `json:"complaint_id"`
	UserID      int64  `json:"user_id"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

func NewComplaintSubmittedEvent(complaintID, userID int64, category, priority string, at time.Time) *ComplaintSubmittedEvent {
	return &ComplaintSubmittedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.NewString(),
			Type:      EventTypeComplaintSubmitted,
			Timestamp: at,
		},
		ComplaintID: complaintID,
		UserID:      userID,
		Category:    category,
		Priority:    priority,
	}
}

type ComplaintStatusChangedEvent struct {
	BaseEvent
	ComplaintID int64  `json:"complaint_id"`
	Status      string `json:"status"`
}

func NewComplaintStatusChangedEvent(complaintID int64, status string, at time.Time) *ComplaintStatusChangedEvent {
	return &ComplaintStatusChangedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.NewString(),
			Type:      EventTypeComplaintStatusChanged,
			Timestamp: at,
		},
		ComplaintID: complaintID,
		Status:      status,
	}
}
