package complaint

import "strings"

// CreateComplaintDTO is the body of POST /api/complaints.
type CreateComplaintDTO struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required,max=100"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=255"`
}

func (d *CreateComplaintDTO) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Category = strings.TrimSpace(d.Category)
	if d.Location != nil {
		loc := strings.TrimSpace(*d.Location)
		if loc == "" {
			d.Location = nil
		} else {
			d.Location = &loc
		}
	}
}

// UpdateStatusDTO is the body of PUT /api/admin/complaints/{id}/status.
type UpdateStatusDTO struct {
	Status string `json:"status" validate:"required"`
}

type SubmitResponse struct {
	Message     string `json:"message"`
	ComplaintID int64  `json:"complaint_id"`
	Priority    string `json:"priority"`
}

type ListResponse struct {
	Complaints []*Complaint `json:"complaints"`
}

type AdminListResponse struct {
	Complaints []*AdminComplaint `json:"complaints"`
}

type DetailResponse struct {
	Complaint *Complaint `json:"complaint"`
}

type StatsResponse struct {
	Stats *Stats `json:"stats"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
