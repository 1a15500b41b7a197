package complaint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/grievance-portal/internal"
	"github.com/frahmantamala/grievance-portal/internal/core/common/validation"
	"github.com/frahmantamala/grievance-portal/internal/core/events"
	"github.com/frahmantamala/grievance-portal/internal/priority"
)

// Service handles complaint business logic
type Service struct {
	repo      RepositoryAPI
	statsRepo StatsRepositoryAPI
	metrics   *Metrics
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// Publisher receives complaint lifecycle events after they are committed.
type Publisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// NewService creates a new complaint service
func NewService(repo RepositoryAPI, statsRepo StatsRepositoryAPI, metrics *Metrics, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		statsRepo: statsRepo,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// WithPublisher attaches an event publisher. Publish failures are logged and
// never fail the operation that produced the event.
func (s *Service) WithPublisher(p Publisher) *Service {
	s.publisher = p
	return s
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "complaint event not delivered", "event_type", event.EventType(), "error", err)
	}
}

// Submit validates and stores a new complaint owned by userID.
func (s *Service) Submit(ctx context.Context, userID int64, dto CreateComplaintDTO) (*Complaint, error) {
	dto.Normalize()
	if verr := validation.Struct(dto); verr != nil {
		s.logger.WarnContext(ctx, "complaint validation failed", "user_id", userID, "error", verr.GetDetailedMessage())
		return nil, verr
	}

	c := &Complaint{
		UserID:      userID,
		Title:       dto.Title,
		Description: dto.Description,
		Category:    dto.Category,
		Location:    dto.Location,
		Priority:    priority.Classify(dto.Description, dto.Category).String(),
		Status:      StatusPending,
		CreatedAt:   s.now(),
	}

	model := ToDataModel(c)
	if err := s.repo.Create(ctx, model); err != nil {
		return nil, fmt.Errorf("complaint: create: %w", err)
	}
	c.ID = model.ID

	s.metrics.Submitted.WithLabelValues(c.Priority).Inc()
	s.logger.InfoContext(ctx, "complaint submitted",
		"complaint_id", c.ID,
		"user_id", userID,
		"priority", c.Priority)
	s.publish(ctx, events.NewComplaintSubmittedEvent(c.ID, userID, c.Category, c.Priority, c.CreatedAt))

	return c, nil
}

// ListForUser returns the caller's complaints, newest first.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]*Complaint, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("complaint: list for user: %w", err)
	}

	out := make([]*Complaint, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromDataModel(r))
	}
	return out, nil
}

// GetForUser returns complaint id only if userID owns it. A complaint owned
// by someone else is reported as not found.
func (s *Service) GetForUser(ctx context.Context, userID, id int64) (*Complaint, error) {
	row, err := s.repo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("complaint: get: %w", err)
	}
	return FromDataModel(row), nil
}

// ListAll returns every complaint with submitter details, newest first.
func (s *Service) ListAll(ctx context.Context) ([]*AdminComplaint, error) {
	rows, err := s.repo.ListAllWithSubmitter(ctx)
	if err != nil {
		return nil, fmt.Errorf("complaint: list all: %w", err)
	}

	out := make([]*AdminComplaint, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromSubmitterModel(r))
	}
	return out, nil
}

// UpdateStatus sets a new status. Any status may follow any other and
// updated_at is refreshed even when the status does not change.
func (s *Service) UpdateStatus(ctx context.Context, id int64, dto UpdateStatusDTO) error {
	if verr := validation.Struct(dto); verr != nil {
		return verr
	}
	if !ValidStatus(dto.Status) {
		return internal.ErrInvalidComplaintStatus.WithDetails(internal.ValidationErrors{
			Errors: []internal.ValidationError{{
				Field:   "status",
				Message: fmt.Sprintf("status must be one of %q", validStatuses),
				Code:    string(internal.ErrCodeInvalidComplaintStatus),
			}},
		})
	}

	now := s.now()
	if err := s.repo.UpdateStatus(ctx, id, dto.Status, now); err != nil {
		if errors.Is(err, ErrNotFound) {
			return internal.ErrComplaintNotFound
		}
		return fmt.Errorf("complaint: update status: %w", err)
	}

	s.metrics.StatusUpdates.WithLabelValues(dto.Status).Inc()
	s.logger.InfoContext(ctx, "complaint status updated", "complaint_id", id, "status", dto.Status)
	s.publish(ctx, events.NewComplaintStatusChangedEvent(id, dto.Status, now))
	return nil
}

// Stats returns the admin dashboard counters.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	st, err := s.statsRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("complaint: stats: %w", err)
	}
	return FromStatsModel(st), nil
}
