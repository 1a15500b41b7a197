package postgres

import (
	"context"

	"github.com/frahmantamala/grievance-portal/internal"
	"github.com/frahmantamala/grievance-portal/internal/complaint"
	complaintDatamodel "github.com/frahmantamala/grievance-portal/internal/core/datamodel/complaint"
	"github.com/frahmantamala/grievance-portal/internal/priority"
	"github.com/jmoiron/sqlx"
)

const statsQuery = `
SELECT
	(SELECT COUNT(*) FROM users WHERE role = ?) AS total_users,
	COUNT(*) AS total_complaints,
	COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending,
	COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS in_progress,
	COALESCE(SUM(CASE WHEN status IN (?, ?) THEN 1 ELSE 0 END), 0) AS resolved,
	COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS escalated,
	COALESCE(SUM(CASE WHEN priority = ? THEN 1 ELSE 0 END), 0) AS high_priority,
	COALESCE(SUM(CASE WHEN priority = ? THEN 1 ELSE 0 END), 0) AS medium_priority,
	COALESCE(SUM(CASE WHEN priority = ? THEN 1 ELSE 0 END), 0) AS low_priority
FROM complaints`

// StatsRepository computes dashboard counters in a single round trip.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Stats(ctx context.Context) (*complaintDatamodel.Stats, error) {
	var st complaintDatamodel.Stats
	err := r.db.GetContext(ctx, &st, r.db.Rebind(statsQuery),
		internal.RoleCitizen,
		complaint.StatusPending,
		complaint.StatusInProgress,
		complaint.StatusResolved, complaint.StatusClosed,
		complaint.StatusEscalated,
		priority.High.String(),
		priority.Medium.String(),
		priority.Low.String(),
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
