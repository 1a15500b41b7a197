package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/frahmantamala/grievance-portal/internal/complaint"
	complaintDatamodel "github.com/frahmantamala/grievance-portal/internal/core/datamodel/complaint"
	"gorm.io/gorm"
)

type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Create(ctx context.Context, c *complaintDatamodel.Complaint) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ComplaintRepository) ListByUser(ctx context.Context, userID int64) ([]*complaintDatamodel.Complaint, error) {
	var rows []*complaintDatamodel.Complaint
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}

// GetByIDForUser filters on both id and owner so another user's complaint is
// indistinguishable from a missing one.
func (r *ComplaintRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*complaintDatamodel.Complaint, error) {
	var row complaintDatamodel.Complaint
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, complaint.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *ComplaintRepository) ListAllWithSubmitter(ctx context.Context) ([]*complaintDatamodel.ComplaintWithSubmitter, error) {
	var rows []*complaintDatamodel.ComplaintWithSubmitter
	err := r.db.WithContext(ctx).
		Table("complaints AS c").
		Select("c.*, u.name AS user_name, u.email AS user_email, u.phone AS user_phone").
		Joins("JOIN users u ON u.id = c.user_id").
		Order("c.created_at DESC").
		Order("c.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id int64, status string, updatedAt time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&complaintDatamodel.Complaint{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": updatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return complaint.ErrNotFound
	}
	return nil
}
