package postgres

import (
	"context"
	"errors"

	"github.com/frahmantamala/grievance-portal/internal/auth"
	usermodel "github.com/frahmantamala/grievance-portal/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*auth.Account, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *Repository) GetUserByID(ctx context.Context, id int64) (*auth.Account, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *Repository) first(ctx context.Context, query string, arg interface{}) (*auth.Account, error) {
	var m usermodel.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	return &auth.Account{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
	}, nil
}
