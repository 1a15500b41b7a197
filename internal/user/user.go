package user

import (
	"context"
	"errors"
	"time"

	userDatamodel "github.com/frahmantamala/grievance-portal/internal/core/datamodel/user"
)

type RepositoryAPI interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u *userDatamodel.User) error
}

type ServiceAPI interface {
	Register(ctx context.Context, dto RegisterDTO) (*User, error)
	EnsureAdmin(ctx context.Context, dto RegisterDTO) (*User, bool, error)
}

// User represents the internal user model
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Address      *string   `json:"address,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// ErrEmailTaken is returned by repositories when the unique email index rejects an insert.
var ErrEmailTaken = errors.New("email already exists")

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		Address:      u.Address,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		Address:      u.Address,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}
