package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/grievance-portal/internal"
	"github.com/frahmantamala/grievance-portal/internal/auth"
	"github.com/frahmantamala/grievance-portal/internal/core/common/validation"
)

type Service struct {
	repo       RepositoryAPI
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = internal.DefaultBCryptCost
	}
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a citizen account.
func (s *Service) Register(ctx context.Context, dto RegisterDTO) (*User, error) {
	return s.create(ctx, dto, internal.RoleCitizen)
}

// EnsureAdmin creates an admin account unless the email is already taken.
// The bool reports whether a new account was created.
func (s *Service) EnsureAdmin(ctx context.Context, dto RegisterDTO) (*User, bool, error) {
	u, err := s.create(ctx, dto, internal.RoleAdmin)
	if err != nil {
		if errors.Is(err, internal.ErrEmailAlreadyRegistered) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return u, true, nil
}

func (s *Service) create(ctx context.Context, dto RegisterDTO, role string) (*User, error) {
	dto.Normalize()
	if verr := validation.Struct(dto); verr != nil {
		return nil, verr
	}

	exists, err := s.repo.ExistsByEmail(ctx, dto.Email)
	if err != nil {
		return nil, fmt.Errorf("user: check email: %w", err)
	}
	if exists {
		return nil, internal.ErrEmailAlreadyRegistered
	}

	hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("user: hash password: %w", err)
	}

	u := &User{
		Name:         dto.Name,
		Email:        dto.Email,
		Phone:        dto.Phone,
		PasswordHash: hash,
		Address:      dto.Address,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	model := ToDataModel(u)
	if err := s.repo.Create(ctx, model); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, internal.ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("user: create: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", model.ID, "role", role)
	return FromDataModel(model), nil
}
