package auth

import (
	"context"
	"errors"
	"time"

	"github.com/frahmantamala/grievance-portal/internal"
	"github.com/golang-jwt/jwt/v5"
)

type ServiceAPI interface {
	Authenticate(ctx context.Context, dto LoginDTO) (*LoginResult, error)
	AuthenticateAdmin(ctx context.Context, dto LoginDTO) (*LoginResult, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ResolvePrincipal(ctx context.Context, claims *Claims) (*internal.User, error)
}

type RepositoryAPI interface {
	GetUserByEmail(ctx context.Context, email string) (*Account, error)
	GetUserByID(ctx context.Context, id int64) (*Account, error)
}

type TokenGeneratorAPI interface {
	GenerateAccessToken(userID int64, email, role string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Account is a stored user as seen by the credential layer.
type Account struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         string
}

type LoginResult struct {
	Token   string
	Account *Account
}

// Claims represents JWT token claims. Role is only set on admin tokens.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type JWTTokenGenerator struct {
	Secret []byte
	TTL    time.Duration
}

var (
	ErrUserNotFound = errors.New("user not found")

	ErrInvalidAdminCredentials = internal.NewUnauthorizedError("Invalid admin credentials", internal.ErrCodeInvalidCredentials)
)
