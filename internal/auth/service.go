package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/frahmantamala/grievance-portal/internal"
	"github.com/frahmantamala/grievance-portal/internal/core/common/validation"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Service is the main auth service with dependencies
type Service struct {
	repo           RepositoryAPI
	tokenGenerator TokenGeneratorAPI
}

// NewService creates a new auth service
func NewService(repo RepositoryAPI, tokenGen TokenGeneratorAPI) *Service {
	return &Service{
		repo:           repo,
		tokenGenerator: tokenGen,
	}
}

// NewJWTTokenGenerator creates a new JWT token generator. A zero ttl falls
// back to the default token lifetime.
func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl == 0 {
		ttl = internal.DefaultAccessTokenDuration
	}
	return &JWTTokenGenerator{
		Secret: []byte(secret),
		TTL:    ttl,
	}
}

// Authenticate checks citizen credentials. The issued token carries no role.
func (s *Service) Authenticate(ctx context.Context, dto LoginDTO) (*LoginResult, error) {
	acct, err := s.checkCredentials(ctx, dto, internal.ErrInvalidCredentials)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenGenerator.GenerateAccessToken(acct.ID, acct.Email, "")
	if err != nil {
		return nil, fmt.Errorf("auth: sign token: %w", err)
	}
	return &LoginResult{Token: token, Account: acct}, nil
}

// AuthenticateAdmin only accepts accounts whose stored role is admin.
func (s *Service) AuthenticateAdmin(ctx context.Context, dto LoginDTO) (*LoginResult, error) {
	acct, err := s.checkCredentials(ctx, dto, ErrInvalidAdminCredentials)
	if err != nil {
		return nil, err
	}
	if acct.Role != internal.RoleAdmin {
		return nil, ErrInvalidAdminCredentials
	}

	token, err := s.tokenGenerator.GenerateAccessToken(acct.ID, acct.Email, internal.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("auth: sign token: %w", err)
	}
	return &LoginResult{Token: token, Account: acct}, nil
}

func (s *Service) checkCredentials(ctx context.Context, dto LoginDTO, invalid *internal.AppError) (*Account, error) {
	if verr := validation.Struct(dto); verr != nil {
		return nil, verr
	}

	acct, err := s.repo.GetUserByEmail(ctx, dto.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, invalid
		}
		return nil, fmt.Errorf("auth: lookup user: %w", err)
	}

	if err := VerifyPassword(acct.PasswordHash, dto.Password); err != nil {
		return nil, invalid
	}
	return acct, nil
}

// ValidateAccessToken validates access token and returns claims
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// ResolvePrincipal turns validated claims into the request principal.
// The user must still exist and a role claim must match the stored role.
func (s *Service) ResolvePrincipal(ctx context.Context, claims *Claims) (*internal.User, error) {
	acct, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, internal.ErrInvalidToken
		}
		return nil, fmt.Errorf("auth: load principal: %w", err)
	}

	role := internal.RoleCitizen
	if claims.Role != "" {
		if claims.Role != acct.Role {
			return nil, internal.ErrInvalidToken
		}
		role = claims.Role
	}

	return &internal.User{ID: acct.ID, Email: acct.Email, Role: role}, nil
}

// GenerateAccessToken creates a new access token
func (j *JWTTokenGenerator) GenerateAccessToken(userID int64, email, role string) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.FormatInt(userID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// ValidateToken validates a JWT token and returns claims
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return j.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired.WithCause(err)
		}
		return nil, internal.ErrInvalidToken.WithCause(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return nil, internal.ErrInvalidToken
	}
	return claims, nil
}

// HashPassword creates a bcrypt hash of the password
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
