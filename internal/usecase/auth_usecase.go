package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/crypto"
	"go-jobboard-backend/pkg/token"

	"github.com/google/uuid"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Service
}

// NewAuthUsecase wires the local-mode credential flow. The token service is
// nil on remote-mode deployments, where signup/login are proxied to the peer
// and these operations are never routed.
func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Service) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func (u *authUsecase) Register(ctx context.Context, name, email, password, role string) (*domain.User, *domain.TokenPair, error) {
	if u.tokens == nil {
		return nil, nil, apperror.BadRequest("This deployment does not issue credentials locally")
	}
	if role != domain.RoleCandidate && role != domain.RoleEmployer {
		return nil, nil, apperror.BadRequest("Role must be candidate or employer")
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        NormalizeEmail(email),
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Email uniqueness is enforced at the store level; the repo maps the
	// unique violation to a conflict.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := u.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, *domain.TokenPair, error) {
	if u.tokens == nil {
		return nil, nil, apperror.BadRequest("This deployment does not issue credentials locally")
	}

	user, err := u.userRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, nil, err
	}
	// Same message for unknown email and wrong password: no account probing.
	if user == nil {
		return nil, nil, apperror.Unauthorized("Invalid email or password")
	}
	if err := crypto.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, nil, apperror.Unauthorized("Invalid email or password")
	}

	pair, err := u.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh implements rotation-on-use: the presented refresh token is verified
// and replaced by a brand-new pair. A previously rotated token fails the
// signature/expiry check like any other invalid token; there is no token
// family tracking, so the caller must re-authenticate from scratch.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if u.tokens == nil {
		return nil, apperror.BadRequest("This deployment does not issue credentials locally")
	}

	claims, err := u.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid or expired refresh token")
	}

	// Re-read the user so the new pair carries the current role/email.
	user, err := u.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthorized("Invalid or expired refresh token")
	}

	return u.issuePair(user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *authUsecase) issuePair(user *domain.User) (*domain.TokenPair, error) {
	access, refresh, err := u.tokens.IssuePair(user.ID, user.Name, user.Email, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.TokenPair{Access: access, Refresh: refresh}, nil
}

// NormalizeEmail lowercases and trims an email address. Uniqueness in the
// store is case-insensitive, so every lookup and write goes through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
