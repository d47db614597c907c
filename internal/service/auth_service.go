package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/milsabores/bakery-api/internal/auth"
	"github.com/milsabores/bakery-api/internal/config"
	"github.com/milsabores/bakery-api/internal/domain"
	"github.com/milsabores/bakery-api/internal/events"
	"github.com/milsabores/bakery-api/internal/observability"
	"github.com/milsabores/bakery-api/internal/repository"
	apperrors "github.com/milsabores/bakery-api/pkg/util"
)

// Failure messages. Login failures share one message so callers cannot tell
// an unknown email from a wrong password.
const (
	msgInvalidCredentials = "invalid credentials"
	msgEmailRegistered    = "email already registered"
)

// RegisterInput carries the profile fields accepted at registration.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Birthdate time.Time
	Role      domain.Role
}

// AuthService coordinates registration and login flows. Passwords are hashed
// here, before any repository call; the store never sees plaintext.
type AuthService struct {
	users      repository.UserRepository
	resets     repository.PasswordResetRepository
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int
	resetTTL   time.Duration
}

// AuthDependencies encapsulates collaborator requirements for the auth service.
type AuthDependencies struct {
	UserRepo          repository.UserRepository
	PasswordResetRepo repository.PasswordResetRepository
	Dispatcher        events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		resets:     deps.PasswordResetRepo,
		dispatcher: deps.Dispatcher,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
		resetTTL:   time.Duration(cfg.Auth.PasswordResetTTLMinutes) * time.Minute,
	}
}

// Register creates a new account. The existence pre-check is advisory; the
// users.email unique constraint is the backstop, and a violation there is
// reported as the same conflict.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict(msgEmailRegistered, nil)
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	role := input.Role
	if !role.Valid() {
		role = domain.RoleUser
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Birthdate:    input.Birthdate,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict(msgEmailRegistered, nil)
		}
		return nil, apperrors.NewInternalError(err)
	}

	observability.UsersRegisteredTotal.WithLabelValues(string(user.Role)).Inc()
	s.publish(ctx, events.EventUserRegistered, events.UserRegisteredPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	return user, nil
}

// Login authenticates a user and mints an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmailWithPassword(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			observability.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, "", time.Time{}, apperrors.NewUnauthorized(msgInvalidCredentials)
		}
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		observability.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, "", time.Time{}, apperrors.NewUnauthorized(msgInvalidCredentials)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	observability.LoginsTotal.WithLabelValues("success").Inc()
	user.PasswordHash = ""
	return user, token, exp, nil
}

// ValidateCredentials checks an email/password pair without minting a token.
// It returns (nil, nil) on any credential mismatch, letting the caller decide
// the error.
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmailWithPassword(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, apperrors.NewInternalError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, nil
	}
	user.PasswordHash = ""
	return user, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return apperrors.MapError(err)
	}
	// Default reads exclude the hash; fetch it explicitly for the check.
	withHash, err := s.users.GetByEmailWithPassword(ctx, user.Email)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := auth.ComparePassword(withHash.PasswordHash, currentPassword); err != nil {
		return apperrors.NewUnauthorized(msgInvalidCredentials)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	withHash.PasswordHash = hash
	if err := s.users.Update(ctx, withHash); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// RequestPasswordReset persists a reset token for the given email. The result
// is identical whether or not the account exists, to avoid enumeration; the
// token is returned only for delivery by the notification layer.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*repository.PasswordResetToken, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, apperrors.NewInternalError(err)
	}

	token := &repository.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return token, nil
}

// ConfirmPasswordReset validates the reset token and updates the password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, tokenStr, newPassword string) error {
	token, err := s.resets.GetByToken(ctx, tokenStr)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthorized("invalid or expired reset token")
		}
		return apperrors.NewInternalError(err)
	}
	if token.UsedAt != nil || time.Now().After(token.ExpiresAt) {
		return apperrors.NewUnauthorized("invalid or expired reset token")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		return apperrors.MapError(err)
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return apperrors.NewInternalError(err)
	}
	return s.resets.MarkUsed(ctx, token.ID)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, typ events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      typ,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
