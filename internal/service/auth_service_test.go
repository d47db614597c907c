package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/milsabores/bakery-api/internal/auth"
	"github.com/milsabores/bakery-api/internal/config"
	"github.com/milsabores/bakery-api/internal/domain"
	"github.com/milsabores/bakery-api/internal/repository"
	apperrors "github.com/milsabores/bakery-api/pkg/util"
)

type stubUserRepo struct {
	byEmail     map[string]*domain.User
	createCalls int
	createErr   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: map[string]*domain.User{}}
}

func (s *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	s.createCalls++
	if s.createErr != nil {
		return s.createErr
	}
	if _, exists := s.byEmail[user.Email]; exists {
		return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	}
	user.ID = fmt.Sprintf("u-%d", len(s.byEmail)+1)
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	clone := *user
	s.byEmail[user.Email] = &clone
	return nil
}

func (s *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	for email, existing := range s.byEmail {
		if existing.ID == user.ID {
			delete(s.byEmail, email)
			clone := *user
			s.byEmail[user.Email] = &clone
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (s *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range s.byEmail {
		if user.ID == id {
			clone := *user
			clone.PasswordHash = ""
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	clone.PasswordHash = ""
	return &clone, nil
}

func (s *stubUserRepo) GetByEmailWithPassword(_ context.Context, email string) (*domain.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

type stubResetRepo struct {
	byToken map[string]*repository.PasswordResetToken
}

func newStubResetRepo() *stubResetRepo {
	return &stubResetRepo{byToken: map[string]*repository.PasswordResetToken{}}
}

func (s *stubResetRepo) Create(_ context.Context, token *repository.PasswordResetToken) error {
	token.ID = fmt.Sprintf("t-%d", len(s.byToken)+1)
	token.CreatedAt = time.Now()
	clone := *token
	s.byToken[token.Token] = &clone
	return nil
}

func (s *stubResetRepo) GetByToken(_ context.Context, tokenStr string) (*repository.PasswordResetToken, error) {
	token, ok := s.byToken[tokenStr]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *token
	return &clone, nil
}

func (s *stubResetRepo) MarkUsed(_ context.Context, id string) error {
	for _, token := range s.byToken {
		if token.ID == id {
			now := time.Now()
			token.UsedAt = &now
			return nil
		}
	}
	return nil
}

func testAuthConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret",
			AccessTokenTTLMinutes:   60,
			PasswordResetTTLMinutes: 30,
			BcryptCost:              4,
		},
	}
}

func newTestAuthService(users *stubUserRepo, resets *stubResetRepo) *AuthService {
	return NewAuthService(testAuthConfig(), AuthDependencies{
		UserRepo:          users,
		PasswordResetRepo: resets,
	})
}

func domainErrCode(t *testing.T, err error) string {
	t.Helper()
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got %T: %v", err, err)
	}
	return de.Code
}

func TestRegisterThenLogin(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestAuthService(users, newStubResetRepo())
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterInput{
		Name:     "Ada",
		Email:    "a@a.com",
		Password: "abcdef",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if registered.ID == "" {
		t.Fatalf("expected assigned ID")
	}
	if registered.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %q", registered.Role)
	}

	stored := users.byEmail["a@a.com"]
	if stored.PasswordHash == "" || stored.PasswordHash == "abcdef" {
		t.Fatalf("stored hash must not be empty or plaintext, got %q", stored.PasswordHash)
	}
	if err := auth.ComparePassword(stored.PasswordHash, "abcdef"); err != nil {
		t.Fatalf("stored hash does not verify against original password: %v", err)
	}

	user, token, exp, err := svc.Login(ctx, "a@a.com", "abcdef")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.PasswordHash != "" {
		t.Fatalf("login result must not carry the password hash")
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", exp)
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if claims.Subject != registered.ID {
		t.Fatalf("token sub %q does not match user ID %q", claims.Subject, registered.ID)
	}
	if claims.Email != "a@a.com" {
		t.Fatalf("unexpected token email %q", claims.Email)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("unexpected token role %q", claims.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestAuthService(users, newStubResetRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "a@a.com", Password: "abcdef"}); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	createsAfterFirst := users.createCalls

	_, err := svc.Register(ctx, RegisterInput{Name: "Eve", Email: "a@a.com", Password: "another"})
	if code := domainErrCode(t, err); code != "CONFLICT" {
		t.Fatalf("expected CONFLICT, got %q", code)
	}
	if users.createCalls != createsAfterFirst {
		t.Fatalf("duplicate registration must not reach Create")
	}
}

func TestRegisterUniqueViolationBackstop(t *testing.T) {
	users := newStubUserRepo()
	users.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	svc := newTestAuthService(users, newStubResetRepo())

	_, err := svc.Register(context.Background(), RegisterInput{Name: "Ada", Email: "a@a.com", Password: "abcdef"})
	if code := domainErrCode(t, err); code != "CONFLICT" {
		t.Fatalf("expected CONFLICT from unique violation, got %q", code)
	}
}

func TestRegisterInvalidRoleDefaultsToUser(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestAuthService(users, newStubResetRepo())

	registered, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ada",
		Email:    "a@a.com",
		Password: "abcdef",
		Role:     domain.Role("superuser"),
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if registered.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %q", registered.Role)
	}
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestAuthService(users, newStubResetRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "a@a.com", Password: "abcdef"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, _, _, errUnknown := svc.Login(ctx, "nobody@a.com", "abcdef")
	_, _, _, errWrongPass := svc.Login(ctx, "a@a.com", "wrong")

	var deUnknown, deWrongPass *apperrors.DomainError
	if !errors.As(errUnknown, &deUnknown) || !errors.As(errWrongPass, &deWrongPass) {
		t.Fatalf("expected DomainError from both failures, got %v / %v", errUnknown, errWrongPass)
	}
	if deUnknown.Code != "UNAUTHORIZED" || deWrongPass.Code != "UNAUTHORIZED" {
		t.Fatalf("expected UNAUTHORIZED from both failures, got %q / %q", deUnknown.Code, deWrongPass.Code)
	}
	if deUnknown.Message != deWrongPass.Message {
		t.Fatalf("unknown-email and wrong-password must be indistinguishable, got %q vs %q",
			deUnknown.Message, deWrongPass.Message)
	}
}

func TestValidateCredentials(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestAuthService(users, newStubResetRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "a@a.com", Password: "abcdef"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	user, err := svc.ValidateCredentials(ctx, "a@a.com", "abcdef")
	if err != nil {
		t.Fatalf("ValidateCredentials returned error: %v", err)
	}
	if user == nil || user.Email != "a@a.com" {
		t.Fatalf("expected matching user, got %+v", user)
	}
	if user.PasswordHash != "" {
		t.Fatalf("result must not carry the password hash")
	}

	user, err = svc.ValidateCredentials(ctx, "a@a.com", "wrong")
	if err != nil || user != nil {
		t.Fatalf("expected (nil, nil) on mismatch, got (%+v, %v)", user, err)
	}
	user, err = svc.ValidateCredentials(ctx, "nobody@a.com", "abcdef")
	if err != nil || user != nil {
		t.Fatalf("expected (nil, nil) for unknown email, got (%+v, %v)", user, err)
	}
}

func TestChangePassword(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestAuthService(users, newStubResetRepo())
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "a@a.com", Password: "abcdef"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	err = svc.ChangePassword(ctx, registered.ID, "wrong", "newpass1")
	if code := domainErrCode(t, err); code != "UNAUTHORIZED" {
		t.Fatalf("expected UNAUTHORIZED for wrong current password, got %q", code)
	}

	if err := svc.ChangePassword(ctx, registered.ID, "abcdef", "newpass1"); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}

	if _, _, _, err := svc.Login(ctx, "a@a.com", "abcdef"); err == nil {
		t.Fatalf("old password must no longer authenticate")
	}
	if _, _, _, err := svc.Login(ctx, "a@a.com", "newpass1"); err != nil {
		t.Fatalf("new password must authenticate: %v", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	users := newStubUserRepo()
	resets := newStubResetRepo()
	svc := newTestAuthService(users, resets)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "a@a.com", Password: "abcdef"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	token, err := svc.RequestPasswordReset(ctx, "nobody@a.com")
	if err != nil || token != nil {
		t.Fatalf("unknown email must yield (nil, nil), got (%+v, %v)", token, err)
	}

	token, err = svc.RequestPasswordReset(ctx, "a@a.com")
	if err != nil {
		t.Fatalf("RequestPasswordReset returned error: %v", err)
	}
	if token == nil || token.Token == "" {
		t.Fatalf("expected a reset token, got %+v", token)
	}

	if err := svc.ConfirmPasswordReset(ctx, token.Token, "resetpass"); err != nil {
		t.Fatalf("ConfirmPasswordReset returned error: %v", err)
	}
	if _, _, _, err := svc.Login(ctx, "a@a.com", "resetpass"); err != nil {
		t.Fatalf("reset password must authenticate: %v", err)
	}

	err = svc.ConfirmPasswordReset(ctx, token.Token, "again")
	if code := domainErrCode(t, err); code != "UNAUTHORIZED" {
		t.Fatalf("expected UNAUTHORIZED for reused token, got %q", code)
	}

	err = svc.ConfirmPasswordReset(ctx, "no-such-token", "again")
	if code := domainErrCode(t, err); code != "UNAUTHORIZED" {
		t.Fatalf("expected UNAUTHORIZED for unknown token, got %q", code)
	}
}

func TestConfirmPasswordResetExpired(t *testing.T) {
	users := newStubUserRepo()
	resets := newStubResetRepo()
	svc := newTestAuthService(users, resets)
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "a@a.com", Password: "abcdef"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	expired := &repository.PasswordResetToken{
		UserID:    registered.ID,
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	if err := resets.Create(ctx, expired); err != nil {
		t.Fatalf("seeding expired token: %v", err)
	}

	err = svc.ConfirmPasswordReset(ctx, "expired-token", "newpass")
	if code := domainErrCode(t, err); code != "UNAUTHORIZED" {
		t.Fatalf("expected UNAUTHORIZED for expired token, got %q", code)
	}
}
