package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	httptransport "github.com/milsabores/bakery-api/internal/api/http"
	"github.com/milsabores/bakery-api/internal/api/http/handlers"
	"github.com/milsabores/bakery-api/internal/auth"
	"github.com/milsabores/bakery-api/internal/config"
	"github.com/milsabores/bakery-api/internal/domain"
	"github.com/milsabores/bakery-api/internal/repository"
	"github.com/milsabores/bakery-api/internal/service"
)

type memUserRepo struct {
	byEmail map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*domain.User{}}
}

func (m *memUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := m.byEmail[user.Email]; exists {
		return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	}
	user.ID = fmt.Sprintf("u-%d", len(m.byEmail)+1)
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	clone := *user
	m.byEmail[user.Email] = &clone
	return nil
}

func (m *memUserRepo) Update(_ context.Context, user *domain.User) error {
	for email, existing := range m.byEmail {
		if existing.ID == user.ID {
			delete(m.byEmail, email)
			clone := *user
			m.byEmail[user.Email] = &clone
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range m.byEmail {
		if user.ID == id {
			clone := *user
			clone.PasswordHash = ""
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	clone.PasswordHash = ""
	return &clone, nil
}

func (m *memUserRepo) GetByEmailWithPassword(_ context.Context, email string) (*domain.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

type memResetRepo struct {
	byToken map[string]*repository.PasswordResetToken
}

func (m *memResetRepo) Create(_ context.Context, token *repository.PasswordResetToken) error {
	token.ID = fmt.Sprintf("t-%d", len(m.byToken)+1)
	clone := *token
	m.byToken[token.Token] = &clone
	return nil
}

func (m *memResetRepo) GetByToken(_ context.Context, tokenStr string) (*repository.PasswordResetToken, error) {
	token, ok := m.byToken[tokenStr]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *token
	return &clone, nil
}

func (m *memResetRepo) MarkUsed(_ context.Context, id string) error {
	for _, token := range m.byToken {
		if token.ID == id {
			now := time.Now()
			token.UsedAt = &now
		}
	}
	return nil
}

func newAuthApp(t *testing.T) (*fiber.App, *memUserRepo) {
	t.Helper()

	users := newMemUserRepo()
	resets := &memResetRepo{byToken: map[string]*repository.PasswordResetToken{}}
	svc := service.NewAuthService(config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret",
			AccessTokenTTLMinutes:   60,
			PasswordResetTTLMinutes: 30,
			BcryptCost:              4,
		},
	}, service.AuthDependencies{UserRepo: users, PasswordResetRepo: resets})

	handler := handlers.NewAuthHandler(svc)
	guard := auth.NewMiddleware(svc.TokenManager(), users)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), 0)
	app.Post("/auth/register", handler.Register)
	app.Post("/auth/login", handler.Login)
	app.Get("/auth/profile", guard.Handle, handler.Profile)
	app.Post("/auth/password/reset/request", handler.RequestPasswordReset)
	return app, users
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshaling payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp, body
}

func registerBody(email string) map[string]any {
	return map[string]any{
		"name":      "Ada",
		"email":     email,
		"password":  "abcdef",
		"birthdate": "1990-05-20",
	}
}

func TestRegisterEndpoint(t *testing.T) {
	app, users := newAuthApp(t)

	resp, body := postJSON(t, app, "/auth/register", registerBody("a@a.com"))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%v)", resp.StatusCode, body)
	}
	if body["message"] != "user registered" {
		t.Fatalf("unexpected body: %v", body)
	}
	stored := users.byEmail["a@a.com"]
	if stored == nil || stored.PasswordHash == "" || stored.PasswordHash == "abcdef" {
		t.Fatalf("expected hashed password in store, got %+v", stored)
	}
}

func TestRegisterEndpoint_NormalizesEmail(t *testing.T) {
	app, users := newAuthApp(t)

	resp, _ := postJSON(t, app, "/auth/register", registerBody("  Ada@A.COM "))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if _, ok := users.byEmail["ada@a.com"]; !ok {
		t.Fatalf("expected email stored lowercased and trimmed, store: %v", users.byEmail)
	}

	resp, _ = postJSON(t, app, "/auth/login", map[string]any{"email": "ADA@a.com", "password": "abcdef"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login with differently-cased email must succeed, got %d", resp.StatusCode)
	}
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	app, _ := newAuthApp(t)

	if resp, _ := postJSON(t, app, "/auth/register", registerBody("a@a.com")); resp.StatusCode != http.StatusCreated {
		t.Fatalf("first registration failed with %d", resp.StatusCode)
	}

	resp, body := postJSON(t, app, "/auth/register", registerBody("a@a.com"))
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
	errObj, _ := body["error"].(map[string]any)
	if errObj["code"] != "CONFLICT" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestRegisterEndpoint_Validation(t *testing.T) {
	app, _ := newAuthApp(t)

	payload := registerBody("a@a.com")
	payload["password"] = "abc"
	resp, body := postJSON(t, app, "/auth/register", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for short password, got %d", resp.StatusCode)
	}
	errObj, _ := body["error"].(map[string]any)
	if errObj["code"] != "VALIDATION_FAILED" {
		t.Fatalf("unexpected error body: %v", body)
	}

	payload = registerBody("not-an-email")
	resp, _ = postJSON(t, app, "/auth/register", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", resp.StatusCode)
	}

	payload = registerBody("a@a.com")
	payload["birthdate"] = "20-05-1990"
	resp, _ = postJSON(t, app, "/auth/register", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad birthdate, got %d", resp.StatusCode)
	}
}

func TestLoginEndpoint(t *testing.T) {
	app, _ := newAuthApp(t)

	if resp, _ := postJSON(t, app, "/auth/register", registerBody("a@a.com")); resp.StatusCode != http.StatusCreated {
		t.Fatalf("registration failed with %d", resp.StatusCode)
	}

	resp, body := postJSON(t, app, "/auth/login", map[string]any{"email": "a@a.com", "password": "abcdef"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", resp.StatusCode, body)
	}
	token, _ := body["accessToken"].(string)
	if token == "" {
		t.Fatalf("expected accessToken in response, got %v", body)
	}
	userObj, _ := body["user"].(map[string]any)
	if userObj["email"] != "a@a.com" {
		t.Fatalf("unexpected user in response: %v", body)
	}
	if _, leaked := userObj["password_hash"]; leaked {
		t.Fatalf("password hash leaked in login response")
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	profileResp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if profileResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from profile with fresh token, got %d", profileResp.StatusCode)
	}
}

func TestLoginEndpoint_FailuresAreUniform(t *testing.T) {
	app, _ := newAuthApp(t)

	if resp, _ := postJSON(t, app, "/auth/register", registerBody("a@a.com")); resp.StatusCode != http.StatusCreated {
		t.Fatalf("registration failed with %d", resp.StatusCode)
	}

	respUnknown, bodyUnknown := postJSON(t, app, "/auth/login", map[string]any{"email": "x@a.com", "password": "abcdef"})
	respWrong, bodyWrong := postJSON(t, app, "/auth/login", map[string]any{"email": "a@a.com", "password": "nope"})

	if respUnknown.StatusCode != http.StatusUnauthorized || respWrong.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", respUnknown.StatusCode, respWrong.StatusCode)
	}

	msgUnknown := bodyUnknown["error"].(map[string]any)["message"]
	msgWrong := bodyWrong["error"].(map[string]any)["message"]
	if msgUnknown != msgWrong {
		t.Fatalf("failure messages must match, got %q vs %q", msgUnknown, msgWrong)
	}
	if msgUnknown != "invalid credentials" {
		t.Fatalf("unexpected failure message %q", msgUnknown)
	}
}

func TestPasswordResetRequest_DoesNotRevealAccounts(t *testing.T) {
	app, _ := newAuthApp(t)

	if resp, _ := postJSON(t, app, "/auth/register", registerBody("a@a.com")); resp.StatusCode != http.StatusCreated {
		t.Fatalf("registration failed with %d", resp.StatusCode)
	}

	respKnown, bodyKnown := postJSON(t, app, "/auth/password/reset/request", map[string]any{"email": "a@a.com"})
	respUnknown, bodyUnknown := postJSON(t, app, "/auth/password/reset/request", map[string]any{"email": "x@a.com"})

	if respKnown.StatusCode != http.StatusOK || respUnknown.StatusCode != http.StatusOK {
		t.Fatalf("expected 200/200, got %d/%d", respKnown.StatusCode, respUnknown.StatusCode)
	}
	if bodyKnown["message"] != bodyUnknown["message"] {
		t.Fatalf("responses must be identical for known and unknown emails, got %v vs %v", bodyKnown, bodyUnknown)
	}
}
