package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainError_PassesThroughDomainErrors(t *testing.T) {
	original := NewConflict("email already registered", nil)

	mapped := ToDomainError(original)
	if mapped.Code != "CONFLICT" || mapped.HTTPStatus != http.StatusConflict {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
	if mapped.Message != "email already registered" {
		t.Fatalf("unexpected message: %q", mapped.Message)
	}
}

func TestToDomainError_NoRowsBecomesNotFound(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	if mapped.Code != "NOT_FOUND" || mapped.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
}

func TestToDomainError_UnknownBecomesInternal(t *testing.T) {
	cause := errors.New("connection refused")

	mapped := ToDomainError(cause)
	if mapped.Code != "INTERNAL_ERROR" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
	if mapped.Message != "internal server error" {
		t.Fatalf("internal failures must not leak details, got %q", mapped.Message)
	}
	if !errors.Is(mapped, cause) {
		t.Fatalf("expected wrapped cause to be preserved")
	}
}

func TestToDomainError_Nil(t *testing.T) {
	if mapped := ToDomainError(nil); mapped != nil {
		t.Fatalf("expected nil, got %+v", mapped)
	}
}

func TestNewInternalError_HidesCauseText(t *testing.T) {
	err := NewInternalError(errors.New("password hash mismatch at row 3"))

	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got %T", err)
	}
	if de.Message != "internal server error" {
		t.Fatalf("unexpected message: %q", de.Message)
	}
}
