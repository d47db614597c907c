package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/milsabores/bakery-api/internal/domain"
	"github.com/milsabores/bakery-api/internal/events"
	"github.com/milsabores/bakery-api/internal/repository"
	apperrors "github.com/milsabores/bakery-api/pkg/util"
)

// ContactInput describes a contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// ContactService stores contact messages and notifies listeners.
type ContactService struct {
	contacts   repository.ContactRepository
	dispatcher events.Dispatcher
}

// NewContactService builds the service.
func NewContactService(contacts repository.ContactRepository, dispatcher events.Dispatcher) *ContactService {
	return &ContactService{contacts: contacts, dispatcher: dispatcher}
}

// Submit stores a message and publishes a contact_received event.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Body:    input.Body,
	}
	if err := s.contacts.Create(ctx, msg); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventContactReceived,
			Timestamp: time.Now(),
			Payload: events.ContactReceivedPayload{
				MessageID: msg.ID,
				Email:     msg.Email,
				Subject:   msg.Subject,
			},
		})
	}
	return msg, nil
}

// ListMessages returns stored submissions, most recent first (admin operation).
func (s *ContactService) ListMessages(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	msgs, err := s.contacts.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return msgs, nil
}
