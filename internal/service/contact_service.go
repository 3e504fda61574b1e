package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"ecolearn/internal/models"
	"ecolearn/internal/repository"
)

// ContactService accepts contact-form submissions. Messages are stored
// first and delivery is attempted afterwards, so a mail outage never
// rejects a submission.
type ContactService struct {
	contactRepo *repository.ContactRepository
	email       *EmailService
}

// NewContactService creates a new contact service
func NewContactService(contactRepo *repository.ContactRepository, email *EmailService) *ContactService {
	return &ContactService{contactRepo: contactRepo, email: email}
}

// Submit stores the message and attempts to forward it by email.
// Delivery failure is logged, not returned: the message stays queued as
// unsent for a later retry.
func (s *ContactService) Submit(ctx context.Context, name, email, subject, body string) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := s.contactRepo.CreateMessage(msg); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	if err := s.email.SendContactNotification(ctx, msg); err != nil {
		log.Printf("Failed to deliver contact message %s: %v", msg.ID, err)
		return msg, nil
	}

	if s.email.IsEnabled() {
		if err := s.contactRepo.MarkMessageSent(msg.ID); err != nil {
			log.Printf("Failed to mark contact message %s as sent: %v", msg.ID, err)
		} else {
			msg.Sent = true
		}
	}

	return msg, nil
}

// RetryUnsent attempts delivery for queued messages; intended for a
// periodic task. Returns the number delivered.
func (s *ContactService) RetryUnsent(ctx context.Context, limit int) (int, error) {
	if !s.email.IsEnabled() {
		return 0, nil
	}

	pending, err := s.contactRepo.GetUnsentMessages(limit)
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, msg := range pending {
		if err := s.email.SendContactNotification(ctx, &msg); err != nil {
			log.Printf("Retry failed for contact message %s: %v", msg.ID, err)
			continue
		}
		if err := s.contactRepo.MarkMessageSent(msg.ID); err != nil {
			log.Printf("Failed to mark contact message %s as sent: %v", msg.ID, err)
			continue
		}
		delivered++
	}
	return delivered, nil
}
