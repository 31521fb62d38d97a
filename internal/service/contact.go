package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coachapi/internal/model"
	"coachapi/internal/repository"
)

// ContactSubmission carries the public contact-form fields.
type ContactSubmission struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	CourseInterested string `json:"course_interested"`
	Message          string `json:"message"`
}

// ContactService defines the use cases for contact messages.
type ContactService interface {
	// Submit assigns an id and timestamp and stores the message. Only field
	// presence is checked; phone/email formats are not validated.
	Submit(ctx context.Context, in ContactSubmission) (*model.ContactMessage, error)

	// List returns all messages, newest first.
	List(ctx context.Context) ([]model.ContactMessage, error)
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService constructs a new ContactService.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) Submit(ctx context.Context, in ContactSubmission) (*model.ContactMessage, error) {
	for field, v := range map[string]string{
		"name":              in.Name,
		"phone":             in.Phone,
		"email":             in.Email,
		"course_interested": in.CourseInterested,
	} {
		if v == "" {
			return nil, fmt.Errorf("%w: %s", ErrFieldRequired, field)
		}
	}

	msg := &model.ContactMessage{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Phone:            in.Phone,
		Email:            in.Email,
		CourseInterested: in.CourseInterested,
		Message:          in.Message,
		Timestamp:        time.Now().UTC(),
	}
	return s.repo.Create(ctx, msg)
}

func (s *contactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	return s.repo.List(ctx)
}
