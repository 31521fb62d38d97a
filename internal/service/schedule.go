package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coachapi/internal/model"
	"coachapi/internal/repository"
)

// ScheduleInput carries the admin form fields for a new schedule entry.
type ScheduleInput struct {
	ExamType    string `json:"exam_type"`
	Subject     string `json:"subject"`
	DayOfWeek   string `json:"day_of_week"`
	Time        string `json:"time"`
	IsOnline    bool   `json:"is_online"`
	MeetingLink string `json:"meeting_link"`
}

// ScheduleService defines the use cases for the class-schedule board.
type ScheduleService interface {
	// Create assigns an id and creation timestamp and stores the entry.
	// Day names and overlapping slots are deliberately not validated.
	Create(ctx context.Context, in ScheduleInput) (*model.ClassSchedule, error)

	// List returns all entries with no ordering guarantee.
	List(ctx context.Context) ([]model.ClassSchedule, error)

	// Delete removes an entry by id; a miss reports ErrNotFound.
	Delete(ctx context.Context, id string) error
}

type scheduleService struct {
	repo repository.ScheduleRepository
}

// NewScheduleService constructs a new ScheduleService.
func NewScheduleService(repo repository.ScheduleRepository) ScheduleService {
	return &scheduleService{repo: repo}
}

func (s *scheduleService) Create(ctx context.Context, in ScheduleInput) (*model.ClassSchedule, error) {
	for field, v := range map[string]string{
		"exam_type":   in.ExamType,
		"subject":     in.Subject,
		"day_of_week": in.DayOfWeek,
		"time":        in.Time,
	} {
		if v == "" {
			return nil, fmt.Errorf("%w: %s", ErrFieldRequired, field)
		}
	}

	sched := &model.ClassSchedule{
		ID:          uuid.New().String(),
		ExamType:    in.ExamType,
		Subject:     in.Subject,
		DayOfWeek:   in.DayOfWeek,
		Time:        in.Time,
		IsOnline:    in.IsOnline,
		MeetingLink: in.MeetingLink,
		CreatedDate: time.Now().UTC(),
	}
	return s.repo.Create(ctx, sched)
}

func (s *scheduleService) List(ctx context.Context) ([]model.ClassSchedule, error) {
	return s.repo.List(ctx)
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
