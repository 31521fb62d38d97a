package repository

import (
	"context"

	"coachapi/internal/model"
)

// ScheduleRepository defines data access for class-schedule entries.
type ScheduleRepository interface {
	// Create inserts a new schedule entry. The caller provides ID and CreatedDate.
	Create(ctx context.Context, sched *model.ClassSchedule) (*model.ClassSchedule, error)

	// List returns all schedule entries. No ordering is applied.
	List(ctx context.Context) ([]model.ClassSchedule, error)

	// Delete removes an entry by ID. Unlike PDF deletion, callers need to
	// distinguish a miss here, so it returns sql.ErrNoRows when no row matched.
	Delete(ctx context.Context, id string) error
}
