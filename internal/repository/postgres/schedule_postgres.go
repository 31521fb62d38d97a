package postgres

import (
	"context"
	"database/sql"

	"coachapi/internal/model"
	"coachapi/internal/repository"
)

// SchedulePostgres is a PostgreSQL implementation of repository.ScheduleRepository.
type SchedulePostgres struct {
	db *sql.DB
}

// NewSchedulePostgres creates a new SchedulePostgres repository.
func NewSchedulePostgres(db *sql.DB) *SchedulePostgres {
	return &SchedulePostgres{db: db}
}

var _ repository.ScheduleRepository = (*SchedulePostgres)(nil)

// Create inserts a new schedule row and returns the stored record.
func (r *SchedulePostgres) Create(ctx context.Context, sched *model.ClassSchedule) (*model.ClassSchedule, error) {
	const q = `
		INSERT INTO class_schedules (id, exam_type, subject, day_of_week, class_time, is_online, meeting_link, created_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, exam_type, subject, day_of_week, class_time, is_online, meeting_link, created_date
	`
	row := r.db.QueryRowContext(ctx, q,
		sched.ID,
		sched.ExamType,
		sched.Subject,
		sched.DayOfWeek,
		sched.Time,
		sched.IsOnline,
		sched.MeetingLink,
		sched.CreatedDate,
	)
	var out model.ClassSchedule
	if err := row.Scan(
		&out.ID,
		&out.ExamType,
		&out.Subject,
		&out.DayOfWeek,
		&out.Time,
		&out.IsOnline,
		&out.MeetingLink,
		&out.CreatedDate,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns all schedule entries in storage order; no ORDER BY is applied.
func (r *SchedulePostgres) List(ctx context.Context) ([]model.ClassSchedule, error) {
	const q = `
		SELECT id, exam_type, subject, day_of_week, class_time, is_online, meeting_link, created_date
		FROM class_schedules
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ClassSchedule, 0)
	for rows.Next() {
		var s model.ClassSchedule
		if err := rows.Scan(
			&s.ID,
			&s.ExamType,
			&s.Subject,
			&s.DayOfWeek,
			&s.Time,
			&s.IsOnline,
			&s.MeetingLink,
			&s.CreatedDate,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a schedule entry by ID. Returns sql.ErrNoRows when no row matched
// so the service can report the miss.
func (r *SchedulePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM class_schedules WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
