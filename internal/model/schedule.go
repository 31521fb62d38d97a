package model

import "time"

// ClassSchedule is one entry on the class-schedule board.
// Time and DayOfWeek are free-form display strings ("10:00 AM", "Monday");
// the API applies no day-name or overlap validation.
type ClassSchedule struct {
	ID          string    `json:"id"`
	ExamType    string    `json:"exam_type"`
	Subject     string    `json:"subject"`
	DayOfWeek   string    `json:"day_of_week"`
	Time        string    `json:"time"`
	IsOnline    bool      `json:"is_online"`
	MeetingLink string    `json:"meeting_link,omitempty"`
	CreatedDate time.Time `json:"created_date"`
}
