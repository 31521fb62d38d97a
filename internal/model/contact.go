package model

import "time"

// ContactMessage is one submission from the public contact form.
// Messages are write-once: the API never updates or deletes them.
type ContactMessage struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	CourseInterested string    `json:"course_interested"`
	Message          string    `json:"message,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}
