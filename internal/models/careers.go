package models

import "time"

// JobApplication is a careers-form submission
type JobApplication struct {
	ID           string    `json:"id,omitempty"`
	FullName     string    `json:"fullName"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Position     string    `json:"position"`
	Experience   string    `json:"experience"`
	Availability string    `json:"availability"`
	ReceivedAt   time.Time `json:"receivedAt,omitempty"`
}
