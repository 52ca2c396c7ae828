package models

import "time"

// EmployeeRole identifies an employee's position
type EmployeeRole string

const (
	RoleServer  EmployeeRole = "Server"
	RoleChef    EmployeeRole = "Chef"
	RoleManager EmployeeRole = "Manager"
	RoleDriver  EmployeeRole = "Driver"
)

// Shift is one scheduled work block
type Shift struct {
	ID    string `json:"id"`
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Employee is a staff member of the time-clock portal. The PIN is a
// plaintext demo credential, not a security boundary, and is never
// serialized in responses.
type Employee struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Role        EmployeeRole `json:"role"`
	PIN         string       `json:"-"`
	IsClockedIn bool         `json:"isClockedIn"`
	LastClockIn *time.Time   `json:"lastClockIn,omitempty"`
	Schedule    []Shift      `json:"schedule"`
}
