package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type ClearanceStatus string

const (
	StatusPending ClearanceStatus = "pending"
	StatusCleared ClearanceStatus = "cleared"
	StatusBlocked ClearanceStatus = "blocked"
)

func (s ClearanceStatus) Valid() bool {
	return s == StatusPending || s == StatusCleared || s == StatusBlocked
}

// ClearanceRecord is one department's decision about one student. At most one
// record exists per (student, department); absence means pending.
type ClearanceRecord struct {
	ID         uuid.UUID       `json:"id"`
	StudentID  uuid.UUID       `json:"student_id"`
	Department string          `json:"department"`
	Status     ClearanceStatus `json:"status"`
	Notes      *string         `json:"notes,omitempty"`
	ClearedBy  *string         `json:"cleared_by,omitempty"`
	ClearedAt  *time.Time      `json:"cleared_at,omitempty"`
	UpdatedBy  uuid.UUID       `json:"updated_by"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ClearanceEntry is one row of the derived, gap-filled clearance view. For the
// student view there is one entry per target department; for the officer view
// one entry per student, with Student set.
type ClearanceEntry struct {
	Department string          `json:"department"`
	Status     ClearanceStatus `json:"status"`
	Notes      *string         `json:"notes,omitempty"`
	ClearedBy  *string         `json:"cleared_by,omitempty"`
	ClearedAt  *time.Time      `json:"cleared_at,omitempty"`
	Student    *Student        `json:"student,omitempty"`
}

func (e ClearanceEntry) Cleared() bool {
	return e.Status == StatusCleared
}

// ClearanceView is the aggregation result, shaped by the viewer's role.
type ClearanceView struct {
	Role    Role             `json:"role"`
	Entries []ClearanceEntry `json:"entries"`
}

type Stats struct {
	TotalStudents     int `json:"total_students"`
	TotalStaff        int `json:"total_staff"`
	TotalDepartments  int `json:"total_departments"`
	PendingClearances int `json:"pending_clearances"`
}
