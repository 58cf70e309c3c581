package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Role string

const (
	RoleNone       Role = ""
	RoleStudent    Role = "student"
	RoleDepartment Role = "department"
	RoleAdmin      Role = "admin"
)

// HomePath is where a signed-in account of this role lands.
func (r Role) HomePath() string {
	switch r {
	case RoleStudent:
		return "/student"
	case RoleDepartment:
		return "/department"
	case RoleAdmin:
		return "/admin"
	default:
		return "/"
	}
}

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleDepartment || r == RoleAdmin
}

type Student struct {
	ID              uuid.UUID `json:"id"`
	StudentID       string    `json:"student_id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Department      string    `json:"department"`
	Phone           string    `json:"phone,omitempty"`
	CourseCode      string    `json:"course_code,omitempty"`
	YearLevel       string    `json:"year_level,omitempty"`
	ClearanceReason string    `json:"clearance_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

const (
	OfficerRoleDepartment = "department_officer"
	OfficerRoleAccounts   = "accounts"
)

type DepartmentUser struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AdminUser struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is the resolved identity of a signed-in account. Exactly one of the
// three variants is set, matching Role; all are nil when Role is RoleNone.
type Profile struct {
	Role       Role            `json:"role"`
	Student    *Student        `json:"student,omitempty"`
	Department *DepartmentUser `json:"department,omitempty"`
	Admin      *AdminUser      `json:"admin,omitempty"`
}

func (p Profile) None() bool {
	return p.Role == RoleNone
}
