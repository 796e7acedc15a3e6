package employee

import (
	"strings"
	"time"
)

// Status is the lifecycle state of an employee.
type Status string

const (
	StatusActive     Status = "Active"
	StatusInactive   Status = "Inactive"
	StatusOnVacation Status = "OnVacation"
)

// ParseStatus maps free text onto a Status. Matching is lenient by
// design: localized substrings are searched case-insensitively and
// anything unrecognized falls back to Active.
func ParseStatus(text string) Status {
	t := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.Contains(t, "inactivo"):
		return StatusInactive
	case strings.Contains(t, "vacaciones"):
		return StatusOnVacation
	case strings.Contains(t, "activo"):
		return StatusActive
	}
	return StatusActive
}

// DisplayName returns the localized name used in spreadsheet exports.
// These names re-parse to the same Status, so an exported file can be
// imported back without losing state.
func (s Status) DisplayName() string {
	switch s {
	case StatusInactive:
		return "Inactivo"
	case StatusOnVacation:
		return "De Vacaciones"
	default:
		return "Activo"
	}
}

type Employee struct {
	ID                  int64
	FirstName           string
	LastName            string
	DocumentNumber      string
	Email               string
	PositionID          int64
	Salary              float64
	JoinDate            time.Time
	DateOfBirth         *time.Time
	Address             *string
	ContactPhone        *string
	Status              Status
	ProfessionalProfile *string
	EducationLevelID    *int64
	DepartmentID        int64
}

// Detail is an Employee joined with the names of its dimension rows.
type Detail struct {
	Employee
	PositionName       string
	DepartmentName     string
	EducationLevelName string
}
