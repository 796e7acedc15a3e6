package employee

import (
	"github.com/talentosplus/talentos-backend-go/internal/pkg/validator"
)

// CreateEmployeeRequest is shared by create and update. Position and
// EducationLevel are free-text names resolved (or lazily created) by the
// service; the department is referenced by id and must already exist.
type CreateEmployeeRequest struct {
	FirstName           string  `json:"first_name"`
	LastName            string  `json:"last_name"`
	DocumentNumber      string  `json:"document_number"`
	Email               string  `json:"email"`
	Position            string  `json:"position"`
	Salary              float64 `json:"salary"`
	JoinDate            string  `json:"join_date"`     // YYYY-MM-DD
	DateOfBirth         string  `json:"date_of_birth"` // YYYY-MM-DD, optional
	Address             string  `json:"address"`
	Status              string  `json:"status"`
	ProfessionalProfile string  `json:"professional_profile"`
	EducationLevel      string  `json:"education_level"`
	ContactPhone        string  `json:"contact_phone"`
	DepartmentID        int64   `json:"department_id"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last name is required",
		})
	}

	if validator.IsEmpty(r.DocumentNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "document_number",
			Message: "document number is required",
		})
	}

	// Relaxed on purpose: accented local parts are allowed and sanitized
	// by the service, so only the @ and . structure is checked here.
	if !validator.IsPlausibleEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must contain @ and .",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if r.DepartmentID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                  int64   `json:"id"`
	FirstName           string  `json:"first_name"`
	LastName            string  `json:"last_name"`
	DocumentNumber      string  `json:"document_number"`
	Email               string  `json:"email"`
	Position            string  `json:"position"`
	Salary              float64 `json:"salary"`
	JoinDate            string  `json:"join_date"`
	DateOfBirth         *string `json:"date_of_birth,omitempty"`
	Address             *string `json:"address,omitempty"`
	Status              string  `json:"status"`
	ProfessionalProfile *string `json:"professional_profile,omitempty"`
	EducationLevel      string  `json:"education_level"`
	ContactPhone        *string `json:"contact_phone,omitempty"`
	DepartmentID        int64   `json:"department_id"`
	DepartmentName      string  `json:"department_name"`
}

// ImportResult summarizes a bulk import. Bulk operations never fail
// outright: malformed input surfaces as entries in Errors.
type ImportResult struct {
	SuccessCount int      `json:"success_count"`
	ErrorCount   int      `json:"error_count"`
	Errors       []string `json:"errors"`
}
