package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/talentosplus/talentos-backend-go/internal/domain/dimension"
	"github.com/talentosplus/talentos-backend-go/internal/domain/employee"
	"github.com/talentosplus/talentos-backend-go/internal/pkg/validator"
)

// TransactionManager scopes a duplicate check and the write it guards
// into one transaction.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(context.Context) error) error
}

type noopTxManager struct{}

func (noopTxManager) WithinTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// EmailSender delivers the welcome notification after registration.
type EmailSender interface {
	SendWelcome(to, firstName string) error
}

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
	resolver     dimension.Resolver
	emailService EmailSender
	tx           TransactionManager
}

func NewEmployeeService(
	employeeRepo employee.Repository,
	resolver dimension.Resolver,
	emailService EmailSender,
	tx TransactionManager,
) employee.Service {
	if tx == nil {
		tx = noopTxManager{}
	}
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		resolver:     resolver,
		emailService: emailService,
		tx:           tx,
	}
}

// GetAll implements employee.Service.
func (s *EmployeeServiceImpl) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	details, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, mapToResponse(d))
	}
	return responses, nil
}

// GetByID implements employee.Service.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	detail, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToResponse(detail), nil
}

// GetByEmail implements employee.Service.
func (s *EmployeeServiceImpl) GetByEmail(ctx context.Context, email string) (employee.EmployeeResponse, error) {
	detail, err := s.employeeRepo.GetByEmail(ctx, email)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToResponse(detail), nil
}

// Create implements employee.Service. Duplicate-conflict and validation
// errors pass through unwrapped; anything unexpected is wrapped into the
// user-facing message. The welcome email is attempted after the commit
// and its failure never fails the creation.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	email := employee.SanitizeEmail(req.Email)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if exists, err := s.employeeRepo.ExistsByEmail(ctx, email, 0); err != nil {
			return err
		} else if exists {
			return &employee.DuplicateError{
				Field:   "email",
				Message: fmt.Sprintf("Ya existe un empleado con el correo '%s'.", email),
			}
		}

		if exists, err := s.employeeRepo.ExistsByDocument(ctx, req.DocumentNumber, 0); err != nil {
			return err
		} else if exists {
			return &employee.DuplicateError{
				Field:   "document_number",
				Message: fmt.Sprintf("Ya existe un empleado con el documento '%s'.", req.DocumentNumber),
			}
		}

		entity, err := s.buildEmployee(ctx, req, email)
		if err != nil {
			return err
		}

		_, err = s.employeeRepo.Create(ctx, entity)
		return err
	})
	if err != nil {
		if isPassthrough(err) {
			return err
		}
		return fmt.Errorf("Error al crear empleado: %w. Por favor verifica que todos los campos estén correctos.", err)
	}

	if err := s.emailService.SendWelcome(email, req.FirstName); err != nil {
		// Email failure must not roll back or fail the creation.
		slog.Warn("welcome email failed", "to", email, "error", err)
	}

	return nil
}

// Update implements employee.Service.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id int64, req employee.CreateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	email := employee.SanitizeEmail(req.Email)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
			return err
		}

		if exists, err := s.employeeRepo.ExistsByEmail(ctx, email, id); err != nil {
			return err
		} else if exists {
			return &employee.DuplicateError{
				Field:   "email",
				Message: fmt.Sprintf("Ya existe otro empleado con el correo '%s'.", email),
			}
		}

		if exists, err := s.employeeRepo.ExistsByDocument(ctx, req.DocumentNumber, id); err != nil {
			return err
		} else if exists {
			return &employee.DuplicateError{
				Field:   "document_number",
				Message: fmt.Sprintf("Ya existe otro empleado con el documento '%s'.", req.DocumentNumber),
			}
		}

		entity, err := s.buildEmployee(ctx, req, email)
		if err != nil {
			return err
		}
		entity.ID = id

		return s.employeeRepo.Update(ctx, entity)
	})
	if err != nil {
		if isPassthrough(err) {
			return err
		}
		return fmt.Errorf("Error al actualizar empleado: %w. Por favor verifica que todos los campos estén correctos.", err)
	}

	return nil
}

// Delete implements employee.Service. Deleting an id that does not
// exist is a silent no-op.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.employeeRepo.Delete(ctx, id)
}

// buildEmployee resolves dimension names and normalizes dates for a
// create/update request.
func (s *EmployeeServiceImpl) buildEmployee(ctx context.Context, req employee.CreateEmployeeRequest, email string) (employee.Employee, error) {
	positionID, err := s.resolver.ResolvePosition(ctx, req.Position)
	if err != nil {
		return employee.Employee{}, err
	}

	var educationLevelID *int64
	if !validator.IsEmpty(req.EducationLevel) {
		id, err := s.resolver.ResolveEducationLevel(ctx, req.EducationLevel)
		if err != nil {
			return employee.Employee{}, err
		}
		educationLevelID = &id
	}

	joinDate := time.Now().UTC()
	if d, ok := validator.IsValidDate(req.JoinDate); ok {
		joinDate = toUTCDate(d)
	}

	var dob *time.Time
	if d, ok := validator.IsValidDate(req.DateOfBirth); ok {
		utc := toUTCDate(d)
		dob = &utc
	}

	return employee.Employee{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		DocumentNumber:      req.DocumentNumber,
		Email:               email,
		PositionID:          positionID,
		Salary:              req.Salary,
		JoinDate:            joinDate,
		DateOfBirth:         dob,
		Address:             optString(req.Address),
		ContactPhone:        optString(req.ContactPhone),
		Status:              employee.ParseStatus(req.Status),
		ProfessionalProfile: optString(req.ProfessionalProfile),
		EducationLevelID:    educationLevelID,
		DepartmentID:        req.DepartmentID,
	}, nil
}

// isPassthrough reports whether err carries its own user-facing meaning
// and must not be wrapped into the generic create/update message.
func isPassthrough(err error) bool {
	var dup *employee.DuplicateError
	if errors.As(err, &dup) {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return true
	}
	return errors.Is(err, employee.ErrEmployeeNotFound)
}

func mapToResponse(d employee.Detail) employee.EmployeeResponse {
	var dobStr *string
	if d.DateOfBirth != nil {
		s := d.DateOfBirth.Format("2006-01-02")
		dobStr = &s
	}

	educationLevel := d.EducationLevelName
	if educationLevel == "" {
		educationLevel = "N/A"
	}

	return employee.EmployeeResponse{
		ID:                  d.ID,
		FirstName:           d.FirstName,
		LastName:            d.LastName,
		DocumentNumber:      d.DocumentNumber,
		Email:               d.Email,
		Position:            d.PositionName,
		Salary:              d.Salary,
		JoinDate:            d.JoinDate.Format("2006-01-02"),
		DateOfBirth:         dobStr,
		Address:             d.Address,
		Status:              string(d.Status),
		ProfessionalProfile: d.ProfessionalProfile,
		EducationLevel:      educationLevel,
		ContactPhone:        d.ContactPhone,
		DepartmentID:        d.DepartmentID,
		DepartmentName:      d.DepartmentName,
	}
}

func optString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func toUTCDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
