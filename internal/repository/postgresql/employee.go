package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talentosplus/talentos-backend-go/internal/domain/employee"
	"github.com/talentosplus/talentos-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeDetailColumns = `
	e.id, e.first_name, e.last_name, e.document_number, e.email,
	e.position_id, e.salary, e.join_date, e.date_of_birth, e.address,
	e.contact_phone, e.status, e.professional_profile,
	e.education_level_id, e.department_id,
	p.name AS position_name,
	d.name AS department_name,
	COALESCE(el.name, '') AS education_level_name
`

const employeeDetailJoins = `
	FROM employees e
	JOIN positions p ON p.id = e.position_id
	JOIN departments d ON d.id = e.department_id
	LEFT JOIN education_levels el ON el.id = e.education_level_id
`

func scanEmployeeDetail(row pgx.Row) (employee.Detail, error) {
	var detail employee.Detail
	err := row.Scan(
		&detail.ID,
		&detail.FirstName,
		&detail.LastName,
		&detail.DocumentNumber,
		&detail.Email,
		&detail.PositionID,
		&detail.Salary,
		&detail.JoinDate,
		&detail.DateOfBirth,
		&detail.Address,
		&detail.ContactPhone,
		&detail.Status,
		&detail.ProfessionalProfile,
		&detail.EducationLevelID,
		&detail.DepartmentID,
		&detail.PositionName,
		&detail.DepartmentName,
		&detail.EducationLevelName,
	)
	return detail, err
}

// Create implements employee.Repository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			first_name, last_name, document_number, email, position_id,
			salary, join_date, date_of_birth, address, contact_phone,
			status, professional_profile, education_level_id, department_id,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		e.FirstName,
		e.LastName,
		e.DocumentNumber,
		e.Email,
		e.PositionID,
		e.Salary,
		e.JoinDate,
		e.DateOfBirth,
		e.Address,
		e.ContactPhone,
		e.Status,
		e.ProfessionalProfile,
		e.EducationLevelID,
		e.DepartmentID,
	).Scan(&e.ID)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

// Update implements employee.Repository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, document_number = $3, email = $4,
			position_id = $5, salary = $6, join_date = $7, date_of_birth = $8,
			address = $9, contact_phone = $10, status = $11,
			professional_profile = $12, education_level_id = $13,
			department_id = $14, updated_at = NOW()
		WHERE id = $15
	`

	commandTag, err := q.Exec(ctx, query,
		e.FirstName,
		e.LastName,
		e.DocumentNumber,
		e.Email,
		e.PositionID,
		e.Salary,
		e.JoinDate,
		e.DateOfBirth,
		e.Address,
		e.ContactPhone,
		e.Status,
		e.ProfessionalProfile,
		e.EducationLevelID,
		e.DepartmentID,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.Repository. Deleting an id that does not
// exist is a no-op, matching the service's idempotent delete contract.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

// GetByID implements employee.Repository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeDetailColumns + employeeDetailJoins + ` WHERE e.id = $1`

	detail, err := scanEmployeeDetail(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Detail{}, employee.ErrEmployeeNotFound
		}
		return employee.Detail{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return detail, nil
}

// GetByEmail implements employee.Repository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeDetailColumns + employeeDetailJoins + ` WHERE e.email = $1`

	detail, err := scanEmployeeDetail(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Detail{}, employee.ErrEmployeeNotFound
		}
		return employee.Detail{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return detail, nil
}

// GetAll implements employee.Repository.
func (r *employeeRepositoryImpl) GetAll(ctx context.Context) ([]employee.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeDetailColumns + employeeDetailJoins + ` ORDER BY e.id ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	defer rows.Close()

	var details []employee.Detail
	for rows.Next() {
		detail, err := scanEmployeeDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		details = append(details, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return details, nil
}

// ExistsByEmail implements employee.Repository.
func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM employees WHERE email = $1 AND ($2 = 0 OR id <> $2)
		)
	`, email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	return exists, nil
}

// ExistsByDocument implements employee.Repository.
func (r *employeeRepositoryImpl) ExistsByDocument(ctx context.Context, documentNumber string, excludeID int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM employees WHERE document_number = $1 AND ($2 = 0 OR id <> $2)
		)
	`, documentNumber, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check document number: %w", err)
	}

	return exists, nil
}

// ExistsByDocumentOrEmail implements employee.Repository.
func (r *employeeRepositoryImpl) ExistsByDocumentOrEmail(ctx context.Context, documentNumber, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM employees WHERE document_number = $1 OR email = $2
		)
	`, documentNumber, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check document/email: %w", err)
	}

	return exists, nil
}
