package employee

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentosplus/talentos-backend-go/internal/domain/employee"
	"github.com/talentosplus/talentos-backend-go/internal/pkg/validator"
)

// fakeEmployeeRepo is an in-memory employee.Repository keyed by id.
type fakeEmployeeRepo struct {
	nextID    int64
	employees map[int64]employee.Employee

	// dimension names for Detail joins, keyed by id.
	positions       map[int64]string
	departments     map[int64]string
	educationLevels map[int64]string

	createErr error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		nextID:          1,
		employees:       map[int64]employee.Employee{},
		positions:       map[int64]string{},
		departments:     map[int64]string{},
		educationLevels: map[int64]string{},
	}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	if r.createErr != nil {
		return employee.Employee{}, r.createErr
	}
	e.ID = r.nextID
	r.nextID++
	r.employees[e.ID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) error {
	if _, ok := r.employees[e.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	r.employees[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	delete(r.employees, id)
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (employee.Detail, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Detail{}, employee.ErrEmployeeNotFound
	}
	return r.toDetail(e), nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Detail, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return r.toDetail(e), nil
		}
	}
	return employee.Detail{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetAll(_ context.Context) ([]employee.Detail, error) {
	details := make([]employee.Detail, 0, len(r.employees))
	for id := int64(1); id < r.nextID; id++ {
		if e, ok := r.employees[id]; ok {
			details = append(details, r.toDetail(e))
		}
	}
	return details, nil
}

func (r *fakeEmployeeRepo) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, e := range r.employees {
		if e.Email == email && e.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) ExistsByDocument(_ context.Context, documentNumber string, excludeID int64) (bool, error) {
	for _, e := range r.employees {
		if e.DocumentNumber == documentNumber && e.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) ExistsByDocumentOrEmail(_ context.Context, documentNumber, email string) (bool, error) {
	for _, e := range r.employees {
		if e.DocumentNumber == documentNumber || e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) toDetail(e employee.Employee) employee.Detail {
	d := employee.Detail{
		Employee:       e,
		PositionName:   r.positions[e.PositionID],
		DepartmentName: r.departments[e.DepartmentID],
	}
	if e.EducationLevelID != nil {
		d.EducationLevelName = r.educationLevels[*e.EducationLevelID]
	}
	return d
}

// fakeResolver assigns sequential ids per kind and records resolved names.
type fakeResolver struct {
	repo *fakeEmployeeRepo

	departmentIDs     map[string]int64
	positionIDs       map[string]int64
	educationLevelIDs map[string]int64
}

func newFakeResolver(repo *fakeEmployeeRepo) *fakeResolver {
	return &fakeResolver{
		repo:              repo,
		departmentIDs:     map[string]int64{},
		positionIDs:       map[string]int64{},
		educationLevelIDs: map[string]int64{},
	}
}

func (f *fakeResolver) ResolveDepartment(_ context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		name = "General"
	}
	return resolveName(f.departmentIDs, f.repo.departments, name), nil
}

func (f *fakeResolver) ResolvePosition(_ context.Context, name string) (int64, error) {
	return resolveName(f.positionIDs, f.repo.positions, name), nil
}

func (f *fakeResolver) ResolveEducationLevel(_ context.Context, name string) (int64, error) {
	return resolveName(f.educationLevelIDs, f.repo.educationLevels, name), nil
}

func resolveName(byName map[string]int64, byID map[int64]string, name string) int64 {
	key := strings.ToLower(strings.TrimSpace(name))
	if id, ok := byName[key]; ok {
		return id
	}
	id := int64(len(byName) + 1)
	byName[key] = id
	byID[id] = strings.TrimSpace(name)
	return id
}

// fakeEmailSender records sends and optionally fails every one of them.
type fakeEmailSender struct {
	sent []string
	err  error
}

func (f *fakeEmailSender) SendWelcome(to, _ string) error {
	f.sent = append(f.sent, to)
	return f.err
}

func newTestService() (employee.Service, *fakeEmployeeRepo, *fakeEmailSender) {
	repo := newFakeEmployeeRepo()
	sender := &fakeEmailSender{}
	svc := NewEmployeeService(repo, newFakeResolver(repo), sender, nil)
	return svc, repo, sender
}

func validRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:      "Ana",
		LastName:       "García",
		DocumentNumber: "100200300",
		Email:          "Ana.García@Example.com",
		Position:       "Desarrolladora",
		Salary:         3500,
		JoinDate:       "2024-03-01",
		Status:         "Activo",
		EducationLevel: "Universitario",
		DepartmentID:   1,
	}
}

func TestCreateEmployee(t *testing.T) {
	ctx := context.Background()
	svc, repo, sender := newTestService()

	err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	created, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "ana.garcia@example.com", created.Email)
	assert.Equal(t, "Desarrolladora", created.Position)
	assert.Equal(t, "2024-03-01", created.JoinDate)
	assert.Equal(t, "Active", created.Status)
	assert.Equal(t, "Universitario", created.EducationLevel)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "ana.garcia@example.com", sender.sent[0])
	assert.Len(t, repo.employees, 1)
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()

	require.NoError(t, svc.Create(ctx, validRequest()))

	second := validRequest()
	second.DocumentNumber = "999888777"
	err := svc.Create(ctx, second)

	var dup *employee.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "email", dup.Field)
	assert.Equal(t, "Ya existe un empleado con el correo 'ana.garcia@example.com'.", dup.Message)
	assert.Len(t, repo.employees, 1)
}

func TestCreateEmployeeDuplicateDocument(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	require.NoError(t, svc.Create(ctx, validRequest()))

	second := validRequest()
	second.Email = "otra@example.com"
	err := svc.Create(ctx, second)

	var dup *employee.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "document_number", dup.Field)
	assert.Contains(t, dup.Message, "'100200300'")
}

func TestCreateEmployeeValidation(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()

	req := validRequest()
	req.FirstName = ""
	req.Email = "not-an-email"
	req.Salary = -1

	err := svc.Create(ctx, req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "salary")
	assert.Empty(t, repo.employees)
}

func TestCreateEmployeeEmailFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	sender := &fakeEmailSender{err: errors.New("smtp down")}
	svc := NewEmployeeService(repo, newFakeResolver(repo), sender, nil)

	err := svc.Create(ctx, validRequest())

	require.NoError(t, err)
	assert.Len(t, repo.employees, 1)
	assert.Len(t, sender.sent, 1)
}

func TestCreateEmployeeWrapsUnexpectedErrors(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	repo.createErr = errors.New("connection reset")
	svc := NewEmployeeService(repo, newFakeResolver(repo), &fakeEmailSender{}, nil)

	err := svc.Create(ctx, validRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error al crear empleado:")
	assert.Contains(t, err.Error(), "connection reset")
	assert.Contains(t, err.Error(), "Por favor verifica que todos los campos estén correctos.")
}

func TestUpdateEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	require.NoError(t, svc.Create(ctx, validRequest()))

	req := validRequest()
	req.Position = "Líder Técnico"
	req.Status = "De Vacaciones"
	require.NoError(t, svc.Update(ctx, 1, req))

	updated, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Líder Técnico", updated.Position)
	assert.Equal(t, "OnVacation", updated.Status)
}

func TestUpdateEmployeeKeepsOwnEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	require.NoError(t, svc.Create(ctx, validRequest()))

	// Re-submitting the employee's own email must not count as a
	// collision with itself.
	err := svc.Update(ctx, 1, validRequest())
	require.NoError(t, err)
}

func TestUpdateEmployeeDuplicateAgainstOther(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	require.NoError(t, svc.Create(ctx, validRequest()))

	second := validRequest()
	second.Email = "otra@example.com"
	second.DocumentNumber = "555"
	require.NoError(t, svc.Create(ctx, second))

	update := second
	update.Email = "ana.garcia@example.com"
	err := svc.Update(ctx, 2, update)

	var dup *employee.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Ya existe otro empleado con el correo 'ana.garcia@example.com'.", dup.Message)
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	err := svc.Update(ctx, 99, validRequest())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteEmployeeIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()

	require.NoError(t, svc.Create(ctx, validRequest()))
	require.NoError(t, svc.Delete(ctx, 1))
	assert.Empty(t, repo.employees)

	// Deleting again is a silent no-op.
	require.NoError(t, svc.Delete(ctx, 1))
	require.NoError(t, svc.Delete(ctx, 42))
}

func TestGetByIDMapsMissingEducationLevel(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	req := validRequest()
	req.EducationLevel = ""
	require.NoError(t, svc.Create(ctx, req))

	got, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "N/A", got.EducationLevel)
}
