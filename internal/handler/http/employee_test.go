package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentosplus/talentos-backend-go/internal/domain/auth"
	"github.com/talentosplus/talentos-backend-go/internal/domain/employee"
	"github.com/talentosplus/talentos-backend-go/internal/service/assistant"
	authService "github.com/talentosplus/talentos-backend-go/internal/service/auth"
)

// fakeEmployeeService covers the import and create paths the handler
// tests exercise; the embedded interface panics on anything else.
type fakeEmployeeService struct {
	employee.Service

	jsonImports  int
	excelImports int
	created      []employee.CreateEmployeeRequest
	createErr    error
}

func (f *fakeEmployeeService) ImportJSON(_ context.Context, _ []byte) (employee.ImportResult, error) {
	f.jsonImports++
	return employee.ImportResult{SuccessCount: 1, Errors: []string{}}, nil
}

func (f *fakeEmployeeService) ImportExcel(_ context.Context, _ []byte) (employee.ImportResult, error) {
	f.excelImports++
	return employee.ImportResult{SuccessCount: 1, Errors: []string{}}, nil
}

func (f *fakeEmployeeService) Create(_ context.Context, req employee.CreateEmployeeRequest) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, req)
	return nil
}

type fakeAuthService struct {
	resp auth.LoginResponse
	err  error
}

func (f *fakeAuthService) Login(_ context.Context, _ auth.LoginRequest) (auth.LoginResponse, error) {
	return f.resp, f.err
}

var _ authService.AuthService = (*fakeAuthService)(nil)

type fakeAssistant struct {
	answer string
}

func (f *fakeAssistant) Ask(_ context.Context, _ string) string {
	return f.answer
}

var _ assistant.AssistantService = (*fakeAssistant)(nil)

func multipartUpload(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestImportRoutesByExtension(t *testing.T) {
	svc := &fakeEmployeeService{}
	handler := NewEmployeeHandler(svc, nil)

	rec := httptest.NewRecorder()
	handler.Import(rec, multipartUpload(t, "empleados.json", []byte("[]")))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.jsonImports)

	rec = httptest.NewRecorder()
	handler.Import(rec, multipartUpload(t, "Empleados.XLSX", []byte("binary")))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.excelImports)
}

func TestImportRejectsUnsupportedExtension(t *testing.T) {
	svc := &fakeEmployeeService{}
	handler := NewEmployeeHandler(svc, nil)

	rec := httptest.NewRecorder()
	handler.Import(rec, multipartUpload(t, "empleados.csv", []byte("a,b")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, svc.jsonImports)
	assert.Equal(t, 0, svc.excelImports)
}

func TestImportMissingFile(t *testing.T) {
	handler := NewEmployeeHandler(&fakeEmployeeService{}, nil)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	handler.Import(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister(t *testing.T) {
	svc := &fakeEmployeeService{}
	handler := NewEmployeeHandler(svc, nil)

	payload, _ := json.Marshal(employee.CreateEmployeeRequest{
		FirstName:      "Ana",
		LastName:       "García",
		DocumentNumber: "100",
		Email:          "ana@example.com",
		Position:       "Analista",
		DepartmentID:   1,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/register", bytes.NewReader(payload))

	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, svc.created, 1)
	assert.Equal(t, "ana@example.com", svc.created[0].Email)
}

func TestRegisterDuplicateConflict(t *testing.T) {
	svc := &fakeEmployeeService{createErr: &employee.DuplicateError{
		Field:   "email",
		Message: "Ya existe un empleado con el correo 'ana@example.com'.",
	}}
	handler := NewEmployeeHandler(svc, nil)

	payload, _ := json.Marshal(employee.CreateEmployeeRequest{Email: "ana@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/register", bytes.NewReader(payload))

	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ya existe un empleado con el correo")
}

func TestLoginHandler(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{resp: auth.LoginResponse{Token: "signed-token", ExpiresAt: 12345}})

	payload, _ := json.Marshal(auth.LoginRequest{Email: "ana@example.com", DocumentNumber: "100"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))

	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{err: auth.ErrInvalidCredentials})

	payload, _ := json.Marshal(auth.LoginRequest{Email: "ana@example.com", DocumentNumber: "bad"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))

	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAskHandler(t *testing.T) {
	handler := NewDashboardHandler(nil, &fakeAssistant{answer: "Hay 2 empleados."})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/ask", bytes.NewReader([]byte(`{"question":"¿Cuántos?"}`)))
	rec := httptest.NewRecorder()
	handler.Ask(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hay 2 empleados.")
}

func TestAskHandlerEmptyQuestion(t *testing.T) {
	handler := NewDashboardHandler(nil, &fakeAssistant{answer: "unused"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/ask", bytes.NewReader([]byte(`{"question":"  "}`)))
	rec := httptest.NewRecorder()
	handler.Ask(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
