package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/talentosplus/talentos-backend-go/internal/domain/employee"
	"github.com/talentosplus/talentos-backend-go/internal/handler/http/response"
	"github.com/talentosplus/talentos-backend-go/internal/pkg/pdf"
)

const maxImportSize = 10 << 20 // 10 MB

type EmployeeHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	DownloadCV(w http.ResponseWriter, r *http.Request)
	DownloadMyCV(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.Service
	pdfGenerator    pdf.Generator
}

func NewEmployeeHandler(employeeService employee.Service, pdfGenerator pdf.Generator) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		pdfGenerator:    pdfGenerator,
	}
}

// Register is the public self-registration endpoint.
func (h *employeeHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.employeeService.Create(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Registration successful. Please check your email.", nil)
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.employeeService.GetAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	result, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.employeeService.Create(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", nil)
}

func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.employeeService.Update(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", nil)
}

func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

func (h *employeeHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	id, err := employeeIDFromContext(r)
	if err != nil {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	result, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) DownloadCV(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	h.serveCV(w, r, id)
}

func (h *employeeHandlerImpl) DownloadMyCV(w http.ResponseWriter, r *http.Request) {
	id, err := employeeIDFromContext(r)
	if err != nil {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	h.serveCV(w, r, id)
}

func (h *employeeHandlerImpl) serveCV(w http.ResponseWriter, r *http.Request, id int64) {
	emp, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data := pdf.CVData{
		FullName:  emp.FirstName + " " + emp.LastName,
		Position:  emp.Position,
		Email:     emp.Email,
		Education: emp.EducationLevel,
	}
	if emp.ProfessionalProfile != nil {
		data.Profile = *emp.ProfessionalProfile
	}

	pdfBytes, err := h.pdfGenerator.GenerateCV(data)
	if err != nil {
		response.InternalServerError(w, "Failed to generate CV")
		return
	}

	filename := fmt.Sprintf("CV_%s_%s.pdf", emp.FirstName, emp.LastName)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(pdfBytes)
}

// Import accepts a multipart upload and routes it by file extension:
// .json goes through the JSON importer, anything spreadsheet-like
// through the Excel importer.
func (h *employeeHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file upload", nil)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(w, "Failed to read uploaded file", nil)
		return
	}

	var result employee.ImportResult
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".json":
		result, err = h.employeeService.ImportJSON(r.Context(), content)
	case ".xlsx", ".xlsm":
		result, err = h.employeeService.ImportExcel(r.Context(), content)
	default:
		response.BadRequest(w, "Unsupported file type. Upload .xlsx or .json.", nil)
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	content, err := h.employeeService.ExportExcel(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="empleados.xlsx"`)
	_, _ = w.Write(content)
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func employeeIDFromContext(r *http.Request) (int64, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, err
	}

	idStr, ok := claims["employee_id"].(string)
	if !ok {
		return 0, fmt.Errorf("employee_id claim is missing or invalid")
	}

	return strconv.ParseInt(idStr, 10, 64)
}
