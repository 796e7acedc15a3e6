package employee

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/talentosplus/talentos-backend-go/internal/domain/employee"
)

// Spreadsheet column order: Documento, Nombres, Apellidos,
// FechaNacimiento, Direccion, Telefono, Email, Cargo, Salario,
// FechaIngreso, Estado, NivelEducativo, PerfilProfesional, Departamento.
const (
	colDocument = iota
	colFirstName
	colLastName
	colDateOfBirth
	colAddress
	colPhone
	colEmail
	colPosition
	colSalary
	colJoinDate
	colStatus
	colEducationLevel
	colProfile
	colDepartment
)

// ImportExcel implements employee.Service. Rows are processed one at a
// time and each successful row commits on its own, so one bad row never
// aborts the batch. Rows with a blank document cell are skipped without
// counting either way.
func (s *EmployeeServiceImpl) ImportExcel(ctx context.Context, content []byte) (employee.ImportResult, error) {
	result := employee.ImportResult{Errors: []string{}}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		result.Errors = append(result.Errors, "Critical Excel Error: "+err.Error())
		result.ErrorCount = len(result.Errors)
		return result, nil
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		result.Errors = append(result.Errors, "Critical Excel Error: no worksheet found")
		result.ErrorCount = len(result.Errors)
		return result, nil
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		result.Errors = append(result.Errors, "Critical Excel Error: "+err.Error())
		result.ErrorCount = len(result.Errors)
		return result, nil
	}

	for i, row := range rows {
		if i == 0 {
			// Header row.
			continue
		}
		rowNum := i + 1

		docNumber := cellValue(row, colDocument)
		if docNumber == "" {
			continue
		}

		inserted, err := s.importSpreadsheetRow(ctx, row, docNumber)
		switch {
		case err != nil:
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", rowNum, err.Error()))
		case inserted:
			result.SuccessCount++
		default:
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Duplicate Document/Email found in DB. Skipped.", rowNum))
		}
	}

	result.ErrorCount = len(result.Errors)
	return result, nil
}

// importSpreadsheetRow processes one data row. The returned bool is
// false when the row was skipped as a duplicate.
func (s *EmployeeServiceImpl) importSpreadsheetRow(ctx context.Context, row []string, docNumber string) (bool, error) {
	email := employee.SanitizeEmail(cellValue(row, colEmail))

	var dob *time.Time
	if d, ok := parseSpreadsheetDate(cellValue(row, colDateOfBirth)); ok {
		dob = &d
	}

	// Unparseable join dates default to now.
	joinDate := time.Now().UTC()
	if d, ok := parseSpreadsheetDate(cellValue(row, colJoinDate)); ok {
		joinDate = d
	}

	// Dimension rows are resolved (and possibly created) before the
	// duplicate check, each committing on its own: a later row failure
	// does not undo a freshly created department or position.
	departmentID, err := s.resolver.ResolveDepartment(ctx, cellValue(row, colDepartment))
	if err != nil {
		return false, err
	}
	positionID, err := s.resolver.ResolvePosition(ctx, cellValue(row, colPosition))
	if err != nil {
		return false, err
	}
	var educationLevelID *int64
	if eduName := cellValue(row, colEducationLevel); eduName != "" {
		id, err := s.resolver.ResolveEducationLevel(ctx, eduName)
		if err != nil {
			return false, err
		}
		educationLevelID = &id
	}

	entity := employee.Employee{
		FirstName:           cellValue(row, colFirstName),
		LastName:            cellValue(row, colLastName),
		DocumentNumber:      docNumber,
		Email:               email,
		PositionID:          positionID,
		Salary:              parseSalary(cellValue(row, colSalary)),
		JoinDate:            joinDate,
		DateOfBirth:         dob,
		Address:             optString(cellValue(row, colAddress)),
		ContactPhone:        optString(cellValue(row, colPhone)),
		Status:              employee.ParseStatus(cellValue(row, colStatus)),
		ProfessionalProfile: optString(cellValue(row, colProfile)),
		EducationLevelID:    educationLevelID,
		DepartmentID:        departmentID,
	}

	inserted := false
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.employeeRepo.ExistsByDocumentOrEmail(ctx, entity.DocumentNumber, entity.Email)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		if _, err := s.employeeRepo.Create(ctx, entity); err != nil {
			return err
		}
		inserted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// ImportJSON implements employee.Service. The payload must be a JSON
// array of employee objects keyed by the localized field names the
// export produces. Per-element failures are recorded and skipped.
func (s *EmployeeServiceImpl) ImportJSON(ctx context.Context, content []byte) (employee.ImportResult, error) {
	result := employee.ImportResult{Errors: []string{}}

	var root any
	if err := json.Unmarshal(content, &root); err != nil {
		result.Errors = append(result.Errors, "Critical JSON Error: "+err.Error())
		result.ErrorCount = len(result.Errors)
		return result, nil
	}

	elements, ok := root.([]any)
	if !ok {
		result.Errors = append(result.Errors, "Invalid JSON format. Expected an array of employees.")
		result.ErrorCount = len(result.Errors)
		return result, nil
	}

	for i, element := range elements {
		index := i + 1

		record, ok := element.(map[string]any)
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("Record %d: element is not an object", index))
			continue
		}

		docNumber := getString(record, "Documento")
		if strings.TrimSpace(docNumber) == "" {
			continue
		}

		inserted, err := s.importJSONRecord(ctx, record, docNumber)
		switch {
		case err != nil:
			result.Errors = append(result.Errors, fmt.Sprintf("Record %d: %s", index, err.Error()))
		case inserted:
			result.SuccessCount++
		default:
			result.Errors = append(result.Errors, fmt.Sprintf("Record %d: Duplicate Document %s. Skipped.", index, docNumber))
		}
	}

	result.ErrorCount = len(result.Errors)
	return result, nil
}

func (s *EmployeeServiceImpl) importJSONRecord(ctx context.Context, record map[string]any, docNumber string) (bool, error) {
	email := employee.SanitizeEmail(getString(record, "Email"))

	// Telefono may arrive as a bare number.
	phone := getString(record, "Telefono")
	if phone == "" {
		if n, ok := record["Telefono"].(float64); ok {
			phone = strconv.FormatFloat(n, 'f', -1, 64)
		}
	}

	var salary float64
	switch v := record["Salario"].(type) {
	case float64:
		salary = v
	case string:
		salary, _ = strconv.ParseFloat(v, 64)
	}

	var dob *time.Time
	if d, ok := parseDate(getString(record, "FechaNacimiento")); ok {
		dob = &d
	}

	joinDate := time.Now().UTC()
	if d, ok := parseDate(getString(record, "FechaIngreso")); ok {
		joinDate = d
	}

	departmentID, err := s.resolver.ResolveDepartment(ctx, getString(record, "Departamento"))
	if err != nil {
		return false, err
	}
	positionID, err := s.resolver.ResolvePosition(ctx, getString(record, "Cargo"))
	if err != nil {
		return false, err
	}
	var educationLevelID *int64
	if eduName := getString(record, "NivelEducativo"); strings.TrimSpace(eduName) != "" {
		id, err := s.resolver.ResolveEducationLevel(ctx, eduName)
		if err != nil {
			return false, err
		}
		educationLevelID = &id
	}

	entity := employee.Employee{
		FirstName:           getString(record, "Nombres"),
		LastName:            getString(record, "Apellidos"),
		DocumentNumber:      docNumber,
		Email:               email,
		PositionID:          positionID,
		Salary:              salary,
		JoinDate:            joinDate,
		DateOfBirth:         dob,
		Address:             optString(getString(record, "Direccion")),
		ContactPhone:        optString(phone),
		Status:              employee.ParseStatus(getString(record, "Estado")),
		ProfessionalProfile: optString(getString(record, "PerfilProfesional")),
		EducationLevelID:    educationLevelID,
		DepartmentID:        departmentID,
	}

	inserted := false
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// JSON import deduplicates by document number only: a record
		// with a known email but a new document still inserts.
		exists, err := s.employeeRepo.ExistsByDocument(ctx, entity.DocumentNumber, 0)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		if _, err := s.employeeRepo.Create(ctx, entity); err != nil {
			return err
		}
		inserted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// getString returns the value for key when it is a string, else "".
func getString(record map[string]any, key string) string {
	if v, ok := record[key].(string); ok {
		return v
	}
	return ""
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseSalary reads a salary cell. Numeric text is taken as-is; other
// text is currency-stripped and re-tried. Unparseable values become 0.
func parseSalary(value string) float64 {
	if value == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(value, 64); err == nil {
		return v
	}
	cleaned := strings.ReplaceAll(strings.ReplaceAll(value, "$", ""), " ", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	v, _ := strconv.ParseFloat(cleaned, 64)
	return v
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"02/01/06",
	"01-02-06",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// parseDate attempts a free-text date parse and normalizes the result
// to a UTC date.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return toUTCDate(t), true
		}
	}
	return time.Time{}, false
}

// parseSpreadsheetDate additionally understands Excel date serials,
// which is how date-typed cells surface through GetRows. The serial
// range guard keeps plain year numbers from being misread as serials.
func parseSpreadsheetDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial >= 20000 && serial <= 80000 {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return toUTCDate(t), true
			}
		}
		return time.Time{}, false
	}
	return parseDate(value)
}
