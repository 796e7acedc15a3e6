package employee

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Empleados"

var exportHeaders = []string{
	"Documento", "Nombres", "Apellidos", "FechaNacimiento", "Direccion",
	"Telefono", "Email", "Cargo", "Salario", "FechaIngreso", "Estado",
	"NivelEducativo", "PerfilProfesional", "Departamento",
}

// ExportExcel implements employee.Service. All employees are written in
// one pass: a styled header row followed by one denormalized row each.
// The status column carries the localized display names the import's
// status matcher understands, so exports re-import cleanly.
func (s *EmployeeServiceImpl) ExportExcel(ctx context.Context) ([]byte, error) {
	details, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	header := make([]any, len(exportHeaders))
	widths := make([]int, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
		widths[i] = len(h)
	}
	if err := f.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"483D8B"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(exportHeaders))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(exportSheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, d := range details {
		dobStr := ""
		if d.DateOfBirth != nil {
			dobStr = d.DateOfBirth.Format("2006-01-02")
		}

		values := []any{
			d.DocumentNumber,
			d.FirstName,
			d.LastName,
			dobStr,
			derefString(d.Address),
			derefString(d.ContactPhone),
			d.Email,
			d.PositionName,
			d.Salary,
			d.JoinDate.Format("2006-01-02"),
			d.Status.DisplayName(),
			d.EducationLevelName,
			derefString(d.ProfessionalProfile),
			d.DepartmentName,
		}

		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}

		for col, v := range values {
			if w := len(fmt.Sprint(v)); w > widths[col] {
				widths[col] = w
			}
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		width := float64(w) + 2
		if width > 60 {
			width = 60
		}
		if err := f.SetColWidth(exportSheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
