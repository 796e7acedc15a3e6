// Package pdf renders employee CVs as downloadable PDF documents.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// CVData is the structured content of a curriculum vitae.
type CVData struct {
	FullName  string
	Position  string
	Email     string
	Profile   string
	Education string
}

type Generator interface {
	GenerateCV(data CVData) ([]byte, error)
}

type generatorImpl struct{}

func NewGenerator() Generator {
	return &generatorImpl{}
}

func (g *generatorImpl) GenerateCV(data CVData) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "", 9)
		doc.SetTextColor(128, 128, 128)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d", doc.PageNo()), "", 0, "C", false, 0, "")
	})
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.SetTextColor(72, 61, 139)
	doc.CellFormat(0, 12, "TalentosPlus - Hoja de Vida", "", 1, "L", false, 0, "")
	doc.Ln(4)

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, data.FullName, "", 1, "L", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 12)
	writeField(doc, "Cargo", data.Position)
	writeField(doc, "Email", data.Email)
	if data.Education != "" {
		writeField(doc, "Nivel Educativo", data.Education)
	}
	if data.Profile != "" {
		writeField(doc, "Perfil", data.Profile)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeField(doc *fpdf.Fpdf, label, value string) {
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(40, 8, label+":", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 12)
	doc.MultiCell(0, 8, value, "", "L", false)
}
