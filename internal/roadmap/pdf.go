package roadmap

import (
	"fmt"

	"github.com/akyairhashvil/nebula/internal/config"
	"github.com/akyairhashvil/nebula/internal/models"
	"github.com/go-pdf/fpdf"
)

// ExportPDF writes the roadmap as a one-page press sheet to path.
func ExportPDF(phases []models.Phase, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(config.BrandName+" Roadmap", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, tr(fmt.Sprintf("%s - %s", config.BrandName, Heading)))
	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 11)
	pdf.Cell(0, 8, tr(Subheading))
	pdf.Ln(12)

	for _, p := range phases {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 8, tr(fmt.Sprintf("%s (%s): %s", p.Phase, p.Date, p.Title)))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(p.Description), "", "", false)
		for _, f := range p.Features {
			pdf.Cell(0, 6, tr("    - "+f))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write roadmap pdf: %w", err)
	}
	return nil
}
