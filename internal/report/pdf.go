package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/ashpursglove/traycalc/internal/engine"
)

// pdfTitle is also what browsers show in the tab when the PDF is opened.
const pdfTitle = "Ash's Tray Calculation Report"

const (
	pdfMargin = 20.0 // mm
	pdfLineH  = 5.0  // mm
)

type pdfColor struct{ r, g, b int }

var (
	pdfDarkBlue  = pdfColor{11, 31, 59}
	pdfOrange    = pdfColor{255, 140, 0}
	pdfGrey      = pdfColor{153, 153, 153}
	pdfLightGrey = pdfColor{217, 217, 217}
	pdfRed       = pdfColor{230, 51, 51}
	pdfGreen     = pdfColor{51, 179, 77}
	pdfBlack     = pdfColor{0, 0, 0}
	pdfWhite     = pdfColor{255, 255, 255}
)

// WritePDF renders the A4 report: title block, tray configuration,
// structural load summary, fill and area utilisation, and the cable
// schedule table, with utilisation lines coloured by severity.
func WritePDF(w io.Writer, in Input) error {
	if err := in.validate(); err != nil {
		return err
	}

	s := in.Stats

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(pdfTitle, true)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 2*pdfMargin

	setText := func(c pdfColor) { pdf.SetTextColor(c.r, c.g, c.b) }

	heading := func(text string) {
		setText(pdfDarkBlue)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(contentW, 7, text, "", 1, "L", false, 0, "")
		pdf.SetDrawColor(pdfOrange.r, pdfOrange.g, pdfOrange.b)
		pdf.SetLineWidth(0.35)
		y := pdf.GetY()
		pdf.Line(pdfMargin, y, pageW-pdfMargin, y)
		pdf.Ln(4)
	}

	line := func(c pdfColor, text string) {
		setText(c)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetX(pdfMargin + 5)
		pdf.CellFormat(contentW-5, pdfLineH, tr(text), "", 1, "L", false, 0, "")
	}

	// Title block.
	setText(pdfDarkBlue)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(contentW, 10, "Cable Tray Calculation Report", "", 1, "L", false, 0, "")
	setText(pdfBlack)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 6, "Generated: "+in.timestamp(), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, tr("Tray: "+in.Tray.Name), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	heading("Tray Configuration")
	line(pdfBlack, fmt.Sprintf("Tray name: %s", in.Tray.Name))
	line(pdfBlack, fmt.Sprintf("Width: %.1f mm", in.Tray.WidthMM))
	line(pdfBlack, fmt.Sprintf("Side height: %.1f mm", in.Tray.HeightMM))
	line(pdfBlack, fmt.Sprintf("Tray self weight: %.3f kg/m", in.Tray.SelfWeightKgM))
	line(pdfBlack, fmt.Sprintf("Maximum allowable load: %.1f kg/m", in.Tray.MaxLoadKgM))
	line(pdfBlack, fmt.Sprintf("Maximum fill ratio: %.2f (i.e. %.1f %% recommended)", in.Tray.MaxFillRatio, s.MaxAreaFillPct))
	pdf.Ln(4)

	heading("Structural Load Summary")
	line(pdfBlack, fmt.Sprintf("Cable weight: %.3f kg/m", s.TotalCableWeightKgM))
	line(pdfBlack, fmt.Sprintf("Tray self weight: %.3f kg/m", s.TraySelfWeightKgM))
	line(pdfBlack, fmt.Sprintf("Total weight: %.3f kg/m", s.TotalWeightKgM))
	line(pdfBlack, fmt.Sprintf("Allowable load: %.1f kg/m", s.AllowableLoadKgM))
	line(severityColor(s.StructuralSeverity()), fmt.Sprintf("Structural utilisation: %.1f %%", s.StructuralUtilisationPct))
	if s.OverloadedStructural() {
		line(pdfRed, "OVERLOADED - check tray sizing / loading assumptions.")
	} else {
		line(pdfGreen, "OK - within structural loading limits (based on current assumptions).")
	}
	pdf.Ln(4)

	heading("Fill and Area Utilisation")
	line(pdfBlack, fmt.Sprintf("Total cable area: %s mm^2", formatArea(s.TotalCableAreaMM2)))
	line(pdfBlack, fmt.Sprintf("Tray usable area: %s mm^2", formatArea(s.TrayUsableAreaMM2)))
	line(severityColor(s.FillSeverity()), fmt.Sprintf("Area fill: %.1f %%", s.AreaFillPct))
	line(pdfBlack, fmt.Sprintf("Recommended maximum fill: %.1f %%", s.MaxAreaFillPct))
	if s.OverloadedFill() {
		line(pdfRed, "WARNING - area fill exceeds recommended limit.")
	} else {
		line(pdfGreen, "OK - area fill within recommended limit.")
	}
	pdf.Ln(6)

	// Keep the table together with its heading when close to the page end.
	if pdf.GetY() > pageH/2 {
		pdf.AddPage()
	}

	heading("Cables in Tray")
	writeCableTable(pdf, tr, in, contentW)

	// Footer disclaimer on the last page.
	setText(pdfGrey)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetY(pageH - pdfMargin + 2)
	pdf.CellFormat(contentW, 4,
		"Note: Values are based on current tray and cable data in the calculator. "+
			"Always verify against manufacturer data and applicable standards.",
		"", 0, "L", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

func severityColor(sev engine.Severity) pdfColor {
	switch sev {
	case engine.SeverityOver:
		return pdfRed
	case engine.SeverityOK:
		return pdfGreen
	}
	return pdfDarkBlue
}

func writeCableTable(pdf *gofpdf.Fpdf, tr func(string) string, in Input, contentW float64) {
	headers := []string{"Cable", "Diameter (mm)", "Weight (kg/m)", "Qty", "Total (kg/m)", "Area (mm^2)"}
	widths := []float64{60, 25, 25, 15, 30, 30}

	total := 0.0
	for _, w := range widths {
		total += w
	}
	if total > contentW {
		scale := contentW / total
		for i := range widths {
			widths[i] *= scale
		}
	}

	pdf.SetFillColor(pdfLightGrey.r, pdfLightGrey.g, pdfLightGrey.b)
	pdf.SetTextColor(pdfBlack.r, pdfBlack.g, pdfBlack.b)
	pdf.SetDrawColor(pdfGrey.r, pdfGrey.g, pdfGrey.b)
	pdf.SetLineWidth(0.2)
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, h, "B", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	rowIndex := 0
	for _, entry := range in.Entries {
		if !entry.Valid() {
			continue
		}
		qty := float64(entry.Quantity)

		fill := rowIndex%2 == 0
		if fill {
			pdf.SetFillColor(pdfLightGrey.r, pdfLightGrey.g, pdfLightGrey.b)
		} else {
			pdf.SetFillColor(pdfWhite.r, pdfWhite.g, pdfWhite.b)
		}

		name := entry.Cable.Name
		if runes := []rune(name); len(runes) > 40 {
			name = string(runes[:40])
		}

		cells := []string{
			tr(name),
			fmt.Sprintf("%.1f", entry.Cable.DiameterMM),
			fmt.Sprintf("%.3f", entry.Cable.WeightKgM),
			fmt.Sprintf("%d", entry.Quantity),
			fmt.Sprintf("%.3f", entry.Cable.WeightKgM*qty),
			formatArea(entry.Cable.AreaMM2() * qty),
		}
		for i, c := range cells {
			align := "L"
			if i > 0 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, c, "B", 0, align, true, 0, "")
		}
		pdf.Ln(-1)
		rowIndex++
	}
}
