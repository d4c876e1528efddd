// Package report renders a finished system calculation as a PDF datasheet
// or an xlsx workbook, and can import a segment list back from xlsx.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"PipeFlow/internal/calc/system"
)

// Meta is the header block of a rendered report.
type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// WritePDF renders the system result as an A4 datasheet.
func WritePDF(w io.Writer, meta Meta, res system.Result) error {
	if meta.Title == "" {
		meta.Title = "Pressure Drop Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "System totals")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	totals := [][2]string{
		{"Friction loss", fmt.Sprintf("%.1f Pa  (%.3f m)", res.DPFrictionPa, res.HeadFrictionM)},
		{"Fitting loss", fmt.Sprintf("%.1f Pa  (%.3f m)", res.DPFittingsPa, res.HeadFittingsM)},
		{"Elevation", fmt.Sprintf("%.1f Pa  (%.3f m)", res.DPElevationPa, res.HeadElevationM)},
		{"Total", fmt.Sprintf("%.1f Pa  (%.3f m)", res.DPTotalPa, res.HeadTotalM)},
	}
	for _, row := range totals {
		pdf.Cell(60, 6, row[0])
		pdf.Cell(0, 6, row[1])
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Segments")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "B", 9)
	headers := []string{"#", "V, m/s", "Re", "Regime", "f", "dP total, Pa"}
	widths := []float64{10, 25, 30, 30, 25, 40}
	for i, hcell := range headers {
		pdf.CellFormat(widths[i], 6, hcell, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for i, s := range res.Segments {
		cells := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.3f", s.VelocityMS),
			fmt.Sprintf("%.0f", s.Reynolds),
			string(s.Regime),
			fmt.Sprintf("%.5f", s.FrictionFactor),
			fmt.Sprintf("%.1f", s.DPTotalPa),
		}
		for j, cell := range cells {
			pdf.CellFormat(widths[j], 6, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(res.Warnings) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Advisories")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
		for _, warn := range res.Warnings {
			pdf.MultiCell(0, 5, fmt.Sprintf("[%s] %s", warn.Severity, warn.Message), "", "L", false)
		}
	}

	if len(res.References) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "References")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
		for _, ref := range res.References {
			line := ref.Source
			if ref.Page != "" {
				line += ", p. " + ref.Page
			}
			if ref.Equation != "" {
				line += " (" + ref.Equation + ")"
			}
			pdf.MultiCell(0, 5, line, "", "L", false)
		}
	}

	if meta.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, meta.Notes, "", "L", false)
	}

	return pdf.Output(w)
}
