/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */

// Package report renders assembled health report sections as a PDF document.
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/wellpulse/wellpulse/health"
)

// Render produces a single-page-or-more PDF from the given sections, in
// their given order.
func Render(sections []health.ReportSection) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 10, "Health Report", "", 1, "C", false, 0, "")
		pdf.Ln(4)
	})
	pdf.AddPage()

	for _, section := range sections {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, section.Title, "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 10, section.Body, "", "L", false)
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// Filename returns the download filename for a user's report.
func Filename(userID uuid.UUID) string {
	return fmt.Sprintf("health_report_user_%s.pdf", userID)
}
