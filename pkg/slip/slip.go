// Package slip renders the printable decision slip for a finished submission.
package slip

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

type Answer struct {
	Label string
	Value string
}

type Decision struct {
	Stage      string
	Reviewer   string
	ReviewedAt time.Time
	Comment    string
}

type Document struct {
	SubmissionID uint
	FormTitle    string
	StudentName  string
	Course       string
	Department   string
	Status       string
	SubmittedAt  time.Time
	Answers      []Answer
	Decisions    []Decision
	// VerifyURL is encoded in the QR code; omitted when empty.
	VerifyURL string
}

const (
	pageWidth = 210.0
	margin    = 15.0
	labelW    = 55.0
	qrSize    = 32.0
)

// Render lays the document out on a single A4 page, continuing onto new pages
// when answers overflow.
func Render(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	contentW := pageWidth - 2*margin

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(contentW-qrSize, 9, tr(doc.FormTitle), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(contentW-qrSize, 6, fmt.Sprintf("Submission #%d", doc.SubmissionID), "", 1, "L", false, 0, "")

	if doc.VerifyURL != "" {
		png, err := qrcode.Encode(doc.VerifyURL, qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("encode qr: %w", err)
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.RegisterImageOptionsReader("verify", opts, bytes.NewReader(png))
		pdf.ImageOptions("verify", pageWidth-margin-qrSize, margin, qrSize, qrSize, false, opts, 0, "")
	}

	pdf.Ln(4)
	statusLine := "Status: " + statusLabel(doc.Status)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(contentW-qrSize, 8, statusLine, "", 1, "L", false, 0, "")

	pdf.SetY(margin + qrSize + 4)
	section(pdf, "Applicant", contentW)
	row(pdf, tr, "Student", doc.StudentName, contentW)
	row(pdf, tr, "Course", doc.Course, contentW)
	row(pdf, tr, "Department", doc.Department, contentW)
	row(pdf, tr, "Submitted", doc.SubmittedAt.UTC().Format("2006-01-02 15:04 MST"), contentW)

	section(pdf, "Answers", contentW)
	for _, a := range doc.Answers {
		row(pdf, tr, a.Label, a.Value, contentW)
	}

	section(pdf, "Review trail", contentW)
	if len(doc.Decisions) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(contentW, 6, "No reviews recorded", "", 1, "L", false, 0, "")
	}
	for _, d := range doc.Decisions {
		line := fmt.Sprintf("%s on %s", d.Reviewer, d.ReviewedAt.UTC().Format("2006-01-02 15:04 MST"))
		row(pdf, tr, d.Stage, line, contentW)
		if d.Comment != "" {
			row(pdf, tr, "", "\""+d.Comment+"\"", contentW)
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string, w float64) {
	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(w, 7, title, "", 1, "L", true, 0, "")
	pdf.Ln(1)
}

func row(pdf *gofpdf.Fpdf, tr func(string) string, label, value string, w float64) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(labelW, 6, tr(label), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(w-labelW, 6, tr(value), "", "L", false)
}

func statusLabel(status string) string {
	switch status {
	case "approved":
		return "APPROVED"
	case "rejected":
		return "REJECTED"
	}
	return status
}
