package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
)

// Page layout constants (A4 landscape in mm).
const (
	pdfPageWidth    = 297.0
	pdfPageHeight   = 210.0
	pdfMargin       = 15.0
	pdfHeaderHeight = 12.0
	pdfStatsHeight  = 8.0
	pdfDrawTop      = pdfMargin + pdfHeaderHeight + pdfStatsHeight
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	labels bool
	title  string
}

// WithPDFTitle sets the document title metadata.
func WithPDFTitle(title string) PDFOption { return func(r *pdfRenderer) { r.title = title } }

// WithoutPDFLabels omits zone index and geometry labels.
func WithoutPDFLabels() PDFOption { return func(r *pdfRenderer) { r.labels = false } }

// RenderPDF draws each layout on its own A4 landscape page.
func RenderPDF(doc Document, opts ...PDFOption) ([]byte, error) {
	if len(doc.Layouts) == 0 {
		return nil, fmt.Errorf("no layouts to render")
	}
	r := pdfRenderer{labels: true, title: "zonegen layouts"}
	for _, opt := range opts {
		opt(&r)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(r.title, true)
	pdf.SetCreator("zonegen", true)
	pdf.SetAutoPageBreak(false, pdfMargin)

	for _, l := range doc.Layouts {
		pdf.AddPage()
		r.renderPage(pdf, doc, l)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r pdfRenderer) renderPage(pdf *fpdf.Fpdf, doc Document, l Layout) {
	contentW := pdfPageWidth - 2*pdfMargin

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(30, 30, 30)
	pdf.SetXY(pdfMargin, pdfMargin)
	pdf.CellFormat(contentW, pdfHeaderHeight, l.Name, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(pdfMargin, pdfMargin+pdfHeaderHeight)
	stats := fmt.Sprintf("Zones: %d | Padding: %d | Layout: %s", len(l.Zones), l.Padding, l.Source)
	pdf.CellFormat(contentW, 5, stats, "", 0, "L", false, 0, "")

	drawH := pdfPageHeight - pdfDrawTop - pdfMargin
	canvasW := float64(doc.Canvas.Width)
	canvasH := float64(doc.Canvas.Height)
	if canvasW == 0 || canvasH == 0 {
		return
	}
	scale := math.Min(contentW/canvasW, drawH/canvasH)
	offsetX := pdfMargin + (contentW-canvasW*scale)/2
	offsetY := pdfDrawTop

	pdf.SetFillColor(245, 245, 245)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW*scale, canvasH*scale, "FD")

	for i, z := range l.Zones {
		if z.Empty() {
			continue
		}
		col := colorFor(i)
		zx := offsetX + float64(int(z.X)-int(doc.Canvas.X))*scale
		zy := offsetY + float64(int(z.Y)-int(doc.Canvas.Y))*scale
		zw := float64(z.Width) * scale
		zh := float64(z.Height) * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(zx, zy, zw, zh, "FD")

		if !r.labels {
			continue
		}
		label := fmt.Sprintf("%d", i+1)
		detail := z.String()
		pdf.SetFont("Helvetica", "B", 11)
		if pdf.GetStringWidth(label) < zw && zh > 6 {
			pdf.SetXY(zx, zy+zh/2-4)
			pdf.CellFormat(zw, 4, label, "", 0, "C", false, 0, "")
		}
		pdf.SetFont("Helvetica", "", 8)
		if pdf.GetStringWidth(detail) < zw && zh > 12 {
			pdf.SetXY(zx, zy+zh/2+1)
			pdf.CellFormat(zw, 4, detail, "", 0, "C", false, 0, "")
		}
	}
}
