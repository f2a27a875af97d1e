package services

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFService interface {
	IsValidPDF(data []byte) bool
	ExtractText(data []byte) string
}

type pdfService struct{}

func NewPDFService() PDFService {
	return &pdfService{}
}

// IsValidPDF reports whether data opens as a PDF container with at least one
// page. Any parse failure, including panics from malformed inputs, yields
// false.
func (p *pdfService) IsValidPDF(data []byte) (valid bool) {
	defer func() {
		if r := recover(); r != nil {
			valid = false
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}

	return reader.NumPage() > 0
}

// ExtractText returns the linearized text of the document, per-page texts
// joined with "\n". Pages that yield no text are skipped. Every failure mode
// degrades to an empty string; this function never returns an error and never
// panics.
func (p *pdfService) ExtractText(data []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	if !p.IsValidPDF(data) {
		return ""
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var pages []string
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil || pageText == "" {
			continue
		}

		pages = append(pages, pageText)
	}

	return strings.Join(pages, "\n")
}
