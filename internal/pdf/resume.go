// Package pdf composes generated CVs.
package pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// ResumeData is everything that ends up on the page. Photo is optional
// raw image bytes; PhotoType is its format ("PNG" or "JPEG").
type ResumeData struct {
	FirstName  string
	Surname    string
	City       string
	PostalCode string
	Country    string
	Phone      string
	Email      string
	Summary    string
	Skills     string
	Experience string
	Education  string
	Photo      []byte
	PhotoType  string
}

// Build renders the CV as a single A4 page sequence and writes the PDF
// to w.
func Build(w io.Writer, data ResumeData) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(18, 18, 18)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 24)
	doc.CellFormat(0, 12, fmt.Sprintf("%s %s", data.FirstName, data.Surname), "", 1, "C", false, 0, "")
	doc.Ln(4)

	if len(data.Photo) > 0 {
		imageType := data.PhotoType
		if imageType == "" {
			imageType = "PNG"
		}
		opts := gofpdf.ImageOptions{ImageType: imageType}
		doc.RegisterImageOptionsReader("photo", opts, bytes.NewReader(data.Photo))
		doc.ImageOptions("photo", 158, 14, 34, 0, false, opts, 0, "")
	}

	section(doc, "CONTACT", fmt.Sprintf(
		"City: %s\nPostal Code: %s\nCountry: %s\nPhone: %s\nEmail: %s",
		data.City, data.PostalCode, data.Country, data.Phone, data.Email,
	))
	section(doc, "SUMMARY", data.Summary)
	section(doc, "SKILLS", data.Skills)
	section(doc, "EXPERIENCE", data.Experience)
	section(doc, "EDUCATION", data.Education)

	return doc.Output(w)
}

func section(doc *gofpdf.Fpdf, title, body string) {
	doc.SetFont("Helvetica", "BU", 16)
	doc.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 12)
	doc.MultiCell(0, 6, body, "", "L", false)
	doc.Ln(4)
}
