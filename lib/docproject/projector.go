package docproject

import (
	"github.com/pkg/errors"

	"hr-intake-backend/models"
)

// Placeholder renders as a blank on the dotted line of an unfilled field,
// the same non-breaking blank the paper-form preview shows.
const Placeholder = "\u00a0"

type ElementKind string

const (
	KindTitle     ElementKind = "title"
	KindParagraph ElementKind = "paragraph"
	KindLine      ElementKind = "line"      // literal and field segments on one row
	KindCheckbox  ElementKind = "checkbox"
	KindImage     ElementKind = "image"     // logo or signature, placeholder box when empty
	KindSpacer    ElementKind = "spacer"
	KindDivider   ElementKind = "divider"
)

// Segment is one run inside a line element: either literal text or an
// underlined field slot with a centered value.
type Segment struct {
	Text     string  `json:"text"`
	Field    bool    `json:"field"`
	MinWidth float64 `json:"min_width,omitempty"` // mm
}

type Element struct {
	Kind     ElementKind `json:"kind"`
	Text     string      `json:"text,omitempty"`
	Segments []Segment   `json:"segments,omitempty"`
	Checked  bool        `json:"checked,omitempty"`
	ImageURL string      `json:"image_url,omitempty"`
	Height   float64     `json:"height,omitempty"` // mm, spacer and image
	Align    string      `json:"align,omitempty"`  // "L" default, "C", "R"
	Bold     bool        `json:"bold,omitempty"`
	Indent   bool        `json:"indent,omitempty"`
}

// Page is one A4 page of a projected document, elements in reading order.
type Page struct {
	Elements []Element `json:"elements"`
}

// Applicant is the slice of the applicant record a document layout reads.
type Applicant struct {
	FullName      string
	PersonalData  models.PersonalData
	SignatureURL  string
	SignatureDate string
	StartWorkDate string
}

// Company carries the admin-configured issuer data printed on every form.
type Company struct {
	Name    string
	NameEn  string
	LogoURL string
}

// Build projects one document type onto its fixed page layout. Pure: the
// same inputs always produce the same pages and nothing is mutated.
func Build(pdfType models.PdfType, app Applicant, payload models.PdfPayload, co Company) ([]Page, error) {
	switch pdfType {
	case models.PdfTypePDPA:
		return buildPDPA(app, payload.PDPA, co), nil
	case models.PdfTypeNDA:
		return buildNDA(app, payload.NDA, co), nil
	case models.PdfTypeFMHRD19:
		return buildFMHRD19(app, payload.FMHRD, co), nil
	case models.PdfTypeFMHRD30:
		return buildFMHRD30(app, payload.FMHRD, co), nil
	case models.PdfTypeSPS103, models.PdfTypeSPS902:
		return buildSPS(pdfType, app, payload.SPS, co), nil
	case models.PdfTypeCriminalCheck:
		return buildCriminalCheck(app, payload.CriminalCheck, co), nil
	case models.PdfTypeInsurance:
		return buildInsurance(app, payload.Insurance, co), nil
	case models.PdfTypeSalaryDeduction:
		return buildSalaryDeduction(app, payload.SalaryDeduction, co), nil
	}
	return nil, errors.Errorf("ไม่รู้จักประเภทเอกสาร: %s", pdfType)
}

// PageCount is the fixed page count of each document type.
func PageCount(pdfType models.PdfType) int {
	switch pdfType {
	case models.PdfTypePDPA, models.PdfTypeNDA, models.PdfTypeFMHRD19,
		models.PdfTypeCriminalCheck, models.PdfTypeInsurance:
		return 2
	default:
		return 1
	}
}

func orBlank(value string) string {
	if value == "" {
		return Placeholder
	}
	return value
}

// pageBuilder accumulates elements of one page.
type pageBuilder struct {
	els []Element
}

func (b *pageBuilder) page() Page { return Page{Elements: b.els} }

func (b *pageBuilder) logo(url string) {
	b.els = append(b.els, Element{Kind: KindImage, ImageURL: url, Height: 18, Align: "R"})
}

func (b *pageBuilder) title(text string) {
	b.els = append(b.els, Element{Kind: KindTitle, Text: text, Align: "C", Bold: true})
}

func (b *pageBuilder) para(text string) {
	b.els = append(b.els, Element{Kind: KindParagraph, Text: text, Indent: true})
}

func (b *pageBuilder) text(text string) {
	b.els = append(b.els, Element{Kind: KindParagraph, Text: text})
}

func (b *pageBuilder) boldText(text string) {
	b.els = append(b.els, Element{Kind: KindParagraph, Text: text, Bold: true})
}

func (b *pageBuilder) line(segments ...Segment) {
	b.els = append(b.els, Element{Kind: KindLine, Segments: segments})
}

func (b *pageBuilder) rightLine(segments ...Segment) {
	b.els = append(b.els, Element{Kind: KindLine, Segments: segments, Align: "R"})
}

func (b *pageBuilder) centerLine(segments ...Segment) {
	b.els = append(b.els, Element{Kind: KindLine, Segments: segments, Align: "C"})
}

func (b *pageBuilder) checkbox(label string, checked bool) {
	b.els = append(b.els, Element{Kind: KindCheckbox, Text: label, Checked: checked})
}

func (b *pageBuilder) spacer(mm float64) {
	b.els = append(b.els, Element{Kind: KindSpacer, Height: mm})
}

func (b *pageBuilder) divider() {
	b.els = append(b.els, Element{Kind: KindDivider})
}

// signature emits the signature block: the image (or an empty box), the
// dotted name line and the date line.
func (b *pageBuilder) signature(label, imageURL, name, date string) {
	b.els = append(b.els, Element{Kind: KindImage, ImageURL: imageURL, Height: 20, Align: "C"})
	b.centerLine(lit("(ลงชื่อ) "), field(name, 50), lit(" "+label))
	b.centerLine(lit("วันที่ "), field(date, 35))
}

func lit(text string) Segment { return Segment{Text: text} }

func field(value string, minWidth float64) Segment {
	return Segment{Text: orBlank(value), Field: true, MinWidth: minWidth}
}
