package pdfexport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"hr-intake-backend/lib/docproject"
)

const (
	fontName    = "Sarabun"
	pageMargin  = 15.0
	pageWidth   = 210.0
	contentW    = pageWidth - 2*pageMargin
	lineHt      = 6.5
	baseSize    = 12.0
	titleSize   = 16.0
	defaultImgW = 40.0
)

// File is an image fetched from storage, keyed by its source URL in
// RenderInput.Images.
type File struct {
	FileName string
	Body     []byte
}

// RenderInput carries everything Render needs. Images maps the element
// image URLs to fetched bytes; a missing entry renders as an empty frame.
type RenderInput struct {
	Pages         []docproject.Page
	DocLabel      string
	ApplicantName string
	FontDir       string
	Images        map[string]*File
}

// Artifact is a finished PDF ready to be sent or stored.
type Artifact struct {
	Bytes     []byte
	PageCount int
	Filename  string
}

// Render draws the projected pages onto an A4 portrait document, one PDF
// page per projected page. Any failure aborts the whole export, a partial
// document is never returned.
func Render(in RenderInput) (artifact *Artifact, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("Render panic recover: %v", r)
		}
	}()
	if len(in.Pages) == 0 {
		return nil, errors.New("document has no pages")
	}

	pdf := fpdf.New("P", "mm", "A4", in.FontDir)
	pdf.AddUTF8Font(fontName, "", "Sarabun-Regular.ttf")
	pdf.AddUTF8Font(fontName, "B", "Sarabun-Bold.ttf")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.SetFont(fontName, "", baseSize)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	r := renderer{pdf: pdf, images: in.Images, registered: map[string]bool{}}
	for _, page := range in.Pages {
		pdf.AddPage()
		for _, el := range page.Elements {
			r.element(el)
		}
		if pdf.Error() != nil {
			return nil, pdf.Error()
		}
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return &Artifact{
		Bytes:     buf.Bytes(),
		PageCount: len(in.Pages),
		Filename:  Filename(in.DocLabel, in.ApplicantName),
	}, nil
}

// Filename builds the download name of an exported document.
func Filename(docLabel, applicantName string) string {
	if applicantName == "" {
		applicantName = "Document"
	}
	return fmt.Sprintf("%s_%s.pdf", docLabel, applicantName)
}

type renderer struct {
	pdf        *fpdf.Fpdf
	images     map[string]*File
	registered map[string]bool
}

func (r *renderer) element(el docproject.Element) {
	switch el.Kind {
	case docproject.KindTitle:
		r.pdf.SetFont(fontName, "B", titleSize)
		r.pdf.MultiCell(contentW, 9, el.Text, "", "C", false)
		r.pdf.SetFont(fontName, "", baseSize)
		r.pdf.Ln(1)
	case docproject.KindParagraph:
		style := ""
		if el.Bold {
			style = "B"
		}
		r.pdf.SetFont(fontName, style, baseSize)
		text := el.Text
		if el.Indent {
			text = "        " + text
		}
		align := el.Align
		if align == "" {
			align = "L"
		}
		r.pdf.MultiCell(contentW, lineHt, text, "", align, false)
		r.pdf.SetFont(fontName, "", baseSize)
		r.pdf.Ln(1)
	case docproject.KindLine:
		r.line(el)
	case docproject.KindCheckbox:
		r.checkbox(el)
	case docproject.KindImage:
		r.image(el)
	case docproject.KindSpacer:
		r.pdf.Ln(el.Height)
	case docproject.KindDivider:
		y := r.pdf.GetY()
		r.pdf.Line(pageMargin, y, pageWidth-pageMargin, y)
		r.pdf.Ln(2)
	}
}

func (r *renderer) line(el docproject.Element) {
	total := 0.0
	widths := make([]float64, len(el.Segments))
	for i, seg := range el.Segments {
		w := r.pdf.GetStringWidth(seg.Text) + 1
		if seg.Field && w < seg.MinWidth {
			w = seg.MinWidth
		}
		widths[i] = w
		total += w
	}

	switch el.Align {
	case "R":
		r.pdf.SetX(pageWidth - pageMargin - total)
	case "C":
		r.pdf.SetX(pageMargin + (contentW-total)/2)
	}
	for i, seg := range el.Segments {
		align := "L"
		if seg.Field {
			align = "C"
			x, y := r.pdf.GetX(), r.pdf.GetY()
			r.dottedLine(x, y+lineHt-1, x+widths[i])
		}
		r.pdf.CellFormat(widths[i], lineHt, seg.Text, "", 0, align, false, 0, "")
	}
	r.pdf.Ln(lineHt)
}

// dottedLine draws the fill-in underline of a field slot.
func (r *renderer) dottedLine(x1, y, x2 float64) {
	r.pdf.SetDashPattern([]float64{0.5, 1}, 0)
	r.pdf.Line(x1, y, x2, y)
	r.pdf.SetDashPattern([]float64{}, 0)
}

func (r *renderer) checkbox(el docproject.Element) {
	x, y := r.pdf.GetX(), r.pdf.GetY()
	r.pdf.Rect(x, y+1, 4, 4, "D")
	if el.Checked {
		r.pdf.Line(x+0.8, y+3.2, x+1.7, y+4.3)
		r.pdf.Line(x+1.7, y+4.3, x+3.4, y+1.7)
	}
	r.pdf.SetX(x + 6)
	r.pdf.MultiCell(contentW-6, lineHt, el.Text, "", "L", false)
	r.pdf.Ln(1)
}

func (r *renderer) image(el docproject.Element) {
	h := el.Height
	if h == 0 {
		h = defaultImgW / 2
	}
	x := pageMargin
	switch el.Align {
	case "R":
		x = pageWidth - pageMargin - defaultImgW
	case "C":
		x = pageMargin + (contentW-defaultImgW)/2
	}
	y := r.pdf.GetY()

	file := r.images[el.ImageURL]
	if el.ImageURL != "" && file != nil {
		if err := r.register(file); err == nil {
			r.pdf.ImageOptions(file.FileName, x, y, 0, h, false, fpdf.ImageOptions{}, 0, "")
		}
	} else {
		r.pdf.Rect(x, y, defaultImgW, h, "D")
	}
	r.pdf.SetY(y + h + 2)
}

func (r *renderer) register(file *File) error {
	if r.registered[file.FileName] {
		return nil
	}
	imgType, err := imageType(file.FileName)
	if err != nil {
		return err
	}
	options := fpdf.ImageOptions{ImageType: imgType}
	r.pdf.RegisterImageOptionsReader(file.FileName, options, bytes.NewReader(file.Body))
	if r.pdf.Error() != nil {
		return r.pdf.Error()
	}
	r.registered[file.FileName] = true
	return nil
}

func imageType(fileName string) (string, error) {
	pos := strings.LastIndex(fileName, ".")
	if pos < 0 {
		return "", errors.Errorf("cannot detect image type of %s", fileName)
	}
	return fileName[pos+1:], nil
}
