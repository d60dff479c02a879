package pdfexport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hr-intake-backend/lib/docproject"
	"hr-intake-backend/models"
)

func TestFilename(t *testing.T) {
	require.Equal(t, "PDPA_สมชาย ใจดี.pdf", Filename("PDPA", "สมชาย ใจดี"))
	require.Equal(t, "SPS_1-03_Document.pdf", Filename("SPS_1-03", ""))
}

func TestRenderNoPages(t *testing.T) {
	_, err := Render(RenderInput{DocLabel: "PDPA"})
	require.Error(t, err)
}

func TestRenderPageCount(t *testing.T) {
	fontDir := filepath.Join("..", "..", "..", "static", "font")
	if _, err := os.Stat(filepath.Join(fontDir, "Sarabun-Regular.ttf")); err != nil {
		t.Skip("font files not present")
	}

	app := docproject.Applicant{
		FullName: "สมชาย ใจดี",
		PersonalData: models.PersonalData{
			IDCard:      "1234567890123",
			MobilePhone: "0812345678",
		},
	}
	pages, err := docproject.Build(models.PdfTypePDPA, app, models.PdfPayload{}, docproject.Company{Name: "บริษัท ทดสอบ จำกัด"})
	require.NoError(t, err)
	require.Len(t, pages, 2)

	artifact, err := Render(RenderInput{
		Pages:         pages,
		DocLabel:      models.PdfTypePDPA.Label(),
		ApplicantName: app.FullName,
		FontDir:       fontDir,
	})
	require.NoError(t, err)
	require.Equal(t, 2, artifact.PageCount)
	require.Equal(t, "PDPA_สมชาย ใจดี.pdf", artifact.Filename)
	require.NotEmpty(t, artifact.Bytes)
}
