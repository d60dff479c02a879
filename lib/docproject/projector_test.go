package docproject

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hr-intake-backend/models"
)

func testApplicant() Applicant {
	return Applicant{
		FullName: "สมชาย ใจดี",
		PersonalData: models.PersonalData{
			FirstName:   "สมชาย",
			LastName:    "ใจดี",
			IDCard:      "1234567890123",
			MobilePhone: "0812345678",
			Dob:         "1995-04-12",
			Nationality: "ไทย",
			Email:       "somchai@example.com",
		},
		SignatureURL:  "https://files.example.com/sig.png",
		SignatureDate: "2026-08-01",
		StartWorkDate: "2026-09-01",
	}
}

func testCompany() Company {
	return Company{
		Name:    "บริษัท ทดสอบ จำกัด",
		NameEn:  "Test Co., Ltd.",
		LogoURL: "https://files.example.com/logo.png",
	}
}

func allTypes() []models.PdfType {
	return []models.PdfType{
		models.PdfTypePDPA, models.PdfTypeNDA,
		models.PdfTypeFMHRD19, models.PdfTypeFMHRD30,
		models.PdfTypeSPS103, models.PdfTypeSPS902,
		models.PdfTypeCriminalCheck, models.PdfTypeInsurance,
		models.PdfTypeSalaryDeduction,
	}
}

func TestBuildPageCounts(t *testing.T) {
	for _, pdfType := range allTypes() {
		t.Run(string(pdfType), func(t *testing.T) {
			pages, err := Build(pdfType, testApplicant(), models.PdfPayload{}, testCompany())
			require.NoError(t, err)
			require.Len(t, pages, PageCount(pdfType))
			for _, page := range pages {
				require.NotEmpty(t, page.Elements)
			}
		})
	}
}

func TestBuildUnknownType(t *testing.T) {
	_, err := Build(models.PdfType("visa"), testApplicant(), models.PdfPayload{}, testCompany())
	require.Error(t, err)
}

func TestBuildDeterministic(t *testing.T) {
	app := testApplicant()
	payload := models.PdfPayload{
		PDPA: &models.PdpaData{
			EmployeeData: models.PdpaEmployeeData{
				WrittenAt:   "กรุงเทพมหานคร",
				WrittenDate: "2026-08-01",
				Agreed:      true,
			},
		},
	}
	first, err := Build(models.PdfTypePDPA, app, payload, testCompany())
	require.NoError(t, err)
	second, err := Build(models.PdfTypePDPA, app, payload, testCompany())
	require.NoError(t, err)
	require.True(t, reflect.DeepEqual(first, second))
}

func TestBuildEmptyFieldsRenderPlaceholder(t *testing.T) {
	app := testApplicant()
	app.FullName = ""
	app.PersonalData.IDCard = ""
	pages, err := Build(models.PdfTypeCriminalCheck, app, models.PdfPayload{}, testCompany())
	require.NoError(t, err)

	found := false
	for _, page := range pages {
		for _, el := range page.Elements {
			for _, seg := range el.Segments {
				if seg.Field && seg.Text == Placeholder {
					found = true
				}
				require.NotEqual(t, "", seg.Text)
			}
		}
	}
	require.True(t, found)
}

func TestBuildSalaryDeductionAmountInWords(t *testing.T) {
	pages, err := Build(models.PdfTypeSalaryDeduction, testApplicant(), models.PdfPayload{}, testCompany())
	require.NoError(t, err)
	require.Len(t, pages, 1)

	var body strings.Builder
	for _, el := range pages[0].Elements {
		body.WriteString(el.Text)
	}
	require.Contains(t, body.String(), "รวมเป็นท่านละ 130 บาท")
	require.Contains(t, body.String(), "หนึ่งร้อยสามสิบบาทถ้วน")
}

func TestBuildPdpaConsentCheckbox(t *testing.T) {
	checkboxChecked := func(pages []Page) bool {
		for _, page := range pages {
			for _, el := range page.Elements {
				if el.Kind == KindCheckbox {
					return el.Checked
				}
			}
		}
		return false
	}

	unsigned, err := Build(models.PdfTypePDPA, testApplicant(), models.PdfPayload{}, testCompany())
	require.NoError(t, err)
	require.False(t, checkboxChecked(unsigned))

	signed, err := Build(models.PdfTypePDPA, testApplicant(), models.PdfPayload{
		PDPA: &models.PdpaData{EmployeeData: models.PdpaEmployeeData{Agreed: true}},
	}, testCompany())
	require.NoError(t, err)
	require.True(t, checkboxChecked(signed))
}
