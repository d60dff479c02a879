package xlsexport

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hr-intake-backend/models"
	dbmodels "hr-intake-backend/models/db"
)

func TestExportApplicantList(t *testing.T) {
	NewHandler()

	approved := 1
	list := []dbmodels.Applicant{
		{
			FullName: "สมชาย ใจดี",
			PersonalData: models.PersonalData{
				MobilePhone:    "0812345678",
				Email:          "somchai@example.com",
				Position1:      "พนักงานขาย",
				ExpectedSalary: "18000",
			},
			SubmissionDate: "2026-08-01",
			Status:         models.ApplicantStatusPending,
			ApprovalStatus: &approved,
		},
		{
			FullName: "สมหญิง รักงาน",
			Status:   models.ApplicantStatusPendingVideo,
		},
	}

	buf, err := Instance.ExportApplicantList(list)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := "ผู้สมัครงาน"
	require.Contains(t, f.GetSheetList(), sheet)

	name, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	require.Equal(t, "สมชาย ใจดี", name)

	status, err := f.GetCellValue(sheet, "G2")
	require.NoError(t, err)
	require.Equal(t, "pending", status)

	approval, err := f.GetCellValue(sheet, "H2")
	require.NoError(t, err)
	require.Equal(t, "ผ่าน", approval)

	approval2, err := f.GetCellValue(sheet, "H3")
	require.NoError(t, err)
	require.Equal(t, "", approval2)
}

func TestExportApplicantListEmpty(t *testing.T) {
	NewHandler()
	buf, err := Instance.ExportApplicantList(nil)
	require.NoError(t, err)
	require.NotZero(t, buf.Len())
}
