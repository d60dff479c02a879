package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "hr-intake-backend/models/db"
)

type Provider interface {
	ExportApplicantList(list []dbmodels.Applicant) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicantHeaders = []string{
	"ชื่อ-นามสกุล", "ช่องทางติดต่อ", "ตำแหน่งที่สมัคร", "เงินเดือนที่คาดหวัง",
	"วันที่ยื่นใบสมัคร", "วันที่เริ่มงาน", "สถานะ", "ผลการพิจารณา", "ความครบถ้วนของข้อมูล",
}

func (i impl) ExportApplicantList(list []dbmodels.Applicant) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicantHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeApplicantData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "ผู้สมัครงาน")
	return f.WriteToBuffer()
}

func writeApplicantData(f *excelize.File, sheet string, list []dbmodels.Applicant, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicantHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "ชื่อ-นามสกุล"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.FullName); err != nil {
			return row, err
		}

		// "ช่องทางติดต่อ"
		col++
		contact := fmt.Sprintf("%v\r%v", item.PersonalData.MobilePhone, item.PersonalData.Email)
		if err := writeColumn(f, sheet, col, row, contact); err != nil {
			return row, err
		}

		// "ตำแหน่งที่สมัคร"
		col++
		if err := writeColumn(f, sheet, col, row, item.PersonalData.Position1); err != nil {
			return row, err
		}

		// "เงินเดือนที่คาดหวัง"
		col++
		if err := writeColumn(f, sheet, col, row, item.PersonalData.ExpectedSalary); err != nil {
			return row, err
		}

		// "วันที่ยื่นใบสมัคร"
		col++
		if err := writeColumn(f, sheet, col, row, item.SubmissionDate); err != nil {
			return row, err
		}

		// "วันที่เริ่มงาน"
		col++
		if err := writeColumn(f, sheet, col, row, item.StartWorkDate); err != nil {
			return row, err
		}

		// "สถานะ"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}

		// "ผลการพิจารณา"
		col++
		if err := writeColumn(f, sheet, col, row, triState(item.ApprovalStatus)); err != nil {
			return row, err
		}

		// "ความครบถ้วนของข้อมูล"
		col++
		if err := writeColumn(f, sheet, col, row, triState(item.DataCompletionStatus)); err != nil {
			return row, err
		}
	}
	return row, nil
}

func triState(v *int) string {
	switch {
	case v == nil:
		return ""
	case *v == 1:
		return "ผ่าน"
	default:
		return "ไม่ผ่าน"
	}
}
