package docproject

import (
	"fmt"

	"hr-intake-backend/lib/thainum"
	"hr-intake-backend/models"
)

// Fixed charges of the onboarding paperwork. The total is restated in Thai
// words next to the figure.
const (
	criminalCheckFee = 100
	stampDutyFee     = 30
	deductionTotal   = criminalCheckFee + stampDutyFee
)

// buildSalaryDeduction lays out the consent to deduct the onboarding
// document fees from the first salary. One page.
func buildSalaryDeduction(app Applicant, data *models.SalaryDeductionData, co Company) []Page {
	if data == nil {
		data = &models.SalaryDeductionData{}
	}
	amount := data.Amount
	if amount == 0 {
		amount = deductionTotal
	}

	var p pageBuilder
	p.logo(co.LogoURL)
	p.title("หนังสือยินยอมให้หักเงินเดือน")
	p.rightLine(lit("วันที่ "), field(data.Date, 45))
	p.spacer(2)
	p.line(lit("ข้าพเจ้า "), field(app.FullName, 55),
		lit(" รหัสพนักงาน "), field(data.EmployeeID, 30))
	p.line(lit("ตำแหน่ง "), field(data.Position, 45),
		lit(" สังกัด "), field(data.Department, 40))
	p.line(lit("วันที่เริ่มงาน "), field(start(data.StartDate, app.StartWorkDate), 40))
	p.spacer(2)
	p.para(fmt.Sprintf("ข้าพเจ้ายินยอมให้ %s หักเงินเดือนจำนวน %d บาท "+
		"เพื่อเป็นค่าใช้จ่ายในการจัดทำเอกสารประกอบการจ้างงาน ดังนี้", co.Name, amount))
	p.text(fmt.Sprintf("1. ค่าตรวจประวัติอาชญากรรม ท่านละ %d บาท", criminalCheckFee))
	p.text(fmt.Sprintf("2. หนังสือมอบอำนาจ (ค่าแสตมป์อากรท่านละ %d บาท)", stampDutyFee))
	p.boldText(fmt.Sprintf("รวมเป็นท่านละ %d บาท (%s)", amount, thainum.BahtText(int64(amount))))
	p.spacer(2)
	p.para("โดยยินยอมให้หักจากค่าจ้างงวดแรกที่ข้าพเจ้ามีสิทธิได้รับ " +
		"และจะไม่เรียกร้องเงินจำนวนดังกล่าวคืนไม่ว่ากรณีใด")
	p.spacer(10)
	p.signature("ผู้ให้ความยินยอม", data.SignatureURL, app.FullName, data.SignatureDate)

	return []Page{p.page()}
}
