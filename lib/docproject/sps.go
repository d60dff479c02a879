package docproject

import "hr-intake-backend/models"

// buildSPS lays out the social security forms. SPS 1-03 registers a new
// insured person, SPS 9-02 notifies a change of employer. One page each.
func buildSPS(pdfType models.PdfType, app Applicant, data *models.SpsData, co Company) []Page {
	if data == nil {
		data = &models.SpsData{}
	}

	var p pageBuilder
	if pdfType == models.PdfTypeSPS103 {
		p.title("แบบขึ้นทะเบียนผู้ประกันตน")
		p.centerLine(lit("แบบ สปส. 1-03"))
	} else {
		p.title("แบบแจ้งการรับผู้ประกันตนเข้าทำงาน")
		p.centerLine(lit("แบบ สปส. 9-02"))
	}
	p.spacer(4)

	p.boldText("ส่วนที่ 1 ข้อมูลผู้ประกันตน")
	p.line(lit("ชื่อ-นามสกุล "), field(app.FullName, 55),
		lit(" เลขประจำตัวประชาชน "), field(app.PersonalData.IDCard, 40))
	p.line(lit("วันเดือนปีเกิด "), field(app.PersonalData.Dob, 35),
		lit(" สัญชาติ "), field(app.PersonalData.Nationality, 30))
	p.line(lit("หมายเลขโทรศัพท์ "), field(app.PersonalData.MobilePhone, 35))
	if pdfType == models.PdfTypeSPS902 {
		p.line(lit("วุฒิการศึกษา "), field(data.EducationLevel, 40),
			lit(" สาขา "), field(data.EducationMajor, 45))
	}
	p.spacer(3)

	if pdfType == models.PdfTypeSPS103 {
		p.boldText("ส่วนที่ 2 ข้อมูลนายจ้างเดิม")
		p.line(lit("ชื่อสถานประกอบการ "), field(data.PreviousEmployer, 55),
			lit(" เลขที่บัญชี "), field(data.PreviousEmployerID, 35))
		p.line(lit("วันที่สิ้นสุดการทำงาน "), field(data.LastWorkDate, 35))
		p.spacer(3)
		p.boldText("ส่วนที่ 3 ข้อมูลนายจ้างใหม่")
		p.line(lit("ชื่อสถานประกอบการ "), field(data.NewEmployer, 55),
			lit(" เลขที่บัญชี "), field(data.NewEmployerID, 35))
	} else {
		p.boldText("ส่วนที่ 2 ข้อมูลนายจ้าง")
		p.line(lit("ชื่อสถานประกอบการ "), field(data.EmployerName, 55),
			lit(" เลขที่บัญชี "), field(data.EmployerID, 35))
	}
	p.line(lit("วันที่เข้าทำงาน "), field(start("", app.StartWorkDate), 35),
		lit(" อัตราค่าจ้าง "), field(data.Salary, 30), lit(" บาท/เดือน"))
	p.spacer(6)

	p.signature("ผู้ประกันตน", data.SignatureURL, app.FullName, data.SignatureDate)
	p.spacer(4)
	p.boldText("สำหรับเจ้าหน้าที่")
	p.line(lit("สาขาที่ "), field(data.EmployerData.BranchNumber, 25),
		lit(" ผู้บันทึก "), field(data.EmployerData.OfficerName, 45),
		lit(" วันที่ "), field(data.EmployerData.SignatureDate, 30))

	return []Page{p.page()}
}
