package docproject

import "hr-intake-backend/models"

// buildFMHRD19 lays out the new employee orientation record. Two pages: the
// course outline with the attendee details, then the acknowledgement and
// approval signatures.
func buildFMHRD19(app Applicant, data *models.FmHrdData, co Company) []Page {
	if data == nil {
		data = &models.FmHrdData{}
	}
	emp := data.EmployeeData

	var p1 pageBuilder
	p1.logo(co.LogoURL)
	p1.title("หลักสูตรปฐมนิเทศพนักงานใหม่")
	p1.centerLine(field(co.Name, 80))
	p1.rightLine(lit("FM-HRD-19"))
	p1.spacer(4)
	p1.line(lit("ชื่อ-นามสกุล "), field(app.FullName, 55),
		lit(" รหัสพนักงาน "), field(emp.EmployeeID, 30))
	p1.line(lit("ตำแหน่ง "), field(emp.Position, 45),
		lit(" สังกัด "), field(emp.Department, 45))
	p1.line(lit("วันที่เริ่มงาน "), field(start(emp.StartDate, app.StartWorkDate), 40))
	p1.spacer(4)
	p1.boldText("หัวข้อการปฐมนิเทศ")
	p1.text("1. ประวัติความเป็นมา วิสัยทัศน์ และพันธกิจของบริษัท")
	p1.text("2. โครงสร้างองค์กรและสายการบังคับบัญชา")
	p1.text("3. ระเบียบข้อบังคับเกี่ยวกับการทำงาน เวลาทำงาน และวันหยุด")
	p1.text("4. สวัสดิการพนักงาน ประกันสังคม และประกันกลุ่ม")
	p1.text("5. นโยบายความปลอดภัย อาชีวอนามัย และสภาพแวดล้อมในการทำงาน")
	p1.text("6. นโยบายคุ้มครองข้อมูลส่วนบุคคลและการรักษาความลับ")
	p1.text("7. ระบบการประเมินผลการปฏิบัติงานและการทดลองงาน")

	var p2 pageBuilder
	p2.para("ข้าพเจ้าได้เข้ารับการปฐมนิเทศตามหัวข้อข้างต้นครบถ้วน และได้รับทราบระเบียบข้อบังคับ " +
		"เกี่ยวกับการทำงานของบริษัทแล้ว ข้าพเจ้าตกลงจะปฏิบัติตามระเบียบข้อบังคับดังกล่าวทุกประการ")
	p2.spacer(10)
	p2.signature("พนักงาน", emp.SignatureURL, app.FullName, emp.SignatureDate)
	p2.spacer(8)
	p2.signature("ผู้ดำเนินการปฐมนิเทศ", "", data.ApprovedBy, data.ApprovedDate)
	p2.centerLine(lit("ฝ่ายทรัพยากรบุคคล"))

	return []Page{p1.page(), p2.page()}
}

// buildFMHRD30 lays out the criminal record check notice. One page.
func buildFMHRD30(app Applicant, data *models.FmHrdData, co Company) []Page {
	if data == nil {
		data = &models.FmHrdData{}
	}
	emp := data.EmployeeData

	var p pageBuilder
	p.logo(co.LogoURL)
	p.rightLine(lit("FM-HRD-30"))
	p.title("ประกาศ")
	p.centerLine(lit("เลขที่ประกาศ "), field(emp.EmployeeID, 30))
	p.spacer(2)
	p.line(lit("เรื่อง"), lit(" การตรวจสอบประวัติอาชญากรรมพนักงานใหม่"))
	p.line(lit("เรียน"), lit(" "), field(app.FullName, 60))
	p.spacer(2)
	p.para("ตามที่ท่านได้ผ่านการคัดเลือกเข้าเป็นพนักงานของ " + co.Name +
		" บริษัทขอแจ้งให้ทราบว่า บริษัทมีนโยบายตรวจสอบประวัติอาชญากรรมของพนักงานใหม่ทุกราย " +
		"ผ่านกองทะเบียนประวัติอาชญากร สำนักงานตำรวจแห่งชาติ ก่อนการบรรจุเป็นพนักงานประจำ")
	p.para("ในการนี้ ขอให้ท่านลงนามในหนังสือมอบอำนาจเพื่อให้บริษัทดำเนินการตรวจสอบประวัติแทนท่าน " +
		"พร้อมแนบสำเนาบัตรประจำตัวประชาชนที่รับรองสำเนาถูกต้อง หากมีข้อสงสัยประการใด " +
		"กรุณาติดต่อฝ่ายทรัพยากรบุคคล")
	p.para("จึงประกาศมาเพื่อทราบโดยทั่วกัน")
	p.spacer(12)
	p.signature("กรรมการผู้จัดการ", "", data.ApprovedBy, data.ApprovedDate)

	return []Page{p.page()}
}

func start(formValue, applicantValue string) string {
	if formValue != "" {
		return formValue
	}
	return applicantValue
}
