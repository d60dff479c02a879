package docproject

import "hr-intake-backend/models"

// buildPDPA lays out the personal data protection consent form. Two pages:
// the consent text, then the scope of processing and the signature block.
func buildPDPA(app Applicant, data *models.PdpaData, co Company) []Page {
	if data == nil {
		data = &models.PdpaData{}
	}
	emp := data.EmployeeData

	var p1 pageBuilder
	p1.logo(co.LogoURL)
	p1.title("หนังสือให้ความยินยอมในการเก็บรวบรวม ใช้ และเปิดเผยข้อมูลส่วนบุคคล")
	p1.centerLine(lit("สำหรับผู้สมัครงาน "), field(co.Name, 70))
	p1.spacer(4)
	p1.rightLine(lit("เขียนที่ "), field(emp.WrittenAt, 55))
	p1.rightLine(lit("วันที่ "), field(emp.WrittenDate, 45))
	p1.spacer(2)
	p1.line(lit("ข้าพเจ้า "), field(app.FullName, 60),
		lit(" เลขประจำตัวประชาชน "), field(app.PersonalData.IDCard, 45))
	p1.line(lit("หมายเลขโทรศัพท์ "), field(app.PersonalData.MobilePhone, 40),
		lit(" ไลน์ไอดี "), field(emp.LineID, 40))
	p1.spacer(2)
	p1.para("ข้าพเจ้าตกลงยินยอมให้บริษัทเก็บรวบรวม ใช้ และเปิดเผยข้อมูลส่วนบุคคลของข้าพเจ้า " +
		"ตามที่ปรากฏในใบสมัครงานและเอกสารประกอบการสมัครงาน เพื่อวัตถุประสงค์ในการพิจารณา " +
		"คัดเลือกเข้าทำงาน การตรวจสอบคุณสมบัติ การติดต่อสื่อสาร และการดำเนินการอื่นใดที่เกี่ยวข้อง " +
		"กับกระบวนการสรรหาบุคลากรของบริษัท ทั้งนี้ ตามพระราชบัญญัติคุ้มครองข้อมูลส่วนบุคคล พ.ศ. 2562")
	p1.para("ข้อมูลส่วนบุคคลที่บริษัทเก็บรวบรวม ได้แก่ ข้อมูลประวัติส่วนตัว ข้อมูลการศึกษา " +
		"ประวัติการทำงาน ข้อมูลสุขภาพเท่าที่จำเป็นต่อการปฏิบัติงาน รูปถ่าย และข้อมูลการติดต่อ " +
		"โดยบริษัทจะเก็บรักษาข้อมูลดังกล่าวไว้เป็นระยะเวลาไม่เกินหนึ่งปีนับแต่วันที่ยื่นใบสมัคร " +
		"เว้นแต่ข้าพเจ้าได้รับการคัดเลือกเข้าเป็นพนักงานของบริษัท")
	p1.para("ข้าพเจ้ารับทราบว่าข้าพเจ้ามีสิทธิขอเข้าถึง ขอรับสำเนา ขอแก้ไข ขอให้ลบหรือทำลาย " +
		"และขอถอนความยินยอมในการประมวลผลข้อมูลส่วนบุคคลของข้าพเจ้าได้ตลอดเวลา " +
		"โดยติดต่อฝ่ายทรัพยากรบุคคลของบริษัท")

	var p2 pageBuilder
	p2.boldText("ขอบเขตการเปิดเผยข้อมูลส่วนบุคคล")
	p2.para("บริษัทอาจเปิดเผยข้อมูลส่วนบุคคลของข้าพเจ้าให้แก่หน่วยงานราชการที่เกี่ยวข้อง " +
		"สำนักงานประกันสังคม กรมสรรพากร สถาบันการเงินที่บริษัทใช้บริการจ่ายเงินเดือน " +
		"และผู้ให้บริการภายนอกที่บริษัทว่าจ้างให้ตรวจสอบประวัติ ทั้งนี้เท่าที่จำเป็นตามวัตถุประสงค์ข้างต้น")
	p2.spacer(4)
	p2.checkbox("ข้าพเจ้าได้อ่านและเข้าใจข้อความข้างต้นโดยตลอดแล้ว และยินยอมให้บริษัท"+
		"เก็บรวบรวม ใช้ และเปิดเผยข้อมูลส่วนบุคคลของข้าพเจ้าตามที่ระบุไว้ทุกประการ", emp.Agreed)
	p2.spacer(8)
	p2.signature("ผู้ให้ความยินยอม", emp.SignatureURL, app.FullName, emp.SignatureDate)
	p2.spacer(4)
	if emp.AcceptedDate != "" {
		p2.centerLine(lit("บริษัทรับทราบเมื่อวันที่ "), field(emp.AcceptedDate, 40))
	}

	return []Page{p1.page(), p2.page()}
}
