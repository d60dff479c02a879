package docproject

import "hr-intake-backend/models"

// buildInsurance lays out the group insurance enrollment form. Two pages:
// the insured person and beneficiary details, then the consent and the
// enrollment numbers filled in during review.
func buildInsurance(app Applicant, data *models.InsuranceData, co Company) []Page {
	if data == nil {
		data = &models.InsuranceData{}
	}

	var p1 pageBuilder
	p1.logo(co.LogoURL)
	p1.title("ใบสมัครเอาประกันภัยกลุ่ม")
	p1.centerLine(lit("ผู้ถือกรมธรรม์ "), field(co.Name, 70))
	p1.spacer(4)
	p1.boldText("ข้อมูลผู้ขอเอาประกันภัย")
	p1.line(lit("ชื่อ-นามสกุล "), field(app.FullName, 55),
		lit(" เลขประจำตัวประชาชน "), field(app.PersonalData.IDCard, 40))
	p1.line(lit("วันเดือนปีเกิด "), field(app.PersonalData.Dob, 35),
		lit(" สัญชาติ "), field(app.PersonalData.Nationality, 25))
	p1.line(lit("หมายเลขโทรศัพท์ "), field(app.PersonalData.MobilePhone, 35),
		lit(" อีเมล "), field(app.PersonalData.Email, 50))
	p1.line(lit("วันที่เริ่มงาน "), field(app.StartWorkDate, 35))
	p1.spacer(3)
	p1.boldText("ผู้รับประโยชน์")
	p1.line(lit("ชื่อ-นามสกุล "), field(data.Beneficiary, 55),
		lit(" ความสัมพันธ์ "), field(data.BeneficiaryRelation, 35))

	var p2 pageBuilder
	p2.para("ข้าพเจ้าขอรับรองว่าข้อความข้างต้นเป็นความจริงทุกประการ และยินยอมให้บริษัทประกันภัย " +
		"ตรวจสอบประวัติสุขภาพของข้าพเจ้าจากสถานพยาบาลที่เกี่ยวข้องเพื่อประกอบการพิจารณารับประกันภัย " +
		"ทั้งนี้ ข้าพเจ้ายินยอมให้หักเบี้ยประกันภัยส่วนที่ข้าพเจ้าต้องรับผิดชอบจากค่าจ้างตามเงื่อนไขกรมธรรม์")
	p2.spacer(8)
	p2.signature("ผู้ขอเอาประกันภัย", data.SignatureURL, app.FullName, data.SignatureDate)
	p2.spacer(6)
	p2.boldText("สำหรับเจ้าหน้าที่")
	p2.line(lit("เลขที่กรมธรรม์กลุ่ม "), field(data.GroupNumber, 40),
		lit(" เลขที่ใบรับรอง "), field(data.CertificateNumber, 40))

	return []Page{p1.page(), p2.page()}
}
