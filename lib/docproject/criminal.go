package docproject

import "hr-intake-backend/models"

// buildCriminalCheck lays out the power of attorney for the criminal record
// check. Two pages: the direct form, then the through-agency variant.
func buildCriminalCheck(app Applicant, data *models.CriminalCheckData, co Company) []Page {
	if data == nil {
		data = &models.CriminalCheckData{}
	}

	var p1 pageBuilder
	p1.logo(co.LogoURL)
	p1.title("หนังสือมอบอำนาจ")
	p1.rightLine(lit("ทำที่ "), field(data.WrittenAt, 55))
	p1.rightLine(lit("วันที่ "), field(data.WrittenDate, 45))
	p1.spacer(2)
	p1.line(lit("ข้าพเจ้า "), field(app.FullName, 55),
		lit(" เลขประจำตัวประชาชน "), field(app.PersonalData.IDCard, 45))
	p1.line(lit("ขอมอบอำนาจให้ "), field(data.AttorneyName, 55),
		lit(" ผู้รับมอบอำนาจ"))
	p1.para("เป็นผู้มีอำนาจยื่นคำขอตรวจสอบประวัติอาชญากรรมของข้าพเจ้าต่อกองทะเบียนประวัติอาชญากร " +
		"สำนักงานตำรวจแห่งชาติ รวมทั้งรับผลการตรวจสอบแทนข้าพเจ้า จนเสร็จการ " +
		"การใดที่ผู้รับมอบอำนาจได้กระทำไปภายในขอบเขตแห่งหนังสือมอบอำนาจนี้ " +
		"ให้ถือเสมือนว่าข้าพเจ้าได้กระทำด้วยตนเองทุกประการ")
	p1.spacer(8)
	p1.signature("ผู้มอบอำนาจ", data.SignatureURL, app.FullName, data.SignatureDate)
	p1.spacer(6)
	p1.centerLine(lit("(ลงชื่อ) "), field(data.AttorneyName, 50), lit(" ผู้รับมอบอำนาจ"))
	p1.centerLine(lit("(ลงชื่อ) "), field(data.CompanyData.WitnessName, 50), lit(" พยาน"))
	p1.spacer(4)
	p1.checkbox("ติดอากรแสตมป์ 30 บาท เรียบร้อยแล้ว", data.CompanyData.StampDutyPaid)
	p1.text("หมายเหตุ: แนบสำเนาบัตรประจำตัวประชาชนของผู้มอบอำนาจและผู้รับมอบอำนาจ พร้อมรับรองสำเนาถูกต้อง")

	var p2 pageBuilder
	p2.title("หนังสือมอบอำนาจ (ผ่านหน่วยงาน/บริษัท)")
	p2.rightLine(lit("ทำที่ "), field(data.WrittenAt, 55))
	p2.rightLine(lit("วันที่ "), field(data.WrittenDate, 45))
	p2.spacer(2)
	p2.line(lit("ข้าพเจ้า "), field(app.FullName, 55),
		lit(" เลขประจำตัวประชาชน "), field(app.PersonalData.IDCard, 45))
	p2.line(lit("ขอมอบอำนาจให้ "), field(co.Name, 70))
	p2.line(lit("โดย "), field(data.CompanyData.GrantorName, 55), lit(" ผู้รับมอบอำนาจ"))
	p2.para("เป็นผู้มีอำนาจดำเนินการยื่นคำขอตรวจสอบประวัติอาชญากรรมของข้าพเจ้า " +
		"ต่อกองทะเบียนประวัติอาชญากร สำนักงานตำรวจแห่งชาติ ผ่านระบบตรวจสอบประวัติของหน่วยงาน " +
		"รวมทั้งรับทราบผลการตรวจสอบแทนข้าพเจ้า เพื่อประกอบการพิจารณาจ้างงาน")
	p2.spacer(8)
	p2.signature("ผู้มอบอำนาจ", data.SignatureURL, app.FullName, data.SignatureDate)
	p2.spacer(6)
	p2.centerLine(lit("(ลงชื่อ) "), field(data.CompanyData.GrantorName, 50), lit(" ผู้รับมอบอำนาจ"))
	p2.centerLine(lit("(ลงชื่อ) "), field(data.CompanyData.WitnessName, 50), lit(" พยาน"))

	return []Page{p1.page(), p2.page()}
}
