package docproject

import "hr-intake-backend/models"

// buildNDA lays out the confidentiality agreement. Two pages: the clauses,
// then the acknowledgement and both signature blocks.
func buildNDA(app Applicant, data *models.NdaData, co Company) []Page {
	if data == nil {
		data = &models.NdaData{}
	}
	emp := data.EmployeeData
	com := data.CompanyData

	var p1 pageBuilder
	p1.logo(co.LogoURL)
	p1.title("สัญญารักษาความลับของข้อมูล")
	p1.centerLine(field(co.Name, 80))
	p1.spacer(4)
	p1.rightLine(lit("ทำที่ "), field(com.ContractAddress, 60))
	p1.rightLine(lit("วันที่ "), field(com.EffectiveDate, 45))
	p1.spacer(2)
	p1.line(lit("สัญญาฉบับนี้ทำขึ้นระหว่าง "), field(co.Name, 70), lit(" ซึ่งต่อไปในสัญญานี้เรียกว่า \"บริษัท\" ฝ่ายหนึ่ง"))
	p1.line(lit("กับ "), field(app.FullName, 55),
		lit(" ตำแหน่ง "), field(emp.Position, 45),
		lit(" สังกัด "), field(emp.Department, 40))
	p1.text("ซึ่งต่อไปในสัญญานี้เรียกว่า \"พนักงาน\" อีกฝ่ายหนึ่ง ทั้งสองฝ่ายตกลงกันดังต่อไปนี้")
	p1.spacer(2)
	p1.para("ข้อ 1. พนักงานตกลงจะเก็บรักษาข้อมูลอันเป็นความลับของบริษัท ซึ่งรวมถึงแต่ไม่จำกัดเพียง " +
		"ข้อมูลทางการค้า ข้อมูลลูกค้า ข้อมูลทางเทคนิค แผนงานธุรกิจ และข้อมูลอื่นใดที่บริษัทมิได้เปิดเผย " +
		"ต่อสาธารณะ ไว้เป็นความลับโดยเคร่งครัด")
	p1.para("ข้อ 2. พนักงานจะไม่นำข้อมูลอันเป็นความลับไปเปิดเผย ทำซ้ำ หรือใช้เพื่อประโยชน์ของตนเอง " +
		"หรือบุคคลอื่น ไม่ว่าในระหว่างการทำงานหรือภายหลังพ้นสภาพการเป็นพนักงานของบริษัทแล้ว " +
		"เว้นแต่จะได้รับความยินยอมเป็นลายลักษณ์อักษรจากบริษัทก่อน")
	p1.para("ข้อ 3. เมื่อพ้นสภาพการเป็นพนักงาน พนักงานจะส่งมอบเอกสาร บันทึก และสื่อบันทึกข้อมูล " +
		"ทั้งหมดที่มีข้อมูลอันเป็นความลับของบริษัทคืนให้แก่บริษัททันที")
	p1.para("ข้อ 4. หากพนักงานฝ่าฝืนสัญญานี้ พนักงานยินยอมชดใช้ค่าเสียหายที่เกิดขึ้นแก่บริษัททั้งสิ้น " +
		"และบริษัทมีสิทธิดำเนินการตามกฎหมายทั้งทางแพ่งและทางอาญา")

	var p2 pageBuilder
	p2.para("สัญญานี้มีผลบังคับตั้งแต่วันที่พนักงานลงนามเป็นต้นไป และยังคงมีผลต่อเนื่อง " +
		"แม้ภายหลังการพ้นสภาพการเป็นพนักงานของบริษัท")
	p2.para("คู่สัญญาทั้งสองฝ่ายได้อ่านและเข้าใจข้อความในสัญญานี้โดยตลอดแล้ว " +
		"จึงลงลายมือชื่อไว้เป็นหลักฐานต่อหน้าพยาน")
	p2.spacer(10)
	p2.signature("พนักงาน", emp.SignatureURL, app.FullName, emp.SignatureDate)
	p2.spacer(8)
	p2.signature("ในนามบริษัท", com.SignatureURL, com.SignerName, com.SignDate)
	p2.centerLine(lit("ตำแหน่ง "), field(com.SignerPosition, 50))
	p2.spacer(8)
	p2.centerLine(lit("(ลงชื่อ) "), field(com.WitnessName, 50), lit(" พยาน"))

	return []Page{p1.page(), p2.page()}
}
