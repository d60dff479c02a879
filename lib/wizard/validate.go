package wizard

import (
	"hr-intake-backend/lib/utils/helpers"
	"hr-intake-backend/models"
)

// ErrorFlags maps a field name to an error marker. Keys follow the json
// field names of the section structs; two step-level keys exist for blocks
// validated as one unit: "registered_address", "experience_history" and
// "emergency_contacts".
type ErrorFlags map[string]bool

func (f ErrorFlags) Has(field string) bool { return f[field] }

// step 1 mandatory fields checked for plain presence
var step1Required = []func(pd models.PersonalData) (field, value string){
	func(pd models.PersonalData) (string, string) { return "position_1", pd.Position1 },
	func(pd models.PersonalData) (string, string) { return "expected_salary", pd.ExpectedSalary },
	func(pd models.PersonalData) (string, string) { return "race", pd.Race },
	func(pd models.PersonalData) (string, string) { return "nationality", pd.Nationality },
	func(pd models.PersonalData) (string, string) { return "religion", pd.Religion },
	func(pd models.PersonalData) (string, string) { return "dob", pd.Dob },
	func(pd models.PersonalData) (string, string) { return "first_name", pd.FirstName },
	func(pd models.PersonalData) (string, string) { return "last_name", pd.LastName },
	func(pd models.PersonalData) (string, string) { return "english_name", pd.EnglishName },
}

// ValidateStep1 checks the personal-data section. Pure function: the same
// snapshot always yields the same flag map.
func ValidateStep1(pd models.PersonalData) ErrorFlags {
	errs := ErrorFlags{}

	for _, get := range step1Required {
		if field, value := get(pd); value == "" {
			errs[field] = true
		}
	}

	if len(pd.IDCard) != 13 {
		errs["id_card"] = true
	}
	if !helpers.IsEmail(pd.Email) {
		errs["email"] = true
	}
	if len(pd.MobilePhone) != 10 {
		errs["mobile_phone"] = true
	}

	// first and last name are flagged together when either misses Thai script
	if !helpers.HasThaiRune(pd.FirstName) || !helpers.HasThaiRune(pd.LastName) {
		errs["first_name"] = true
		errs["last_name"] = true
	}

	if !helpers.IsEnglishFullName(pd.EnglishName) {
		errs["english_name"] = true
	}

	// the registered address block is flagged as one unit
	if !pd.RegisteredAddress.Complete() {
		errs["registered_address"] = true
	}

	return errs
}

// ValidateStep3 checks the work-experience section: with the toggle on
// "yes" there must be at least one history row, and the first row must
// carry at least one of period/workplace/position.
func ValidateStep3(ed models.ExperienceData) ErrorFlags {
	errs := ErrorFlags{}
	if ed.HasExperience == "yes" {
		if len(ed.History) == 0 {
			errs["experience_history"] = true
		} else {
			first := ed.History[0]
			if first.Period == "" && first.Workplace == "" && first.Position == "" {
				errs["experience_history"] = true
			}
		}
	}
	return errs
}

// ValidateStep4 requires at least one emergency contact with both name and
// phone filled.
func ValidateStep4(contacts models.EmergencyContactList) ErrorFlags {
	errs := ErrorFlags{}
	hasValid := false
	for _, c := range contacts {
		if c.Name != "" && c.Phone != "" {
			hasValid = true
			break
		}
	}
	if !hasValid {
		errs["emergency_contacts"] = true
	}
	return errs
}
