package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hr-intake-backend/models"
)

func validPersonalData() models.PersonalData {
	return models.PersonalData{
		Position1:      "พนักงานบัญชี",
		ExpectedSalary: "25000",
		Race:           "ไทย",
		Nationality:    "ไทย",
		Religion:       "พุทธ",
		Dob:            "1995-04-21",
		FirstName:      "สมชาย",
		LastName:       "ใจดี",
		EnglishName:    "Somchai Jaidee",
		IDCard:         "1234567890123",
		Email:          "somchai@example.com",
		MobilePhone:    "0812345678",
		RegisteredAddress: models.Address{
			Number:      "99/1",
			Subdistrict: "คลองตัน",
			District:    "คลองเตย",
			Province:    "กรุงเทพมหานคร",
			Zipcode:     "10110",
		},
	}
}

func TestValidateStep1(t *testing.T) {
	t.Run(`well formed data passes`, func(t *testing.T) {
		require.Empty(t, ValidateStep1(validPersonalData()))
	})

	t.Run(`deterministic for a fixed snapshot`, func(t *testing.T) {
		pd := validPersonalData()
		pd.Email = "broken"
		pd.IDCard = "123"
		first := ValidateStep1(pd)
		second := ValidateStep1(pd)
		require.Equal(t, first, second)
	})

	t.Run(`omitting one required field flags exactly that field`, func(t *testing.T) {
		cases := map[string]func(*models.PersonalData){
			"position_1":      func(pd *models.PersonalData) { pd.Position1 = "" },
			"expected_salary": func(pd *models.PersonalData) { pd.ExpectedSalary = "" },
			"race":            func(pd *models.PersonalData) { pd.Race = "" },
			"nationality":     func(pd *models.PersonalData) { pd.Nationality = "" },
			"religion":        func(pd *models.PersonalData) { pd.Religion = "" },
			"dob":             func(pd *models.PersonalData) { pd.Dob = "" },
			"email":           func(pd *models.PersonalData) { pd.Email = "" },
			"id_card":         func(pd *models.PersonalData) { pd.IDCard = "" },
			"mobile_phone":    func(pd *models.PersonalData) { pd.MobilePhone = "" },
			"english_name":    func(pd *models.PersonalData) { pd.EnglishName = "" },
		}
		for field, clear := range cases {
			pd := validPersonalData()
			clear(&pd)
			errs := ValidateStep1(pd)
			require.Len(t, errs, 1, "field %s", field)
			require.True(t, errs.Has(field), "field %s", field)
		}
	})

	t.Run(`thai name failure flags both name fields`, func(t *testing.T) {
		pd := validPersonalData()
		pd.FirstName = "Somchai" // latin only
		errs := ValidateStep1(pd)
		require.True(t, errs.Has("first_name"))
		require.True(t, errs.Has("last_name"))
		require.Len(t, errs, 2)
	})

	t.Run(`empty first name flags both name fields`, func(t *testing.T) {
		pd := validPersonalData()
		pd.FirstName = ""
		errs := ValidateStep1(pd)
		require.True(t, errs.Has("first_name"))
		require.True(t, errs.Has("last_name"))
		require.Len(t, errs, 2)
	})

	t.Run(`single word english name fails`, func(t *testing.T) {
		pd := validPersonalData()
		pd.EnglishName = "Somchai"
		errs := ValidateStep1(pd)
		require.True(t, errs.Has("english_name"))
		require.Len(t, errs, 1)
	})

	t.Run(`id card must be exactly 13 digits`, func(t *testing.T) {
		pd := validPersonalData()
		pd.IDCard = "123456789012" // 12 digits
		errs := ValidateStep1(pd)
		require.True(t, errs.Has("id_card"))
		require.Len(t, errs, 1)
	})

	t.Run(`mobile phone must be exactly 10 digits`, func(t *testing.T) {
		pd := validPersonalData()
		pd.MobilePhone = "08123456789"
		errs := ValidateStep1(pd)
		require.True(t, errs.Has("mobile_phone"))
		require.Len(t, errs, 1)
	})

	t.Run(`incomplete address block is flagged as one unit`, func(t *testing.T) {
		pd := validPersonalData()
		pd.RegisteredAddress.Province = ""
		errs := ValidateStep1(pd)
		require.True(t, errs.Has("registered_address"))
		require.Len(t, errs, 1)
	})
}

func TestValidateStep3(t *testing.T) {
	t.Run(`no experience passes with empty history`, func(t *testing.T) {
		require.Empty(t, ValidateStep3(models.ExperienceData{HasExperience: "no"}))
	})

	t.Run(`has experience but no rows fails`, func(t *testing.T) {
		errs := ValidateStep3(models.ExperienceData{HasExperience: "yes"})
		require.True(t, errs.Has("experience_history"))
	})

	t.Run(`first row must carry at least one of period workplace position`, func(t *testing.T) {
		ed := models.ExperienceData{
			HasExperience: "yes",
			History:       []models.ExperienceEntry{{Salary: "15000"}},
		}
		errs := ValidateStep3(ed)
		require.True(t, errs.Has("experience_history"))

		ed.History[0].Workplace = "บริษัทเดิม"
		require.Empty(t, ValidateStep3(ed))
	})
}

func TestValidateStep4(t *testing.T) {
	t.Run(`no contacts fails`, func(t *testing.T) {
		errs := ValidateStep4(nil)
		require.True(t, errs.Has("emergency_contacts"))
	})

	t.Run(`contact without phone fails`, func(t *testing.T) {
		errs := ValidateStep4(models.EmergencyContactList{{Name: "สมศรี"}})
		require.True(t, errs.Has("emergency_contacts"))
	})

	t.Run(`one complete contact among incomplete ones passes`, func(t *testing.T) {
		contacts := models.EmergencyContactList{
			{Name: "สมศรี"},
			{Name: "สมหมาย", Phone: "0898765432"},
		}
		require.Empty(t, ValidateStep4(contacts))
	})
}

func TestStateMachine(t *testing.T) {
	t.Run(`next blocks on an invalid id card and advances after the fix`, func(t *testing.T) {
		s := NewState()
		s.Data.PersonalData = validPersonalData()
		s.SetIDCard("123456789012") // 12 digits

		completed, err := s.Next()
		require.Error(t, err)
		require.False(t, completed)
		require.Equal(t, StepPersonal, s.Step)
		require.True(t, s.Errors.Has("id_card"))

		s.SetIDCard("1234567890123")
		require.False(t, s.Errors.Has("id_card"))

		completed, err = s.Next()
		require.Nil(t, err)
		require.False(t, completed)
		require.Equal(t, StepFamily, s.Step)
	})

	t.Run(`step 2 has no validator and always advances`, func(t *testing.T) {
		s := NewState()
		s.Step = StepFamily
		completed, err := s.Next()
		require.Nil(t, err)
		require.False(t, completed)
		require.Equal(t, StepStatement, s.Step)
	})

	t.Run(`last step reports completion instead of advancing`, func(t *testing.T) {
		s := NewState()
		s.Step = StepSignature
		s.Data.EmergencyContacts = models.EmergencyContactList{{Name: "สมศรี", Phone: "021112222"}}
		completed, err := s.Next()
		require.Nil(t, err)
		require.True(t, completed)
		require.Equal(t, StepSignature, s.Step)
	})

	t.Run(`back never validates and no-ops at step one`, func(t *testing.T) {
		s := NewState()
		s.Back()
		require.Equal(t, StepPersonal, s.Step)

		s.Step = StepStatement
		s.Back()
		require.Equal(t, StepFamily, s.Step)
	})

	t.Run(`digit stripping on entry`, func(t *testing.T) {
		s := NewState()
		s.SetMobilePhone("081-234-5678")
		require.Equal(t, "0812345678", s.Data.PersonalData.MobilePhone)
		s.SetIDCard("1-2345-67890-12-3")
		require.Equal(t, "1234567890123", s.Data.PersonalData.IDCard)
	})

	t.Run(`same as registered copies the address by value`, func(t *testing.T) {
		s := NewState()
		s.Data.PersonalData.RegisteredAddress = models.Address{
			Number: "99/1", Moo: "4", Subdistrict: "คลองตัน",
			District: "คลองเตย", Province: "กรุงเทพมหานคร", Zipcode: "10110",
		}
		s.UseRegisteredAddressAsCurrent()
		require.Equal(t, "same", s.Data.PersonalData.CurrentAddressType)
		require.Equal(t, s.Data.PersonalData.RegisteredAddress, s.Data.PersonalData.CurrentAddress)

		// later edits to the registered address must not follow the copy
		s.Data.PersonalData.RegisteredAddress.Number = "11"
		require.Equal(t, "99/1", s.Data.PersonalData.CurrentAddress.Number)
	})
}
