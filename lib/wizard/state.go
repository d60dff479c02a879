package wizard

import (
	"github.com/pkg/errors"

	"hr-intake-backend/lib/utils/helpers"
	"hr-intake-backend/models"
)

type Step int

const (
	StepPersonal  Step = 1 // personal data
	StepFamily    Step = 2 // family, education, skills, training
	StepStatement Step = 3 // experience, health, statements, referral, parents
	StepSignature Step = 4 // emergency contacts, attitude, signature
)

const (
	msgStep1 = "กรุณากรอกข้อมูลที่จำเป็นให้ครบถ้วน"
	msgStep3 = "กรุณากรอกประวัติการทำงาน"
	msgStep4 = "กรุณากรอกข้อมูลผู้ติดต่อฉุกเฉินอย่างน้อย 1 คน"
)

// State is the whole wizard session: current step, accumulated form data
// and the error flags of the last failed validation. One instance per
// session, owned by the caller and passed explicitly, never shared.
type State struct {
	Step   Step
	Data   models.ApplicationData
	Errors ErrorFlags
}

func NewState() *State {
	return &State{
		Step:   StepPersonal,
		Data:   models.ApplicationData{},
		Errors: ErrorFlags{},
	}
}

// Next validates the current step. On failure it records the field flags
// and returns the aggregate step message without advancing. On success at
// the last data step it reports completion (the hand-off to the consent
// step) instead of advancing; persistence never happens here.
func (s *State) Next() (completed bool, err error) {
	flags, msg := s.validateCurrent()
	if len(flags) > 0 {
		s.Errors = flags
		return false, errors.New(msg)
	}
	s.Errors = ErrorFlags{}
	if s.Step < StepSignature {
		s.Step++
		return false, nil
	}
	return true, nil
}

// Back never validates and no-ops at the first step.
func (s *State) Back() {
	if s.Step > StepPersonal {
		s.Step--
	}
}

func (s *State) validateCurrent() (ErrorFlags, string) {
	return ValidateStep(s.Step, s.Data)
}

// ValidateStep runs one step's validation against a data snapshot. Steps
// without mandatory fields return no flags.
func ValidateStep(step Step, data models.ApplicationData) (ErrorFlags, string) {
	switch step {
	case StepPersonal:
		return ValidateStep1(data.PersonalData), msgStep1
	case StepStatement:
		return ValidateStep3(data.ExperienceData), msgStep3
	case StepSignature:
		return ValidateStep4(data.EmergencyContacts), msgStep4
	}
	return nil, ""
}

// Touch clears the error flags of changed fields, so a field stops being
// highlighted as soon as the user edits it.
func (s *State) Touch(fields ...string) {
	for _, f := range fields {
		delete(s.Errors, f)
	}
}

// SetIDCard stores the digit-stripped national id.
func (s *State) SetIDCard(value string) {
	s.Data.PersonalData.IDCard = helpers.DigitsOnly(value)
	s.Touch("id_card")
}

// SetMobilePhone stores the digit-stripped mobile number.
func (s *State) SetMobilePhone(value string) {
	s.Data.PersonalData.MobilePhone = helpers.DigitsOnly(value)
	s.Touch("mobile_phone")
}

// SetRegisteredZipcode stores the digit-stripped postal code.
func (s *State) SetRegisteredZipcode(value string) {
	s.Data.PersonalData.RegisteredAddress.Zipcode = helpers.DigitsOnly(value)
	s.Touch("registered_address")
}

// UseRegisteredAddressAsCurrent copies the registered address into the
// current address by value at the moment of selection; later edits to the
// registered address do not follow into the copy.
func (s *State) UseRegisteredAddressAsCurrent() {
	s.Data.PersonalData.CurrentAddressType = "same"
	s.Data.PersonalData.CurrentAddress = s.Data.PersonalData.RegisteredAddress
}
