package models

// Section structs of the application form. One struct per wizard section,
// field names follow the statutory paper form. Empty string means the field
// was never filled (clearing a field writes an empty string back).

type Address struct {
	Number      string `json:"number"`
	Moo         string `json:"moo"`
	Soi         string `json:"soi"`
	Road        string `json:"road"`
	Subdistrict string `json:"subdistrict"`
	District    string `json:"district"`
	Province    string `json:"province"`
	Zipcode     string `json:"zipcode"`
}

func (a Address) IsEmpty() bool {
	return a == Address{}
}

// Complete reports whether the mandatory sub-fields of the registered
// address block are filled. The block is validated as one unit.
func (a Address) Complete() bool {
	return a.Number != "" && a.Subdistrict != "" && a.District != "" &&
		a.Province != "" && a.Zipcode != ""
}

type PersonalData struct {
	ApplicationDate    string  `json:"application_date"`
	Position1          string  `json:"position_1"`
	Position2          string  `json:"position_2"`
	ExpectedSalary     string  `json:"expected_salary"`
	Prefix             string  `json:"prefix"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	ThaiNickname       string  `json:"thai_nickname"`
	EnglishName        string  `json:"english_name"`
	Dob                string  `json:"dob"`
	Age                string  `json:"age"`
	Race               string  `json:"race"`
	Nationality        string  `json:"nationality"`
	Religion           string  `json:"religion"`
	IDCard             string  `json:"id_card"`
	IDCardIssuedAt     string  `json:"id_card_issued_at"`
	IDCardExpiryDate   string  `json:"id_card_expiry_date"`
	Email              string  `json:"email"`
	MobilePhone        string  `json:"mobile_phone"`
	HomePhone          string  `json:"home_phone"`
	LineID             string  `json:"line_id"`
	Height             string  `json:"height"`
	Weight             string  `json:"weight"`
	MilitaryStatus     string  `json:"military_status"`
	RegisteredAddress  Address `json:"registered_address"`
	CurrentAddressType string  `json:"current_address_type"` // "same" or "other"
	CurrentAddress     Address `json:"current_address"`
	ResidenceType      string  `json:"residence_type"`
}

type FamilyData struct {
	MaritalStatus     string `json:"marital_status"`
	SpouseName        string `json:"spouse_name"`
	SpouseOccupation  string `json:"spouse_occupation"`
	SpouseWorkplace   string `json:"spouse_workplace"`
	SpousePhone       string `json:"spouse_phone"`
	HasChildren       string `json:"has_children"`
	ChildrenCount     string `json:"children_count"`
	ChildrenCaretaker string `json:"children_caretaker"`
	SiblingsCount     string `json:"siblings_count"`
	BirthOrder        string `json:"birth_order"`
}

type EducationEntry struct {
	Level          string `json:"level"`
	Institution    string `json:"institution"`
	Major          string `json:"major"`
	GraduationYear string `json:"graduation_year"`
	Gpa            string `json:"gpa"`
}

type EducationData struct {
	History []EducationEntry `json:"history"`
}

type SkillsData struct {
	ComputerCapability string `json:"computer_capability"`
	ThaiTyping         string `json:"thai_typing"`
	EnglishTyping      string `json:"english_typing"`
	DrivingLicense     string `json:"driving_license"`
	OwnVehicle         string `json:"own_vehicle"`
	EnglishSpeaking    string `json:"english_speaking"`
	EnglishReading     string `json:"english_reading"`
	EnglishWriting     string `json:"english_writing"`
	OtherSkills        string `json:"other_skills"`
}

type TrainingEntry struct {
	Period      string `json:"period"`
	Course      string `json:"course"`
	Institution string `json:"institution"`
	Certificate string `json:"certificate"`
}

type TrainingData struct {
	History []TrainingEntry `json:"history"`
}

type HealthData struct {
	BloodGroup       string `json:"blood_group"`
	CongenitalDiseas string `json:"congenital_disease"`
	DrugAllergy      string `json:"drug_allergy"`
	Pregnancy        string `json:"pregnancy"`
}

type SmokingHabit struct {
	Status string `json:"status"`
	Amount string `json:"amount"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type DebtStatus struct {
	OutsideSystem bool   `json:"outside_system"`
	InsideSystem  bool   `json:"inside_system"`
	House         bool   `json:"house"`
	Car           bool   `json:"car"`
	StudentLoan   bool   `json:"student_loan"`
	Other         bool   `json:"other"`
	OtherDetails  string `json:"other_details"`
}

// StatementData holds the self-declaration answers of step 3.
type StatementData struct {
	CanWorkOvertime            string            `json:"can_work_overtime"`
	CanWorkOvertimeReason      string            `json:"can_work_overtime_reason"`
	HasLegalCases              string            `json:"has_legal_cases"`
	HasLegalCasesDetails       string            `json:"has_legal_cases_details"`
	HasLegalCasesYear          string            `json:"has_legal_cases_year"`
	HasDrugHistory             string            `json:"has_drug_history"`
	HasDrugHistoryType         string            `json:"has_drug_history_type"`
	HasDrugHistoryPlace        string            `json:"has_drug_history_place"`
	HasDrugHistoryYear         string            `json:"has_drug_history_year"`
	SmokingHabit               SmokingHabit      `json:"smoking_habit"`
	AlcoholHabit               string            `json:"alcohol_habit"`
	AlcoholHabitFrequency      string            `json:"alcohol_habit_frequency"`
	HealthStatus               HealthStatus      `json:"health_status"`
	RecentMajorIllness         string            `json:"recent_major_illness"`
	RecentMajorIllnessDetails  string            `json:"recent_major_illness_details"`
	HasContagiousDisease       string            `json:"has_contagious_disease"`
	HasContagiousDiseaseDetail string            `json:"has_contagious_disease_details"`
	PhysicalConditions         map[string]string `json:"physical_conditions"`
	DebtStatus                 DebtStatus        `json:"debt_status"`
}

type ExperienceEntry struct {
	Period        string `json:"period"`
	Workplace     string `json:"workplace"`
	Position      string `json:"position"`
	Salary        string `json:"salary"`
	LeavingReason string `json:"leaving_reason"`
}

type ContactPreviousEmployer struct {
	Allowed string `json:"allowed"`
	Reason  string `json:"reason"`
}

type ExperienceData struct {
	HasExperience           string                  `json:"has_experience"` // "yes"/"no"
	History                 []ExperienceEntry       `json:"history"`
	ContactPreviousEmployer ContactPreviousEmployer `json:"contact_previous_employer"`
}

type ReferralData struct {
	KnownEmployeeName     string `json:"known_employee_name"`
	KnownEmployeeRelation string `json:"known_employee_relation"`
	ReferralSource        string `json:"referral_source"`
}

type Parent struct {
	Name       string `json:"name"`
	Age        string `json:"age"`
	Occupation string `json:"occupation"`
	Alive      string `json:"alive"`
}

type ParentsData struct {
	Father Parent `json:"father"`
	Mother Parent `json:"mother"`
}

type EmergencyContact struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type EmergencyContactList []EmergencyContact

// ApplicationData is the full in-progress applicant document accumulated by
// the wizard, section by section.
type ApplicationData struct {
	PersonalData      PersonalData       `json:"personal_data"`
	FamilyData        FamilyData         `json:"family_data"`
	EducationData     EducationData      `json:"education_data"`
	SkillsData        SkillsData         `json:"skills_data"`
	TrainingData      TrainingData       `json:"training_data"`
	HealthData        HealthData         `json:"health_data"`
	StatementData     StatementData      `json:"statement_data"`
	ExperienceData    ExperienceData     `json:"experience_data"`
	ReferralData      ReferralData       `json:"referral_data"`
	ParentsData       ParentsData        `json:"parents_data"`
	EmergencyContacts EmergencyContactList `json:"emergency_contacts"`
	Attitude          string             `json:"attitude"`
	PhotoURL          string             `json:"photo_url"`
	SignatureURL      string             `json:"signature_url"`
	SignatureDate     string             `json:"signature_date"`
	StartWorkDate     string             `json:"start_work_date"`
}

// FullName concatenates first and last name the way the record stores it.
func (d ApplicationData) FullName() string {
	return d.PersonalData.FirstName + " " + d.PersonalData.LastName
}
