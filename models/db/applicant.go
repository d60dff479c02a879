package dbmodels

import (
	"hr-intake-backend/models"
)

// Applicant is the root aggregate of one job application. Sections are
// independent jsonb sub-documents; no cross-section integrity is enforced
// here, validation happens per wizard step before submission.
type Applicant struct {
	BaseModel
	FullName          string                      `gorm:"type:varchar(255);index" json:"full_name"`
	PersonalData      models.PersonalData         `gorm:"type:jsonb" json:"personal_data"`
	FamilyData        models.FamilyData           `gorm:"type:jsonb" json:"family_data"`
	EducationData     models.EducationData        `gorm:"type:jsonb" json:"education_data"`
	SkillsData        models.SkillsData           `gorm:"type:jsonb" json:"skills_data"`
	TrainingData      models.TrainingData         `gorm:"type:jsonb" json:"training_data"`
	HealthData        models.HealthData           `gorm:"type:jsonb" json:"health_data"`
	StatementData     models.StatementData        `gorm:"type:jsonb" json:"statement_data"`
	ExperienceData    models.ExperienceData       `gorm:"type:jsonb" json:"experience_data"`
	ReferralData      models.ReferralData         `gorm:"type:jsonb" json:"referral_data"`
	ParentsData       models.ParentsData          `gorm:"type:jsonb" json:"parents_data"`
	EmergencyContacts models.EmergencyContactList `gorm:"type:jsonb" json:"emergency_contacts"`
	Attitude          string                      `json:"attitude"`

	PhotoURL      string `gorm:"type:varchar(500)" json:"photo_url"`
	SignatureURL  string `gorm:"type:varchar(500)" json:"signature_url"`
	SignatureDate string `gorm:"type:varchar(20)" json:"signature_date"`
	StartWorkDate string `gorm:"type:varchar(20)" json:"start_work_date"`
	JobPositionID string `gorm:"type:varchar(36)" json:"job_position_id"`

	SubmissionDate string                 `gorm:"type:varchar(20);index" json:"submission_date"`
	Status         models.ApplicantStatus `gorm:"type:varchar(50);index" json:"status"`

	// tri-state flags: nil while undecided, then 0 or 1
	ApprovalStatus       *int `json:"approval_status"`
	DataCompletionStatus *int `json:"data_completion_status"`
}

type ApplicantFilter struct {
	SubmissionDate string `json:"submission_date"`
	Status         string `json:"status"`
	Search         string `json:"search"`
}

// Validate accepts any combination of conditions, an empty filter lists
// everything.
func (f ApplicantFilter) Validate() error {
	return nil
}
