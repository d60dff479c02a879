package applicantapimodels

import (
	"time"

	"github.com/pkg/errors"

	"hr-intake-backend/models"
	dbmodels "hr-intake-backend/models/db"
)

// SubmitRequest is the final wizard submission: the accumulated form data
// plus the consent block of the PDPA step.
type SubmitRequest struct {
	Data    models.ApplicationData  `json:"data"`
	Consent models.PdpaEmployeeData `json:"consent"`
}

func (r SubmitRequest) Validate() error {
	if !r.Consent.Agreed || r.Consent.SignatureURL == "" {
		return errors.New("กรุณายอมรับข้อตกลงและลงลายมือชื่อ")
	}
	return nil
}

type ApplicantView struct {
	ID             string                 `json:"id"`
	FullName       string                 `json:"full_name"`
	Data           models.ApplicationData `json:"data"`
	SubmissionDate string                 `json:"submission_date"`
	Status         models.ApplicantStatus `json:"status"`

	ApprovalStatus       *int `json:"approval_status"`
	DataCompletionStatus *int `json:"data_completion_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ApplicantConvert(rec dbmodels.Applicant) ApplicantView {
	return ApplicantView{
		ID:       rec.ID,
		FullName: rec.FullName,
		Data: models.ApplicationData{
			PersonalData:      rec.PersonalData,
			FamilyData:        rec.FamilyData,
			EducationData:     rec.EducationData,
			SkillsData:        rec.SkillsData,
			TrainingData:      rec.TrainingData,
			HealthData:        rec.HealthData,
			StatementData:     rec.StatementData,
			ExperienceData:    rec.ExperienceData,
			ReferralData:      rec.ReferralData,
			ParentsData:       rec.ParentsData,
			EmergencyContacts: rec.EmergencyContacts,
			Attitude:          rec.Attitude,
			PhotoURL:          rec.PhotoURL,
			SignatureURL:      rec.SignatureURL,
			SignatureDate:     rec.SignatureDate,
			StartWorkDate:     rec.StartWorkDate,
		},
		SubmissionDate:       rec.SubmissionDate,
		Status:               rec.Status,
		ApprovalStatus:       rec.ApprovalStatus,
		DataCompletionStatus: rec.DataCompletionStatus,
		CreatedAt:            rec.CreatedAt,
		UpdatedAt:            rec.UpdatedAt,
	}
}

// ReviewRequest carries the tri-state review toggles and any corrected
// fields the reviewer edited in place.
type ReviewRequest struct {
	ApprovalStatus       *int                    `json:"approval_status"`
	DataCompletionStatus *int                    `json:"data_completion_status"`
	Data                 *models.ApplicationData `json:"data"`
}

func (r ReviewRequest) Validate() error {
	for _, v := range []*int{r.ApprovalStatus, r.DataCompletionStatus} {
		if v != nil && *v != 0 && *v != 1 {
			return errors.New("ค่าผลการพิจารณาไม่ถูกต้อง")
		}
	}
	return nil
}

type StatusRequest struct {
	Status models.ApplicantStatus `json:"status"`
}

func (r StatusRequest) Validate() error {
	switch r.Status {
	case models.ApplicantStatusPendingVideo, models.ApplicantStatusPending,
		models.ApplicantStatusApproved, models.ApplicantStatusRejected:
		return nil
	}
	return errors.New("สถานะผู้สมัครไม่ถูกต้อง")
}

// ValidateStepRequest lets the public client re-run one step's validation
// server side before moving on.
type ValidateStepRequest struct {
	Step int                    `json:"step"`
	Data models.ApplicationData `json:"data"`
}

type ValidateStepResponse struct {
	Valid   bool            `json:"valid"`
	Errors  map[string]bool `json:"errors,omitempty"`
	Message string          `json:"message,omitempty"`
}
