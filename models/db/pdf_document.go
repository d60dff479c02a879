package dbmodels

import (
	"time"

	"hr-intake-backend/models"

	"github.com/pkg/errors"
)

// PdfDocument tracks one statutory form of one applicant through its own
// fill/approval lifecycle, separate from the applicant record. ApplicantID
// is a weak reference used for lookup only.
type PdfDocument struct {
	BaseModel
	ApplicantID string            `gorm:"type:varchar(36);index:idx_pdf_applicant_type" json:"applicant_id"`
	PdfType     models.PdfType    `gorm:"type:varchar(50);index:idx_pdf_applicant_type" json:"pdf_type"`
	Data        models.PdfPayload `gorm:"type:jsonb" json:"data"`
	Status      models.PdfStatus  `gorm:"type:varchar(20);index" json:"status"`

	SubmittedDate *time.Time `json:"submitted_date"`
	ApprovedDate  *time.Time `json:"approved_date"`
	CompletedDate *time.Time `json:"completed_date"`
}

// IsAllowStatusChange enforces the draft -> submitted -> approved/completed
// order; admin review may still move approved on to completed.
func (d PdfDocument) IsAllowStatusChange(newStatus models.PdfStatus) (bool, error) {
	if d.Status == newStatus {
		return false, nil
	}
	switch newStatus {
	case models.PdfStatusSubmitted:
		if d.Status != models.PdfStatusDraft {
			return false, errors.New("เอกสารถูกส่งแล้ว")
		}
	case models.PdfStatusApproved, models.PdfStatusCompleted:
		if d.Status == models.PdfStatusDraft {
			return false, errors.New("เอกสารยังไม่ถูกส่ง")
		}
	default:
		return false, errors.New("สถานะเอกสารไม่ถูกต้อง")
	}
	return true, nil
}
