package documentapimodels

import (
	"time"

	"github.com/pkg/errors"

	"hr-intake-backend/models"
	dbmodels "hr-intake-backend/models/db"
)

// SubmitRequest files one statutory form of an applicant.
type SubmitRequest struct {
	ApplicantID string            `json:"applicant_id"`
	PdfType     models.PdfType    `json:"pdf_type"`
	Data        models.PdfPayload `json:"data"`
}

func (r SubmitRequest) Validate() error {
	if r.ApplicantID == "" {
		return errors.New("ไม่ได้ระบุผู้สมัคร")
	}
	if !r.PdfType.IsValid() {
		return errors.New("ประเภทเอกสารไม่ถูกต้อง")
	}
	return nil
}

// ReviewRequest is the admin decision on a submitted document, optionally
// merging officer-filled fields into the payload.
type ReviewRequest struct {
	Status models.PdfStatus   `json:"status"`
	Data   *models.PdfPayload `json:"data"`
}

func (r ReviewRequest) Validate() error {
	if r.Status != models.PdfStatusApproved && r.Status != models.PdfStatusCompleted {
		return errors.New("สถานะเอกสารไม่ถูกต้อง")
	}
	return nil
}

type DocumentView struct {
	ID          string            `json:"id"`
	ApplicantID string            `json:"applicant_id"`
	PdfType     models.PdfType    `json:"pdf_type"`
	Data        models.PdfPayload `json:"data"`
	Status      models.PdfStatus  `json:"status"`

	SubmittedDate *time.Time `json:"submitted_date"`
	ApprovedDate  *time.Time `json:"approved_date"`
	CompletedDate *time.Time `json:"completed_date"`

	CreatedAt time.Time `json:"created_at"`
}

func DocumentConvert(rec dbmodels.PdfDocument) DocumentView {
	return DocumentView{
		ID:            rec.ID,
		ApplicantID:   rec.ApplicantID,
		PdfType:       rec.PdfType,
		Data:          rec.Data,
		Status:        rec.Status,
		SubmittedDate: rec.SubmittedDate,
		ApprovedDate:  rec.ApprovedDate,
		CompletedDate: rec.CompletedDate,
		CreatedAt:     rec.CreatedAt,
	}
}
