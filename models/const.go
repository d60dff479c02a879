package models

type ApplicantStatus string

const (
	// waiting for the video-interview step after the wizard submission
	ApplicantStatusPendingVideo ApplicantStatus = "pending_video"
	// waiting for admin review
	ApplicantStatusPending  ApplicantStatus = "pending"
	ApplicantStatusApproved ApplicantStatus = "approved"
	ApplicantStatusRejected ApplicantStatus = "rejected"
)

type PdfType string

const (
	PdfTypePDPA            PdfType = "PDPA"
	PdfTypeNDA             PdfType = "NDA"
	PdfTypeFMHRD19         PdfType = "FM-HRD-19"
	PdfTypeFMHRD30         PdfType = "FM-HRD-30"
	PdfTypeSPS103          PdfType = "SPS-1-03"
	PdfTypeSPS902          PdfType = "SPS-9-02"
	PdfTypeCriminalCheck   PdfType = "CriminalCheck"
	PdfTypeInsurance       PdfType = "InsuranceEnrollment"
	PdfTypeSalaryDeduction PdfType = "SalaryDeduction"
)

type PdfStatus string

const (
	PdfStatusDraft     PdfStatus = "draft"
	PdfStatusSubmitted PdfStatus = "submitted"
	PdfStatusApproved  PdfStatus = "approved"
	PdfStatusCompleted PdfStatus = "completed"
)

// Label is the human readable document name used in exported file names.
func (t PdfType) Label() string {
	switch t {
	case PdfTypeSPS103:
		return "SPS_1-03"
	case PdfTypeSPS902:
		return "SPS_9-02"
	default:
		return string(t)
	}
}

func (t PdfType) IsValid() bool {
	switch t {
	case PdfTypePDPA, PdfTypeNDA, PdfTypeFMHRD19, PdfTypeFMHRD30,
		PdfTypeSPS103, PdfTypeSPS902, PdfTypeCriminalCheck,
		PdfTypeInsurance, PdfTypeSalaryDeduction:
		return true
	}
	return false
}

const (
	SettingAppLogo       = "app_logo"
	SettingCompanyName   = "company_name"
	SettingCompanyNameEn = "company_name_en"
)
