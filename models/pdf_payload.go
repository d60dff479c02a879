package models

// PdfPayload is the data bag of one statutory document record. The shape is
// owned entirely by the document type: exactly one variant pointer is set,
// matching PdfDocument.PdfType. There is intentionally no shared schema
// across types, each mirrors its own paper form.
type PdfPayload struct {
	PDPA            *PdpaData            `json:"pdpa,omitempty"`
	NDA             *NdaData             `json:"nda,omitempty"`
	FMHRD           *FmHrdData           `json:"fm_hrd,omitempty"`
	SPS             *SpsData             `json:"sps,omitempty"`
	CriminalCheck   *CriminalCheckData   `json:"criminal_check,omitempty"`
	Insurance       *InsuranceData       `json:"insurance,omitempty"`
	SalaryDeduction *SalaryDeductionData `json:"salary_deduction,omitempty"`
}

// ApplicantInfo is a denormalized snapshot taken at submission time so the
// document renders even when the applicant record changes later.
type ApplicantInfo struct {
	FullName    string `json:"full_name"`
	IDCard      string `json:"id_card"`
	MobilePhone string `json:"mobile_phone"`
}

type PdpaEmployeeData struct {
	WrittenAt     string `json:"written_at"`
	WrittenDate   string `json:"written_date"`
	LineID        string `json:"line_id"`
	SignatureURL  string `json:"signature_url"`
	SignatureDate string `json:"signature_date"`
	Agreed        bool   `json:"agreed"`
	AcceptedDate  string `json:"accepted_date"`
}

type PdpaData struct {
	EmployeeData  PdpaEmployeeData `json:"employee_data"`
	ApplicantInfo ApplicantInfo    `json:"applicant_info"`
}

type NdaEmployeeData struct {
	Position      string `json:"position"`
	Department    string `json:"department"`
	SignatureURL  string `json:"signature_url"`
	SignatureDate string `json:"signature_date"`
}

type NdaCompanyData struct {
	SignerName      string `json:"signer_name"`
	SignerPosition  string `json:"signer_position"`
	SignatureURL    string `json:"signature_url"`
	SignDate        string `json:"sign_date"`
	WitnessName     string `json:"witness_name"`
	EffectiveDate   string `json:"effective_date"`
	ContractAddress string `json:"contract_address"`
}

type NdaData struct {
	EmployeeData  NdaEmployeeData `json:"employee_data"`
	CompanyData   NdaCompanyData  `json:"company_data"`
	ApplicantInfo ApplicantInfo   `json:"applicant_info"`
}

type FmHrdEmployeeData struct {
	EmployeeID    string `json:"employee_id"`
	Position      string `json:"position"`
	Department    string `json:"department"`
	StartDate     string `json:"start_date"`
	SignatureURL  string `json:"signature_url"`
	SignatureDate string `json:"signature_date"`
}

type FmHrdData struct {
	EmployeeData  FmHrdEmployeeData `json:"employee_data"`
	ApprovedBy    string            `json:"approved_by"`
	ApprovedDate  string            `json:"approved_date"`
	ApplicantInfo ApplicantInfo     `json:"applicant_info"`
}

// SpsData covers both social security forms; the fields of the other
// variant stay empty.
type SpsData struct {
	FormType string `json:"form_type"` // "1-03" or "9-02"

	// SPS 1-03
	PreviousEmployer   string `json:"previous_employer"`
	PreviousEmployerID string `json:"previous_employer_id"`
	LastWorkDate       string `json:"last_work_date"`
	NewEmployer        string `json:"new_employer"`
	NewEmployerID      string `json:"new_employer_id"`

	// SPS 9-02
	EmployerName   string `json:"employer_name"`
	EmployerID     string `json:"employer_id"`
	EducationLevel string `json:"education_level"`
	EducationMajor string `json:"education_major"`

	Salary        string `json:"salary"`
	SignatureURL  string `json:"signature_url"`
	SignatureDate string `json:"signature_date"`

	// filled by the reviewing officer
	EmployerData  SpsEmployerData `json:"employer_data"`
	ApplicantInfo ApplicantInfo   `json:"applicant_info"`
}

type SpsEmployerData struct {
	BranchNumber  string `json:"branch_number"`
	OfficerName   string `json:"officer_name"`
	SignatureDate string `json:"signature_date"`
}

type CriminalCheckData struct {
	WrittenAt     string `json:"written_at"`
	WrittenDate   string `json:"written_date"`
	AttorneyName  string `json:"attorney_name"`
	SignatureURL  string `json:"signature_url"`
	SignatureDate string `json:"signature_date"`

	CompanyData   CriminalCheckCompanyData `json:"company_data"`
	ApplicantInfo ApplicantInfo            `json:"applicant_info"`
}

type CriminalCheckCompanyData struct {
	GrantorName   string `json:"grantor_name"`
	StampDutyPaid bool   `json:"stamp_duty_paid"`
	WitnessName   string `json:"witness_name"`
}

type InsuranceData struct {
	Beneficiary         string `json:"beneficiary"`
	BeneficiaryRelation string `json:"beneficiary_relation"`
	SignatureURL        string `json:"signature_url"`
	SignatureDate       string `json:"signature_date"`

	// enrollment numbers assigned during admin review
	GroupNumber       string `json:"group_number"`
	CertificateNumber string `json:"certificate_number"`

	ApplicantInfo ApplicantInfo `json:"applicant_info"`
}

type SalaryDeductionData struct {
	Date          string `json:"date"`
	EmployeeID    string `json:"employee_id"`
	Position      string `json:"position"`
	Department    string `json:"department"`
	StartDate     string `json:"start_date"`
	Amount        int    `json:"amount"`
	SignatureURL  string `json:"signature_url"`
	SignatureDate string `json:"signature_date"`

	ApplicantInfo ApplicantInfo `json:"applicant_info"`
}
