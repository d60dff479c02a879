package applicant

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"hr-intake-backend/models"
	applicantapimodels "hr-intake-backend/models/api/applicant"
	dbmodels "hr-intake-backend/models/db"
)

type fakeApplicantStore struct {
	created    []dbmodels.Applicant
	createErr  error
	updates    map[string]map[string]interface{}
	getByIDRec *dbmodels.Applicant
}

func (f *fakeApplicantStore) Create(rec dbmodels.Applicant) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	rec.ID = "applicant-1"
	f.created = append(f.created, rec)
	return rec.ID, nil
}

func (f *fakeApplicantStore) Update(id string, updMap map[string]interface{}) error {
	if f.updates == nil {
		f.updates = map[string]map[string]interface{}{}
	}
	f.updates[id] = updMap
	return nil
}

func (f *fakeApplicantStore) GetByID(id string) (*dbmodels.Applicant, error) {
	return f.getByIDRec, nil
}

func (f *fakeApplicantStore) List(filter dbmodels.ApplicantFilter) ([]dbmodels.Applicant, error) {
	return nil, nil
}

type fakeDocStore struct {
	created   []dbmodels.PdfDocument
	createErr error
}

func (f *fakeDocStore) Create(rec dbmodels.PdfDocument) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	rec.ID = "doc-1"
	f.created = append(f.created, rec)
	return rec.ID, nil
}

func (f *fakeDocStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeDocStore) GetByID(id string) (*dbmodels.PdfDocument, error)     { return nil, nil }
func (f *fakeDocStore) GetByApplicantAndType(applicantID string, pdfType models.PdfType) (*dbmodels.PdfDocument, error) {
	return nil, nil
}
func (f *fakeDocStore) ListByApplicant(applicantID string) ([]dbmodels.PdfDocument, error) {
	return nil, nil
}
func (f *fakeDocStore) ListByStatus(status models.PdfStatus) ([]dbmodels.PdfDocument, error) {
	return nil, nil
}

func submitRequest() applicantapimodels.SubmitRequest {
	return applicantapimodels.SubmitRequest{
		Data: models.ApplicationData{
			PersonalData: models.PersonalData{
				FirstName:   "สมชาย",
				LastName:    "ใจดี",
				IDCard:      "1234567890123",
				MobilePhone: "0812345678",
			},
		},
		Consent: models.PdpaEmployeeData{
			Agreed:        true,
			SignatureURL:  "https://files.example.com/sig.png",
			SignatureDate: "2026-08-01",
		},
	}
}

func TestSubmitWithConsent(t *testing.T) {
	store := &fakeApplicantStore{}
	docStore := &fakeDocStore{}
	h := impl{store: store, docStore: docStore}

	id, err := h.SubmitWithConsent(submitRequest())
	require.NoError(t, err)
	require.Equal(t, "applicant-1", id)

	require.Len(t, store.created, 1)
	rec := store.created[0]
	require.Equal(t, "สมชาย ใจดี", rec.FullName)
	require.Equal(t, models.ApplicantStatusPendingVideo, rec.Status)
	require.NotEmpty(t, rec.SubmissionDate)

	require.Len(t, docStore.created, 1)
	doc := docStore.created[0]
	require.Equal(t, "applicant-1", doc.ApplicantID)
	require.Equal(t, models.PdfTypePDPA, doc.PdfType)
	require.Equal(t, models.PdfStatusSubmitted, doc.Status)
	require.NotNil(t, doc.SubmittedDate)
	require.NotNil(t, doc.Data.PDPA)
	require.Equal(t, "สมชาย ใจดี", doc.Data.PDPA.ApplicantInfo.FullName)
}

func TestSubmitWithConsentRequiresAgreementAndSignature(t *testing.T) {
	cases := map[string]func(*applicantapimodels.SubmitRequest){
		"not agreed":   func(r *applicantapimodels.SubmitRequest) { r.Consent.Agreed = false },
		"no signature": func(r *applicantapimodels.SubmitRequest) { r.Consent.SignatureURL = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			store := &fakeApplicantStore{}
			docStore := &fakeDocStore{}
			h := impl{store: store, docStore: docStore}

			request := submitRequest()
			mutate(&request)
			_, err := h.SubmitWithConsent(request)
			require.Error(t, err)
			require.Empty(t, store.created)
			require.Empty(t, docStore.created)
		})
	}
}

func TestSubmitWithConsentApplicantCreateFails(t *testing.T) {
	store := &fakeApplicantStore{createErr: errors.New("db down")}
	docStore := &fakeDocStore{}
	h := impl{store: store, docStore: docStore}

	_, err := h.SubmitWithConsent(submitRequest())
	require.Error(t, err)
	require.Equal(t, "ไม่สามารถบันทึกข้อมูลได้ กรุณาลองใหม่อีกครั้ง", err.Error())
	// consent document must not exist without its applicant record
	require.Empty(t, docStore.created)
}

func TestReviewMergesDecisionsAndData(t *testing.T) {
	store := &fakeApplicantStore{}
	h := impl{store: store, docStore: &fakeDocStore{}}

	approved := 1
	incomplete := 0
	data := models.ApplicationData{
		PersonalData: models.PersonalData{FirstName: "สมหญิง", LastName: "รักงาน"},
	}
	err := h.Review("applicant-1", applicantapimodels.ReviewRequest{
		ApprovalStatus:       &approved,
		DataCompletionStatus: &incomplete,
		Data:                 &data,
	})
	require.NoError(t, err)

	updMap := store.updates["applicant-1"]
	require.Equal(t, 1, updMap["approval_status"])
	require.Equal(t, 0, updMap["data_completion_status"])
	require.Equal(t, "สมหญิง รักงาน", updMap["full_name"])
}

func TestReviewRejectsBadTriState(t *testing.T) {
	h := impl{store: &fakeApplicantStore{}, docStore: &fakeDocStore{}}
	bad := 2
	err := h.Review("applicant-1", applicantapimodels.ReviewRequest{ApprovalStatus: &bad})
	require.Error(t, err)
}

func TestUpdateStatusTransitions(t *testing.T) {
	cases := []struct {
		current models.ApplicantStatus
		next    models.ApplicantStatus
		allowed bool
	}{
		{models.ApplicantStatusPendingVideo, models.ApplicantStatusPending, true},
		{models.ApplicantStatusPendingVideo, models.ApplicantStatusApproved, false},
		{models.ApplicantStatusPending, models.ApplicantStatusApproved, true},
		{models.ApplicantStatusPending, models.ApplicantStatusRejected, true},
		{models.ApplicantStatusApproved, models.ApplicantStatusPending, false},
		{models.ApplicantStatusRejected, models.ApplicantStatusApproved, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.current)+"->"+string(tc.next), func(t *testing.T) {
			store := &fakeApplicantStore{getByIDRec: &dbmodels.Applicant{Status: tc.current}}
			h := impl{store: store, docStore: &fakeDocStore{}}
			err := h.UpdateStatus("applicant-1", tc.next)
			if tc.allowed {
				require.NoError(t, err)
				require.Equal(t, tc.next, store.updates["applicant-1"]["status"])
			} else {
				require.Error(t, err)
			}
		})
	}
}
