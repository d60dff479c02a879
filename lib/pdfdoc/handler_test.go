package pdfdoc

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hr-intake-backend/models"
	documentapimodels "hr-intake-backend/models/api/document"
	dbmodels "hr-intake-backend/models/db"
)

type memDocStore struct {
	recs map[string]*dbmodels.PdfDocument
	seq  int
}

func newMemDocStore() *memDocStore {
	return &memDocStore{recs: map[string]*dbmodels.PdfDocument{}}
}

func (m *memDocStore) Create(rec dbmodels.PdfDocument) (string, error) {
	m.seq++
	rec.ID = "doc-" + strconv.Itoa(m.seq)
	m.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (m *memDocStore) Update(id string, updMap map[string]interface{}) error {
	rec := m.recs[id]
	if v, ok := updMap["status"]; ok {
		rec.Status = v.(models.PdfStatus)
	}
	if v, ok := updMap["data"]; ok {
		rec.Data = v.(models.PdfPayload)
	}
	if v, ok := updMap["submitted_date"]; ok {
		rec.SubmittedDate = v.(*time.Time)
	}
	if v, ok := updMap["approved_date"]; ok {
		rec.ApprovedDate = v.(*time.Time)
	}
	if v, ok := updMap["completed_date"]; ok {
		rec.CompletedDate = v.(*time.Time)
	}
	return nil
}

func (m *memDocStore) GetByID(id string) (*dbmodels.PdfDocument, error) {
	rec, ok := m.recs[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memDocStore) GetByApplicantAndType(applicantID string, pdfType models.PdfType) (*dbmodels.PdfDocument, error) {
	for _, rec := range m.recs {
		if rec.ApplicantID == applicantID && rec.PdfType == pdfType {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memDocStore) ListByApplicant(applicantID string) ([]dbmodels.PdfDocument, error) {
	list := []dbmodels.PdfDocument{}
	for _, rec := range m.recs {
		if rec.ApplicantID == applicantID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (m *memDocStore) ListByStatus(status models.PdfStatus) ([]dbmodels.PdfDocument, error) {
	return nil, nil
}

func submitRequest() documentapimodels.SubmitRequest {
	return documentapimodels.SubmitRequest{
		ApplicantID: "applicant-1",
		PdfType:     models.PdfTypeNDA,
		Data: models.PdfPayload{
			NDA: &models.NdaData{
				EmployeeData: models.NdaEmployeeData{Position: "พนักงานขาย"},
			},
		},
	}
}

func TestSaveDraftThenSubmit(t *testing.T) {
	store := newMemDocStore()
	h := impl{store: store}

	id, err := h.SaveDraft(submitRequest())
	require.NoError(t, err)
	require.Equal(t, models.PdfStatusDraft, store.recs[id].Status)

	// saving again overwrites the same draft
	again, err := h.SaveDraft(submitRequest())
	require.NoError(t, err)
	require.Equal(t, id, again)

	submittedID, err := h.Submit(submitRequest())
	require.NoError(t, err)
	require.Equal(t, id, submittedID)
	require.Equal(t, models.PdfStatusSubmitted, store.recs[id].Status)
	require.NotNil(t, store.recs[id].SubmittedDate)
}

func TestSaveDraftAfterSubmit(t *testing.T) {
	store := newMemDocStore()
	h := impl{store: store}

	_, err := h.Submit(submitRequest())
	require.NoError(t, err)

	_, err = h.SaveDraft(submitRequest())
	require.Error(t, err)
}

func TestSubmitWithoutDraftCreatesAndSubmits(t *testing.T) {
	store := newMemDocStore()
	h := impl{store: store}

	id, err := h.Submit(submitRequest())
	require.NoError(t, err)
	require.Equal(t, models.PdfStatusSubmitted, store.recs[id].Status)
}

func TestReviewLifecycle(t *testing.T) {
	store := newMemDocStore()
	h := impl{store: store}

	id, err := h.Submit(submitRequest())
	require.NoError(t, err)

	officerData := submitRequest().Data
	officerData.NDA.CompanyData.SignerName = "กรรมการผู้จัดการ"
	err = h.Review(id, documentapimodels.ReviewRequest{
		Status: models.PdfStatusApproved,
		Data:   &officerData,
	})
	require.NoError(t, err)
	require.Equal(t, models.PdfStatusApproved, store.recs[id].Status)
	require.NotNil(t, store.recs[id].ApprovedDate)
	require.Equal(t, "กรรมการผู้จัดการ", store.recs[id].Data.NDA.CompanyData.SignerName)

	err = h.Review(id, documentapimodels.ReviewRequest{Status: models.PdfStatusCompleted})
	require.NoError(t, err)
	require.Equal(t, models.PdfStatusCompleted, store.recs[id].Status)
	require.NotNil(t, store.recs[id].CompletedDate)
}

func TestReviewDraftRejected(t *testing.T) {
	store := newMemDocStore()
	h := impl{store: store}

	id, err := h.SaveDraft(submitRequest())
	require.NoError(t, err)

	err = h.Review(id, documentapimodels.ReviewRequest{Status: models.PdfStatusApproved})
	require.Error(t, err)
	require.Equal(t, models.PdfStatusDraft, store.recs[id].Status)
}

func TestReviewBadStatus(t *testing.T) {
	h := impl{store: newMemDocStore()}
	err := h.Review("doc-1", documentapimodels.ReviewRequest{Status: models.PdfStatusDraft})
	require.Error(t, err)
}
