package pdfdoc

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-intake-backend/config"
	"hr-intake-backend/db"
	applicantstore "hr-intake-backend/lib/applicant/store"
	"hr-intake-backend/lib/docproject"
	pdfexport "hr-intake-backend/lib/export/pdf"
	filestorage "hr-intake-backend/lib/file-storage"
	pdfdocstore "hr-intake-backend/lib/pdfdoc/store"
	settingsprovider "hr-intake-backend/lib/settings"
	connectionhub "hr-intake-backend/lib/ws/hub/connection-hub"
	"hr-intake-backend/models"
	documentapimodels "hr-intake-backend/models/api/document"
	dbmodels "hr-intake-backend/models/db"
	wsmodels "hr-intake-backend/models/ws"
)

type Provider interface {
	SaveDraft(request documentapimodels.SubmitRequest) (id string, err error)
	Submit(request documentapimodels.SubmitRequest) (id string, err error)
	Review(id string, request documentapimodels.ReviewRequest) error
	Get(id string) (documentapimodels.DocumentView, error)
	ListByApplicant(applicantID string) ([]documentapimodels.DocumentView, error)
	Export(ctx context.Context, id string) (*pdfexport.Artifact, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          pdfdocstore.NewInstance(db.DB),
		applicantStore: applicantstore.NewInstance(db.DB),
	}
}

type impl struct {
	store          pdfdocstore.Provider
	applicantStore applicantstore.Provider
}

// SaveDraft creates or overwrites the draft of one form. Submitted forms
// are immutable for the applicant side.
func (i impl) SaveDraft(request documentapimodels.SubmitRequest) (string, error) {
	if err := request.Validate(); err != nil {
		return "", err
	}
	existed, err := i.store.GetByApplicantAndType(request.ApplicantID, request.PdfType)
	if err != nil {
		return "", err
	}
	if existed != nil {
		if existed.Status != models.PdfStatusDraft {
			return "", errors.New("เอกสารถูกส่งแล้ว")
		}
		err = i.store.Update(existed.ID, map[string]interface{}{"data": request.Data})
		return existed.ID, err
	}
	rec := dbmodels.PdfDocument{
		ApplicantID: request.ApplicantID,
		PdfType:     request.PdfType,
		Data:        request.Data,
		Status:      models.PdfStatusDraft,
	}
	return i.store.Create(rec)
}

// Submit files the form: the draft (created on the fly when absent) moves
// to submitted and the admin panel is notified.
func (i impl) Submit(request documentapimodels.SubmitRequest) (string, error) {
	id, err := i.SaveDraft(request)
	if err != nil {
		return "", err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errors.New("ไม่พบเอกสาร")
	}
	ok, err := rec.IsAllowStatusChange(models.PdfStatusSubmitted)
	if err != nil {
		return "", err
	}
	if !ok {
		return id, nil
	}
	now := time.Now()
	err = i.store.Update(id, map[string]interface{}{
		"status":         models.PdfStatusSubmitted,
		"submitted_date": &now,
	})
	if err != nil {
		return "", err
	}
	log.WithField("doc_id", id).
		WithField("pdf_type", request.PdfType).
		Info("document submitted")
	if connectionhub.Instance != nil {
		connectionhub.Instance.Broadcast(wsmodels.ServerMessage{
			Time:        now.Format("02.01.2006 15:04:05"),
			Code:        wsmodels.EventDocumentSubmitted,
			ApplicantID: request.ApplicantID,
			Msg:         request.PdfType.Label(),
		})
	}
	return id, nil
}

// Review settles a submitted document. Officer-filled fields are merged by
// replacing the payload, last write wins; the status date is stamped.
func (i impl) Review(id string, request documentapimodels.ReviewRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("ไม่พบเอกสาร")
	}
	ok, err := rec.IsAllowStatusChange(request.Status)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"status": request.Status,
	}
	switch request.Status {
	case models.PdfStatusApproved:
		updMap["approved_date"] = &now
	case models.PdfStatusCompleted:
		updMap["completed_date"] = &now
	}
	if request.Data != nil {
		updMap["data"] = *request.Data
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("doc_id", id).
		WithField("status", request.Status).
		Info("document reviewed")
	return nil
}

func (i impl) Get(id string) (documentapimodels.DocumentView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return documentapimodels.DocumentView{}, err
	}
	if rec == nil {
		return documentapimodels.DocumentView{}, errors.New("ไม่พบเอกสาร")
	}
	return documentapimodels.DocumentConvert(*rec), nil
}

func (i impl) ListByApplicant(applicantID string) ([]documentapimodels.DocumentView, error) {
	list, err := i.store.ListByApplicant(applicantID)
	if err != nil {
		return nil, err
	}
	result := make([]documentapimodels.DocumentView, 0, len(list))
	for _, rec := range list {
		result = append(result, documentapimodels.DocumentConvert(rec))
	}
	return result, nil
}

// Export projects the document onto its page layout and renders the PDF.
func (i impl) Export(ctx context.Context, id string) (*pdfexport.Artifact, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("ไม่พบเอกสาร")
	}
	applicantRec, err := i.applicantStore.GetByID(rec.ApplicantID)
	if err != nil {
		return nil, err
	}
	if applicantRec == nil {
		return nil, errors.New("ไม่พบข้อมูลผู้สมัคร")
	}
	company, err := settingsprovider.Instance.Company()
	if err != nil {
		return nil, err
	}

	app := docproject.Applicant{
		FullName:      applicantRec.FullName,
		PersonalData:  applicantRec.PersonalData,
		SignatureURL:  applicantRec.SignatureURL,
		SignatureDate: applicantRec.SignatureDate,
		StartWorkDate: applicantRec.StartWorkDate,
	}
	pages, err := docproject.Build(rec.PdfType, app, rec.Data, company)
	if err != nil {
		return nil, err
	}

	images, err := i.fetchImages(ctx, pages)
	if err != nil {
		return nil, err
	}
	return pdfexport.Render(pdfexport.RenderInput{
		Pages:         pages,
		DocLabel:      rec.PdfType.Label(),
		ApplicantName: applicantRec.FullName,
		FontDir:       config.Conf.Pdf.FontDir,
		Images:        images,
	})
}

// fetchImages pulls every referenced image from storage. A fetch failure
// aborts the export, a half-rendered document is worse than an error.
func (i impl) fetchImages(ctx context.Context, pages []docproject.Page) (map[string]*pdfexport.File, error) {
	images := map[string]*pdfexport.File{}
	for _, page := range pages {
		for _, el := range page.Elements {
			if el.Kind != docproject.KindImage || el.ImageURL == "" {
				continue
			}
			if _, ok := images[el.ImageURL]; ok {
				continue
			}
			name, body, err := filestorage.Instance.FetchByURL(ctx, el.ImageURL)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to fetch image %s", el.ImageURL)
			}
			images[el.ImageURL] = &pdfexport.File{FileName: name, Body: body}
		}
	}
	return images, nil
}
