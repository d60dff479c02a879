package applicant

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-intake-backend/db"
	applicantstore "hr-intake-backend/lib/applicant/store"
	pdfdocstore "hr-intake-backend/lib/pdfdoc/store"
	"hr-intake-backend/lib/smtp"
	"hr-intake-backend/lib/utils/helpers"
	connectionhub "hr-intake-backend/lib/ws/hub/connection-hub"
	"hr-intake-backend/models"
	applicantapimodels "hr-intake-backend/models/api/applicant"
	dbmodels "hr-intake-backend/models/db"
	wsmodels "hr-intake-backend/models/ws"
)

type Provider interface {
	SubmitWithConsent(request applicantapimodels.SubmitRequest) (applicantID string, err error)
	GetByID(id string) (applicantapimodels.ApplicantView, error)
	List(filter dbmodels.ApplicantFilter) ([]applicantapimodels.ApplicantView, error)
	ListRecords(filter dbmodels.ApplicantFilter) ([]dbmodels.Applicant, error)
	Review(id string, request applicantapimodels.ReviewRequest) error
	UpdateStatus(id string, status models.ApplicantStatus) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    applicantstore.NewInstance(db.DB),
		docStore: pdfdocstore.NewInstance(db.DB),
	}
}

type impl struct {
	store    applicantstore.Provider
	docStore pdfdocstore.Provider
}

// SubmitWithConsent persists the finished wizard form and files the PDPA
// consent document in one go. The applicant record is created first; the
// consent document is only written after that succeeds, so a storage
// failure never leaves a consent without its applicant.
func (i impl) SubmitWithConsent(request applicantapimodels.SubmitRequest) (string, error) {
	if err := request.Validate(); err != nil {
		return "", err
	}
	data := request.Data
	rec := dbmodels.Applicant{
		FullName:          data.FullName(),
		PersonalData:      data.PersonalData,
		FamilyData:        data.FamilyData,
		EducationData:     data.EducationData,
		SkillsData:        data.SkillsData,
		TrainingData:      data.TrainingData,
		HealthData:        data.HealthData,
		StatementData:     data.StatementData,
		ExperienceData:    data.ExperienceData,
		ReferralData:      data.ReferralData,
		ParentsData:       data.ParentsData,
		EmergencyContacts: data.EmergencyContacts,
		Attitude:          data.Attitude,
		PhotoURL:          data.PhotoURL,
		SignatureURL:      request.Consent.SignatureURL,
		SignatureDate:     request.Consent.SignatureDate,
		StartWorkDate:     data.StartWorkDate,
		SubmissionDate:    helpers.DateNow(),
		Status:            models.ApplicantStatusPendingVideo,
	}
	applicantID, err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("failed to create applicant record")
		return "", errors.New("ไม่สามารถบันทึกข้อมูลได้ กรุณาลองใหม่อีกครั้ง")
	}
	logger := log.WithField("applicant_id", applicantID)

	now := time.Now()
	consent := request.Consent
	doc := dbmodels.PdfDocument{
		ApplicantID: applicantID,
		PdfType:     models.PdfTypePDPA,
		Data: models.PdfPayload{
			PDPA: &models.PdpaData{
				EmployeeData: consent,
				ApplicantInfo: models.ApplicantInfo{
					FullName:    rec.FullName,
					IDCard:      data.PersonalData.IDCard,
					MobilePhone: data.PersonalData.MobilePhone,
				},
			},
		},
		Status:        models.PdfStatusSubmitted,
		SubmittedDate: &now,
	}
	if _, err = i.docStore.Create(doc); err != nil {
		logger.WithError(err).Error("failed to create consent document")
		return "", errors.New("ไม่สามารถบันทึกข้อมูลได้ กรุณาลองใหม่อีกครั้ง")
	}

	logger.Info("application submitted")
	i.notifySubmitted(applicantID, rec.FullName, data.PersonalData.Email)
	return applicantID, nil
}

func (i impl) notifySubmitted(applicantID, fullName, email string) {
	if connectionhub.Instance != nil {
		connectionhub.Instance.Broadcast(wsmodels.ServerMessage{
			Time:        time.Now().Format("02.01.2006 15:04:05"),
			Code:        wsmodels.EventApplicantSubmitted,
			ApplicantID: applicantID,
			Msg:         fullName,
		})
	}
	if smtp.Instance != nil && email != "" {
		go func() {
			err := smtp.Instance.SendEMail(email,
				"ได้รับใบสมัครของคุณแล้ว",
				"เราได้รับใบสมัครงานของคุณเรียบร้อยแล้ว เจ้าหน้าที่จะติดต่อกลับเพื่อนัดหมายขั้นตอนถัดไป")
			if err != nil {
				log.WithError(err).WithField("applicant_id", applicantID).
					Error("failed to send confirmation email")
			}
		}()
	}
}

func (i impl) GetByID(id string) (applicantapimodels.ApplicantView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	if rec == nil {
		return applicantapimodels.ApplicantView{}, errors.New("ไม่พบข้อมูลผู้สมัคร")
	}
	return applicantapimodels.ApplicantConvert(*rec), nil
}

func (i impl) List(filter dbmodels.ApplicantFilter) ([]applicantapimodels.ApplicantView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]applicantapimodels.ApplicantView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicantapimodels.ApplicantConvert(rec))
	}
	return result, nil
}

// ListRecords returns raw rows for exports, same filter as List.
func (i impl) ListRecords(filter dbmodels.ApplicantFilter) ([]dbmodels.Applicant, error) {
	return i.store.List(filter)
}

// Review stores the tri-state decisions and, when the reviewer corrected
// the form in place, overwrites the edited sections. Last write wins.
func (i impl) Review(id string, request applicantapimodels.ReviewRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}
	updMap := map[string]interface{}{}
	if request.ApprovalStatus != nil {
		updMap["approval_status"] = *request.ApprovalStatus
	}
	if request.DataCompletionStatus != nil {
		updMap["data_completion_status"] = *request.DataCompletionStatus
	}
	if request.Data != nil {
		data := *request.Data
		updMap["full_name"] = data.FullName()
		updMap["personal_data"] = data.PersonalData
		updMap["family_data"] = data.FamilyData
		updMap["education_data"] = data.EducationData
		updMap["skills_data"] = data.SkillsData
		updMap["training_data"] = data.TrainingData
		updMap["health_data"] = data.HealthData
		updMap["statement_data"] = data.StatementData
		updMap["experience_data"] = data.ExperienceData
		updMap["referral_data"] = data.ReferralData
		updMap["parents_data"] = data.ParentsData
		updMap["emergency_contacts"] = data.EmergencyContacts
		updMap["attitude"] = data.Attitude
		updMap["start_work_date"] = data.StartWorkDate
	}
	return i.store.Update(id, updMap)
}

func (i impl) UpdateStatus(id string, status models.ApplicantStatus) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("ไม่พบข้อมูลผู้สมัคร")
	}
	if !isAllowStatusChange(rec.Status, status) {
		return errors.Errorf("ไม่สามารถเปลี่ยนสถานะจาก %s เป็น %s ได้", rec.Status, status)
	}
	return i.store.Update(id, map[string]interface{}{"status": status})
}

// pending_video moves to pending after the video interview; pending is
// settled as approved or rejected by the review.
func isAllowStatusChange(current, next models.ApplicantStatus) bool {
	switch current {
	case models.ApplicantStatusPendingVideo:
		return next == models.ApplicantStatusPending
	case models.ApplicantStatusPending:
		return next == models.ApplicantStatusApproved || next == models.ApplicantStatusRejected
	}
	return false
}
