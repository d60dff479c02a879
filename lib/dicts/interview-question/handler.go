package interviewquestionprovider

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-intake-backend/db"
	interviewquestionstore "hr-intake-backend/lib/dicts/interview-question/store"
	dictapimodels "hr-intake-backend/models/api/dict"
	dbmodels "hr-intake-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.InterviewQuestionData) (id string, err error)
	Update(id string, request dictapimodels.InterviewQuestionData) error
	Get(id string) (item dictapimodels.InterviewQuestionView, err error)
	List(activeOnly bool) (list []dictapimodels.InterviewQuestionView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: interviewquestionstore.NewInstance(db.DB),
	}
}

type impl struct {
	store interviewquestionstore.Provider
}

func (i impl) Create(request dictapimodels.InterviewQuestionData) (id string, err error) {
	rec := dbmodels.InterviewQuestion{
		Question:  request.Question,
		SortOrder: request.SortOrder,
		IsActive:  request.IsActive,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("failed to create interview question")
		return "", err
	}
	log.WithField("rec_id", id).Info("interview question created")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.InterviewQuestionData) error {
	logger := log.WithField("rec_id", id)
	updMap := map[string]interface{}{
		"question":   request.Question,
		"sort_order": request.SortOrder,
		"is_active":  request.IsActive,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("failed to update interview question")
		return err
	}
	logger.Info("interview question updated")
	return nil
}

func (i impl) Get(id string) (dictapimodels.InterviewQuestionView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).
			WithError(err).
			Error("failed to get interview question")
		return dictapimodels.InterviewQuestionView{}, err
	}
	if rec == nil {
		return dictapimodels.InterviewQuestionView{}, errors.New("ไม่พบคำถามสัมภาษณ์")
	}
	return convert(*rec), nil
}

func (i impl) List(activeOnly bool) ([]dictapimodels.InterviewQuestionView, error) {
	recList, err := i.store.List(activeOnly)
	if err != nil {
		log.WithError(err).Error("failed to list interview questions")
		return nil, err
	}
	result := make([]dictapimodels.InterviewQuestionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, convert(rec))
	}
	return result, nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	err := i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("failed to delete interview question")
		return err
	}
	logger.Info("interview question deleted")
	return nil
}

func convert(rec dbmodels.InterviewQuestion) dictapimodels.InterviewQuestionView {
	return dictapimodels.InterviewQuestionView{
		InterviewQuestionData: dictapimodels.InterviewQuestionData{
			Question:  rec.Question,
			SortOrder: rec.SortOrder,
			IsActive:  rec.IsActive,
		},
		ID: rec.ID,
	}
}
