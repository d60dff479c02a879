package jobpositionprovider

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-intake-backend/db"
	jobpositionstore "hr-intake-backend/lib/dicts/job-position/store"
	dictapimodels "hr-intake-backend/models/api/dict"
	dbmodels "hr-intake-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.JobPositionData) (id string, err error)
	Update(id string, request dictapimodels.JobPositionData) error
	Get(id string) (item dictapimodels.JobPositionView, err error)
	List(activeOnly bool) (list []dictapimodels.JobPositionView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: jobpositionstore.NewInstance(db.DB),
	}
}

type impl struct {
	store jobpositionstore.Provider
}

func (i impl) Create(request dictapimodels.JobPositionData) (id string, err error) {
	rec := dbmodels.JobPosition{
		Name:       request.Name,
		Department: request.Department,
		IsActive:   request.IsActive,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("failed to create job position")
		return "", err
	}
	log.
		WithField("job_position_name", rec.Name).
		WithField("rec_id", id).
		Info("job position created")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.JobPositionData) error {
	logger := log.WithField("rec_id", id)
	updMap := map[string]interface{}{
		"name":       request.Name,
		"department": request.Department,
		"is_active":  request.IsActive,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("failed to update job position")
		return err
	}
	logger.Info("job position updated")
	return nil
}

func (i impl) Get(id string) (dictapimodels.JobPositionView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).
			WithError(err).
			Error("failed to get job position")
		return dictapimodels.JobPositionView{}, err
	}
	if rec == nil {
		return dictapimodels.JobPositionView{}, errors.New("ไม่พบตำแหน่งงาน")
	}
	return convert(*rec), nil
}

func (i impl) List(activeOnly bool) ([]dictapimodels.JobPositionView, error) {
	recList, err := i.store.List(activeOnly)
	if err != nil {
		log.WithError(err).Error("failed to list job positions")
		return nil, err
	}
	result := make([]dictapimodels.JobPositionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, convert(rec))
	}
	return result, nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	err := i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("failed to delete job position")
		return err
	}
	logger.Info("job position deleted")
	return nil
}

func convert(rec dbmodels.JobPosition) dictapimodels.JobPositionView {
	return dictapimodels.JobPositionView{
		JobPositionData: dictapimodels.JobPositionData{
			Name:       rec.Name,
			Department: rec.Department,
			IsActive:   rec.IsActive,
		},
		ID: rec.ID,
	}
}
