package adminpanelhandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-intake-backend/db"
	adminpaneluserstore "hr-intake-backend/lib/admin-panel/store"
	authhelpers "hr-intake-backend/lib/utils/auth-helpers"
	adminpanelapimodels "hr-intake-backend/models/api/admin-panel"
	dbmodels "hr-intake-backend/models/db"
)

type Provider interface {
	CreateUser(request adminpanelapimodels.User) error
	UpdateUser(userID string, request adminpanelapimodels.UserUpdate) error
	DeleteUser(userID string) error
	GetUser(userID string) (adminpanelapimodels.UserView, error)
	List() ([]adminpanelapimodels.UserView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: adminpaneluserstore.NewInstance(db.DB),
	}
}

type impl struct {
	store adminpaneluserstore.Provider
}

func (i impl) CreateUser(request adminpanelapimodels.User) error {
	rec := dbmodels.AdminUser{
		IsActive:  true,
		Password:  authhelpers.GetMD5Hash(request.Password),
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
	}
	userID, err := i.store.Create(rec)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("failed to create admin user")
		return err
	}
	log.
		WithField("user_id", userID).
		WithField("email", rec.Email).
		Info("admin user created")
	return nil
}

func (i impl) UpdateUser(userID string, request adminpanelapimodels.UserUpdate) error {
	logger := log.WithField("user_id", userID)
	updMap := map[string]interface{}{}
	if request.FirstName != nil {
		updMap["FirstName"] = *request.FirstName
	}
	if request.LastName != nil {
		updMap["LastName"] = *request.LastName
	}
	if request.Password != nil {
		updMap["Password"] = authhelpers.GetMD5Hash(*request.Password)
	}
	if request.Email != nil {
		updMap["Email"] = *request.Email
	}
	if request.IsActive != nil {
		updMap["IsActive"] = *request.IsActive
	}
	err := i.store.Update(userID, updMap)
	if err != nil {
		logger.WithError(err).Error("failed to update admin user")
		return err
	}
	logger.Info("admin user updated")
	return nil
}

func (i impl) DeleteUser(userID string) error {
	logger := log.WithField("user_id", userID)
	err := i.store.Delete(userID)
	if err != nil {
		logger.WithError(err).Error("failed to delete admin user")
		return err
	}
	logger.Info("admin user deleted")
	return nil
}

func (i impl) GetUser(userID string) (adminpanelapimodels.UserView, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return adminpanelapimodels.UserView{}, err
	}
	if rec == nil {
		return adminpanelapimodels.UserView{}, errors.New("ไม่พบผู้ใช้")
	}
	return adminpanelapimodels.UserConvert(*rec), nil
}

func (i impl) List() ([]adminpanelapimodels.UserView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]adminpanelapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, adminpanelapimodels.UserConvert(rec))
	}
	return result, nil
}
