package adminpanelauthhandler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-intake-backend/db"
	adminpaneluserstore "hr-intake-backend/lib/admin-panel/store"
	authhelpers "hr-intake-backend/lib/utils/auth-helpers"
	authutils "hr-intake-backend/lib/utils/auth-utils"
	authapimodels "hr-intake-backend/models/api/auth"
)

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
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

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to find user by email")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		logger.Debug("no active user with this email")
		return authapimodels.JWTResponse{}, errors.New("อีเมลหรือรหัสผ่านไม่ถูกต้อง")
	}
	if authhelpers.GetMD5Hash(password) != user.Password {
		logger.Debug("password check failed")
		return authapimodels.JWTResponse{}, errors.New("อีเมลหรือรหัสผ่านไม่ถูกต้อง")
	}
	tokenString, err := authutils.GetToken(user.ID, fmt.Sprintf("%s %s", user.FirstName, user.LastName))
	if err != nil {
		logger.WithError(err).Error("failed to sign JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"LastLogin": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to update last login date")
	}
	return authapimodels.JWTResponse{
		Token: tokenString,
	}, nil
}
