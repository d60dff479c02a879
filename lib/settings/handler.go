package settingsprovider

import (
	log "github.com/sirupsen/logrus"

	"hr-intake-backend/db"
	"hr-intake-backend/lib/docproject"
	settingsstore "hr-intake-backend/lib/settings/store"
	"hr-intake-backend/models"
)

type Provider interface {
	Get(key string) (value string, err error)
	Set(key, value string) error
	List() (map[string]string, error)
	Company() (docproject.Company, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: settingsstore.NewInstance(db.DB),
	}
}

type impl struct {
	store settingsstore.Provider
}

func (i impl) Get(key string) (string, error) {
	rec, err := i.store.Get(key)
	if err != nil {
		log.WithField("key", key).WithError(err).Error("failed to get setting")
		return "", err
	}
	if rec == nil {
		return "", nil
	}
	return rec.Value, nil
}

func (i impl) Set(key, value string) error {
	err := i.store.Set(key, value)
	if err != nil {
		log.WithField("key", key).WithError(err).Error("failed to save setting")
		return err
	}
	log.WithField("key", key).Info("setting saved")
	return nil
}

func (i impl) List() (map[string]string, error) {
	list, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("failed to list settings")
		return nil, err
	}
	result := make(map[string]string, len(list))
	for _, rec := range list {
		result[rec.Key] = rec.Value
	}
	return result, nil
}

// Company assembles the issuer block printed on every statutory form.
func (i impl) Company() (docproject.Company, error) {
	settings, err := i.List()
	if err != nil {
		return docproject.Company{}, err
	}
	return docproject.Company{
		Name:    settings[models.SettingCompanyName],
		NameEn:  settings[models.SettingCompanyNameEn],
		LogoURL: settings[models.SettingAppLogo],
	}, nil
}
