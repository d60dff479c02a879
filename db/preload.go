package db

import (
	log "github.com/sirupsen/logrus"

	"hr-intake-backend/config"
	adminpaneluserstore "hr-intake-backend/lib/admin-panel/store"
	jobpositionstore "hr-intake-backend/lib/dicts/job-position/store"
	settingsstore "hr-intake-backend/lib/settings/store"
	authhelpers "hr-intake-backend/lib/utils/auth-helpers"
	"hr-intake-backend/models"
	dbmodels "hr-intake-backend/models/db"
)

func InitPreload() {
	addDefaultAdmin()
	fillJobPositions()
	fillDefaultSettings()
}

func addDefaultAdmin() {
	cfg := config.Conf.AdminPanelAuth
	if cfg.DefaultPassword == "" {
		log.Warn("default admin not seeded, ADMIN_DEFAULT_PASSWORD is not set")
		return
	}
	adminStore := adminpaneluserstore.NewInstance(DB)
	existedRec, err := adminStore.FindByEmail(cfg.DefaultEmail)
	if err != nil {
		log.WithError(err).Error("failed to seed default admin")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.AdminUser{
		IsActive:  true,
		Password:  authhelpers.GetMD5Hash(cfg.DefaultPassword),
		FirstName: "Admin",
		Email:     cfg.DefaultEmail,
	}
	_, err = adminStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("failed to seed default admin")
	}
}

var defaultJobPositions = []dbmodels.JobPosition{
	{Name: "พนักงานขาย", Department: "ฝ่ายขาย", IsActive: true},
	{Name: "พนักงานบริการลูกค้า", Department: "ฝ่ายบริการลูกค้า", IsActive: true},
	{Name: "เจ้าหน้าที่ธุรการ", Department: "ฝ่ายธุรการ", IsActive: true},
	{Name: "เจ้าหน้าที่บัญชี", Department: "ฝ่ายบัญชี", IsActive: true},
	{Name: "โปรแกรมเมอร์", Department: "ฝ่ายเทคโนโลยีสารสนเทศ", IsActive: true},
}

func fillJobPositions() {
	store := jobpositionstore.NewInstance(DB)
	list, err := store.List(false)
	if err != nil {
		log.WithError(err).Error("failed to seed job positions")
		return
	}
	if len(list) > 0 {
		return
	}
	for _, rec := range defaultJobPositions {
		if _, err := store.Create(rec); err != nil {
			log.WithError(err).
				WithField("job_position_name", rec.Name).
				Error("failed to seed job position")
		}
	}
}

func fillDefaultSettings() {
	store := settingsstore.NewInstance(DB)
	defaults := map[string]string{
		models.SettingCompanyName:   "",
		models.SettingCompanyNameEn: "",
		models.SettingAppLogo:       "",
	}
	for key, value := range defaults {
		rec, err := store.Get(key)
		if err != nil {
			log.WithError(err).WithField("key", key).Error("failed to seed setting")
			continue
		}
		if rec != nil {
			continue
		}
		if err := store.Set(key, value); err != nil {
			log.WithError(err).WithField("key", key).Error("failed to seed setting")
		}
	}
}
