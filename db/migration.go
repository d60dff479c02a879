package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "hr-intake-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Applicant{}); err != nil {
		return errors.Wrap(err, "failed to migrate Applicant")
	}
	if err := DB.AutoMigrate(&dbmodels.PdfDocument{}); err != nil {
		return errors.Wrap(err, "failed to migrate PdfDocument")
	}
	if err := DB.AutoMigrate(&dbmodels.AdminUser{}); err != nil {
		return errors.Wrap(err, "failed to migrate AdminUser")
	}
	if err := DB.AutoMigrate(&dbmodels.JobPosition{}); err != nil {
		return errors.Wrap(err, "failed to migrate JobPosition")
	}
	if err := DB.AutoMigrate(&dbmodels.InterviewQuestion{}); err != nil {
		return errors.Wrap(err, "failed to migrate InterviewQuestion")
	}
	if err := DB.AutoMigrate(&dbmodels.SystemSetting{}); err != nil {
		return errors.Wrap(err, "failed to migrate SystemSetting")
	}
	log.Info("migrations finished")
	return nil
}
