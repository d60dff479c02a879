package settingsstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "hr-intake-backend/models/db"
)

type Provider interface {
	Get(key string) (*dbmodels.SystemSetting, error)
	Set(key, value string) error
	List() ([]dbmodels.SystemSetting, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Get(key string) (*dbmodels.SystemSetting, error) {
	rec := dbmodels.SystemSetting{}
	err := i.db.
		Where("key = ?", key).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Set(key, value string) error {
	rec := dbmodels.SystemSetting{
		Key:   key,
		Value: value,
	}
	return i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&rec).
		Error
}

func (i impl) List() ([]dbmodels.SystemSetting, error) {
	list := []dbmodels.SystemSetting{}
	err := i.db.Order("key").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
