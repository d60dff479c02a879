package jobpositionstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-intake-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.JobPosition) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.JobPosition, error)
	List(activeOnly bool) ([]dbmodels.JobPosition, error)
	FindByName(name string) (*dbmodels.JobPosition, error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobPosition) (id string, err error) {
	existed, err := i.FindByName(rec.Name)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", errors.New("มีตำแหน่งงานนี้อยู่แล้ว")
	}
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.JobPosition{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.RowsAffected == 0 {
		return errors.New("ไม่พบตำแหน่งงาน")
	}
	return tx.Error
}

func (i impl) GetByID(id string) (*dbmodels.JobPosition, error) {
	rec := dbmodels.JobPosition{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) List(activeOnly bool) ([]dbmodels.JobPosition, error) {
	list := []dbmodels.JobPosition{}
	tx := i.db.Model(dbmodels.JobPosition{})
	if activeOnly {
		tx.Where("is_active = ?", true)
	}
	err := tx.Order("name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) FindByName(name string) (*dbmodels.JobPosition, error) {
	rec := dbmodels.JobPosition{}
	err := i.db.
		Where("LOWER(name) = ?", strings.ToLower(name)).
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

func (i impl) Delete(id string) error {
	rec := dbmodels.JobPosition{}
	err := i.db.
		Where("id = ?", id).
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}
