package interviewquestionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-intake-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.InterviewQuestion) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.InterviewQuestion, error)
	List(activeOnly bool) ([]dbmodels.InterviewQuestion, error)
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

func (i impl) Create(rec dbmodels.InterviewQuestion) (id string, err error) {
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
		Model(&dbmodels.InterviewQuestion{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.RowsAffected == 0 {
		return errors.New("ไม่พบคำถามสัมภาษณ์")
	}
	return tx.Error
}

func (i impl) GetByID(id string) (*dbmodels.InterviewQuestion, error) {
	rec := dbmodels.InterviewQuestion{}
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

func (i impl) List(activeOnly bool) ([]dbmodels.InterviewQuestion, error) {
	list := []dbmodels.InterviewQuestion{}
	tx := i.db.Model(dbmodels.InterviewQuestion{})
	if activeOnly {
		tx.Where("is_active = ?", true)
	}
	err := tx.Order("sort_order").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.InterviewQuestion{}
	err := i.db.
		Where("id = ?", id).
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}
