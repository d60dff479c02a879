package applicantstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "hr-intake-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Applicant) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Applicant, err error)
	List(filter dbmodels.ApplicantFilter) ([]dbmodels.Applicant, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Applicant) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
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
		Model(&dbmodels.Applicant{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.RowsAffected == 0 {
		return errors.New("ไม่พบข้อมูลผู้สมัคร")
	}
	err := tx.Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Applicant, error) {
	rec := dbmodels.Applicant{}
	err := i.db.
		Model(&dbmodels.Applicant{}).
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

func (i impl) List(filter dbmodels.ApplicantFilter) (list []dbmodels.Applicant, err error) {
	list = []dbmodels.Applicant{}
	tx := i.db.
		Model(dbmodels.Applicant{})
	i.addFilter(tx, filter)
	err = tx.Order("submission_date desc, created_at desc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.ApplicantFilter) {
	if filter.SubmissionDate != "" {
		tx.Where("submission_date = ?", filter.SubmissionDate)
	}
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(full_name) like ? or personal_data->>'mobile_phone' like ? or personal_data->>'email' like ?",
			searchValue, searchValue, searchValue)
	}
}
