package pdfdocstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hr-intake-backend/models"
	dbmodels "hr-intake-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.PdfDocument) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.PdfDocument, err error)
	GetByApplicantAndType(applicantID string, pdfType models.PdfType) (rec *dbmodels.PdfDocument, err error)
	ListByApplicant(applicantID string) ([]dbmodels.PdfDocument, error)
	ListByStatus(status models.PdfStatus) ([]dbmodels.PdfDocument, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PdfDocument) (id string, err error) {
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
		Model(&dbmodels.PdfDocument{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.RowsAffected == 0 {
		return errors.New("ไม่พบเอกสาร")
	}
	err := tx.Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.PdfDocument, error) {
	rec := dbmodels.PdfDocument{}
	err := i.db.
		Model(&dbmodels.PdfDocument{}).
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

func (i impl) GetByApplicantAndType(applicantID string, pdfType models.PdfType) (*dbmodels.PdfDocument, error) {
	rec := dbmodels.PdfDocument{}
	err := i.db.
		Model(&dbmodels.PdfDocument{}).
		Where("applicant_id = ?", applicantID).
		Where("pdf_type = ?", pdfType).
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

func (i impl) ListByApplicant(applicantID string) (list []dbmodels.PdfDocument, err error) {
	list = []dbmodels.PdfDocument{}
	err = i.db.
		Model(dbmodels.PdfDocument{}).
		Where("applicant_id = ?", applicantID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByStatus(status models.PdfStatus) (list []dbmodels.PdfDocument, err error) {
	list = []dbmodels.PdfDocument{}
	err = i.db.
		Model(dbmodels.PdfDocument{}).
		Where("status = ?", status).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
