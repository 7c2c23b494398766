package repository

import (
	"github.com/onboardhq/onboard-go/internal/domain/document"
	"gorm.io/gorm"
)

type DocumentRepo interface {
	Create(d *document.Document) error
	FindByID(id uint) (document.Document, error)
	ListByEmployeeID(employeeID uint) ([]document.Document, error)
	Delete(id uint) error
	WithTx(tx *gorm.DB) DocumentRepo
}

type DBDocumentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) *DBDocumentRepo {
	return &DBDocumentRepo{
		db: db,
	}
}

func (r *DBDocumentRepo) Create(d *document.Document) error {
	return r.db.Create(d).Error
}

func (r *DBDocumentRepo) FindByID(id uint) (document.Document, error) {
	var d document.Document
	if err := r.db.First(&d, id).Error; err != nil {
		return document.Document{}, err
	}
	return d, nil
}

func (r *DBDocumentRepo) ListByEmployeeID(employeeID uint) ([]document.Document, error) {
	var docs []document.Document
	err := r.db.Where("employee_id = ?", employeeID).Order("created_at desc").Find(&docs).Error
	return docs, err
}

func (r *DBDocumentRepo) Delete(id uint) error {
	return r.db.Delete(&document.Document{}, id).Error
}

func (r *DBDocumentRepo) WithTx(tx *gorm.DB) DocumentRepo {
	if tx == nil {
		return r
	}
	return &DBDocumentRepo{
		db: tx,
	}
}
