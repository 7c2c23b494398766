package repository

import (
	"github.com/onboardhq/onboard-go/internal/domain/employee"
	"gorm.io/gorm"
)

type EmployeeRepo interface {
	GetByID(id uint) (employee.Employee, error)
	GetByUserID(userID uint) (employee.Employee, error)
	ListPaging(page, limit int) ([]employee.Employee, error)
	Save(e *employee.Employee) error
	WithTx(tx *gorm.DB) EmployeeRepo
}

type DBEmployeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) *DBEmployeeRepo {
	return &DBEmployeeRepo{
		db: db,
	}
}

func (r *DBEmployeeRepo) GetByID(id uint) (employee.Employee, error) {
	var e employee.Employee
	if err := r.db.Preload("User").First(&e, id).Error; err != nil {
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *DBEmployeeRepo) GetByUserID(userID uint) (employee.Employee, error) {
	var e employee.Employee
	if err := r.db.Where("user_id = ?", userID).First(&e).Error; err != nil {
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *DBEmployeeRepo) ListPaging(page, limit int) ([]employee.Employee, error) {
	var employees []employee.Employee

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}

	offset := (page - 1) * limit

	err := r.db.Preload("User").Order("e_id asc").Offset(offset).Limit(limit).Find(&employees).Error
	return employees, err
}

func (r *DBEmployeeRepo) Save(e *employee.Employee) error {
	return r.db.Omit("User").Save(e).Error
}

func (r *DBEmployeeRepo) WithTx(tx *gorm.DB) EmployeeRepo {
	if tx == nil {
		return r
	}
	return &DBEmployeeRepo{
		db: tx,
	}
}
