package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User       UserRepo
	Employee   EmployeeRepo
	Submission SubmissionRepo
	Document   DocumentRepo
	Audit      AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:       NewUserRepo(db),
		Employee:   NewEmployeeRepo(db),
		Submission: NewSubmissionRepo(db),
		Document:   NewDocumentRepo(db),
		Audit:      NewAuditRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:       r.User.WithTx(tx),
		Employee:   r.Employee.WithTx(tx),
		Submission: r.Submission.WithTx(tx),
		Document:   r.Document.WithTx(tx),
		Audit:      r.Audit.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn inside one transaction. A Repos built without a DB (unit
// tests over mocks) runs fn directly, matching the nil guard in WithTx.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
