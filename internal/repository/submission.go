package repository

import (
	"github.com/onboardhq/onboard-go/internal/domain/submission"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	// FindLive returns the row a save may mutate in place (DRAFT or
	// REJECTED). SUBMITTED rows are owned by the verification flow.
	FindLive(employeeID uint, formType submission.FormType) (submission.FormSubmission, error)
	FindLatest(employeeID uint, formType submission.FormType) (submission.FormSubmission, error)
	FindLatestSubmitted(employeeID uint, formType submission.FormType) (submission.FormSubmission, error)
	ListLatest(employeeID uint) ([]submission.FormSubmission, error)
	Create(s *submission.FormSubmission) error
	Update(s *submission.FormSubmission) error
	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{
		db: db,
	}
}

func (r *DBSubmissionRepo) FindLive(employeeID uint, formType submission.FormType) (submission.FormSubmission, error) {
	var s submission.FormSubmission
	err := r.db.
		Where("employee_id = ? AND form_type = ? AND status IN ?",
			employeeID, formType,
			[]submission.SubmissionStatus{submission.StatusDraft, submission.StatusRejected}).
		First(&s).Error
	return s, err
}

func (r *DBSubmissionRepo) FindLatest(employeeID uint, formType submission.FormType) (submission.FormSubmission, error) {
	var s submission.FormSubmission
	err := r.db.
		Where("employee_id = ? AND form_type = ?", employeeID, formType).
		Order("version desc").
		First(&s).Error
	return s, err
}

func (r *DBSubmissionRepo) FindLatestSubmitted(employeeID uint, formType submission.FormType) (submission.FormSubmission, error) {
	var s submission.FormSubmission
	err := r.db.
		Where("employee_id = ? AND form_type = ? AND status = ?",
			employeeID, formType, submission.StatusSubmitted).
		Order("version desc").
		First(&s).Error
	return s, err
}

func (r *DBSubmissionRepo) ListLatest(employeeID uint) ([]submission.FormSubmission, error) {
	var subs []submission.FormSubmission
	err := r.db.
		Raw(`SELECT DISTINCT ON (form_type) *
		     FROM form_submissions
		     WHERE employee_id = ?
		     ORDER BY form_type, version DESC`, employeeID).
		Scan(&subs).Error
	return subs, err
}

func (r *DBSubmissionRepo) Create(s *submission.FormSubmission) error {
	return r.db.Create(s).Error
}

// Update persists a mutated row. Version, form type and employee are
// immutable; updates go through Save on the loaded struct so GORM keys on
// the primary id.
func (r *DBSubmissionRepo) Update(s *submission.FormSubmission) error {
	return r.db.Save(s).Error
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	if tx == nil {
		return r
	}
	return &DBSubmissionRepo{
		db: tx,
	}
}
