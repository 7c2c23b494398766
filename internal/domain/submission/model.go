package submission

import (
	"time"

	"gorm.io/datatypes"
)

type FormType string

const (
	FormEmploymentApp FormType = "EMPLOYMENT_APP"
	FormMediclaim     FormType = "MEDICLAIM"
	FormNDA           FormType = "NDA"
	FormDeclaration   FormType = "DECLARATION"
	FormTDS           FormType = "TDS"
	FormEPF           FormType = "EPF"
	FormGratuity      FormType = "GRATUITY"
	FormEmployeeInfo  FormType = "EMPLOYEE_INFO"
)

var formTypes = map[FormType]struct{}{
	FormEmploymentApp: {},
	FormMediclaim:     {},
	FormNDA:           {},
	FormDeclaration:   {},
	FormTDS:           {},
	FormEPF:           {},
	FormGratuity:      {},
	FormEmployeeInfo:  {},
}

func ValidFormType(t FormType) bool {
	_, ok := formTypes[t]
	return ok
}

type SubmissionStatus string

const (
	StatusDraft     SubmissionStatus = "DRAFT"
	StatusSubmitted SubmissionStatus = "SUBMITTED"
	StatusVerified  SubmissionStatus = "VERIFIED"
	StatusRejected  SubmissionStatus = "REJECTED"
)

// FormSubmission is one submission cycle of a statutory form. Exactly one
// non-VERIFIED row may exist per (employee, form type); the partial unique
// index below lets Postgres enforce that under concurrent saves.
type FormSubmission struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	EmployeeID      uint             `gorm:"not null;index:idx_employee_form;uniqueIndex:uniq_live_form,where:status <> 'VERIFIED'" json:"employee_id"`
	FormType        FormType         `gorm:"size:32;not null;index:idx_employee_form;uniqueIndex:uniq_live_form,where:status <> 'VERIFIED'" json:"form_type"`
	Version         uint             `gorm:"not null;default:1" json:"version"`
	Status          SubmissionStatus `gorm:"size:16;not null;default:'DRAFT'" json:"status"`
	Data            datatypes.JSON   `gorm:"type:jsonb" json:"data"`
	SubmittedAt     *time.Time       `json:"submitted_at"`
	VerifiedAt      *time.Time       `json:"verified_at"`
	VerifiedBy      *uint            `json:"verified_by"`
	RejectionReason *string          `gorm:"type:text" json:"rejection_reason"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
