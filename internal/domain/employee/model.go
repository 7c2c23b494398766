package employee

import (
	"time"

	"github.com/lib/pq"
	"github.com/onboardhq/onboard-go/internal/domain/user"
)

type OnboardingStage string

const (
	StageBasicInfo          OnboardingStage = "BASIC_INFO"
	StagePreJoining         OnboardingStage = "PRE_JOINING"
	StagePreJoiningVerified OnboardingStage = "PRE_JOINING_VERIFIED"
	StagePostJoining        OnboardingStage = "POST_JOINING"
	StageOnboarded          OnboardingStage = "ONBOARDED"
	// StageNotJoined is a terminal exit, reachable from any stage by
	// administrative action only. The stage engine never sets it.
	StageNotJoined OnboardingStage = "NOT_JOINED"
)

type Employee struct {
	EID             uint            `gorm:"primaryKey;column:e_id" json:"eid"`
	UserID          uint            `gorm:"not null;uniqueIndex" json:"user_id"`
	EmployeeCode    string          `gorm:"size:50;unique" json:"employee_code"`
	Designation     *string         `gorm:"size:100" json:"designation"`
	Department      *string         `gorm:"size:100" json:"department"`
	Phone           *string         `gorm:"size:20" json:"phone"`
	JoiningDate     *time.Time      `gorm:"type:date" json:"joining_date"`
	OnboardingStage OnboardingStage `gorm:"size:32;default:'BASIC_INFO';not null" json:"onboarding_stage"`
	DisabledForms   pq.StringArray  `gorm:"type:text[]" json:"disabled_forms"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	User            user.User       `gorm:"foreignKey:UserID" json:"user"`
}

// FormDisabled reports whether the given form type is excluded from the
// employee's required set.
func (e *Employee) FormDisabled(formType string) bool {
	for _, f := range e.DisabledForms {
		if f == formType {
			return true
		}
	}
	return false
}
