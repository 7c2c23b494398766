package application

import (
	"errors"
	"log"

	"github.com/onboardhq/onboard-go/internal/config"
	"github.com/onboardhq/onboard-go/internal/domain/employee"
	"github.com/onboardhq/onboard-go/internal/domain/submission"
	"github.com/onboardhq/onboard-go/internal/repository"
	"gorm.io/gorm"
)

type StageService struct {
	Repos *repository.Repos
}

func NewStageService(repos *repository.Repos) *StageService {
	return &StageService{
		Repos: repos,
	}
}

// stageAfter maps an auto-advancing stage to its successor. Stages outside
// this map never move without administrative action.
var stageAfter = map[employee.OnboardingStage]employee.OnboardingStage{
	employee.StagePreJoining:  employee.StagePreJoiningVerified,
	employee.StagePostJoining: employee.StageOnboarded,
}

// Reevaluate advances the employee's onboarding stage when every required
// form of the current stage is verified. Idempotent; an incomplete set is a
// no-op, not an error. Stages only ever move forward.
func (s *StageService) Reevaluate(employeeID uint) (employee.OnboardingStage, error) {
	var stage employee.OnboardingStage
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var txErr error
		stage, txErr = s.ReevaluateTx(tx, employeeID)
		return txErr
	})
	return stage, err
}

// ReevaluateTx is Reevaluate inside an existing unit of work, so callers
// (form verification, disabled-form toggles) can make the stage check part
// of their own transaction.
func (s *StageService) ReevaluateTx(tx *repository.Repos, employeeID uint) (employee.OnboardingStage, error) {
	emp, err := tx.Employee.GetByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrEmployeeNotFound
		}
		return "", err
	}

	next, ok := stageAfter[emp.OnboardingStage]
	if !ok {
		return emp.OnboardingStage, nil
	}

	// A fully-disabled required set passes vacuously; HR can skip a
	// stage's forms entirely by disabling them.
	for _, name := range config.StageForms[string(emp.OnboardingStage)] {
		formType := submission.FormType(name)
		if !submission.ValidFormType(formType) {
			log.Printf("Warning: stage %s requires unknown form type %q, skipping", emp.OnboardingStage, name)
			continue
		}
		if emp.FormDisabled(name) {
			continue
		}

		latest, err := tx.Submission.FindLatest(emp.EID, formType)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return emp.OnboardingStage, nil
			}
			return emp.OnboardingStage, err
		}
		if latest.Status != submission.StatusVerified {
			return emp.OnboardingStage, nil
		}
	}

	emp.OnboardingStage = next
	if err := tx.Employee.Save(&emp); err != nil {
		return "", err
	}
	log.Printf("Employee %d advanced to onboarding stage %s", employeeID, next)
	return next, nil
}

// GetStage reads the current stage without evaluating anything.
func (s *StageService) GetStage(employeeID uint) (employee.OnboardingStage, error) {
	emp, err := s.Repos.Employee.GetByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrEmployeeNotFound
		}
		return "", err
	}
	return emp.OnboardingStage, nil
}
