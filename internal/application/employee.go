package application

import (
	"errors"

	"github.com/onboardhq/onboard-go/internal/domain/employee"
	"github.com/onboardhq/onboard-go/internal/domain/submission"
	"github.com/onboardhq/onboard-go/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmployeeExists    = errors.New("employee profile already exists for user")
	ErrInvalidStageValue = errors.New("unknown onboarding stage")
)

type EmployeeService struct {
	Repos *repository.Repos
	Stage *StageService
}

func NewEmployeeService(repos *repository.Repos, stage *StageService) *EmployeeService {
	return &EmployeeService{
		Repos: repos,
		Stage: stage,
	}
}

func (s *EmployeeService) CreateEmployee(input employee.CreateEmployeeInput) (employee.Employee, error) {
	if _, err := s.Repos.User.GetUserByID(input.UserID); err != nil {
		return employee.Employee{}, ErrUserNotFound
	}
	_, err := s.Repos.Employee.GetByUserID(input.UserID)
	if err == nil {
		return employee.Employee{}, ErrEmployeeExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return employee.Employee{}, err
	}

	emp := employee.Employee{
		UserID:          input.UserID,
		EmployeeCode:    input.EmployeeCode,
		Designation:     input.Designation,
		Department:      input.Department,
		Phone:           input.Phone,
		JoiningDate:     input.JoiningDate,
		OnboardingStage: employee.StageBasicInfo,
	}
	return emp, s.Repos.Employee.Save(&emp)
}

func (s *EmployeeService) GetEmployeeByID(id uint) (employee.Employee, error) {
	emp, err := s.Repos.Employee.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employee.Employee{}, ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetEmployeeByUserID resolves an authenticated principal to its employee
// profile.
func (s *EmployeeService) GetEmployeeByUserID(userID uint) (employee.Employee, error) {
	emp, err := s.Repos.Employee.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employee.Employee{}, ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (s *EmployeeService) ListEmployeesPaging(page, limit int) ([]employee.Employee, error) {
	return s.Repos.Employee.ListPaging(page, limit)
}

func (s *EmployeeService) UpdateEmployee(id uint, input employee.UpdateEmployeeInput) (employee.Employee, error) {
	emp, err := s.Repos.Employee.GetByID(id)
	if err != nil {
		return employee.Employee{}, ErrEmployeeNotFound
	}

	if input.Designation != nil {
		emp.Designation = input.Designation
	}
	if input.Department != nil {
		emp.Department = input.Department
	}
	if input.Phone != nil {
		emp.Phone = input.Phone
	}
	if input.JoiningDate != nil {
		emp.JoiningDate = input.JoiningDate
	}

	if err := s.Repos.Employee.Save(&emp); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// SetFormDisabled toggles a form's membership in the employee's required
// sets. Idempotent. The stage is reevaluated in the same transaction:
// disabling a form can complete a required set instantly. Re-enabling never
// regresses a stage that already advanced.
func (s *EmployeeService) SetFormDisabled(employeeID uint, formType submission.FormType, disabled bool) (employee.Employee, error) {
	if !submission.ValidFormType(formType) {
		return employee.Employee{}, ErrInvalidFormType
	}

	var updated employee.Employee
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		emp, err := tx.Employee.GetByID(employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmployeeNotFound
			}
			return err
		}

		name := string(formType)
		if disabled {
			if !emp.FormDisabled(name) {
				emp.DisabledForms = append(emp.DisabledForms, name)
			}
		} else {
			kept := emp.DisabledForms[:0]
			for _, f := range emp.DisabledForms {
				if f != name {
					kept = append(kept, f)
				}
			}
			emp.DisabledForms = kept
		}

		if err := tx.Employee.Save(&emp); err != nil {
			return err
		}

		stage, err := s.Stage.ReevaluateTx(tx, employeeID)
		if err != nil {
			return err
		}
		emp.OnboardingStage = stage
		updated = emp
		return nil
	})

	return updated, err
}

// SetStage is the manual administrative override, including the NOT_JOINED
// exit. Automatic progression goes through StageService only.
func (s *EmployeeService) SetStage(employeeID uint, stage employee.OnboardingStage) (employee.Employee, error) {
	switch stage {
	case employee.StageBasicInfo, employee.StagePreJoining, employee.StagePreJoiningVerified,
		employee.StagePostJoining, employee.StageOnboarded, employee.StageNotJoined:
	default:
		return employee.Employee{}, ErrInvalidStageValue
	}

	emp, err := s.Repos.Employee.GetByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employee.Employee{}, ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	emp.OnboardingStage = stage
	if err := s.Repos.Employee.Save(&emp); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}
