package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/onboardhq/onboard-go/internal/domain/employee"
	"github.com/onboardhq/onboard-go/internal/domain/submission"
	"github.com/onboardhq/onboard-go/internal/domain/user"
	"github.com/onboardhq/onboard-go/internal/repository"
	"github.com/onboardhq/onboard-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupEmployeeServiceMocks(t *testing.T) (*EmployeeService, *mock.MockEmployeeRepo, *mock.MockUserRepo, *mock.MockSubmissionRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockEmp := mock.NewMockEmployeeRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	mockSub := mock.NewMockSubmissionRepo(ctrl)
	repos := &repository.Repos{
		User:       mockUser,
		Employee:   mockEmp,
		Submission: mockSub,
	}
	stage := NewStageService(repos)
	svc := NewEmployeeService(repos, stage)
	return svc, mockEmp, mockUser, mockSub
}

// --------------------- CreateEmployee ---------------------
func TestCreateEmployee_Success(t *testing.T) {
	svc, mockEmp, mockUser, _ := setupEmployeeServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(3)).Return(user.User{UID: 3}, nil)
	mockEmp.EXPECT().GetByUserID(uint(3)).Return(employee.Employee{}, gorm.ErrRecordNotFound)
	mockEmp.EXPECT().Save(gomock.Any()).DoAndReturn(func(e *employee.Employee) error {
		assert.Equal(t, employee.StageBasicInfo, e.OnboardingStage)
		assert.Equal(t, "EMP-001", e.EmployeeCode)
		return nil
	})

	input := employee.CreateEmployeeInput{UserID: 3, EmployeeCode: "EMP-001"}
	emp, err := svc.CreateEmployee(input)
	assert.NoError(t, err)
	assert.Equal(t, employee.StageBasicInfo, emp.OnboardingStage)
}

func TestCreateEmployee_UserMissing(t *testing.T) {
	svc, _, mockUser, _ := setupEmployeeServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(3)).Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.CreateEmployee(employee.CreateEmployeeInput{UserID: 3})
	assert.Equal(t, ErrUserNotFound, err)
}

func TestCreateEmployee_AlreadyExists(t *testing.T) {
	svc, mockEmp, mockUser, _ := setupEmployeeServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(3)).Return(user.User{UID: 3}, nil)
	mockEmp.EXPECT().GetByUserID(uint(3)).Return(employee.Employee{EID: 5}, nil)

	_, err := svc.CreateEmployee(employee.CreateEmployeeInput{UserID: 3})
	assert.Equal(t, ErrEmployeeExists, err)
}

// --------------------- SetFormDisabled ---------------------
func TestSetFormDisabled_InvalidType(t *testing.T) {
	svc, _, _, _ := setupEmployeeServiceMocks(t)

	_, err := svc.SetFormDisabled(1, "PAYSLIP", true)
	assert.Equal(t, ErrInvalidFormType, err)
}

func TestSetFormDisabled_AddIsIdempotent(t *testing.T) {
	svc, mockEmp, _, _ := setupEmployeeServiceMocks(t)

	emp := employee.Employee{
		EID:             1,
		OnboardingStage: employee.StageBasicInfo,
		DisabledForms:   []string{"NDA"},
	}
	// GetByID runs twice: once for the toggle, once inside the stage check.
	mockEmp.EXPECT().GetByID(uint(1)).Return(emp, nil).Times(2)
	mockEmp.EXPECT().Save(gomock.Any()).DoAndReturn(func(e *employee.Employee) error {
		assert.Equal(t, []string{"NDA"}, []string(e.DisabledForms))
		return nil
	})

	updated, err := svc.SetFormDisabled(1, submission.FormNDA, true)
	assert.NoError(t, err)
	assert.True(t, updated.FormDisabled("NDA"))
}

func TestSetFormDisabled_DisableCompletesStage(t *testing.T) {
	svc, mockEmp, _, _ := setupEmployeeServiceMocks(t)

	// the fully-disabled set passes without submission lookups
	before := employee.Employee{
		EID:             1,
		OnboardingStage: employee.StagePreJoining,
		DisabledForms:   []string{"GRATUITY", "MEDICLAIM", "EMPLOYMENT_APP"},
	}
	after := employee.Employee{
		EID:             1,
		OnboardingStage: employee.StagePreJoining,
		DisabledForms:   []string{"GRATUITY", "MEDICLAIM", "EMPLOYMENT_APP", "EMPLOYEE_INFO"},
	}

	gomock.InOrder(
		mockEmp.EXPECT().GetByID(uint(1)).Return(before, nil),
		mockEmp.EXPECT().Save(gomock.Any()).Return(nil),
		mockEmp.EXPECT().GetByID(uint(1)).Return(after, nil),
		mockEmp.EXPECT().Save(gomock.Any()).DoAndReturn(func(e *employee.Employee) error {
			assert.Equal(t, employee.StagePreJoiningVerified, e.OnboardingStage)
			return nil
		}),
	)

	updated, err := svc.SetFormDisabled(1, submission.FormEmployeeInfo, true)
	assert.NoError(t, err)
	assert.Equal(t, employee.StagePreJoiningVerified, updated.OnboardingStage)
}

func TestSetFormDisabled_ReenableRemoves(t *testing.T) {
	svc, mockEmp, _, mockSub := setupEmployeeServiceMocks(t)

	emp := employee.Employee{
		EID:             1,
		OnboardingStage: employee.StagePreJoining,
		DisabledForms:   []string{"NDA", "GRATUITY"},
	}
	cleaned := employee.Employee{
		EID:             1,
		OnboardingStage: employee.StagePreJoining,
		DisabledForms:   []string{"NDA"},
	}

	gomock.InOrder(
		mockEmp.EXPECT().GetByID(uint(1)).Return(emp, nil),
		mockEmp.EXPECT().Save(gomock.Any()).DoAndReturn(func(e *employee.Employee) error {
			assert.Equal(t, []string{"NDA"}, []string(e.DisabledForms))
			return nil
		}),
		mockEmp.EXPECT().GetByID(uint(1)).Return(cleaned, nil),
		mockSub.EXPECT().FindLatest(uint(1), submission.FormGratuity).
			Return(submission.FormSubmission{}, gorm.ErrRecordNotFound),
	)

	updated, err := svc.SetFormDisabled(1, submission.FormGratuity, false)
	assert.NoError(t, err)
	assert.False(t, updated.FormDisabled("GRATUITY"))
	assert.Equal(t, employee.StagePreJoining, updated.OnboardingStage)
}

// --------------------- SetStage ---------------------
func TestSetStage_InvalidValue(t *testing.T) {
	svc, _, _, _ := setupEmployeeServiceMocks(t)

	_, err := svc.SetStage(1, "HIRED")
	assert.Equal(t, ErrInvalidStageValue, err)
}

func TestSetStage_NotJoinedOverride(t *testing.T) {
	svc, mockEmp, _, _ := setupEmployeeServiceMocks(t)

	emp := employee.Employee{EID: 1, OnboardingStage: employee.StagePostJoining}
	mockEmp.EXPECT().GetByID(uint(1)).Return(emp, nil)
	mockEmp.EXPECT().Save(gomock.Any()).DoAndReturn(func(e *employee.Employee) error {
		assert.Equal(t, employee.StageNotJoined, e.OnboardingStage)
		return nil
	})

	updated, err := svc.SetStage(1, employee.StageNotJoined)
	assert.NoError(t, err)
	assert.Equal(t, employee.StageNotJoined, updated.OnboardingStage)
}

func TestSetStage_EmployeeNotFound(t *testing.T) {
	svc, mockEmp, _, _ := setupEmployeeServiceMocks(t)

	mockEmp.EXPECT().GetByID(uint(42)).Return(employee.Employee{}, gorm.ErrRecordNotFound)

	_, err := svc.SetStage(42, employee.StagePreJoining)
	assert.Equal(t, ErrEmployeeNotFound, err)
}
