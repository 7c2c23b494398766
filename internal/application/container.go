package application

import (
	"github.com/onboardhq/onboard-go/internal/repository"
)

type Services struct {
	User       *UserService
	Employee   *EmployeeService
	Submission *SubmissionService
	Stage      *StageService
	Document   *DocumentService
	Audit      *AuditService
}

func New(repos *repository.Repos) *Services {
	stage := NewStageService(repos)
	return &Services{
		User:       NewUserService(repos),
		Employee:   NewEmployeeService(repos, stage),
		Submission: NewSubmissionService(repos, stage),
		Stage:      stage,
		Document:   NewDocumentService(repos),
		Audit:      NewAuditService(repos),
	}
}
