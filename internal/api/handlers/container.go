package handlers

import (
	"github.com/onboardhq/onboard-go/internal/application"
	"github.com/onboardhq/onboard-go/internal/repository"
)

type Handlers struct {
	User       *UserHandler
	Employee   *EmployeeHandler
	Submission *SubmissionHandler
	Document   *DocumentHandler
	Audit      *AuditHandler
	Onboarding *OnboardingStreamHandler
}

func New(svc *application.Services, repos *repository.Repos) *Handlers {
	return &Handlers{
		User:       NewUserHandler(svc.User),
		Employee:   NewEmployeeHandler(svc.Employee, svc.Stage, repos),
		Submission: NewSubmissionHandler(svc.Submission, svc.Employee, repos),
		Document:   NewDocumentHandler(svc.Document, svc.Employee),
		Audit:      NewAuditHandler(svc.Audit),
		Onboarding: NewOnboardingStreamHandler(svc.Submission, svc.Stage),
	}
}
