package application

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/onboardhq/onboard-go/internal/config"
	"github.com/onboardhq/onboard-go/internal/domain/submission"
	"github.com/onboardhq/onboard-go/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrInvalidFormType = errors.New("unknown form type")
	ErrInvalidDecision = errors.New("decision must be VERIFIED or REJECTED")
	ErrNotSubmitted    = errors.New("form has no submitted version to verify")
	ErrFormNotFound    = errors.New("form not found")
	ErrReasonRequired  = errors.New("rejection reason is required")
	// ErrAlreadySubmitted: the current version is awaiting verification and
	// cannot be edited until it is decided. Not retryable.
	ErrAlreadySubmitted = errors.New("form is awaiting verification")
	// ErrConflict marks a lost read-modify-write race on the live row.
	// Safe to retry; SaveForm retries once itself.
	ErrConflict = errors.New("concurrent update on form, retry")
)

type SubmissionService struct {
	Repos *repository.Repos
	Stage *StageService
}

func NewSubmissionService(repos *repository.Repos, stage *StageService) *SubmissionService {
	return &SubmissionService{
		Repos: repos,
		Stage: stage,
	}
}

// SaveForm stores a draft or final submission of one form type. An existing
// live row (DRAFT or REJECTED) is updated in place with its payload merged;
// otherwise a new version is created, numbered after the latest row. Two
// saves racing on the same key serialize on the live-row unique index; the
// loser is retried once.
func (s *SubmissionService) SaveForm(employeeID uint, formType submission.FormType, input submission.SaveFormInput) (submission.FormSubmission, error) {
	if !submission.ValidFormType(formType) {
		return submission.FormSubmission{}, ErrInvalidFormType
	}

	saved, err := s.saveTx(employeeID, formType, input)
	if errors.Is(err, ErrConflict) {
		saved, err = s.saveTx(employeeID, formType, input)
	}
	return saved, err
}

func (s *SubmissionService) saveTx(employeeID uint, formType submission.FormType, input submission.SaveFormInput) (submission.FormSubmission, error) {
	var saved submission.FormSubmission

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		now := time.Now()

		live, err := tx.Submission.FindLive(employeeID, formType)
		if err == nil {
			merged, mergeErr := mergePayload(live.Data, input.Data)
			if mergeErr != nil {
				return mergeErr
			}
			live.Data = merged
			if input.Draft {
				live.Status = submission.StatusDraft
			} else {
				live.Status = submission.StatusSubmitted
				live.SubmittedAt = &now
			}
			// A resaved rejection starts a fresh review; drop the old
			// decision along with its reason.
			live.RejectionReason = nil
			live.VerifiedAt = nil
			live.VerifiedBy = nil

			if err := tx.Submission.Update(&live); err != nil {
				return translateConflict(err)
			}
			saved = live
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// No editable row. Either the current version is SUBMITTED and
		// locked until verification, or the prior cycle ended VERIFIED
		// (or this is the first save) and the next version starts here.
		nextVersion := uint(1)
		latest, err := tx.Submission.FindLatest(employeeID, formType)
		if err == nil {
			if latest.Status == submission.StatusSubmitted {
				return ErrAlreadySubmitted
			}
			nextVersion = latest.Version + 1
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		data, err := json.Marshal(input.Data)
		if err != nil {
			return err
		}

		rec := submission.FormSubmission{
			EmployeeID: employeeID,
			FormType:   formType,
			Version:    nextVersion,
			Status:     submission.StatusDraft,
			Data:       datatypes.JSON(data),
		}
		if !input.Draft {
			rec.Status = submission.StatusSubmitted
			rec.SubmittedAt = &now
		}

		if err := tx.Submission.Create(&rec); err != nil {
			return translateConflict(err)
		}
		saved = rec
		return nil
	})

	return saved, err
}

// VerifyForm decides the latest SUBMITTED version of a form. A VERIFIED
// decision finalizes the version and reevaluates the employee's onboarding
// stage inside the same transaction, so a verified form can never be
// persisted without its stage check.
func (s *SubmissionService) VerifyForm(employeeID uint, formType submission.FormType, input submission.VerifyFormInput, reviewerID uint) (submission.FormSubmission, error) {
	if !submission.ValidFormType(formType) {
		return submission.FormSubmission{}, ErrInvalidFormType
	}

	decision := submission.SubmissionStatus(input.Decision)
	if decision != submission.StatusVerified && decision != submission.StatusRejected {
		return submission.FormSubmission{}, ErrInvalidDecision
	}
	if decision == submission.StatusRejected && config.RequireRejectReason {
		if input.Reason == nil || strings.TrimSpace(*input.Reason) == "" {
			return submission.FormSubmission{}, ErrReasonRequired
		}
	}

	var decided submission.FormSubmission
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		rec, err := tx.Submission.FindLatestSubmitted(employeeID, formType)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotSubmitted
			}
			return err
		}

		now := time.Now()
		rec.Status = decision
		rec.VerifiedBy = &reviewerID
		rec.VerifiedAt = &now
		if decision == submission.StatusRejected {
			rec.RejectionReason = input.Reason
		} else {
			rec.RejectionReason = nil
		}

		if err := tx.Submission.Update(&rec); err != nil {
			return err
		}

		if decision == submission.StatusVerified {
			if _, err := s.Stage.ReevaluateTx(tx, employeeID); err != nil {
				return err
			}
		}

		decided = rec
		return nil
	})

	return decided, err
}

// GetFormStatus is the autofill read path: the latest record of one form
// type regardless of status.
func (s *SubmissionService) GetFormStatus(employeeID uint, formType submission.FormType) (submission.FormStatusView, error) {
	if !submission.ValidFormType(formType) {
		return submission.FormStatusView{}, ErrInvalidFormType
	}

	rec, err := s.Repos.Submission.FindLatest(employeeID, formType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return submission.FormStatusView{}, ErrFormNotFound
		}
		return submission.FormStatusView{}, err
	}
	return toStatusView(rec), nil
}

// ListFormStatus returns the latest record per form type for an employee.
func (s *SubmissionService) ListFormStatus(employeeID uint) ([]submission.FormStatusView, error) {
	recs, err := s.Repos.Submission.ListLatest(employeeID)
	if err != nil {
		return nil, err
	}
	views := make([]submission.FormStatusView, 0, len(recs))
	for _, rec := range recs {
		views = append(views, toStatusView(rec))
	}
	return views, nil
}

func toStatusView(rec submission.FormSubmission) submission.FormStatusView {
	var data interface{}
	if len(rec.Data) > 0 {
		_ = json.Unmarshal(rec.Data, &data)
	}
	return submission.FormStatusView{
		ID:              rec.ID,
		FormType:        rec.FormType,
		Version:         rec.Version,
		Status:          rec.Status,
		Data:            data,
		RejectionReason: rec.RejectionReason,
		VerifiedBy:      rec.VerifiedBy,
	}
}

// mergePayload shallow-merges the incoming keys over the stored payload.
// Nested objects are replaced wholesale; the payload schema belongs to each
// form type and is opaque here.
func mergePayload(existing datatypes.JSON, patch map[string]interface{}) (datatypes.JSON, error) {
	base := map[string]interface{}{}
	if len(existing) > 0 {
		if err := json.Unmarshal(existing, &base); err != nil {
			return nil, err
		}
	}
	for k, v := range patch {
		base[k] = v
	}
	out, err := json.Marshal(base)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}

func translateConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}
