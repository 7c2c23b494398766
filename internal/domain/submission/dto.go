package submission

type SaveFormInput struct {
	Data  map[string]interface{} `json:"data" binding:"required"`
	Draft bool                   `json:"draft"`
}

type VerifyFormInput struct {
	Decision string  `json:"decision" binding:"required"`
	Reason   *string `json:"reason"`
}

// FormStatusView is the read-path summary consumed by the autofill layer.
type FormStatusView struct {
	ID              uint             `json:"id"`
	FormType        FormType         `json:"form_type"`
	Version         uint             `json:"version"`
	Status          SubmissionStatus `json:"status"`
	Data            interface{}      `json:"data"`
	RejectionReason *string          `json:"rejection_reason"`
	VerifiedBy      *uint            `json:"verified_by"`
}
