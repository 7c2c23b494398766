package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Data interface{} `json:"data"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type SaveFormResponse struct {
	ID      uint   `json:"id"`
	Status  string `json:"status"`
	Version uint   `json:"version"`
}

type VerifyFormResponse struct {
	Status string `json:"status"`
}

type StageResponse struct {
	EmployeeID uint   `json:"employee_id"`
	Stage      string `json:"stage"`
}
