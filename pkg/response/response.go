package response

type ErrorResponse struct {
	Error        string       `json:"error" example:"Invalid input"`
	Code         string       `json:"code,omitempty" example:"wrong_stage"`
	Stage        string       `json:"stage,omitempty" example:"hod"`
	RequiredRole string       `json:"required_role,omitempty" example:"hod"`
	Fields       []FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Field   string `json:"field" example:"Reason"`
	Message string `json:"message" example:"is required"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type TokenResponse struct {
	Token     string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	UserID    uint   `json:"user_id" example:"12"`
	Username  string `json:"username" example:"tutor1"`
	Role      string `json:"role" example:"tutor"`
	ExpiresIn int    `json:"expires_in" example:"86400"`
}

type UploadResponse struct {
	Key  string `json:"key" example:"attachments/7/5f1c...-certificate.pdf"`
	Size int64  `json:"size" example:"20480"`
}
