package dtos

type ApplyRequest struct {
	FullName string `json:"fullName" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`

	// Optional Fields
	Phone       string `json:"phone" binding:"omitempty,max=20"`
	CoverLetter string `json:"coverLetter" binding:"omitempty,max=2000"`
	Resume      string `json:"resume" binding:"omitempty,max=500"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed shortlisted rejected hired"`
	Notes  string `json:"notes" binding:"omitempty,max=1000"`
}
