package dtos

type JobListQuery struct {
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit    int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
	Location string `form:"location"`
	Type     string `form:"type" binding:"omitempty,oneof=full-time part-time contract internship"`
	Remote   string `form:"remote" binding:"omitempty,oneof=true false"`
}

type CreateJobRequest struct {
	Title        string `json:"title" binding:"required,min=5,max=100"`
	Company      string `json:"company" binding:"required,min=2,max=100"`
	Location     string `json:"location" binding:"required,min=2,max=100"`
	Type         string `json:"type" binding:"required,oneof=full-time part-time contract internship"`
	Description  string `json:"description" binding:"required,min=10,max=2000"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`

	// Optional Fields
	Salary       string `json:"salary" binding:"omitempty,max=50"`
	Requirements string `json:"requirements" binding:"omitempty,max=1000"`
}
