package application

// SubmitApplicationRequest is bound from the multipart form; the resume file
// arrives separately as a file part.
type SubmitApplicationRequest struct {
	JobID           string `form:"job_id" binding:"required,uuid"`
	FullName        string `form:"full_name" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	Phone           string `form:"phone" binding:"required"`
	CurrentLocation string `form:"current_location"`
	CurrentCompany  string `form:"current_company"`
	Linkedin        string `form:"linkedin"`
	Portfolio       string `form:"portfolio"`
	CoverLetter     string `form:"cover_letter"`
	AdditionalInfo  string `form:"additional_info"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ApplicationResponse struct {
	ID              string `json:"id"`
	JobID           string `json:"job_id"`
	OrgID           string `json:"org_id"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CurrentLocation string `json:"current_location,omitempty"`
	CurrentCompany  string `json:"current_company,omitempty"`
	Linkedin        string `json:"linkedin,omitempty"`
	Portfolio       string `json:"portfolio,omitempty"`
	CoverLetter     string `json:"cover_letter,omitempty"`
	AdditionalInfo  string `json:"additional_info,omitempty"`
	ResumeLink      string `json:"resume_link"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`

	JobTitle      string `json:"job_title,omitempty"`
	JobDepartment string `json:"job_department,omitempty"`
}
