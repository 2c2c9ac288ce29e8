package job

type CreateJobRequest struct {
	Username   string `json:"username" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Location   string `json:"location"`
	Department string `json:"department"`
	WorkType   string `json:"work_type"`
	JobMode    string `json:"job_mode"`

	SalaryMin int64 `json:"salary_min"`
	SalaryMax int64 `json:"salary_max"`

	JobSummary          string `json:"job_summary"`
	AboutTeam           string `json:"about_team"`
	ReportingTo         string `json:"reporting_to"`
	Responsibilities    string `json:"responsibilities"`
	Skills              string `json:"skills"`
	EducationExperience string `json:"education_experience"`
	AboutUs             string `json:"about_us"`
}

type JobResponse struct {
	ID         string `json:"id"`
	OrgID      string `json:"org_id"`
	Title      string `json:"title"`
	Location   string `json:"location,omitempty"`
	Department string `json:"department,omitempty"`
	WorkType   string `json:"work_type,omitempty"`
	JobMode    string `json:"job_mode,omitempty"`

	SalaryMin int64 `json:"salary_min,omitempty"`
	SalaryMax int64 `json:"salary_max,omitempty"`

	JobSummary          string `json:"job_summary,omitempty"`
	AboutTeam           string `json:"about_team,omitempty"`
	ReportingTo         string `json:"reporting_to,omitempty"`
	Responsibilities    string `json:"responsibilities,omitempty"`
	Skills              string `json:"skills,omitempty"`
	EducationExperience string `json:"education_experience,omitempty"`
	AboutUs             string `json:"about_us,omitempty"`

	Status       string `json:"status"`
	Applications int    `json:"applications"`
	CreatedAt    string `json:"created_at"`
}
