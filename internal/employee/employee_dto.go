package employee

type CreateEmployeeRequest struct {
	OrgID    string `json:"org_id" binding:"required,uuid"`
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	UserType string `json:"user_type" binding:"omitempty,oneof=Employee Manager HR"`

	FullName string `json:"fullname" binding:"required"`
	Gender   string `json:"gender"`
	DOB      string `json:"dob"`
	Email    string `json:"email" binding:"omitempty,email"`
	Mobile   string `json:"mobile"`

	JoiningDate string `json:"joining_date"`
	EmpCode     string `json:"emp_code"`
	Department  string `json:"department"`
	Position    string `json:"position"`

	Address          string `json:"address"`
	BloodGroup       string `json:"blood_group"`
	MaritalStatus    string `json:"marital_status"`
	ReportingManager string `json:"reporting_manager"`
	CityFrom         string `json:"city_from"`
	About            string `json:"about"`
	Hobbies          string `json:"hobbies"`
	Linkedin         string `json:"linkedin"`

	// Fiscal-year allotments seeded into the balance record; defaults apply
	// when zero.
	FYCasualLeaves float64 `json:"fy_casual_leaves"`
	FYSickLeaves   float64 `json:"fy_sick_leaves"`
	FYEarnedLeaves float64 `json:"fy_earned_leaves"`
}

type UpdateEmployeeRequest struct {
	FullName string `json:"fullname"`
	Gender   string `json:"gender"`
	DOB      string `json:"dob"`
	Email    string `json:"email" binding:"omitempty,email"`
	Mobile   string `json:"mobile"`

	JoiningDate string `json:"joining_date"`
	Department  string `json:"department"`
	Position    string `json:"position"`

	Address          string `json:"address"`
	BloodGroup       string `json:"blood_group"`
	MaritalStatus    string `json:"marital_status"`
	ReportingManager string `json:"reporting_manager"`
	CityFrom         string `json:"city_from"`
	ProfilePhoto     string `json:"profile_photo"`
	About            string `json:"about"`
	Hobbies          string `json:"hobbies"`
	Linkedin         string `json:"linkedin"`
}

// UpdateProfileRequest is the self-service subset an employee may edit.
type UpdateProfileRequest struct {
	Mobile       string `json:"mobile"`
	Address      string `json:"address"`
	CityFrom     string `json:"city_from"`
	ProfilePhoto string `json:"profile_photo"`
	About        string `json:"about"`
	Hobbies      string `json:"hobbies"`
	Linkedin     string `json:"linkedin"`
}

type EmployeeResponse struct {
	ID     string `json:"id"`
	OrgID  string `json:"org_id"`
	UserID string `json:"user_id"`

	FullName string `json:"fullname"`
	Gender   string `json:"gender,omitempty"`
	DOB      string `json:"dob,omitempty"`
	Email    string `json:"email,omitempty"`
	Mobile   string `json:"mobile,omitempty"`

	JoiningDate string `json:"joining_date,omitempty"`
	EmpCode     string `json:"emp_code,omitempty"`
	Department  string `json:"department,omitempty"`
	Position    string `json:"position,omitempty"`

	Address          string `json:"address,omitempty"`
	BloodGroup       string `json:"blood_group,omitempty"`
	MaritalStatus    string `json:"marital_status,omitempty"`
	ReportingManager string `json:"reporting_manager,omitempty"`
	CityFrom         string `json:"city_from,omitempty"`
	ProfilePhoto     string `json:"profile_photo,omitempty"`
	About            string `json:"about,omitempty"`
	Hobbies          string `json:"hobbies,omitempty"`
	Linkedin         string `json:"linkedin,omitempty"`
}
