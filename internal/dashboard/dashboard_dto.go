package dashboard

type EmployeeCard struct {
	UserID       string `json:"user_id"`
	FullName     string `json:"fullname"`
	EmpCode      string `json:"emp_code,omitempty"`
	Department   string `json:"department,omitempty"`
	Position     string `json:"position,omitempty"`
	ProfilePhoto string `json:"profile_photo,omitempty"`
}

type Balances struct {
	RemainingCL float64 `json:"remaining_cl"`
	RemainingSL float64 `json:"remaining_sl"`
	RemainingEL float64 `json:"remaining_el"`
}

type OnLeaveEntry struct {
	Username string `json:"username"`
	FullName string `json:"fullname"`
	Kind     string `json:"leave_wfh"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

type BirthdayEntry struct {
	Username string `json:"username"`
	FullName string `json:"fullname"`
}

type PostingEntry struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department,omitempty"`
	Location   string `json:"location,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type SummaryResponse struct {
	Employee       EmployeeCard    `json:"employee"`
	Balances       Balances        `json:"balances"`
	OnLeaveToday   []OnLeaveEntry  `json:"on_leave_today"`
	OnLeaveTomorrow []OnLeaveEntry `json:"on_leave_tomorrow"`
	BirthdaysToday []BirthdayEntry `json:"birthdays_today"`
	LatestPostings []PostingEntry  `json:"latest_postings"`
}
