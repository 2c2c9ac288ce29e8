package leave

type ApplyLeaveRequest struct {
	Username  string `json:"username" binding:"required"`
	Kind      string `json:"leave_wfh" binding:"required,oneof=Leave WFH"`
	LeaveType string `json:"leave_type"`
	Duration  string `json:"duration"`
	FromDate  string `json:"from_date" binding:"required"`
	ToDate    string `json:"to_date" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type LeaveActionRequest struct {
	LeaveID string `json:"leave_id" binding:"required,uuid"`
	Action  string `json:"action" binding:"required,oneof=Accepted Rejected"`
}

type LeaveRequestResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Kind      string `json:"leave_wfh"`
	LeaveType string `json:"type,omitempty"`
	Duration  string `json:"duration,omitempty"`
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
	CreatedOn string `json:"created_on"`
}

type DecisionResponse struct {
	LeaveID string `json:"leave_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type OverviewResponse struct {
	RemainingCL float64 `json:"remaining_cl"`
	RemainingSL float64 `json:"remaining_sl"`
	RemainingEL float64 `json:"remaining_el"`

	FYCL float64 `json:"fy_cl"`
	FYSL float64 `json:"fy_sl"`
	FYEL float64 `json:"fy_el"`

	History []LeaveRequestResponse `json:"history"`
}
