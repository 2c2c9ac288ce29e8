package leave

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	KindLeave = "Leave"
	KindWFH   = "WFH"

	TypeSick   = "Sick Leave"
	TypeCasual = "Casual Leave"
	TypeEarned = "Earned Leave"

	DurationFullDay = "Full Day"
	DurationHalfDay = "Half Day"

	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

// LeaveRequest is the ledger row: append-mostly, status flips exactly once
// from Pending to Accepted or Rejected and never moves again.
type LeaveRequest struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Username string    `gorm:"type:varchar(100);not null"`

	// Kind is Leave or WFH; type and duration are empty for WFH.
	Kind      string `gorm:"column:leave_wfh;type:varchar(10);not null"`
	LeaveType string `gorm:"column:type;type:varchar(30);not null;default:''"`
	Duration  string `gorm:"type:varchar(10);not null;default:''"`

	FromDate time.Time `gorm:"type:date;not null"`
	ToDate   time.Time `gorm:"type:date;not null"`
	Reason   string    `gorm:"type:text;not null"`

	Status    string    `gorm:"type:varchar(20);not null;default:'Pending';index"`
	CreatedOn time.Time `gorm:"column:created_on;autoCreateTime"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// LeaveBalance is the per-employee balance record. Pending counts carry
// half-day granularity, are never negative, and are mutated only by the
// decision path on acceptance of a Leave-kind request.
type LeaveBalance struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`

	FYCasual decimal.Decimal `gorm:"column:fy_casual_leaves;type:numeric(5,2);not null"`
	FYSick   decimal.Decimal `gorm:"column:fy_sick_leaves;type:numeric(5,2);not null"`
	FYEarned decimal.Decimal `gorm:"column:fy_earned_leaves;type:numeric(5,2);not null"`

	PendingCasual decimal.Decimal `gorm:"column:pending_casual_leaves;type:numeric(5,2);not null"`
	PendingSick   decimal.Decimal `gorm:"column:pending_sick_leaves;type:numeric(5,2);not null"`
	PendingEarned decimal.Decimal `gorm:"column:pending_earned_leaves;type:numeric(5,2);not null"`
}

func (LeaveBalance) TableName() string {
	return "leave_master"
}

// BalanceColumn is the closed enum of pending-balance columns. Queries are
// selected from a fixed map keyed by this type, so no SQL is ever built from
// request data.
type BalanceColumn string

const (
	ColumnPendingCasual BalanceColumn = "pending_casual_leaves"
	ColumnPendingSick   BalanceColumn = "pending_sick_leaves"
	ColumnPendingEarned BalanceColumn = "pending_earned_leaves"
)

func BalanceColumnForType(leaveType string) (BalanceColumn, bool) {
	switch leaveType {
	case TypeCasual:
		return ColumnPendingCasual, true
	case TypeSick:
		return ColumnPendingSick, true
	case TypeEarned:
		return ColumnPendingEarned, true
	default:
		return "", false
	}
}

// PendingFor returns the pending count backing the given column.
func (b LeaveBalance) PendingFor(col BalanceColumn) decimal.Decimal {
	switch col {
	case ColumnPendingCasual:
		return b.PendingCasual
	case ColumnPendingSick:
		return b.PendingSick
	case ColumnPendingEarned:
		return b.PendingEarned
	default:
		return decimal.Zero
	}
}
