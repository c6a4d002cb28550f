// 文件路径: internal/repository/types.go
// 模块说明: 用户与账单两类记录的领域模型，以及筛选器使用的枚举值。
package repository

import "time"

// All 是所有枚举选择器共用的"不过滤"哨兵值。
const All = "all"

// UserStatus 表示用户的在职状态。
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusPaused   UserStatus = "paused"
	UserStatusVacation UserStatus = "vacation"
)

// UserStatuses lists every user status in display order.
var UserStatuses = []UserStatus{UserStatusActive, UserStatusInactive, UserStatusPaused, UserStatusVacation}

// WorkerType 区分雇员与雇主。
type WorkerType string

const (
	WorkerTypeEmployee WorkerType = "employee"
	WorkerTypeEmployer WorkerType = "employer"
)

// WorkerTypes lists every worker type in display order.
var WorkerTypes = []WorkerType{WorkerTypeEmployee, WorkerTypeEmployer}

// User is a row of the users screen.
type User struct {
	ID         int64      `json:"id" yaml:"id"`
	FirstName  string     `json:"first_name" yaml:"first_name"`
	LastName   string     `json:"last_name" yaml:"last_name"`
	Email      string     `json:"email" yaml:"email"`
	Phone      string     `json:"phone" yaml:"phone"`
	Status     UserStatus `json:"status" yaml:"status"`
	WorkerType WorkerType `json:"worker_type" yaml:"worker_type"`
	CreatedAt  time.Time  `json:"created_at" yaml:"created_at"`
	Avatar     string     `json:"avatar" yaml:"avatar"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// BillingStatus 表示账单的支付状态。
type BillingStatus string

const (
	BillingStatusPending   BillingStatus = "pending"
	BillingStatusPaid      BillingStatus = "paid"
	BillingStatusOverdue   BillingStatus = "overdue"
	BillingStatusCancelled BillingStatus = "cancelled"
)

// BillingStatuses lists every billing status in display order.
var BillingStatuses = []BillingStatus{BillingStatusPending, BillingStatusPaid, BillingStatusOverdue, BillingStatusCancelled}

// Billing is a row of the billing screen. PaidAt is only set for paid bills.
type Billing struct {
	ID       int64         `json:"id" yaml:"id"`
	UserID   int64         `json:"user_id" yaml:"user_id"`
	UserName string        `json:"user_name" yaml:"user_name"`
	Amount   float64       `json:"amount" yaml:"amount"`
	Status   BillingStatus `json:"status" yaml:"status"`
	DueDate  time.Time     `json:"due_date" yaml:"due_date"`
	PaidAt   *time.Time    `json:"paid_at,omitempty" yaml:"paid_at,omitempty"`
}
