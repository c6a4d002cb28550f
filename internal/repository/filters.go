// 文件路径: internal/repository/filters.go
// 模块说明: 两个列表页面的筛选状态。
package repository

// DateWindow 是用户创建时间的滚动窗口选择器。
type DateWindow string

const (
	DateWindowLast7Days  DateWindow = "last7days"
	DateWindowLast30Days DateWindow = "last30days"
	DateWindowLast60Days DateWindow = "last60days"
)

// DateWindows lists the selectable windows, excluding All.
var DateWindows = []DateWindow{DateWindowLast7Days, DateWindowLast30Days, DateWindowLast60Days}

// Days returns the window length, or 0 for All and unknown values.
func (w DateWindow) Days() int {
	switch w {
	case DateWindowLast7Days:
		return 7
	case DateWindowLast30Days:
		return 30
	case DateWindowLast60Days:
		return 60
	default:
		return 0
	}
}

// UserSearch holds the free-text fields of the users screen. Empty fields
// do not filter.
type UserSearch struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// UserFilters constrains the users screen.
type UserFilters struct {
	Search     UserSearch
	Status     UserStatus // All = no filter
	WorkerType WorkerType // All = no filter
	Created    DateWindow // All = no filter
}

// DefaultUserFilters returns filters that match every user.
func DefaultUserFilters() UserFilters {
	return UserFilters{Status: All, WorkerType: All, Created: All}
}

// BillingSearch holds the free-text fields of the billing screen.
type BillingSearch struct {
	UserName string `json:"user_name,omitempty"`
}

// BillingFilters constrains the billing screen.
type BillingFilters struct {
	Search BillingSearch
	Status BillingStatus // All = no filter
	Month  int           // 1-12 matches DueDate month, 0 = no filter
}

// DefaultBillingFilters returns filters that match every bill.
func DefaultBillingFilters() BillingFilters {
	return BillingFilters{Status: All}
}
