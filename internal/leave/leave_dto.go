package leave

type CreateLeaveRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required,uuid"`
	LeaveTypeID string  `json:"leave_type_id" binding:"required,uuid"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	Days        int     `json:"days" binding:"required,gt=0"`
	Reason      *string `json:"reason"`
}

type CreateLeaveResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

type DecideLeaveRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

type GetLeaveRequestsFilterRequest struct {
	Status     string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
}

type LeaveRequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Days          int     `json:"days"`
	Reason        *string `json:"reason,omitempty"`
	Status        string  `json:"status"`
	ApprovedBy    *string `json:"approved_by,omitempty"`
	ApprovedAt    *string `json:"approved_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type InitializeBalanceRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	TotalDays   int    `json:"total_days" binding:"required,gt=0"`
	Year        int    `json:"year" binding:"required,gte=2000,lte=2100"`
}

type LeaveBalanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name"`
	Description   *string `json:"description,omitempty"`
	Year          int     `json:"year"`
	TotalDays     int     `json:"total_days"`
	UsedDays      int     `json:"used_days"`
	RemainingDays int     `json:"remaining_days"`
}

type GetBalancesFilterRequest struct {
	Year int `form:"year" binding:"omitempty,gte=2000,lte=2100"`
}

type LeaveTypeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	MaxDays     int     `json:"max_days"`
}
