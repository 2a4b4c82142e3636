package attendance

type ClockInRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

type ClockOutRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

type MarkAttendanceRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required"`
	Status     string  `json:"status" binding:"required,oneof=present absent late leave"`
	Notes      *string `json:"notes"`
}

type UpdateAttendanceRequest struct {
	Status string  `json:"status" binding:"required,oneof=present absent late leave"`
	Notes  *string `json:"notes"`
}

type GetAttendanceFilterRequest struct {
	Date   string `form:"date"`
	Status string `form:"status" binding:"omitempty,oneof=present absent late leave"`
}

type GetByEmployeeFilterRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	ClockIn      *string `json:"clock_in,omitempty"`
	ClockOut     *string `json:"clock_out,omitempty"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`
}

type ClockInResponse struct {
	Message      string `json:"message"`
	AttendanceID string `json:"attendanceId"`
	ClockIn      string `json:"clockIn"`
}

type ClockOutResponse struct {
	Message  string `json:"message"`
	ClockOut string `json:"clockOut"`
}
