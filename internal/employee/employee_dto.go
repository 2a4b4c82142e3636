package employee

type CreateEmployeeRequest struct {
	UserID         *string `json:"user_id"`
	FirstName      string  `json:"first_name" binding:"required"`
	LastName       string  `json:"last_name" binding:"required"`
	EmployeeNumber string  `json:"employee_id" binding:"required"`
	Department     *string `json:"department"`
	Position       *string `json:"position"`
	HireDate       *string `json:"hire_date"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
}

type UpdateEmployeeRequest struct {
	FirstName  string  `json:"first_name" binding:"required"`
	LastName   string  `json:"last_name" binding:"required"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	Status     string  `json:"status" binding:"required,oneof=active inactive"`
}

type GetEmployeesFilterRequest struct {
	Status     string `form:"status" binding:"omitempty,oneof=active inactive"`
	Department string `form:"department"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	UserID         *string `json:"user_id,omitempty"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	EmployeeNumber string  `json:"employee_id"`
	Department     *string `json:"department,omitempty"`
	Position       *string `json:"position,omitempty"`
	HireDate       *string `json:"hire_date,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Address        *string `json:"address,omitempty"`
	Status         string  `json:"status"`
}

type EmployeeOption struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}
