package user

type AccountResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

type GetAccountsFilterRequest struct {
	Role     string `form:"role" binding:"omitempty,oneof=admin hr manager employee"`
	IsActive *bool  `form:"is_active"`
}

type ToggleStatusResponse struct {
	Message  string `json:"message"`
	IsActive bool   `json:"is_active"`
}
