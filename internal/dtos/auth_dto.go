package dtos

type RegisterRequest struct {
	Username        string `json:"username" form:"username" binding:"required,min=3,max=150"`
	Email           string `json:"email" form:"email" binding:"required,email"`
	Password        string `json:"password" form:"password" binding:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" form:"password_confirm" binding:"required,eqfield=Password"`
	IsEmployer      bool   `json:"is_employer" form:"is_employer"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
