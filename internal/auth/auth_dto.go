package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID       string `json:"id"`
	OrgID    string `json:"org_id"`
	Username string `json:"username"`
	FullName string `json:"fullname"`
	UserType string `json:"user_type"`
}
