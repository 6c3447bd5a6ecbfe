package entity

type AdminLoginData struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
