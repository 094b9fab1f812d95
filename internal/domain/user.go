package domain

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

type User struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Role               Role   `json:"role"`
	Avatar             string `json:"avatar,omitempty"`
	MustChangePassword bool   `json:"mustChangePassword,omitempty"`
	LastLogin          string `json:"lastLogin,omitempty"`
}
