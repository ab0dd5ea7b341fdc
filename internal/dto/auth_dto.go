// FILE: internal/dto/auth_dto.go
package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginUser struct {
	Id       string `json:"id"`
	TenantId string `json:"tenant_id,omitempty"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}
