package dto

import "time"

// RegisterRequest alta de un empleado. Las contraseñas deben coincidir.
type RegisterRequest struct {
	Firstname   string `json:"firstname" validate:"required"`
	Lastname    string `json:"lastname" validate:"required"`
	Login       string `json:"login" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
	Password1   string `json:"password1" validate:"required,min=8"`
	Password2   string `json:"password2" validate:"required,min=8"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResponse token emitido tras un login válido.
type LoginResponse struct {
	Token string `json:"token"`
	Type  string `json:"type"` // "Bearer"
}

// UserInfoResponse datos visibles de un empleado.
type UserInfoResponse struct {
	ID          string    `json:"id"`
	Login       string    `json:"login"`
	Firstname   string    `json:"firstname"`
	Lastname    string    `json:"lastname"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	WarehouseID string    `json:"warehouse_id"`
	Role        string    `json:"role"`
	LastUpdated time.Time `json:"last_updated"`
}
