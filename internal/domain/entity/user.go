package entity

import "time"

// Roles de usuario. El rol viaja en el claim del JWT para que el middleware
// RBAC decida sin consultar la DB.
const (
	RoleAdmin    = "admin"
	RoleBoss     = "boss"
	RoleEmployee = "employee"
)

// User empleado del sistema. WarehouseID es su bodega base (usada por los
// procesos de fabricación para resolver dónde consumir recursos).
type User struct {
	ID          string
	Firstname   string
	Lastname    string
	Login       string // único
	Email       string // único
	Phone       string
	Password    string // hash bcrypt
	WarehouseID string
	ShiftID     *string
	Role        string
	LastUpdated time.Time
}
