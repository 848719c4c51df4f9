package entity

import "time"

// Roles válidos para User. El superadmin opera sobre todas las empresas
// (gestión de tenants y duplicación); admin administra su propia empresa;
// operador solo trabaja con remitos y clientes.
const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleOperador   = "operador"
)

// User representa un usuario del sistema (pertenece a una Company).
// PasswordHash es nil cuando el usuario aún no estableció contraseña
// (por ejemplo tras ser clonado en una duplicación de empresa); en ese
// caso HasTemporaryPassword es true y el login se rechaza hasta que
// complete el alta de contraseña.
type User struct {
	ID                   string
	CompanyID            string
	Email                string
	PasswordHash         *string // bcrypt hash; nil = sin contraseña establecida
	Name                 string
	Role                 string // superadmin, admin, operador
	Phone                string
	Address              string
	HasTemporaryPassword bool
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
