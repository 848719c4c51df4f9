package entity

import "time"

// Company representa una organización/tenant del sistema. Todas las entidades
// de negocio (usuarios, productos, clientes, remitos) pertenecen a exactamente
// una Company. El nombre es único a nivel global (constraint en DB).
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
