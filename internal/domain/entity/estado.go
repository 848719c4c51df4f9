package entity

import "time"

// EstadoRemito representa un estado configurable por empresa para los remitos
// (ej: Pendiente, Entregado). Exactamente uno por empresa debería estar marcado
// como IsDefault; los casos de uso son responsables de mantenerlo.
type EstadoRemito struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	Color       string // hex, ej. #f59e0b
	Icon        string
	IsActive    bool
	IsDefault   bool
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanonicalEstados devuelve los cuatro estados por defecto con los que se
// siembra una empresa cuando no se clonan estados de otra. El caller debe
// asignar ID, CompanyID y timestamps.
func CanonicalEstados() []EstadoRemito {
	return []EstadoRemito{
		{Name: "Pendiente", Description: "Remito pendiente de preparación", Color: "#f59e0b", Icon: "clock", IsActive: true, IsDefault: true, SortOrder: 1},
		{Name: "Preparado", Description: "Remito preparado para entrega", Color: "#3b82f6", Icon: "package", IsActive: true, IsDefault: false, SortOrder: 2},
		{Name: "Entregado", Description: "Remito entregado al cliente", Color: "#10b981", Icon: "check", IsActive: true, IsDefault: false, SortOrder: 3},
		{Name: "Cancelado", Description: "Remito cancelado", Color: "#ef4444", Icon: "x", IsActive: true, IsDefault: false, SortOrder: 4},
	}
}
