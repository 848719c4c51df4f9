package entity

import "time"

// Client representa un cliente de la empresa (destinatario de remitos).
type Client struct {
	ID        string
	CompanyID string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
