package entity

import "time"

// Branch representa una sucursal del registro maestro (multi-sucursal).
// Latitude/Longitude alimentan el cálculo de distancias para transferencias.
type Branch struct {
	ID          string
	CompanyID   string
	Name        string
	Code        string // código corto interno, ej. "BOG-01"
	Address     string
	Latitude    float64
	Longitude   float64
	MaxCapacity int // capacidad total de almacenamiento en unidades
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
