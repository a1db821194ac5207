package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpiringProduct es un producto próximo a vencer en una sucursal concreta.
// DaysUntilExpiry puede ser negativo (ya vencido). Snapshot inmutable.
type ExpiringProduct struct {
	ProductID       string
	Name            string
	Barcode         string
	CategoryName    string
	BranchID        string // sucursal origen donde está el stock
	CurrentStock    int
	DaysUntilExpiry int
	ValueAtRisk     decimal.Decimal // valor que se perdería si no se vende a tiempo
	ExpiryDate      time.Time
}
