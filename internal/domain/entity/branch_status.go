package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BranchStatus es la foto del estado de inventario de una sucursal en un instante.
// La produce el subsistema de inventario; el motor de transferencias la trata
// como snapshot de solo lectura durante una corrida de optimización.
type BranchStatus struct {
	BranchID          string
	Name              string
	Code              string
	TotalProducts     int
	TotalStockValue   decimal.Decimal
	ExpiringCount     int // productos que vencen dentro del horizonte
	ExpiredCount      int
	CriticalCount     int // vencen en 3 días o menos
	AvailableCapacity int     // unidades libres de almacenamiento
	UtilizationRate   float64 // 0–1, ocupación de la capacidad
	AverageExpiryDays float64
	WasteValue        decimal.Decimal // valor perdido por vencimientos
	LastSyncAt        time.Time
}
