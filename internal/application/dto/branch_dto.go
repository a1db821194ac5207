package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BranchStatusDTO estado de inventario de una sucursal para el dashboard.
type BranchStatusDTO struct {
	BranchID          string          `json:"branch_id"`
	Name              string          `json:"name"`
	Code              string          `json:"code"`
	TotalProducts     int             `json:"total_products"`
	TotalStockValue   decimal.Decimal `json:"total_stock_value"`
	ExpiringCount     int             `json:"expiring_count"`
	ExpiredCount      int             `json:"expired_count"`
	CriticalCount     int             `json:"critical_count"`
	AvailableCapacity int             `json:"available_capacity"`
	UtilizationRate   float64         `json:"utilization_rate"`
	AverageExpiryDays float64         `json:"average_expiry_days"`
	WasteValue        decimal.Decimal `json:"waste_value"`
	LastSyncAt        time.Time       `json:"last_sync_at"`
}

// BranchStatusListResponse respuesta de GET /api/branches/status.
type BranchStatusListResponse struct {
	Items       []BranchStatusDTO `json:"items"`
	HorizonDays int               `json:"horizon_days"`
}
