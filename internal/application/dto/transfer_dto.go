package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Query parameters ──────────────────────────────────────────────────────────

// OptimizationRequest parámetros para GET /api/transfers/optimization.
type OptimizationRequest struct {
	HorizonDays int `query:"horizon_days"` // default 30, max 90
}

// ── Recomendaciones ───────────────────────────────────────────────────────────

// AlternativeOptionDTO candidato secundario no elegido.
type AlternativeOptionDTO struct {
	BranchID   string  `json:"branch_id"`
	BranchName string  `json:"branch_name"`
	Score      float64 `json:"score"`
}

// TransferRecommendationDTO una transferencia recomendada, valorada.
type TransferRecommendationDTO struct {
	ID           string `json:"id"`
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	Barcode      string `json:"barcode"`
	CategoryName string `json:"category_name"`

	FromBranchID   string `json:"from_branch_id"`
	FromBranchName string `json:"from_branch_name"`
	ToBranchID     string `json:"to_branch_id"`
	ToBranchName   string `json:"to_branch_name"`

	RecommendedQuantity int    `json:"recommended_quantity"`
	Priority            string `json:"priority"` // low|medium|high|critical
	Reason              string `json:"reason"`   // expiry_prevention|stock_balancing|demand_optimization|capacity_management

	EstimatedSaving decimal.Decimal `json:"estimated_saving"`
	TransferCost    decimal.Decimal `json:"transfer_cost"`
	NetBenefit      decimal.Decimal `json:"net_benefit"`

	UrgencyScore     int `json:"urgency_score"`     // 0–100
	FeasibilityScore int `json:"feasibility_score"` // 0–100

	DistanceKm                 float64 `json:"distance_km"`
	EstimatedTransferTimeHours int     `json:"estimated_transfer_time_hours"`
	DaysUntilExpiry            int     `json:"days_until_expiry"`

	RecommendedTransferDate time.Time `json:"recommended_transfer_date"`
	ValidUntil              time.Time `json:"valid_until"`
	ExpiryDate              time.Time `json:"expiry_date"`

	Constraints        []string               `json:"constraints,omitempty"`
	AlternativeOptions []AlternativeOptionDTO `json:"alternative_options,omitempty"`
}

// ── Rutas, cronograma y restricciones ─────────────────────────────────────────

// RouteItemDTO línea de producto dentro de una ruta consolidada.
type RouteItemDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Value       decimal.Decimal `json:"value"`
	ExpiryDate  time.Time       `json:"expiry_date"`
}

// ConsolidatedRouteDTO envío único que agrupa un par origen → destino.
type ConsolidatedRouteDTO struct {
	RouteID        string          `json:"route_id"`
	FromBranchID   string          `json:"from_branch_id"`
	FromBranchName string          `json:"from_branch_name"`
	ToBranchID     string          `json:"to_branch_id"`
	ToBranchName   string          `json:"to_branch_name"`
	Items          []RouteItemDTO  `json:"items"`
	TotalQuantity  int             `json:"total_quantity"`
	TotalValue     decimal.Decimal `json:"total_value"`
	Priority       string          `json:"priority"`
	ScheduledDate  time.Time       `json:"scheduled_date"`
}

// TimelineEntryDTO bucket diario del cronograma.
type TimelineEntryDTO struct {
	Date          string          `json:"date"` // YYYY-MM-DD
	TransferCount int             `json:"transfer_count"`
	TotalUnits    int             `json:"total_units"`
	TotalValue    decimal.Decimal `json:"total_value"`
	UrgencyLevel  string          `json:"urgency_level"`
}

// ConstraintDTO restricción agregada detectada sobre el plan.
type ConstraintDTO struct {
	Type             string   `json:"type"` // capacity|time|cost|regulation|operational
	Description      string   `json:"description"`
	AffectedBranches []string `json:"affected_branches"`
	Severity         string   `json:"severity"` // low|medium|high
	Recommendation   string   `json:"recommendation"`
}

// ── Resultado completo ────────────────────────────────────────────────────────

// OptimizationResultDTO respuesta de GET /api/transfers/optimization.
type OptimizationResultDTO struct {
	RunID       string    `json:"run_id"`        // identificador de la corrida (trazabilidad)
	GeneratedAt time.Time `json:"generated_at"`  // now usado por el motor
	HorizonDays int       `json:"horizon_days"`

	TotalRecommendations int             `json:"total_recommendations"`
	TotalPotentialSaving decimal.Decimal `json:"total_potential_saving"`
	TotalTransferCost    decimal.Decimal `json:"total_transfer_cost"`
	NetBenefit           decimal.Decimal `json:"net_benefit"`

	Recommendations []TransferRecommendationDTO `json:"recommendations"`
	Routes          []ConsolidatedRouteDTO      `json:"consolidated_routes"`
	Timeline        []TimelineEntryDTO          `json:"timeline"`
	Constraints     []ConstraintDTO             `json:"constraints"`
}
