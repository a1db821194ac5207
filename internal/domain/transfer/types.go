// Package transfer implementa el motor de optimización de transferencias entre
// sucursales: dado el snapshot de productos próximos a vencer y el estado de
// inventario de cada sucursal, decide qué mover, hacia dónde, cuánto y cuándo,
// y si el movimiento se justifica económicamente.
//
// El motor es una función pura sobre sus argumentos: no hace I/O, no guarda
// estado entre corridas y es seguro ejecutar varias corridas en paralelo
// mientras cada una reciba su propio snapshot.
package transfer

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Enums ─────────────────────────────────────────────────────────────────────

// Priority nivel de prioridad de una recomendación (orden ascendente).
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// String devuelve el identificador estable usado en API y reportes.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "low"
	}
}

// Reason motivo de negocio por el que se recomienda la transferencia.
type Reason string

const (
	ReasonExpiryPrevention   Reason = "expiry_prevention"
	ReasonStockBalancing     Reason = "stock_balancing"
	ReasonDemandOptimization Reason = "demand_optimization"
	ReasonCapacityManagement Reason = "capacity_management"
)

// ConstraintType categoría de una restricción detectada sobre el plan.
type ConstraintType string

const (
	ConstraintCapacity    ConstraintType = "capacity"
	ConstraintTime        ConstraintType = "time"
	ConstraintCost        ConstraintType = "cost"
	ConstraintRegulation  ConstraintType = "regulation"
	ConstraintOperational ConstraintType = "operational"
)

// Severity severidad de una restricción.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ── Resultado ─────────────────────────────────────────────────────────────────

// AlternativeOption candidato secundario descartado a favor del destino elegido.
type AlternativeOption struct {
	BranchID   string
	BranchName string
	Score      float64
}

// TransferRecommendation una transferencia concreta producto → sucursal destino,
// completamente valorada. Invariante: NetBenefit > 0 (las no rentables se
// descartan, nunca se emiten).
type TransferRecommendation struct {
	ID           string
	ProductID    string
	ProductName  string
	Barcode      string
	CategoryName string

	FromBranchID   string
	FromBranchName string
	ToBranchID     string
	ToBranchName   string

	RecommendedQuantity int
	Priority            Priority
	Reason              Reason

	EstimatedSaving decimal.Decimal
	TransferCost    decimal.Decimal
	NetBenefit      decimal.Decimal // EstimatedSaving - TransferCost

	UrgencyScore     int // 0–100
	FeasibilityScore int // 0–100

	DistanceKm                 float64
	EstimatedTransferTimeHours int
	DaysUntilExpiry            int
	ExpiryDate                 time.Time

	RecommendedTransferDate time.Time
	ValidUntil              time.Time

	Constraints        []string // advertencias operativas legibles
	AlternativeOptions []AlternativeOption
}

// RouteItem línea de producto dentro de una ruta consolidada.
type RouteItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	Value       decimal.Decimal
	ExpiryDate  time.Time
}

// ConsolidatedRoute agrupación de todas las recomendaciones que comparten el
// par origen → destino, para ejecutarlas en un solo envío.
type ConsolidatedRoute struct {
	RouteID        string // "<fromBranchID>-<toBranchID>"
	FromBranchID   string
	FromBranchName string
	ToBranchID     string
	ToBranchName   string
	Items          []RouteItem
	TotalQuantity  int
	TotalValue     decimal.Decimal
	Priority       Priority // máxima entre sus recomendaciones
	ScheduledDate  time.Time
}

// TimelineEntry bucket diario del cronograma de transferencias.
type TimelineEntry struct {
	Date          time.Time // truncada a día
	TransferCount int
	TotalUnits    int
	TotalValue    decimal.Decimal
	UrgencyLevel  Priority // máxima prioridad observada ese día
}

// Constraint restricción agregada detectada sobre el conjunto de recomendaciones.
type Constraint struct {
	Type             ConstraintType
	Description      string
	AffectedBranches []string
	Severity         Severity
	Recommendation   string // mitigación sugerida
}

// OptimizationResult resultado completo de una corrida de optimización.
// Se construye una vez por llamada y no se muta después.
type OptimizationResult struct {
	TotalRecommendations int
	TotalPotentialSaving decimal.Decimal
	TotalTransferCost    decimal.Decimal
	NetBenefit           decimal.Decimal

	Recommendations []TransferRecommendation
	Routes          []ConsolidatedRoute
	Timeline        []TimelineEntry
	Constraints     []Constraint
}
