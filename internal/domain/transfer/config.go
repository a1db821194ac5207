package transfer

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ── Tablas de corte (política de priorización) ────────────────────────────────
// Cortes de urgencia, valor y factibilidad centralizados aquí en lugar de
// literales dispersos por los métodos.

const (
	// Componente temporal del urgency score (peso 50).
	urgencyDays1 = 1
	urgencyDays3 = 3
	urgencyDays7 = 7

	// Prioridad por urgency score.
	priorityCriticalUrgency = 80
	priorityHighUrgency     = 60
	priorityMediumUrgency   = 40

	// Penalizaciones de factibilidad.
	feasibilityFarKm      = 50.0
	feasibilityMidKm      = 30.0
	feasibilityHighUtil   = 0.9
	feasibilityMidUtil    = 0.8
	feasibilityThinSource = 0.3

	// Velocidad promedio de ruta para estimar horas de traslado.
	travelSpeedKmPerHour = 30.0
)

// Cortes de valor en riesgo / beneficio neto (COP).
var (
	valueTierHigh = decimal.NewFromInt(1_000_000)
	valueTierMid  = decimal.NewFromInt(500_000)
	valueTierLow  = decimal.NewFromInt(100_000)
)

// ── Política de scoring ───────────────────────────────────────────────────────

// ScoringPolicy pesos y proporciones del ranking de sucursales destino.
// Los pesos de capacidad/distancia/desempeño más el de urgencia suman 100.
type ScoringPolicy struct {
	CapacityWeight    float64 // default 30
	DistanceWeight    float64 // default 25
	PerformanceWeight float64 // default 25

	// Aporte por cercanía del vencimiento: ≤3 días, ≤7 días, resto.
	UrgencyMatchNear float64 // default 20
	UrgencyMatchMid  float64 // default 15
	UrgencyMatchFar  float64 // default 10

	// Una sucursal con utilización igual o mayor no es candidata.
	MaxTargetUtilization float64 // default 0.9

	// Cuántos destinos rankeados se consideran por producto.
	TopCandidates int // default 3

	// Proporción máxima del stock origen que se mueve, y de la capacidad
	// libre del destino que se ocupa, en una sola transferencia.
	StockTransferRatio      float64 // default 0.8
	CapacityAbsorptionRatio float64 // default 0.1

	// Fracción del valor en riesgo que se asume recuperable si la
	// transferencia llega a tiempo.
	WastePreventionUrgent float64 // vence en ≤3 días, default 0.9
	WastePreventionNormal float64 // default 0.7
}

// DefaultScoringPolicy política calibrada con la operación actual.
func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		CapacityWeight:          30,
		DistanceWeight:          25,
		PerformanceWeight:       25,
		UrgencyMatchNear:        20,
		UrgencyMatchMid:         15,
		UrgencyMatchFar:         10,
		MaxTargetUtilization:    0.9,
		TopCandidates:           3,
		StockTransferRatio:      0.8,
		CapacityAbsorptionRatio: 0.1,
		WastePreventionUrgent:   0.9,
		WastePreventionNormal:   0.7,
	}
}

// ── Configuración del motor ───────────────────────────────────────────────────

// Config parámetros económicos y umbrales de una corrida de optimización.
// Los costos están en COP.
type Config struct {
	BaseCost    decimal.Decimal // costo fijo por despacho, default 50000
	PerKmCost   decimal.Decimal // costo por kilómetro, default 2000
	PerUnitCost decimal.Decimal // costo por unidad movida, default 1000

	// Unidades acumuladas hacia un mismo destino a partir de las cuales se
	// reporta restricción de capacidad.
	CapacityThreshold int // default 100

	// Número de recomendaciones críticas e inminentes (≤2 días) a partir del
	// cual se reporta restricción de tiempo.
	CriticalCountThreshold int // default 5

	Policy ScoringPolicy
}

// DefaultConfig configuración con los costos logísticos vigentes.
func DefaultConfig() Config {
	return Config{
		BaseCost:               decimal.NewFromInt(50_000),
		PerKmCost:              decimal.NewFromInt(2_000),
		PerUnitCost:            decimal.NewFromInt(1_000),
		CapacityThreshold:      100,
		CriticalCountThreshold: 5,
		Policy:                 DefaultScoringPolicy(),
	}
}

// Validate rechaza configuraciones económicamente absurdas (fail-fast).
func (c Config) Validate() error {
	if c.BaseCost.IsNegative() || c.PerKmCost.IsNegative() || c.PerUnitCost.IsNegative() {
		return fmt.Errorf("%w: los costos no pueden ser negativos", ErrInvalidConfig)
	}
	if c.CapacityThreshold <= 0 {
		return fmt.Errorf("%w: el umbral de capacidad debe ser positivo", ErrInvalidConfig)
	}
	if c.CriticalCountThreshold <= 0 {
		return fmt.Errorf("%w: el umbral de recomendaciones críticas debe ser positivo", ErrInvalidConfig)
	}
	return c.Policy.validate()
}

func (p ScoringPolicy) validate() error {
	if p.CapacityWeight <= 0 || p.DistanceWeight <= 0 || p.PerformanceWeight <= 0 {
		return fmt.Errorf("%w: los pesos de scoring deben ser positivos", ErrInvalidConfig)
	}
	if p.UrgencyMatchNear <= 0 || p.UrgencyMatchMid <= 0 || p.UrgencyMatchFar <= 0 {
		return fmt.Errorf("%w: los aportes de urgencia deben ser positivos", ErrInvalidConfig)
	}
	if p.MaxTargetUtilization <= 0 || p.MaxTargetUtilization > 1 {
		return fmt.Errorf("%w: la utilización máxima debe estar en (0, 1]", ErrInvalidConfig)
	}
	if p.TopCandidates <= 0 {
		return fmt.Errorf("%w: el número de candidatos debe ser positivo", ErrInvalidConfig)
	}
	if p.StockTransferRatio <= 0 || p.StockTransferRatio > 1 {
		return fmt.Errorf("%w: la proporción de stock a mover debe estar en (0, 1]", ErrInvalidConfig)
	}
	if p.CapacityAbsorptionRatio <= 0 || p.CapacityAbsorptionRatio > 1 {
		return fmt.Errorf("%w: la proporción de capacidad a ocupar debe estar en (0, 1]", ErrInvalidConfig)
	}
	if p.WastePreventionUrgent <= 0 || p.WastePreventionUrgent > 1 ||
		p.WastePreventionNormal <= 0 || p.WastePreventionNormal > 1 {
		return fmt.Errorf("%w: las tasas de prevención de merma deben estar en (0, 1]", ErrInvalidConfig)
	}
	return nil
}
