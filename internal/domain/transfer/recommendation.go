package transfer

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-pro/internal/domain/entity"
)

// buildRecommendation convierte el producto y sus candidatos rankeados en una
// recomendación completamente valorada.
//
// Se intenta el candidato de mayor score; si la cantidad transferible o el
// beneficio neto no son positivos se pasa al siguiente. El primero que supera
// ambas puertas se emite y los candidatos restantes quedan como opciones
// alternativas. Si ninguno es rentable no se emite nada (ok=false).
func (e *Engine) buildRecommendation(
	p entity.ExpiringProduct,
	source entity.BranchStatus,
	candidates []scoredCandidate,
	now time.Time,
) (TransferRecommendation, bool) {
	for i, c := range candidates {
		rec, ok := e.priceCandidate(p, source, c, now)
		if !ok {
			continue
		}

		for _, alt := range candidates[i+1:] {
			rec.AlternativeOptions = append(rec.AlternativeOptions, AlternativeOption{
				BranchID:   alt.branch.BranchID,
				BranchName: alt.branch.Name,
				Score:      alt.score,
			})
		}
		return rec, true
	}
	return TransferRecommendation{}, false
}

// priceCandidate aplica el modelo económico a un par (producto, destino).
func (e *Engine) priceCandidate(
	p entity.ExpiringProduct,
	source entity.BranchStatus,
	c scoredCandidate,
	now time.Time,
) (TransferRecommendation, bool) {
	pol := e.cfg.Policy
	target := c.branch

	// Cantidad: nunca más del 80% del stock origen ni del 10% de la capacidad
	// libre del destino (proporciones de la política).
	qty := minInt(
		int(float64(p.CurrentStock)*pol.StockTransferRatio),
		int(float64(target.AvailableCapacity)*pol.CapacityAbsorptionRatio),
	)
	if qty <= 0 {
		return TransferRecommendation{}, false
	}

	// Ahorro estimado: fracción recuperable del valor en riesgo.
	wastePreventionRate := pol.WastePreventionNormal
	if p.DaysUntilExpiry <= urgencyDays3 {
		wastePreventionRate = pol.WastePreventionUrgent
	}
	saving := p.ValueAtRisk.Mul(decimal.NewFromFloat(wastePreventionRate))

	// Costo: fijo + por kilómetro + por unidad.
	cost := e.cfg.BaseCost.
		Add(decimal.NewFromFloat(c.distanceKm).Mul(e.cfg.PerKmCost)).
		Add(decimal.NewFromInt(int64(qty)).Mul(e.cfg.PerUnitCost))

	// Puerta de rentabilidad: sin beneficio neto positivo no hay recomendación.
	netBenefit := saving.Sub(cost)
	if !netBenefit.IsPositive() {
		return TransferRecommendation{}, false
	}

	urgency := urgencyScore(p)
	feasibility := feasibilityScore(c.distanceKm, source.UtilizationRate, target.UtilizationRate)

	// Fecha recomendada: inmediata si vence en ≤5 días, si no mañana.
	transferDate := now
	if p.DaysUntilExpiry > criticalExpiryDays {
		transferDate = now.AddDate(0, 0, 1)
	}
	validDays := p.DaysUntilExpiry / 2
	if validDays < 1 {
		validDays = 1
	}

	return TransferRecommendation{
		ID:           fmt.Sprintf("TR-%s-%s-%s", p.ProductID, source.BranchID, target.BranchID),
		ProductID:    p.ProductID,
		ProductName:  p.Name,
		Barcode:      p.Barcode,
		CategoryName: p.CategoryName,

		FromBranchID:   source.BranchID,
		FromBranchName: source.Name,
		ToBranchID:     target.BranchID,
		ToBranchName:   target.Name,

		RecommendedQuantity: qty,
		Priority:            priorityFor(urgency, netBenefit),
		Reason:              reasonFor(p, source, target),

		EstimatedSaving: saving,
		TransferCost:    cost,
		NetBenefit:      netBenefit,

		UrgencyScore:     urgency,
		FeasibilityScore: feasibility,

		DistanceKm:                 c.distanceKm,
		EstimatedTransferTimeHours: transferTimeHours(c.distanceKm),
		DaysUntilExpiry:            p.DaysUntilExpiry,
		ExpiryDate:                 p.ExpiryDate,

		RecommendedTransferDate: transferDate,
		ValidUntil:              now.AddDate(0, 0, validDays),

		Constraints: advisories(p, source, target),
	}, true
}

// criticalExpiryDays umbral de vencimiento que fuerza transferencia inmediata
// y clasifica el motivo como prevención de vencimiento.
const criticalExpiryDays = 5

// urgencyScore 0–100: componente temporal (50%), de valor (30%) y de stock (20%).
func urgencyScore(p entity.ExpiringProduct) int {
	var timeScore int
	switch {
	case p.DaysUntilExpiry <= urgencyDays1:
		timeScore = 50
	case p.DaysUntilExpiry <= urgencyDays3:
		timeScore = 40
	case p.DaysUntilExpiry <= urgencyDays7:
		timeScore = 30
	default:
		timeScore = 20
	}

	var valueScore int
	switch {
	case p.ValueAtRisk.GreaterThan(valueTierHigh):
		valueScore = 30
	case p.ValueAtRisk.GreaterThan(valueTierMid):
		valueScore = 25
	case p.ValueAtRisk.GreaterThan(valueTierLow):
		valueScore = 20
	default:
		valueScore = 15
	}

	var stockScore int
	switch {
	case p.CurrentStock > 100:
		stockScore = 20
	case p.CurrentStock > 50:
		stockScore = 15
	default:
		stockScore = 10
	}

	return timeScore + valueScore + stockScore
}

// feasibilityScore 0–100: qué tan ejecutable es el traslado en la práctica.
// Penaliza distancia, congestión del destino y origen con poca ocupación
// (mover stock desde una sucursal casi vacía suele ser señal de otro problema).
func feasibilityScore(km, sourceUtil, targetUtil float64) int {
	score := 100

	switch {
	case km > feasibilityFarKm:
		score -= 20
	case km > feasibilityMidKm:
		score -= 10
	}

	switch {
	case targetUtil > feasibilityHighUtil:
		score -= 25
	case targetUtil > feasibilityMidUtil:
		score -= 15
	}

	if sourceUtil < feasibilityThinSource {
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// priorityFor evalúa los cortes en orden: el primero que aplica gana.
func priorityFor(urgency int, netBenefit decimal.Decimal) Priority {
	switch {
	case urgency >= priorityCriticalUrgency || netBenefit.GreaterThan(valueTierHigh):
		return PriorityCritical
	case urgency >= priorityHighUrgency || netBenefit.GreaterThan(valueTierMid):
		return PriorityHigh
	case urgency >= priorityMediumUrgency || netBenefit.GreaterThan(valueTierLow):
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// reasonFor clasifica el motivo de negocio de la transferencia.
func reasonFor(p entity.ExpiringProduct, source, target entity.BranchStatus) Reason {
	switch {
	case p.DaysUntilExpiry <= criticalExpiryDays:
		return ReasonExpiryPrevention
	case source.UtilizationRate > feasibilityHighUtil:
		return ReasonCapacityManagement
	case math.Abs(source.UtilizationRate-target.UtilizationRate) > 0.3:
		return ReasonStockBalancing
	default:
		return ReasonDemandOptimization
	}
}

// transferTimeHours 1h de alistamiento + traslado a velocidad promedio + 1h de entrega.
func transferTimeHours(km float64) int {
	return 1 + int(math.Ceil(km/travelSpeedKmPerHour)) + 1
}

// advisories advertencias operativas legibles que acompañan la recomendación.
func advisories(p entity.ExpiringProduct, source, target entity.BranchStatus) []string {
	var out []string
	if target.UtilizationRate > feasibilityMidUtil {
		out = append(out, "la sucursal destino está cerca de su capacidad máxima")
	}
	if p.DaysUntilExpiry <= 2 {
		out = append(out, "muy urgente: coordinar la transferencia de inmediato")
	}
	if source.TotalProducts < 10 {
		out = append(out, "la sucursal origen tiene inventario limitado")
	}
	return out
}

// sortRecommendations orden final: prioridad descendente y, dentro de la misma
// prioridad, beneficio neto descendente. Estable para el resto.
func sortRecommendations(recs []TransferRecommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Priority != recs[j].Priority {
			return recs[i].Priority > recs[j].Priority
		}
		return recs[i].NetBenefit.GreaterThan(recs[j].NetBenefit)
	})
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
