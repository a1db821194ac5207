package transfer

import (
	"errors"
	"sort"

	"github.com/tu-usuario/retail-pro/internal/domain/entity"
)

// scoredCandidate sucursal destino rankeada para un producto concreto.
type scoredCandidate struct {
	branch     entity.BranchStatus
	distanceKm float64
	score      float64
}

// scoreCandidates rankea las demás sucursales como destino para el producto.
//
// Elegibilidad: no ser la sucursal origen, tener capacidad libre y utilización
// por debajo del máximo de la política. Un par sin distancia conocida se
// excluye (fail-soft). Devuelve los mejores TopCandidates por score
// descendente; empates se resuelven por menor BranchID para que la corrida
// sea determinista. Sin candidatos elegibles devuelve lista vacía: el
// producto simplemente no genera recomendación.
func (e *Engine) scoreCandidates(
	p entity.ExpiringProduct,
	source entity.BranchStatus,
	branches []entity.BranchStatus,
) []scoredCandidate {
	pol := e.cfg.Policy

	candidates := make([]scoredCandidate, 0, len(branches))
	for _, b := range branches {
		if b.BranchID == source.BranchID {
			continue
		}
		if b.AvailableCapacity <= 0 || b.UtilizationRate >= pol.MaxTargetUtilization {
			continue
		}

		km, err := e.distances.DistanceKm(source.BranchID, b.BranchID)
		if err != nil {
			if errors.Is(err, ErrDistanceUnavailable) {
				continue // candidato sin distancia conocida: se excluye
			}
			continue
		}

		candidates = append(candidates, scoredCandidate{
			branch:     b,
			distanceKm: km,
			score:      e.candidateScore(p, b, km),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].branch.BranchID < candidates[j].branch.BranchID
	})

	if len(candidates) > pol.TopCandidates {
		candidates = candidates[:pol.TopCandidates]
	}
	return candidates
}

// candidateScore puntaje multicriterio del destino (los pesos suman 100):
//
//	capacidad  = (1 - utilización) * CapacityWeight
//	distancia  = max(0, (100 - km) / 100) * DistanceWeight
//	desempeño  = (1 - merma / valorStock) * PerformanceWeight
//	urgencia   = UrgencyMatchNear | Mid | Far según días al vencimiento
func (e *Engine) candidateScore(p entity.ExpiringProduct, b entity.BranchStatus, km float64) float64 {
	pol := e.cfg.Policy

	capacityScore := (1 - b.UtilizationRate) * pol.CapacityWeight

	distanceRatio := (100 - km) / 100
	if distanceRatio < 0 {
		distanceRatio = 0
	}
	distanceScore := distanceRatio * pol.DistanceWeight

	// Sucursales con mucha merma histórica rankean peor como receptoras.
	performanceScore := 0.0
	if b.TotalStockValue.IsPositive() {
		wasteRatio := b.WasteValue.Div(b.TotalStockValue).InexactFloat64()
		performanceScore = (1 - wasteRatio) * pol.PerformanceWeight
	}

	var urgencyScore float64
	switch {
	case p.DaysUntilExpiry <= urgencyDays3:
		urgencyScore = pol.UrgencyMatchNear
	case p.DaysUntilExpiry <= urgencyDays7:
		urgencyScore = pol.UrgencyMatchMid
	default:
		urgencyScore = pol.UrgencyMatchFar
	}

	return capacityScore + distanceScore + performanceScore + urgencyScore
}
