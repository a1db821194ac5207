package transfer

import (
	"fmt"
	"sort"
)

// analyzeConstraints inspecciona el conjunto completo de recomendaciones en
// busca de violaciones agregadas que una recomendación individual no puede ver.
func (e *Engine) analyzeConstraints(recs []TransferRecommendation) []Constraint {
	constraints := e.capacityConstraints(recs)
	if c, ok := e.timeConstraint(recs); ok {
		constraints = append(constraints, c)
	}
	return constraints
}

// capacityConstraints suma las unidades programadas hacia cada destino; si un
// destino supera el umbral configurado se reporta una restricción de capacidad
// de severidad media. Las sucursales se recorren ordenadas por id para que la
// salida sea determinista.
func (e *Engine) capacityConstraints(recs []TransferRecommendation) []Constraint {
	type inbound struct {
		name  string
		units int
	}
	totals := make(map[string]*inbound)
	for _, r := range recs {
		t, ok := totals[r.ToBranchID]
		if !ok {
			t = &inbound{name: r.ToBranchName}
			totals[r.ToBranchID] = t
		}
		t.units += r.RecommendedQuantity
	}

	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []Constraint
	for _, id := range ids {
		t := totals[id]
		if t.units <= e.cfg.CapacityThreshold {
			continue
		}
		out = append(out, Constraint{
			Type: ConstraintCapacity,
			Description: fmt.Sprintf(
				"las transferencias programadas hacia %s suman %d unidades (umbral %d)",
				t.name, t.units, e.cfg.CapacityThreshold,
			),
			AffectedBranches: []string{id},
			Severity:         SeverityMedium,
			Recommendation:   "distribuir las transferencias en varios días",
		})
	}
	return out
}

// timeConstraint cuenta las recomendaciones críticas con vencimiento inminente
// (≤2 días); si superan el umbral configurado se reporta una restricción de
// tiempo de severidad alta con las sucursales origen afectadas.
func (e *Engine) timeConstraint(recs []TransferRecommendation) (Constraint, bool) {
	sources := make(map[string]struct{})
	count := 0
	for _, r := range recs {
		if r.Priority == PriorityCritical && r.DaysUntilExpiry <= 2 {
			count++
			sources[r.FromBranchID] = struct{}{}
		}
	}
	if count <= e.cfg.CriticalCountThreshold {
		return Constraint{}, false
	}

	affected := make([]string, 0, len(sources))
	for id := range sources {
		affected = append(affected, id)
	}
	sort.Strings(affected)

	return Constraint{
		Type: ConstraintTime,
		Description: fmt.Sprintf(
			"%d transferencias críticas vencen en 2 días o menos", count,
		),
		AffectedBranches: affected,
		Severity:         SeverityHigh,
		Recommendation:   "priorizar transferencias inmediatas y activar el protocolo de emergencia",
	}, true
}
