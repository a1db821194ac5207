package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constraintsEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := NewEngine(DefaultConfig(), NewStaticDistanceTable())
	require.NoError(t, err)
	return eng
}

// TestCapacityConstraints_DestinoSobrecargado tres recomendaciones hacia B05
// que suman 120 unidades (umbral 100) generan una restricción de capacidad
// que nombra a esa sucursal.
func TestCapacityConstraints_DestinoSobrecargado(t *testing.T) {
	eng := constraintsEngine(t)

	recs := []TransferRecommendation{
		recFixture("P01", "B01", "B05", 50, 100_000, PriorityHigh, baseDate),
		recFixture("P02", "B02", "B05", 40, 100_000, PriorityMedium, baseDate),
		recFixture("P03", "B03", "B05", 30, 100_000, PriorityLow, baseDate),
		recFixture("P04", "B01", "B02", 60, 100_000, PriorityLow, baseDate),
	}

	constraints := eng.analyzeConstraints(recs)
	require.Len(t, constraints, 1)

	c := constraints[0]
	assert.Equal(t, ConstraintCapacity, c.Type)
	assert.Equal(t, SeverityMedium, c.Severity)
	assert.Equal(t, []string{"B05"}, c.AffectedBranches)
	assert.Contains(t, c.Description, "120 unidades")
	assert.Contains(t, c.Recommendation, "varios días")
}

// TestTimeConstraint_CriticasInminentes más de 5 recomendaciones críticas con
// vencimiento en ≤2 días generan una restricción de tiempo de severidad alta
// con las sucursales origen afectadas.
func TestTimeConstraint_CriticasInminentes(t *testing.T) {
	eng := constraintsEngine(t)

	var recs []TransferRecommendation
	for i := 0; i < 6; i++ {
		r := recFixture("P0"+string(rune('1'+i)), "B01", "B09", 5, 100_000, PriorityCritical, baseDate)
		r.DaysUntilExpiry = 1
		recs = append(recs, r)
	}
	// Una crítica desde otra sucursal, también inminente.
	urgente := recFixture("P99", "B02", "B09", 5, 100_000, PriorityCritical, baseDate)
	urgente.DaysUntilExpiry = 2
	recs = append(recs, urgente)

	constraints := eng.analyzeConstraints(recs)

	var timeConstraint *Constraint
	for i := range constraints {
		if constraints[i].Type == ConstraintTime {
			timeConstraint = &constraints[i]
		}
	}
	require.NotNil(t, timeConstraint, "debe reportarse la restricción de tiempo")
	assert.Equal(t, SeverityHigh, timeConstraint.Severity)
	assert.Equal(t, []string{"B01", "B02"}, timeConstraint.AffectedBranches)
}

// TestTimeConstraint_BajoElUmbral cinco críticas inminentes o menos no generan
// restricción de tiempo.
func TestTimeConstraint_BajoElUmbral(t *testing.T) {
	eng := constraintsEngine(t)

	var recs []TransferRecommendation
	for i := 0; i < 5; i++ {
		r := recFixture("P0"+string(rune('1'+i)), "B01", "B02", 5, 100_000, PriorityCritical, baseDate)
		r.DaysUntilExpiry = 1
		recs = append(recs, r)
	}

	for _, c := range eng.analyzeConstraints(recs) {
		assert.NotEqual(t, ConstraintTime, c.Type)
	}
}

// TestCapacityConstraints_ExactoEnElUmbral exactamente 100 unidades no dispara
// la restricción (la condición es estrictamente mayor).
func TestCapacityConstraints_ExactoEnElUmbral(t *testing.T) {
	eng := constraintsEngine(t)

	recs := []TransferRecommendation{
		recFixture("P01", "B01", "B05", 100, 100_000, PriorityLow, baseDate),
	}
	assert.Empty(t, eng.analyzeConstraints(recs))
}
