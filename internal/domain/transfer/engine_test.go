package transfer_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/retail-pro/internal/domain/entity"
	"github.com/tu-usuario/retail-pro/internal/domain/transfer"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

func branchFixture(id, name string, capacity int, util float64) entity.BranchStatus {
	return entity.BranchStatus{
		BranchID:          id,
		Name:              name,
		Code:              id,
		TotalProducts:     120,
		TotalStockValue:   decimal.NewFromInt(80_000_000),
		AvailableCapacity: capacity,
		UtilizationRate:   util,
		WasteValue:        decimal.NewFromInt(2_000_000),
		LastSyncAt:        testNow,
	}
}

func productFixture(id, branchID string, stock, days int, valueAtRisk int64) entity.ExpiringProduct {
	return entity.ExpiringProduct{
		ProductID:       id,
		Name:            "Producto " + id,
		Barcode:         "770" + id,
		CategoryName:    "Lácteos",
		BranchID:        branchID,
		CurrentStock:    stock,
		DaysUntilExpiry: days,
		ValueAtRisk:     decimal.NewFromInt(valueAtRisk),
		ExpiryDate:      testNow.AddDate(0, 0, days),
	}
}

func newTestEngine(t *testing.T, distances transfer.DistanceProvider) *transfer.Engine {
	t.Helper()
	eng, err := transfer.NewEngine(transfer.DefaultConfig(), distances)
	require.NoError(t, err, "la configuración por defecto debe ser válida")
	return eng
}

// ──────────────────────────────────────────────────────────────────────────────
// Modelo económico
// ──────────────────────────────────────────────────────────────────────────────

// TestOptimize_ValoracionExacta valida el modelo económico completo contra un
// caso calculado a mano: producto que vence en 2 días, $250.000 en riesgo,
// 45 unidades, destino único a 20 km con utilización 0.67.
func TestOptimize_ValoracionExacta(t *testing.T) {
	source := branchFixture("B01", "Chapinero", 50, 0.89)
	target := branchFixture("B02", "Usaquén", 500, 0.67)
	product := productFixture("P100", "B01", 45, 2, 250_000)

	distances := transfer.NewStaticDistanceTable().Set("B01", "B02", 20)
	eng := newTestEngine(t, distances)

	result, err := eng.Optimize(
		[]entity.ExpiringProduct{product},
		[]entity.BranchStatus{source, target},
		testNow,
	)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1, "debe emitirse exactamente una recomendación")

	rec := result.Recommendations[0]
	assert.Equal(t, "B01", rec.FromBranchID)
	assert.Equal(t, "B02", rec.ToBranchID)

	// Cantidad: min(floor(45*0.8), floor(500*0.1)) = min(36, 50) = 36
	assert.Equal(t, 36, rec.RecommendedQuantity)

	// Ahorro: 250.000 * 0.9 (vence en ≤3 días) = 225.000
	assert.True(t, rec.EstimatedSaving.Equal(decimal.NewFromInt(225_000)),
		"ahorro estimado: esperaba 225000, obtuve %s", rec.EstimatedSaving)

	// Costo: 50.000 + 20*2.000 + 36*1.000 = 126.000
	assert.True(t, rec.TransferCost.Equal(decimal.NewFromInt(126_000)),
		"costo de transferencia: esperaba 126000, obtuve %s", rec.TransferCost)

	// Beneficio neto: 225.000 - 126.000 = 99.000
	assert.True(t, rec.NetBenefit.Equal(decimal.NewFromInt(99_000)))

	// Urgencia: tiempo 40 (≤3 días) + valor 20 (>100.000) + stock 10 (≤50) = 70
	assert.Equal(t, 70, rec.UrgencyScore)

	// Con urgencia 70 y beneficio 99.000 la prioridad cae en el corte High.
	assert.Equal(t, transfer.PriorityHigh, rec.Priority)
	assert.Equal(t, transfer.ReasonExpiryPrevention, rec.Reason)

	// Tiempo estimado: 1 + ceil(20/30) + 1 = 3 horas
	assert.Equal(t, 3, rec.EstimatedTransferTimeHours)

	// Vence en ≤5 días: transferencia inmediata; válida por max(1, 2/2) = 1 día.
	assert.True(t, rec.RecommendedTransferDate.Equal(testNow))
	assert.True(t, rec.ValidUntil.Equal(testNow.AddDate(0, 0, 1)))
}

// TestOptimize_PrioridadCritica un producto que vence mañana con valor alto en
// riesgo debe clasificar como crítico (urgencia 50+30+10 ≥ 80).
func TestOptimize_PrioridadCritica(t *testing.T) {
	source := branchFixture("B01", "Chapinero", 50, 0.75)
	target := branchFixture("B02", "Usaquén", 900, 0.50)
	product := productFixture("P200", "B01", 40, 1, 1_500_000)

	distances := transfer.NewStaticDistanceTable().Set("B01", "B02", 12)
	eng := newTestEngine(t, distances)

	result, err := eng.Optimize(
		[]entity.ExpiringProduct{product},
		[]entity.BranchStatus{source, target},
		testNow,
	)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, transfer.PriorityCritical, result.Recommendations[0].Priority)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariantes sobre corridas completas
// ──────────────────────────────────────────────────────────────────────────────

func multiBranchFixture() ([]entity.ExpiringProduct, []entity.BranchStatus, transfer.DistanceProvider) {
	branches := []entity.BranchStatus{
		branchFixture("B01", "Chapinero", 80, 0.85),
		branchFixture("B02", "Usaquén", 600, 0.55),
		branchFixture("B03", "Suba", 400, 0.70),
		branchFixture("B04", "Kennedy", 300, 0.40),
	}
	products := []entity.ExpiringProduct{
		productFixture("P01", "B01", 120, 1, 1_800_000),
		productFixture("P02", "B01", 60, 3, 600_000),
		productFixture("P03", "B02", 45, 6, 250_000),
		productFixture("P04", "B03", 200, 10, 120_000),
		productFixture("P05", "B04", 30, 2, 90_000),
	}
	distances := transfer.NewStaticDistanceTable().
		Set("B01", "B02", 8).
		Set("B01", "B03", 15).
		Set("B01", "B04", 22).
		Set("B02", "B03", 11).
		Set("B02", "B04", 27).
		Set("B03", "B04", 18)
	return products, branches, distances
}

// TestOptimize_Invariantes valida las propiedades que toda corrida debe cumplir:
// beneficio neto positivo, topes de cantidad, factibilidad en rango y orden
// prioridad → beneficio.
func TestOptimize_Invariantes(t *testing.T) {
	products, branches, distances := multiBranchFixture()
	eng := newTestEngine(t, distances)

	result, err := eng.Optimize(products, branches, testNow)
	require.NoError(t, err)
	require.NotEmpty(t, result.Recommendations)

	statusByID := make(map[string]entity.BranchStatus)
	for _, b := range branches {
		statusByID[b.BranchID] = b
	}
	stockByProduct := make(map[string]int)
	for _, p := range products {
		stockByProduct[p.ProductID] = p.CurrentStock
	}

	for _, rec := range result.Recommendations {
		assert.True(t, rec.NetBenefit.IsPositive(),
			"toda recomendación emitida debe tener beneficio neto positivo: %s", rec.ID)

		maxFromStock := int(float64(stockByProduct[rec.ProductID]) * 0.8)
		maxFromCapacity := int(float64(statusByID[rec.ToBranchID].AvailableCapacity) * 0.1)
		assert.LessOrEqual(t, rec.RecommendedQuantity, maxFromStock)
		assert.LessOrEqual(t, rec.RecommendedQuantity, maxFromCapacity)

		assert.GreaterOrEqual(t, rec.FeasibilityScore, 0)
		assert.LessOrEqual(t, rec.FeasibilityScore, 100)
		assert.GreaterOrEqual(t, rec.UrgencyScore, 0)
		assert.LessOrEqual(t, rec.UrgencyScore, 100)
	}

	// Orden: prioridad no creciente; dentro de la misma prioridad, beneficio
	// neto no creciente.
	for i := 1; i < len(result.Recommendations); i++ {
		prev, cur := result.Recommendations[i-1], result.Recommendations[i]
		assert.GreaterOrEqual(t, int(prev.Priority), int(cur.Priority),
			"la prioridad no puede crecer a lo largo de la lista")
		if prev.Priority == cur.Priority {
			assert.False(t, cur.NetBenefit.GreaterThan(prev.NetBenefit),
				"dentro de la misma prioridad el beneficio neto no puede crecer")
		}
	}

	// Totales = suma de las recomendaciones.
	var saving, cost decimal.Decimal
	for _, rec := range result.Recommendations {
		saving = saving.Add(rec.EstimatedSaving)
		cost = cost.Add(rec.TransferCost)
	}
	assert.True(t, result.TotalPotentialSaving.Equal(saving))
	assert.True(t, result.TotalTransferCost.Equal(cost))
	assert.True(t, result.NetBenefit.Equal(saving.Sub(cost)))
	assert.Equal(t, len(result.Recommendations), result.TotalRecommendations)
}

// TestOptimize_Idempotente dos corridas con los mismos snapshots y el mismo
// now producen resultados idénticos.
func TestOptimize_Idempotente(t *testing.T) {
	products, branches, distances := multiBranchFixture()
	eng := newTestEngine(t, distances)

	r1, err := eng.Optimize(products, branches, testNow)
	require.NoError(t, err)
	r2, err := eng.Optimize(products, branches, testNow)
	require.NoError(t, err)

	assert.Equal(t, r1, r2, "la optimización debe ser determinista con now fijo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Degradación controlada
// ──────────────────────────────────────────────────────────────────────────────

// TestOptimize_SinDestinosElegibles si todas las demás sucursales están al 90%
// o más, el producto no genera recomendación y la corrida no falla.
func TestOptimize_SinDestinosElegibles(t *testing.T) {
	source := branchFixture("B01", "Chapinero", 50, 0.85)
	full1 := branchFixture("B02", "Usaquén", 200, 0.90)
	full2 := branchFixture("B03", "Suba", 100, 0.97)
	product := productFixture("P100", "B01", 45, 2, 250_000)

	distances := transfer.NewStaticDistanceTable().
		Set("B01", "B02", 20).
		Set("B01", "B03", 10)
	eng := newTestEngine(t, distances)

	result, err := eng.Optimize(
		[]entity.ExpiringProduct{product},
		[]entity.BranchStatus{source, full1, full2},
		testNow,
	)
	require.NoError(t, err, "quedarse sin candidatos no es un error")
	assert.Empty(t, result.Recommendations)
	assert.True(t, result.NetBenefit.IsZero())
}

// TestOptimize_OrigenFueraDelSnapshot un producto cuya sucursal origen no está
// en el snapshot se omite sin abortar el lote.
func TestOptimize_OrigenFueraDelSnapshot(t *testing.T) {
	target := branchFixture("B02", "Usaquén", 500, 0.50)
	huerfano := productFixture("P100", "B99", 45, 2, 250_000)

	eng := newTestEngine(t, transfer.NewStaticDistanceTable())

	result, err := eng.Optimize(
		[]entity.ExpiringProduct{huerfano},
		[]entity.BranchStatus{target},
		testNow,
	)
	require.NoError(t, err)
	assert.Empty(t, result.Recommendations)
}

// TestOptimize_DistanciaDesconocidaDegradaCandidato si falta la distancia hacia
// un destino, solo ese candidato se excluye; el resto de la corrida continúa.
func TestOptimize_DistanciaDesconocidaDegradaCandidato(t *testing.T) {
	source := branchFixture("B01", "Chapinero", 50, 0.85)
	conocido := branchFixture("B02", "Usaquén", 500, 0.50)
	sinRuta := branchFixture("B03", "Suba", 800, 0.30)
	product := productFixture("P100", "B01", 45, 2, 250_000)

	// B03 sería mejor candidato, pero no hay distancia registrada hacia él.
	distances := transfer.NewStaticDistanceTable().Set("B01", "B02", 20)
	eng := newTestEngine(t, distances)

	result, err := eng.Optimize(
		[]entity.ExpiringProduct{product},
		[]entity.BranchStatus{source, conocido, sinRuta},
		testNow,
	)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "B02", result.Recommendations[0].ToBranchID,
		"el candidato sin distancia debe excluirse sin abortar la corrida")
}

// TestOptimize_DescartaNoRentables beneficio neto ≤ 0 descarta el candidato en
// silencio.
func TestOptimize_DescartaNoRentables(t *testing.T) {
	source := branchFixture("B01", "Chapinero", 50, 0.85)
	target := branchFixture("B02", "Usaquén", 500, 0.50)
	// Valor en riesgo bajo: el ahorro nunca cubre el costo base.
	product := productFixture("P100", "B01", 45, 2, 40_000)

	distances := transfer.NewStaticDistanceTable().Set("B01", "B02", 20)
	eng := newTestEngine(t, distances)

	result, err := eng.Optimize(
		[]entity.ExpiringProduct{product},
		[]entity.BranchStatus{source, target},
		testNow,
	)
	require.NoError(t, err)
	assert.Empty(t, result.Recommendations)
}

// ──────────────────────────────────────────────────────────────────────────────
// Candidatos alternativos
// ──────────────────────────────────────────────────────────────────────────────

// TestOptimize_OpcionesAlternativas con varios destinos elegibles, los
// candidatos no elegidos quedan como alternativas de la recomendación.
func TestOptimize_OpcionesAlternativas(t *testing.T) {
	products, branches, distances := multiBranchFixture()
	eng := newTestEngine(t, distances)

	result, err := eng.Optimize(products[:1], branches, testNow)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1)

	rec := result.Recommendations[0]
	assert.NotEmpty(t, rec.AlternativeOptions, "con 3 destinos elegibles debe haber alternativas")
	for _, alt := range rec.AlternativeOptions {
		assert.NotEqual(t, rec.ToBranchID, alt.BranchID)
		assert.NotEqual(t, rec.FromBranchID, alt.BranchID)
	}
}
