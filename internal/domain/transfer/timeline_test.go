package transfer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildTimeline_BucketsPorDia las recomendaciones del mismo día calendario
// caen en el mismo bucket aunque tengan horas distintas.
func TestBuildTimeline_BucketsPorDia(t *testing.T) {
	hoyTarde := baseDate.Add(7 * time.Hour) // misma fecha, otra hora
	manana := baseDate.AddDate(0, 0, 1)

	recs := []TransferRecommendation{
		recFixture("P01", "B01", "B02", 30, 200_000, PriorityCritical, baseDate),
		recFixture("P02", "B01", "B03", 20, 100_000, PriorityLow, hoyTarde),
		recFixture("P03", "B02", "B03", 15, 50_000, PriorityMedium, manana),
	}

	timeline := buildTimeline(recs)
	require.Len(t, timeline, 2)

	hoy := timeline[0]
	assert.True(t, hoy.Date.Equal(truncateToDay(baseDate)))
	assert.Equal(t, 2, hoy.TransferCount)
	assert.Equal(t, 50, hoy.TotalUnits)
	assert.True(t, hoy.TotalValue.Equal(decimal.NewFromInt(300_000)))
	assert.Equal(t, PriorityCritical, hoy.UrgencyLevel,
		"el bucket reporta la prioridad más alta del día")

	assert.True(t, timeline[1].Date.After(timeline[0].Date),
		"los buckets deben salir en orden cronológico")
	assert.Equal(t, PriorityMedium, timeline[1].UrgencyLevel)
}

// TestBuildTimeline_SinRecomendaciones lista vacía produce cronograma vacío.
func TestBuildTimeline_SinRecomendaciones(t *testing.T) {
	assert.Empty(t, buildTimeline(nil))
}
