package transfer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/retail-pro/internal/domain/transfer"
)

// TestStaticDistanceTable_Simetria d(a,b) == d(b,a) sin importar el orden de registro.
func TestStaticDistanceTable_Simetria(t *testing.T) {
	table := transfer.NewStaticDistanceTable().
		Set("B01", "B02", 12.5).
		Set("B03", "B01", 40)

	ab, err := table.DistanceKm("B01", "B02")
	require.NoError(t, err)
	ba, err := table.DistanceKm("B02", "B01")
	require.NoError(t, err)
	assert.Equal(t, ab, ba, "la distancia debe ser simétrica")

	ca, err := table.DistanceKm("B01", "B03")
	require.NoError(t, err)
	assert.Equal(t, 40.0, ca)
}

// TestStaticDistanceTable_MismaSucursal d(a,a) == 0 aunque el par no esté registrado.
func TestStaticDistanceTable_MismaSucursal(t *testing.T) {
	table := transfer.NewStaticDistanceTable()
	km, err := table.DistanceKm("B07", "B07")
	require.NoError(t, err)
	assert.Zero(t, km)
}

// TestStaticDistanceTable_ParDesconocido un par sin registrar retorna
// ErrDistanceUnavailable para que el llamador excluya el candidato.
func TestStaticDistanceTable_ParDesconocido(t *testing.T) {
	table := transfer.NewStaticDistanceTable().Set("B01", "B02", 10)

	_, err := table.DistanceKm("B01", "B99")
	require.Error(t, err)
	assert.ErrorIs(t, err, transfer.ErrDistanceUnavailable)
}
