package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/retail-pro/internal/domain/entity"
	"github.com/tu-usuario/retail-pro/internal/domain/transfer"
	"github.com/tu-usuario/retail-pro/internal/infrastructure/geo"
)

func branchAt(id string, lat, lon float64) *entity.Branch {
	return &entity.Branch{ID: id, Name: "Sucursal " + id, Latitude: lat, Longitude: lon}
}

// TestDistanceKm_BogotaMedellin la distancia Bogotá–Medellín en línea recta es
// ~216 km; se acepta un margen del 2%.
func TestDistanceKm_BogotaMedellin(t *testing.T) {
	provider := geo.NewBranchDistanceProvider([]*entity.Branch{
		branchAt("BOG", 4.7110, -74.0721),
		branchAt("MED", 6.2442, -75.5812),
	})

	km, err := provider.DistanceKm("BOG", "MED")
	require.NoError(t, err)
	assert.InDelta(t, 216, km, 216*0.02)
}

// TestDistanceKm_Simetria d(a,b) == d(b,a) y d(a,a) == 0.
func TestDistanceKm_Simetria(t *testing.T) {
	provider := geo.NewBranchDistanceProvider([]*entity.Branch{
		branchAt("B01", 4.6097, -74.0817),
		branchAt("B02", 4.6767, -74.0483),
	})

	ab, err := provider.DistanceKm("B01", "B02")
	require.NoError(t, err)
	ba, err := provider.DistanceKm("B02", "B01")
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
	assert.Greater(t, ab, 0.0)

	self, err := provider.DistanceKm("B01", "B01")
	require.NoError(t, err)
	assert.Zero(t, self)
}

// TestDistanceKm_SucursalSinGeocodificar una sucursal en (0,0) no se indexa y
// sus pares reportan distancia no disponible.
func TestDistanceKm_SucursalSinGeocodificar(t *testing.T) {
	provider := geo.NewBranchDistanceProvider([]*entity.Branch{
		branchAt("B01", 4.6097, -74.0817),
		branchAt("B02", 0, 0),
	})

	_, err := provider.DistanceKm("B01", "B02")
	require.Error(t, err)
	assert.ErrorIs(t, err, transfer.ErrDistanceUnavailable)
}
