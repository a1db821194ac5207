// Package geo implementa el DistanceProvider de producción: distancia de
// gran círculo (haversine) sobre las coordenadas del registro de sucursales.
package geo

import (
	"fmt"
	"math"

	"github.com/tu-usuario/retail-pro/internal/domain/entity"
	"github.com/tu-usuario/retail-pro/internal/domain/transfer"
)

const earthRadiusKm = 6371.0

type coordinate struct {
	lat, lon float64
}

// BranchDistanceProvider resuelve distancias entre sucursales por coordenadas.
// Se construye una vez por corrida con el snapshot del registro; no consulta
// la base de datos durante la optimización.
type BranchDistanceProvider struct {
	coords map[string]coordinate
}

var _ transfer.DistanceProvider = (*BranchDistanceProvider)(nil)

// NewBranchDistanceProvider indexa las coordenadas de las sucursales.
// Sucursales sin geocodificar (0,0) no se indexan: sus pares reportarán
// distancia no disponible y el motor las excluirá como candidatas.
func NewBranchDistanceProvider(branches []*entity.Branch) *BranchDistanceProvider {
	coords := make(map[string]coordinate, len(branches))
	for _, b := range branches {
		if b.Latitude == 0 && b.Longitude == 0 {
			continue
		}
		coords[b.ID] = coordinate{lat: b.Latitude, lon: b.Longitude}
	}
	return &BranchDistanceProvider{coords: coords}
}

// DistanceKm implementa transfer.DistanceProvider.
func (p *BranchDistanceProvider) DistanceKm(a, b string) (float64, error) {
	if a == b {
		return 0, nil
	}
	ca, ok := p.coords[a]
	if !ok {
		return 0, fmt.Errorf("sucursal %s sin coordenadas: %w", a, transfer.ErrDistanceUnavailable)
	}
	cb, ok := p.coords[b]
	if !ok {
		return 0, fmt.Errorf("sucursal %s sin coordenadas: %w", b, transfer.ErrDistanceUnavailable)
	}
	return haversineKm(ca, cb), nil
}

// haversineKm distancia de gran círculo entre dos coordenadas.
func haversineKm(a, b coordinate) float64 {
	lat1 := a.lat * math.Pi / 180
	lat2 := b.lat * math.Pi / 180
	dLat := (b.lat - a.lat) * math.Pi / 180
	dLon := (b.lon - a.lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
