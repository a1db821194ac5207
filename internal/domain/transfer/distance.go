package transfer

import "fmt"

// DistanceProvider resuelve la distancia en kilómetros entre dos sucursales.
// Contrato: simétrica (d(a,b) == d(b,a)), no negativa y d(a,a) == 0.
// Un par desconocido retorna un error que envuelve ErrDistanceUnavailable;
// el motor lo trata como "excluir este candidato", no aborta la corrida.
type DistanceProvider interface {
	DistanceKm(a, b string) (float64, error)
}

// StaticDistanceTable DistanceProvider de tabla fija, pensado para tests y
// entornos sin registro geográfico de sucursales.
type StaticDistanceTable struct {
	pairs map[string]float64
}

// NewStaticDistanceTable construye una tabla vacía.
func NewStaticDistanceTable() *StaticDistanceTable {
	return &StaticDistanceTable{pairs: make(map[string]float64)}
}

// Set registra la distancia de un par (en ambos sentidos).
func (t *StaticDistanceTable) Set(a, b string, km float64) *StaticDistanceTable {
	t.pairs[pairKey(a, b)] = km
	return t
}

// DistanceKm implementa DistanceProvider.
func (t *StaticDistanceTable) DistanceKm(a, b string) (float64, error) {
	if a == b {
		return 0, nil
	}
	if km, ok := t.pairs[pairKey(a, b)]; ok {
		return km, nil
	}
	return 0, fmt.Errorf("par %s-%s: %w", a, b, ErrDistanceUnavailable)
}

// pairKey clave canónica del par: los ids ordenados garantizan la simetría.
func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}
