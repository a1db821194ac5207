package transfer

import (
	"fmt"
	"time"

	"github.com/tu-usuario/retail-pro/internal/domain/entity"
)

// Engine motor de optimización de transferencias. Inmutable después de
// construido; una misma instancia puede atender corridas concurrentes.
type Engine struct {
	cfg       Config
	distances DistanceProvider
}

// NewEngine valida la configuración (fail-fast) y construye el motor.
func NewEngine(cfg Config, distances DistanceProvider) (*Engine, error) {
	if distances == nil {
		return nil, fmt.Errorf("%w: se requiere un DistanceProvider", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, distances: distances}, nil
}

// Optimize corre la optimización completa sobre los snapshots recibidos.
//
// Por cada producto: se ubica su sucursal origen (si falta en el snapshot el
// producto se omite sin error), se rankean destinos y se valora la mejor
// transferencia rentable. Sobre el conjunto resultante se consolidan rutas,
// se arma el cronograma y se detectan restricciones agregadas.
//
// La llamada es una función pura de sus argumentos: con los mismos snapshots,
// el mismo proveedor de distancias y el mismo now, el resultado es idéntico.
// El contrato de error es todo-o-nada; un fallo interno inesperado se reporta
// envolviendo ErrOptimization y no se devuelve resultado parcial.
func (e *Engine) Optimize(
	products []entity.ExpiringProduct,
	branches []entity.BranchStatus,
	now time.Time,
) (result *OptimizationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrOptimization, r)
		}
	}()

	statusByID := make(map[string]entity.BranchStatus, len(branches))
	for _, b := range branches {
		statusByID[b.BranchID] = b
	}

	recs := make([]TransferRecommendation, 0, len(products))
	for _, p := range products {
		source, ok := statusByID[p.BranchID]
		if !ok {
			continue // snapshot sin la sucursal origen: se omite el producto
		}
		candidates := e.scoreCandidates(p, source, branches)
		if len(candidates) == 0 {
			continue
		}
		rec, ok := e.buildRecommendation(p, source, candidates, now)
		if !ok {
			continue
		}
		recs = append(recs, rec)
	}

	sortRecommendations(recs)

	result = &OptimizationResult{
		TotalRecommendations: len(recs),
		Recommendations:      recs,
		Routes:               consolidateRoutes(recs),
		Timeline:             buildTimeline(recs),
		Constraints:          e.analyzeConstraints(recs),
	}
	for _, r := range recs {
		result.TotalPotentialSaving = result.TotalPotentialSaving.Add(r.EstimatedSaving)
		result.TotalTransferCost = result.TotalTransferCost.Add(r.TransferCost)
	}
	result.NetBenefit = result.TotalPotentialSaving.Sub(result.TotalTransferCost)

	return result, nil
}

// Config devuelve una copia de la configuración activa del motor.
func (e *Engine) Config() Config {
	return e.cfg
}
