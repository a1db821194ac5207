package repository

import (
	"context"

	"github.com/tu-usuario/retail-pro/internal/domain/entity"
)

// BranchStatusRepository puerto de consultas read-only que materializan el
// snapshot de estado de inventario por sucursal para una corrida de
// optimización.
type BranchStatusRepository interface {
	// ListByCompany devuelve el estado agregado de todas las sucursales de la
	// empresa. horizonDays define qué se cuenta como "próximo a vencer".
	ListByCompany(ctx context.Context, companyID string, horizonDays int) ([]entity.BranchStatus, error)
}
