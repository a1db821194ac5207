package repository

import (
	"context"

	"github.com/tu-usuario/retail-pro/internal/domain/entity"
)

// ExpiringProductRepository puerto de consultas read-only sobre lotes próximos
// a vencer (incluye los ya vencidos: DaysUntilExpiry negativo).
type ExpiringProductRepository interface {
	// ListByCompany devuelve los productos cuyos lotes vencen dentro del
	// horizonte, con su valor en riesgo por sucursal.
	ListByCompany(ctx context.Context, companyID string, horizonDays int) ([]entity.ExpiringProduct, error)
}
