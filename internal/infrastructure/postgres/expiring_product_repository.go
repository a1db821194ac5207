package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/retail-pro/internal/domain/entity"
	"github.com/tu-usuario/retail-pro/internal/domain/repository"
)

var _ repository.ExpiringProductRepository = (*ExpiringProductRepo)(nil)

// ExpiringProductRepo consulta read-only de lotes próximos a vencer.
type ExpiringProductRepo struct {
	pool *pgxpool.Pool
}

// NewExpiringProductRepository construye el adaptador de productos por vencer.
func NewExpiringProductRepository(pool *pgxpool.Pool) *ExpiringProductRepo {
	return &ExpiringProductRepo{pool: pool}
}

// ListByCompany devuelve una fila por (producto, sucursal) con el stock que
// vence dentro del horizonte, el vencimiento más cercano y el valor en riesgo.
// Incluye lotes ya vencidos (days_until_expiry negativo): el motor decide.
func (r *ExpiringProductRepo) ListByCompany(
	ctx context.Context,
	companyID string,
	horizonDays int,
) ([]entity.ExpiringProduct, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    p.barcode,
	    COALESCE(c.name, 'Sin categoría')                       AS category_name,
	    sl.branch_id,
	    SUM(sl.quantity)::INT                                   AS current_stock,
	    MIN(sl.expiry_date)                                     AS expiry_date,
	    (MIN(sl.expiry_date) - CURRENT_DATE)                    AS days_until_expiry,
	    COALESCE(SUM(sl.quantity * p.cost), 0)                  AS value_at_risk
	FROM stock_lots sl
	JOIN products p        ON p.id = sl.product_id
	LEFT JOIN categories c ON c.id = p.category_id
	WHERE p.company_id = $1
	  AND sl.quantity > 0
	  AND sl.expiry_date < CURRENT_DATE + ($2 || ' days')::INTERVAL
	GROUP BY p.id, p.name, p.barcode, c.name, sl.branch_id
	ORDER BY days_until_expiry, p.id`

	rows, err := r.pool.Query(ctx, query, companyID, horizonDays)
	if err != nil {
		return nil, fmt.Errorf("expiringProduct.ListByCompany: %w", err)
	}
	defer rows.Close()

	var products []entity.ExpiringProduct
	for rows.Next() {
		var p entity.ExpiringProduct
		if err := rows.Scan(
			&p.ProductID,
			&p.Name,
			&p.Barcode,
			&p.CategoryName,
			&p.BranchID,
			&p.CurrentStock,
			&p.ExpiryDate,
			&p.DaysUntilExpiry,
			&p.ValueAtRisk,
		); err != nil {
			return nil, fmt.Errorf("expiringProduct.ListByCompany scan: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
