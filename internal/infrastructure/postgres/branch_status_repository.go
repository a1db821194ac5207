package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/retail-pro/internal/domain/entity"
	"github.com/tu-usuario/retail-pro/internal/domain/repository"
)

var _ repository.BranchStatusRepository = (*BranchStatusRepo)(nil)

// BranchStatusRepo materializa el snapshot de estado de inventario por
// sucursal. Consultas read-only sobre branches y stock_lots.
type BranchStatusRepo struct {
	pool *pgxpool.Pool
}

// NewBranchStatusRepository construye el adaptador de snapshots de sucursal.
func NewBranchStatusRepository(pool *pgxpool.Pool) *BranchStatusRepo {
	return &BranchStatusRepo{pool: pool}
}

// ListByCompany agrega por sucursal: valor de stock, conteos de vencimiento
// (dentro del horizonte), capacidad disponible, utilización y merma acumulada.
// La utilización se acota a [0,1] en SQL para snapshots con sobrecupo.
func (r *BranchStatusRepo) ListByCompany(
	ctx context.Context,
	companyID string,
	horizonDays int,
) ([]entity.BranchStatus, error) {
	const query = `
	SELECT
	    b.id,
	    b.name,
	    b.code,
	    COUNT(DISTINCT sl.product_id)                                            AS total_products,
	    COALESCE(SUM(sl.quantity * p.cost), 0)                                   AS total_stock_value,
	    COUNT(*) FILTER (
	        WHERE sl.expiry_date >= CURRENT_DATE
	          AND sl.expiry_date <  CURRENT_DATE + ($2 || ' days')::INTERVAL
	    )                                                                        AS expiring_count,
	    COUNT(*) FILTER (WHERE sl.expiry_date < CURRENT_DATE)                    AS expired_count,
	    COUNT(*) FILTER (
	        WHERE sl.expiry_date >= CURRENT_DATE
	          AND sl.expiry_date <  CURRENT_DATE + INTERVAL '3 days'
	    )                                                                        AS critical_count,
	    GREATEST(b.max_capacity - COALESCE(SUM(sl.quantity), 0), 0)::INT         AS available_capacity,
	    LEAST(COALESCE(SUM(sl.quantity), 0)::FLOAT / NULLIF(b.max_capacity, 0), 1.0) AS utilization_rate,
	    COALESCE(AVG(sl.expiry_date - CURRENT_DATE), 0)::FLOAT                   AS average_expiry_days,
	    COALESCE(SUM(sl.quantity * p.cost) FILTER (WHERE sl.expiry_date < CURRENT_DATE), 0) AS waste_value,
	    COALESCE(MAX(sl.updated_at), now())                                      AS last_sync_at
	FROM branches b
	LEFT JOIN stock_lots sl ON sl.branch_id = b.id
	LEFT JOIN products  p   ON p.id = sl.product_id
	WHERE b.company_id = $1
	GROUP BY b.id, b.name, b.code, b.max_capacity
	ORDER BY b.code`

	rows, err := r.pool.Query(ctx, query, companyID, horizonDays)
	if err != nil {
		return nil, fmt.Errorf("branchStatus.ListByCompany: %w", err)
	}
	defer rows.Close()

	var statuses []entity.BranchStatus
	for rows.Next() {
		var s entity.BranchStatus
		var utilization *float64
		if err := rows.Scan(
			&s.BranchID,
			&s.Name,
			&s.Code,
			&s.TotalProducts,
			&s.TotalStockValue,
			&s.ExpiringCount,
			&s.ExpiredCount,
			&s.CriticalCount,
			&s.AvailableCapacity,
			&utilization,
			&s.AverageExpiryDays,
			&s.WasteValue,
			&s.LastSyncAt,
		); err != nil {
			return nil, fmt.Errorf("branchStatus.ListByCompany scan: %w", err)
		}
		if utilization != nil {
			s.UtilizationRate = *utilization
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}
