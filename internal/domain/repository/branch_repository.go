package repository

import (
	"context"

	"github.com/tu-usuario/retail-pro/internal/domain/entity"
)

// BranchRepository puerto de lectura del registro maestro de sucursales (DIP).
// El alta y edición de sucursales vive en el sistema administrativo externo;
// esta API solo consume el registro.
type BranchRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Branch, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Branch, error)
}
