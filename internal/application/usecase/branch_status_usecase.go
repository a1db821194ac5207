package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/retail-pro/internal/application/dto"
	"github.com/tu-usuario/retail-pro/internal/domain/entity"
	"github.com/tu-usuario/retail-pro/internal/domain/repository"
	"github.com/tu-usuario/retail-pro/pkg/logger"
)

// BranchStatusUseCase expone el snapshot de estado por sucursal que alimenta
// el dashboard de back-office.
type BranchStatusUseCase struct {
	statusRepo repository.BranchStatusRepository
	log        *logger.Logger
}

func NewBranchStatusUseCase(statusRepo repository.BranchStatusRepository, log *logger.Logger) *BranchStatusUseCase {
	return &BranchStatusUseCase{
		statusRepo: statusRepo,
		log:        log.Component("branch_status"),
	}
}

// ListStatuses devuelve el estado de todas las sucursales de la empresa.
// El horizonte controla qué lotes cuentan como "próximos a vencer".
func (uc *BranchStatusUseCase) ListStatuses(ctx context.Context, companyID string, horizonDays int) (*dto.BranchStatusListResponse, error) {
	if horizonDays <= 0 {
		horizonDays = defaultHorizonDays
	}
	if horizonDays > maxHorizonDays {
		horizonDays = maxHorizonDays
	}

	statuses, err := uc.statusRepo.ListByCompany(ctx, companyID, horizonDays)
	if err != nil {
		return nil, fmt.Errorf("estado de sucursales: %w", err)
	}

	items := make([]dto.BranchStatusDTO, 0, len(statuses))
	for _, s := range statuses {
		items = append(items, toBranchStatusDTO(s))
	}

	return &dto.BranchStatusListResponse{Items: items, HorizonDays: horizonDays}, nil
}

func toBranchStatusDTO(s entity.BranchStatus) dto.BranchStatusDTO {
	return dto.BranchStatusDTO{
		BranchID:          s.BranchID,
		Name:              s.Name,
		Code:              s.Code,
		TotalProducts:     s.TotalProducts,
		TotalStockValue:   s.TotalStockValue,
		ExpiringCount:     s.ExpiringCount,
		ExpiredCount:      s.ExpiredCount,
		CriticalCount:     s.CriticalCount,
		AvailableCapacity: s.AvailableCapacity,
		UtilizationRate:   s.UtilizationRate,
		AverageExpiryDays: s.AverageExpiryDays,
		WasteValue:        s.WasteValue,
		LastSyncAt:        s.LastSyncAt,
	}
}
