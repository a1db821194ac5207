package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-pro/internal/application/dto"
	"github.com/tu-usuario/retail-pro/internal/application/usecase"
)

// BranchHandler maneja los endpoints del módulo de sucursales.
type BranchHandler struct {
	uc *usecase.BranchStatusUseCase
}

// NewBranchHandler construye el handler.
func NewBranchHandler(uc *usecase.BranchStatusUseCase) *BranchHandler {
	return &BranchHandler{uc: uc}
}

// GetStatuses devuelve el estado de inventario de cada sucursal de la empresa.
// GET /api/branches/status?horizon_days=30
//
// Respuesta: BranchStatusListResponse (valor de stock, conteos de vencimiento,
// capacidad disponible y tasa de utilización por sucursal).
func (h *BranchHandler) GetStatuses(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	horizonDays := c.QueryInt("horizon_days", 0)

	statuses, err := h.uc.ListStatuses(c.Context(), companyID, horizonDays)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(statuses)
}
