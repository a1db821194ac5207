package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-pro/internal/application/dto"
	"github.com/tu-usuario/retail-pro/internal/application/usecase"
	"github.com/tu-usuario/retail-pro/internal/domain/transfer"
)

// TransferHandler maneja los endpoints del módulo de transferencias.
type TransferHandler struct {
	uc *usecase.TransferOptimizationUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *usecase.TransferOptimizationUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// GetOptimization corre la optimización de transferencias para la empresa del
// token y devuelve el plan completo.
// GET /api/transfers/optimization?horizon_days=30
//
// Respuesta: OptimizationResultDTO (recomendaciones valoradas, rutas
// consolidadas, cronograma diario y restricciones agregadas).
// horizon_days: default 30, máximo 90.
func (h *TransferHandler) GetOptimization(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	var req dto.OptimizationRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_QUERY", Message: "horizon_days debe ser un entero",
		})
	}

	result, err := h.uc.RunOptimization(c.Context(), companyID, req)
	if err != nil {
		return transferError(c, err)
	}

	return c.JSON(result)
}

// GetOptimizationPDF corre la optimización y devuelve el plan como PDF para
// el equipo de logística.
// GET /api/transfers/optimization/pdf?horizon_days=30
func (h *TransferHandler) GetOptimizationPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	var req dto.OptimizationRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_QUERY", Message: "horizon_days debe ser un entero",
		})
	}

	pdf, err := h.uc.GeneratePlanPDF(c.Context(), companyID, req)
	if err != nil {
		return transferError(c, err)
	}

	filename := fmt.Sprintf("plan-transferencias-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// transferError mapea los errores del motor a códigos HTTP.
func transferError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, transfer.ErrInvalidConfig):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_CONFIG", Message: err.Error(),
		})
	case errors.Is(err, transfer.ErrOptimization):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "OPTIMIZATION_FAILED", Message: "la corrida de optimización falló; no se emitió un plan parcial",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
