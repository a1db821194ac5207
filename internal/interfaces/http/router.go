package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TransferUC     *usecase.TransferOptimizationUseCase
	BranchStatusUC *usecase.BranchStatusUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
//
// Todas las rutas de negocio exigen Bearer Token. La optimización queda
// restringida a admin y logística; el estado de sucursales lo pueden
// consultar también los analistas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Transferencias
	transfers := api.Group("/transfers", RequireRole("admin", "logistica"))
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Get("/optimization", transferHandler.GetOptimization)
	transfers.Get("/optimization/pdf", transferHandler.GetOptimizationPDF)

	// Sucursales
	branches := api.Group("/branches", RequireRole("admin", "logistica", "analista"))
	branchHandler := NewBranchHandler(deps.BranchStatusUC)
	branches.Get("/status", branchHandler.GetStatuses)
}
