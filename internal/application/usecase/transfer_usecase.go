// Package usecase contiene los casos de uso de la API de back-office.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-pro/internal/application/dto"
	"github.com/tu-usuario/retail-pro/internal/domain/entity"
	"github.com/tu-usuario/retail-pro/internal/domain/repository"
	"github.com/tu-usuario/retail-pro/internal/domain/transfer"
	"github.com/tu-usuario/retail-pro/internal/infrastructure/geo"
	"github.com/tu-usuario/retail-pro/pkg/config"
	"github.com/tu-usuario/retail-pro/pkg/logger"
)

const (
	defaultHorizonDays = 30
	maxHorizonDays     = 90
)

// TransferPlanPDFGenerator puerto de generación del plan de transferencias en PDF.
type TransferPlanPDFGenerator interface {
	GeneratePlanPDF(ctx context.Context, companyName string, result *dto.OptimizationResultDTO) ([]byte, error)
}

// TransferOptimizationUseCase orquesta una corrida de optimización: arma los
// snapshots desde los repositorios, construye el proveedor de distancias con
// el registro de sucursales y delega el cálculo al motor puro.
//
// El motor no hace I/O; toda la adquisición de datos (y su política de
// timeout vía ctx) vive aquí.
type TransferOptimizationUseCase struct {
	branchRepo  repository.BranchRepository
	statusRepo  repository.BranchStatusRepository
	productRepo repository.ExpiringProductRepository
	engineCfg   transfer.Config
	pdfGen      TransferPlanPDFGenerator
	issuerName  string
	log         *logger.Logger
}

// NewTransferOptimizationUseCase construye el caso de uso. Valida la
// configuración económica de una vez (fail-fast): la API no arranca con
// costos sin sentido.
func NewTransferOptimizationUseCase(
	branchRepo repository.BranchRepository,
	statusRepo repository.BranchStatusRepository,
	productRepo repository.ExpiringProductRepository,
	cfg config.TransferConfig,
	pdfGen TransferPlanPDFGenerator,
	issuerName string,
	log *logger.Logger,
) (*TransferOptimizationUseCase, error) {
	engineCfg := transfer.DefaultConfig()
	engineCfg.BaseCost = decimal.NewFromInt(cfg.BaseCost)
	engineCfg.PerKmCost = decimal.NewFromInt(cfg.PerKmCost)
	engineCfg.PerUnitCost = decimal.NewFromInt(cfg.PerUnitCost)
	engineCfg.CapacityThreshold = cfg.CapacityThreshold
	engineCfg.CriticalCountThreshold = cfg.CriticalCountThreshold

	if err := engineCfg.Validate(); err != nil {
		return nil, fmt.Errorf("transfer usecase: %w", err)
	}

	return &TransferOptimizationUseCase{
		branchRepo:  branchRepo,
		statusRepo:  statusRepo,
		productRepo: productRepo,
		engineCfg:   engineCfg,
		pdfGen:      pdfGen,
		issuerName:  issuerName,
		log:         log.Component("transfer_optimization"),
	}, nil
}

// RunOptimization corre la optimización completa para la empresa.
//
// Tres consultas en paralelo (independientes entre sí):
//  1. Registro de sucursales (coordenadas para distancias)
//  2. Snapshot de estado por sucursal
//  3. Productos próximos a vencer dentro del horizonte
func (uc *TransferOptimizationUseCase) RunOptimization(
	ctx context.Context,
	companyID string,
	req dto.OptimizationRequest,
) (*dto.OptimizationResultDTO, error) {
	horizon := req.HorizonDays
	if horizon <= 0 {
		horizon = defaultHorizonDays
	}
	if horizon > maxHorizonDays {
		horizon = maxHorizonDays
	}

	started := time.Now()

	type branchesResult struct {
		branches []*entity.Branch
		err      error
	}
	type statusesResult struct {
		statuses []entity.BranchStatus
		err      error
	}
	type productsResult struct {
		products []entity.ExpiringProduct
		err      error
	}

	branchesCh := make(chan branchesResult, 1)
	statusesCh := make(chan statusesResult, 1)
	productsCh := make(chan productsResult, 1)

	go func() {
		list, err := uc.branchRepo.ListByCompany(ctx, companyID)
		branchesCh <- branchesResult{list, err}
	}()
	go func() {
		list, err := uc.statusRepo.ListByCompany(ctx, companyID, horizon)
		statusesCh <- statusesResult{list, err}
	}()
	go func() {
		list, err := uc.productRepo.ListByCompany(ctx, companyID, horizon)
		productsCh <- productsResult{list, err}
	}()

	branches := <-branchesCh
	statuses := <-statusesCh
	products := <-productsCh

	if branches.err != nil {
		return nil, fmt.Errorf("optimización: registro de sucursales: %w", branches.err)
	}
	if statuses.err != nil {
		return nil, fmt.Errorf("optimización: estado de sucursales: %w", statuses.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("optimización: productos por vencer: %w", products.err)
	}

	engine, err := transfer.NewEngine(uc.engineCfg, geo.NewBranchDistanceProvider(branches.branches))
	if err != nil {
		return nil, fmt.Errorf("optimización: %w", err)
	}

	now := time.Now()
	result, err := engine.Optimize(products.products, statuses.statuses, now)
	if err != nil {
		return nil, fmt.Errorf("optimización: %w", err)
	}

	uc.log.Info().
		Str("company_id", companyID).
		Int("products", len(products.products)).
		Int("branches", len(statuses.statuses)).
		Int("recommendations", result.TotalRecommendations).
		Str("net_benefit", result.NetBenefit.String()).
		Dur("elapsed", time.Since(started)).
		Msg("corrida de optimización completada")

	return toOptimizationResultDTO(result, now, horizon), nil
}

// GeneratePlanPDF corre la optimización y rinde el plan como PDF.
func (uc *TransferOptimizationUseCase) GeneratePlanPDF(
	ctx context.Context,
	companyID string,
	req dto.OptimizationRequest,
) ([]byte, error) {
	result, err := uc.RunOptimization(ctx, companyID, req)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.pdfGen.GeneratePlanPDF(ctx, uc.issuerName, result)
	if err != nil {
		return nil, fmt.Errorf("plan de transferencias PDF: %w", err)
	}
	return pdf, nil
}

// ── Mapeo dominio → DTO ───────────────────────────────────────────────────────

func toOptimizationResultDTO(r *transfer.OptimizationResult, now time.Time, horizon int) *dto.OptimizationResultDTO {
	out := &dto.OptimizationResultDTO{
		RunID:                uuid.New().String(),
		GeneratedAt:          now,
		HorizonDays:          horizon,
		TotalRecommendations: r.TotalRecommendations,
		TotalPotentialSaving: r.TotalPotentialSaving,
		TotalTransferCost:    r.TotalTransferCost,
		NetBenefit:           r.NetBenefit,
		Recommendations:      make([]dto.TransferRecommendationDTO, 0, len(r.Recommendations)),
		Routes:               make([]dto.ConsolidatedRouteDTO, 0, len(r.Routes)),
		Timeline:             make([]dto.TimelineEntryDTO, 0, len(r.Timeline)),
		Constraints:          make([]dto.ConstraintDTO, 0, len(r.Constraints)),
	}

	for _, rec := range r.Recommendations {
		out.Recommendations = append(out.Recommendations, toRecommendationDTO(rec))
	}
	for _, route := range r.Routes {
		out.Routes = append(out.Routes, toRouteDTO(route))
	}
	for _, entry := range r.Timeline {
		out.Timeline = append(out.Timeline, dto.TimelineEntryDTO{
			Date:          entry.Date.Format("2006-01-02"),
			TransferCount: entry.TransferCount,
			TotalUnits:    entry.TotalUnits,
			TotalValue:    entry.TotalValue,
			UrgencyLevel:  entry.UrgencyLevel.String(),
		})
	}
	for _, c := range r.Constraints {
		out.Constraints = append(out.Constraints, dto.ConstraintDTO{
			Type:             string(c.Type),
			Description:      c.Description,
			AffectedBranches: c.AffectedBranches,
			Severity:         string(c.Severity),
			Recommendation:   c.Recommendation,
		})
	}
	return out
}

func toRecommendationDTO(rec transfer.TransferRecommendation) dto.TransferRecommendationDTO {
	alternatives := make([]dto.AlternativeOptionDTO, 0, len(rec.AlternativeOptions))
	for _, alt := range rec.AlternativeOptions {
		alternatives = append(alternatives, dto.AlternativeOptionDTO{
			BranchID:   alt.BranchID,
			BranchName: alt.BranchName,
			Score:      alt.Score,
		})
	}
	return dto.TransferRecommendationDTO{
		ID:                         rec.ID,
		ProductID:                  rec.ProductID,
		ProductName:                rec.ProductName,
		Barcode:                    rec.Barcode,
		CategoryName:               rec.CategoryName,
		FromBranchID:               rec.FromBranchID,
		FromBranchName:             rec.FromBranchName,
		ToBranchID:                 rec.ToBranchID,
		ToBranchName:               rec.ToBranchName,
		RecommendedQuantity:        rec.RecommendedQuantity,
		Priority:                   rec.Priority.String(),
		Reason:                     string(rec.Reason),
		EstimatedSaving:            rec.EstimatedSaving,
		TransferCost:               rec.TransferCost,
		NetBenefit:                 rec.NetBenefit,
		UrgencyScore:               rec.UrgencyScore,
		FeasibilityScore:           rec.FeasibilityScore,
		DistanceKm:                 rec.DistanceKm,
		EstimatedTransferTimeHours: rec.EstimatedTransferTimeHours,
		DaysUntilExpiry:            rec.DaysUntilExpiry,
		RecommendedTransferDate:    rec.RecommendedTransferDate,
		ValidUntil:                 rec.ValidUntil,
		ExpiryDate:                 rec.ExpiryDate,
		Constraints:                rec.Constraints,
		AlternativeOptions:         alternatives,
	}
}

func toRouteDTO(route transfer.ConsolidatedRoute) dto.ConsolidatedRouteDTO {
	items := make([]dto.RouteItemDTO, 0, len(route.Items))
	for _, item := range route.Items {
		items = append(items, dto.RouteItemDTO{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Value:       item.Value,
			ExpiryDate:  item.ExpiryDate,
		})
	}
	return dto.ConsolidatedRouteDTO{
		RouteID:        route.RouteID,
		FromBranchID:   route.FromBranchID,
		FromBranchName: route.FromBranchName,
		ToBranchID:     route.ToBranchID,
		ToBranchName:   route.ToBranchName,
		Items:          items,
		TotalQuantity:  route.TotalQuantity,
		TotalValue:     route.TotalValue,
		Priority:       route.Priority.String(),
		ScheduledDate:  route.ScheduledDate,
	}
}
