// Package pdf implementa la generación del plan de transferencias entre
// sucursales como documento imprimible para el equipo de logística.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  Plan de Transferencias + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Recomendaciones / Ahorro / Costo / Beneficio neto  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Prio | Producto | Origen → Destino | Cant | Neto     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RUTAS CONSOLIDADAS: una fila por envío                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESTRICCIONES: severidad + descripción + acción sugerida    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/retail-pro/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCritical = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.TransferPlanPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneratePlanPDF genera el PDF del plan y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePlanPDF(
	_ context.Context,
	companyName string,
	result *dto.OptimizationResultDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Plan de Transferencias entre Sucursales", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName, result))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(result))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("TRANSFERENCIAS RECOMENDADAS"))
	m.AddRows(tableHeaderRow())
	for _, r := range recommendationRows(result.Recommendations) {
		m.AddRows(r)
	}

	if len(result.Routes) > 0 {
		m.AddRows(line.NewRow(2))
		m.AddRows(sectionTitleRow("RUTAS CONSOLIDADAS"))
		for _, r := range routeRows(result.Routes) {
			m.AddRows(r)
		}
	}

	if len(result.Constraints) > 0 {
		m.AddRows(line.NewRow(2))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(sectionTitleRow("RESTRICCIONES DETECTADAS"))
		for _, r := range constraintRows(result.Constraints) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y título + fecha de corrida (der).
func headerRow(companyName string, result *dto.OptimizationResultDTO) core.Row {
	fecha := result.GeneratedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Corrida: %s", result.RunID), props.Text{
				Size: 7, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PLAN DE TRANSFERENCIAS", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Horizonte: %d días", result.HorizonDays), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// summaryRow: los cuatro totales de la corrida en una sola banda.
func summaryRow(result *dto.OptimizationResultDTO) core.Row {
	metric := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center,
				Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center,
				Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(15).Add(
		metric("RECOMENDACIONES", fmt.Sprintf("%d", result.TotalRecommendations)),
		metric("AHORRO POTENCIAL", "$"+formatMoney(result.TotalPotentialSaving.StringFixed(0))),
		metric("COSTO LOGÍSTICO", "$"+formatMoney(result.TotalTransferCost.StringFixed(0))),
		metric("BENEFICIO NETO", "$"+formatMoney(result.NetBenefit.StringFixed(0))),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
	))
}

// tableHeaderRow: cabecera de la tabla de recomendaciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: a,
			Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Prio.", 1, align.Center),
		h("Producto", 4, align.Left),
		h("Origen → Destino", 3, align.Left),
		h("Cant.", 1, align.Center),
		h("Vence", 1, align.Center),
		h("Neto", 2, align.Right),
	)
}

// recommendationRows: una fila por transferencia, prioridad crítica en rojo.
func recommendationRows(recs []dto.TransferRecommendationDTO) []core.Row {
	result := make([]core.Row, 0, len(recs))
	for _, r := range recs {
		prioColor := colorGray
		if r.Priority == "critical" {
			prioColor = colorCritical
		}
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(
				strings.ToUpper(r.Priority[:1]),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: prioColor},
			)),
			col.New(4).Add(text.New(
				r.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				r.FromBranchName+" → "+r.ToBranchName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", r.RecommendedQuantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%dd", r.DaysUntilExpiry),
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: prioColor},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(r.NetBenefit.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// routeRows: una fila por envío consolidado con su fecha programada.
func routeRows(routes []dto.ConsolidatedRouteDTO) []core.Row {
	result := make([]core.Row, 0, len(routes))
	for _, r := range routes {
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(
				r.FromBranchName+" → "+r.ToBranchName,
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(3).Add(text.New(
				fmt.Sprintf("%d productos, %d unidades", len(r.Items), r.TotalQuantity),
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(r.TotalValue.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				r.ScheduledDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Right, Top: 1, Color: colorGray},
			)),
		))
	}
	return result
}

// constraintRows: descripción + acción sugerida por restricción.
func constraintRows(constraints []dto.ConstraintDTO) []core.Row {
	result := make([]core.Row, 0, len(constraints)*2)
	for _, c := range constraints {
		sevColor := colorGray
		if c.Severity == "high" {
			sevColor = colorCritical
		}
		result = append(result,
			row.New(5).Add(col.New(12).Add(
				text.New(fmt.Sprintf("[%s] %s", strings.ToUpper(c.Severity), c.Description), props.Text{
					Style: fontstyle.Bold, Size: 7.5, Top: 1, Color: sevColor,
				}),
			)),
			row.New(5).Add(col.New(12).Add(
				text.New("Acción sugerida: "+c.Recommendation, props.Text{
					Size: 7.5, Top: 0.5, Left: 3, Color: colorGray,
				}),
			)),
		)
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	n := len(s)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i, c := range []byte(s) {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, '.')
			}
			buf = append(buf, c)
		}
		s = string(buf)
	}
	if neg {
		return "-" + s
	}
	return s
}
