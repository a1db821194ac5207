package transfer_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/retail-pro/internal/domain/transfer"
)

// TestNewEngine_ConfiguracionInvalida el motor no debe construirse con
// economía sin sentido (fail-fast, nunca en runtime).
func TestNewEngine_ConfiguracionInvalida(t *testing.T) {
	distances := transfer.NewStaticDistanceTable()

	cases := []struct {
		name   string
		mutate func(*transfer.Config)
	}{
		{"costo base negativo", func(c *transfer.Config) {
			c.BaseCost = decimal.NewFromInt(-1)
		}},
		{"costo por km negativo", func(c *transfer.Config) {
			c.PerKmCost = decimal.NewFromInt(-2000)
		}},
		{"umbral de capacidad cero", func(c *transfer.Config) {
			c.CapacityThreshold = 0
		}},
		{"umbral de críticas negativo", func(c *transfer.Config) {
			c.CriticalCountThreshold = -3
		}},
		{"utilización máxima fuera de rango", func(c *transfer.Config) {
			c.Policy.MaxTargetUtilization = 1.5
		}},
		{"proporción de stock cero", func(c *transfer.Config) {
			c.Policy.StockTransferRatio = 0
		}},
		{"tasa de prevención mayor a 1", func(c *transfer.Config) {
			c.Policy.WastePreventionUrgent = 1.2
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := transfer.DefaultConfig()
			tc.mutate(&cfg)

			eng, err := transfer.NewEngine(cfg, distances)
			require.Error(t, err)
			assert.Nil(t, eng)
			assert.ErrorIs(t, err, transfer.ErrInvalidConfig)
		})
	}
}

// TestNewEngine_SinDistanceProvider el proveedor de distancias es obligatorio.
func TestNewEngine_SinDistanceProvider(t *testing.T) {
	_, err := transfer.NewEngine(transfer.DefaultConfig(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, transfer.ErrInvalidConfig)
}

// TestDefaultConfig_Valida la configuración por defecto pasa su propia validación.
func TestDefaultConfig_Valida(t *testing.T) {
	assert.NoError(t, transfer.DefaultConfig().Validate())
}
