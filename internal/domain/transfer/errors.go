package transfer

import "errors"

// Errores del motor de transferencias.
var (
	// ErrInvalidConfig configuración económica sin sentido (costos negativos,
	// umbrales no positivos). Se rechaza al construir el motor, nunca en runtime.
	ErrInvalidConfig = errors.New("configuración de optimización inválida")

	// ErrDistanceUnavailable el proveedor de distancias no conoce el par de
	// sucursales. Los llamadores lo tratan como "excluir este candidato", no
	// como fallo de la corrida.
	ErrDistanceUnavailable = errors.New("distancia no disponible entre sucursales")

	// ErrOptimization fallo interno inesperado durante una corrida. El contrato
	// es todo-o-nada: no se devuelven resultados parciales.
	ErrOptimization = errors.New("fallo en la corrida de optimización")
)
