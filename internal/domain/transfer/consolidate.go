package transfer

// consolidateRoutes agrupa las recomendaciones que comparten el par
// origen → destino en una sola ruta de envío.
//
// Por grupo: se suman cantidades y ahorros, se conserva la prioridad más alta
// y la fecha de transferencia más temprana como fecha programada. Las rutas
// salen en el orden de primera aparición dentro de la lista ya ordenada de
// recomendaciones, que es determinista.
func consolidateRoutes(recs []TransferRecommendation) []ConsolidatedRoute {
	index := make(map[string]int, len(recs))
	routes := make([]ConsolidatedRoute, 0, len(recs))

	for _, r := range recs {
		routeID := r.FromBranchID + "-" + r.ToBranchID

		i, ok := index[routeID]
		if !ok {
			index[routeID] = len(routes)
			routes = append(routes, ConsolidatedRoute{
				RouteID:        routeID,
				FromBranchID:   r.FromBranchID,
				FromBranchName: r.FromBranchName,
				ToBranchID:     r.ToBranchID,
				ToBranchName:   r.ToBranchName,
				Priority:       r.Priority,
				ScheduledDate:  r.RecommendedTransferDate,
			})
			i = len(routes) - 1
		}

		route := &routes[i]
		route.Items = append(route.Items, RouteItem{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.RecommendedQuantity,
			Value:       r.EstimatedSaving,
			ExpiryDate:  r.ExpiryDate,
		})
		route.TotalQuantity += r.RecommendedQuantity
		route.TotalValue = route.TotalValue.Add(r.EstimatedSaving)
		if r.Priority > route.Priority {
			route.Priority = r.Priority
		}
		if r.RecommendedTransferDate.Before(route.ScheduledDate) {
			route.ScheduledDate = r.RecommendedTransferDate
		}
	}

	return routes
}
