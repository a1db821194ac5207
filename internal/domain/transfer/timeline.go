package transfer

import (
	"sort"
	"time"
)

// buildTimeline agrupa las recomendaciones por día calendario de la fecha
// recomendada de transferencia. Por bucket: número de transferencias, unidades
// totales, ahorro total y la prioridad más alta observada ese día. Los buckets
// se devuelven en orden cronológico.
func buildTimeline(recs []TransferRecommendation) []TimelineEntry {
	buckets := make(map[time.Time]*TimelineEntry)

	for _, r := range recs {
		day := truncateToDay(r.RecommendedTransferDate)

		entry, ok := buckets[day]
		if !ok {
			entry = &TimelineEntry{Date: day, UrgencyLevel: r.Priority}
			buckets[day] = entry
		}

		entry.TransferCount++
		entry.TotalUnits += r.RecommendedQuantity
		entry.TotalValue = entry.TotalValue.Add(r.EstimatedSaving)
		if r.Priority > entry.UrgencyLevel {
			entry.UrgencyLevel = r.Priority
		}
	}

	timeline := make([]TimelineEntry, 0, len(buckets))
	for _, entry := range buckets {
		timeline = append(timeline, *entry)
	}
	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Date.Before(timeline[j].Date)
	})
	return timeline
}

// truncateToDay recorta al inicio del día conservando la zona horaria.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
