package aggregation

import (
	"math"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
)

// SummarizeOrders calcula receita total, total de pedidos e nota média
// a partir da visão diária. A nota média é a média das médias diárias
// definidas, arredondada em duas casas.
func SummarizeOrders(daily []entity.DailyOrders) entity.OrderSummary {
	var summary entity.OrderSummary
	var score meanAcc

	for _, d := range daily {
		summary.TotalRevenue += d.Revenue
		summary.TotalOrders += d.OrderCount
		score.addPtr(d.AvgScore)
	}

	if avg := score.mean(); avg != nil {
		rounded := round(*avg, 2)
		summary.AvgRating = &rounded
	}

	return summary
}

// SummarizeRFM devolve as médias de recência (1 casa), frequência (2 casas)
// e valor monetário. Sem clientes, tudo é zero.
func SummarizeRFM(segments []entity.RFMSegment) entity.RFMSummary {
	if len(segments) == 0 {
		return entity.RFMSummary{}
	}

	var recency, frequency, monetary float64
	for _, s := range segments {
		recency += float64(s.Recency)
		frequency += float64(s.Frequency)
		monetary += s.Monetary
	}
	n := float64(len(segments))

	return entity.RFMSummary{
		AvgRecency:   round(recency/n, 1),
		AvgFrequency: round(frequency/n, 2),
		AvgMonetary:  monetary / n,
	}
}

// Head devolve no máximo os n primeiros elementos. n <= 0 devolve tudo.
func Head[T any](rows []T, n int) []T {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
