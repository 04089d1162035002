// Package aggregation turns the filtered order lines into the dashboard's
// derived views. Every function here is pure: it reads the input slice,
// never mutates it, and returns a freshly allocated result.
package aggregation

import (
	"time"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
)

type dayBucket struct {
	orders  map[string]struct{}
	revenue float64
	score   meanAcc
}

// DailyOrders reamostra as linhas por dia de calendário da compra.
// Dias sem pedidos dentro do intervalo aparecem com contagem e receita zero
// e AvgScore nil.
func DailyOrders(rows []entity.OrderLine) []entity.DailyOrders {
	if len(rows) == 0 {
		return []entity.DailyOrders{}
	}

	first, last := rows[0].PurchaseDay(), rows[0].PurchaseDay()
	buckets := make(map[time.Time]*dayBucket)

	for _, row := range rows {
		day := row.PurchaseDay()
		if day.Before(first) {
			first = day
		}
		if day.After(last) {
			last = day
		}

		b, ok := buckets[day]
		if !ok {
			b = &dayBucket{orders: make(map[string]struct{})}
			buckets[day] = b
		}
		b.orders[row.OrderID] = struct{}{}
		b.revenue += row.TotalPrice
		b.score.addPtr(row.ReviewScore)
	}

	result := make([]entity.DailyOrders, 0, entity.NewDateRange(first, last).Days())
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		out := entity.DailyOrders{Date: day}
		if b, ok := buckets[day]; ok {
			out.OrderCount = len(b.orders)
			out.Revenue = b.revenue
			out.AvgScore = b.score.mean()
		}
		result = append(result, out)
	}

	return result
}
