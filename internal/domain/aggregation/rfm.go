package aggregation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
)

type rfmAcc struct {
	lastDay  time.Time
	orders   map[string]struct{}
	monetary float64
}

// RFM calcula recência, frequência e valor monetário por customer_unique_id.
// A recência é medida em dias inteiros a partir da data de compra mais
// recente de todo o conjunto filtrado, então o cliente mais recente tem 0.
func RFM(rows []entity.OrderLine) []entity.RFMSegment {
	if len(rows) == 0 {
		return []entity.RFMSegment{}
	}

	var latest time.Time
	customers := make(map[string]*rfmAcc)

	for _, row := range rows {
		day := row.PurchaseDay()
		if day.After(latest) {
			latest = day
		}

		acc, ok := customers[row.CustomerUniqueID]
		if !ok {
			acc = &rfmAcc{lastDay: day, orders: make(map[string]struct{})}
			customers[row.CustomerUniqueID] = acc
		}
		if day.After(acc.lastDay) {
			acc.lastDay = day
		}
		acc.orders[row.OrderID] = struct{}{}
		acc.monetary += row.TotalPrice
	}

	result := make([]entity.RFMSegment, 0, len(customers))
	for id, acc := range customers {
		result = append(result, entity.RFMSegment{
			CustomerUniqueID: id,
			Frequency:        len(acc.orders),
			Monetary:         acc.monetary,
			Recency:          int(latest.Sub(acc.lastDay).Hours() / 24),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CustomerUniqueID < result[j].CustomerUniqueID
	})

	return result
}

// RFMMetric selects the column used by RankRFM.
type RFMMetric string

const (
	ByRecency   RFMMetric = "recency"
	ByFrequency RFMMetric = "frequency"
	ByMonetary  RFMMetric = "monetary"
)

// ParseRFMMetric aceita o nome da métrica sem diferenciar maiúsculas.
func ParseRFMMetric(s string) (RFMMetric, error) {
	switch m := RFMMetric(strings.ToLower(strings.TrimSpace(s))); m {
	case ByRecency, ByFrequency, ByMonetary:
		return m, nil
	default:
		return "", fmt.Errorf("unknown RFM metric: %q", s)
	}
}

// RankRFM ordena os clientes pela métrica escolhida e devolve os n primeiros.
// Recência é ordenada de forma crescente (mais recente primeiro); as demais,
// de forma decrescente.
func RankRFM(segments []entity.RFMSegment, by RFMMetric, n int) []entity.RFMSegment {
	ranked := make([]entity.RFMSegment, len(segments))
	copy(ranked, segments)

	sort.SliceStable(ranked, func(i, j int) bool {
		switch by {
		case ByFrequency:
			return ranked[i].Frequency > ranked[j].Frequency
		case ByMonetary:
			return ranked[i].Monetary > ranked[j].Monetary
		default:
			return ranked[i].Recency < ranked[j].Recency
		}
	})

	return Head(ranked, n)
}
