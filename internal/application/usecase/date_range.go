package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
	"github.com/diillson/ecommerce-dashboard-go/internal/shared/types"
)

// DatasetBounds devolve o intervalo entre o primeiro e o último dia de compra.
// ok é false quando não há linhas.
func DatasetBounds(rows []entity.OrderLine) (bounds entity.DateRange, ok bool) {
	if len(rows) == 0 {
		return entity.DateRange{}, false
	}

	first, last := rows[0].PurchasedAt, rows[0].PurchasedAt
	for _, row := range rows[1:] {
		if row.PurchasedAt.Before(first) {
			first = row.PurchasedAt
		}
		if row.PurchasedAt.After(last) {
			last = row.PurchasedAt
		}
	}
	return entity.NewDateRange(first, last), true
}

// ResolveRange interpreta as datas informadas pelo usuário (YYYY-MM-DD).
// Datas vazias assumem os limites do dataset e o resultado é sempre
// restrito a esses limites.
func ResolveRange(bounds entity.DateRange, start, end string) (entity.DateRange, error) {
	rng := bounds

	if s := strings.TrimSpace(start); s != "" {
		t, err := time.Parse(entity.DateLayout, s)
		if err != nil {
			return entity.DateRange{}, fmt.Errorf("invalid start date %q: %w", start, err)
		}
		rng.Start = entity.TruncateDay(t)
	}
	if e := strings.TrimSpace(end); e != "" {
		t, err := time.Parse(entity.DateLayout, e)
		if err != nil {
			return entity.DateRange{}, fmt.Errorf("invalid end date %q: %w", end, err)
		}
		rng.End = entity.TruncateDay(t)
	}

	if rng.Start.After(rng.End) {
		return entity.DateRange{}, fmt.Errorf("%w: %s > %s", types.ErrInvalidDateRange,
			rng.Start.Format(entity.DateLayout), rng.End.Format(entity.DateLayout))
	}

	if rng.Start.Before(bounds.Start) {
		rng.Start = bounds.Start
	}
	if rng.End.After(bounds.End) {
		rng.End = bounds.End
	}
	return rng, nil
}

// FilterByRange mantém as linhas compradas em qualquer momento dos dias do intervalo.
// A entrada não é modificada.
func FilterByRange(rows []entity.OrderLine, rng entity.DateRange) []entity.OrderLine {
	filtered := make([]entity.OrderLine, 0, len(rows))
	for _, row := range rows {
		if rng.Contains(row.PurchasedAt) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
