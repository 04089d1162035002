package aggregation

import (
	"sort"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
)

// SellerRevenue soma total_price por cidade do vendedor, em ordem decrescente.
func SellerRevenue(rows []entity.OrderLine) []entity.SellerRevenue {
	result := []entity.SellerRevenue{}
	index := make(map[string]int)

	for _, row := range rows {
		i, ok := index[row.SellerCity]
		if !ok {
			i = len(result)
			index[row.SellerCity] = i
			result = append(result, entity.SellerRevenue{City: row.SellerCity})
		}
		result[i].Revenue += row.TotalPrice
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue > result[j].Revenue
	})

	return result
}

// LeastSellerRevenue returns the cities with the lowest revenue first.
func LeastSellerRevenue(view []entity.SellerRevenue) []entity.SellerRevenue {
	result := make([]entity.SellerRevenue, len(view))
	copy(result, view)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue < result[j].Revenue
	})
	return result
}
