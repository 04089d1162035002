package aggregation

import (
	"sort"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
)

// StateCustomerCount conta customer_id distintos por estado do vendedor.
// O resultado vem ordenado pela sigla do estado.
func StateCustomerCount(rows []entity.OrderLine) []entity.StateCustomerCount {
	customers := make(map[string]map[string]struct{})

	for _, row := range rows {
		set, ok := customers[row.SellerState]
		if !ok {
			set = make(map[string]struct{})
			customers[row.SellerState] = set
		}
		set[row.CustomerID] = struct{}{}
	}

	result := make([]entity.StateCustomerCount, 0, len(customers))
	for state, set := range customers {
		result = append(result, entity.StateCustomerCount{
			State:         state,
			CustomerCount: len(set),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].State < result[j].State
	})

	return result
}
