package aggregation

import "github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"

// Build computa todas as visões derivadas sobre linhas já filtradas por rng.
// As visões são independentes entre si; a ordem das chamadas não importa.
func Build(rows []entity.OrderLine, rng entity.DateRange) entity.Dashboard {
	daily := DailyOrders(rows)
	rfm := RFM(rows)

	return entity.Dashboard{
		Range:          rng,
		RowCount:       len(rows),
		Orders:         SummarizeOrders(daily),
		Customers:      SummarizeRFM(rfm),
		DailyOrders:    daily,
		CategoryVolume: CategoryVolume(rows),
		SellerRevenue:  SellerRevenue(rows),
		CategoryRating: CategoryRating(rows),
		StateCustomers: StateCustomerCount(rows),
		RFM:            rfm,
	}
}
