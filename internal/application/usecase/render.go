package usecase

import (
	"fmt"
	"strconv"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/aggregation"
	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
	"github.com/diillson/ecommerce-dashboard-go/internal/shared/types"
	"github.com/diillson/ecommerce-dashboard-go/pkg/numfmt"
)

// renderDashboard exibe métricas, tabelas e gráficos nesta ordem:
// pedidos diários, categorias, avaliações, cidades, estados e RFM.
func (uc *DashboardUseCase) renderDashboard(d entity.Dashboard, topN int) {
	uc.console.DisplayMetrics(fmt.Sprintf("Daily Orders (%s)", d.Range), []types.Metric{
		{Label: "Total Revenue", Value: numfmt.Amount(d.Orders.TotalRevenue)},
		{Label: "Total Orders", Value: numfmt.Count(d.Orders.TotalOrders)},
		{Label: "Average Rating", Value: numfmt.Score(d.Orders.AvgRating)},
	})
	uc.console.Print(uc.dailyTable(d.DailyOrders).Render())

	uc.console.DisplayBars("Top Selling Products", volumeBars(aggregation.Head(d.CategoryVolume, topN)))
	uc.console.DisplayBars("Least Selling Products", volumeBars(aggregation.Head(aggregation.LeastCategoryVolume(d.CategoryVolume), topN)))

	uc.console.DisplayBars(fmt.Sprintf("Top %d Products by Average Review Score", topN), ratingBars(aggregation.Head(d.CategoryRating, topN)))

	uc.console.DisplayBars("Best Performing Seller Cities", sellerBars(aggregation.Head(d.SellerRevenue, topN)))
	uc.console.DisplayBars("Worst Performing Seller Cities", sellerBars(aggregation.Head(aggregation.LeastSellerRevenue(d.SellerRevenue), topN)))

	states := uc.console.CreateTable()
	states.AddColumn("Seller State")
	states.AddColumn("Customers")
	for _, s := range d.StateCustomers {
		states.AddRow(s.State, numfmt.Count(s.CustomerCount))
	}
	uc.console.Print(states.Render())

	uc.console.DisplayMetrics("Best Customer Based on RFM Parameters", []types.Metric{
		{Label: "Average Recency (days)", Value: strconv.FormatFloat(d.Customers.AvgRecency, 'f', 1, 64)},
		{Label: "Average Frequency", Value: strconv.FormatFloat(d.Customers.AvgFrequency, 'f', 2, 64)},
		{Label: "Average Monetary", Value: numfmt.Amount(d.Customers.AvgMonetary)},
	})
	for _, metric := range []aggregation.RFMMetric{aggregation.ByRecency, aggregation.ByFrequency, aggregation.ByMonetary} {
		uc.console.Print(uc.rfmTable(aggregation.RankRFM(d.RFM, metric, topN), metric).Render())
	}
}

func (uc *DashboardUseCase) dailyTable(daily []entity.DailyOrders) types.TableInterface {
	table := uc.console.CreateTable()
	table.AddColumn("Date")
	table.AddColumn("Orders")
	table.AddColumn("Revenue")
	table.AddColumn("Avg Score")

	for _, d := range daily {
		table.AddRow(d.Date.Format(entity.DateLayout), numfmt.Count(d.OrderCount), numfmt.Amount(d.Revenue), numfmt.Score(d.AvgScore))
	}
	return table
}

func (uc *DashboardUseCase) rfmTable(segments []entity.RFMSegment, by aggregation.RFMMetric) types.TableInterface {
	table := uc.console.CreateTable()
	table.AddColumn(fmt.Sprintf("Customer (by %s)", by))
	table.AddColumn("Recency (days)")
	table.AddColumn("Frequency")
	table.AddColumn("Monetary")

	for _, s := range segments {
		table.AddRow(s.CustomerUniqueID, s.Recency, s.Frequency, numfmt.Amount(s.Monetary))
	}
	return table
}

func volumeBars(view []entity.CategoryVolume) []types.Bar {
	bars := make([]types.Bar, 0, len(view))
	for _, v := range view {
		bars = append(bars, types.Bar{Label: v.Category, Value: float64(v.ItemCount)})
	}
	return bars
}

// ratingBars ignora categorias sem nota.
func ratingBars(view []entity.CategoryRating) []types.Bar {
	bars := make([]types.Bar, 0, len(view))
	for _, v := range view {
		if v.AvgScore == nil {
			continue
		}
		bars = append(bars, types.Bar{Label: v.Category, Value: *v.AvgScore})
	}
	return bars
}

func sellerBars(view []entity.SellerRevenue) []types.Bar {
	bars := make([]types.Bar, 0, len(view))
	for _, v := range view {
		bars = append(bars, types.Bar{Label: v.City, Value: v.Revenue})
	}
	return bars
}
