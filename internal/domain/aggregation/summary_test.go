package aggregation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
)

func TestSummarizeOrders(t *testing.T) {
	daily := []entity.DailyOrders{
		{OrderCount: 2, Revenue: 10.5, AvgScore: score(4)},
		{OrderCount: 0, Revenue: 0},
		{OrderCount: 1, Revenue: 4.5, AvgScore: score(4.5)},
	}

	got := SummarizeOrders(daily)

	require.InDelta(t, 15.0, got.TotalRevenue, 1e-9)
	require.Equal(t, 3, got.TotalOrders)
	require.NotNil(t, got.AvgRating)
	require.InDelta(t, 4.25, *got.AvgRating, 1e-9)
}

func TestSummarizeOrders_NoScores(t *testing.T) {
	got := SummarizeOrders([]entity.DailyOrders{{OrderCount: 1, Revenue: 3}})
	require.Nil(t, got.AvgRating)
}

func TestSummarizeRFM(t *testing.T) {
	got := SummarizeRFM(RFM(rfmRows()))

	require.InDelta(t, 3.0, got.AvgRecency, 1e-9)
	require.InDelta(t, 1.33, got.AvgFrequency, 1e-9)
	require.InDelta(t, 137.0/3.0, got.AvgMonetary, 1e-9)

	require.Equal(t, entity.RFMSummary{}, SummarizeRFM(nil))
}

func TestHead(t *testing.T) {
	rows := []int{1, 2, 3}
	require.Equal(t, []int{1, 2}, Head(rows, 2))
	require.Equal(t, rows, Head(rows, 10))
	require.Equal(t, rows, Head(rows, 0))
}
