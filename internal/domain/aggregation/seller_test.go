package aggregation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
)

func TestSellerRevenue_SortedDescendingWithStableTies(t *testing.T) {
	rows := []entity.OrderLine{
		line("A", "2024-01-01 10:00:00", withCity("curitiba"), withPrice(10)),
		line("B", "2024-01-01 10:00:00", withCity("sao paulo"), withPrice(30)),
		line("C", "2024-01-01 10:00:00", withCity("campinas"), withPrice(10)),
		line("D", "2024-01-01 10:00:00", withCity("curitiba"), withPrice(5)),
		line("E", "2024-01-01 10:00:00", withCity("ibitinga"), withPrice(15)),
	}

	got := SellerRevenue(rows)

	require.Equal(t, []entity.SellerRevenue{
		{City: "sao paulo", Revenue: 30},
		{City: "curitiba", Revenue: 15},
		{City: "ibitinga", Revenue: 15},
		{City: "campinas", Revenue: 10},
	}, got)

	least := LeastSellerRevenue(got)
	require.Equal(t, "campinas", least[0].City)
	require.Equal(t, "sao paulo", least[len(least)-1].City)
}

func TestSellerRevenue_Empty(t *testing.T) {
	got := SellerRevenue([]entity.OrderLine{})
	require.NotNil(t, got)
	require.Empty(t, got)
}
