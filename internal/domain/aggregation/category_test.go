package aggregation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
)

func TestCategoryVolume_TieKeepsEncounterOrder(t *testing.T) {
	got := CategoryVolume(sampleRows())

	require.Equal(t, []entity.CategoryVolume{
		{Category: "toys", ItemCount: 2},
		{Category: "books", ItemCount: 2},
	}, got)
}

func TestCategoryVolume_SortedDescendingAndConserved(t *testing.T) {
	rows := []entity.OrderLine{
		line("A", "2024-01-01 10:00:00", withCategory("garden"), withItems(1)),
		line("B", "2024-01-01 11:00:00", withCategory("toys"), withItems(3)),
		line("C", "2024-01-02 10:00:00", withCategory("garden"), withItems(1)),
		line("D", "2024-01-03 10:00:00", withCategory("books"), withItems(7)),
		line("E", "2024-01-03 12:00:00", withCategory("toys"), withItems(2)),
	}

	got := CategoryVolume(rows)

	require.Equal(t, []string{"books", "toys", "garden"}, categoriesOf(got))

	total := 0
	for _, c := range got {
		total += c.ItemCount
	}
	want := 0
	for _, r := range rows {
		want += r.OrderItemID
	}
	require.Equal(t, want, total)
}

func TestLeastCategoryVolume_DoesNotTouchInput(t *testing.T) {
	view := []entity.CategoryVolume{
		{Category: "books", ItemCount: 7},
		{Category: "toys", ItemCount: 5},
		{Category: "garden", ItemCount: 2},
	}

	got := LeastCategoryVolume(view)

	require.Equal(t, []string{"garden", "toys", "books"}, categoriesOf(got))
	require.Equal(t, "books", view[0].Category)
}

func TestCategoryRating_SortedAndNullsLast(t *testing.T) {
	rows := []entity.OrderLine{
		line("A", "2024-01-01 10:00:00", withCategory("unrated")),
		line("B", "2024-01-01 10:00:00", withCategory("toys"), withScore(3)),
		line("C", "2024-01-01 10:00:00", withCategory("books"), withScore(5)),
		line("D", "2024-01-01 10:00:00", withCategory("toys"), withScore(4)),
		line("E", "2024-01-01 10:00:00", withCategory("toys")),
		line("F", "2024-01-01 10:00:00", withCategory("garden"), withScore(3.5)),
	}

	got := CategoryRating(rows)

	require.Len(t, got, 4)
	require.Equal(t, "books", got[0].Category)
	require.InDelta(t, 5.0, *got[0].AvgScore, 1e-9)
	// toys e garden empatam em 3.5; toys apareceu primeiro
	require.Equal(t, "toys", got[1].Category)
	require.InDelta(t, 3.5, *got[1].AvgScore, 1e-9)
	require.Equal(t, "garden", got[2].Category)
	require.Equal(t, "unrated", got[3].Category)
	require.Nil(t, got[3].AvgScore)
}

func TestCategoryViews_Empty(t *testing.T) {
	require.NotNil(t, CategoryVolume(nil))
	require.Empty(t, CategoryVolume(nil))
	require.NotNil(t, CategoryRating(nil))
	require.Empty(t, CategoryRating(nil))
}

func categoriesOf(view []entity.CategoryVolume) []string {
	names := make([]string, 0, len(view))
	for _, c := range view {
		names = append(names, c.Category)
	}
	return names
}
