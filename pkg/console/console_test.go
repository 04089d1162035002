package console

import (
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"

	"github.com/diillson/ecommerce-dashboard-go/internal/shared/types"
)

func TestTableRender(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	table := NewConsole().CreateTable()
	table.AddColumn("seller_city")
	table.AddColumn("total_price")
	table.AddRow("sao paulo", "30.00")
	table.AddRow("curitiba", 15)

	out := table.Render()
	require.Contains(t, out, "seller_city")
	require.Contains(t, out, "sao paulo")
	require.Contains(t, out, "15")
}

func TestRenderBars_ScalesToLargestValue(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	out := RenderBars("Top Selling Products", []types.Bar{
		{Label: "bed_bath_table", Value: 100},
		{Label: "toys", Value: 50},
	})

	lines := strings.Split(out, "\n")
	var full, half int
	for _, l := range lines {
		switch {
		case strings.Contains(l, "bed_bath_table"):
			full = strings.Count(l, "█")
		case strings.Contains(l, "toys"):
			half = strings.Count(l, "█")
		}
	}
	require.Equal(t, barWidth, full)
	require.Equal(t, barWidth/2, half)
}

func TestRenderBars_NoData(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	out := RenderBars("Seller Revenue", nil)
	require.Contains(t, out, "no data for this period")
}
