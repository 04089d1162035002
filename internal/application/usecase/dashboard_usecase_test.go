package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
	"github.com/diillson/ecommerce-dashboard-go/internal/shared/types"
)

func newUseCase(ds *fakeDataset, ex *fakeExport, cfg *fakeConfig, con *recordingConsole) *DashboardUseCase {
	return NewDashboardUseCase(ds, ex, cfg, con)
}

func TestBuildDashboard(t *testing.T) {
	d, err := BuildDashboard(orders(), "2024-01-01", "2024-01-02")
	require.NoError(t, err)

	require.Equal(t, 3, d.RowCount)
	require.Len(t, d.DailyOrders, 2)
	require.Equal(t, 1, d.DailyOrders[0].OrderCount)
	require.InDelta(t, 15.0, d.DailyOrders[0].Revenue, 1e-9)
	require.Equal(t, 1, d.DailyOrders[1].OrderCount)
	require.InDelta(t, 20.0, d.DailyOrders[1].Revenue, 1e-9)
	require.Equal(t, []entity.CategoryVolume{{Category: "toys", ItemCount: 2}, {Category: "books", ItemCount: 2}}, d.CategoryVolume)
	require.InDelta(t, 35.0, d.Orders.TotalRevenue, 1e-9)
	require.Equal(t, 2, d.Orders.TotalOrders)
}

func TestBuildDashboard_EmptyInput(t *testing.T) {
	d, err := BuildDashboard(nil, "", "")
	require.NoError(t, err)
	require.Empty(t, d.DailyOrders)
	require.Empty(t, d.RFM)
}

func TestApplyConfig_Precedence(t *testing.T) {
	cfg := &fakeConfig{
		file: &types.Config{DataSource: "from-file.csv", StartDate: "2017-01-01", TopN: 5, ReportType: []string{"pdf"}},
		env: func(c *types.Config) {
			c.StartDate = "2018-01-01"
			c.Dir = "/tmp/reports"
		},
	}
	uc := newUseCase(&fakeDataset{}, &fakeExport{}, cfg, newRecordingConsole())

	args := &types.CLIArgs{ConfigFile: "dashboard.toml", EndDate: "2018-06-30"}
	require.NoError(t, uc.ApplyConfig(args))

	require.Equal(t, "from-file.csv", args.DataSource)
	require.Equal(t, "2018-01-01", args.StartDate)
	require.Equal(t, "2018-06-30", args.EndDate)
	require.Equal(t, "/tmp/reports", args.Dir)
	require.Equal(t, 5, args.TopN)
	require.Equal(t, []string{"pdf"}, args.ReportType)
}

func TestApplyConfig_RequiresDataSource(t *testing.T) {
	uc := newUseCase(&fakeDataset{}, &fakeExport{}, &fakeConfig{}, newRecordingConsole())

	args := &types.CLIArgs{}
	err := uc.ApplyConfig(args)
	require.ErrorIs(t, err, types.ErrUnsupportedSource)
	require.Equal(t, DefaultTopN, args.TopN)
}

func TestLoadOrders_EmptyDataset(t *testing.T) {
	uc := newUseCase(&fakeDataset{}, &fakeExport{}, &fakeConfig{}, newRecordingConsole())

	_, err := uc.LoadOrders(context.Background(), entity.DatasetSource{Location: "all_data.csv"})
	require.ErrorIs(t, err, types.ErrEmptyDataset)
}

func TestRunDashboard_RendersAndExports(t *testing.T) {
	ds := &fakeDataset{rows: orders()}
	ex := &fakeExport{}
	con := newRecordingConsole()
	uc := newUseCase(ds, ex, &fakeConfig{}, con)

	args := &types.CLIArgs{
		DataSource: "s3://bucket/all_data.csv",
		AWSProfile: "analytics",
		AWSRegion:  "sa-east-1",
		TopN:       3,
		ReportName: "report",
		ReportType: []string{"csv", "json", "pdf", "xlsx"},
	}
	require.NoError(t, uc.RunDashboard(context.Background(), args))

	require.Equal(t, []entity.DatasetSource{{
		Location:   "s3://bucket/all_data.csv",
		AWSProfile: "analytics",
		AWSRegion:  "sa-east-1",
	}}, ds.seen)
	require.Equal(t, 1, ex.csv)
	require.Equal(t, 1, ex.json)
	require.Equal(t, 1, ex.pdf)
	require.Equal(t, 3, ex.topN)
	require.Len(t, con.successes, 3)
	require.Len(t, con.warnings, 1, "unknown report type is reported")

	top := con.bars["Top Selling Products"]
	require.Len(t, top, 3)
	require.Equal(t, "toys", top[0].Label)

	metrics := con.metrics["Daily Orders (2024-01-01 to 2024-01-05)"]
	require.Len(t, metrics, 3)
	require.Equal(t, "42.00", metrics[0].Value)
	require.Equal(t, "3", metrics[1].Value)
}

func TestRunDashboard_ExportFailureIsLogged(t *testing.T) {
	ex := &fakeExport{err: errors.New("disk full")}
	con := newRecordingConsole()
	uc := newUseCase(&fakeDataset{rows: orders()}, ex, &fakeConfig{}, con)

	args := &types.CLIArgs{DataSource: "all_data.csv", TopN: 10, ReportName: "report", ReportType: []string{"json"}}
	require.NoError(t, uc.RunDashboard(context.Background(), args))
	require.Len(t, con.errors, 1)
	require.Contains(t, con.errors[0], "disk full")
}

func TestRunDashboard_Errors(t *testing.T) {
	loadErr := errors.New("boom")
	uc := newUseCase(&fakeDataset{err: loadErr}, &fakeExport{}, &fakeConfig{}, newRecordingConsole())
	err := uc.RunDashboard(context.Background(), &types.CLIArgs{DataSource: "x.csv"})
	require.ErrorIs(t, err, loadErr)

	uc = newUseCase(&fakeDataset{rows: orders()}, &fakeExport{}, &fakeConfig{}, newRecordingConsole())
	err = uc.RunDashboard(context.Background(), &types.CLIArgs{DataSource: "x.csv", StartDate: "2024-01-05", EndDate: "2024-01-01"})
	require.ErrorIs(t, err, types.ErrInvalidDateRange)
}

func TestRunDashboard_EmptyRangeWarns(t *testing.T) {
	con := newRecordingConsole()
	uc := newUseCase(&fakeDataset{rows: orders()}, &fakeExport{}, &fakeConfig{}, con)

	args := &types.CLIArgs{DataSource: "x.csv", StartDate: "2024-01-03", EndDate: "2024-01-04", TopN: 10}
	require.NoError(t, uc.RunDashboard(context.Background(), args))
	require.Len(t, con.warnings, 1)
	require.Contains(t, con.warnings[0], "No orders")
}
