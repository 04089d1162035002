package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
	"github.com/diillson/ecommerce-dashboard-go/internal/shared/types"
)

type fakeDataset struct {
	rows []entity.OrderLine
	err  error
	seen []entity.DatasetSource
}

func (f *fakeDataset) LoadOrders(_ context.Context, source entity.DatasetSource) ([]entity.OrderLine, error) {
	f.seen = append(f.seen, source)
	return f.rows, f.err
}

type fakeExport struct {
	csv, json, pdf int
	err            error
	topN           int
}

func (f *fakeExport) ExportToCSV(_ entity.Dashboard, name, _ string) ([]string, error) {
	f.csv++
	return []string{name + "_daily_orders.csv"}, f.err
}

func (f *fakeExport) ExportToJSON(_ entity.Dashboard, name, _ string) (string, error) {
	f.json++
	return name + ".json", f.err
}

func (f *fakeExport) ExportToPDF(_ entity.Dashboard, name, _ string, topN int) (string, error) {
	f.pdf++
	f.topN = topN
	return name + ".pdf", f.err
}

type fakeConfig struct {
	file *types.Config
	env  func(*types.Config)
}

func (f *fakeConfig) LoadConfigFile(string) (*types.Config, error) {
	if f.file == nil {
		return nil, fmt.Errorf("no such file")
	}
	cp := *f.file
	return &cp, nil
}

func (f *fakeConfig) LoadEnv(cfg *types.Config) error {
	if f.env != nil {
		f.env(cfg)
	}
	return nil
}

// recordingConsole guarda as mensagens em vez de imprimi-las.
type recordingConsole struct {
	infos, warnings, errors, successes []string
	metrics                            map[string][]types.Metric
	bars                               map[string][]types.Bar
	tables                             int
}

func newRecordingConsole() *recordingConsole {
	return &recordingConsole{
		metrics: make(map[string][]types.Metric),
		bars:    make(map[string][]types.Bar),
	}
}

func (c *recordingConsole) Print(...interface{}) {}
func (c *recordingConsole) Printf(string, ...interface{}) {}
func (c *recordingConsole) Println(...interface{}) {}

func (c *recordingConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}

func (c *recordingConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *recordingConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *recordingConsole) LogSuccess(format string, a ...interface{}) {
	c.successes = append(c.successes, fmt.Sprintf(format, a...))
}

func (c *recordingConsole) Status(string) types.StatusHandle { return noopStatus{} }

func (c *recordingConsole) CreateTable() types.TableInterface {
	c.tables++
	return &noopTable{}
}

func (c *recordingConsole) DisplayMetrics(title string, metrics []types.Metric) {
	c.metrics[title] = metrics
}

func (c *recordingConsole) DisplayBars(title string, bars []types.Bar) {
	c.bars[title] = bars
}

type noopStatus struct{}

func (noopStatus) Update(string) {}
func (noopStatus) Stop() {}

type noopTable struct{ rows int }

func (t *noopTable) AddColumn(string, ...interface{}) {}
func (t *noopTable) AddRow(...interface{}) { t.rows++ }
func (t *noopTable) Render() string { return "" }

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func orders() []entity.OrderLine {
	five := 5.0
	return []entity.OrderLine{
		{OrderID: "A", CustomerID: "c1", CustomerUniqueID: "u1", PurchasedAt: ts("2024-01-01 10:00:00"), TotalPrice: 10, Category: "toys", SellerCity: "sao paulo", SellerState: "SP", OrderItemID: 1, ReviewScore: &five},
		{OrderID: "A", CustomerID: "c1", CustomerUniqueID: "u1", PurchasedAt: ts("2024-01-01 10:00:00"), TotalPrice: 5, Category: "toys", SellerCity: "sao paulo", SellerState: "SP", OrderItemID: 1},
		{OrderID: "B", CustomerID: "c2", CustomerUniqueID: "u2", PurchasedAt: ts("2024-01-02 09:30:00"), TotalPrice: 20, Category: "books", SellerCity: "curitiba", SellerState: "PR", OrderItemID: 2},
		{OrderID: "C", CustomerID: "c3", CustomerUniqueID: "u3", PurchasedAt: ts("2024-01-05 23:59:00"), TotalPrice: 7, Category: "garden", SellerCity: "curitiba", SellerState: "PR", OrderItemID: 1},
	}
}
