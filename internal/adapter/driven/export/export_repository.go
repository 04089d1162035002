package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/aggregation"
	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
	"github.com/diillson/ecommerce-dashboard-go/internal/domain/repository"
	"github.com/diillson/ecommerce-dashboard-go/pkg/numfmt"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// viewTable é uma visão derivada já convertida em cabeçalho + linhas de texto.
type viewTable struct {
	name    string
	title   string
	headers []string
	rows    [][]string
}

// --- Funções de Exportação CSV ---

func (r *ExportRepositoryImpl) ExportToCSV(dashboard entity.Dashboard, filename, outputDir string) ([]string, error) {
	var paths []string

	for _, view := range viewTables(dashboard, 0) {
		outputFilename, err := r.generateFilename(fmt.Sprintf("%s_%s", filename, view.name), outputDir, "csv")
		if err != nil {
			return paths, err
		}

		if err := writeCSV(outputFilename, view); err != nil {
			return paths, err
		}

		abs, err := filepath.Abs(outputFilename)
		if err != nil {
			return paths, err
		}
		paths = append(paths, abs)
	}

	return paths, nil
}

func writeCSV(path string, view viewTable) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(view.headers); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	if err := writer.WriteAll(view.rows); err != nil {
		return fmt.Errorf("error writing CSV rows for %s: %w", view.name, err)
	}
	return nil
}

// --- Exportação JSON ---

func (r *ExportRepositoryImpl) ExportToJSON(dashboard entity.Dashboard, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(dashboard); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Exportação PDF ---

func (r *ExportRepositoryImpl) ExportToPDF(dashboard entity.Dashboard, filename, outputDir string, topN int) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	generatedAt := r.now().Format("2006-01-02")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Generated by E-Commerce Dashboard (Go) | %s", generatedAt)), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  E-Commerce Dashboard"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Period: %s  |  Order lines: %s", dashboard.Range, numfmt.Count(dashboard.RowCount))), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	drawTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	drawMetrics := func(title string, metrics [][2]string) {
		drawTitle(title)
		width := 190.0 / float64(len(metrics))
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(100, 100, 100)
		for _, m := range metrics {
			pdf.CellFormat(width, 5, tr(m[0]), "", 0, "L", false, 0, "")
		}
		pdf.Ln(5)
		pdf.SetFont("Arial", "B", 14)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for _, m := range metrics {
			pdf.CellFormat(width, 10, tr(m[1]), "", 0, "L", false, 0, "")
		}
		pdf.Ln(14)
	}

	drawTable := func(view viewTable) {
		drawTitle(view.title)
		if len(view.rows) == 0 {
			pdf.SetFont("Arial", "I", 10)
			pdf.Cell(0, 6, "No data for this period")
			pdf.Ln(10)
			return
		}

		width := 190.0 / float64(len(view.headers))
		pdf.SetFont("Arial", "B", 9)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for _, h := range view.headers {
			pdf.CellFormat(width, 7, tr(h), "B", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, row := range view.rows {
			for _, cell := range row {
				pdf.CellFormat(width, 6, tr(truncate(cell, 40)), "", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(8)
	}

	drawMetrics("Daily Orders", [][2]string{
		{"Total Revenue", numfmt.Amount(dashboard.Orders.TotalRevenue)},
		{"Total Orders", numfmt.Count(dashboard.Orders.TotalOrders)},
		{"Average Rating", numfmt.Score(dashboard.Orders.AvgRating)},
	})
	drawMetrics("Customers (RFM)", [][2]string{
		{"Average Recency (days)", strconv.FormatFloat(dashboard.Customers.AvgRecency, 'f', 1, 64)},
		{"Average Frequency", strconv.FormatFloat(dashboard.Customers.AvgFrequency, 'f', 2, 64)},
		{"Average Monetary", numfmt.Amount(dashboard.Customers.AvgMonetary)},
	})

	for _, view := range viewTables(dashboard, topN) {
		drawTable(view)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// viewTables converte as visões em tabelas de texto. Com limit > 0, as visões
// ranqueadas são cortadas nas primeiras limit linhas; a visão diária nunca é cortada.
func viewTables(d entity.Dashboard, limit int) []viewTable {
	daily := viewTable{
		name:    "daily_orders",
		title:   "Daily Orders",
		headers: []string{"order_purchase_timestamp", "order_count", "revenue", "avg_score"},
	}
	for _, row := range d.DailyOrders {
		daily.rows = append(daily.rows, []string{
			row.Date.Format(entity.DateLayout),
			strconv.Itoa(row.OrderCount),
			formatFloat(row.Revenue),
			formatOptional(row.AvgScore),
		})
	}

	volume := viewTable{
		name:    "category_volume",
		title:   "Top Selling Product Categories",
		headers: []string{"product_category_name_english", "order_item_id"},
	}
	for _, row := range aggregation.Head(d.CategoryVolume, limit) {
		volume.rows = append(volume.rows, []string{row.Category, strconv.Itoa(row.ItemCount)})
	}

	rating := viewTable{
		name:    "category_rating",
		title:   "Product Categories by Average Review Score",
		headers: []string{"product_category_name_english", "review_score"},
	}
	for _, row := range aggregation.Head(d.CategoryRating, limit) {
		rating.rows = append(rating.rows, []string{row.Category, formatOptional(row.AvgScore)})
	}

	seller := viewTable{
		name:    "seller_revenue",
		title:   "Seller Revenue by City",
		headers: []string{"seller_city", "total_price"},
	}
	for _, row := range aggregation.Head(d.SellerRevenue, limit) {
		seller.rows = append(seller.rows, []string{row.City, formatFloat(row.Revenue)})
	}

	states := viewTable{
		name:    "state_customers",
		title:   "Customers by Seller State",
		headers: []string{"seller_state", "customer_count"},
	}
	for _, row := range d.StateCustomers {
		states.rows = append(states.rows, []string{row.State, strconv.Itoa(row.CustomerCount)})
	}

	rfm := viewTable{
		name:    "rfm",
		title:   "Best Customers by Monetary Value",
		headers: []string{"customer_unique_id", "frequency", "monetary", "recency"},
	}
	segments := d.RFM
	if limit > 0 {
		segments = aggregation.RankRFM(d.RFM, aggregation.ByMonetary, limit)
	}
	for _, row := range segments {
		rfm.rows = append(rfm.rows, []string{
			row.CustomerUniqueID,
			strconv.Itoa(row.Frequency),
			formatFloat(row.Monetary),
			strconv.Itoa(row.Recency),
		})
	}

	return []viewTable{daily, volume, seller, rating, states, rfm}
}

func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatOptional deixa a célula vazia quando não há valor, como um NaN no CSV.
func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
