package dataset

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
	"github.com/diillson/ecommerce-dashboard-go/internal/shared/types"
)

// Colunas obrigatórias do dataset. Colunas extras são ignoradas.
const (
	colOrderID          = "order_id"
	colCustomerID       = "customer_id"
	colCustomerUniqueID = "customer_unique_id"
	colPurchasedAt      = "order_purchase_timestamp"
	colDeliveredAt      = "order_delivered_customer_date"
	colTotalPrice       = "total_price"
	colReviewScore      = "review_score"
	colCategory         = "product_category_name_english"
	colSellerCity       = "seller_city"
	colSellerState      = "seller_state"
	colOrderItemID      = "order_item_id"
)

var requiredColumns = []string{
	colOrderID,
	colCustomerID,
	colCustomerUniqueID,
	colPurchasedAt,
	colDeliveredAt,
	colTotalPrice,
	colReviewScore,
	colCategory,
	colSellerCity,
	colSellerState,
	colOrderItemID,
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	entity.DateLayout,
}

// column é uma coluna lida como texto, com a marcação de valores ausentes.
type column struct {
	name    string
	values  []string
	missing []bool
}

func (c column) isMissing(i int) bool {
	return c.missing[i] || strings.TrimSpace(c.values[i]) == ""
}

func (c column) violation(i int, format string, a ...interface{}) error {
	// i+2: linha 1 é o cabeçalho
	return fmt.Errorf("%w: column %s, line %d: %s", types.ErrSchemaViolation, c.name, i+2, fmt.Sprintf(format, a...))
}

// DecodeOrders lê um CSV com cabeçalho e converte cada linha em entity.OrderLine.
// Todas as colunas são carregadas como texto e convertidas aqui, para que
// erros de tipo apontem a coluna e a linha exatas.
func DecodeOrders(r io.Reader) ([]entity.OrderLine, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{"", "NA", "NaN", "<nil>"}),
	)
	if df.Err != nil {
		if isEmptyInput(df.Err) {
			return []entity.OrderLine{}, nil
		}
		return nil, fmt.Errorf("error reading CSV dataset: %w", df.Err)
	}

	cols, err := selectColumns(df)
	if err != nil {
		return nil, err
	}

	rows := make([]entity.OrderLine, df.Nrow())
	for i := range rows {
		row, err := decodeRow(cols, i)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PurchasedAt.Before(rows[j].PurchasedAt)
	})

	return rows, nil
}

func selectColumns(df dataframe.DataFrame) (map[string]column, error) {
	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}

	var missing []string
	for _, name := range requiredColumns {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required columns: %s", types.ErrSchemaViolation, strings.Join(missing, ", "))
	}

	cols := make(map[string]column, len(requiredColumns))
	for _, name := range requiredColumns {
		s := df.Col(name)
		cols[name] = column{name: name, values: s.Records(), missing: s.IsNaN()}
	}
	return cols, nil
}

func decodeRow(cols map[string]column, i int) (entity.OrderLine, error) {
	var row entity.OrderLine

	for _, name := range []string{colOrderID, colCustomerID, colCustomerUniqueID} {
		if cols[name].isMissing(i) {
			return row, cols[name].violation(i, "value is required")
		}
	}
	row.OrderID = cols[colOrderID].values[i]
	row.CustomerID = cols[colCustomerID].values[i]
	row.CustomerUniqueID = cols[colCustomerUniqueID].values[i]
	row.Category = textOrEmpty(cols[colCategory], i)
	row.SellerCity = textOrEmpty(cols[colSellerCity], i)
	row.SellerState = textOrEmpty(cols[colSellerState], i)

	purchased := cols[colPurchasedAt]
	if purchased.isMissing(i) {
		return row, purchased.violation(i, "value is required")
	}
	ts, err := parseTimestamp(purchased.values[i])
	if err != nil {
		return row, purchased.violation(i, "%v", err)
	}
	row.PurchasedAt = ts

	delivered := cols[colDeliveredAt]
	if !delivered.isMissing(i) {
		ts, err := parseTimestamp(delivered.values[i])
		if err != nil {
			return row, delivered.violation(i, "%v", err)
		}
		if ts.Before(row.PurchasedAt) {
			return row, delivered.violation(i, "delivered before purchase (%s)", row.PurchasedAt.Format(time.RFC3339))
		}
		row.DeliveredAt = &ts
	}

	price := cols[colTotalPrice]
	if !price.isMissing(i) {
		v, err := strconv.ParseFloat(strings.TrimSpace(price.values[i]), 64)
		if err != nil {
			return row, price.violation(i, "not a number: %q", price.values[i])
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return row, price.violation(i, "must be a non-negative amount, got %v", v)
		}
		row.TotalPrice = v
	}

	score := cols[colReviewScore]
	if !score.isMissing(i) {
		v, err := strconv.ParseFloat(strings.TrimSpace(score.values[i]), 64)
		if err != nil || math.IsInf(v, 0) {
			return row, score.violation(i, "not a number: %q", score.values[i])
		}
		if !math.IsNaN(v) {
			row.ReviewScore = &v
		}
	}

	items := cols[colOrderItemID]
	if !items.isMissing(i) {
		n, err := parseCount(items.values[i])
		if err != nil {
			return row, items.violation(i, "%v", err)
		}
		row.OrderItemID = n
	}

	return row, nil
}

func textOrEmpty(c column, i int) string {
	if c.isMissing(i) {
		return ""
	}
	return c.values[i]
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

// parseCount aceita "2" e também "2.0", que é como planilhas exportam inteiros.
func parseCount(value string) (int, error) {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %q", value)
	}
	return int(f), nil
}

func isEmptyInput(err error) bool {
	return err == io.EOF || strings.Contains(err.Error(), "empty DataFrame")
}
