package aggregation

import (
	"time"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func score(v float64) *float64 { return &v }

type lineOpt func(*entity.OrderLine)

func line(orderID, ts string, opts ...lineOpt) entity.OrderLine {
	l := entity.OrderLine{
		OrderID:          orderID,
		CustomerID:       "c-" + orderID,
		CustomerUniqueID: "u-" + orderID,
		PurchasedAt:      day(ts),
		Category:         "toys",
		SellerCity:       "sao paulo",
		SellerState:      "SP",
		OrderItemID:      1,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

func withPrice(p float64) lineOpt { return func(l *entity.OrderLine) { l.TotalPrice = p } }
func withCategory(c string) lineOpt { return func(l *entity.OrderLine) { l.Category = c } }
func withItems(n int) lineOpt { return func(l *entity.OrderLine) { l.OrderItemID = n } }
func withScore(s float64) lineOpt { return func(l *entity.OrderLine) { l.ReviewScore = score(s) } }
func withCity(c string) lineOpt { return func(l *entity.OrderLine) { l.SellerCity = c } }
func withState(s string) lineOpt { return func(l *entity.OrderLine) { l.SellerState = s } }
func withCustomer(id string) lineOpt { return func(l *entity.OrderLine) { l.CustomerID = id } }
func withUniqueCustomer(id string) lineOpt {
	return func(l *entity.OrderLine) { l.CustomerUniqueID = id }
}

// sampleRows is the three-line fixture used throughout the package tests.
func sampleRows() []entity.OrderLine {
	return []entity.OrderLine{
		line("A", "2024-01-01 10:00:00", withCategory("toys"), withPrice(10), withItems(1), withScore(5)),
		line("A", "2024-01-01 10:00:00", withCategory("toys"), withPrice(5), withItems(1), withScore(3)),
		line("B", "2024-01-02 09:30:00", withCategory("books"), withPrice(20), withItems(2)),
	}
}
