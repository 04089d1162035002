package entity

import "time"

// OrderLine representa uma linha do dataset: um item dentro de um pedido.
type OrderLine struct {
	OrderID          string     `json:"order_id"`
	CustomerID       string     `json:"customer_id"`
	CustomerUniqueID string     `json:"customer_unique_id"`
	PurchasedAt      time.Time  `json:"order_purchase_timestamp"`
	DeliveredAt      *time.Time `json:"order_delivered_customer_date,omitempty"`
	TotalPrice       float64    `json:"total_price"`
	ReviewScore      *float64   `json:"review_score,omitempty"` // nil quando ausente
	Category         string     `json:"product_category_name_english"`
	SellerCity       string     `json:"seller_city"`
	SellerState      string     `json:"seller_state"`
	OrderItemID      int        `json:"order_item_id"`
}

// PurchaseDay returns the purchase timestamp truncated to its calendar day (UTC).
func (o OrderLine) PurchaseDay() time.Time {
	return TruncateDay(o.PurchasedAt)
}

// TruncateDay drops the time of day, keeping the calendar date in UTC.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
