package entity

import "time"

// DailyOrders é uma linha da visão diária de pedidos.
type DailyOrders struct {
	Date       time.Time `json:"order_purchase_timestamp"`
	OrderCount int       `json:"order_count"`
	Revenue    float64   `json:"revenue"`
	AvgScore   *float64  `json:"avg_score"` // nil em dias sem avaliações
}

// CategoryVolume soma os itens vendidos por categoria de produto.
type CategoryVolume struct {
	Category  string `json:"product_category_name_english"`
	ItemCount int    `json:"order_item_id"`
}

// SellerRevenue soma a receita por cidade do vendedor.
type SellerRevenue struct {
	City    string  `json:"seller_city"`
	Revenue float64 `json:"total_price"`
}

// CategoryRating é a nota média de avaliação por categoria.
type CategoryRating struct {
	Category string   `json:"product_category_name_english"`
	AvgScore *float64 `json:"review_score"`
}

// StateCustomerCount conta clientes distintos por estado do vendedor.
type StateCustomerCount struct {
	State         string `json:"seller_state"`
	CustomerCount int    `json:"customer_count"`
}

// RFMSegment holds the recency/frequency/monetary scores of one customer.
type RFMSegment struct {
	CustomerUniqueID string  `json:"customer_unique_id"`
	Frequency        int     `json:"frequency"`
	Monetary         float64 `json:"monetary"`
	Recency          int     `json:"recency"`
}
