package entity

// OrderSummary agrega as métricas exibidas no topo do dashboard.
type OrderSummary struct {
	TotalRevenue float64  `json:"total_revenue"`
	TotalOrders  int      `json:"total_orders"`
	AvgRating    *float64 `json:"avg_rating,omitempty"`
}

// RFMSummary agrega as médias dos segmentos RFM.
type RFMSummary struct {
	AvgRecency   float64 `json:"avg_recency"`
	AvgFrequency float64 `json:"avg_frequency"`
	AvgMonetary  float64 `json:"avg_monetary"`
}

// Dashboard contém todas as visões derivadas para um intervalo filtrado.
type Dashboard struct {
	Range          DateRange            `json:"range"`
	RowCount       int                  `json:"row_count"`
	Orders         OrderSummary         `json:"orders"`
	Customers      RFMSummary           `json:"customers"`
	DailyOrders    []DailyOrders        `json:"daily_orders"`
	CategoryVolume []CategoryVolume     `json:"category_volume"`
	SellerRevenue  []SellerRevenue      `json:"seller_revenue"`
	CategoryRating []CategoryRating     `json:"category_rating"`
	StateCustomers []StateCustomerCount `json:"state_customers"`
	RFM            []RFMSegment         `json:"rfm"`
}
