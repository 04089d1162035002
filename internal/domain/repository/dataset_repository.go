package repository

import (
	"context"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
)

// DatasetRepository defines the interface for reading the order line dataset.
type DatasetRepository interface {
	// LoadOrders lê todas as linhas de pedido da origem, ordenadas pelo timestamp de compra.
	LoadOrders(ctx context.Context, source entity.DatasetSource) ([]entity.OrderLine, error)
}
