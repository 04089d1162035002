package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diillson/ecommerce-dashboard-go/internal/application/usecase"
	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
	"github.com/diillson/ecommerce-dashboard-go/internal/shared/types"
)

// DashboardHandler serve as visões derivadas sobre um dataset carregado uma vez.
// rows nunca é modificado, então as requisições não precisam de lock.
type DashboardHandler struct {
	rows []entity.OrderLine
}

func NewDashboardHandler(rows []entity.OrderLine) *DashboardHandler {
	return &DashboardHandler{rows: rows}
}

// views mapeia o nome público de cada visão para o campo do Dashboard.
var views = map[string]func(entity.Dashboard) any{
	"daily-orders":    func(d entity.Dashboard) any { return d.DailyOrders },
	"category-volume": func(d entity.Dashboard) any { return d.CategoryVolume },
	"seller-revenue":  func(d entity.Dashboard) any { return d.SellerRevenue },
	"category-rating": func(d entity.Dashboard) any { return d.CategoryRating },
	"state-customers": func(d entity.Dashboard) any { return d.StateCustomers },
	"rfm":             func(d entity.Dashboard) any { return d.RFM },
}

func (h *DashboardHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GetDashboard GET /api/v1/dashboard?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	d, ok := h.build(c)
	if !ok {
		return
	}
	RespondOK(c, d)
}

// GetView GET /api/v1/views/:name
func (h *DashboardHandler) GetView(c *gin.Context) {
	name := c.Param("name")
	pick, found := views[name]
	if !found {
		RespondError(c, http.StatusNotFound, "unknown_view", fmt.Errorf("%w: %s", types.ErrUnknownView, name))
		return
	}

	d, ok := h.build(c)
	if !ok {
		return
	}
	RespondOK(c, gin.H{
		"view":  name,
		"range": d.Range,
		"rows":  pick(d),
	})
}

func (h *DashboardHandler) build(c *gin.Context) (entity.Dashboard, bool) {
	d, err := usecase.BuildDashboard(h.rows, c.Query("start"), c.Query("end"))
	if err != nil {
		code := "invalid_date"
		if errors.Is(err, types.ErrInvalidDateRange) {
			code = "invalid_date_range"
		}
		RespondError(c, http.StatusBadRequest, code, err)
		return entity.Dashboard{}, false
	}
	return d, true
}
