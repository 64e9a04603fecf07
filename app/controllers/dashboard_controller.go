package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/pkg/response"
)

type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// Fetch handles GET /api/dashboard/fetch. The console polls this endpoint,
// so responses come from the Redis cache whenever it is warm.
func (c *DashboardController) Fetch(w http.ResponseWriter, r *http.Request) {
	stats, err := c.dashboard.Stats(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, stats)
}
