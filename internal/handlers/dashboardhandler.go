package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahesh20s/job-portal/internal/auth"
	"github.com/Mahesh20s/job-portal/internal/services"
)

type DashboardHandler struct {
	DashboardService *services.DashboardService
}

func NewDashboardHandler(d *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		DashboardService: d,
	}
}

// Dashboard is the GET /dashboard endpoint.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	d, err := h.DashboardService.ForUser(user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
