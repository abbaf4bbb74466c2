package v1

import (
	"net/http"

	"goals-project-backend/internal/delivery/http/response"
	"goals-project-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(protected *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}
	protected.GET("/dashboard", handler.Get)
}

// Get godoc
// @Summary      Dashboard
// @Description  Profile, active yearly goals and this week's progress
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.Dashboard}
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	dashboard, err := h.dashboardUC.GetDashboard(c, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard", dashboard)
}
