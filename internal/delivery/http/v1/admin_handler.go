package v1

import (
	"fmt"
	"net/http"

	"goals-project-backend/internal/delivery/http/response"
	"goals-project-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

// NewAdminHandler registers the admin routes; guard must restrict them to admins.
func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase, guard gin.HandlerFunc) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := protected.Group("/admin", guard)
	{
		admin.GET("/stats", handler.GetStats)
		admin.GET("/users/recent", handler.RecentUsers)
		admin.GET("/users/export", handler.ExportUsers)
		admin.PUT("/users/:id/role", handler.AssignRole)
	}
}

// GetStats godoc
// @Summary      Get admin dashboard statistics
// @Description  Returns user, goal and match counts and the global completion rate
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.AdminStats}
// @Failure      403  {object}  response.Response
// @Router       /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUC.GetStats(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Estadísticas", stats)
}

// RecentUsers godoc
// @Summary      Newest users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max rows (default 10)"
// @Success      200    {object}  response.Response{data=[]domain.AdminUserRow}
// @Failure      403    {object}  response.Response
// @Router       /admin/users/recent [get]
func (h *AdminHandler) RecentUsers(c *gin.Context) {
	limit, ok := intQuery(c, "limit")
	if !ok {
		return
	}

	users, err := h.adminUC.RecentUsers(c, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Usuarios recientes", users)
}

// ExportUsers godoc
// @Summary      Export users to Excel
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}    file
// @Failure      403  {object}  response.Response
// @Router       /admin/users/export [get]
func (h *AdminHandler) ExportUsers(c *gin.Context) {
	data, err := h.adminUC.ExportUsers(c, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	filename := fmt.Sprintf("usuarios_%s.xlsx", c.GetString(string(domain.KeyRequestID)))
	response.Attachment(c, filename, xlsxContentType, data)
}

// AssignRole godoc
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "User ID"
// @Param        body  body      domain.RoleInput true  "user or admin"
// @Success      200   {object}  response.Response{data=domain.Profile}
// @Failure      403   {object}  response.Response
// @Router       /admin/users/{id}/role [put]
func (h *AdminHandler) AssignRole(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req domain.RoleInput
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.adminUC.AssignRole(c, currentUserID(c), userID, req.Role)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Rol actualizado", profile)
}
