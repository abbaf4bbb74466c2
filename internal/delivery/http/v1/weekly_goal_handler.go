package v1

import (
	"net/http"

	"goals-project-backend/internal/delivery/http/response"
	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type WeeklyGoalHandler struct {
	weeklyUC domain.WeeklyGoalUsecase
}

func NewWeeklyGoalHandler(protected *gin.RouterGroup, weeklyUC domain.WeeklyGoalUsecase) {
	handler := &WeeklyGoalHandler{weeklyUC: weeklyUC}

	weekly := protected.Group("/goals/weekly")
	{
		weekly.GET("", handler.List)
		weekly.POST("", handler.Create)
		weekly.GET("/:id", handler.Get)
		weekly.PUT("/:id", handler.Update)
		weekly.PATCH("/:id/toggle", handler.Toggle)
		weekly.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List weekly goals
// @Description  Goals of the week containing date (default: current week) with their evidence
// @Tags         weekly-goals
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  false  "Any day of the week, YYYY-MM-DD"
// @Success      200   {object}  response.Response{data=domain.WeeklyGoalList}
// @Failure      400   {object}  response.Response
// @Router       /goals/weekly [get]
func (h *WeeklyGoalHandler) List(c *gin.Context) {
	list, err := h.weeklyUC.ListWeeklyGoals(c, currentUserID(c), c.Query("date"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Metas semanales", list)
}

// Create godoc
// @Summary      Create a weekly goal
// @Tags         weekly-goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        week  query     string                  false  "current (default) or next"
// @Param        body  body      domain.WeeklyGoalInput  true   "Goal"
// @Success      201   {object}  response.Response{data=domain.MicroGoal}
// @Failure      400   {object}  response.Response
// @Router       /goals/weekly [post]
func (h *WeeklyGoalHandler) Create(c *gin.Context) {
	which := domain.WeekSelector(c.DefaultQuery("week", string(domain.WeekCurrent)))
	if which != domain.WeekCurrent && which != domain.WeekNext {
		c.Error(apperror.BadRequest("Semana inválida, usa current o next"))
		return
	}
	var req domain.WeeklyGoalInput
	if !bindJSON(c, &req) {
		return
	}

	goal, err := h.weeklyUC.CreateWeeklyGoal(c, currentUserID(c), req, which)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Meta semanal creada", goal)
}

// Get godoc
// @Summary      Get a weekly goal
// @Tags         weekly-goals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Weekly goal ID"
// @Success      200  {object}  response.Response{data=domain.MicroGoal}
// @Failure      404  {object}  response.Response
// @Router       /goals/weekly/{id} [get]
func (h *WeeklyGoalHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	goal, err := h.weeklyUC.GetWeeklyGoal(c, currentUserID(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Meta semanal", goal)
}

// Update godoc
// @Summary      Update a weekly goal
// @Tags         weekly-goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Weekly goal ID"
// @Param        body  body      domain.WeeklyGoalInput  true  "Goal"
// @Success      200   {object}  response.Response{data=domain.MicroGoal}
// @Router       /goals/weekly/{id} [put]
func (h *WeeklyGoalHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req domain.WeeklyGoalInput
	if !bindJSON(c, &req) {
		return
	}

	goal, err := h.weeklyUC.UpdateWeeklyGoal(c, currentUserID(c), id, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Meta semanal actualizada", goal)
}

// Toggle godoc
// @Summary      Toggle completion
// @Description  Flips the completed flag and refreshes the ranking for the goal's category
// @Tags         weekly-goals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Weekly goal ID"
// @Success      200  {object}  response.Response{data=domain.MicroGoal}
// @Router       /goals/weekly/{id}/toggle [patch]
func (h *WeeklyGoalHandler) Toggle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	goal, err := h.weeklyUC.ToggleCompletion(c, currentUserID(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Meta semanal actualizada", goal)
}

// Delete godoc
// @Summary      Delete a weekly goal
// @Tags         weekly-goals
// @Security     BearerAuth
// @Param        id   path      string  true  "Weekly goal ID"
// @Success      200  {object}  response.Response
// @Router       /goals/weekly/{id} [delete]
func (h *WeeklyGoalHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.weeklyUC.DeleteWeeklyGoal(c, currentUserID(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Meta semanal eliminada", nil)
}
