package v1

import (
	"net/http"

	"goals-project-backend/internal/delivery/http/response"
	"goals-project-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type GoalHandler struct {
	goalUC domain.GoalUsecase
}

func NewGoalHandler(protected *gin.RouterGroup, goalUC domain.GoalUsecase) {
	handler := &GoalHandler{goalUC: goalUC}

	goals := protected.Group("/goals")
	{
		goals.GET("", handler.List)
		goals.POST("", handler.Create)
		goals.GET("/:id", handler.Get)
		goals.PUT("/:id", handler.Update)
		goals.PATCH("/:id/status", handler.SetStatus)
		goals.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List yearly goals
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        year    query     int     false  "Filter by year"
// @Param        status  query     string  false  "active, completed or abandoned"
// @Success      200     {object}  response.Response{data=[]domain.MacroGoal}
// @Router       /goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	year, ok := intQuery(c, "year")
	if !ok {
		return
	}

	goals, err := h.goalUC.ListGoals(c, currentUserID(c), domain.MacroGoalFilter{Year: year, Status: c.Query("status")})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Objetivos", goals)
}

// Create godoc
// @Summary      Create a yearly goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.MacroGoalInput  true  "Goal"
// @Success      201   {object}  response.Response{data=domain.MacroGoal}
// @Failure      400   {object}  response.Response
// @Router       /goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	var req domain.MacroGoalInput
	if !bindJSON(c, &req) {
		return
	}

	goal, err := h.goalUC.CreateGoal(c, currentUserID(c), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Objetivo creado", goal)
}

// Get godoc
// @Summary      Get a yearly goal
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Goal ID"
// @Success      200  {object}  response.Response{data=domain.MacroGoal}
// @Failure      404  {object}  response.Response
// @Router       /goals/{id} [get]
func (h *GoalHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	goal, err := h.goalUC.GetGoal(c, currentUserID(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Objetivo", goal)
}

// Update godoc
// @Summary      Update a yearly goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Goal ID"
// @Param        body  body      domain.MacroGoalInput  true  "Goal"
// @Success      200   {object}  response.Response{data=domain.MacroGoal}
// @Router       /goals/{id} [put]
func (h *GoalHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req domain.MacroGoalInput
	if !bindJSON(c, &req) {
		return
	}

	goal, err := h.goalUC.UpdateGoal(c, currentUserID(c), id, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Objetivo actualizado", goal)
}

// SetStatus godoc
// @Summary      Change a yearly goal's status
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                       true  "Goal ID"
// @Param        body  body      domain.MacroGoalStatusInput  true  "New status"
// @Success      200   {object}  response.Response{data=domain.MacroGoal}
// @Router       /goals/{id}/status [patch]
func (h *GoalHandler) SetStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req domain.MacroGoalStatusInput
	if !bindJSON(c, &req) {
		return
	}

	goal, err := h.goalUC.SetStatus(c, currentUserID(c), id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Estado actualizado", goal)
}

// Delete godoc
// @Summary      Delete a yearly goal
// @Tags         goals
// @Security     BearerAuth
// @Param        id   path      string  true  "Goal ID"
// @Success      200  {object}  response.Response
// @Router       /goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.goalUC.DeleteGoal(c, currentUserID(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Objetivo eliminado", nil)
}
