package v1

import (
	"net/http"

	"goals-project-backend/internal/delivery/http/response"
	"goals-project-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUC domain.MatchUsecase
}

func NewMatchHandler(protected *gin.RouterGroup, matchUC domain.MatchUsecase) {
	handler := &MatchHandler{matchUC: matchUC}

	matches := protected.Group("/matches")
	{
		matches.GET("", handler.List)
		matches.GET("/requests", handler.Requests)
		matches.PUT("/requests/:id", handler.Respond)
		matches.POST("/:userId", handler.Request)
	}
}

// List godoc
// @Summary      Compatible users
// @Description  Other onboarded users ordered by compatibility; zero scores are left out
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]domain.MatchCard}
// @Router       /matches [get]
func (h *MatchHandler) List(c *gin.Context) {
	cards, err := h.matchUC.ListMatches(c, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Matches", cards)
}

// Request godoc
// @Summary      Send a connection request
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "Target user ID"
// @Success      201     {object}  response.Response{data=domain.Match}
// @Failure      400     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /matches/{userId} [post]
func (h *MatchHandler) Request(c *gin.Context) {
	targetID, ok := idParam(c, "userId")
	if !ok {
		return
	}

	match, err := h.matchUC.RequestConnection(c, currentUserID(c), targetID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Solicitud enviada", match)
}

// Requests godoc
// @Summary      Connection requests
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.MatchRequests}
// @Router       /matches/requests [get]
func (h *MatchHandler) Requests(c *gin.Context) {
	requests, err := h.matchUC.ListRequests(c, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Solicitudes", requests)
}

// Respond godoc
// @Summary      Answer a connection request
// @Tags         matches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Match ID"
// @Param        body  body      domain.MatchResponseInput  true  "accepted or rejected"
// @Success      200   {object}  response.Response{data=domain.Match}
// @Failure      403   {object}  response.Response
// @Router       /matches/requests/{id} [put]
func (h *MatchHandler) Respond(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req domain.MatchResponseInput
	if !bindJSON(c, &req) {
		return
	}

	match, err := h.matchUC.Respond(c, currentUserID(c), id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Solicitud actualizada", match)
}
