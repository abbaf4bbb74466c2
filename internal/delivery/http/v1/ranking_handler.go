package v1

import (
	"net/http"

	"goals-project-backend/internal/delivery/http/response"
	"goals-project-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RankingHandler struct {
	rankingUC domain.RankingUsecase
}

func NewRankingHandler(protected *gin.RouterGroup, rankingUC domain.RankingUsecase) {
	handler := &RankingHandler{rankingUC: rankingUC}
	protected.GET("/rankings", handler.Get)
}

// Get godoc
// @Summary      Weekly rankings
// @Description  One leaderboard per category plus the caller's positions
// @Tags         rankings
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  false  "Any day of the week, YYYY-MM-DD"
// @Success      200   {object}  response.Response{data=domain.RankingsView}
// @Router       /rankings [get]
func (h *RankingHandler) Get(c *gin.Context) {
	view, err := h.rankingUC.GetRankings(c, currentUserID(c), c.Query("date"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Rankings", view)
}
