package v1

import (
	"net/http"

	"goals-project-backend/internal/delivery/http/response"
	"goals-project-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUC domain.ReviewUsecase
}

func NewReviewHandler(protected *gin.RouterGroup, reviewUC domain.ReviewUsecase) {
	handler := &ReviewHandler{reviewUC: reviewUC}

	reviews := protected.Group("/reviews")
	{
		reviews.GET("/current", handler.Current)
		reviews.GET("/report", handler.Report)
		reviews.GET("/history", handler.History)
		reviews.POST("", handler.Save)
	}
}

// Current godoc
// @Summary      Weekly review summary
// @Description  Goals, completion rate and performance message of a week
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  false  "Any day of the week, YYYY-MM-DD"
// @Success      200   {object}  response.Response{data=domain.ReviewSummary}
// @Router       /reviews/current [get]
func (h *ReviewHandler) Current(c *gin.Context) {
	summary, err := h.reviewUC.GetSummary(c, currentUserID(c), c.Query("date"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Revisión semanal", summary)
}

// Report godoc
// @Summary      Shareable weekly report
// @Tags         reviews
// @Produce      plain
// @Security     BearerAuth
// @Param        date  query     string  false  "Any day of the week, YYYY-MM-DD"
// @Success      200   {string}  string
// @Router       /reviews/report [get]
func (h *ReviewHandler) Report(c *gin.Context) {
	report, err := h.reviewUC.BuildReport(c, currentUserID(c), c.Query("date"))
	if err != nil {
		c.Error(err)
		return
	}
	c.String(http.StatusOK, report)
}

// Save godoc
// @Summary      Save the weekly review
// @Description  Stores notes and the week's counts; saving again overwrites
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.ReviewInput  true  "Review"
// @Success      200   {object}  response.Response{data=domain.WeeklyReview}
// @Router       /reviews [post]
func (h *ReviewHandler) Save(c *gin.Context) {
	var req domain.ReviewInput
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviewUC.SaveReview(c, currentUserID(c), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Revisión guardada", review)
}

// History godoc
// @Summary      Past weekly reviews
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max rows (default 12)"
// @Success      200    {object}  response.Response{data=[]domain.WeeklyReview}
// @Router       /reviews/history [get]
func (h *ReviewHandler) History(c *gin.Context) {
	limit, ok := intQuery(c, "limit")
	if !ok {
		return
	}

	reviews, err := h.reviewUC.History(c, currentUserID(c), limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Historial de revisiones", reviews)
}
