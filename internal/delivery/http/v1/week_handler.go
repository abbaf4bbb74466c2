package v1

import (
	"errors"
	"net/http"

	"goals-project-backend/internal/delivery/http/response"
	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/apperror"
	"goals-project-backend/pkg/week"

	"github.com/gin-gonic/gin"
)

type WeekHandler struct {
	calc *week.Calculator
}

// NewWeekHandler registers the public calendar and vocabulary routes.
func NewWeekHandler(public *gin.RouterGroup, calc *week.Calculator) {
	handler := &WeekHandler{calc: calc}

	public.GET("/weeks", handler.ForDate)
	public.GET("/weeks/current", handler.Current)
	public.GET("/weeks/next", handler.Next)
	public.GET("/catalog", handler.Catalog)
}

// ForDate godoc
// @Summary      Week containing a date
// @Tags         weeks
// @Produce      json
// @Param        date  query     string  false  "Any day of the week, YYYY-MM-DD; defaults to today"
// @Success      200   {object}  response.Response{data=domain.WeekView}
// @Failure      400   {object}  response.Response
// @Router       /weeks [get]
func (h *WeekHandler) ForDate(c *gin.Context) {
	info, err := h.calc.ForDate(c.Query("date"))
	if err != nil {
		if errors.Is(err, week.ErrInvalidDate) {
			c.Error(apperror.Invalid("Fecha inválida, usa el formato YYYY-MM-DD", err))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Semana", domain.NewWeekView(info))
}

// Current godoc
// @Summary      Current week
// @Tags         weeks
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.WeekView}
// @Router       /weeks/current [get]
func (h *WeekHandler) Current(c *gin.Context) {
	response.Success(c, http.StatusOK, "Semana actual", domain.NewWeekView(h.calc.Current()))
}

// Next godoc
// @Summary      Next week
// @Tags         weeks
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.WeekView}
// @Router       /weeks/next [get]
func (h *WeekHandler) Next(c *gin.Context) {
	response.Success(c, http.StatusOK, "Próxima semana", domain.NewWeekView(h.calc.Next()))
}

type catalog struct {
	FocusAreas []domain.Option `json:"focus_areas"`
	Categories []domain.Option `json:"categories"`
}

// Catalog godoc
// @Summary      Focus areas and ranking categories
// @Tags         weeks
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /catalog [get]
func (h *WeekHandler) Catalog(c *gin.Context) {
	response.Success(c, http.StatusOK, "Catálogo", catalog{
		FocusAreas: domain.FocusAreas,
		Categories: domain.NormalizedCategories,
	})
}
