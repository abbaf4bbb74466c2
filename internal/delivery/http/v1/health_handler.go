package v1

import (
	"net/http"

	"goals-project-backend/internal/delivery/http/response"
	"goals-project-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(public *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	public.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health check
// @Description  Probes the database, Redis and object storage
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status, ok := h.healthUC.Check(c.Request.Context())
	if !ok {
		response.Error(c, http.StatusServiceUnavailable, "Servicio degradado", status)
		return
	}
	response.Success(c, http.StatusOK, "Sistema operativo", status)
}
