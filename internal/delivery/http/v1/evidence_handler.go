package v1

import (
	"errors"
	"io"
	"net/http"

	"goals-project-backend/internal/delivery/http/response"
	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EvidenceHandler struct {
	evidenceUC domain.EvidenceUsecase
	maxBytes   int64
}

// NewEvidenceHandler registers the evidence routes. Bodies larger than maxBytes
// (plus multipart overhead) are cut off before they are buffered.
func NewEvidenceHandler(protected *gin.RouterGroup, evidenceUC domain.EvidenceUsecase, maxBytes int64, upload ...gin.HandlerFunc) {
	handler := &EvidenceHandler{evidenceUC: evidenceUC, maxBytes: maxBytes}

	protected.GET("/goals/weekly/:id/evidence", handler.List)
	protected.POST("/goals/weekly/:id/evidence", append(upload, handler.Upload)...)
	protected.DELETE("/evidence/:id", handler.Delete)
}

// Upload godoc
// @Summary      Upload evidence
// @Description  Image proof for a weekly goal; re-encoded to JPEG before storage
// @Tags         evidence
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true   "Weekly goal ID"
// @Param        file     formData  file    true   "jpg, png, gif or webp image"
// @Param        caption  formData  string  false  "Caption"
// @Success      201      {object}  response.Response{data=domain.Evidence}
// @Failure      400      {object}  response.Response
// @Failure      413      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Router       /goals/weekly/{id}/evidence [post]
func (h *EvidenceHandler) Upload(c *gin.Context) {
	goalID, ok := idParam(c, "id")
	if !ok {
		return
	}

	// 1 MB of slack for the multipart envelope and the caption
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+1<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.TooLarge("La imagen es demasiado grande"))
			return
		}
		c.Error(apperror.BadRequest("Falta el archivo de imagen"))
		return
	}
	if fileHeader.Size > h.maxBytes {
		c.Error(apperror.TooLarge("La imagen es demasiado grande"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("No se pudo leer el archivo"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		c.Error(apperror.BadRequest("No se pudo leer el archivo"))
		return
	}

	evidence, err := h.evidenceUC.Upload(c, currentUserID(c), goalID, domain.EvidenceUpload{
		Filename: fileHeader.Filename,
		Data:     data,
		Caption:  c.PostForm("caption"),
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Evidencia subida", evidence)
}

// List godoc
// @Summary      List evidence of a weekly goal
// @Tags         evidence
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Weekly goal ID"
// @Success      200  {object}  response.Response{data=[]domain.Evidence}
// @Router       /goals/weekly/{id}/evidence [get]
func (h *EvidenceHandler) List(c *gin.Context) {
	goalID, ok := idParam(c, "id")
	if !ok {
		return
	}

	evidence, err := h.evidenceUC.List(c, currentUserID(c), goalID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Evidencias", evidence)
}

// Delete godoc
// @Summary      Delete evidence
// @Tags         evidence
// @Security     BearerAuth
// @Param        id   path      string  true  "Evidence ID"
// @Success      200  {object}  response.Response
// @Router       /evidence/{id} [delete]
func (h *EvidenceHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.evidenceUC.Delete(c, currentUserID(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Evidencia eliminada", nil)
}
