package v1

import (
	"strconv"

	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func currentUserID(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserID))
}

// bindJSON decodes the body into dst and records a 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.Error(apperror.Invalid("Cuerpo de la solicitud inválido", err))
		return false
	}
	return true
}

// idParam returns the named path parameter when it is a UUID.
func idParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.Error(apperror.BadRequest("Identificador inválido"))
		return "", false
	}
	return id, true
}

// intQuery parses an optional integer query parameter; absent means 0.
func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.Error(apperror.BadRequest("Parámetro inválido: " + name))
		return 0, false
	}
	return n, true
}
