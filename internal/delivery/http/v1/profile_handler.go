package v1

import (
	"net/http"

	"goals-project-backend/internal/delivery/http/response"
	"goals-project-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := protected.Group("/profiles/me")
	{
		profiles.GET("", handler.GetMe)
		profiles.PUT("", handler.UpdateMe)
		profiles.POST("/onboarding", handler.CompleteOnboarding)
	}
}

// GetMe godoc
// @Summary      Get own profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      401  {object}  response.Response
// @Router       /profiles/me [get]
func (h *ProfileHandler) GetMe(c *gin.Context) {
	profile, err := h.profileUC.GetProfile(c, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Perfil", profile)
}

// UpdateMe godoc
// @Summary      Update own profile
// @Description  Partial update; omitted fields are kept
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.ProfileUpdateInput  true  "Fields to change"
// @Success      200   {object}  response.Response{data=domain.Profile}
// @Failure      400   {object}  response.Response
// @Router       /profiles/me [put]
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var req domain.ProfileUpdateInput
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profileUC.UpdateProfile(c, currentUserID(c), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Perfil actualizado", profile)
}

// CompleteOnboarding godoc
// @Summary      Complete onboarding
// @Description  Sets name, focus areas and interests and marks the profile as onboarded
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.OnboardingInput  true  "Onboarding answers"
// @Success      200   {object}  response.Response{data=domain.Profile}
// @Failure      400   {object}  response.Response
// @Router       /profiles/me/onboarding [post]
func (h *ProfileHandler) CompleteOnboarding(c *gin.Context) {
	var req domain.OnboardingInput
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profileUC.CompleteOnboarding(c, currentUserID(c), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Onboarding completado", profile)
}
