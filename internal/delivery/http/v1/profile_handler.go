package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	public.GET("/profiles/:id", handler.GetPublicProfile)

	users := protected.Group("/users")
	{
		users.GET("/me", handler.GetMyProfile)
		users.PUT("/me", handler.UpdateMyProfile)
	}
}

// GetMyProfile godoc
// @Summary      Get own profile
// @Description  Returns the authenticated user's full profile together with a completeness score.
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateMyProfile godoc
// @Summary      Update own profile
// @Description  Applies a partial profile update. The accepted fields depend on the caller's role.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /users/me [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	// Binding into the role's own patch type is what enforces the field
	// whitelist: fields outside the struct never survive decoding.
	switch role {
	case domain.RoleCandidate:
		var patch domain.CandidateProfilePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.Error(apperror.BadRequest("Invalid request body"))
			return
		}
		profile, err := h.profileUC.UpdateCandidateProfile(c.Request.Context(), userID, &patch)
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Profile updated", profile)

	case domain.RoleEmployer:
		var patch domain.EmployerProfilePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.Error(apperror.BadRequest("Invalid request body"))
			return
		}
		profile, err := h.profileUC.UpdateEmployerProfile(c.Request.Context(), userID, &patch)
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Profile updated", profile)

	default:
		c.Error(apperror.Forbidden("Your role does not permit profile updates"))
	}
}

// GetPublicProfile godoc
// @Summary      Get a public profile
// @Description  Returns the publicly visible subset of a user's profile.
// @Tags         profile
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/{id} [get]
func (h *ProfileHandler) GetPublicProfile(c *gin.Context) {
	userID := c.Param("id")

	profile, err := h.profileUC.GetPublicProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}
