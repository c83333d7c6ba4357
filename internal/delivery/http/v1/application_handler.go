package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	protected.POST("/jobs/:id/apply", handler.Apply)
	protected.GET("/jobs/:id/applications", handler.ListForJob)
	protected.GET("/candidates/me/applications", handler.ListMine)
	protected.PATCH("/applications/:id/status", handler.UpdateStatus)
}

type ApplyRequest struct {
	Resume      string `json:"resume" binding:"max=500"`
	CoverLetter string `json:"cover_letter" binding:"max=2000"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=applied reviewed accepted rejected"`
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	app, err := h.applicationUC.ApplyToJob(c.Request.Context(), userID, jobID, req.Resume, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	apps, err := h.applicationUC.GetMyApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	apps, err := h.applicationUC.ListByJobID(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application id"))
		return
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.applicationUC.UpdateApplicationStatus(c.Request.Context(), userID, id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}
