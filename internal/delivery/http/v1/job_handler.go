package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.ListJobs)
		publicJobs.GET("/:id", handler.GetJob)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.CreateJob)
		protectedJobs.PUT("/:id", handler.UpdateJob)
		protectedJobs.DELETE("/:id", handler.DeleteJob)
	}

	protected.GET("/employers/me/jobs", handler.ListMyJobs)
}

type JobRequest struct {
	Title          string            `json:"title" binding:"required,min=3,max=150"`
	Description    string            `json:"description" binding:"max=5000"`
	Location       string            `json:"location" binding:"max=100"`
	SalaryMin      float64           `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax      float64           `json:"salary_max" binding:"omitempty,gte=0"`
	EmploymentType string            `json:"employment_type" binding:"omitempty,oneof=full-time part-time contract internship"`
	Skills         domain.StringList `json:"skills"`
}

func (r *JobRequest) toDomain() *domain.Job {
	return &domain.Job{
		Title:          r.Title,
		Description:    r.Description,
		Location:       r.Location,
		SalaryMin:      r.SalaryMin,
		SalaryMax:      r.SalaryMax,
		EmploymentType: r.EmploymentType,
		Skills:         r.Skills,
	}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	job := req.toDomain()

	if err := h.jobUC.CreateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	page, pageSize := paginationParams(c)

	jobs, total, err := h.jobUC.ListJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *JobHandler) ListMyJobs(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	page, pageSize := paginationParams(c)

	jobs, total, err := h.jobUC.ListMyJobs(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	job := req.toDomain()
	job.ID = id

	if err := h.jobUC.UpdateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}

func paginationParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
