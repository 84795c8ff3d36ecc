package v1

import (
	"context"
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// NewJobHandler registers job routes
func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Public routes: browsing requires no account
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("/search", handler.Search)
		publicJobs.GET("/:id", handler.GetJob)
	}

	// Employer routes
	jobs := protected.Group("/jobs")
	{
		jobs.POST("", handler.PostJob)
		jobs.GET("/mine", handler.ListMyJobs)
		jobs.PUT("/:id", handler.UpdateJob)
		jobs.PATCH("/:id/close", handler.CloseJob)
		jobs.PATCH("/:id/reopen", handler.ReopenJob)
		jobs.DELETE("/:id", handler.DeleteJob)
	}
}

type JobRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description" binding:"required"`
	Requirements    string `json:"requirements"`
	Location        string `json:"location" binding:"required"`
	SalaryRange     string `json:"salary_range"`
	JobType         string `json:"job_type" binding:"required"`
	ExperienceYears int    `json:"experience_years" binding:"min=0"`
}

// PostJob godoc
// @Summary      Post a job
// @Description  Create a new job posting; it is immediately open for applications
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job details"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) PostJob(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can post jobs"))
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		EmployerID:      userID,
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Location:        req.Location,
		SalaryRange:     req.SalaryRange,
		JobType:         req.JobType,
		ExperienceYears: req.ExperienceYears,
	}

	if err := h.jobUC.PostJob(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posted successfully", job)
}

// Search godoc
// @Summary      Search open jobs
// @Description  Filter open jobs by keyword, location, type, experience ceiling and company name. All criteria are optional and combined with AND.
// @Tags         jobs
// @Produce      json
// @Param        keyword         query  string  false  "Matched against title and description"
// @Param        location        query  string  false  "Location substring"
// @Param        job_type        query  string  false  "Job type"
// @Param        max_experience  query  int     false  "Maximum required experience in years"
// @Param        company         query  string  false  "Company name substring"
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Router       /jobs/search [get]
func (h *JobHandler) Search(c *gin.Context) {
	filter := domain.JobSearchFilter{
		Keyword:     c.Query("keyword"),
		Location:    c.Query("location"),
		JobType:     c.Query("job_type"),
		CompanyName: c.Query("company"),
	}

	if raw := c.Query("max_experience"); raw != "" {
		maxExp, err := strconv.Atoi(raw)
		if err != nil || maxExp < 0 {
			c.Error(apperror.BadRequest("max_experience must be a non-negative integer"))
			return
		}
		filter.MaxExperience = &maxExp
	}

	jobs, err := h.jobUC.Search(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// GetJob godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// ListMyJobs godoc
// @Summary      List my job postings
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Router       /jobs/mine [get]
// @Security     BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers have job postings"))
		return
	}

	jobs, err := h.jobUC.ListByEmployer(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// UpdateJob godoc
// @Summary      Update a job posting
// @Description  Replace the editable fields of one of my postings; status is untouched
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int         true  "Job ID"
// @Param        job  body      JobRequest  true  "Job details"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can update jobs"))
		return
	}

	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		ID:              jobID,
		EmployerID:      userID,
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Location:        req.Location,
		SalaryRange:     req.SalaryRange,
		JobType:         req.JobType,
		ExperienceYears: req.ExperienceYears,
	}

	if err := h.jobUC.UpdateJob(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated successfully", job)
}

// CloseJob godoc
// @Summary      Close a job posting
// @Description  Closed jobs stop accepting applications; closing twice is a no-op
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id}/close [patch]
// @Security     BearerAuth
func (h *JobHandler) CloseJob(c *gin.Context) {
	h.setStatus(c, h.jobUC.CloseJob, "Job closed successfully")
}

// ReopenJob godoc
// @Summary      Reopen a closed job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id}/reopen [patch]
// @Security     BearerAuth
func (h *JobHandler) ReopenJob(c *gin.Context) {
	h.setStatus(c, h.jobUC.ReopenJob, "Job reopened successfully")
}

// DeleteJob godoc
// @Summary      Delete a job posting
// @Description  Hard delete; existing applications keep their rows but lose the job title
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	h.setStatus(c, h.jobUC.DeleteJob, "Job deleted successfully")
}

func (h *JobHandler) setStatus(c *gin.Context, op func(ctx context.Context, employerID, jobID int64) error, message string) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can manage jobs"))
		return
	}

	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	if err := op(c.Request.Context(), userID, jobID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, message, nil)
}
