package v1

import (
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	// Seeker routes
	protected.POST("/jobs/:id/apply", handler.Apply)
	applications := protected.Group("/applications")
	{
		applications.GET("/mine", handler.ListMyApplications)
		applications.PATCH("/:id/withdraw", handler.Withdraw)

		// Employer routes
		applications.PATCH("/:id/status", handler.UpdateStatus)
	}
	protected.GET("/jobs/:id/applications", handler.ListJobApplications)
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=SHORTLISTED REJECTED"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit an application for an open job. A seeker may apply to a job at most once, ever; a withdrawn application still counts.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int           true   "Job ID"
// @Param        body  body      ApplyRequest  false  "Optional cover letter"
// @Success      201  {object}  response.Response{data=domain.Application}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleJobSeeker {
		c.Error(apperror.Forbidden("Only job seekers can apply to jobs"))
		return
	}

	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var req ApplyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), jobID, userID, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// ListMyApplications godoc
// @Summary      List my applications
// @Description  All of the seeker's applications in every state, with the job title when the job still exists
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Router       /applications/mine [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleJobSeeker {
		c.Error(apperror.Forbidden("Only job seekers have applications"))
		return
	}

	apps, err := h.applicationUC.ListBySeeker(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Description  Moves the application to WITHDRAWN and notifies the employer. Withdrawing twice is rejected.
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/withdraw [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleJobSeeker {
		c.Error(apperror.Forbidden("Only job seekers can withdraw applications"))
		return
	}

	appID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	if err := h.applicationUC.Withdraw(c.Request.Context(), userID, appID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application withdrawn successfully", nil)
}

// UpdateStatus godoc
// @Summary      Decide on an application
// @Description  Set an application to SHORTLISTED or REJECTED and notify the seeker
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                             true  "Application ID"
// @Param        body  body      UpdateApplicationStatusRequest  true  "New status"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can update application status"))
		return
	}

	appID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.applicationUC.UpdateStatus(c.Request.Context(), userID, appID, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}

// ListJobApplications godoc
// @Summary      List applications for my job
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can view job applications"))
		return
	}

	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	apps, err := h.applicationUC.ListByJob(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}
