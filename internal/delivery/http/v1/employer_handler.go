package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	employerUC domain.EmployerUsecase
}

// NewEmployerHandler registers employer profile routes
func NewEmployerHandler(protected *gin.RouterGroup, employerUC domain.EmployerUsecase) {
	handler := &EmployerHandler{employerUC: employerUC}

	employers := protected.Group("/employers")
	{
		employers.GET("/profile", handler.GetProfile)
		employers.PUT("/profile", handler.UpdateProfile)
	}
}

type UpdateCompanyProfileRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// GetProfile godoc
// @Summary      Get my company profile
// @Tags         employers
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.EmployerProfile}
// @Failure      404  {object}  response.Response
// @Router       /employers/profile [get]
// @Security     BearerAuth
func (h *EmployerHandler) GetProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers have a company profile"))
		return
	}

	profile, err := h.employerUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateProfile godoc
// @Summary      Update my company profile
// @Tags         employers
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateCompanyProfileRequest  true  "Company profile"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /employers/profile [put]
// @Security     BearerAuth
func (h *EmployerHandler) UpdateProfile(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers have a company profile"))
		return
	}

	var req UpdateCompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.EmployerProfile{
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		Description: req.Description,
		Location:    req.Location,
	}

	if err := h.employerUC.UpdateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", profile)
}
