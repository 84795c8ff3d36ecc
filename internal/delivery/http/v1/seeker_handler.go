package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SeekerHandler struct {
	seekerUC domain.SeekerUsecase
}

// NewSeekerHandler registers seeker resume routes
func NewSeekerHandler(protected *gin.RouterGroup, seekerUC domain.SeekerUsecase) {
	handler := &SeekerHandler{seekerUC: seekerUC}

	seekers := protected.Group("/seekers")
	{
		seekers.GET("/profile", handler.GetProfile)
		seekers.PUT("/profile", handler.UpdateProfile)
	}
}

// UpdateProfileRequest carries the full resume. The stored profile is
// replaced wholesale with this payload; omitted collections come back
// empty.
type UpdateProfileRequest struct {
	Phone      string                   `json:"phone"`
	Objectives []string                 `json:"objectives"`
	Education  []domain.EducationEntry  `json:"education"`
	Experience []domain.ExperienceEntry `json:"experience"`
	Skills     []domain.Skill           `json:"skills"`
	Projects   []domain.Project         `json:"projects"`
}

// GetProfile godoc
// @Summary      Get my resume profile
// @Tags         seekers
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.SeekerProfile}
// @Failure      404  {object}  response.Response
// @Router       /seekers/profile [get]
// @Security     BearerAuth
func (h *SeekerHandler) GetProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleJobSeeker {
		c.Error(apperror.Forbidden("Only job seekers have a resume profile"))
		return
	}

	profile, err := h.seekerUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateProfile godoc
// @Summary      Replace my resume profile
// @Description  Replaces the whole resume (phone plus all collections) atomically
// @Tags         seekers
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Full resume"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /seekers/profile [put]
// @Security     BearerAuth
func (h *SeekerHandler) UpdateProfile(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleJobSeeker {
		c.Error(apperror.Forbidden("Only job seekers have a resume profile"))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.SeekerProfile{
		Phone:      req.Phone,
		Objectives: req.Objectives,
		Education:  req.Education,
		Experience: req.Experience,
		Skills:     req.Skills,
		Projects:   req.Projects,
	}

	if err := h.seekerUC.UpdateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", profile)
}
