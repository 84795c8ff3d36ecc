package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers auth routes
func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, loginLimiter gin.HandlerFunc, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register/seeker", handler.RegisterSeeker)
		publicAuth.POST("/register/employer", handler.RegisterEmployer)
		publicAuth.POST("/login", loginLimiter, handler.Login)
		publicAuth.GET("/security-question", handler.GetSecurityQuestion)
		publicAuth.POST("/recover-password", handler.RecoverPassword)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
		protectedAuth.PUT("/password", handler.UpdatePassword)
	}
}

type RegisterSeekerRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,valid_email"`
	Password         string `json:"password" binding:"required,valid_password"`
	SecurityQuestion string `json:"security_question" binding:"required"`
	SecurityAnswer   string `json:"security_answer" binding:"required"`
	Phone            string `json:"phone"`
}

type RegisterEmployerRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,valid_email"`
	Password         string `json:"password" binding:"required,valid_password"`
	SecurityQuestion string `json:"security_question" binding:"required"`
	SecurityAnswer   string `json:"security_answer" binding:"required"`
	CompanyName      string `json:"company_name" binding:"required"`
	Industry         string `json:"industry"`
	Location         string `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type RecoverPasswordRequest struct {
	Email          string `json:"email" binding:"required,email"`
	SecurityAnswer string `json:"security_answer" binding:"required"`
	NewPassword    string `json:"new_password" binding:"required"`
}

// RegisterSeeker godoc
// @Summary      Register a job seeker
// @Description  Create a job seeker account with an empty resume profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterSeekerRequest  true  "Registration details"
// @Success      201  {object}  response.Response{data=domain.User}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/register/seeker [post]
func (h *AuthHandler) RegisterSeeker(c *gin.Context) {
	var req RegisterSeekerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user := &domain.User{
		Name:             req.Name,
		Email:            req.Email,
		SecurityQuestion: req.SecurityQuestion,
		SecurityAnswer:   req.SecurityAnswer,
	}
	profile := &domain.SeekerProfile{Phone: req.Phone}

	created, err := h.authUC.RegisterSeeker(c.Request.Context(), user, req.Password, profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", created)
}

// RegisterEmployer godoc
// @Summary      Register an employer
// @Description  Create an employer account with a company profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterEmployerRequest  true  "Registration details"
// @Success      201  {object}  response.Response{data=domain.User}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/register/employer [post]
func (h *AuthHandler) RegisterEmployer(c *gin.Context) {
	var req RegisterEmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user := &domain.User{
		Name:             req.Name,
		Email:            req.Email,
		SecurityQuestion: req.SecurityQuestion,
		SecurityAnswer:   req.SecurityAnswer,
	}
	profile := &domain.EmployerProfile{
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		Location:    req.Location,
	}

	created, err := h.authUC.RegisterEmployer(c.Request.Context(), user, req.Password, profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", created)
}

// Login godoc
// @Summary      Login
// @Description  Authenticate with email and password, returns a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, token, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved", user)
}

// UpdatePassword godoc
// @Summary      Change password
// @Description  Change the current user's password after verifying the current one
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      UpdatePasswordRequest  true  "Password change"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/password [put]
// @Security     BearerAuth
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	email := c.GetString(string(domain.KeyUserEmail))

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.UpdatePassword(c.Request.Context(), email, req.CurrentPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Password updated successfully", nil)
}

// GetSecurityQuestion godoc
// @Summary      Fetch security question
// @Description  Returns the security question for an account, used by password recovery
// @Tags         auth
// @Produce      json
// @Param        email  query     string  true  "Account email"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /auth/security-question [get]
func (h *AuthHandler) GetSecurityQuestion(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.Error(apperror.BadRequest("email query parameter is required"))
		return
	}

	question, err := h.authUC.GetSecurityQuestion(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Security question retrieved", gin.H{"security_question": question})
}

// RecoverPassword godoc
// @Summary      Recover password
// @Description  Reset a forgotten password by answering the security question
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RecoverPasswordRequest  true  "Recovery details"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/recover-password [post]
func (h *AuthHandler) RecoverPassword(c *gin.Context) {
	var req RecoverPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.RecoverPassword(c.Request.Context(), req.Email, req.SecurityAnswer, req.NewPassword); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Password reset successfully", nil)
}
