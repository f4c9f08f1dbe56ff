package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vignesh-ravichandran/Crimson/internal/models/request_models"
	"github.com/vignesh-ravichandran/Crimson/internal/services"
	"github.com/vignesh-ravichandran/Crimson/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{accountService: accountService}
}

// GoogleLogin godoc
// @Summary Start Google OAuth login
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /auth/google/login [post]
func (a *AccountController) GoogleLogin(c *gin.Context) {
	url, err := a.accountService.GoogleLoginURL(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"url": url}, "Redirect to Google to continue")
}

// GoogleCallback godoc
// @Summary Complete Google OAuth login
// @Tags Auth
// @Produce json
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 200 {object} response_models.AuthResponse
// @Router /auth/google/callback [get]
func (a *AccountController) GoogleCallback(c *gin.Context) {
	auth, err := a.accountService.GoogleCallback(c.Request.Context(), c.Query("state"), c.Query("code"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, auth, "Logged in successfully")
}

// Register godoc
// @Summary Register with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Email, password, username"
// @Success 201 {object} response_models.AuthResponse
// @Router /auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email, password and username are required")
		return
	}

	auth, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, auth, "Account created successfully")
}

// Login godoc
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Email and password"
// @Success 200 {object} response_models.AuthResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	auth, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, auth, "Logged in successfully")
}

// GetMe godoc
// @Summary Get own profile
// @Tags User
// @Produce json
// @Success 200 {object} response_models.AccountResponse
// @Security BearerAuth
// @Router /users/me [get]
func (a *AccountController) GetMe(c *gin.Context) {
	accountID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	profile, err := a.accountService.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// UpdateMe godoc
// @Summary Update own profile
// @Tags User
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} response_models.AccountResponse
// @Security BearerAuth
// @Router /users/me [put]
func (a *AccountController) UpdateMe(c *gin.Context) {
	accountID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := a.accountService.UpdateProfile(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Profile updated successfully")
}
