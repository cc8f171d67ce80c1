package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matchtix/internal/application/auth/usecases"
	"matchtix/internal/shared/config"
	"matchtix/internal/shared/errors"
	"matchtix/internal/shared/logger"
	"matchtix/internal/shared/utils"
)

type AuthHandler struct {
	registerUC    usecases.RegisterExecutor
	loginUC       usecases.LoginExecutor
	logoutUC      usecases.LogoutExecutor
	currentUserUC usecases.CurrentUserExecutor
	cookieConfig  config.CookieConfig
	cookieMaxAge  int
	logger        logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	logoutUC usecases.LogoutExecutor,
	currentUserUC usecases.CurrentUserExecutor,
	authConfig config.AuthConfig,
) *AuthHandler {
	return &AuthHandler{
		registerUC:    registerUC,
		loginUC:       loginUC,
		logoutUC:      logoutUC,
		currentUserUC: currentUserUC,
		cookieConfig:  authConfig.Cookie,
		cookieMaxAge:  authConfig.Session.ExpDays * 24 * 60 * 60,
		logger:        logger.NewLogger(),
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("username and password are required"))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookieConfig, result.Token, h.cookieMaxAge)
	utils.CreatedResponse(c, toAuthResponse(result), "Registration successful")
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("username and password are required"))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookieConfig, result.Token, h.cookieMaxAge)
	utils.SuccessResponse(c, http.StatusOK, "Login successful", toAuthResponse(result))
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := utils.GetSessionToken(c)

	if err := h.logoutUC.Execute(c.Request.Context(), usecases.LogoutCommand{Token: token}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "Logout successful", nil)
}

// CurrentUser handles GET /api/auth/me
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	result, err := h.currentUserUC.Execute(c.Request.Context(), usecases.CurrentUserQuery{
		UserID: userID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toCurrentUserResponse(result))
}
