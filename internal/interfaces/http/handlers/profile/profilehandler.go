package profile

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"matchtix/internal/application/profile/usecases"
	"matchtix/internal/shared/errors"
	"matchtix/internal/shared/logger"
	"matchtix/internal/shared/utils"
)

type ProfileHandler struct {
	getProfileUC    usecases.GetProfileExecutor
	updateProfileUC usecases.UpdateProfileExecutor
	logger          logger.Interface
}

func NewProfileHandler(
	getProfileUC usecases.GetProfileExecutor,
	updateProfileUC usecases.UpdateProfileExecutor,
	log logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		getProfileUC:    getProfileUC,
		updateProfileUC: updateProfileUC,
		logger:          log,
	}
}

type UpdateProfileRequest struct {
	FavoriteTeam string `json:"favorite_team" binding:"max=100"`
}

type ProfileResponse struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	FavoriteTeam string    `json:"favorite_team,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// GetProfile handles GET /api/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toProfileResponse(result))
}

// UpdateProfile handles PUT /api/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update profile", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid profile payload", utils.FormatBindingError(err)))
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:       userID,
		FavoriteTeam: req.FavoriteTeam,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", toProfileResponse(result))
}

func toProfileResponse(result *usecases.ProfileResult) ProfileResponse {
	return ProfileResponse{
		ID:           result.UserID,
		Username:     result.Username,
		FavoriteTeam: result.FavoriteTeam,
		CreatedAt:    result.CreatedAt,
	}
}

func authenticatedUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return 0, false
	}
	return userID.(uint), true
}
