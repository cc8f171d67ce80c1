package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matchtix/internal/application/chat/usecases"
	"matchtix/internal/shared/errors"
	"matchtix/internal/shared/logger"
	"matchtix/internal/shared/utils"
)

type ChatHandler struct {
	processMessageUC usecases.ProcessMessageExecutor
	logger           logger.Interface
}

func NewChatHandler(processMessageUC usecases.ProcessMessageExecutor, log logger.Interface) *ChatHandler {
	return &ChatHandler{processMessageUC: processMessageUC, logger: log}
}

type ChatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// ProcessMessage handles POST /api/chat
func (h *ChatHandler) ProcessMessage(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for chat", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("message is required"))
		return
	}

	result, err := h.processMessageUC.Execute(c.Request.Context(), usecases.ProcessMessageCommand{
		UserID:   userID.(uint),
		Username: c.GetString("username"),
		Message:  req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ChatResponse{Reply: result.Reply})
}
