package usecases

import (
	"context"
	"strings"

	"matchtix/internal/domain/match"
	"matchtix/internal/domain/ticket"
	"matchtix/internal/domain/user"
	"matchtix/internal/infrastructure/assistant"
	"matchtix/internal/shared/errors"
	"matchtix/internal/shared/logger"
	"matchtix/internal/shared/utils"
)

const systemPrompt = `You are a helpful assistant for a FIFA 2026 World Cup ticket tracking service.
Answer questions about the user's tickets, the match schedule, venues, and which
other users hold tickets for a given match. Use only the context provided below;
if the context does not contain the answer, say so.`

// cannedReply is returned when no assistant backend is configured.
const cannedReply = "The assistant is not configured. Ask your administrator to set an API key to enable chat."

type ProcessMessageCommand struct {
	UserID   uint
	Username string
	Message  string
}

type ChatResult struct {
	Reply string
}

type ProcessMessageUseCase struct {
	client     assistant.Client
	ticketRepo ticket.Repository
	matchRepo  match.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewProcessMessageUseCase(
	client assistant.Client,
	ticketRepo ticket.Repository,
	matchRepo match.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ProcessMessageUseCase {
	return &ProcessMessageUseCase{
		client:     client,
		ticketRepo: ticketRepo,
		matchRepo:  matchRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ProcessMessageUseCase) Execute(ctx context.Context, cmd ProcessMessageCommand) (*ChatResult, error) {
	message := utils.SanitizeText(cmd.Message)
	if message == "" {
		return nil, errors.NewValidationError("message is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("requester is required")
	}

	if !uc.client.Enabled() {
		return &ChatResult{Reply: cannedReply}, nil
	}

	contextBlock := uc.buildContext(ctx, cmd.UserID, cmd.Username, message)

	reply, err := uc.client.Complete(ctx, []assistant.Message{
		{Role: "system", Content: systemPrompt + "\n\n" + contextBlock},
		{Role: "user", Content: message},
	})
	if err != nil {
		uc.logger.Errorw("assistant request failed", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("assistant request failed")
	}

	return &ChatResult{Reply: strings.TrimSpace(reply)}, nil
}
