package usecases

import (
	"context"

	"matchtix/internal/domain/ticket"
	"matchtix/internal/infrastructure/metrics"
	"matchtix/internal/shared/errors"
	"matchtix/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID    uint
	RequesterID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

// Execute removes the requester's ticket. Deleting an ID that does not
// exist returns not found, so a repeated delete fails cleanly.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.RequesterID == 0 {
		return errors.NewValidationError("requester is required")
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}
	if !existing.IsOwnedBy(cmd.RequesterID) {
		uc.logger.Warnw("rejected ticket delete by non-owner",
			"ticket_id", cmd.TicketID,
			"owner_id", existing.OwnerID(),
			"requester_id", cmd.RequesterID,
		)
		return errors.NewForbiddenError("you do not own this ticket")
	}

	err = uc.ticketRepo.Delete(ctx, cmd.TicketID)
	metrics.TicketOperation("delete", err)
	if err != nil {
		return err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "owner_id", cmd.RequesterID)
	return nil
}
