package usecases

import (
	"context"

	"matchtix/internal/domain/ticket"
	"matchtix/internal/domain/user"
	"matchtix/internal/shared/logger"
)

type ListTicketsQuery struct {
	RequesterID uint
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Execute returns every ticket in the system annotated with its owner's
// username. Reads are not scoped to the requester; any signed-in user
// sees the full list.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*TicketResult, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	names, err := uc.ownerNames(ctx, tickets)
	if err != nil {
		// Owner annotation is best effort; the list itself is the payload.
		uc.logger.Warnw("failed to resolve ticket owners", "error", err)
		names = map[uint]string{}
	}

	results := make([]*TicketResult, 0, len(tickets))
	for _, t := range tickets {
		results = append(results, newTicketResult(t, names[t.OwnerID()], query.RequesterID))
	}
	return results, nil
}

func (uc *ListTicketsUseCase) ownerNames(ctx context.Context, tickets []*ticket.Ticket) (map[uint]string, error) {
	seen := make(map[uint]struct{}, len(tickets))
	ids := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		if _, ok := seen[t.OwnerID()]; ok {
			continue
		}
		seen[t.OwnerID()] = struct{}{}
		ids = append(ids, t.OwnerID())
	}
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}

	owners, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(owners))
	for _, owner := range owners {
		names[owner.ID()] = owner.Username()
	}
	return names, nil
}
