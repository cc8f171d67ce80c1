package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"matchtix/internal/domain/match"
	"matchtix/internal/domain/ticket"
	"matchtix/internal/infrastructure/metrics"
	"matchtix/internal/shared/errors"
	"matchtix/internal/shared/logger"
	"matchtix/internal/shared/utils"
)

const dateLayout = "2006-01-02"

type CreateTicketCommand struct {
	OwnerID   uint
	OwnerName string

	Name        string
	MatchNumber string
	Date        string
	Venue       string
	Teams       string
	MatchType   string
	Category    string
	Quantity    int
	Info        string
	Price       *decimal.Decimal
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	matchRepo  match.Repository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	matchRepo match.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		matchRepo:  matchRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*TicketResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	refMatch, err := uc.matchRepo.GetByNumber(ctx, cmd.MatchNumber)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("unknown match number", cmd.MatchNumber)
		}
		return nil, err
	}

	date, err := time.ParseInLocation(dateLayout, cmd.Date, time.UTC)
	if err != nil {
		return nil, errors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	// Missing venue, teams and match type fall back to the schedule entry.
	venue := strings.TrimSpace(cmd.Venue)
	if venue == "" {
		venue = refMatch.Venue
	}
	teams := strings.TrimSpace(cmd.Teams)
	if teams == "" {
		teams = refMatch.Teams
	}
	matchType := strings.TrimSpace(cmd.MatchType)
	if matchType == "" {
		matchType = refMatch.MatchType
	}

	newTicket, err := ticket.NewTicket(cmd.OwnerID, cmd.Name, cmd.MatchNumber, date, venue, cmd.Category, cmd.Quantity)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := newTicket.SetTeams(teams); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := newTicket.SetMatchType(matchType); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	newTicket.SetInfo(utils.SanitizeText(cmd.Info))
	if err := newTicket.SetPrice(cmd.Price); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.ticketRepo.Save(ctx, newTicket)
	metrics.TicketOperation("create", err)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"owner_id", cmd.OwnerID,
		"match_number", cmd.MatchNumber,
	)

	return newTicketResult(newTicket, cmd.OwnerName, cmd.OwnerID), nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.OwnerID == 0 {
		return errors.NewValidationError("owner is required")
	}
	if strings.TrimSpace(cmd.Name) == "" {
		return errors.NewValidationError("name is required")
	}
	if err := ticket.ValidateMatchNumber(cmd.MatchNumber); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if strings.TrimSpace(cmd.Date) == "" {
		return errors.NewValidationError("date is required")
	}
	if strings.TrimSpace(cmd.Category) == "" {
		return errors.NewValidationError("ticket category is required")
	}
	if cmd.Quantity < 1 {
		return errors.NewValidationError("quantity must be at least 1")
	}
	return nil
}
