package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"matchtix/internal/domain/match"
	"matchtix/internal/domain/ticket"
	"matchtix/internal/domain/user"
	"matchtix/internal/infrastructure/metrics"
	"matchtix/internal/shared/errors"
	"matchtix/internal/shared/logger"
	"matchtix/internal/shared/utils"
)

// UpdateTicketCommand applies a partial update; nil fields keep their
// current values. Price is special: PriceSet marks whether the field
// was supplied at all, so a nil Price with PriceSet clears the stored
// price while an absent field leaves it alone.
type UpdateTicketCommand struct {
	TicketID    uint
	RequesterID uint

	Name        *string
	MatchNumber *string
	Date        *string
	Venue       *string
	Teams       *string
	MatchType   *string
	Category    *string
	Quantity    *int
	Info        *string
	Price       *decimal.Decimal
	PriceSet    bool
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	matchRepo  match.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	matchRepo match.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		matchRepo:  matchRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.RequesterID == 0 {
		return nil, errors.NewValidationError("requester is required")
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if !existing.IsOwnedBy(cmd.RequesterID) {
		uc.logger.Warnw("rejected ticket update by non-owner",
			"ticket_id", cmd.TicketID,
			"owner_id", existing.OwnerID(),
			"requester_id", cmd.RequesterID,
		)
		return nil, errors.NewForbiddenError("you do not own this ticket")
	}

	if err := uc.applyChanges(ctx, existing, cmd); err != nil {
		return nil, err
	}

	err = uc.ticketRepo.Update(ctx, existing)
	metrics.TicketOperation("update", err)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", existing.ID(), "owner_id", existing.OwnerID())

	return newTicketResult(existing, uc.ownerName(ctx, existing.OwnerID()), cmd.RequesterID), nil
}

func (uc *UpdateTicketUseCase) applyChanges(ctx context.Context, t *ticket.Ticket, cmd UpdateTicketCommand) error {
	if cmd.Name != nil {
		if err := t.Rename(*cmd.Name); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	matchNumber := t.MatchNumber()
	date := t.Date()
	venue := t.Venue()
	matchFieldsTouched := false

	var refMatch *match.Match
	if cmd.MatchNumber != nil && *cmd.MatchNumber != t.MatchNumber() {
		if err := ticket.ValidateMatchNumber(*cmd.MatchNumber); err != nil {
			return errors.NewValidationError(err.Error())
		}
		ref, err := uc.matchRepo.GetByNumber(ctx, *cmd.MatchNumber)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewValidationError("unknown match number", *cmd.MatchNumber)
			}
			return err
		}
		refMatch = ref
		matchNumber = ref.Number
		matchFieldsTouched = true
	}
	if cmd.Date != nil {
		parsed, err := time.ParseInLocation(dateLayout, *cmd.Date, time.UTC)
		if err != nil {
			return errors.NewValidationError("date must be in YYYY-MM-DD format")
		}
		date = parsed
		matchFieldsTouched = true
	}
	if cmd.Venue != nil {
		venue = *cmd.Venue
		matchFieldsTouched = true
	} else if refMatch != nil {
		venue = refMatch.Venue
	}

	if matchFieldsTouched {
		if err := t.ChangeMatch(matchNumber, date, venue); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.Teams != nil {
		if err := t.SetTeams(*cmd.Teams); err != nil {
			return errors.NewValidationError(err.Error())
		}
	} else if refMatch != nil {
		if err := t.SetTeams(refMatch.Teams); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.MatchType != nil {
		if err := t.SetMatchType(*cmd.MatchType); err != nil {
			return errors.NewValidationError(err.Error())
		}
	} else if refMatch != nil {
		if err := t.SetMatchType(refMatch.MatchType); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Category != nil {
		if err := t.ChangeCategory(*cmd.Category); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Quantity != nil {
		if err := t.ChangeQuantity(*cmd.Quantity); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Info != nil {
		t.SetInfo(utils.SanitizeText(*cmd.Info))
	}
	if cmd.PriceSet {
		if err := t.SetPrice(cmd.Price); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	return nil
}

func (uc *UpdateTicketUseCase) ownerName(ctx context.Context, ownerID uint) string {
	owner, err := uc.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return ""
	}
	return owner.Username()
}
