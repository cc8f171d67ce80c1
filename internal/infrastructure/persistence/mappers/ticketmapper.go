package mappers

import (
	"time"

	"gorm.io/datatypes"

	"matchtix/internal/domain/ticket"
	"matchtix/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(entity *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type ticketMapper struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &ticketMapper{}
}

func (m *ticketMapper) ToModel(entity *ticket.Ticket) *models.TicketModel {
	if entity == nil {
		return nil
	}
	return &models.TicketModel{
		ID:          entity.ID(),
		OwnerID:     entity.OwnerID(),
		Name:        entity.Name(),
		MatchNumber: entity.MatchNumber(),
		Date:        datatypes.Date(entity.Date()),
		Venue:       entity.Venue(),
		Teams:       entity.Teams(),
		MatchType:   entity.MatchType(),
		Category:    entity.Category(),
		Quantity:    entity.Quantity(),
		Info:        entity.Info(),
		Price:       entity.Price(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *ticketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}
	return ticket.ReconstructTicket(
		model.ID,
		model.OwnerID,
		model.Name,
		model.MatchNumber,
		time.Time(model.Date),
		model.Venue,
		model.Teams,
		model.MatchType,
		model.Category,
		model.Quantity,
		model.Info,
		model.Price,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
