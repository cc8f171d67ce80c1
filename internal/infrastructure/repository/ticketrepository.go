package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"matchtix/internal/domain/ticket"
	"matchtix/internal/infrastructure/persistence/mappers"
	"matchtix/internal/infrastructure/persistence/models"
	"matchtix/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) ticket.Repository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}
	return t.SetID(model.ID)
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to get ticket by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	err := r.db.WithContext(ctx).Order("date DESC").Find(&ticketModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return r.toDomainSlice(ticketModels)
}

func (r *TicketRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).
		Order("date DESC").
		Find(&ticketModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets by owner: %w", err)
	}
	return r.toDomainSlice(ticketModels)
}

func (r *TicketRepository) ListByMatch(ctx context.Context, matchNumber string) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	err := r.db.WithContext(ctx).Where("match_number = ?", matchNumber).
		Find(&ticketModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets by match: %w", err)
	}
	return r.toDomainSlice(ticketModels)
}

// Update writes all mutable ticket fields inside a single transaction so
// concurrent edits of the same ticket cannot interleave partial writes.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.TicketModel{}).
			Where("id = ?", model.ID).
			Updates(map[string]interface{}{
				"name":         model.Name,
				"match_number": model.MatchNumber,
				"date":         model.Date,
				"venue":        model.Venue,
				"teams":        model.Teams,
				"match_type":   model.MatchType,
				"category":     model.Category,
				"quantity":     model.Quantity,
				"info":         model.Info,
				"price":        model.Price,
				"updated_at":   model.UpdatedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("ticket not found")
		}
		return nil
	})
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.TicketModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) toDomainSlice(ticketModels []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map ticket %d: %w", ticketModels[i].ID, err)
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
