package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchtix/internal/domain/ticket"
	"matchtix/internal/domain/user"
	"matchtix/internal/shared/errors"
	"matchtix/internal/shared/logger"
)

func storedTicket(t *testing.T, id, ownerID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(
		id, ownerID,
		"Opening match", "M1",
		time.Date(2026, time.June, 11, 0, 0, 0, 0, time.UTC),
		"Estadio Azteca, Mexico City",
		"Mexico vs TBD", "Group Stage",
		"Category 1", 2, "", nil,
		time.Now().UTC(), time.Now().UTC(),
	)
	require.NoError(t, err)
	return tk
}

func ownerLookup(t *testing.T) *mockUserRepository {
	t.Helper()
	return &mockUserRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			u, err := user.ReconstructUser(id, "alice", "hash", "", time.Now().UTC(), time.Now().UTC())
			require.NoError(t, err)
			return u, nil
		},
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestUpdateTicketUseCase_Execute(t *testing.T) {
	t.Run("owner can rename and change quantity", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			getByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, 5, 1), nil
			},
		}
		uc := NewUpdateTicketUseCase(ticketRepo, scheduleLookup(t), ownerLookup(t), logger.NewLogger())

		result, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID:    5,
			RequesterID: 1,
			Name:        strPtr("Opening match, upper tier"),
			Quantity:    intPtr(4),
		})

		require.NoError(t, err)
		assert.Equal(t, "Opening match, upper tier", result.Name)
		assert.Equal(t, 4, result.Quantity)
		// Untouched fields carry over.
		assert.Equal(t, "M1", result.MatchNumber)
		assert.Equal(t, "Category 1", result.Category)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		updated := false
		ticketRepo := &mockTicketRepository{
			getByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, 5, 1), nil
			},
			updateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updated = true
				return nil
			},
		}
		uc := NewUpdateTicketUseCase(ticketRepo, scheduleLookup(t), ownerLookup(t), logger.NewLogger())

		_, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID:    5,
			RequesterID: 2,
			Name:        strPtr("hijacked"),
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
		assert.False(t, updated, "ticket must not be persisted on a forbidden update")
	})

	t.Run("missing ticket yields not found", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			getByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}
		uc := NewUpdateTicketUseCase(ticketRepo, scheduleLookup(t), ownerLookup(t), logger.NewLogger())

		_, err := uc.Execute(context.Background(), UpdateTicketCommand{TicketID: 99, RequesterID: 1})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("changing match number revalidates against the schedule", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			getByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, 5, 1), nil
			},
		}
		uc := NewUpdateTicketUseCase(ticketRepo, scheduleLookup(t), ownerLookup(t), logger.NewLogger())

		_, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID:    5,
			RequesterID: 1,
			MatchNumber: strPtr("M999"),
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Contains(t, err.Error(), "unknown match number")
	})

	t.Run("explicit nil price clears the stored price", func(t *testing.T) {
		price := decimal.NewFromInt(250)
		var saved *ticket.Ticket
		ticketRepo := &mockTicketRepository{
			getByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				tk, err := ticket.ReconstructTicket(
					5, 1,
					"Opening match", "M1",
					time.Date(2026, time.June, 11, 0, 0, 0, 0, time.UTC),
					"Estadio Azteca, Mexico City",
					"Mexico vs TBD", "Group Stage",
					"Category 1", 2, "", &price,
					time.Now().UTC(), time.Now().UTC(),
				)
				require.NoError(t, err)
				return tk, nil
			},
			updateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				saved = tk
				return nil
			},
		}
		uc := NewUpdateTicketUseCase(ticketRepo, scheduleLookup(t), ownerLookup(t), logger.NewLogger())

		result, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID:    5,
			RequesterID: 1,
			Price:       nil,
			PriceSet:    true,
		})

		require.NoError(t, err)
		assert.Nil(t, result.Price)
		require.NotNil(t, saved)
		assert.Nil(t, saved.Price())
	})

	t.Run("absent price is left untouched", func(t *testing.T) {
		price := decimal.NewFromInt(250)
		ticketRepo := &mockTicketRepository{
			getByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				tk, err := ticket.ReconstructTicket(
					5, 1,
					"Opening match", "M1",
					time.Date(2026, time.June, 11, 0, 0, 0, 0, time.UTC),
					"Estadio Azteca, Mexico City",
					"Mexico vs TBD", "Group Stage",
					"Category 1", 2, "", &price,
					time.Now().UTC(), time.Now().UTC(),
				)
				require.NoError(t, err)
				return tk, nil
			},
		}
		uc := NewUpdateTicketUseCase(ticketRepo, scheduleLookup(t), ownerLookup(t), logger.NewLogger())

		result, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID:    5,
			RequesterID: 1,
			Quantity:    intPtr(3),
		})

		require.NoError(t, err)
		require.NotNil(t, result.Price)
		assert.True(t, result.Price.Equal(price))
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			getByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, 5, 1), nil
			},
		}
		uc := NewUpdateTicketUseCase(ticketRepo, scheduleLookup(t), ownerLookup(t), logger.NewLogger())

		_, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID:    5,
			RequesterID: 1,
			Quantity:    intPtr(0),
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestDeleteTicketUseCase_Execute(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		var deletedID uint
		ticketRepo := &mockTicketRepository{
			getByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, 5, 1), nil
			},
			deleteFunc: func(ctx context.Context, id uint) error {
				deletedID = id
				return nil
			},
		}
		uc := NewDeleteTicketUseCase(ticketRepo, logger.NewLogger())

		require.NoError(t, uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 5, RequesterID: 1}))
		assert.Equal(t, uint(5), deletedID)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			getByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, 5, 1), nil
			},
			deleteFunc: func(ctx context.Context, id uint) error {
				t.Fatal("delete must not run for a non-owner")
				return nil
			},
		}
		uc := NewDeleteTicketUseCase(ticketRepo, logger.NewLogger())

		err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 5, RequesterID: 2})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("repeat delete yields not found", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			getByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}
		uc := NewDeleteTicketUseCase(ticketRepo, logger.NewLogger())

		err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 5, RequesterID: 1})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestListTicketsUseCase_Execute(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		listFunc: func(ctx context.Context) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{
				storedTicket(t, 1, 1),
				storedTicket(t, 2, 2),
			}, nil
		},
	}
	userRepo := &mockUserRepository{
		getByIDsFunc: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			assert.ElementsMatch(t, []uint{1, 2}, ids)
			now := time.Now().UTC()
			alice, err := user.ReconstructUser(1, "alice", "hash", "", now, now)
			require.NoError(t, err)
			bob, err := user.ReconstructUser(2, "bob", "hash", "", now, now)
			require.NoError(t, err)
			return []*user.User{alice, bob}, nil
		},
	}
	uc := NewListTicketsUseCase(ticketRepo, userRepo, logger.NewLogger())

	results, err := uc.Execute(context.Background(), ListTicketsQuery{RequesterID: 1})

	require.NoError(t, err)
	require.Len(t, results, 2, "reads are not scoped to the requester")
	assert.Equal(t, "alice", results[0].OwnerName)
	assert.True(t, results[0].IsOwner)
	assert.Equal(t, "bob", results[1].OwnerName)
	assert.False(t, results[1].IsOwner)
}
