package usecases

import (
	"context"
	"time"

	"matchtix/internal/domain/match"
	"matchtix/internal/domain/ticket"
	"matchtix/internal/domain/user"
)

type mockTicketRepository struct {
	saveFunc        func(ctx context.Context, t *ticket.Ticket) error
	getByIDFunc     func(ctx context.Context, id uint) (*ticket.Ticket, error)
	listFunc        func(ctx context.Context) ([]*ticket.Ticket, error)
	listByOwnerFunc func(ctx context.Context, ownerID uint) ([]*ticket.Ticket, error)
	listByMatchFunc func(ctx context.Context, matchNumber string) ([]*ticket.Ticket, error)
	updateFunc      func(ctx context.Context, t *ticket.Ticket) error
	deleteFunc      func(ctx context.Context, id uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*ticket.Ticket, error) {
	if m.listByOwnerFunc != nil {
		return m.listByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByMatch(ctx context.Context, matchNumber string) ([]*ticket.Ticket, error) {
	if m.listByMatchFunc != nil {
		return m.listByMatchFunc(ctx, matchNumber)
	}
	return nil, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockMatchRepository struct {
	listFunc            func(ctx context.Context) ([]*match.Match, error)
	getByNumberFunc     func(ctx context.Context, number string) (*match.Match, error)
	listByDateRangeFunc func(ctx context.Context, from, to time.Time) ([]*match.Match, error)
	listByVenueFunc     func(ctx context.Context, venue string) ([]*match.Match, error)
	seedFunc            func(ctx context.Context, matches []*match.Match) error
	countFunc           func(ctx context.Context) (int64, error)
}

func (m *mockMatchRepository) List(ctx context.Context) ([]*match.Match, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockMatchRepository) GetByNumber(ctx context.Context, number string) (*match.Match, error) {
	if m.getByNumberFunc != nil {
		return m.getByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockMatchRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*match.Match, error) {
	if m.listByDateRangeFunc != nil {
		return m.listByDateRangeFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *mockMatchRepository) ListByVenue(ctx context.Context, venue string) ([]*match.Match, error) {
	if m.listByVenueFunc != nil {
		return m.listByVenueFunc(ctx, venue)
	}
	return nil, nil
}

func (m *mockMatchRepository) Seed(ctx context.Context, matches []*match.Match) error {
	if m.seedFunc != nil {
		return m.seedFunc(ctx, matches)
	}
	return nil
}

func (m *mockMatchRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

type mockUserRepository struct {
	createFunc           func(ctx context.Context, u *user.User) error
	getByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	getByIDsFunc         func(ctx context.Context, ids []uint) ([]*user.User, error)
	getByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	updateFunc           func(ctx context.Context, u *user.User) error
	existsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	countFunc            func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.getByIDsFunc != nil {
		return m.getByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameFunc != nil {
		return m.existsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}
