package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"matchtix/internal/domain/match"
	"matchtix/internal/infrastructure/persistence/mappers"
	"matchtix/internal/infrastructure/persistence/models"
	"matchtix/internal/shared/errors"
)

type MatchRepository struct {
	db     *gorm.DB
	mapper mappers.MatchMapper
}

func NewMatchRepository(db *gorm.DB) match.Repository {
	return &MatchRepository{
		db:     db,
		mapper: mappers.NewMatchMapper(),
	}
}

// List returns the schedule sorted numerically by the digits after the "M"
// prefix; lexical ordering would put M10 before M2.
func (r *MatchRepository) List(ctx context.Context) ([]*match.Match, error) {
	var matchModels []models.MatchModel
	if err := r.db.WithContext(ctx).Find(&matchModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	matches := r.toDomainSlice(matchModels)
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Ordinal() < matches[j].Ordinal()
	})
	return matches, nil
}

func (r *MatchRepository) GetByNumber(ctx context.Context, number string) (*match.Match, error) {
	var model models.MatchModel
	err := r.db.WithContext(ctx).Where("number = ?", number).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("match not found")
		}
		return nil, fmt.Errorf("failed to get match by number: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *MatchRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*match.Match, error) {
	var matchModels []models.MatchModel
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", datatypes.Date(from), datatypes.Date(to)).
		Find(&matchModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list matches by date range: %w", err)
	}
	return r.toDomainSlice(matchModels), nil
}

func (r *MatchRepository) ListByVenue(ctx context.Context, venue string) ([]*match.Match, error) {
	var matchModels []models.MatchModel
	err := r.db.WithContext(ctx).
		Where("venue LIKE ?", "%"+venue+"%").
		Find(&matchModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list matches by venue: %w", err)
	}
	return r.toDomainSlice(matchModels), nil
}

// Seed upserts the schedule keyed by match number so repeated startups
// leave exactly one row per match.
func (r *MatchRepository) Seed(ctx context.Context, matches []*match.Match) error {
	if len(matches) == 0 {
		return nil
	}

	matchModels := make([]models.MatchModel, 0, len(matches))
	for _, m := range matches {
		matchModels = append(matchModels, *r.mapper.ToModel(m))
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "number"}},
		DoUpdates: clause.AssignmentColumns([]string{"date", "venue", "teams", "match_type"}),
	}).Create(&matchModels).Error
	if err != nil {
		return fmt.Errorf("failed to seed matches: %w", err)
	}
	return nil
}

func (r *MatchRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.MatchModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

func (r *MatchRepository) toDomainSlice(matchModels []models.MatchModel) []*match.Match {
	matches := make([]*match.Match, 0, len(matchModels))
	for i := range matchModels {
		matches = append(matches, r.mapper.ToDomain(&matchModels[i]))
	}
	return matches
}
