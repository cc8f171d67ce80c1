package mappers

import (
	"time"

	"gorm.io/datatypes"

	"matchtix/internal/domain/match"
	"matchtix/internal/infrastructure/persistence/models"
)

// MatchMapper handles the conversion between Match domain entities and persistence models.
type MatchMapper interface {
	ToModel(entity *match.Match) *models.MatchModel
	ToDomain(model *models.MatchModel) *match.Match
}

type matchMapper struct{}

// NewMatchMapper creates a new MatchMapper.
func NewMatchMapper() MatchMapper {
	return &matchMapper{}
}

func (m *matchMapper) ToModel(entity *match.Match) *models.MatchModel {
	if entity == nil {
		return nil
	}
	return &models.MatchModel{
		Number:    entity.Number,
		Date:      datatypes.Date(entity.Date),
		Venue:     entity.Venue,
		Teams:     entity.Teams,
		MatchType: entity.MatchType,
	}
}

func (m *matchMapper) ToDomain(model *models.MatchModel) *match.Match {
	if model == nil {
		return nil
	}
	return &match.Match{
		Number:    model.Number,
		Date:      time.Time(model.Date),
		Venue:     model.Venue,
		Teams:     model.Teams,
		MatchType: model.MatchType,
	}
}
