package migration

import (
	"matchtix/internal/infrastructure/persistence/models"
)

// AutoMigrateModels returns every persistent model in dependency order.
// Sessions and tickets reference users, so users come first.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.SessionModel{},
		&models.MatchModel{},
		&models.TicketModel{},
	}
}
