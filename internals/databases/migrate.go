// file: internals/databases/migrate.go
package database

import (
	"gorm.io/gorm"

	dayinfoModel "schoolcal_backend/internals/features/calendar/dayinfo/model"
	eventModel "schoolcal_backend/internals/features/calendar/events/model"
	materialModel "schoolcal_backend/internals/features/calendar/materials/model"
	settingsModel "schoolcal_backend/internals/features/calendar/settings/model"
)

// Migrate bootstraps the schema. One-time setup, outside the request path.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&eventModel.Event{},
		&materialModel.Material{},
		&dayinfoModel.DaySchedule{},
		&dayinfoModel.DayType{},
		&dayinfoModel.DateConfig{},
		&settingsModel.SchoolSettings{},
	)
}
