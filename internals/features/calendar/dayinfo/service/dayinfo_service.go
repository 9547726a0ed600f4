// file: internals/features/calendar/dayinfo/service/dayinfo_service.go
package service

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "schoolcal_backend/internals/features/calendar/dayinfo/model"
	helper "schoolcal_backend/internals/helpers"
)

/* =========================================================
   Write policies for the singleton-per-date tables.

   day_schedules / day_types use clear-on-null: writing a null value
   deletes the row for that date (deleting a missing row still succeeds).

   date_configs uses coalesce-merge: each field of a write either
   overwrites (present) or keeps the stored value (absent), decided inside
   one INSERT ... ON CONFLICT DO UPDATE so concurrent writers for the same
   date cannot interleave a read-then-write.

   The two tables look alike but their write semantics differ on purpose;
   keep them separate.
   ========================================================= */

// PutDaySchedule writes or clears the A/B letter for a date.
// Returns (nil, nil) when the row was cleared.
func PutDaySchedule(db *gorm.DB, date time.Time, value *string) (*model.DaySchedule, error) {
	if value == nil {
		if err := db.Where("day_schedule_date = ?", date).
			Delete(&model.DaySchedule{}).Error; err != nil {
			return nil, helper.NewStoreError(err)
		}
		return nil, nil
	}

	m := model.DaySchedule{
		DayScheduleDate:  date,
		DayScheduleValue: *value,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "day_schedule_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"day_schedule_value":      *value,
			"day_schedule_updated_at": time.Now(),
		}),
	}).Create(&m).Error; err != nil {
		return nil, helper.NewStoreError(err)
	}
	return &m, nil
}

// PutDayType writes or clears the free-form day label for a date.
func PutDayType(db *gorm.DB, date time.Time, value *string) (*model.DayType, error) {
	if value == nil {
		if err := db.Where("day_type_date = ?", date).
			Delete(&model.DayType{}).Error; err != nil {
			return nil, helper.NewStoreError(err)
		}
		return nil, nil
	}

	m := model.DayType{
		DayTypeDate:  date,
		DayTypeValue: *value,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "day_type_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"day_type_value":      *value,
			"day_type_updated_at": time.Now(),
		}),
	}).Create(&m).Error; err != nil {
		return nil, helper.NewStoreError(err)
	}
	return &m, nil
}

// MergeDateConfig applies a partial write for a date. On first write,
// absent fields take their defaults (NULL / false); on conflict each
// field coalesces with the stored value in a single statement.
func MergeDateConfig(db *gorm.DB, date time.Time, color, dayType *string, isAccess *bool) (*model.DateConfig, error) {
	m := model.DateConfig{
		DateConfigDate:    date,
		DateConfigColor:   color,
		DateConfigDayType: dayType,
	}
	if isAccess != nil {
		m.DateConfigIsAccess = *isAccess
	}

	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date_config_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"date_config_color":      gorm.Expr("COALESCE(?, date_config_color)", color),
			"date_config_day_type":   gorm.Expr("COALESCE(?, date_config_day_type)", dayType),
			"date_config_is_access":  gorm.Expr("COALESCE(?, date_config_is_access)", isAccess),
			"date_config_updated_at": time.Now(),
		}),
	}).Create(&m).Error; err != nil {
		return nil, helper.NewStoreError(err)
	}

	// Re-read so the caller sees the merged row, not just this write.
	var out model.DateConfig
	if err := db.Where("date_config_date = ?", date).First(&out).Error; err != nil {
		return nil, helper.NewStoreError(err)
	}
	return &out, nil
}

/* =========================================================
   Reads
   ========================================================= */

func ListDaySchedules(db *gorm.DB) ([]model.DaySchedule, error) {
	var rows []model.DaySchedule
	if err := db.Order("day_schedule_date ASC").Find(&rows).Error; err != nil {
		return nil, helper.NewStoreError(err)
	}
	return rows, nil
}

func ListDayTypes(db *gorm.DB) ([]model.DayType, error) {
	var rows []model.DayType
	if err := db.Order("day_type_date ASC").Find(&rows).Error; err != nil {
		return nil, helper.NewStoreError(err)
	}
	return rows, nil
}

func ListDateConfigs(db *gorm.DB) ([]model.DateConfig, error) {
	var rows []model.DateConfig
	if err := db.Order("date_config_date ASC").Find(&rows).Error; err != nil {
		return nil, helper.NewStoreError(err)
	}
	return rows, nil
}
