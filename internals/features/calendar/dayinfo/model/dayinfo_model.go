// file: internals/features/calendar/dayinfo/model/dayinfo_model.go
package model

import "time"

// The three singleton-per-date tables. All of them key on the calendar
// date itself; no surrogate id is exposed for these rows.

// DaySchedule: at most one A/B schedule letter per date.
type DaySchedule struct {
	DayScheduleDate  time.Time `gorm:"type:date;primaryKey;column:day_schedule_date" json:"day_schedule_date"`
	DayScheduleValue string    `gorm:"type:varchar(1);not null;column:day_schedule_value" json:"day_schedule_value"`

	DayScheduleUpdatedAt time.Time `gorm:"column:day_schedule_updated_at;autoUpdateTime" json:"day_schedule_updated_at"`
}

func (DaySchedule) TableName() string { return "day_schedules" }

// DayType: free-form label per date ("late start", "assembly", ...).
type DayType struct {
	DayTypeDate  time.Time `gorm:"type:date;primaryKey;column:day_type_date" json:"day_type_date"`
	DayTypeValue string    `gorm:"type:text;not null;column:day_type_value" json:"day_type_value"`

	DayTypeUpdatedAt time.Time `gorm:"column:day_type_updated_at;autoUpdateTime" json:"day_type_updated_at"`
}

func (DayType) TableName() string { return "day_types" }

// DateConfig: merged per-date configuration.
// Writes are partial: omitted fields keep their stored value.
type DateConfig struct {
	DateConfigDate     time.Time `gorm:"type:date;primaryKey;column:date_config_date" json:"date_config_date"`
	DateConfigColor    *string   `gorm:"type:varchar(16);column:date_config_color" json:"date_config_color"`
	DateConfigDayType  *string   `gorm:"type:varchar(1);column:date_config_day_type" json:"date_config_day_type"`
	DateConfigIsAccess bool      `gorm:"not null;default:false;column:date_config_is_access" json:"date_config_is_access"`

	DateConfigUpdatedAt time.Time `gorm:"column:date_config_updated_at;autoUpdateTime" json:"date_config_updated_at"`
}

func (DateConfig) TableName() string { return "date_configs" }
