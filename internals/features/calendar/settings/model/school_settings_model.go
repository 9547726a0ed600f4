// file: internals/features/calendar/settings/model/school_settings_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// SchoolSettings: one free-form settings document per school, consumed by
// the calendar frontend (theme colors, visible sections, banner text).
type SchoolSettings struct {
	SchoolSettingsSchool string         `gorm:"type:varchar(8);primaryKey;column:school_settings_school" json:"school_settings_school"`
	SchoolSettingsData   datatypes.JSON `gorm:"type:jsonb;not null;default:'{}';column:school_settings_data" json:"school_settings_data"`

	SchoolSettingsUpdatedAt time.Time `gorm:"column:school_settings_updated_at;autoUpdateTime" json:"school_settings_updated_at"`
}

func (SchoolSettings) TableName() string { return "school_settings" }
