// file: internals/features/calendar/events/model/event_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	"schoolcal_backend/internals/helpers/dbtime"
)

type Event struct {
	EventID          uuid.UUID   `gorm:"type:uuid;primaryKey;column:event_id" json:"event_id"`
	EventSchool      string      `gorm:"type:varchar(8);not null;column:event_school;index:idx_events_school_date,priority:1" json:"event_school"`
	EventDate        time.Time   `gorm:"type:date;not null;column:event_date;index:idx_events_school_date,priority:2" json:"event_date"`
	EventTitle       string      `gorm:"type:text;not null;column:event_title" json:"event_title"`
	EventDepartment  *string     `gorm:"type:text;column:event_department" json:"event_department"`
	EventTime        *dbtime.Tod `gorm:"type:time;column:event_time" json:"event_time"`
	EventDescription string      `gorm:"type:text;not null;default:'';column:event_description" json:"event_description"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (Event) TableName() string { return "events" }
