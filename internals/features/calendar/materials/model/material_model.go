// file: internals/features/calendar/materials/model/material_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Material struct {
	MaterialID          uuid.UUID `gorm:"type:uuid;primaryKey;column:material_id" json:"material_id"`
	MaterialSchool      string    `gorm:"type:varchar(8);not null;column:material_school;index:idx_materials_school_date,priority:1" json:"material_school"`
	MaterialDate        time.Time `gorm:"type:date;not null;column:material_date;index:idx_materials_school_date,priority:2" json:"material_date"`
	MaterialGradeLevel  int       `gorm:"not null;column:material_grade_level" json:"material_grade_level"`
	MaterialTitle       string    `gorm:"type:text;not null;column:material_title" json:"material_title"`
	MaterialLink        string    `gorm:"type:text;not null;column:material_link" json:"material_link"`
	MaterialDescription string    `gorm:"type:text;not null;default:'';column:material_description" json:"material_description"`
	// Access gate shared with students, not a credential. Stored as-is.
	MaterialPassword string `gorm:"type:text;not null;default:'';column:material_password" json:"material_password"`

	MaterialCreatedAt time.Time `gorm:"column:material_created_at;autoCreateTime" json:"material_created_at"`
	MaterialUpdatedAt time.Time `gorm:"column:material_updated_at;autoUpdateTime" json:"material_updated_at"`
}

func (Material) TableName() string { return "materials" }
