// file: internals/features/calendar/settings/dto/school_settings_dto.go
package dto

import (
	"encoding/json"
	"time"

	model "schoolcal_backend/internals/features/calendar/settings/model"
)

type SchoolSettingsResponse struct {
	SchoolSettingsSchool    string          `json:"school_settings_school"`
	SchoolSettingsData      json.RawMessage `json:"school_settings_data"`
	SchoolSettingsUpdatedAt string          `json:"school_settings_updated_at"`
}

func FromModel(m *model.SchoolSettings) SchoolSettingsResponse {
	data := json.RawMessage(m.SchoolSettingsData)
	if len(data) == 0 {
		data = json.RawMessage(`{}`)
	}
	return SchoolSettingsResponse{
		SchoolSettingsSchool:    m.SchoolSettingsSchool,
		SchoolSettingsData:      data,
		SchoolSettingsUpdatedAt: m.SchoolSettingsUpdatedAt.UTC().Format(time.RFC3339),
	}
}
