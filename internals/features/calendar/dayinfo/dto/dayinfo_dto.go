// file: internals/features/calendar/dayinfo/dto/dayinfo_dto.go
package dto

import (
	"strings"

	"schoolcal_backend/internals/constants"
	model "schoolcal_backend/internals/features/calendar/dayinfo/model"
	helper "schoolcal_backend/internals/helpers"
	"schoolcal_backend/internals/helpers/dateutil"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* =========================================================
   Requests: delete-on-null writes (day_schedules, day_types)
   =========================================================
   A null/absent/empty value means "clear this date", not "store null". */

type PutDayScheduleRequest struct {
	DayScheduleValue *string `json:"day_schedule_value"`
}

func (r *PutDayScheduleRequest) Normalize() {
	r.DayScheduleValue = trimPtr(r.DayScheduleValue)
	if r.DayScheduleValue != nil {
		v := strings.ToUpper(*r.DayScheduleValue)
		r.DayScheduleValue = &v
	}
}

func (r *PutDayScheduleRequest) Validate() error {
	if r.DayScheduleValue != nil && !constants.ValidSchedule(*r.DayScheduleValue) {
		return helper.NewValidationError("day_schedule_value must be one of A, B", "day_schedule_value")
	}
	return nil
}

type PutDayTypeRequest struct {
	DayTypeValue *string `json:"day_type_value"`
}

func (r *PutDayTypeRequest) Normalize() {
	r.DayTypeValue = trimPtr(r.DayTypeValue)
}

/* =========================================================
   Requests: coalesce-merge write (date_configs)
   =========================================================
   Partial write: a present field overwrites, an omitted or null field
   keeps the stored value. */

type PutDateConfigRequest struct {
	DateConfigColor    *string `json:"date_config_color"`
	DateConfigDayType  *string `json:"date_config_day_type"`
	DateConfigIsAccess *bool   `json:"date_config_is_access"`
}

func (r *PutDateConfigRequest) Normalize() {
	r.DateConfigColor = trimPtr(r.DateConfigColor)
	r.DateConfigDayType = trimPtr(r.DateConfigDayType)
	if r.DateConfigDayType != nil {
		v := strings.ToUpper(*r.DateConfigDayType)
		r.DateConfigDayType = &v
	}
}

func (r *PutDateConfigRequest) Validate() error {
	if r.DateConfigDayType != nil && !constants.ValidSchedule(*r.DateConfigDayType) {
		return helper.NewValidationError("date_config_day_type must be one of A, B", "date_config_day_type")
	}
	return nil
}

/* =========================================================
   Responses
   ========================================================= */

type DayScheduleResponse struct {
	DayScheduleDate  string `json:"day_schedule_date"`
	DayScheduleValue string `json:"day_schedule_value"`
}

func FromDaySchedule(m *model.DaySchedule) DayScheduleResponse {
	return DayScheduleResponse{
		DayScheduleDate:  dateutil.Format(m.DayScheduleDate),
		DayScheduleValue: m.DayScheduleValue,
	}
}

func FromDaySchedules(rows []model.DaySchedule) []DayScheduleResponse {
	out := make([]DayScheduleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromDaySchedule(&rows[i]))
	}
	return out
}

type DayTypeResponse struct {
	DayTypeDate  string `json:"day_type_date"`
	DayTypeValue string `json:"day_type_value"`
}

func FromDayType(m *model.DayType) DayTypeResponse {
	return DayTypeResponse{
		DayTypeDate:  dateutil.Format(m.DayTypeDate),
		DayTypeValue: m.DayTypeValue,
	}
}

func FromDayTypes(rows []model.DayType) []DayTypeResponse {
	out := make([]DayTypeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromDayType(&rows[i]))
	}
	return out
}

type DateConfigResponse struct {
	DateConfigDate     string  `json:"date_config_date"`
	DateConfigColor    *string `json:"date_config_color"`
	DateConfigDayType  *string `json:"date_config_day_type"`
	DateConfigIsAccess bool    `json:"date_config_is_access"`
}

func FromDateConfig(m *model.DateConfig) DateConfigResponse {
	return DateConfigResponse{
		DateConfigDate:     dateutil.Format(m.DateConfigDate),
		DateConfigColor:    m.DateConfigColor,
		DateConfigDayType:  m.DateConfigDayType,
		DateConfigIsAccess: m.DateConfigIsAccess,
	}
}

func FromDateConfigs(rows []model.DateConfig) []DateConfigResponse {
	out := make([]DateConfigResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromDateConfig(&rows[i]))
	}
	return out
}
