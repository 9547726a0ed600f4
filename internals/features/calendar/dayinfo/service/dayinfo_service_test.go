// file: internals/features/calendar/dayinfo/service/dayinfo_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	model "schoolcal_backend/internals/features/calendar/dayinfo/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.DaySchedule{},
		&model.DayType{},
		&model.DateConfig{},
	))
	return db
}

func day(s string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", s, time.UTC)
	return t
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

/* =========================================================
   Clear-on-null policy (day_schedules, day_types)
   ========================================================= */

func TestPutDayScheduleWritesAndOverwrites(t *testing.T) {
	db := newTestDB(t)
	date := day("2025-09-02")

	m, err := PutDaySchedule(db, date, strPtr("A"))
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "A", m.DayScheduleValue)

	m, err = PutDaySchedule(db, date, strPtr("B"))
	require.NoError(t, err)
	assert.Equal(t, "B", m.DayScheduleValue)

	rows, err := ListDaySchedules(db)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "B", rows[0].DayScheduleValue)
}

func TestPutDayScheduleNullClearsRow(t *testing.T) {
	db := newTestDB(t)
	date := day("2025-09-02")

	_, err := PutDaySchedule(db, date, strPtr("A"))
	require.NoError(t, err)

	m, err := PutDaySchedule(db, date, nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	rows, err := ListDaySchedules(db)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPutDayScheduleNullIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	date := day("2025-09-02")

	// clearing a date that has no row succeeds
	m, err := PutDaySchedule(db, date, nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	// writing null twice is the same as once
	m, err = PutDaySchedule(db, date, nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	rows, err := ListDaySchedules(db)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPutDayTypeFreeFormAndClear(t *testing.T) {
	db := newTestDB(t)
	date := day("2025-10-31")

	m, err := PutDayType(db, date, strPtr("late start"))
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "late start", m.DayTypeValue)

	_, err = PutDayType(db, date, nil)
	require.NoError(t, err)

	rows, err := ListDayTypes(db)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestListDaySchedulesOrderedByDate(t *testing.T) {
	db := newTestDB(t)
	for _, d := range []string{"2025-09-05", "2025-09-01", "2025-09-03"} {
		_, err := PutDaySchedule(db, day(d), strPtr("A"))
		require.NoError(t, err)
	}

	rows, err := ListDaySchedules(db)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, day("2025-09-01"), rows[0].DayScheduleDate.UTC())
	assert.Equal(t, day("2025-09-03"), rows[1].DayScheduleDate.UTC())
	assert.Equal(t, day("2025-09-05"), rows[2].DayScheduleDate.UTC())
}

/* =========================================================
   Coalesce-merge policy (date_configs)
   ========================================================= */

func TestMergeDateConfigFirstWriteUsesDefaults(t *testing.T) {
	db := newTestDB(t)
	date := day("2025-09-02")

	m, err := MergeDateConfig(db, date, nil, strPtr("A"), nil)
	require.NoError(t, err)
	assert.Nil(t, m.DateConfigColor)
	require.NotNil(t, m.DateConfigDayType)
	assert.Equal(t, "A", *m.DateConfigDayType)
	assert.False(t, m.DateConfigIsAccess)
}

func TestMergeDateConfigPreservesUntouchedFields(t *testing.T) {
	db := newTestDB(t)
	date := day("2025-09-02")

	_, err := MergeDateConfig(db, date, strPtr("#fff"), strPtr("A"), boolPtr(false))
	require.NoError(t, err)

	// a write supplying only is_access leaves color and day_type alone
	m, err := MergeDateConfig(db, date, nil, nil, boolPtr(true))
	require.NoError(t, err)
	require.NotNil(t, m.DateConfigColor)
	assert.Equal(t, "#fff", *m.DateConfigColor)
	require.NotNil(t, m.DateConfigDayType)
	assert.Equal(t, "A", *m.DateConfigDayType)
	assert.True(t, m.DateConfigIsAccess)
}

func TestMergeDateConfigPresentFieldsOverwrite(t *testing.T) {
	db := newTestDB(t)
	date := day("2025-09-02")

	_, err := MergeDateConfig(db, date, strPtr("#fff"), strPtr("A"), nil)
	require.NoError(t, err)

	m, err := MergeDateConfig(db, date, strPtr("#000"), strPtr("B"), nil)
	require.NoError(t, err)
	assert.Equal(t, "#000", *m.DateConfigColor)
	assert.Equal(t, "B", *m.DateConfigDayType)
	assert.False(t, m.DateConfigIsAccess)
}

func TestMergeDateConfigSingleRowPerDate(t *testing.T) {
	db := newTestDB(t)
	date := day("2025-09-02")

	for i := 0; i < 3; i++ {
		_, err := MergeDateConfig(db, date, nil, nil, boolPtr(true))
		require.NoError(t, err)
	}

	rows, err := ListDateConfigs(db)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].DateConfigIsAccess)
}
