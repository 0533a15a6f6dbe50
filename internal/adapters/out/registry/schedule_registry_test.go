package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/suchimauz/clinic-calendar-engine/internal/adapters/out/logger"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
)

func TestLookup(t *testing.T) {
	adapter := NewScheduleRegistryAdapter(logger.NewNopLogger())

	hours := adapter.Lookup("doc-2", domain.WeekdayWed)
	require.NotNil(t, hours)
	require.Equal(t, "08:00", hours.Start.String())
	require.Equal(t, "12:00", hours.End.String())

	// Воскресенье у всех встроенных расписаний выходной
	require.Nil(t, adapter.Lookup("doc-2", domain.WeekdaySun))
}

func TestLookup_DefaultFallback(t *testing.T) {
	adapter := NewScheduleRegistryAdapter(logger.NewNopLogger())

	// Врач без расписания получает расписание по умолчанию
	hours := adapter.Lookup("doc-unknown", domain.WeekdayFri)
	require.NotNil(t, hours)
	require.Equal(t, "09:00", hours.Start.String())
	require.Equal(t, "17:00", hours.End.String())

	require.Nil(t, adapter.Lookup("doc-unknown", domain.WeekdaySat))
}

func TestLookup_CustomSchedules(t *testing.T) {
	schedules := map[string]domain.DoctorSchedule{
		domain.DefaultScheduleKey: {
			domain.WeekdayMon: window(10, 30, 14, 0),
		},
	}

	adapter := NewScheduleRegistryAdapterWithSchedules(schedules, logger.NewNopLogger())

	hours := adapter.Lookup("anyone", domain.WeekdayMon)
	require.NotNil(t, hours)
	require.Equal(t, "10:30", hours.Start.String())
	require.Equal(t, "14:00", hours.End.String())
}
