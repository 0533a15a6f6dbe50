package registry

import (
	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/json_types"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/ports/out"
)

func window(startHour, startMinute, endHour, endMinute int) *domain.WorkingHours {
	return &domain.WorkingHours{
		Start: json_types.NewClockTime(startHour, startMinute),
		End:   json_types.NewClockTime(endHour, endMinute),
	}
}

// builtinSchedules - рабочие окна врачей по дням недели.
// Ключ domain.DefaultScheduleKey используется для врачей без своего расписания
var builtinSchedules = map[string]domain.DoctorSchedule{
	domain.DefaultScheduleKey: {
		domain.WeekdayMon: window(9, 0, 17, 0),
		domain.WeekdayTue: window(9, 0, 17, 0),
		domain.WeekdayWed: window(9, 0, 17, 0),
		domain.WeekdayThu: window(9, 0, 17, 0),
		domain.WeekdayFri: window(9, 0, 17, 0),
	},
	"doc-1": {
		domain.WeekdayMon: window(9, 0, 17, 0),
		domain.WeekdayTue: window(9, 0, 17, 0),
		domain.WeekdayWed: window(9, 0, 17, 0),
		domain.WeekdayThu: window(9, 0, 17, 0),
		domain.WeekdayFri: window(9, 0, 17, 0),
	},
	"doc-2": {
		domain.WeekdayMon: window(8, 0, 16, 0),
		domain.WeekdayTue: window(8, 0, 16, 0),
		domain.WeekdayWed: window(8, 0, 12, 0),
		domain.WeekdayThu: window(8, 0, 16, 0),
		domain.WeekdayFri: window(8, 0, 16, 0),
	},
	"doc-3": {
		domain.WeekdayTue: window(10, 0, 18, 0),
		domain.WeekdayThu: window(10, 0, 18, 0),
		domain.WeekdayFri: window(10, 0, 18, 0),
		domain.WeekdaySat: window(10, 0, 13, 0),
	},
}

// ScheduleRegistryAdapter - статический реестр рабочих окон с фолбэком
// на расписание по умолчанию
type ScheduleRegistryAdapter struct {
	schedules map[string]domain.DoctorSchedule
	logger    out.LoggerPort
}

// NewScheduleRegistryAdapter создает реестр со встроенными расписаниями
func NewScheduleRegistryAdapter(logger out.LoggerPort) *ScheduleRegistryAdapter {
	return NewScheduleRegistryAdapterWithSchedules(builtinSchedules, logger)
}

func NewScheduleRegistryAdapterWithSchedules(schedules map[string]domain.DoctorSchedule, logger out.LoggerPort) *ScheduleRegistryAdapter {
	return &ScheduleRegistryAdapter{
		schedules: schedules,
		logger:    logger.WithModule("ScheduleRegistryAdapter"),
	}
}

// Lookup возвращает рабочее окно врача на день недели или nil (выходной).
// Если у врача нет собственного расписания, используется расписание
// по умолчанию
func (a *ScheduleRegistryAdapter) Lookup(doctorID string, weekday domain.Weekday) *domain.WorkingHours {
	schedule, exists := a.schedules[doctorID]
	if !exists {
		a.logger.Debug("registry.lookup.fallback", out.LogFields{
			"doctorId": doctorID,
		})
		schedule = a.schedules[domain.DefaultScheduleKey]
	}

	return schedule[weekday]
}
