package services

import (
	"context"
	"fmt"
	"time"

	"github.com/suchimauz/clinic-calendar-engine/internal/config"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/json_types"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/ports/out"
	"github.com/suchimauz/clinic-calendar-engine/internal/utils"
)

type CalendarService struct {
	dataSource out.DataSourcePort
	registry   out.ScheduleRegistryPort
	cachePort  out.CachePort
	logger     out.LoggerPort
	cfg        *config.Config
}

func NewCalendarService(
	dataSource out.DataSourcePort,
	registry out.ScheduleRegistryPort,
	cachePort out.CachePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *CalendarService {
	return &CalendarService{
		dataSource: dataSource,
		registry:   registry,
		cachePort:  cachePort,
		cfg:        cfg,
		logger:     logger.WithModule("CalendarService"),
	}
}

func (s *CalendarService) GetDayView(ctx context.Context, doctorID string, date time.Time) (*domain.DayView, []domain.DebugInfo, error) {
	debugInfo := calendarServiceDebug{
		data: make([]domain.DebugInfo, 0),
	}
	s.logger.Info("views.day.started", out.LogFields{
		"doctorId": doctorID,
		"date":     date.Format("2006-01-02"),
	})

	day := utils.StartCurrentDay(date)

	// Проверяем кэш только если он включен
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if view, exists := s.cachePort.GetDayView(ctx, doctorID, day); exists {
			s.logger.Debug("views.day.cache.hit", out.LogFields{
				"doctorId": doctorID,
				"date":     day.Format("2006-01-02"),
			})
			return view, debugInfo.data, nil
		}
	}

	s.logger.Debug("views.day.cache.miss", out.LogFields{
		"doctorId": doctorID,
		"date":     day.Format("2006-01-02"),
	})

	doctor, exists := s.dataSource.GetDoctor(ctx, doctorID)
	if !exists {
		s.logger.Error("views.day.doctor.not_found", out.LogFields{
			"doctorId": doctorID,
		})
		return nil, nil, fmt.Errorf("views.day.doctor.not_found: %s", doctorID)
	}

	query_debug := domain.DebugInfo{
		Event: "views.day.appointments.query",
	}
	query_debug.Start()

	appointments := s.AppointmentsByDoctorAndDate(ctx, doctorID, day)
	populated := s.PopulateAppointments(ctx, appointments)

	query_debug.Elapse()
	debugInfo.AddDebugInfo(query_debug)

	layout_debug := domain.DebugInfo{
		Event: "views.day.layout",
	}
	layout_debug.Start()

	view := s.buildDayView(*doctor, day, populated)

	layout_debug.Elapse()
	debugInfo.AddDebugInfo(layout_debug)

	// Сохраняем в кэш только если он включен
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StoreDayView(ctx, doctorID, day, view)
	}

	return view, debugInfo.data, nil
}

func (s *CalendarService) GetWeekView(ctx context.Context, doctorID string, date time.Time) (*domain.WeekView, []domain.DebugInfo, error) {
	debugInfo := calendarServiceDebug{
		data: make([]domain.DebugInfo, 0),
	}

	weekStart := utils.StartOfWeek(date)
	weekEnd := weekStart.AddDate(0, 0, 6)

	s.logger.Info("views.week.started", out.LogFields{
		"doctorId":  doctorID,
		"weekStart": weekStart.Format("2006-01-02"),
	})

	// Проверяем кэш только если он включен
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if view, exists := s.cachePort.GetWeekView(ctx, doctorID, weekStart); exists {
			s.logger.Debug("views.week.cache.hit", out.LogFields{
				"doctorId":  doctorID,
				"weekStart": weekStart.Format("2006-01-02"),
			})
			return view, debugInfo.data, nil
		}
	}

	s.logger.Debug("views.week.cache.miss", out.LogFields{
		"doctorId":  doctorID,
		"weekStart": weekStart.Format("2006-01-02"),
	})

	doctor, exists := s.dataSource.GetDoctor(ctx, doctorID)
	if !exists {
		s.logger.Error("views.week.doctor.not_found", out.LogFields{
			"doctorId": doctorID,
		})
		return nil, nil, fmt.Errorf("views.week.doctor.not_found: %s", doctorID)
	}

	query_debug := domain.DebugInfo{
		Event: "views.week.appointments.query",
	}
	query_debug.Start()

	// Одна выборка на всю неделю, дальше записи раскладываются по дням
	appointments := s.AppointmentsByDoctorAndDateRange(ctx, doctorID, weekStart, weekEnd)
	populated := s.PopulateAppointments(ctx, appointments)

	query_debug.Elapse()
	debugInfo.AddDebugInfo(query_debug)

	layout_debug := domain.DebugInfo{
		Event: "views.week.layout",
	}
	layout_debug.Start()

	days := make([]domain.DayView, 0, 7)
	for _, day := range utils.WeekDates(weekStart) {
		dayAppointments := make([]domain.PopulatedAppointment, 0)
		for _, appointment := range populated {
			if utils.SameDay(appointment.StartTime, day) {
				dayAppointments = append(dayAppointments, appointment)
			}
		}

		days = append(days, *s.buildDayView(*doctor, day, dayAppointments))
	}

	layout_debug.Elapse()
	debugInfo.AddDebugInfo(layout_debug)

	view := &domain.WeekView{
		WeekStart: json_types.Date{Date: weekStart},
		DoctorID:  doctorID,
		Days:      days,
	}

	// Сохраняем в кэш только если он включен
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StoreWeekView(ctx, doctorID, weekStart, view)
	}

	return view, debugInfo.data, nil
}

// buildDayView собирает представление одного дня из уже обогащенных записей.
// Записи, не выровненные по сетке слотов, получают Layout == nil
func (s *CalendarService) buildDayView(doctor domain.Doctor, day time.Time, populated []domain.PopulatedAppointment) *domain.DayView {
	slots := s.GenerateSlots(day)

	positioned := make([]domain.PositionedAppointment, 0, len(populated))
	for _, appointment := range populated {
		positioned = append(positioned, domain.PositionedAppointment{
			PopulatedAppointment: appointment,
			Layout:               s.Position(appointment.Appointment, slots),
		})
	}

	return &domain.DayView{
		Date:         json_types.Date{Date: day},
		DoctorID:     doctor.ID,
		Working:      s.IsDoctorWorking(doctor, day),
		WorkingHours: s.DoctorWorkingHours(doctor, day),
		Slots:        slots,
		Appointments: positioned,
	}
}

func (s *CalendarService) InvalidateDoctorViewCache(ctx context.Context, doctorID string) {
	if s.cachePort == nil {
		return
	}

	s.cachePort.InvalidateDoctorViews(ctx, doctorID)
}

func (s *CalendarService) InvalidateAllViewCache(ctx context.Context) {
	if s.cachePort == nil {
		return
	}

	s.cachePort.InvalidateAllViews(ctx)
}
