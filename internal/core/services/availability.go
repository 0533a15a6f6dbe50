package services

import (
	"time"

	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
)

// DoctorWorkingHours возвращает рабочее окно врача на дату или nil,
// если день выходной
func (s *CalendarService) DoctorWorkingHours(doctor domain.Doctor, date time.Time) *domain.WorkingHours {
	weekday := domain.WeekdayMap[date.Weekday()]

	return s.registry.Lookup(doctor.ID, weekday)
}

// IsDoctorWorking проверяет, работает ли врач в этот день.
// Окно-маркер "00:00"-"00:00" считается выходным наравне с отсутствием окна
func (s *CalendarService) IsDoctorWorking(doctor domain.Doctor, date time.Time) bool {
	hours := s.DoctorWorkingHours(doctor, date)
	if hours == nil {
		return false
	}

	return !hours.IsDayOffSentinel()
}
