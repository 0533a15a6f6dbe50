package services

import (
	"time"

	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
)

// GenerateSlots генерирует дневную сетку слотов для календарной даты.
// Значим только день даты, время отбрасывается. Для одинаковой даты и
// конфигурации результат всегда идентичен
func (s *CalendarService) GenerateSlots(date time.Time) []domain.TimeSlot {
	cal := s.cfg.Calendar
	slotDuration := time.Duration(cal.SlotDurationMinutes) * time.Minute

	slots := make([]domain.TimeSlot, 0, s.cfg.SlotsPerDay())

	for hour := cal.StartHour; hour < cal.EndHour; hour++ {
		for minute := 0; minute < 60; minute += cal.SlotDurationMinutes {
			startTime := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())

			slots = append(slots, domain.TimeSlot{
				StartTime: startTime,
				EndTime:   startTime.Add(slotDuration),
				Label:     startTime.Format("3:04 PM"),
			})
		}
	}

	return slots
}
