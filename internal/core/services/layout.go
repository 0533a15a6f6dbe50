package services

import (
	"math"

	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
)

// Position вычисляет геометрию блока записи относительно сетки слотов.
// Начало записи должно точно совпадать с началом одного из слотов,
// иначе возвращается nil и запись не позиционируется - привязки
// к ближайшему слоту нет.
// Запись нулевой длительности дает SlotsSpanned == 0 и блок нулевой высоты
func (s *CalendarService) Position(appointment domain.Appointment, slots []domain.TimeSlot) *domain.AppointmentLayout {
	startSlotIndex := -1
	for i, slot := range slots {
		if slot.StartTime.Equal(appointment.StartTime) {
			startSlotIndex = i
			break
		}
	}

	if startSlotIndex == -1 {
		return nil
	}

	durationMinutes := math.Round(appointment.EndTime.Sub(appointment.StartTime).Minutes())
	slotsSpanned := int(math.Ceil(durationMinutes / float64(s.cfg.Calendar.SlotDurationMinutes)))

	return &domain.AppointmentLayout{
		TopOffsetPx:    startSlotIndex * s.cfg.Calendar.SlotHeightPx,
		HeightPx:       slotsSpanned * s.cfg.Calendar.SlotHeightPx,
		StartSlotIndex: startSlotIndex,
		SlotsSpanned:   slotsSpanned,
	}
}
