package in

import (
	"context"
	"time"

	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
)

type CalendarUseCase interface {
	// Сетка слотов на один день, чистая функция даты и конфигурации
	GenerateSlots(date time.Time) []domain.TimeSlot

	// Готовые представления для отрисовки
	GetDayView(ctx context.Context, doctorID string, date time.Time) (*domain.DayView, []domain.DebugInfo, error)
	GetWeekView(ctx context.Context, doctorID string, date time.Time) (*domain.WeekView, []domain.DebugInfo, error)

	// Доступность врача
	DoctorWorkingHours(doctor domain.Doctor, date time.Time) *domain.WorkingHours
	IsDoctorWorking(doctor domain.Doctor, date time.Time) bool

	// Инвалидация кэша представлений при изменении данных
	InvalidateDoctorViewCache(ctx context.Context, doctorID string)
	InvalidateAllViewCache(ctx context.Context)
}
