package domain

import (
	"time"

	"github.com/suchimauz/clinic-calendar-engine/internal/core/json_types"
)

type ViewMode string

const (
	ViewModeDay  ViewMode = "day"
	ViewModeWeek ViewMode = "week"
)

// PositionedAppointment - обогащенная запись на прием вместе с ее геометрией.
// Layout == nil означает, что запись не выровнена по сетке слотов
// и не должна рендериться
type PositionedAppointment struct {
	PopulatedAppointment
	Layout *AppointmentLayout `json:"layout,omitempty"`
}

// DayView - готовые данные для отрисовки дня одного врача
type DayView struct {
	Date         json_types.Date         `json:"date"`
	DoctorID     string                  `json:"doctorId"`
	Working      bool                    `json:"working"`
	WorkingHours *WorkingHours           `json:"workingHours,omitempty"`
	Slots        []TimeSlot              `json:"slots"`
	Appointments []PositionedAppointment `json:"appointments"`
}

// WeekView - семь дней недели, начиная с понедельника
type WeekView struct {
	WeekStart json_types.Date `json:"weekStart"`
	DoctorID  string          `json:"doctorId"`
	Days      []DayView       `json:"days"`
}

// Day возвращает дату DayView как time.Time
func (v DayView) Day() time.Time {
	return v.Date.Date
}
