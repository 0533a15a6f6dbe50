package out

import (
	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
)

// ScheduleRegistryPort - реестр рабочих окон врачей по дням недели.
// Если у врача нет собственного расписания, используется расписание
// по ключу domain.DefaultScheduleKey. nil означает выходной день.
// Код дня недели обязан быть валидным трехбуквенным кодом
type ScheduleRegistryPort interface {
	Lookup(doctorID string, weekday domain.Weekday) *domain.WorkingHours
}
