package domain

import (
	"time"

	"github.com/suchimauz/clinic-calendar-engine/internal/core/json_types"
)

type Weekday string

const (
	WeekdayMon Weekday = "mon"
	WeekdayTue Weekday = "tue"
	WeekdayWed Weekday = "wed"
	WeekdayThu Weekday = "thu"
	WeekdayFri Weekday = "fri"
	WeekdaySat Weekday = "sat"
	WeekdaySun Weekday = "sun"
)

// WeekdayMap - соответствие между time.Weekday и трехбуквенным кодом дня недели
var WeekdayMap = map[time.Weekday]Weekday{
	time.Monday:    WeekdayMon,
	time.Tuesday:   WeekdayTue,
	time.Wednesday: WeekdayWed,
	time.Thursday:  WeekdayThu,
	time.Friday:    WeekdayFri,
	time.Saturday:  WeekdaySat,
	time.Sunday:    WeekdaySun,
}

// WorkingHours - рабочее окно врача в пределах одного дня недели.
// Окно с одинаковым началом и концом "00:00" считается выходным днем
type WorkingHours struct {
	Start json_types.ClockTime `json:"start"`
	End   json_types.ClockTime `json:"end"`
}

// IsDayOffSentinel проверяет, является ли окно маркером выходного дня
func (w WorkingHours) IsDayOffSentinel() bool {
	return w.Start.IsMidnight() && w.End.IsMidnight()
}

// DoctorSchedule - рабочие окна врача по дням недели, nil - выходной
type DoctorSchedule map[Weekday]*WorkingHours

// DefaultScheduleKey - зарезервированный ключ расписания по умолчанию,
// используется когда у врача нет собственного расписания
const DefaultScheduleKey = "default"
