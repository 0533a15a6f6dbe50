package utils

import (
	"fmt"
	"time"
)

// StartCurrentDay возвращает новую дату, где время установлено на 00:00:00.000,
// а таймзона остается прежней
func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndCurrentDay возвращает новую дату, где время установлено на 23:59:59.999
func EndCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}

// SameDay проверяет, приходятся ли обе даты на один календарный день
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// StartOfWeek возвращает понедельник недели, в которую входит дата,
// время установлено на 00:00
func StartOfWeek(t time.Time) time.Time {
	// time.Weekday нумеруется с воскресенья, приводим к неделе с понедельника
	offset := (int(t.Weekday()) + 6) % 7
	return StartCurrentDay(t.AddDate(0, 0, -offset))
}

// WeekDates возвращает семь дат недели, начиная с понедельника
func WeekDates(t time.Time) []time.Time {
	weekStart := StartOfWeek(t)

	dates := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, weekStart.AddDate(0, 0, i))
	}

	return dates
}

// ParseDate парсит дату из строки в формате RFC3339, если не удается,
// то пробует дату со временем без таймзоны, затем дату без времени
func ParseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	if err != nil {
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, time.Local)
		if err != nil {
			parsedDate, err = time.ParseInLocation("2006-01-02", str, time.Local)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse date: %v", err)
			}
		}
	}

	return parsedDate, nil
}
