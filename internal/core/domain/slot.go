package domain

import "time"

// TimeSlot - дискретный интервал сетки календаря.
// Слоты генерируются заново для каждой запрошенной даты и нигде не хранятся
type TimeSlot struct {
	StartTime time.Time `json:"start"`
	EndTime   time.Time `json:"end"`
	Label     string    `json:"label"`
}
