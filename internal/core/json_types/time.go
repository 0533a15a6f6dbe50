package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockTime - время в пределах суток в формате "15:04", без даты и таймзоны
type ClockTime struct {
	Time time.Time
}

func NewClockTime(hour, minute int) ClockTime {
	return ClockTime{Time: time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)}
}

func ParseClockTime(str string) (ClockTime, error) {
	parsedTime, err := time.Parse("15:04", str)
	if err != nil {
		return ClockTime{}, fmt.Errorf("failed to parse clock time: %v", err)
	}
	return ClockTime{Time: parsedTime}, nil
}

func (t *ClockTime) UnmarshalJSON(data []byte) error {
	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])
	parsedTime, err := time.Parse("15:04", str)
	if err != nil {
		return fmt.Errorf("failed to parse clock time: %v", err)
	}
	*t = ClockTime{Time: parsedTime}
	return nil
}

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format("15:04"))
}

func (t ClockTime) Hour() int {
	return t.Time.Hour()
}

func (t ClockTime) Minute() int {
	return t.Time.Minute()
}

// IsMidnight проверяет, равно ли время 00:00
func (t ClockTime) IsMidnight() bool {
	return t.Time.Hour() == 0 && t.Time.Minute() == 0
}

func (t ClockTime) String() string {
	return t.Time.Format("15:04")
}
