package domain

// AppointmentLayout - вертикальная геометрия блока приема в пиксельной сетке.
// Вычисляется заново на каждый рендер, не кэшируется
type AppointmentLayout struct {
	TopOffsetPx    int `json:"top"`
	HeightPx       int `json:"height"`
	StartSlotIndex int `json:"startSlotIndex"`
	SlotsSpanned   int `json:"slotsSpanned"`
}
