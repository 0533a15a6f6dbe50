package services

import (
	"sync"

	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
)

type calendarServiceDebug struct {
	mu   sync.Mutex
	data []domain.DebugInfo
}

func (d *calendarServiceDebug) AddDebugInfo(info domain.DebugInfo) {
	d.mu.Lock()
	d.data = append(d.data, info)
	d.mu.Unlock()
}
