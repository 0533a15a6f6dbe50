package out

import (
	"context"
	"time"

	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
)

// CachePort - кэширование готовых представлений календаря.
// Ключ - (врач, режим просмотра, день), безопасно, потому что все операции
// ядра чистые и детерминированные
type CachePort interface {
	GetDayView(ctx context.Context, doctorID string, day time.Time) (*domain.DayView, bool)
	StoreDayView(ctx context.Context, doctorID string, day time.Time, view *domain.DayView)

	GetWeekView(ctx context.Context, doctorID string, weekStart time.Time) (*domain.WeekView, bool)
	StoreWeekView(ctx context.Context, doctorID string, weekStart time.Time, view *domain.WeekView)

	InvalidateDoctorViews(ctx context.Context, doctorID string)
	InvalidateAllViews(ctx context.Context)
}
