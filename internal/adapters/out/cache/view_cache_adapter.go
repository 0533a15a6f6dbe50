package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/clinic-calendar-engine/internal/config"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/ports/out"
)

// ViewCacheAdapter - LRU-кэш готовых представлений календаря.
// Ключ - врач + день (для недели - понедельник недели)
type ViewCacheAdapter struct {
	dayViews  *lru.Cache[string, *domain.DayView]
	weekViews *lru.Cache[string, *domain.WeekView]
	mu        sync.RWMutex
	logger    out.LoggerPort
}

func NewViewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*ViewCacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	dayViews, err := lru.New[string, *domain.DayView](cfg.Cache.ViewsSize)
	if err != nil {
		logger.Error("cache.day_views.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.ViewsSize,
		})
		return nil, err
	}

	weekViews, err := lru.New[string, *domain.WeekView](cfg.Cache.ViewsSize)
	if err != nil {
		logger.Error("cache.week_views.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.ViewsSize,
		})
		return nil, err
	}

	return &ViewCacheAdapter{
		dayViews:  dayViews,
		weekViews: weekViews,
		logger:    logger.WithModule("ViewCacheAdapter"),
	}, nil
}

func viewKey(doctorID string, day time.Time) string {
	return doctorID + "|" + day.Format("2006-01-02")
}

func (c *ViewCacheAdapter) GetDayView(ctx context.Context, doctorID string, day time.Time) (*domain.DayView, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	view, exists := c.dayViews.Get(viewKey(doctorID, day))
	if !exists {
		c.logger.Debug("cache.day_view.get.miss", out.LogFields{
			"doctorId": doctorID,
			"date":     day.Format("2006-01-02"),
		})
		return nil, false
	}

	c.logger.Debug("cache.day_view.get.hit", out.LogFields{
		"doctorId": doctorID,
		"date":     day.Format("2006-01-02"),
	})
	return view, true
}

func (c *ViewCacheAdapter) StoreDayView(ctx context.Context, doctorID string, day time.Time, view *domain.DayView) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.day_view.store", out.LogFields{
		"doctorId": doctorID,
		"date":     day.Format("2006-01-02"),
	})

	c.dayViews.Add(viewKey(doctorID, day), view)
}

func (c *ViewCacheAdapter) GetWeekView(ctx context.Context, doctorID string, weekStart time.Time) (*domain.WeekView, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	view, exists := c.weekViews.Get(viewKey(doctorID, weekStart))
	if !exists {
		c.logger.Debug("cache.week_view.get.miss", out.LogFields{
			"doctorId":  doctorID,
			"weekStart": weekStart.Format("2006-01-02"),
		})
		return nil, false
	}

	c.logger.Debug("cache.week_view.get.hit", out.LogFields{
		"doctorId":  doctorID,
		"weekStart": weekStart.Format("2006-01-02"),
	})
	return view, true
}

func (c *ViewCacheAdapter) StoreWeekView(ctx context.Context, doctorID string, weekStart time.Time, view *domain.WeekView) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.week_view.store", out.LogFields{
		"doctorId":  doctorID,
		"weekStart": weekStart.Format("2006-01-02"),
	})

	c.weekViews.Add(viewKey(doctorID, weekStart), view)
}

// InvalidateDoctorViews удаляет все закэшированные представления врача
func (c *ViewCacheAdapter) InvalidateDoctorViews(ctx context.Context, doctorID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := doctorID + "|"

	for _, key := range c.dayViews.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.dayViews.Remove(key)
		}
	}
	for _, key := range c.weekViews.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.weekViews.Remove(key)
		}
	}

	c.logger.Debug("cache.views.invalidate.doctor", out.LogFields{
		"doctorId": doctorID,
	})
}

func (c *ViewCacheAdapter) InvalidateAllViews(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dayViews.Purge()
	c.weekViews.Purge()

	c.logger.Debug("cache.views.invalidate.all", out.LogFields{})
}
