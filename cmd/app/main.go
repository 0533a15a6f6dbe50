package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	httpadapter "github.com/suchimauz/clinic-calendar-engine/internal/adapters/in/http"
	"github.com/suchimauz/clinic-calendar-engine/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/clinic-calendar-engine/internal/adapters/out/cache"
	"github.com/suchimauz/clinic-calendar-engine/internal/adapters/out/datasource"
	"github.com/suchimauz/clinic-calendar-engine/internal/adapters/out/logger"
	"github.com/suchimauz/clinic-calendar-engine/internal/adapters/out/registry"
	"github.com/suchimauz/clinic-calendar-engine/internal/config"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/ports/out"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/services"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"calendarWindow":  fmt.Sprintf("%02d:00-%02d:00", cfg.Calendar.StartHour, cfg.Calendar.EndHour),
		"slotDuration":    cfg.Calendar.SlotDurationMinutes,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Инициализация адаптеров
	dataSourceAdapter := datasource.NewMemoryAdapter(
		datasource.DemoDoctors,
		datasource.DemoPatients,
		datasource.DemoAppointments(time.Now()),
		mainLogger,
	)
	registryAdapter := registry.NewScheduleRegistryAdapter(mainLogger)

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		viewCacheAdapter, err := cache.NewViewCacheAdapter(cfg, mainLogger)
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = viewCacheAdapter
	}

	// Инициализация сервиса
	calendarService := services.NewCalendarService(
		dataSourceAdapter,
		registryAdapter,
		cacheAdapter,
		cfg,
		mainLogger,
	)

	// Настройка HTTP сервера
	router := gin.Default()
	controller := httpadapter.NewCalendarController(calendarService, dataSourceAdapter, cfg)
	controller.RegisterRoutes(router)

	// Настройка RabbitMQ слушателя только если он включен
	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewCacheHitListener(
			calendarService,
			cfg,
			mainLogger.WithModule("RabbitMQListener"),
		)
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
