package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"UTC"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"calendar_engine:calendar_engine"`
		BasicClients       []ConfigBasicClient
	}

	// Calendar - границы дневной сетки и пиксельный масштаб блоков
	Calendar struct {
		StartHour           int `env:"CALENDAR_START_HOUR" envDefault:"8"`
		EndHour             int `env:"CALENDAR_END_HOUR" envDefault:"18"`
		SlotDurationMinutes int `env:"CALENDAR_SLOT_DURATION_MINUTES" envDefault:"30"`
		SlotHeightPx        int `env:"CALENDAR_SLOT_HEIGHT_PX" envDefault:"60"`
	}

	RabbitMQ struct {
		Enabled bool   `env:"RABBITMQ_ENABLED"`
		AmqpUri string `env:"RABBITMQ_URL"`

		QueueConfig struct {
			AppointmentQueueName     string `env:"RABBITMQ_APPOINTMENT_QUEUE" envDefault:"calendar-engine.appointment"`
			AppointmentQueueBind     string `env:"RABBITMQ_APPOINTMENT_QUEUE_BIND" envDefault:"clinic.calendar-engine.appointment.*"`
			AppointmentQueueExchange string `env:"RABBITMQ_APPOINTMENT_QUEUE_EXCHANGE" envDefault:"clinic"`

			ScheduleQueueName     string `env:"RABBITMQ_SCHEDULE_QUEUE" envDefault:"calendar-engine.schedule"`
			ScheduleQueueBind     string `env:"RABBITMQ_SCHEDULE_QUEUE_BIND" envDefault:"clinic.calendar-engine.schedule.*"`
			ScheduleQueueExchange string `env:"RABBITMQ_SCHEDULE_QUEUE_EXCHANGE" envDefault:"clinic"`
		}
	}

	Cache struct {
		Enabled   bool `env:"CACHE_ENABLED"`
		ViewsSize int  `env:"CACHE_VIEWS_SIZE" envDefault:"1000"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Разбор клиентов basic-авторизации
	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	// Некорректная сетка календаря - ошибка на старте, а не в рантайме
	if err := cfg.validateCalendar(); err != nil {
		return nil, err
	}

	// Если RabbitMQ не включен, то кэш тоже не включаем:
	// без слушателя событий его нечем инвалидировать
	if !cfg.RabbitMQ.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

func (c *Config) validateCalendar() error {
	cal := c.Calendar

	if cal.StartHour < 0 || cal.EndHour > 24 || cal.StartHour >= cal.EndHour {
		return fmt.Errorf("invalid calendar window: %d-%d", cal.StartHour, cal.EndHour)
	}
	if cal.SlotDurationMinutes <= 0 || 60%cal.SlotDurationMinutes != 0 {
		return fmt.Errorf("invalid slot duration: %d minutes, must divide an hour evenly", cal.SlotDurationMinutes)
	}
	if cal.SlotHeightPx <= 0 {
		return fmt.Errorf("invalid slot height: %dpx", cal.SlotHeightPx)
	}

	return nil
}

// SlotsPerDay возвращает длину дневной сетки слотов
func (c *Config) SlotsPerDay() int {
	return (c.Calendar.EndHour - c.Calendar.StartHour) * 60 / c.Calendar.SlotDurationMinutes
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
