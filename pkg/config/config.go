package config

import (
	"time"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type Redis struct {
	URL          string        `envconfig:"URL" default:""`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:""`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

// EventBus selects the transport driver. An empty Driver keeps the saga on
// the in-process async bus; "redis" and "kafka" enable the broker transports.
type EventBus struct {
	Driver       string `envconfig:"DRIVER" default:""`
	RedisURL     string `envconfig:"REDIS_URL" default:""`
	KafkaBrokers string `envconfig:"KAFKA_BROKERS" default:""`
}

// Saga controls the orchestrator's timing knobs. BankResponseTimeout bounds
// the SENDING_TO_BANK suspension point: the watchdog rolls back withdrawals
// that outwait it.
type Saga struct {
	BankResponseTimeout time.Duration `envconfig:"BANK_RESPONSE_TIMEOUT" default:"5m"`
	WatchdogInterval    time.Duration `envconfig:"WATCHDOG_INTERVAL" default:"30s"`
	HistoryRetryMax     time.Duration `envconfig:"HISTORY_RETRY_MAX" default:"2s"`
}

// Bank configures the mock bank gateway used outside production.
type Bank struct {
	CallbackDelay time.Duration `envconfig:"CALLBACK_DELAY" default:"500ms"`
	FailTransfers bool          `envconfig:"FAIL_TRANSFERS" default:"false"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[privplan]"`
}

type App struct {
	Env      string    `envconfig:"APP_ENV" default:"development"`
	Log      *Log      `envconfig:"LOG"`
	DB       *DB       `envconfig:"DATABASE"`
	Redis    *Redis    `envconfig:"REDIS"`
	EventBus *EventBus `envconfig:"EVENTBUS"`
	Saga     *Saga     `envconfig:"SAGA"`
	Bank     *Bank     `envconfig:"BANK"`
}
