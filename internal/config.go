package internal

import (
	"fmt"
	"support-desk/domain"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	LogLevel              string        `env:"LOG_LEVEL,required=true" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	BadgerFilepath        string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	NatsURL               string        `env:"NATS_URL,default=nats://127.0.0.1:4222" validate:"required,url"`
	NatsName              string        `env:"NATS_NAME,default=support-desk"`
	NatsQueueGroup        string        `env:"NATS_QUEUE_GROUP,default=support-desk"`
	JwtSecret             string        `env:"JWT_SECRET,required=true" validate:"min=16"`
	JwtIssuer             string        `env:"JWT_ISSUER,default=support-desk"`
	AuthTokenDuration     time.Duration `env:"AUTH_TOKEN_DURATION,default=24h" validate:"gt=0"`
	ReaperInterval        time.Duration `env:"REAPER_INTERVAL,default=10m" validate:"gt=0"`
	ReaperWarnAfter       time.Duration `env:"REAPER_WARN_AFTER,default=49m" validate:"gt=0"`
	ReaperCloseAfter      time.Duration `env:"REAPER_CLOSE_AFTER,default=59m" validate:"gtfield=ReaperWarnAfter"`
	ReaperDialogTimeout   time.Duration `env:"REAPER_DIALOG_TIMEOUT,default=5s" validate:"gt=0"`
	RestartInterval       time.Duration `env:"RESTART_INTERVAL,default=1s" validate:"gt=0"`
	NatsRestartMaxBackoff time.Duration `env:"NATS_RESTART_MAX_BACKOFF,default=30s" validate:"gtefield=RestartInterval"`
	MetricInterval        time.Duration `env:"METRIC_INTERVAL,default=15s" validate:"gt=0"`
	HistoryPageSize       int           `env:"HISTORY_PAGE_SIZE,default=50" validate:"gt=0"`
	MetricsAddr           string        `env:"METRICS_ADDR,default=:9090" validate:"required"`
}

// Validate rejects values go-env accepts but the service can't run with,
// a close threshold not strictly after the warn threshold first of all.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) InactivityPolicy() domain.InactivityPolicy {
	return domain.InactivityPolicy{WarnAfter: c.ReaperWarnAfter, CloseAfter: c.ReaperCloseAfter}
}
