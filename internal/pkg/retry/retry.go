package retry

import (
	"time"

	"github.com/avast/retry-go/v4"
)

// Config is a retry policy loadable from env vars
type Config struct {
	Attempts uint          `env:"ATTEMPTS" envDefault:"3"`
	Delay    time.Duration `env:"DELAY" envDefault:"100ms"`
	MaxDelay time.Duration `env:"MAX_DELAY" envDefault:"2s"`
}

// ToRetryOptions converts the policy into retry-go options
func (c *Config) ToRetryOptions() []retry.Option {
	return []retry.Option{
		retry.Attempts(c.Attempts),
		retry.Delay(c.Delay),
		retry.MaxDelay(c.MaxDelay),
		retry.LastErrorOnly(true),
	}
}
