package config

import (
	"net"
	"strconv"
	"time"
)

// ServerConfig holds the shipfix-api listener configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`

	// Optional gRPC health endpoint, e.g. "localhost:4001". Empty disables it.
	GRPCAddress string `mapstructure:"grpc_address" validate:"omitempty,hostname_port"`

	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Allowed CORS origins; "*" allows any
	CORSOrigins []string `mapstructure:"cors_origins"`

	// PID file guarding against a second API process. Empty disables it.
	PIDFile string `mapstructure:"pid_file"`
}

// RateLimitConfig holds token bucket settings
type RateLimitConfig struct {
	// Sustained requests per second
	Requests float64 `mapstructure:"requests" validate:"gt=0"`

	// Burst size for token bucket
	Burst int `mapstructure:"burst" validate:"min=1"`
}

// Address returns host:port for net.Listen
func (c ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
