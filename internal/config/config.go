/*
Package config loads the settings of the workshop server.

Settings come from built-in defaults, an optional YAML file and command line
flags, in that order. The listening port is never taken from the environment.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPort is the port the sample app has always listened on.
	DefaultPort = 3000

	// DefaultShutdownTimeout bounds how long in-flight requests may run after a stop signal.
	DefaultShutdownTimeout = 5 * time.Second
)

var (
	// ErrInvalidPort is returned by Validate when Port is outside 0..65535.
	ErrInvalidPort = errors.New("invalid port")

	// ErrInvalidTimeout is returned by Validate for a negative shutdown timeout.
	ErrInvalidTimeout = errors.New("invalid shutdown timeout")
)

// Server holds the listener settings.
type Server struct {
	// Host is the interface to bind. Empty binds every interface.
	Host string `yaml:"host" mapstructure:"host"`
	// Port 0 asks the kernel for an ephemeral port.
	Port int `yaml:"port" mapstructure:"port"`
	// MetricsAddr enables the Prometheus listener when non-empty (e.g. ":9100").
	MetricsAddr string `yaml:"metrics_addr" mapstructure:"metrics_addr"`
	// ShutdownTimeout e.g. "10s".
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// Default returns the settings used when no file or flag overrides them.
func Default() Server {
	return Server{
		Port:            DefaultPort,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Addr returns the host:port string handed to net.Listen.
func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Validate reports the first invalid setting.
func (s Server) Validate() error {
	if s.Port < 0 || s.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, s.Port)
	}
	if s.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, s.ShutdownTimeout)
	}
	return nil
}

// Load reads a YAML file on top of Default.
// An empty path or a missing file yields the defaults without error.
func Load(path string) (Server, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML content on top of Default.
// Values are weakly typed, so `port: "3000"` and `shutdown_timeout: 10s` both work.
func Parse(data []byte) (Server, error) {
	cfg := Default()

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(raw) == 0 {
		return cfg, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return cfg, err
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
