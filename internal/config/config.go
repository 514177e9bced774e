package config

import (
	"bowshell/internal/deeplink"
	"bowshell/pkg/navguard"
	"time"

	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Navigation describes which URLs the embedded webview may load
	Navigation struct {
		// AppOrigin is the canonical origin of the web application
		AppOrigin string `env:"NAVIGATION_APP_ORIGIN" env-default:"https://app.bowsapp.com" yaml:"appOrigin"`
		// InternalSchemes are the host runtime's schemes for bundled UI and assets
		InternalSchemes []string `env:"NAVIGATION_INTERNAL_SCHEMES" env-default:"tauri,asset" env-separator:"," yaml:"internalSchemes"` //nolint: lll
		// DenyAbout blocks about: URLs such as about:blank
		DenyAbout bool `env:"NAVIGATION_DENY_ABOUT" env-default:"false" yaml:"denyAbout"`
		// AllowedHosts replaces the compiled-in allowlist when not empty
		AllowedHosts []string `env:"NAVIGATION_ALLOWED_HOSTS" env-separator:"," yaml:"allowedHosts"`
	} `yaml:"navigation"`

	DeepLink struct {
		// Scheme is the custom URL scheme registered with the operating system
		Scheme string `env:"DEEP_LINK_SCHEME" env-default:"bows" yaml:"scheme"`
	} `yaml:"deepLink"`

	// HTTP contains the loopback check API settings
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:"127.0.0.1:7411" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"5s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"1m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"5s" yaml:"requestTimeout"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// Debug mounts pprof under /debug/pprof/
		Debug bool `env:"HTTP_DEBUG" env-default:"false" yaml:"debug"`
	} `yaml:"http"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"5s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the YAML file at configPath, overlaid with environment variables.
// An empty configPath reads the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, errors.Wrap(err, "could not read environment")
		}
	} else if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, errors.Wrap(err, "could not read config")
	}

	if _, err := navguard.New(cfg.NavigationPolicy()); err != nil {
		return nil, errors.Wrap(err, "invalid navigation policy")
	}

	return &cfg, nil
}

// NavigationPolicy builds the guard policy described by the configuration.
func (c *Config) NavigationPolicy() navguard.Policy {
	p := navguard.DefaultPolicy()
	p.AppOrigin = c.Navigation.AppOrigin
	p.InternalSchemes = append([]string(nil), c.Navigation.InternalSchemes...)
	p.AllowAbout = !c.Navigation.DenyAbout
	if len(c.Navigation.AllowedHosts) > 0 {
		p.AllowedHosts = append([]string(nil), c.Navigation.AllowedHosts...)
	}

	return p
}

// DeepLinkResolver returns the resolver for the configured scheme and origin.
func (c *Config) DeepLinkResolver() deeplink.Resolver {
	return deeplink.NewResolver(c.DeepLink.Scheme, c.Navigation.AppOrigin)
}
