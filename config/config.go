// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"

	"github.com/netdata/srmctl/logger"
	"github.com/netdata/srmctl/pkg/confopt"
	"github.com/netdata/srmctl/pkg/tlscfg"
	"github.com/netdata/srmctl/pkg/web"
	"github.com/netdata/srmctl/srm/client"
)

// DefaultFile is read by Load when no file is given and it exists in the working directory.
const DefaultFile = "srmctl.yaml"

type (
	Config struct {
		web.HTTPConfig `yaml:",inline" json:""`
		LogLevel       string            `yaml:"log_level,omitempty" json:"log_level"`
		Performance    PerformanceConfig `yaml:"performance,omitempty" json:"performance"`
	}
	PerformanceConfig struct {
		Metrics     []string      `yaml:"metrics,omitempty" json:"metrics"`
		Granularity string        `yaml:"granularity,omitempty" json:"granularity"`
		Window      client.Window `yaml:"window,omitempty" json:"window"`
	}
)

// env holds the environment overrides. Unset variables leave the file values intact.
type env struct {
	URL      string           `envconfig:"SRM_URL"`
	Username string           `envconfig:"SRM_USERNAME"`
	Password string           `envconfig:"SRM_PASSWORD"`
	Timeout  confopt.Duration `envconfig:"SRM_TIMEOUT"`
	LogLevel string           `envconfig:"SRM_LOG_LEVEL"`
	Window   client.Window    `envconfig:"SRM_PERF_WINDOW"`
}

func Default() Config {
	return Config{
		HTTPConfig: web.HTTPConfig{
			RequestConfig: web.RequestConfig{
				URL: "https://127.0.0.1:9569/srm/",
			},
			ClientConfig: web.ClientConfig{
				Timeout: confopt.Duration(time.Second * 10),
				TLSConfig: tlscfg.TLSConfig{
					InsecureSkipVerify: true,
				},
			},
		},
		Performance: PerformanceConfig{
			Metrics:     []string{client.DefaultMetric},
			Granularity: client.DefaultGranularity,
			Window:      client.DefaultWindow,
		},
	}
}

// Load reads the configuration: defaults, then the YAML file, then the environment.
// The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}

	if path != "" {
		p, err := homedir.Expand(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %v", err)
		}
		path = p

		bs, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %v", err)
		}
		if err := yaml.Unmarshal(bs, &cfg); err != nil {
			return Config{}, fmt.Errorf("config '%s': %v", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, fmt.Errorf("config: environment: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var e env
	if err := envconfig.Process("", &e); err != nil {
		return err
	}

	if e.URL != "" {
		c.URL = e.URL
	}
	if e.Username != "" {
		c.Username = e.Username
	}
	if e.Password != "" {
		c.Password = e.Password
	}
	if e.Timeout > 0 {
		c.Timeout = e.Timeout
	}
	if e.LogLevel != "" {
		c.LogLevel = e.LogLevel
	}
	if !e.Window.IsZero() {
		c.Performance.Window = e.Window
	}
	return nil
}

type validated struct {
	URL         string   `validate:"required,url"`
	Username    string   `validate:"required"`
	Password    string   `validate:"required"`
	Metrics     []string `validate:"dive,numeric"`
	Granularity string   `validate:"omitempty,oneof=sample hourly daily"`
	LogLevel    string   `validate:"omitempty,loglevel"`
}

var validate = func() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := logger.ParseLevel(fl.Field().String())
		return err == nil
	})
	return v
}()

// Validate checks the settings needed to talk to the API.
func (c Config) Validate() error {
	v := validated{
		URL:         c.URL,
		Username:    c.Username,
		Password:    c.Password,
		Metrics:     c.Performance.Metrics,
		Granularity: c.Performance.Granularity,
		LogLevel:    c.LogLevel,
	}

	err := validate.Struct(v)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, fmt.Errorf("config: %s: failed '%s' check (value '%v')", fe.Field(), fe.Tag(), redact(fe)))
	}
	return errors.Join(errs...)
}

func redact(fe validator.FieldError) any {
	if fe.Field() == "Password" {
		return "***"
	}
	return fe.Value()
}
