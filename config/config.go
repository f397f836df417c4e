// Package config loads the typed service configuration from YAML files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// SQLite is the device-local store holding the profile, the only
	// durable entity.
	SQLite struct {
		Path string `json:"path" yaml:"path"`
	} `json:"sqlite" yaml:"sqlite"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// AutoReply drives the simulated counterpart of the messaging screen.
	AutoReply *AutoReplyConfig `json:"autoReply" yaml:"autoReply"`

	// Simulator drives the synthetic notification loops.
	Simulator *SimulatorConfig `json:"simulator" yaml:"simulator"`

	// Checkout configures the simulated order pipeline.
	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	// Payment configures the simulated payment gateway.
	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	// QRCode configuration for listing share codes.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// AutoReplyConfig bounds the randomized delay before a synthetic reply is
// delivered.
type AutoReplyConfig struct {
	MinDelay time.Duration `json:"minDelay" yaml:"minDelay"`
	MaxDelay time.Duration `json:"maxDelay" yaml:"maxDelay"`
}

// SimulatorConfig defines the notification simulator behavior.
type SimulatorConfig struct {
	// PollInterval between catalog-growth checks.
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`

	// AlertInterval between synthetic alert draws.
	AlertInterval time.Duration `json:"alertInterval" yaml:"alertInterval"`

	// AlertProbability of emitting an alert on each draw, in [0,1].
	AlertProbability float64 `json:"alertProbability" yaml:"alertProbability"`

	// MaxAlerts retained; older alerts are evicted.
	MaxAlerts int `json:"maxAlerts" yaml:"maxAlerts"`
}

// CheckoutConfig defines the simulated order pipeline.
type CheckoutConfig struct {
	ProcessingDelay time.Duration `json:"processingDelay" yaml:"processingDelay"`
}

// PaymentConfig defines the simulated payment gateway.
type PaymentConfig struct {
	// PlatformFeePercent applied to purchases.
	PlatformFeePercent int `json:"platformFeePercent" yaml:"platformFeePercent"`

	// RegistrationFee is the flat amount (DA) charged for account registration.
	RegistrationFee int `json:"registrationFee" yaml:"registrationFee"`

	ProcessingDelay time.Duration `json:"processingDelay" yaml:"processingDelay"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	// Overlay environment variables: SECRETKEY_ACCESS -> secretkey.access.
	// Struct matching below is case-insensitive, so a flat lowercase path
	// is enough to align with the YAML keys.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills the simulation sections so a minimal YAML file still
// yields the documented application behavior.
func (cfg *Config) applyDefaults() {
	if cfg.SQLite.Path == "" {
		cfg.SQLite.Path = "antigaspi.db"
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{BcryptCost: 12}
	}
	if cfg.AutoReply == nil {
		cfg.AutoReply = &AutoReplyConfig{}
	}
	if cfg.AutoReply.MinDelay <= 0 {
		cfg.AutoReply.MinDelay = 1500 * time.Millisecond
	}
	// Relative to MinDelay so a raised minimum keeps a valid window.
	if cfg.AutoReply.MaxDelay <= cfg.AutoReply.MinDelay {
		cfg.AutoReply.MaxDelay = cfg.AutoReply.MinDelay + 2*time.Second
	}
	if cfg.Simulator == nil {
		cfg.Simulator = &SimulatorConfig{}
	}
	if cfg.Simulator.PollInterval <= 0 {
		cfg.Simulator.PollInterval = 5 * time.Second
	}
	if cfg.Simulator.AlertInterval <= 0 {
		cfg.Simulator.AlertInterval = 30 * time.Second
	}
	if cfg.Simulator.AlertProbability <= 0 {
		cfg.Simulator.AlertProbability = 0.3
	}
	if cfg.Simulator.MaxAlerts <= 0 {
		cfg.Simulator.MaxAlerts = 10
	}
	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{}
	}
	if cfg.Checkout.ProcessingDelay <= 0 {
		cfg.Checkout.ProcessingDelay = 2 * time.Second
	}
	if cfg.Payment == nil {
		cfg.Payment = &PaymentConfig{}
	}
	if cfg.Payment.PlatformFeePercent <= 0 {
		cfg.Payment.PlatformFeePercent = 10
	}
	if cfg.Payment.RegistrationFee <= 0 {
		cfg.Payment.RegistrationFee = 500
	}
	if cfg.Payment.ProcessingDelay <= 0 {
		cfg.Payment.ProcessingDelay = 2 * time.Second
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}
}
