package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const configName = "config"

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

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Reminder configuration for the scheduling pipeline
	Reminder ReminderConfig `json:"reminder" yaml:"reminder"`

	// QRCode configuration for medication share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// ReminderConfig defines the reminder scheduler configuration
type ReminderConfig struct {
	// Interval between evaluation ticks
	Interval time.Duration `json:"interval" yaml:"interval"`

	// Lookback is the trailing due window; should match the tick interval so
	// polling jitter cannot drop a dose slot
	Lookback time.Duration `json:"lookback" yaml:"lookback"`

	// TickTimeout bounds store reads and gateway calls within one tick
	TickTimeout time.Duration `json:"tickTimeout" yaml:"tickTimeout"`

	// DispatchWorkers caps concurrent per-user dispatches within one tick
	DispatchWorkers int `json:"dispatchWorkers" yaml:"dispatchWorkers"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// New loads config.yaml from the working directory or a parent config/
// directory, then applies environment variable overrides.
func New() (*Config, error) {
	cfg, err := load(configName, ".", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.Reminder.applyDefaults()

	return cfg, nil
}

const (
	defaultReminderInterval    = time.Minute
	defaultTickTimeout         = 15 * time.Second
	defaultDispatchWorkers     = 8
	minReminderDispatchWorkers = 1
)

func (c *ReminderConfig) applyDefaults() {
	if c.Interval <= 0 {
		c.Interval = defaultReminderInterval
	}
	if c.Lookback <= 0 {
		c.Lookback = c.Interval
	}
	if c.TickTimeout <= 0 {
		c.TickTimeout = defaultTickTimeout
	}
	if c.DispatchWorkers < minReminderDispatchWorkers {
		c.DispatchWorkers = defaultDispatchWorkers
	}
}

// load reads <name>.yaml through koanf and layers env vars on top.
func load(name string, searchPaths ...string) (*Config, error) {
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(name, searchPaths)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s failed", configFile)
	}

	yamlKeys := koanfInstance.Raw()

	// Env vars override YAML values. Segments are aligned with the camelCase
	// keys already loaded from YAML, e.g. SECRETKEY_ACCESS -> secretKey.access.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, yamlKeys), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(Config)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config failed")
	}

	return cfg, nil
}

func findConfigFile(name string, searchPaths []string) (string, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "os.Getwd")
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(pwd, path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", name)
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
