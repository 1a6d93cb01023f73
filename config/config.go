package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"snapdish/internal/validation"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath      = "."
	defaultEnvPrefix = "SNAPDISH_"

	defaultUserAgent  = "snapdish-cli"
	defaultAPITimeout = 30 * time.Second
	defaultTokenTTL   = 24 * time.Hour

	// StoreMemory keeps development backend data in process memory.
	StoreMemory = "memory"
	// StorePostgres keeps development backend data in PostgreSQL.
	StorePostgres = "postgres"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	API *APIConfig `json:"api" yaml:"api" validate:"required"`

	Storage *StorageConfig `json:"storage" yaml:"storage" validate:"required"`

	// Backend configures the development backend only; the client ignores it.
	Backend *BackendConfig `json:"backend" yaml:"backend"`

	// Postgres is read only when backend.store is postgres.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// APIConfig points the client at a meal backend.
type APIConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl" validate:"required,url"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
}

// StorageConfig locates the client's local state.
type StorageConfig struct {
	// Directory receiving captured and materialized meal photos
	ImageDir string `json:"imageDir" yaml:"imageDir" validate:"required"`

	// SQLite database file holding the session token
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath" validate:"required"`

	// IANA zone applied to backend times that carry no offset; empty means the system zone
	Timezone string `json:"timezone" yaml:"timezone"`
}

// BackendConfig defines the development backend settings
type BackendConfig struct {
	Port        int           `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
	TokenSecret string        `json:"tokenSecret" yaml:"tokenSecret"`
	TokenTTL    time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	BcryptCost  int           `json:"bcryptCost" yaml:"bcryptCost"`
	Store       string        `json:"store" yaml:"store" validate:"omitempty,oneof=memory postgres"`
}

// Location resolves the configured timezone.
func (s *StorageConfig) Location() (*time.Location, error) {
	if strings.TrimSpace(s.Timezone) == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", s.Timezone)
	}

	return loc, nil
}

// LoadWithEnv loads .yaml files through koanf.
// Environment variables carrying prefix override keys of the loaded file.
func LoadWithEnv[T any](currEnv, prefix string, configPath ...string) (*T, error) {
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
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
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

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(k, v string) (string, any) {
			// SNAPDISH_API_BASEURL -> api.baseUrl
			key := canonicalizeEnvKey(strings.TrimPrefix(k, prefix), existingConfigMap)

			return key, v
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
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", defaultEnvPrefix, "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		// SNAPDISH_POSTGRES_REPLICAS_0_HOST, SNAPDISH_POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv(defaultEnvPrefix + "POSTGRES_REPLICAS_")
	}

	return finalize(cfg)
}

func buildReplicasFromEnv(prefix string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		itemPrefix := prefix + strconv.Itoa(i) + "_"

		host := os.Getenv(itemPrefix + "HOST")
		port := os.Getenv(itemPrefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(itemPrefix + "USERNAME"),
			Password: os.Getenv(itemPrefix + "PASSWORD"),
		})
	}

	return replicas
}

func finalize(cfg *Config) (*Config, error) {
	if err := validation.Struct(validation.New(), cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	if strings.TrimSpace(cfg.API.UserAgent) == "" {
		cfg.API.UserAgent = defaultUserAgent
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}
	if cfg.Backend != nil {
		if cfg.Backend.TokenTTL <= 0 {
			cfg.Backend.TokenTTL = defaultTokenTTL
		}
		if cfg.Backend.Store == "" {
			cfg.Backend.Store = StoreMemory
		}
		if cfg.Backend.Store == StorePostgres && cfg.Postgres == nil {
			return nil, errors.New("invalid config: backend.store is postgres but the postgres section is missing")
		}
	}
	if _, err := cfg.Storage.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
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
