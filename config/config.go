package config

import (
	"os"
	"path/filepath"
	"strconv"
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

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

// Storage drivers.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Booking configuration for conflict detection and quotes
	Booking *BookingConfig `json:"booking" yaml:"booking"`

	// Review configuration for rating bounds
	Review *ReviewConfig `json:"review" yaml:"review"`

	// Cache configuration for the property read cache
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Events configuration for domain event publishing
	Events *EventsConfig `json:"events" yaml:"events"`

	// QRCode configuration for booking check-in codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Seed *SeedConfig `json:"seed" yaml:"seed"`
}

// StorageConfig selects the entity store backend
type StorageConfig struct {
	// Driver is "memory" or "postgres"
	Driver string `json:"driver" yaml:"driver"`

	// AutoMigrate creates or updates the schema on start (postgres only)
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold above which GORM queries are logged as slow
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BookingConfig defines booking conflict and pricing configuration
type BookingConfig struct {
	// ConflictPolicy is one of "all", "ignore_cancelled", "ignore_inactive"
	ConflictPolicy string `json:"conflictPolicy" yaml:"conflictPolicy"`

	// CleaningFee is a flat fee added to every quote
	CleaningFee int `json:"cleaningFee" yaml:"cleaningFee"`

	// ServiceFeeRate is applied to the nightly subtotal
	ServiceFeeRate float64 `json:"serviceFeeRate" yaml:"serviceFeeRate"`

	// RecomputeTotalPrice replaces the client supplied total with the server quote
	RecomputeTotalPrice bool `json:"recomputeTotalPrice" yaml:"recomputeTotalPrice"`
}

// ReviewConfig defines the accepted rating range
type ReviewConfig struct {
	MinRating int `json:"minRating" yaml:"minRating"`
	MaxRating int `json:"maxRating" yaml:"maxRating"`
}

// CacheConfig defines the two-tier property cache
type CacheConfig struct {
	// LocalMaxSize is the number of properties kept in process
	LocalMaxSize int64         `json:"localMaxSize" yaml:"localMaxSize"`
	LocalTTL     time.Duration `json:"localTTL" yaml:"localTTL"`

	// MemcachedHosts enables the shared tier when non-empty
	MemcachedHosts []string      `json:"memcachedHosts" yaml:"memcachedHosts"`
	MemcachedTTL   time.Duration `json:"memcachedTTL" yaml:"memcachedTTL"`

	// InvalidationFence is how long an invalidated property refuses refills
	InvalidationFence time.Duration `json:"invalidationFence" yaml:"invalidationFence"`
}

// EventsConfig defines domain event publishing
type EventsConfig struct {
	// Provider type: "" disables publishing, "local" for local HTTP, "google" for Google Pub/Sub, "rabbitmq" for AMQP
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// AMQP connection URL (for rabbitmq provider)
	AMQPURL string `json:"amqpUrl" yaml:"amqpUrl"`

	// Topic exchange the rabbitmq provider publishes to, routed by event type
	Exchange string `json:"exchange" yaml:"exchange"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// SeedConfig controls loading of demo listings into an empty store
type SeedConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Account that owns the demo listings, created when missing
	HostUsername string `json:"hostUsername" yaml:"hostUsername"`
	HostPassword string `json:"hostPassword" yaml:"hostPassword"`
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
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
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

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional sections so callers never see nil pointers.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverMemory
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = 24 * time.Hour
	}
	if cfg.Booking == nil {
		cfg.Booking = &BookingConfig{CleaningFee: 50, ServiceFeeRate: 0.12}
	}
	if cfg.Booking.ConflictPolicy == "" {
		cfg.Booking.ConflictPolicy = "all"
	}
	if cfg.Review == nil {
		cfg.Review = &ReviewConfig{}
	}
	if cfg.Review.MinRating == 0 && cfg.Review.MaxRating == 0 {
		cfg.Review.MinRating, cfg.Review.MaxRating = 1, 10
	}
	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Events == nil {
		cfg.Events = &EventsConfig{}
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.Seed == nil {
		cfg.Seed = &SeedConfig{}
	}
	if cfg.Seed.HostUsername == "" {
		cfg.Seed.HostUsername = "demo-host"
	}
}

// Validate reports settings that would make the service misbehave.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.Postgres == nil {
			return errors.New("storage driver postgres requires a postgres section")
		}
	default:
		return errors.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Review.MinRating > c.Review.MaxRating {
		return errors.Errorf("review.minRating %d exceeds review.maxRating %d", c.Review.MinRating, c.Review.MaxRating)
	}
	if c.Booking.CleaningFee < 0 || c.Booking.ServiceFeeRate < 0 {
		return errors.New("booking fees must not be negative")
	}
	if strings.TrimSpace(c.SecretKey.Access) == "" {
		return errors.New("secretKey.access must be set")
	}

	return nil
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
