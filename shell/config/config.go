package config

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix      = "RECENTLYSEEN"
	configName     = "recentlyseen"
	configType     = "yaml"
	DriverPGX      = "pgx"
	DriverSQLX     = "sqlx"
	DriverSQL      = "sql"
	LogFormatText  = "text"
	LogFormatJSON  = "json"
	defaultDriver  = DriverPGX
	defaultTable   = "events"
	defaultMaxConn = 8
)

// Keys of all configuration values.
const (
	KeyDatabaseDSN        = "database.dsn"
	KeyDatabaseReplicaDSN = "database.replica_dsn"
	KeyDatabaseDriver     = "database.driver"
	KeyDatabaseMaxConns   = "database.max_conns"
	KeyEventStoreTable    = "eventstore.table"
	KeyDragonsTable       = "dragons.table"
	KeyDragonsEvergreen   = "dragons.evergreen"
	KeyRecencyThreshold   = "recency.threshold"
	KeyLogLevel           = "log.level"
	KeyLogFormat          = "log.format"
)

// DefaultRecencyThreshold is 30 days.
const DefaultRecencyThreshold = 30 * 24 * time.Hour

var (
	// ErrReadingConfigFailed is returned when a config file exists but can't be read.
	ErrReadingConfigFailed = errors.New("reading the config file failed")

	// ErrDecodingConfigFailed is returned when the config values don't fit the Config struct.
	ErrDecodingConfigFailed = errors.New("decoding the config failed")

	// ErrUnknownDriver is returned for database drivers other than pgx, sqlx, and sql.
	ErrUnknownDriver = errors.New("unknown database driver")

	// ErrUnknownLogFormat is returned for log formats other than text and json.
	ErrUnknownLogFormat = errors.New("unknown log format")

	// ErrInvalidLogLevel is returned for log levels slog can't parse.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrMissingDSN is returned when a connection is requested without a DSN.
	ErrMissingDSN = errors.New("database dsn must be configured")
)

// Config is the complete configuration.
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	EventStore EventStoreConfig `mapstructure:"eventstore"`
	Dragons    DragonsConfig    `mapstructure:"dragons"`
	Recency    RecencyConfig    `mapstructure:"recency"`
	Log        LogConfig        `mapstructure:"log"`
}

// DatabaseConfig configures the Postgres connection.
type DatabaseConfig struct {
	DSN        string `mapstructure:"dsn"`
	ReplicaDSN string `mapstructure:"replica_dsn"`
	Driver     string `mapstructure:"driver"`
	MaxConns   int32  `mapstructure:"max_conns"`
}

// EventStoreConfig configures the event log the sightings are stored in.
type EventStoreConfig struct {
	Table string `mapstructure:"table"`
}

// DragonsConfig configures the dragons table and the dragons that are known in every realm.
type DragonsConfig struct {
	Table     string   `mapstructure:"table"`
	Evergreen []string `mapstructure:"evergreen"`
}

// RecencyConfig configures what "recently seen" means.
type RecencyConfig struct {
	Threshold time.Duration `mapstructure:"threshold"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NewViper creates a viper instance with defaults and environment binding.
// If configFile is empty, recentlyseen.yaml is looked up in the working directory and is optional.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault(KeyDatabaseDSN, "")
	v.SetDefault(KeyDatabaseReplicaDSN, "")
	v.SetDefault(KeyDatabaseDriver, defaultDriver)
	v.SetDefault(KeyDatabaseMaxConns, defaultMaxConn)
	v.SetDefault(KeyEventStoreTable, defaultTable)
	v.SetDefault(KeyDragonsTable, "dragons")
	v.SetDefault(KeyDragonsEvergreen, []string{"Bahamut"})
	v.SetDefault(KeyRecencyThreshold, DefaultRecencyThreshold)
	v.SetDefault(KeyLogLevel, slog.LevelInfo.String())
	v.SetDefault(KeyLogFormat, LogFormatText)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Join(ErrReadingConfigFailed, err)
		}

		return v, nil
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Join(ErrReadingConfigFailed, err)
		}
	}

	return v, nil
}

// FromViper decodes and validates the Config.
func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Join(ErrDecodingConfigFailed, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load is NewViper followed by FromViper.
func Load(configFile string) (Config, error) {
	v, err := NewViper(configFile)
	if err != nil {
		return Config{}, err
	}

	return FromViper(v)
}

func (c Config) validate() error {
	switch c.Database.Driver {
	case DriverPGX, DriverSQLX, DriverSQL:
	default:
		return ErrUnknownDriver
	}

	switch c.Log.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return ErrUnknownLogFormat
	}

	if _, err := c.Log.level(); err != nil {
		return err
	}

	return nil
}

func (l LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, errors.Join(ErrInvalidLogLevel, err)
	}

	return level, nil
}

// NewLogger creates a *slog.Logger writing to w with the configured level and format.
func (l LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := l.level()
	if err != nil {
		return nil, err
	}

	options := &slog.HandlerOptions{Level: level}

	switch l.Format {
	case LogFormatJSON:
		return slog.New(slog.NewJSONHandler(w, options)), nil
	case LogFormatText:
		return slog.New(slog.NewTextHandler(w, options)), nil
	default:
		return nil, ErrUnknownLogFormat
	}
}
