package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"parcellocker/internal/adapters/out/postgres"
	"parcellocker/internal/jobs"
	"parcellocker/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. LOCKERD_DB_HOST.
const EnvPrefix = "LOCKERD"

const (
	keyHTTPPort          = "http-port"
	keyDBHost            = "db-host"
	keyDBPort            = "db-port"
	keyDBUser            = "db-user"
	keyDBPassword        = "db-password"
	keyDBName            = "db-name"
	keyDBSslMode         = "db-sslmode"
	keyPoolSize          = "pool-size"
	keyAcquireTimeout    = "acquire-timeout"
	keyOccupancySchedule = "occupancy-schedule"
	keyAuditSchedule     = "audit-schedule"
	keyLogLevel          = "log-level"
)

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	PoolSize          int
	AcquireTimeout    time.Duration
	OccupancySchedule string
	AuditSchedule     string
	LogLevel          string
}

// LoadDotEnv copies variables from the given .env files (default ".env") into
// the process environment. Variables already set win. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// BindFlags registers the configuration flags on flags and binds them to v.
// Each key is also read from LOCKERD_<KEY> with dashes as underscores; an
// explicitly set flag takes precedence over the environment.
func BindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	flags.String(keyHTTPPort, "8080", "HTTP listen port")
	flags.String(keyDBHost, "localhost", "PostgreSQL host")
	flags.String(keyDBPort, "5432", "PostgreSQL port")
	flags.String(keyDBUser, "postgres", "PostgreSQL user")
	flags.String(keyDBPassword, "", "PostgreSQL password")
	flags.String(keyDBName, "parcel_lockers", "PostgreSQL database")
	flags.String(keyDBSslMode, "disable", "PostgreSQL sslmode")
	flags.Int(keyPoolSize, postgres.DefaultPool.MaxOpenConns, "maximum open database connections")
	flags.Duration(keyAcquireTimeout, postgres.DefaultAcquireTimeout, "wait for a pooled connection before failing")
	flags.String(keyOccupancySchedule, jobs.DefaultOccupancySchedule, "cron schedule (with seconds) of the occupancy metrics job")
	flags.String(keyAuditSchedule, jobs.DefaultAuditSchedule, "cron schedule (with seconds) of the integrity audit job")
	flags.String(keyLogLevel, "info", "log level: debug, info, warn or error")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(flags)
}

// LoadConfig reads the bound keys from v and validates them.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		HTTPPort:          strings.TrimSpace(v.GetString(keyHTTPPort)),
		DBHost:            strings.TrimSpace(v.GetString(keyDBHost)),
		DBPort:            strings.TrimSpace(v.GetString(keyDBPort)),
		DBUser:            v.GetString(keyDBUser),
		DBPassword:        v.GetString(keyDBPassword),
		DBName:            strings.TrimSpace(v.GetString(keyDBName)),
		DBSslMode:         strings.TrimSpace(v.GetString(keyDBSslMode)),
		PoolSize:          v.GetInt(keyPoolSize),
		AcquireTimeout:    v.GetDuration(keyAcquireTimeout),
		OccupancySchedule: strings.TrimSpace(v.GetString(keyOccupancySchedule)),
		AuditSchedule:     strings.TrimSpace(v.GetString(keyAuditSchedule)),
		LogLevel:          strings.TrimSpace(v.GetString(keyLogLevel)),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	if c.HTTPPort == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError(keyHTTPPort))
	}
	if c.DBHost == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError(keyDBHost))
	}
	if c.DBName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError(keyDBName))
	}
	if c.PoolSize < 1 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError(keyPoolSize, c.PoolSize, 1, "unbounded"))
	}
	if c.AcquireTimeout <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(keyAcquireTimeout,
			fmt.Errorf("%s is not positive", c.AcquireTimeout)))
	}
	for key, schedule := range map[string]string{
		keyOccupancySchedule: c.OccupancySchedule,
		keyAuditSchedule:     c.AuditSchedule,
	} {
		if _, parseErr := scheduleParser.Parse(schedule); parseErr != nil {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(key, parseErr))
		}
	}
	if _, levelErr := c.SlogLevel(); levelErr != nil {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(keyLogLevel, levelErr))
	}
	return err
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return postgres.DSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Pool sizes the connection pool from PoolSize.
func (c Config) Pool() postgres.Pool {
	return postgres.Pool{
		MaxOpenConns: c.PoolSize,
		MaxIdleConns: max(1, c.PoolSize/2),
	}
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}

func (c Config) Schedules() jobs.Schedules {
	return jobs.Schedules{
		Occupancy: c.OccupancySchedule,
		Audit:     c.AuditSchedule,
	}
}

// scheduleParser accepts the same six-field expressions as cron.WithSeconds.
var scheduleParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)
