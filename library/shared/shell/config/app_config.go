package config

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const (
	JournalEngineMemory   = "memory"
	JournalEnginePostgres = "postgres"

	DBAdapterPGX  = "pgx"
	DBAdapterSQL  = "sql"
	DBAdapterSQLX = "sqlx"
)

const (
	defaultLibraryName    = "Central Library"
	defaultLibraryAddress = "123 Library St."
	defaultJournalEngine  = JournalEngineMemory
	defaultDBAdapter      = DBAdapterPGX
	defaultEventsTable    = "events"
	defaultLogLevel       = "info"
	defaultMetricsAddr    = ":2112"
)

// ErrInvalidAppConfig is returned when the environment holds an invalid configuration.
var ErrInvalidAppConfig = errors.New("invalid app config")

// AppConfig is the complete configuration of the library application.
type AppConfig struct {
	LibraryName    string
	LibraryAddress string
	LoanDays       int
	MaxBooks       int
	FinePerDay     int

	JournalEngine      string
	DBAdapter          string
	PostgresDSN        string
	PostgresReplicaDSN string
	EventsTable        string

	LogLevel       string
	MetricsEnabled bool
	MetricsAddr    string
}

type envBinding struct {
	key          string
	envVar       string
	defaultValue any
}

var envBindings = []envBinding{
	{key: "library_name", envVar: "LIBRARY_NAME", defaultValue: defaultLibraryName},
	{key: "library_address", envVar: "LIBRARY_ADDRESS", defaultValue: defaultLibraryAddress},
	{key: "loan_days", envVar: "LIBRARY_LOAN_DAYS", defaultValue: core.DefaultLoanDays},
	{key: "max_books", envVar: "LIBRARY_MAX_BOOKS", defaultValue: core.DefaultMaxBooks},
	{key: "fine_per_day", envVar: "LIBRARY_FINE_PER_DAY", defaultValue: core.DefaultFinePerDay},
	{key: "journal_engine", envVar: "LIBRARY_JOURNAL_ENGINE", defaultValue: defaultJournalEngine},
	{key: "db_adapter", envVar: "LIBRARY_DB_ADAPTER", defaultValue: defaultDBAdapter},
	{key: "postgres_dsn", envVar: "LIBRARY_POSTGRES_DSN", defaultValue: ""},
	{key: "postgres_replica_dsn", envVar: "LIBRARY_POSTGRES_REPLICA_DSN", defaultValue: ""},
	{key: "events_table", envVar: "LIBRARY_EVENTS_TABLE", defaultValue: defaultEventsTable},
	{key: "log_level", envVar: "LIBRARY_LOG_LEVEL", defaultValue: defaultLogLevel},
	{key: "metrics_enabled", envVar: "LIBRARY_METRICS_ENABLED", defaultValue: false},
	{key: "metrics_addr", envVar: "LIBRARY_METRICS_ADDR", defaultValue: defaultMetricsAddr},
}

// LoadAppConfig reads the LIBRARY_* environment variables, applies defaults and validates the result.
func LoadAppConfig() (AppConfig, error) {
	v := viper.New()

	for _, binding := range envBindings {
		if err := v.BindEnv(binding.key, binding.envVar); err != nil {
			return AppConfig{}, errors.Join(ErrInvalidAppConfig, err)
		}

		v.SetDefault(binding.key, binding.defaultValue)
	}

	cfg := AppConfig{
		LibraryName:        v.GetString("library_name"),
		LibraryAddress:     v.GetString("library_address"),
		LoanDays:           v.GetInt("loan_days"),
		MaxBooks:           v.GetInt("max_books"),
		FinePerDay:         v.GetInt("fine_per_day"),
		JournalEngine:      v.GetString("journal_engine"),
		DBAdapter:          v.GetString("db_adapter"),
		PostgresDSN:        v.GetString("postgres_dsn"),
		PostgresReplicaDSN: v.GetString("postgres_replica_dsn"),
		EventsTable:        v.GetString("events_table"),
		LogLevel:           v.GetString("log_level"),
		MetricsEnabled:     v.GetBool("metrics_enabled"),
		MetricsAddr:        v.GetString("metrics_addr"),
	}

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, errors.Join(ErrInvalidAppConfig, err)
	}

	return cfg, nil
}

// Validate checks value ranges; the DSN is only required for the postgres journal engine.
func (c AppConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.LibraryName, validation.Required),
		validation.Field(&c.LoanDays, validation.Required, validation.Min(1)),
		validation.Field(&c.MaxBooks, validation.Required, validation.Min(1)),
		validation.Field(&c.FinePerDay, validation.Min(0)),
		validation.Field(&c.JournalEngine, validation.Required, validation.In(JournalEngineMemory, JournalEnginePostgres)),
		validation.Field(&c.DBAdapter, validation.Required, validation.In(DBAdapterPGX, DBAdapterSQL, DBAdapterSQLX)),
		validation.Field(&c.PostgresDSN, validation.Required.When(c.JournalEngine == JournalEnginePostgres)),
		validation.Field(&c.EventsTable, validation.Required),
		validation.Field(&c.LogLevel, validation.Required, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.MetricsAddr, validation.Required.When(c.MetricsEnabled)),
	)
}

// UsesPostgres reports whether the journal runs on PostgreSQL.
func (c AppConfig) UsesPostgres() bool {
	return c.JournalEngine == JournalEnginePostgres
}

// HasReplica reports whether a replica DSN is configured.
func (c AppConfig) HasReplica() bool {
	return c.PostgresReplicaDSN != ""
}
