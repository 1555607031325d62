package contract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/huangsam/salesrank/schema"
)

// Default values for configuration.
const (
	DefaultPrecision   = 0 // shortest representation that round-trips
	MaxPrecision       = 6
	DefaultPeopleTable = "salespeople"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
)

// tableNamePattern restricts SQL table names to plain identifiers, optionally schema-qualified.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// LoggerConfig holds settings for the structured logger.
type LoggerConfig struct {
	Level      string // debug, info, warn, error
	Format     string // console or json
	LogFile    string // Optional rotating log file
	MaxSize    int    // Megabytes before rotation
	MaxBackups int
	MaxAge     int // Days
	Compress   bool
	Color      bool // Colorize console levels
}

// LogRotationRawInput holds log rotation settings from the YAML config file.
type LogRotationRawInput struct {
	MaxSize    int  `mapstructure:"max_size"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAge     int  `mapstructure:"max_age"`
	Compress   bool `mapstructure:"compress"`
}

// Config holds the runtime configuration for a report run.
// This struct is the "final, validated" config.
type Config struct {
	PeoplePath     string
	DefinitionPath string

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	PeopleSource schema.SourceKind
	PeopleDSN    string // Please use env var as this is plaintext
	PeopleTable  string

	Logger LoggerConfig
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	Args []string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Precision    int    `mapstructure:"precision"`
	Width        int    `mapstructure:"width"`
	Color        string `mapstructure:"color"`
	PeopleSource string `mapstructure:"people-source"`
	PeopleDSN    string `mapstructure:"people-dsn"`
	PeopleTable  string `mapstructure:"people-table"`
	LogLevel     string `mapstructure:"log-level"`
	LogFormat    string `mapstructure:"log-format"`
	LogFile      string `mapstructure:"log-file"`

	// --- Log rotation from config file ---
	LogRotation LogRotationRawInput `mapstructure:"log_rotation"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ResolvedOutputFile returns the file the output will be written to.
// An empty string means stdout.
func (c *Config) ResolvedOutputFile() string {
	if c.OutputFile != "" {
		return c.OutputFile
	}
	switch c.Output {
	case schema.CSVOut:
		return schema.DefaultCSVFile
	case schema.ParquetOut:
		return schema.DefaultParquetFile
	default:
		return ""
	}
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateSourceConfig(cfg, input); err != nil {
		return err
	}
	processLoggerConfig(cfg, input)
	return processInputArgs(cfg, input)
}

// ValidateSourceConnectionString validates the format of connection strings
// for the SQL people sources.
func ValidateSourceConnectionString(kind schema.SourceKind, dsn string) error {
	switch kind {
	case schema.JSONSource:
		return nil
	case schema.SQLiteSource:
		if dsn == "" {
			return fmt.Errorf("people-dsn is required when using %s source", kind)
		}
	case schema.MySQLSource:
		if dsn == "" {
			return fmt.Errorf("people-dsn is required when using %s source", kind)
		}
		if !strings.Contains(dsn, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(dsn, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLSource:
		if dsn == "" {
			return fmt.Errorf("people-dsn is required when using %s source", kind)
		}
		if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
			if !strings.Contains(dsn, "host=") {
				return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
			}
			if !strings.Contains(dsn, "dbname=") {
				return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
			}
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedSource, kind)
	}
	return nil
}

// ProcessProfilingConfig processes the profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be csv, text, json, parquet", input.Output)
	}

	if input.Width < 0 {
		return fmt.Errorf("width must not be negative (received %d)", input.Width)
	}
	return nil
}

// validateSourceConfig validates where the people list is read from.
func validateSourceConfig(cfg *Config, input *ConfigRawInput) error {
	kind := schema.SourceKind(strings.ToLower(input.PeopleSource))
	if kind == "" {
		kind = schema.JSONSource
	}
	if _, ok := schema.ValidSourceKinds[kind]; !ok {
		return fmt.Errorf("invalid people source '%s'. must be json, sqlite, mysql, postgresql", input.PeopleSource)
	}
	cfg.PeopleSource = kind
	cfg.PeopleDSN = input.PeopleDSN
	if err := ValidateSourceConnectionString(kind, cfg.PeopleDSN); err != nil {
		return err
	}

	cfg.PeopleTable = input.PeopleTable
	if cfg.PeopleTable == "" {
		cfg.PeopleTable = DefaultPeopleTable
	}
	if !tableNamePattern.MatchString(cfg.PeopleTable) {
		return fmt.Errorf("invalid people table %q. must be a plain identifier", cfg.PeopleTable)
	}
	return nil
}

// processLoggerConfig fills in the logger settings with defaults.
func processLoggerConfig(cfg *Config, input *ConfigRawInput) {
	cfg.Logger = LoggerConfig{
		Level:      strings.ToLower(input.LogLevel),
		Format:     strings.ToLower(input.LogFormat),
		LogFile:    input.LogFile,
		MaxSize:    input.LogRotation.MaxSize,
		MaxBackups: input.LogRotation.MaxBackups,
		MaxAge:     input.LogRotation.MaxAge,
		Compress:   input.LogRotation.Compress,
		Color:      cfg.UseColors,
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = DefaultLogLevel
	}
	if cfg.Logger.Format == "" {
		cfg.Logger.Format = DefaultLogFormat
	}
	if cfg.Logger.MaxSize <= 0 {
		cfg.Logger.MaxSize = 10
	}
}

// processInputArgs validates the positional arguments.
func processInputArgs(cfg *Config, input *ConfigRawInput) error {
	paths, err := ValidateInputArgs(input.Args)
	if err != nil {
		return err
	}
	cfg.PeoplePath = paths.People
	cfg.DefinitionPath = paths.Definition
	return nil
}
