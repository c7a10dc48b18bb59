package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jekabolt/grbpwr-pnl/internal/accounts"
	httpapi "github.com/jekabolt/grbpwr-pnl/internal/api/http"
	"github.com/jekabolt/grbpwr-pnl/internal/bucket"
	"github.com/jekabolt/grbpwr-pnl/internal/dto"
	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/jekabolt/grbpwr-pnl/internal/ledger"
	"github.com/jekabolt/grbpwr-pnl/internal/pipeline"
	"github.com/jekabolt/grbpwr-pnl/internal/refresh"
	"github.com/jekabolt/grbpwr-pnl/internal/revalidation"
	"github.com/jekabolt/grbpwr-pnl/internal/store"
	"github.com/jekabolt/grbpwr-pnl/log"
	"github.com/spf13/viper"
)

// ReportConfig is the [report] section shared by every job.
type ReportConfig struct {
	Unit                dto.Unit          `mapstructure:"unit"`
	DirectProfitFormula string            `mapstructure:"direct_profit_formula"`
	CategoryNames       map[string]string `mapstructure:"category_names"`
	// GeneratedAt pins metadata.generated_at (RFC3339) so reruns are byte-identical.
	GeneratedAt string `mapstructure:"generated_at"`
}

// BatchConfig controls how many jobs run at once.
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// Config represents the global configuration for the service.
type Config struct {
	Logger   log.Config            `mapstructure:"logger"`
	Report   ReportConfig          `mapstructure:"report"`
	Stores   pipeline.StoresConfig `mapstructure:"stores"`
	Ledger   ledger.Config         `mapstructure:"ledger"`
	Accounts accounts.Config       `mapstructure:"accounts"`
	Jobs     []pipeline.JobConfig  `mapstructure:"jobs"`
	Batch    BatchConfig           `mapstructure:"batch"`
	DB       store.Config          `mapstructure:"mysql"`
	Bucket   bucket.Config         `mapstructure:"bucket"`
	HTTP     httpapi.Config        `mapstructure:"http"`
	Refresh  refresh.Config        `mapstructure:"refresh"`

	Revalidation revalidation.Config `mapstructure:"revalidation"`
}

// Pipeline returns the settings every job runs with.
func (c *Config) Pipeline() pipeline.Config {
	return pipeline.Config{
		Stores:              c.Stores,
		DirectProfitFormula: entity.DirectProfitFormula(c.Report.DirectProfitFormula),
		CategoryNames:       c.Report.CategoryNames,
	}
}

// GeneratedAt returns the pinned generation time, or nil when reports carry
// the wall clock.
func (c *Config) GeneratedAt() (*time.Time, error) {
	if strings.TrimSpace(c.Report.GeneratedAt) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(c.Report.GeneratedAt))
	if err != nil {
		return nil, fmt.Errorf("report.generated_at: %w", err)
	}
	return &t, nil
}

// JobNames lists the configured job names in file order.
func (c *Config) JobNames() []string {
	names := make([]string, 0, len(c.Jobs))
	for _, j := range c.Jobs {
		names = append(names, j.Name)
	}
	return names
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g. MYSQL__DSN for mysql.dsn,
// and the common keys are also bound to flat names such as MYSQL_DSN.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	setDefaults(v)
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/grbpwr-pnl")
		v.AddConfigPath("/etc/grbpwr-pnl")
		// config file is optional when running from env vars only
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %w", err)
	}
	if len(config.Accounts) == 0 {
		config.Accounts = accounts.DefaultConfig()
	}
	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv()
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	unit := dto.DefaultUnit()
	v.SetDefault("report.unit.divisor", unit.Divisor)
	v.SetDefault("report.unit.label", unit.Label)
	v.SetDefault("report.unit.money_precision", unit.MoneyPrecision)
	v.SetDefault("report.unit.pct_precision", unit.PctPrecision)
	v.SetDefault("report.direct_profit_formula", string(entity.FormulaGrossMinusSelling))

	stores := pipeline.DefaultStoresConfig()
	v.SetDefault("stores.head_office", stores.HeadOffice)
	v.SetDefault("stores.online", stores.Online)

	v.SetDefault("batch.concurrency", 1)

	v.SetDefault("http.port", "8081")
	v.SetDefault("refresh.interval", refresh.DefaultConfig().WorkerInterval)
}

// dsnFromEnv builds a MySQL DSN from discrete MYSQL_* variables.
func dsnFromEnv() string {
	host := os.Getenv("MYSQL_HOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("MYSQL_PORT")
	if port == "" {
		port = "3306"
	}
	user, password, database := os.Getenv("MYSQL_USER"), os.Getenv("MYSQL_PASSWORD"), os.Getenv("MYSQL_DATABASE")
	if user == "" || database == "" {
		return ""
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true", user, password, host, port, database)
	if os.Getenv("MYSQL_TLS_CA_PATH") != "" {
		dsn += "&tls=custom"
	}
	return dsn
}

// bindEnvVars binds flat environment variable names to config keys.
func bindEnvVars(v *viper.Viper) {
	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// Report
	v.BindEnv("report.generated_at", "REPORT_GENERATED_AT")
	v.BindEnv("report.direct_profit_formula", "REPORT_DIRECT_PROFIT_FORMULA")
	v.BindEnv("report.unit.legacy_yoy_sentinel", "REPORT_LEGACY_YOY_SENTINEL")

	// Batch
	v.BindEnv("batch.concurrency", "BATCH_CONCURRENCY")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.rate_limit.requests", "HTTP_RATE_LIMIT_REQUESTS")
	v.BindEnv("http.rate_limit.window", "HTTP_RATE_LIMIT_WINDOW")

	// Bucket
	v.BindEnv("bucket.s3_access_key", "BUCKET_S3_ACCESS_KEY")
	v.BindEnv("bucket.s3_secret_access_key", "BUCKET_S3_SECRET_ACCESS_KEY")
	v.BindEnv("bucket.s3_endpoint", "BUCKET_S3_ENDPOINT")
	v.BindEnv("bucket.s3_bucket_name", "BUCKET_S3_BUCKET_NAME")
	v.BindEnv("bucket.s3_bucket_location", "BUCKET_S3_BUCKET_LOCATION")
	v.BindEnv("bucket.base_folder", "BUCKET_BASE_FOLDER")
	v.BindEnv("bucket.public_url", "BUCKET_PUBLIC_URL")

	// Refresh
	v.BindEnv("refresh.enabled", "REFRESH_ENABLED")
	v.BindEnv("refresh.interval", "REFRESH_INTERVAL")
	v.BindEnv("refresh.run_on_start", "REFRESH_RUN_ON_START")

	// Revalidation
	v.BindEnv("revalidation.revalidate_secret", "REVALIDATION_REVALIDATE_SECRET")
	v.BindEnv("revalidation.http_timeout", "REVALIDATION_HTTP_TIMEOUT")
}
