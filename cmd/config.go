package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort                string        `mapstructure:"http_port"`
	ShutdownTimeout         time.Duration `mapstructure:"shutdown_timeout"`
	DBHost                  string        `mapstructure:"db_host"`
	DBPort                  string        `mapstructure:"db_port"`
	DBUser                  string        `mapstructure:"db_user"`
	DBPassword              string        `mapstructure:"db_password"`
	DBName                  string        `mapstructure:"db_name"`
	DBSslMode               string        `mapstructure:"db_sslmode"`
	LogLevel                string        `mapstructure:"log_level"`
	LogFormat               string        `mapstructure:"log_format"`
	OverdueJobSchedule      string        `mapstructure:"overdue_job_schedule"`
	FleetSummaryJobSchedule string        `mapstructure:"fleet_summary_job_schedule"`
}

// DSN renders the connection settings as a postgres URL, usable by both gorm and the
// migration driver.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   c.DBName,
	}
	q := u.Query()
	q.Set("sslmode", c.DBSslMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// LoadConfig reads envFile into the environment when it exists and then resolves every
// setting from the environment, falling back to defaults.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()

	v.SetDefault("http_port", "8080")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "truckrental")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("overdue_job_schedule", "0 8 * * *")
	v.SetDefault("fleet_summary_job_schedule", "0 * * * *")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
