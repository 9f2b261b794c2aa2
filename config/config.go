package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	FrontendDir  string        `mapstructure:"frontend_dir"`
}

// BookingConfig carries the deployment-level scheduling constants. The
// availability engine receives these as parameters, it never reads them
// ambiently.
type BookingConfig struct {
	OpenTime    string `mapstructure:"open_time"`
	CloseTime   string `mapstructure:"close_time"`
	SlotMinutes int    `mapstructure:"slot_minutes"`
}

// OpenMinutes returns the business opening time in minutes since midnight.
func (b BookingConfig) OpenMinutes() (int, error) {
	return parseClock(b.OpenTime)
}

// CloseMinutes returns the business closing time in minutes since midnight.
func (b BookingConfig) CloseMinutes() (int, error) {
	return parseClock(b.CloseTime)
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	From     string `mapstructure:"from"`
	Password string `mapstructure:"password"`
	NotifyTo string `mapstructure:"notify_to"`
}

type BusinessConfig struct {
	Name      string `mapstructure:"name"`
	Tagline   string `mapstructure:"tagline"`
	Email     string `mapstructure:"email"`
	Phone     string `mapstructure:"phone"`
	Location  string `mapstructure:"location"`
	Instagram string `mapstructure:"instagram"`
}

type NotifierConfig struct {
	BatchSize     int           `mapstructure:"batch_size"`
	PollInterval  time.Duration `mapstructure:"poll_interval"`
	RetryAttempts int           `mapstructure:"retry_attempts"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
}

type Config struct {
	Server    ServerConfig   `mapstructure:"server"`
	Database  DatabaseConfig `mapstructure:"database"`
	Booking   BookingConfig  `mapstructure:"booking"`
	SMTP      SMTPConfig     `mapstructure:"smtp"`
	Business  BusinessConfig `mapstructure:"business"`
	Notifier  NotifierConfig `mapstructure:"notifier"`
	RateLimit struct {
		Enabled           bool    `mapstructure:"enabled"`
		RequestsPerSecond float64 `mapstructure:"requests_per_second"`
		Burst             int     `mapstructure:"burst"`
	} `mapstructure:"rate_limit"`
	Security struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"security"`
}

// secretOverrides are the values never committed to config.yaml. Set via
// SALON_SMTP_PASSWORD and friends.
type secretOverrides struct {
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	SMTPFrom     string `envconfig:"SMTP_FROM"`
	NotifyTo     string `envconfig:"NOTIFY_TO"`
	DBPassword   string `envconfig:"DB_PASSWORD"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var secrets secretOverrides
	if err := envconfig.Process("salon", &secrets); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	if secrets.SMTPPassword != "" {
		config.SMTP.Password = secrets.SMTPPassword
	}
	if secrets.SMTPFrom != "" {
		config.SMTP.From = secrets.SMTPFrom
	}
	if secrets.NotifyTo != "" {
		config.SMTP.NotifyTo = secrets.NotifyTo
	}
	if secrets.DBPassword != "" {
		config.Database.Password = secrets.DBPassword
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validate(cfg *Config) error {
	open, err := cfg.Booking.OpenMinutes()
	if err != nil {
		return fmt.Errorf("booking.open_time: %w", err)
	}
	close, err := cfg.Booking.CloseMinutes()
	if err != nil {
		return fmt.Errorf("booking.close_time: %w", err)
	}
	if open >= close {
		return fmt.Errorf("booking window is empty: open %s, close %s", cfg.Booking.OpenTime, cfg.Booking.CloseTime)
	}
	if cfg.Booking.SlotMinutes <= 0 {
		return fmt.Errorf("booking.slot_minutes must be positive")
	}
	return nil
}
