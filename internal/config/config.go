package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	RevenueSync RevenueSync `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string        `mapstructure:"-"`
	Driver       string        `mapstructure:"database_driver"`
	Password     string        `mapstructure:"database_password"`
	URL          string        `mapstructure:"database_url"`
	User         string        `mapstructure:"database_user"`
	QueryTimeout time.Duration `mapstructure:"database_query_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// RevenueSync controls the job that rebuilds the revenue table from paid invoices.
// Year 0 means the current year at run time.
type RevenueSync struct {
	CronSchedule string `mapstructure:"revenue_sync_cron"`
	Enabled      bool   `mapstructure:"revenue_sync_enabled"`
	Year         int    `mapstructure:"revenue_sync_year"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/invoicing?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_QUERY_TIMEOUT", "5s")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("REVENUE_SYNC_CRON", "0 2 * * *") // every day at 2am
	viper.SetDefault("REVENUE_SYNC_ENABLED", false)
	viper.SetDefault("REVENUE_SYNC_YEAR", 0)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not get the current directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Trying to load .env from: ", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Warn("Could not load a .env file from any known location")
}
