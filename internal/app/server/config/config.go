package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"log"
)

const (
	envPath  = "../../.env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	// AuthCookieName — имя сессионной куки, общее для сервера и клиента
	AuthCookieName = "vaultkeeper_session"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
}

type defaultConfig struct {
	RunAddress  string
	DatabaseURI string
	LogLevel    string
	Env         string
	Migrations  string
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	d := defaultConfig{
		RunAddress:  viper.GetString("run_address"),
		DatabaseURI: viper.GetString("database_uri"),
		LogLevel:    viper.GetString("log_level"),
		Env:         viper.GetString("app_env"),
		Migrations:  viper.GetString("migrations_path"),
	}
	if d.RunAddress == "" {
		d.RunAddress = ":8080"
	}
	if d.Migrations == "" {
		d.Migrations = "migrations"
	}

	config := Config{
		Env: d.Env,
		DB: DB{
			DatabaseURI: d.DatabaseURI,
			Migrations:  d.Migrations,
		},
		Server: Server{RunAddress: d.RunAddress},
		Logger: Logger{LogLevel: d.LogLevel},
	}

	return &config
}

// SecureCookies сообщает, нужен ли флаг Secure на сессионной куке
func (c *Config) SecureCookies() bool {
	return c.Env == EnvProd
}
