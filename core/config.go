package core

import (
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env      string
		Debug    bool
		TestMode bool
		AppName  string
		Build    string

		Server   ServerConfig
		Database DatabaseConfig
		AI       AIConfig
		Log      LogConfig

		SendgridApiKey string
		FromName       string
		FromEmail      string

		RollbarToken string
	}

	ServerConfig struct {
		Host            string
		Port            int
		ShutdownTimeout time.Duration
	}

	DatabaseConfig struct {
		// Path of the SQLite state file. ":memory:" is accepted for tests.
		Path string
	}

	AIConfig struct {
		ApiKey  string
		Model   string
		Timeout time.Duration
	}

	LogConfig struct {
		Dir        string
		MaxSizeMB  int
		MaxBackups int
		MaxAgeDays int
	}
)

func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *Config) DefaultFromEmail() mail.Address {
	return mail.Address{Name: c.FromName, Address: c.FromEmail}
}

// LoadConfig reads configuration from the environment (and an optional
// .env.<env> file in the working directory), applying defaults for anything
// unset. ENV selects the deployment environment: DEV (default), TEST or PROD.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "TeachMate")
	v.SetDefault("build", "dev")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("database.path", "teachmate.db")
	v.SetDefault("ai.apiKey", "")
	v.SetDefault("ai.model", "gemini-1.5-flash")
	v.SetDefault("ai.timeout", 30*time.Second)
	v.SetDefault("log.dir", "")
	v.SetDefault("log.maxSizeMB", 10)
	v.SetDefault("log.maxBackups", 3)
	v.SetDefault("log.maxAgeDays", 28)
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("fromName", "TeachMate")
	v.SetDefault("fromEmail", "noreply@localhost")
	v.SetDefault("rollbarToken", "")

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	case "PROD":
		v.SetDefault("debug", false)
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(".", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}

	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	conf := &Config{Env: env}
	if err := v.Unmarshal(conf); err != nil {
		return nil, errors.Wrap(err, "parsing configuration")
	}
	return conf, nil
}
