package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Session store drivers
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config struct to hold the configuration
type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	DefaultLanguage string        `envconfig:"DEFAULT_LANGUAGE" default:"en"`
	SessionSecret   string        `envconfig:"SESSION_SECRET" default:"helpdesk-dev-secret"`
	SessionStore    string        `envconfig:"SESSION_STORE" default:"memory"`
	SQLiteDSN       string        `envconfig:"SQLITE_DSN" default:"file:helpdesk?mode=memory&cache=shared"`
	SessionMaxAge   time.Duration `envconfig:"SESSION_MAX_AGE" default:"24h"`

	// Operator the MCP server logs in as
	OperatorName  string `envconfig:"MCP_OPERATOR_NAME" default:"MCP Operator"`
	OperatorPhone string `envconfig:"MCP_OPERATOR_PHONE" default:"+10000000000"`
	OperatorRole  string `envconfig:"MCP_OPERATOR_ROLE" default:"admin"`
}

// IsDevelopment returns true if environment is development
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load function to load the configuration from the environment variables
func Load() (Config, error) {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found")
	}

	return process()
}

func process() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return Config{}, fmt.Errorf("unable to get envconfig: %w", err)
	}

	switch c.SessionStore {
	case StoreMemory, StoreSQLite:
	default:
		return Config{}, fmt.Errorf("unknown SESSION_STORE %q", c.SessionStore)
	}

	return c, nil
}
