package config

import (
	env_utils "deskstore/internal/util/env"
	"deskstore/internal/util/logger"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting     bool
	DatabaseDsn   string            `env:"DATABASE_DSN"     required:"true"`
	EnvMode       env_utils.EnvMode `env:"ENV_MODE"         env-default:"development"`
	ServerAddress string            `env:"SERVER_ADDRESS"   env-default:":4010"`
	// name of the HTTP header carrying the API key secret
	APIKeyHeader string `env:"API_KEY_HEADER"   env-default:"access_token"`
	// cache (optional; direct store reads when unset)
	ValkeyHost     string `env:"VALKEY_HOST"      required:"false"`
	ValkeyPort     string `env:"VALKEY_PORT"      required:"false"`
	ValkeyUsername string `env:"VALKEY_USERNAME"  required:"false"`
	ValkeyPassword string `env:"VALKEY_PASSWORD"  required:"false"`
	ValkeyIsSsl    bool   `env:"VALKEY_IS_SSL"    required:"false"`
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	// Test runs use an in-memory database and defaults only,
	// no .env file is required.
	if env.IsTesting {
		env.EnvMode = env_utils.EnvModeDevelopment
		env.ServerAddress = ":4010"
		env.APIKeyHeader = "access_token"
		return
	}

	loadDotEnvFile()

	if err := cleanenv.ReadEnv(&env); err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	if env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}

	if !env.EnvMode.IsValid() {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}
	log.Info("ENV_MODE loaded", "mode", env.EnvMode)

	if env.ValkeyHost != "" && env.ValkeyPort == "" {
		log.Error("VALKEY_PORT is empty while VALKEY_HOST is set")
		os.Exit(1)
	}

	log.Info("Environment variables loaded successfully!")
}

func loadDotEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	rootPath := cwd
	for {
		if _, err := os.Stat(filepath.Join(rootPath, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(rootPath)
		if parent == rootPath {
			break
		}

		rootPath = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(rootPath, ".env"),
	}

	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Successfully loaded .env", "path", path)
			return
		}
	}

	log.Warn("No .env file found, relying on process environment")
}
