package config

import (
	"errors"
	"fmt"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errInvalidValue error = errors.New("invalid environment variable value")

const (
	apiPortEnvKey       = "API_PORT"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	passwordHashEnvKey  = "PASSWORD_HASH"
	seedDemoEnvKey      = "SEED_DEMO_DATA"
	telegramTokenEnvKey = "TELEGRAM_BOT_TOKEN"
)

const (
	HashSHA256 = "sha256"
	HashBcrypt = "bcrypt"
)

type App struct {
	Port             string
	DBConnectionURL  string
	PasswordHash     string
	SeedDemoData     bool
	TelegramBotToken string
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	passwordHash := os.Getenv(passwordHashEnvKey)
	if passwordHash == "" {
		passwordHash = HashSHA256
	}
	if passwordHash != HashSHA256 && passwordHash != HashBcrypt {
		return App{}, fmt.Errorf("%w: %s=%s", errInvalidValue, passwordHashEnvKey, passwordHash)
	}

	return App{
		Port:             port,
		DBConnectionURL:  dbConn,
		PasswordHash:     passwordHash,
		SeedDemoData:     os.Getenv(seedDemoEnvKey) == "true",
		TelegramBotToken: os.Getenv(telegramTokenEnvKey),
	}, nil
}
