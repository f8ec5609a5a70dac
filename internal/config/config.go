package config

import (
	"fmt"
	"time"

	"github.com/jellydator/validation"
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	Port            string        `envconfig:"API_PORT" default:"8080"`
	DBConnectionURL string        `envconfig:"DB_CONNECTION_URL" required:"true"`
	JWTSecret       string        `envconfig:"JWT_SECRET" required:"true"`
	DataDir         string        `envconfig:"WALLET_DATA_DIR" default:"./data"`
	InfuraToken     string        `envconfig:"INFURA_TOKEN"`
	NetworkChainID  string        `envconfig:"NETWORK_CHAIN_ID"`
	ScryptN         int           `envconfig:"SCRYPT_N" default:"262144"`
	ScryptR         int           `envconfig:"SCRYPT_R" default:"8"`
	ScryptP         int           `envconfig:"SCRYPT_P" default:"1"`
	RPCTimeout      time.Duration `envconfig:"RPC_TIMEOUT" default:"15s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
}

func NewApp() (App, error) {
	var app App
	if err := envconfig.Process("", &app); err != nil {
		return App{}, fmt.Errorf("process environment: %w", err)
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate environment: %w", err)
	}
	return app, nil
}

// Validate rejects variables that are set but empty, which envconfig's
// required tag lets through.
func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required),
		validation.Field(&a.DBConnectionURL, validation.Required),
		validation.Field(&a.JWTSecret, validation.Required),
		validation.Field(&a.DataDir, validation.Required),
		validation.Field(&a.ScryptN, validation.Required, validation.Max(1<<22)),
		validation.Field(&a.ScryptR, validation.Required, validation.Max(32)),
		validation.Field(&a.ScryptP, validation.Required, validation.Max(16)),
		validation.Field(&a.RPCTimeout, validation.Required),
	)
}
