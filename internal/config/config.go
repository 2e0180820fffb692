package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	WalletModeRPC      = "rpc"
	WalletModeKeystore = "keystore"
	WalletModeNone     = "none"
)

// App is the configuration of the ledger API server.
type App struct {
	Port                string        `env:"API_PORT,required"`
	NodeURL             string        `env:"ETH_NODE_URL,required"`
	ContractAddress     string        `env:"LEDGER_CONTRACT_ADDRESS,required"`
	DBConnectionURL     string        `env:"DB_CONNECTION_URL,required"`
	JWTSecret           string        `env:"JWT_SECRET,required"`
	WalletMode          string        `env:"WALLET_MODE" envDefault:"rpc"`
	WalletRPCURL        string        `env:"WALLET_RPC_URL"`
	KeystoreDir         string        `env:"KEYSTORE_DIR"`
	KeystorePassphrase  string        `env:"KEYSTORE_PASSPHRASE"`
	KVDir               string        `env:"KV_DIR" envDefault:"./data/kv"`
	ConfirmationTimeout time.Duration `env:"CONFIRMATION_TIMEOUT" envDefault:"2m"`
}

// Deploy is the configuration of the one-shot contract deployment.
type Deploy struct {
	NodeURL            string `env:"ETH_NODE_URL,required"`
	KeystoreDir        string `env:"KEYSTORE_DIR,required"`
	KeystorePassphrase string `env:"KEYSTORE_PASSPHRASE,required"`
	ArtifactPath       string `env:"LEDGER_ARTIFACT_PATH,required"`
}

func NewApp() (App, error) {
	var app App
	if err := parse(&app); err != nil {
		return App{}, err
	}

	if app.WalletRPCURL == "" {
		app.WalletRPCURL = app.NodeURL
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return app, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ContractAddress, validation.Required, validation.By(hexAddress)),
		validation.Field(&a.WalletMode, validation.In(WalletModeRPC, WalletModeKeystore, WalletModeNone)),
		validation.Field(&a.KeystoreDir, validation.When(a.WalletMode == WalletModeKeystore, validation.Required)),
		validation.Field(&a.ConfirmationTimeout, validation.Min(time.Second)),
	)
}

func NewDeploy() (Deploy, error) {
	var deploy Deploy
	if err := parse(&deploy); err != nil {
		return Deploy{}, err
	}
	return deploy, nil
}

func parse(cfg any) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var aggErr env.AggregateError
	if errors.As(err, &aggErr) {
		for _, e := range aggErr.Errors {
			var notSet env.EnvVarIsNotSetError
			if errors.As(e, &notSet) {
				return fmt.Errorf("%w: %s", errEnvVarNotFound, notSet.Key)
			}
		}
	}

	return fmt.Errorf("parse environment: %w", err)
}

func hexAddress(value any) error {
	s, _ := value.(string)
	if !common.IsHexAddress(s) {
		return errors.New("must be a hex encoded address")
	}
	return nil
}
