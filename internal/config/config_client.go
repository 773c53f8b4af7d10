package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the API client.
type ClientAdapter struct {
	// HTTPAddress is the base address of the API server.
	// Env: SHOP_API_ADDRESS
	HTTPAddress string `env:"SHOP_API_ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: SHOP_API_TIMEOUT
	RequestTimeout time.Duration `env:"SHOP_API_TIMEOUT"`
}

// ClientCredentials is the userName/email pair the client logs in with.
type ClientCredentials struct {
	// Env: SHOP_API_USERNAME
	UserName string `env:"SHOP_API_USERNAME"`
	// Env: SHOP_API_EMAIL
	Email string `env:"SHOP_API_EMAIL"`
}

// ClientConfig is the top-level configuration of the smoke client.
type ClientConfig struct {
	Adapter     ClientAdapter
	Credentials ClientCredentials
}

// GetClientConfig builds and validates the client configuration from the
// environment and the given command-line arguments (without the program
// name). Environment values win over flags, as for the server.
func GetClientConfig(args []string) (*ClientConfig, error) {
	envCfg := new(ClientConfig)
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{envCfg, flagCfg, defaultClientConfig()} {
		if err := mergo.Merge(cfg, src); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}

func parseClientFlags(args []string) (*ClientConfig, error) {
	cfg := new(ClientConfig)

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "API server address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 5s)")
	fs.StringVar(&cfg.Credentials.UserName, "u", "", "User name to log in with")
	fs.StringVar(&cfg.Credentials.Email, "e", "", "E-mail to log in with")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "localhost:3000",
			RequestTimeout: 10 * time.Second,
		},
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Credentials.UserName == "" || cfg.Credentials.Email == "" {
		return errors.Join(ErrInvalidAdapterConfigs, errors.New("userName and email are required"))
	}

	return nil
}
