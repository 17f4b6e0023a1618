package exchange

import (
	"errors"
	"os"
)

// APIKeyPair is the account section of a config file.
type APIKeyPair struct {
	Label     string `json:"label"`
	Host      string `json:"host"`
	ApiKey    string `json:"apiKey"`
	SecretKey string `json:"secretKey"`
}

// environment variables read by FromEnv
const (
	EnvApiKey    = "BTCE_API_KEY"
	EnvSecretKey = "BTCE_API_SECRET"
	EnvHost      = "BTCE_HOST"
)

// FromEnv fills the empty fields of p from the process environment.
func (p APIKeyPair) FromEnv() APIKeyPair {
	if p.ApiKey == "" {
		p.ApiKey = os.Getenv(EnvApiKey)
	}
	if p.SecretKey == "" {
		p.SecretKey = os.Getenv(EnvSecretKey)
	}
	if p.Host == "" {
		p.Host = os.Getenv(EnvHost)
	}
	return p
}

func (p APIKeyPair) Validate() error {
	if p.ApiKey == "" || p.SecretKey == "" {
		return errors.New("apiKey and secretKey are required")
	}
	return nil
}

// String never prints the secret.
func (p APIKeyPair) String() string {
	return "APIKeyPair{label: " + p.Label + ", host: " + p.Host + "}"
}

func (p APIKeyPair) GoString() string {
	return p.String()
}
