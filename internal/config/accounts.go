package config

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// Account is one entry of the accounts file
type Account struct {
	Session string `yaml:"session" validate:"required"`
	Proxy   string `yaml:"proxy" validate:"omitempty,url"`
}

type accountsFile struct {
	Accounts []Account `yaml:"accounts"`
}

// ProxyURL parses Proxy; nil when unset
func (a Account) ProxyURL() (*url.URL, error) {
	if a.Proxy == "" {
		return nil, nil
	}
	u, err := url.Parse(a.Proxy)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy for %s: %w", a.Session, err)
	}
	return u, nil
}

// LoadAccounts reads the YAML accounts file
func LoadAccounts(path string) ([]Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts file: %w", err)
	}

	var file accountsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse accounts file %s: %w", path, err)
	}
	return file.Accounts, nil
}
