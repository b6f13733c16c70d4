package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/BlumBot_Go/internal/domain"
)

var validate = validator.New()

// Validate checks struct tags and the rules that span accounts
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	seen := make(map[string]struct{}, len(cfg.Accounts))
	for _, acc := range cfg.Accounts {
		if _, dup := seen[acc.Session]; dup {
			return fmt.Errorf("invalid configuration: duplicate session %q", acc.Session)
		}
		seen[acc.Session] = struct{}{}

		if cfg.RequireProxy && acc.Proxy == "" {
			return fmt.Errorf("%s: %w", acc.Session, domain.ErrProxyRequired)
		}
		if _, err := acc.ProxyURL(); err != nil {
			return err
		}
	}
	return nil
}
