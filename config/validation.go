package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is usable before the process
// commits to it. A bad store configuration must fail startup, not requests.
func ValidateConfig(cfg *Config) error {
	if cfg.ServerPort == "" {
		return ValidationError{Field: "SERVER_PORT", Message: "must not be empty"}
	}

	switch cfg.DBDriver {
	case "sqlite":
		if cfg.DBPath == "" {
			return ValidationError{Field: "DB_PATH", Message: "required for the sqlite driver"}
		}
	case "postgres":
		for field, value := range map[string]string{
			"DB_HOST": cfg.DBHost,
			"DB_PORT": cfg.DBPort,
			"DB_USER": cfg.DBUser,
			"DB_NAME": cfg.DBName,
		} {
			if value == "" {
				return ValidationError{Field: field, Message: "required for the postgres driver"}
			}
		}
	default:
		return ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)}
	}

	return nil
}
