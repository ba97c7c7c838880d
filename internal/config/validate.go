package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be between 4 and 31 (got %d)", c.Auth.PasswordHashCost)
	}

	if c.Notify.Email.Enabled {
		if c.Notify.Email.APIKey == "" {
			return fmt.Errorf("notify.email.api_key is required when the email channel is enabled")
		}
		if c.Notify.Email.AdminEmail == "" {
			return fmt.Errorf("notify.email.admin_email is required when the email channel is enabled")
		}
	}

	if c.Notify.WhatsApp.Enabled {
		switch {
		case c.Notify.WhatsApp.AccountSID == "":
			return fmt.Errorf("notify.whatsapp.account_sid is required when the whatsapp channel is enabled")
		case c.Notify.WhatsApp.AuthToken == "":
			return fmt.Errorf("notify.whatsapp.auth_token is required when the whatsapp channel is enabled")
		case c.Notify.WhatsApp.From == "":
			return fmt.Errorf("notify.whatsapp.from is required when the whatsapp channel is enabled")
		case c.Notify.WhatsApp.AdminNumber == "":
			return fmt.Errorf("notify.whatsapp.admin_number is required when the whatsapp channel is enabled")
		}
	}

	return nil
}
