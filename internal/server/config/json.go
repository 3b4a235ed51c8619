package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/sessionkeeper/internal/flagx"
	"github.com/dmitrijs2005/sessionkeeper/internal/timex"
)

// JsonConfig is the intermediate structure for JSON configuration files. It
// uses timex.Duration for interval fields, which allows both string values
// such as "30m" and integer nanoseconds. After unmarshalling, its fields are
// copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr         string         `json:"endpoint_addr"`
	DatabaseDSN          string         `json:"database_dsn"`
	SessionSecret        string         `json:"session_secret"`
	Environment          string         `json:"environment"`
	BcryptCost           int            `json:"bcrypt_cost"`
	CodeValidityDuration timex.Duration `json:"code_validity_duration"`
	SMTPAddr             string         `json:"smtp_addr"`
	MailFrom             string         `json:"mail_from"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config. The file path comes from the -c/-config flags; when neither is
// set, no JSON file is loaded. A file that cannot be read or parsed panics,
// matching the fail-fast startup policy.
//
// Empty JSON fields leave the corresponding Config value untouched, so the
// file only needs to name the settings it overrides.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SessionSecret != "" {
		config.SessionSecret = c.SessionSecret
	}
	if c.Environment != "" {
		config.Environment = c.Environment
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.CodeValidityDuration.Duration != 0 {
		config.CodeValidityDuration = c.CodeValidityDuration.Duration
	}
	if c.SMTPAddr != "" {
		config.SMTPAddr = c.SMTPAddr
	}
	if c.MailFrom != "" {
		config.MailFrom = c.MailFrom
	}
}
