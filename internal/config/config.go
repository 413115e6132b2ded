// Package config reads etc/main.toml, environment overrides and validates the result.
package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvJSONOverride is the env variable holding a JSON document merged over the TOML config.
	EnvJSONOverride = "WEBFOLIO_CONFIG_JSON"

	// EnvPrefix prefixes single key overrides, e.g. WEBFOLIO_WEBSERVER_PORT=9000.
	EnvPrefix = "WEBFOLIO"

	// DefaultPath is used when no config directory is given.
	DefaultPath = "./etc/"

	defaultShutDownTime = 5

	invalid = "invalid config"
)

// Redacted replaces secrets in dumps.
const Redacted = "********"

// ReadConfig loads main.toml from dir. Precedence, lowest first: file, WEBFOLIO_* keys, JSON override.
func ReadConfig(dir string) (Config, error) {
	var c Config

	if dir == "" {
		dir = DefaultPath
	}

	v := viper.New()
	v.SetConfigFile(dir + "main.toml")
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	if raw := os.Getenv(EnvJSONOverride); raw != "" {
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return Config{}, errors.Wrapf(err, "failed to decode %s", EnvJSONOverride)
		}
	}

	return c, validate(&c)
}

// DumpConfig renders c as TOML with passwords and keys redacted.
func DumpConfig(c *Config) (string, error) {
	out, err := toml.Marshal(redact(*c))
	if err != nil {
		return "", errors.Wrap(err, "dump config")
	}

	return string(out), nil
}

// DumpConfigJSON renders c as indented JSON with passwords and keys redacted.
func DumpConfigJSON(c *Config) (string, error) {
	out, err := json.MarshalIndent(redact(*c), "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "dump config")
	}

	return string(out) + "\n", nil
}

func redact(c Config) Config {
	for _, s := range []*string{&c.DB.Password, &c.Mail.Password, &c.Media.S3.SecretAccessKey} {
		if *s != "" {
			*s = Redacted
		}
	}

	return c
}

// validate checks the settings the daemon cannot run without and fills in defaults.
func validate(c *Config) error {
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalid)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalid)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	switch c.DB.GormEngine {
	case "":
		c.DB.GormEngine = EngineSQLite
	case EngineMySQL, EnginePostgres, EngineSQLite:
	default:
		return errors.Wrapf(ErrUnknownDBEngine, "%s: %q", invalid, c.DB.GormEngine)
	}

	switch c.Media.Backend {
	case "":
		c.Media.Backend = MediaLocal
	case MediaLocal:
	case MediaS3:
		if c.Media.S3.Bucket == "" {
			return errors.Wrap(ErrEmptyBucket, invalid)
		}
	default:
		return errors.Wrapf(ErrUnknownMediaBackend, "%s: %q", invalid, c.Media.Backend)
	}

	if c.Mail.Enabled && (c.Mail.Host == "" || len(c.Mail.To) == 0) {
		return errors.Wrap(ErrMailIncomplete, invalid)
	}

	return nil
}
