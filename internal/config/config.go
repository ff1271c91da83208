// Package config loads the server configuration from flags, the environment,
// an optional .env file and an optional YAML config file, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DotEnvFileName is loaded from the working directory when present.
	DotEnvFileName = ".env"

	envKeyPrefix = "SKYPORT"

	APITokenKey          = "api_token"
	TeamIDKey            = "team_id"
	APIBaseURLKey        = "api_base_url"
	VMBaseURLKey         = "vm_base_url"
	ConsolidatedToolsKey = "consolidated_tools"
	TransportKey         = "transport"
	HTTPAddrKey          = "http_addr"
	SentryDSNKey         = "sentry_dsn"
	LogLevelKey          = "log_level"
	configFileKey        = "config"

	DefaultAPIBaseURL = "https://api.skyport.cloud"
	DefaultVMBaseURL  = "https://vm.skyport.cloud"
	DefaultHTTPAddr   = "127.0.0.1:8931"

	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Flag names bound by AddFlags.
const (
	ConfigFlag       = "config"
	TeamFlag         = "team"
	APIBaseURLFlag   = "api-base-url"
	VMBaseURLFlag    = "vm-base-url"
	ConsolidatedFlag = "consolidated"
	TransportFlag    = "transport"
	HTTPAddrFlag     = "http-addr"
)

var ErrMissingAPIToken = errors.New("SKYPORT_API_TOKEN is not set")

// Config is immutable once loaded.
type Config struct {
	// APIToken authenticates every request to the platform API.
	APIToken string

	// TeamID scopes requests to a team when set.
	TeamID string

	// APIBaseURL denotes the base URL of the platform API.
	APIBaseURL string

	// VMBaseURL denotes the base URL of the VM API.
	VMBaseURL string

	// ConsolidatedTools selects one tool per resource family instead of one
	// tool per operation.
	ConsolidatedTools bool

	// Transport is either TransportStdio or TransportHTTP.
	Transport string

	// HTTPAddr is the listen address of the HTTP transport.
	HTTPAddr string

	SentryDSN string
	LogLevel  string

	// File is the config file that was read, if any.
	File string
}

// AddFlags registers the flags Load understands on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFlag, "", "Path to a YAML config file")
	fs.String(TeamFlag, "", "Team to scope requests to")
	fs.String(APIBaseURLFlag, DefaultAPIBaseURL, "Base URL of the platform API")
	fs.String(VMBaseURLFlag, DefaultVMBaseURL, "Base URL of the VM API")
	fs.Bool(ConsolidatedFlag, true, "Expose one tool per resource family")
	fs.String(TransportFlag, TransportStdio, "MCP transport: stdio or http")
	fs.String(HTTPAddrFlag, DefaultHTTPAddr, "Listen address of the http transport")
}

var flagKeys = map[string]string{
	TeamFlag:         TeamIDKey,
	APIBaseURLFlag:   APIBaseURLKey,
	VMBaseURLFlag:    VMBaseURLKey,
	ConsolidatedFlag: ConsolidatedToolsKey,
	TransportFlag:    TransportKey,
	HTTPAddrFlag:     HTTPAddrKey,
}

// Load builds a Config. flags may be nil. Load does not validate the result;
// call Validate for that.
func Load(flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(DotEnvFileName); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed loading %s: %w", DotEnvFileName, err)
	}

	v := viper.New()
	v.SetEnvPrefix(envKeyPrefix)
	v.AutomaticEnv()

	v.SetDefault(APIBaseURLKey, DefaultAPIBaseURL)
	v.SetDefault(VMBaseURLKey, DefaultVMBaseURL)
	v.SetDefault(ConsolidatedToolsKey, true)
	v.SetDefault(TransportKey, TransportStdio)
	v.SetDefault(HTTPAddrKey, DefaultHTTPAddr)

	if err := v.BindEnv(LogLevelKey, "SKYPORT_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, err
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
		if f := flags.Lookup(ConfigFlag); f != nil {
			if err := v.BindPFlag(configFileKey, f); err != nil {
				return nil, err
			}
		}
	}

	if path := v.GetString(configFileKey); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed reading config file %s: %w", path, err)
		}
	}

	return &Config{
		APIToken:          strings.TrimSpace(v.GetString(APITokenKey)),
		TeamID:            strings.TrimSpace(v.GetString(TeamIDKey)),
		APIBaseURL:        v.GetString(APIBaseURLKey),
		VMBaseURL:         v.GetString(VMBaseURLKey),
		ConsolidatedTools: v.GetBool(ConsolidatedToolsKey),
		Transport:         strings.ToLower(v.GetString(TransportKey)),
		HTTPAddr:          v.GetString(HTTPAddrKey),
		SentryDSN:         v.GetString(SentryDSNKey),
		LogLevel:          v.GetString(LogLevelKey),
		File:              v.ConfigFileUsed(),
	}, nil
}

// Validate reports every problem with cfg at once.
func (cfg *Config) Validate() error {
	var result *multierror.Error

	if cfg.APIToken == "" {
		result = multierror.Append(result, ErrMissingAPIToken)
	}

	for name, raw := range map[string]string{
		"API base URL": cfg.APIBaseURL,
		"VM base URL":  cfg.VMBaseURL,
	} {
		if err := validateBaseURL(raw); err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid %s %q: %w", name, raw, err))
		}
	}

	switch cfg.Transport {
	case TransportStdio:
	case TransportHTTP:
		if cfg.HTTPAddr == "" {
			result = multierror.Append(result, errors.New("the http transport requires a listen address"))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("unknown transport %q: expected %s or %s", cfg.Transport, TransportStdio, TransportHTTP))
	}

	return result.ErrorOrNil()
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("scheme must be http or https")
	}
	if u.Host == "" {
		return errors.New("host is required")
	}
	return nil
}
