package dsymup

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/Hack-Nocturne/dsymup/types"
	"github.com/Hack-Nocturne/dsymup/utils"
	"github.com/Hack-Nocturne/dsymup/vars"
	"gopkg.in/yaml.v3"
)

// UploadConfig holds everything a run needs. It is built once by LoadConfig
// and not modified afterwards.
type UploadConfig struct {
	APIHost     string       `yaml:"api_host"`
	AccountName string       `yaml:"api_account_name"`
	LicenseKey  types.Secret `yaml:"api_license_key"`

	// Path sources, uploaded in this order. A nil source is absent.
	DSYMPath       *string  `yaml:"dsym_path,omitempty"`
	ContextZipPath *string  `yaml:"dsym_zip_path,omitempty"`
	DSYMPaths      []string `yaml:"dsym_paths,omitempty"`
	DSYMGlobs      []string `yaml:"dsym_globs,omitempty"`

	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// LookupFunc resolves an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadOptions controls where LoadConfig reads options from.
type LoadOptions struct {
	// ConfigFile is a YAML (or JSON) file; empty skips it.
	ConfigFile string
	// ConfigOptional tolerates a missing ConfigFile.
	ConfigOptional bool
	// Lookup defaults to os.LookupEnv.
	Lookup LookupFunc
	// Overrides are explicit values (command line flags) applied last.
	Overrides *UploadConfig
	// Timeout, when set, wins even if zero, so a flag can clear a file timeout.
	Timeout *time.Duration
	// ExtraPaths are appended to dsym_paths rather than replacing it.
	ExtraPaths []string
}

// DefaultConfig returns a config holding only built-in defaults.
func DefaultConfig() *UploadConfig {
	return &UploadConfig{APIHost: vars.DEFAULT_API_HOST}
}

// LoadConfig layers, lowest precedence first: defaults, build context
// variables, APPDYNAMICS_* variables, the config file, overrides.
func LoadConfig(opts LoadOptions) (*UploadConfig, error) {
	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}

	if opts.ConfigFile != "" {
		fileCfg, err := NewUploadConfigFromFile(opts.ConfigFile)
		switch {
		case err == nil:
			cfg.Merge(fileCfg)
		case opts.ConfigOptional && errors.Is(err, os.ErrNotExist):
		default:
			return nil, &types.ConfigurationError{Option: "config", Reason: "loading " + opts.ConfigFile, Err: err}
		}
	}

	if opts.Overrides != nil {
		cfg.Merge(opts.Overrides)
	}
	if opts.Timeout != nil {
		cfg.Timeout = *opts.Timeout
	}
	if len(opts.ExtraPaths) > 0 {
		cfg.DSYMPaths = append(append([]string(nil), cfg.DSYMPaths...), opts.ExtraPaths...)
	}

	return cfg, nil
}

// NewUploadConfigFromFile reads a YAML or JSON file. Only the keys present
// in the file are set on the returned config.
func NewUploadConfigFromFile(path string) (*UploadConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg UploadConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays options found in the environment. Variables exported by
// earlier build steps are read first so the APPDYNAMICS_* ones win.
func (c *UploadConfig) ApplyEnv(lookup LookupFunc) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		return v, ok && v != ""
	}

	if v, ok := get(vars.ENV_CONTEXT_DSYM_OUTPUT_PATH); ok {
		c.DSYMPath = &v
	}
	if v, ok := get(vars.ENV_CONTEXT_DSYM_PATHS); ok {
		c.DSYMPaths = utils.SplitList(v)
	}
	if v, ok := get(vars.ENV_CONTEXT_DSYM_ZIP_PATH); ok {
		c.ContextZipPath = &v
	}

	if v, ok := get(vars.ENV_API_HOST); ok {
		c.APIHost = v
	}
	if v, ok := get(vars.ENV_ACCOUNT_NAME); ok {
		c.AccountName = v
	}
	if v, ok := get(vars.ENV_LICENSE_KEY); ok {
		c.LicenseKey = types.Secret(v)
	}
	if v, ok := get(vars.ENV_DSYM_PATH); ok {
		c.DSYMPath = &v
	}
	if v, ok := get(vars.ENV_DSYM_PATHS); ok {
		c.DSYMPaths = utils.SplitList(v)
	}
	if v, ok := get(vars.ENV_DSYM_GLOBS); ok {
		c.DSYMGlobs = utils.SplitList(v)
	}
	if v, ok := get(vars.ENV_TIMEOUT); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return &types.ConfigurationError{Option: vars.ENV_TIMEOUT, Reason: "invalid duration", Err: err}
		}
		c.Timeout = d
	}

	return nil
}

// Merge overlays every field set on other. Empty strings, nil pointers,
// nil slices and zero durations count as unset.
func (c *UploadConfig) Merge(other *UploadConfig) {
	if other.APIHost != "" {
		c.APIHost = other.APIHost
	}
	if other.AccountName != "" {
		c.AccountName = other.AccountName
	}
	if !other.LicenseKey.IsEmpty() {
		c.LicenseKey = other.LicenseKey
	}
	if other.DSYMPath != nil {
		c.DSYMPath = other.DSYMPath
	}
	if other.ContextZipPath != nil {
		c.ContextZipPath = other.ContextZipPath
	}
	if other.DSYMPaths != nil {
		c.DSYMPaths = other.DSYMPaths
	}
	if other.DSYMGlobs != nil {
		c.DSYMGlobs = other.DSYMGlobs
	}
	if other.Timeout != 0 {
		c.Timeout = other.Timeout
	}
}

// ValidateCredentials fails when the account name or license key is empty.
func (c *UploadConfig) ValidateCredentials() error {
	if c.AccountName == "" {
		return &types.ConfigurationError{
			Option: "api_account_name",
			Reason: "no account name for AppDynamics given, pass it with --account-name or " + vars.ENV_ACCOUNT_NAME,
		}
	}
	if c.LicenseKey.IsEmpty() {
		return &types.ConfigurationError{
			Option: "api_license_key",
			Reason: "no license key for AppDynamics given, pass it with --license-key or " + vars.ENV_LICENSE_KEY,
		}
	}
	return nil
}

// validate runs every check that needs neither the filesystem nor the network.
func (c *UploadConfig) validate() error {
	if err := c.ValidateCredentials(); err != nil {
		return err
	}

	host, err := url.Parse(c.APIHost)
	if err != nil {
		return &types.ConfigurationError{Option: "api_host", Reason: "invalid url", Err: err}
	}
	if (host.Scheme != "http" && host.Scheme != "https") || host.Host == "" {
		return &types.ConfigurationError{Option: "api_host", Reason: fmt.Sprintf("%q is not an http(s) url", c.APIHost)}
	}
	if c.Timeout < 0 {
		return &types.ConfigurationError{Option: "timeout", Reason: "must not be negative"}
	}

	return nil
}
