package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Hack-Nocturne/dsymup"
	"github.com/Hack-Nocturne/dsymup/types"
	"github.com/Hack-Nocturne/dsymup/utils"
	"github.com/Hack-Nocturne/dsymup/vars"
	_ "github.com/joho/godotenv/autoload"
	flag "github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

// run parses args, loads the configuration and uploads. It returns the
// process exit code.
func run(args []string, stdout, stderr io.Writer, lookup dsymup.LookupFunc) int {
	fs := flag.NewFlagSet("dsymup", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: dsymup [flags] [dsym.zip ...]\n\nUpload dSYM symbolication files to AppDynamics.\n\n")
		fs.PrintDefaults()
	}

	configFile := fs.StringP("config", "c", vars.DEFAULT_CONFIG_FILE, "YAML or JSON config file")
	apiHost := fs.String("api-host", "", "API host url for AppDynamics (env "+vars.ENV_API_HOST+", default "+vars.DEFAULT_API_HOST+")")
	accountName := fs.String("account-name", "", "account name for AppDynamics (env "+vars.ENV_ACCOUNT_NAME+")")
	licenseKey := fs.String("license-key", "", "license key for AppDynamics (env "+vars.ENV_LICENSE_KEY+")")
	dsymPath := fs.String("dsym-path", "", "path to your symbols file, e.g. App.dSYM.zip (env "+vars.ENV_DSYM_PATH+")")
	dsymPaths := fs.StringSlice("dsym-paths", nil, "comma separated symbol files (env "+vars.ENV_DSYM_PATHS+")")
	dsymGlobs := fs.StringArray("dsym-glob", nil, "glob matching symbol files, e.g. 'build/**/*.dSYM.zip' (repeatable)")
	timeout := fs.Duration("timeout", 0, "per request timeout, 0 for none (env "+vars.ENV_TIMEOUT+")")
	showVersion := fs.BoolP("version", "v", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, "dsymup", vars.VERSION)
		return 0
	}

	ui := utils.NewUI(stdout)

	overrides := &dsymup.UploadConfig{
		APIHost:     *apiHost,
		AccountName: *accountName,
		LicenseKey:  types.Secret(*licenseKey),
	}
	if fs.Changed("dsym-path") {
		overrides.DSYMPath = dsymPath
	}
	if fs.Changed("dsym-paths") {
		overrides.DSYMPaths = *dsymPaths
	}
	if fs.Changed("dsym-glob") {
		overrides.DSYMGlobs = *dsymGlobs
	}

	opts := dsymup.LoadOptions{
		ConfigFile:     *configFile,
		ConfigOptional: !fs.Changed("config"),
		Lookup:         lookup,
		Overrides:      overrides,
		ExtraPaths:     fs.Args(),
	}
	if fs.Changed("timeout") {
		opts.Timeout = timeout
	}

	cfg, err := dsymup.LoadConfig(opts)
	if err != nil {
		ui.Error("Failure loading config: %v", err)
		return 1
	}

	if _, err := dsymup.Run(cfg, ui); err != nil {
		ui.Error("%v", err)
		return 1
	}

	return 0
}
