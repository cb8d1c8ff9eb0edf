package vars

const (
	KB_SIZE              = 1_024
	DEFAULT_API_HOST     = "https://api.eum-appdynamics.com"
	UPLOAD_ENDPOINT_PATH = "/eumaggregator/crash-reports/iOSDSym"
	UPLOAD_CONTENT_TYPE  = "application/octet-stream"
	MAX_REDIRECTS        = 5
	MAX_ERROR_BODY_SIZE  = 4 * KB_SIZE // bytes of a failed response kept for diagnostics
	DEFAULT_CONFIG_FILE  = "dsymup.config.yaml"
)

// Environment variables bound to options.
const (
	ENV_API_HOST     = "APPDYNAMICS_HOST"
	ENV_ACCOUNT_NAME = "APPDYNAMICS_ACCOUNT_NAME"
	ENV_LICENSE_KEY  = "APPDYNAMICS_LICENSE_KEY"
	ENV_DSYM_PATH    = "APPDYNAMICS_DSYM_PATH"
	ENV_DSYM_PATHS   = "APPDYNAMICS_DSYM_PATHS"
	ENV_DSYM_GLOBS   = "APPDYNAMICS_DSYM_GLOBS"
	ENV_TIMEOUT      = "APPDYNAMICS_TIMEOUT"
)

// Values exported by earlier build steps (archive, download_dsyms, ...).
const (
	ENV_CONTEXT_DSYM_OUTPUT_PATH = "DSYM_OUTPUT_PATH"
	ENV_CONTEXT_DSYM_PATHS       = "DSYM_PATHS"
	ENV_CONTEXT_DSYM_ZIP_PATH    = "DSYM_ZIP_PATH"
)
