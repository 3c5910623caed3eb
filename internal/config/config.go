package config

// Environment variables read on startup (a local .env file is also honored)
const (
	// EnvPythonBin overrides the interpreter used to run the exporter
	EnvPythonBin = "EXPORT_PYTHON_BIN"

	// EnvScriptPath overrides the path of the exporter script
	EnvScriptPath = "EXPORT_SCRIPT_PATH"

	// EnvServiceAccountKey, when set, is passed to the exporter as a third
	// positional argument (the Firestore service account key path)
	EnvServiceAccountKey = "EXPORT_SERVICE_ACCOUNT_KEY"
)

// Config holds the settings for a single export run
type Config struct {
	// PythonBin is the interpreter that runs the exporter script
	PythonBin string

	// ScriptPath is the exporter script. The child process runs in the
	// script's directory so the spreadsheet is written next to it.
	ScriptPath string

	// ServiceAccountKey is the optional credentials path appended as a
	// third argument. Empty means the exporter is invoked with the two
	// date arguments only.
	ServiceAccountKey string

	// OutputFile is the artifact the exporter produces on success, named
	// in the confirmation message
	OutputFile string

	// DryRun when enabled logs the exporter command without executing it
	DryRun bool

	// NoPause skips the final wait for operator acknowledgment
	NoPause bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		PythonBin:  "python",
		ScriptPath: "export_production_records.py",
		OutputFile: "production_records.xlsx",
	}
}

// ApplyEnv overrides the configuration from the environment. getenv is
// injected so tests can supply values without touching the process
// environment.
func (c *Config) ApplyEnv(getenv func(key string) string) {
	if v := getenv(EnvPythonBin); v != "" {
		c.PythonBin = v
	}
	if v := getenv(EnvScriptPath); v != "" {
		c.ScriptPath = v
	}
	if v := getenv(EnvServiceAccountKey); v != "" {
		c.ServiceAccountKey = v
	}
}
