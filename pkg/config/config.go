package config

// Config is the full tsfix configuration, assembled from embedded defaults,
// an optional config file, and TSFIX_* environment variables.
type Config struct {
	Scan   ScanConfig   `koanf:"scan" toml:"scan"`
	Rules  RulesConfig  `koanf:"rules" toml:"rules"`
	Verify VerifyConfig `koanf:"verify" toml:"verify"`
}

// ScanConfig controls file collection.
type ScanConfig struct {
	// Root is the directory to scan, relative to the working directory.
	Root string `koanf:"root" toml:"root"`

	// Extensions lists the file extensions considered source files.
	Extensions []string `koanf:"extensions" toml:"extensions"`

	// Exclude lists directory names skipped during descent.
	Exclude []string `koanf:"exclude" toml:"exclude"`
}

// RulesConfig toggles individual rewrite rules.
type RulesConfig struct {
	DefiniteAssignment bool `koanf:"definite_assignment" toml:"definite_assignment"`
	ErrorTyping        bool `koanf:"error_typing" toml:"error_typing"`
	PossiblyUndefined  bool `koanf:"possibly_undefined" toml:"possibly_undefined"`
	NullableAssignment bool `koanf:"nullable_assignment" toml:"nullable_assignment"`
	UnusedImports      bool `koanf:"unused_imports" toml:"unused_imports"`
	UnusedVars         bool `koanf:"unused_vars" toml:"unused_vars"`
}

// VerifyConfig holds the suggested follow-up command printed after a run.
type VerifyConfig struct {
	Command string `koanf:"command" toml:"command"`
}

// Enabled returns the set of enabled rule names keyed by the stable rule
// identifiers used by the rules package.
func (r RulesConfig) Enabled() map[string]bool {
	return map[string]bool{
		"definite-assignment": r.DefiniteAssignment,
		"error-typing":        r.ErrorTyping,
		"possibly-undefined":  r.PossiblyUndefined,
		"nullable-assignment": r.NullableAssignment,
		"unused-imports":      r.UnusedImports,
		"unused-vars":         r.UnusedVars,
	}
}
