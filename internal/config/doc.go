// Package config defines the branding and UI-feature configuration model of
// the Connectly client: its typed schema ([AppConfig]), built-in defaults
// ([Defaults]), override parsing and merging ([ParseOverride], [Resolve]),
// validation and the write-once process-wide accessor ([Init], [Get]).
//
// Overrides are partial trees ([PartialAppConfig]) assembled by [Loader] from
// the following sources, later sources winning per leaf:
//  1. An override document: JSON, YAML or TOML file, or an http(s) URL
//  2. CONNECTLY_* environment variables
//  3. --set path=value command-line flags
//
// Unknown keys are rejected in every source, never ignored. Type mismatches
// and invalid values are reported as [ErrSchemaViolation], unknown keys as
// [ErrUnknownKey]; both carry the offending path.
//
// The package also loads the serving process's own settings
// ([GetRuntimeConfig]) from environment variables and flags.
package config
