// Package cli implements the pidash command-line interface.
//
// The root command runs the dashboard; everything else is support:
//
//	pidash               - Live dashboard (default)
//	pidash config        - Print the resolved config as YAML
//	pidash version       - Print build information
//	pidash completion    - Generate shell completion scripts
//
// # Configuration Precedence
//
// Flags the user sets win over PIDASH_* environment variables, which win over
// the config file, which wins over built-in defaults. Out-of-range values are
// clamped rather than rejected; an unknown --color is the one hard error.
//
// # Errors
//
// Commands return structured errors from internal/errors. Execute prints them
// with their suggestion and exits with status 1.
package cli
