// Package config loads the command line configuration.
//
// Every flag can also be set through the environment as YAML_INCLUDE_<FLAG>
// with dashes replaced by underscores, e.g. YAML_INCLUDE_ERROR_ON_CIRCULAR.
// Flags given on the command line take precedence over the environment.
package config
