// Package config turns command-line arguments and the optional YAML file into validated startup settings.
//
// Argument validation happens before the terminal is touched, so every error here is reported on a normal
// screen and exits with status 1.
package config
