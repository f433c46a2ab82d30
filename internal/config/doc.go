// Package config provides configuration structures and utilities for invreport.
// It defines the report thresholds, list sizes, output selection and the
// optional .invreport YAML file that overrides the defaults.
package config
