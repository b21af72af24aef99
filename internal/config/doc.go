// Package config loads the generator's YAML configuration and the
// environment overrides that apply on top of it.
//
// A minimal file:
//
//	version: "1"
//	source: ./examples/drive
//
// Relative paths in the file are resolved against the file's directory.
package config
