// SPDX-License-Identifier: MIT

// Package config resolves rectilinear run settings.
//
// Values are layered in a fixed order: Default, then a YAML file, then
// environment variables (a local .env file is read first if present),
// with command-line flags applied last by package cli. Every field that
// can come from the environment carries an `env:"RECT_..."` tag.
//
// Example rectilinear.yaml:
//
//	input:
//	  policy: lenient
//	search:
//	  workers: 4
//	  pruning: true
//	log:
//	  level: debug
//	  file: rectilinear.log
//	render:
//	  width: 1024
//	  height: 1024
package config
