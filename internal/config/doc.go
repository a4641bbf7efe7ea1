// Package config loads sorm tool configuration.
//
// Values are resolved in three layers: built-in defaults, an optional YAML
// file, then environment variables. Validate reports every problem at once,
// naming the environment variable that controls the field.
//
//	database:
//	  host: localhost
//	  port: "8000"
//	  namespace: sorm
//	  database: main
//	log:
//	  level: debug
//	  format: text
package config
