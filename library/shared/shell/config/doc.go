// Package config loads the application configuration from the environment and builds the
// logger and the PostgreSQL connections the journal engines run on.
package config
