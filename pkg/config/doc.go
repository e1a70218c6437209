// Package config provides configuration management for boardhub.
//
// This package handles loading and validating server configuration from a
// YAML file and environment variables. Environment variables win over file
// values, and each attribute remembers where its value came from so the
// `boardhubctl configuration show` command can report it.
//
// # Configuration Sources
//
//   - BOARDHUB_CONFIG_PATH/boardhub.yml (optional file)
//   - BOARDHUB_* environment variables (override)
//
// # Key Configuration Options
//
//   - BOARDHUB_TOKEN_SECRET: auth token signing secret (environment only)
//   - BOARDHUB_TOKEN_TTL: token lifetime in seconds
//   - BOARDHUB_RECENT_BOARDS_LIMIT: size of "recently viewed" listings
//   - BOARDHUB_SEARCH_RESULT_LIMIT: typeahead search cap
//   - REDIS_URL: recency store connection
//   - DATABASE_URL: database connection (consumed by pkg/db)
package config
