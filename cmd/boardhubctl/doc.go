// Package main implements boardhubctl, the boardhub server CLI.
//
// Boardhub is a collaborative kanban backend: boards owned by users or
// shared projects, with lists, items, labels, comments, attachments and
// notifications on top.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: storage interfaces and their GORM implementations
//   - pkg/access: board visibility and ownership resolution
//   - pkg/recency: recently-viewed board tracking backed by Redis
//   - pkg/model: database models
//   - pkg/db: database connection utilities
//   - pkg/config: configuration management
//
// # Quick Start
//
// The server is run via the boardhubctl CLI:
//
//	# Run database migrations
//	boardhubctl db migrate
//
//	# Create a user
//	boardhubctl user create ada@example.com --first-name Ada --last-name Lovelace
//
//	# Start the server
//	boardhubctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - REDIS_URL: Redis connection URL for recency tracking
//   - BOARDHUB_TOKEN_SECRET: HMAC secret for signing auth tokens
//   - BOARDHUB_LOG_LEVEL: Log level (debug, info, warn, error)
//   - PORT: Server port (default: 8000)
package main
