// Package main implements jobtrackrctl, the CLI for the JobTrackr job
// application tracking server.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: Storage interfaces and GORM implementations
//   - pkg/jobs: Job validation and ownership rules
//   - pkg/token: Bearer token issuing and verification
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/config: Configuration management
//
// # Quick Start
//
//	# Generate a token signing key
//	export JOBTRACKR_TOKEN_KEY="$(jobtrackrctl token-key generate)"
//
//	# Run database migrations
//	jobtrackrctl db migrate
//
//	# Create a user
//	jobtrackrctl user create alice
//
//	# Start the server
//	jobtrackrctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - JOBTRACKR_TOKEN_KEY: Base64-encoded key (at least 256 bits) for signing bearer tokens
//   - JOBTRACKR_TOKEN_TTL: Bearer token lifetime in seconds (default: 3600)
//   - JOBTRACKR_BCRYPT_COST: bcrypt cost for password hashing
//   - JOBTRACKR_TRUSTED_PROXIES: Comma-separated CIDR ranges whose X-Forwarded-For is honored
//   - JOBTRACKR_CONFIG_PATH: Directory holding jobtrackr.yml (default: /etc/jobtrackr/config)
//   - JOBTRACKR_LOG_LEVEL: Log level (debug enables SQL logging)
//   - PORT: Server port (default: 8000)
package main
