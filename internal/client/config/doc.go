// Package config loads runtime configuration for the renewadmin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: a dotenv file (-env path, or ./.env when present) merged
//     with the process environment, which wins over the file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   base URL of the REST backend
//	-k string   API key sent as X-Api-Key
//	-t int      session timeout (minutes)
//	-d string   path of the local SQLite database
//	-l string   log level (debug|info|warn|error)
//
// Environment variables
//
//	RENEWADMIN_API_URL, RENEWADMIN_API_KEY, RENEWADMIN_SESSION_TIMEOUT,
//	RENEWADMIN_DB, RENEWADMIN_LOG_LEVEL, RENEWADMIN_REPORT_DIR,
//	RENEWADMIN_S3_BUCKET, RENEWADMIN_S3_REGION, RENEWADMIN_S3_ENDPOINT,
//	RENEWADMIN_S3_ACCESS_KEY, RENEWADMIN_S3_SECRET_KEY
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "15m" or
// integer nanoseconds:
//
//	{
//	  "api_base_url": "https://admin.example.com",
//	  "api_key": "k-123",
//	  "session_timeout": "60m",
//	  "search_debounce": "500ms",
//	  "default_page_limit": 25,
//	  "s3_bucket": "reports"
//	}
package config
