package config

import "time"

// Config holds runtime settings for the renewadmin CLI.
//
// Fields:
//   - APIBaseURL: scheme://host[:port] of the REST backend; paths start with /api.
//   - APIKey: static value sent as X-Api-Key on every request.
//   - SessionTimeout: single session-expiry timer used by every screen.
//   - RedirectDelay: pause between the "session expired" notice and the forced sign-in.
//   - SearchDebounce: quiet period before a search edit triggers a list fetch.
//   - SubmitRedirectDelay: pause between a successful save and returning to the list.
//   - RequestTimeout: per-request HTTP timeout.
//   - DefaultPageLimit: initial rows per page for list screens.
//   - DatabasePath: local SQLite file holding the session token.
//   - LogLevel: debug, info, warn or error.
//   - ReportDir: where downloaded reports land when no S3 bucket is configured.
//   - S3*: optional S3-compatible archive for downloaded reports.
type Config struct {
	APIBaseURL          string
	APIKey              string
	SessionTimeout      time.Duration
	RedirectDelay       time.Duration
	SearchDebounce      time.Duration
	SubmitRedirectDelay time.Duration
	RequestTimeout      time.Duration
	DefaultPageLimit    int
	DatabasePath        string
	LogLevel            string
	ReportDir           string
	S3Bucket            string
	S3Region            string
	S3BaseEndpoint      string
	S3AccessKey         string
	S3SecretKey         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.APIKey = ""
	c.SessionTimeout = 60 * time.Minute
	c.RedirectDelay = 2 * time.Second
	c.SearchDebounce = 500 * time.Millisecond
	c.SubmitRedirectDelay = 2 * time.Second
	c.RequestTimeout = 60 * time.Second
	c.DefaultPageLimit = 10
	c.DatabasePath = "renewadmin.db"
	c.LogLevel = "info"
	c.ReportDir = "reports"
	c.S3Region = "us-east-1"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (.env file included), JSON (if present) and command-line
// flags (if present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
