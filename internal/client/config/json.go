package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/renewadmin/internal/flagx"
	"github.com/dmitrijs2005/renewadmin/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer and
// zero-checked fields let a partial file override only what it names.
type JsonConfig struct {
	APIBaseURL          string          `json:"api_base_url"`
	APIKey              string          `json:"api_key"`
	SessionTimeout      *timex.Duration `json:"session_timeout"`
	RedirectDelay       *timex.Duration `json:"redirect_delay"`
	SearchDebounce      *timex.Duration `json:"search_debounce"`
	SubmitRedirectDelay *timex.Duration `json:"submit_redirect_delay"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	DefaultPageLimit    int             `json:"default_page_limit"`
	DatabasePath        string          `json:"database_path"`
	LogLevel            string          `json:"log_level"`
	ReportDir           string          `json:"report_dir"`
	S3Bucket            string          `json:"s3_bucket"`
	S3Region            string          `json:"s3_region"`
	S3BaseEndpoint      string          `json:"s3_base_endpoint"`
	S3AccessKey         string          `json:"s3_access_key"`
	S3SecretKey         string          `json:"s3_secret_key"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Without the flag nothing happens. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.APIKey, jc.APIKey)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.ReportDir, jc.ReportDir)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)

	if jc.SessionTimeout != nil {
		cfg.SessionTimeout = jc.SessionTimeout.Duration
	}
	if jc.RedirectDelay != nil {
		cfg.RedirectDelay = jc.RedirectDelay.Duration
	}
	if jc.SearchDebounce != nil {
		cfg.SearchDebounce = jc.SearchDebounce.Duration
	}
	if jc.SubmitRedirectDelay != nil {
		cfg.SubmitRedirectDelay = jc.SubmitRedirectDelay.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DefaultPageLimit > 0 {
		cfg.DefaultPageLimit = jc.DefaultPageLimit
	}
}
