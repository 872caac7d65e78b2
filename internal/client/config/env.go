package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/renewadmin/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "RENEWADMIN_"

const defaultEnvFile = ".env"

var envKeys = []string{
	"API_URL", "API_KEY", "SESSION_TIMEOUT", "DB", "LOG_LEVEL", "REPORT_DIR",
	"S3_BUCKET", "S3_REGION", "S3_ENDPOINT", "S3_ACCESS_KEY", "S3_SECRET_KEY",
}

// parseEnv overlays cfg with RENEWADMIN_* values. The dotenv file named by
// -env (or ./.env if it exists) is read first; real environment variables
// take precedence over it. A missing explicit file or a malformed value panics.
func parseEnv(cfg *Config) {
	values, err := readEnvFile(flagx.EnvFileFlags())
	if err != nil {
		panic(err)
	}

	for _, k := range envKeys {
		if v, ok := os.LookupEnv(envPrefix + k); ok {
			values[envPrefix+k] = v
		}
	}

	if err := applyEnv(cfg, values); err != nil {
		panic(err)
	}
}

func readEnvFile(path string) (map[string]string, error) {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return values, nil
}

func applyEnv(cfg *Config, values map[string]string) error {
	get := func(k string) (string, bool) {
		v, ok := values[envPrefix+k]
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("API_URL"); ok {
		cfg.APIBaseURL = v
	}
	if v, ok := get("API_KEY"); ok {
		cfg.APIKey = v
	}
	if v, ok := get("SESSION_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		cfg.SessionTimeout = d
	}
	if v, ok := get("DB"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := get("REPORT_DIR"); ok {
		cfg.ReportDir = v
	}
	if v, ok := get("S3_BUCKET"); ok {
		cfg.S3Bucket = v
	}
	if v, ok := get("S3_REGION"); ok {
		cfg.S3Region = v
	}
	if v, ok := get("S3_ENDPOINT"); ok {
		cfg.S3BaseEndpoint = v
	}
	if v, ok := get("S3_ACCESS_KEY"); ok {
		cfg.S3AccessKey = v
	}
	if v, ok := get("S3_SECRET_KEY"); ok {
		cfg.S3SecretKey = v
	}
	return nil
}
