package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/renewadmin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   backend base URL
//	-k string   API key
//	-t int      session timeout in minutes
//	-d string   local database path
//	-l string   log level
//
// Only these flags are considered (see flagx.FilterArgs) so -c/-config and
// -env can coexist on the same command line.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-t", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend base URL")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key")
	sessionTimeout := fs.Int("t", int(cfg.SessionTimeout.Minutes()), "session timeout (in minutes)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.SessionTimeout = time.Duration(*sessionTimeout) * time.Minute
		}
	})
}
