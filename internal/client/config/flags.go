package config

import (
	"flag"
	"os"

	"github.com/Algo-jtx/SoulSpace/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   SoulSpace API server URL
//	-theme string   theme preference file path
//	-l string   log file path
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-theme", "-l"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "s", cfg.BaseURL, "SoulSpace API server URL")
	fs.StringVar(&cfg.ThemeFile, "theme", cfg.ThemeFile, "theme preference file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
