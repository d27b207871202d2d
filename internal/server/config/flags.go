package config

import (
	"flag"
	"os"
	"time"

	"github.com/Algo-jtx/SoulSpace/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   bind address for the HTTP API
//	-d string   PostgreSQL DSN
//	-k string   session signing secret
//	-t int      session TTL in hours
//	-dev        run with in-memory storage
//
// Args are filtered through flagx so flags owned by other packages (such as
// -c/-config) do not trip this FlagSet.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k", "-t", "-dev"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "address and port to serve the API on")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "session signing secret")
	sessionTTLHours := fs.Int("t", int(cfg.SessionTTL.Hours()), "session TTL (in hours)")
	fs.BoolVar(&cfg.DevMode, "dev", cfg.DevMode, "run with in-memory storage and seeded data")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionTTL = time.Duration(*sessionTTLHours) * time.Hour
}
